// Package wav parses RIFF/WAVE PCM container headers and writes canonical
// mono 16-bit PCM WAV files.
//
// # Parsing Headers
//
// ParseHeader reads the header off a stream positioned at offset 0 and
// leaves the stream at the first sample byte, which is exactly where the
// playback loop wants it:
//
//	hdr, err := wav.ParseHeader(src)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(hdr.SampleRate, hdr.BitsPerSample, hdr.DataSize)
//
// The parser handles fmt chunks larger than the 16 PCM bytes and skips
// unknown chunks (LIST, fact, ...) that appear before the data chunk, up
// to MaxChunkSkips of them.
//
// # Supported Formats
//
// Only what the output hardware can render passes validation:
//   - linear PCM (format code 1)
//   - mono (one channel; stereo is a rejection, not a downmix)
//   - 8, 16, 24 or 32 bits per sample
//
// # Error Handling
//
// The package defines sentinel errors, each wrapped with the offending
// field, value and byte offset:
//   - ErrTruncatedHeader: the stream ended inside the header
//   - ErrUnsupportedContainer: one of the RIFF/WAVE/"fmt "/data tags mismatched
//   - ErrUnsupportedFormat: non-PCM, non-mono or unsupported bit depth
//   - ErrTooManyChunks: more than MaxChunkSkips chunks before data
//
// Use errors.Is to classify:
//
//	if errors.Is(err, wav.ErrUnsupportedFormat) {
//	    fmt.Println("file format not playable:", err)
//	}
//
// # Writing WAV Files
//
// WriteWAV16 writes a complete mono 16-bit file:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - optional extra chunks
//   - data chunk: the raw samples, length-prefixed by dataSize
package wav
