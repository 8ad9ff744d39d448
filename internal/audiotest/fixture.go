// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Chunk is an arbitrary RIFF sub-chunk inserted before the data chunk to
// exercise the parser's skip-unknown-chunk path.
type Chunk struct {
	ID   string
	Body []byte
}

// HeaderSpec describes a WAV container to build byte by byte. Zero values
// select a canonical mono 16-bit PCM layout; set a field to bend the
// container out of shape.
type HeaderSpec struct {
	ContainerTag string // default "RIFF"
	FormatTag    string // default "WAVE"
	FmtChunkID   string // default "fmt "
	DataChunkID  string // default "data"

	FmtChunkSize  uint32 // default 16; larger values append zero surplus bytes
	AudioFormat   uint16 // default 1 (PCM)
	Channels      uint16 // default 1
	SampleRate    uint32 // default 44100
	BitsPerSample uint16 // default 16

	// ByteRate / BlockAlign override the derived values when non-zero.
	ByteRate   uint32
	BlockAlign uint16

	// ExtraChunks go between the fmt and data chunks.
	ExtraChunks []Chunk

	// Data is the sample payload. DataSize overrides the declared data
	// length when non-zero (for declaring more bytes than exist).
	Data     []byte
	DataSize uint32
}

// BuildWAV renders the spec as container bytes.
func BuildWAV(spec HeaderSpec) []byte {
	tag := func(s, def string) string {
		if s == "" {
			return def
		}
		return s
	}

	fmtSize := spec.FmtChunkSize
	if fmtSize == 0 {
		fmtSize = 16
	}
	format := spec.AudioFormat
	if format == 0 {
		format = 1
	}
	channels := spec.Channels
	if channels == 0 {
		channels = 1
	}
	rate := spec.SampleRate
	if rate == 0 {
		rate = 44100
	}
	bits := spec.BitsPerSample
	if bits == 0 {
		bits = 16
	}
	blockAlign := spec.BlockAlign
	if blockAlign == 0 {
		blockAlign = channels * bits / 8
	}
	byteRate := spec.ByteRate
	if byteRate == 0 {
		byteRate = rate * uint32(blockAlign)
	}
	dataSize := spec.DataSize
	if dataSize == 0 {
		dataSize = uint32(len(spec.Data))
	}

	var b bytes.Buffer
	le := binary.LittleEndian

	u32 := func(v uint32) {
		var tmp [4]byte
		le.PutUint32(tmp[:], v)
		b.Write(tmp[:])
	}
	u16 := func(v uint16) {
		var tmp [2]byte
		le.PutUint16(tmp[:], v)
		b.Write(tmp[:])
	}

	b.WriteString(tag(spec.ContainerTag, "RIFF"))
	u32(36 + dataSize) // declared file size; informational
	b.WriteString(tag(spec.FormatTag, "WAVE"))

	b.WriteString(tag(spec.FmtChunkID, "fmt "))
	u32(fmtSize)
	u16(format)
	u16(channels)
	u32(rate)
	u32(byteRate)
	u16(blockAlign)
	u16(bits)
	for i := uint32(16); i < fmtSize; i++ {
		b.WriteByte(0)
	}

	for _, c := range spec.ExtraChunks {
		b.WriteString(c.ID)
		u32(uint32(len(c.Body)))
		b.Write(c.Body)
		if len(c.Body)%2 == 1 {
			b.WriteByte(0) // RIFF word-alignment pad
		}
	}

	b.WriteString(tag(spec.DataChunkID, "data"))
	u32(dataSize)
	b.Write(spec.Data)

	return b.Bytes()
}

// Pattern fills n bytes with a deterministic non-repeating-ish pattern so
// tests can verify byte-exact, in-order delivery.
func Pattern(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i*7 + i>>8)
	}
	return p
}

// EncodeWAV writes a mono 16-bit PCM WAV using the go-audio encoder. It is
// a second, independent WAV implementation used to cross-validate our
// parser against files we did not write ourselves.
func EncodeWAV(w io.WriteSeeker, sampleRate int, samples []int16) error {
	enc := gowav.NewEncoder(w, sampleRate, 16, 1, 1)

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	return enc.Close()
}
