package wavplay

import (
	"github.com/embaudio/wavplay/audio"
	"github.com/embaudio/wavplay/playback"
	"github.com/embaudio/wavplay/source"
)

// PlayFile is a high-level convenience function that streams one WAV file
// to a sink and reports the outcome.
//
// It runs the full pipeline for a single playback session:
//  1. Opens path as a sequential byte source
//  2. Parses and validates the RIFF/WAVE PCM header
//  3. Configures and starts the sink from the parsed format
//  4. Streams exactly the declared data bytes in bounded chunks
//  5. Stops the sink and closes the source, on success and failure alike
//
// Parameters:
//   - path: The WAV file to play (linear PCM, mono)
//   - snk: The output sink; it must be fresh and unconfigured
//   - chunkSize: Bytes moved per iteration (e.g. playback.DefaultChunkSize);
//     <= 0 selects the default. Memory use is bounded by this value,
//     never by the file size.
//
// Returns a playback.Report whose Outcome is playback.Finished or
// playback.Failed; Report.Err carries the failure. The report also holds
// the parsed header, the exact number of bytes handed to the sink and the
// elapsed streaming time.
//
// Note: This drives one session on the calling goroutine and blocks until
// playback ends; the sink's write backpressure sets the pace. For more
// control, use playback.NewSession directly.
//
// Example:
//
//	snk := sink.NewPortAudio()
//	defer snk.Close()
//	report := wavplay.PlayFile("gettys_m.wav", snk, playback.DefaultChunkSize)
//	if report.Err != nil {
//	    log.Fatal(report.Err)
//	}
//	// report.BytesStreamed bytes rendered in report.Elapsed
func PlayFile(path string, snk audio.Sink, chunkSize int) playback.Report {
	open := func() (audio.Source, error) {
		return source.OpenFile(path)
	}
	return playback.NewSession(open, snk, chunkSize).Run()
}
