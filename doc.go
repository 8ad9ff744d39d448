// SPDX-License-Identifier: EPL-2.0

// Package wavplay streams mono PCM WAV files to an audio sink in bounded
// memory.
//
// The pipeline reads a RIFF/WAVE container header off a sequential byte
// source, validates that the payload is something the output hardware can
// render (linear PCM, one channel), configures the sink from the parsed
// format, then moves exactly the declared number of sample bytes to the
// sink in fixed-size chunks. The sink's blocking write paces the loop, so
// the whole file is never held in memory and playback runs at output
// speed.
//
// # Quick Start
//
// The simplest way to play a file is PlayFile:
//
//	snk := sink.NewPortAudio()
//	defer snk.Close()
//
//	report := wavplay.PlayFile("gettys_m.wav", snk, playback.DefaultChunkSize)
//	if report.Err != nil {
//	    log.Fatal(report.Err)
//	}
//	fmt.Printf("played %d bytes in %s\n", report.BytesStreamed, report.Elapsed)
//
// # Pipeline Packages
//
// For more control, wire the stages yourself:
//
//   - audio: the Source and Sink contracts plus a backend registry
//   - formats/wav: header parsing and canonical WAV writing
//   - playback: the streaming loop and the session state machine
//   - source: file-backed byte sources
//   - sink: PortAudio and io.Writer backed sinks
//
// A session walks idle -> opened -> header-parsed -> streaming ->
// finished, failing terminally from any state, and always releases the
// source and sink on the way out:
//
//	sess := playback.NewSession(func() (audio.Source, error) {
//	    return source.OpenFile("laugh_m.wav")
//	}, snk, playback.DefaultChunkSize)
//	report := sess.Run()
//
// # Errors
//
// Errors are sentinel values wrapped with the offending field, tag or byte
// offset; classify them with errors.Is:
//
//	if errors.Is(report.Err, wav.ErrUnsupportedFormat) {
//	    fmt.Println("not mono PCM:", report.Err)
//	}
//
// Every error ends the session. There is no partial recovery and no byte
// ever reaches the sink before the header fully validates.
package wavplay
