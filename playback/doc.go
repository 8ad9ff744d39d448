// Package playback orchestrates one streaming run: header to sink
// configuration, then the bounded-memory chunk loop that moves exactly the
// declared number of sample bytes from source to sink.
//
// # Session Lifecycle
//
// A Session walks idle -> opened -> header-parsed -> streaming ->
// finished, dropping to the terminal failed state from anywhere:
//
//	sess := playback.NewSession(func() (audio.Source, error) {
//	    return source.OpenFile("gettys_m.wav")
//	}, snk, playback.DefaultChunkSize)
//
//	report := sess.Run()
//	fmt.Println(report.Outcome, report.BytesStreamed, report.Elapsed)
//
// The sink is stopped and the source closed on every exit path, including
// failures mid-stream. A session runs once; build a new one per file.
//
// # Byte Accounting
//
// The loop hands each byte of the data region to the sink exactly once, in
// file order, and never writes past the header's dataSize even when the
// source has trailing container metadata. Report.BytesStreamed is exact on
// failure too: it counts what the sink actually accepted.
//
// # Pacing
//
// The loop does not sleep or time itself against the sample rate. The
// sink's blocking Write is the pacemaker: when the hardware buffers are
// full the loop waits inside Write, so playback proceeds at output speed
// regardless of how fast the source reads.
//
// # Errors
//
//   - ErrSourceUnavailable: the source opener failed; the sink was never touched
//   - header parse errors from formats/wav, passed through as-is
//   - ErrSinkConfiguration: the sink rejected the format, or failed to start
//   - ErrUnexpectedEndOfStream: the source ran dry before dataSize bytes
//   - ErrSinkWriteFailure: a write kept failing past the bounded retry budget
//
// Every error ends the session; there is no skip-and-continue mode.
package playback
