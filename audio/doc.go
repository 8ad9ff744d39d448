// SPDX-License-Identifier: EPL-2.0

// Package audio defines the byte source and audio sink contracts that the
// playback pipeline is built on.
//
// # Source Interface
//
// Source is a sequential byte stream with a known total length:
//
//	type Source interface {
//	    Read(p []byte) (int, error)
//	    Size() int64
//	    Close() error
//	}
//
// The source/file package provides a file-backed implementation; tests use
// in-memory sources.
//
// # Sink Interface
//
// Sink is the output side. A sink is configured once from the parsed header,
// started, written to in chunks, then stopped:
//
//	snk.Configure(44100, 16, 1)
//	snk.Start()
//	snk.Write(chunk)
//	snk.Stop()
//
// Write is allowed to block until the hardware has consumed previously
// queued data. The streaming loop relies on that backpressure: it never
// paces itself, the sink does.
//
// # Backend Registry
//
// The Registry maps backend names to sink factories so a caller can select
// an output at run time:
//
//	reg := audio.NewRegistry()
//	reg.Register("portaudio", func() (audio.Sink, error) { return sink.NewPortAudio(), nil })
//	factory, ok := reg.Get("portaudio")
//
// Exactly one sink and one source are owned by a playback session at a
// time; the registry hands out fresh instances, never shared ones.
package audio
