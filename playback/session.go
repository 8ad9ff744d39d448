package playback

import (
	"fmt"
	"time"

	"github.com/embaudio/wavplay/audio"
	"github.com/embaudio/wavplay/formats/wav"
)

// State is where a playback session currently stands. Finished and Failed
// are terminal.
type State int

const (
	Idle State = iota
	Opened
	HeaderParsed
	Streaming
	Finished
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Opened:
		return "opened"
	case HeaderParsed:
		return "header-parsed"
	case Streaming:
		return "streaming"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// SourceOpener acquires the byte source for a session. It is called once,
// at the Idle to Opened transition, so a failed open never touches the
// sink.
type SourceOpener func() (audio.Source, error)

// Report is what a finished session hands back: the terminal state, the
// parsed header (nil if parsing never succeeded), the exact byte count
// moved and the elapsed streaming time, plus the error for Failed runs.
type Report struct {
	Outcome       State
	Header        *wav.Header
	BytesStreamed int64
	Elapsed       time.Duration
	Err           error
}

// Session runs one file through the pipeline: open the source, parse the
// header, configure and start the sink, stream the data region, stop the
// sink. The source and sink are exclusively owned by the session for the
// duration of Run; both are released on every exit path.
type Session struct {
	open      SourceOpener
	snk       audio.Sink
	chunkSize int
	state     State
}

// NewSession prepares a session in the Idle state. chunkSize <= 0 selects
// DefaultChunkSize.
func NewSession(open SourceOpener, snk audio.Sink, chunkSize int) *Session {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Session{
		open:      open,
		snk:       snk,
		chunkSize: chunkSize,
		state:     Idle,
	}
}

// State reports the session's current (or terminal) state.
func (s *Session) State() State {
	return s.state
}

// Run drives the session to a terminal state and reports the outcome. It
// may be called once; sessions are not reusable, so a fresh source and
// sink are acquired per playback and hardware handles never leak between
// runs.
func (s *Session) Run() Report {
	if s.state != Idle {
		return s.fail(Report{}, fmt.Errorf("%w: state %s", ErrSessionReused, s.state))
	}

	var report Report

	// Idle -> Opened
	src, err := s.open()
	if err != nil {
		return s.fail(report, fmt.Errorf("%w: %v", ErrSourceUnavailable, err))
	}
	defer src.Close()
	s.state = Opened

	// Opened -> HeaderParsed
	hdr, err := wav.ParseHeader(src)
	if err != nil {
		return s.fail(report, err)
	}
	report.Header = hdr
	s.state = HeaderParsed

	// From here on the sink is in play; Stop runs on success and failure
	// alike so the output channel is never left enabled. Before this
	// point (open or parse failures) the sink is never touched.
	defer s.snk.Stop()

	// HeaderParsed -> Streaming
	if err := ConfigureSink(s.snk, hdr); err != nil {
		return s.fail(report, err)
	}
	if err := s.snk.Start(); err != nil {
		return s.fail(report, fmt.Errorf("%w: start: %v", ErrSinkConfiguration, err))
	}
	s.state = Streaming

	loop, err := NewLoop(s.chunkSize)
	if err != nil {
		return s.fail(report, err)
	}

	stats, err := loop.Run(src, s.snk, hdr.DataSize)
	report.BytesStreamed = stats.BytesStreamed
	report.Elapsed = stats.Elapsed
	if err != nil {
		return s.fail(report, err)
	}

	// Streaming -> Finished
	s.state = Finished
	report.Outcome = Finished
	return report
}

func (s *Session) fail(report Report, err error) Report {
	s.state = Failed
	report.Outcome = Failed
	report.Err = err
	return report
}
