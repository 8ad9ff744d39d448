package sink

import (
	"fmt"
	"io"

	"github.com/embaudio/wavplay/audio"
)

// Writer is a sink that forwards raw PCM bytes to an io.Writer. It renders
// nothing itself; it exists for dumping payloads to files or pipes and for
// exercising the pipeline without hardware.
type Writer struct {
	w io.Writer

	sampleRate    int
	bitsPerSample int

	configured bool
	started    bool
	closed     bool
}

// NewWriter wraps w as an audio sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (s *Writer) Configure(sampleRate, bitsPerSample, channels int) error {
	if s.closed {
		return audio.ErrSinkClosed
	}
	if s.configured {
		return audio.ErrSinkConfigured
	}
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate %d out of range", sampleRate)
	}
	if channels != 1 {
		return fmt.Errorf("%d channels requested, output is mono only", channels)
	}
	switch bitsPerSample {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("unsupported bit depth %d", bitsPerSample)
	}

	s.sampleRate = sampleRate
	s.bitsPerSample = bitsPerSample
	s.configured = true
	return nil
}

func (s *Writer) Start() error {
	if s.closed {
		return audio.ErrSinkClosed
	}
	if !s.configured {
		return audio.ErrSinkNotConfigured
	}
	s.started = true
	return nil
}

func (s *Writer) Write(p []byte) (int, error) {
	if s.closed {
		return 0, audio.ErrSinkClosed
	}
	if !s.started {
		return 0, audio.ErrSinkNotStarted
	}
	return s.w.Write(p)
}

func (s *Writer) Stop() error {
	s.started = false
	return nil
}

func (s *Writer) Close() error {
	s.closed = true
	s.started = false
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
