// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"errors"
)

// ErrInjected is what MockSink's failure knobs return.
var ErrInjected = errors.New("injected sink failure")

// MockSink is a test double that records every pipeline interaction. It
// implements the audio.Sink interface (without importing it to avoid cycles).
type MockSink struct {
	// Recorded Configure arguments.
	Rate, Bits, Channels int

	// Lifecycle counters.
	ConfigureCalls int
	StartCalls     int
	StopCalls      int
	CloseCalls     int

	// Data accumulates every byte written, in order; WriteSizes records
	// the size of each accepted write.
	Data       bytes.Buffer
	WriteSizes []int

	// ConfigureErr / StartErr, when set, are returned by the respective call.
	ConfigureErr error
	StartErr     error

	// AcceptBytes, when > 0, is the total byte budget: a write that would
	// exceed it is truncated to the budget and every write after that
	// fails persistently. Models a sink whose hardware path died mid-file.
	AcceptBytes int

	// TransientFailures makes the next N writes fail without consuming
	// any bytes, then lets writes succeed again. Models a momentarily
	// busy device absorbed by the loop's retry budget.
	TransientFailures int

	// MaxWrite, when > 0, caps how many bytes a single write accepts,
	// forcing the loop to handle short writes.
	MaxWrite int

	// WriteErr, when set, accompanies every write that still accepts
	// bytes. Models a device that keeps making progress while reporting
	// a transient condition on each call.
	WriteErr error
}

func (m *MockSink) Configure(sampleRate, bitsPerSample, channels int) error {
	m.ConfigureCalls++
	if m.ConfigureErr != nil {
		return m.ConfigureErr
	}
	m.Rate = sampleRate
	m.Bits = bitsPerSample
	m.Channels = channels
	return nil
}

func (m *MockSink) Start() error {
	m.StartCalls++
	return m.StartErr
}

func (m *MockSink) Write(p []byte) (int, error) {
	if m.TransientFailures > 0 {
		m.TransientFailures--
		return 0, ErrInjected
	}

	n := len(p)
	if m.MaxWrite > 0 && n > m.MaxWrite {
		n = m.MaxWrite
	}

	if m.AcceptBytes > 0 {
		room := m.AcceptBytes - m.Data.Len()
		if room <= 0 {
			return 0, ErrInjected
		}
		if n > room {
			m.Data.Write(p[:room])
			m.WriteSizes = append(m.WriteSizes, room)
			return room, ErrInjected
		}
	}

	m.Data.Write(p[:n])
	m.WriteSizes = append(m.WriteSizes, n)
	return n, m.WriteErr
}

func (m *MockSink) Stop() error {
	m.StopCalls++
	return nil
}

func (m *MockSink) Close() error {
	m.CloseCalls++
	return nil
}

// Touched reports whether any call at all reached the sink. Header
// validation failures must leave this false.
func (m *MockSink) Touched() bool {
	return m.ConfigureCalls+m.StartCalls+m.StopCalls+m.CloseCalls > 0 || m.Data.Len() > 0
}

// BytesSource is an in-memory sequential byte source. It implements the
// audio.Source interface.
type BytesSource struct {
	r    *bytes.Reader
	size int64
}

func NewBytesSource(b []byte) *BytesSource {
	return &BytesSource{r: bytes.NewReader(b), size: int64(len(b))}
}

func (s *BytesSource) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *BytesSource) Size() int64                { return s.size }
func (s *BytesSource) Close() error               { return nil }
