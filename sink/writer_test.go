package sink

import (
	"bytes"
	"errors"
	"testing"

	"github.com/embaudio/wavplay/audio"
)

func TestWriter_PassesBytesThrough(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	snk := NewWriter(&out)

	if err := snk.Configure(44100, 16, 1); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if err := snk.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	payload := []byte{1, 2, 3, 4, 5}
	n, err := snk.Write(payload)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != len(payload) {
		t.Errorf("Write() = %d, want %d", n, len(payload))
	}
	if !bytes.Equal(out.Bytes(), payload) {
		t.Error("writer sink altered the bytes")
	}

	if err := snk.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}

func TestWriter_ConfigureValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		bits     int
		channels int
		wantErr  bool
	}{
		{"canonical", 44100, 16, 1, false},
		{"8-bit", 8000, 8, 1, false},
		{"24-bit", 96000, 24, 1, false},
		{"32-bit", 48000, 32, 1, false},
		{"zero rate", 0, 16, 1, true},
		{"negative rate", -44100, 16, 1, true},
		{"stereo", 44100, 16, 2, true},
		{"zero channels", 44100, 16, 0, true},
		{"12-bit", 44100, 12, 1, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snk := NewWriter(&bytes.Buffer{})
			err := snk.Configure(tt.rate, tt.bits, tt.channels)
			if (err != nil) != tt.wantErr {
				t.Errorf("Configure(%d, %d, %d) error = %v, wantErr = %v",
					tt.rate, tt.bits, tt.channels, err, tt.wantErr)
			}
		})
	}
}

func TestWriter_LifecycleEnforced(t *testing.T) {
	t.Parallel()

	snk := NewWriter(&bytes.Buffer{})

	if err := snk.Start(); !errors.Is(err, audio.ErrSinkNotConfigured) {
		t.Errorf("Start() before Configure error = %v, want ErrSinkNotConfigured", err)
	}
	if _, err := snk.Write([]byte{1}); !errors.Is(err, audio.ErrSinkNotStarted) {
		t.Errorf("Write() before Start error = %v, want ErrSinkNotStarted", err)
	}

	if err := snk.Configure(8000, 16, 1); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if err := snk.Configure(8000, 16, 1); !errors.Is(err, audio.ErrSinkConfigured) {
		t.Errorf("second Configure() error = %v, want ErrSinkConfigured", err)
	}

	if err := snk.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := snk.Start(); !errors.Is(err, audio.ErrSinkClosed) {
		t.Errorf("Start() after Close error = %v, want ErrSinkClosed", err)
	}
	if _, err := snk.Write([]byte{1}); !errors.Is(err, audio.ErrSinkClosed) {
		t.Errorf("Write() after Close error = %v, want ErrSinkClosed", err)
	}
}

func TestWriter_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	snk := NewWriter(&bytes.Buffer{})
	snk.Configure(8000, 16, 1)
	snk.Start()

	for i := 0; i < 3; i++ {
		if err := snk.Stop(); err != nil {
			t.Errorf("Stop() call %d error = %v", i+1, err)
		}
	}
}
