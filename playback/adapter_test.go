package playback

import (
	"errors"
	"strings"
	"testing"

	"github.com/embaudio/wavplay/formats/wav"
	"github.com/embaudio/wavplay/internal/audiotest"
)

func TestConfigureSink_PassesDescriptorThrough(t *testing.T) {
	t.Parallel()

	hdr := &wav.Header{SampleRate: 48000, BitsPerSample: 16, ChannelCount: 1}
	snk := &audiotest.MockSink{}

	if err := ConfigureSink(snk, hdr); err != nil {
		t.Fatalf("ConfigureSink() error = %v", err)
	}
	if snk.Rate != 48000 || snk.Bits != 16 || snk.Channels != 1 {
		t.Errorf("sink configured with (%d, %d, %d), want (48000, 16, 1)", snk.Rate, snk.Bits, snk.Channels)
	}
	if snk.ConfigureCalls != 1 {
		t.Errorf("ConfigureCalls = %d, want 1", snk.ConfigureCalls)
	}
}

func TestConfigureSink_WrapsBackendError(t *testing.T) {
	t.Parallel()

	hdr := &wav.Header{SampleRate: 192000, BitsPerSample: 16, ChannelCount: 1}
	snk := &audiotest.MockSink{ConfigureErr: errors.New("rate above supported clock divisors")}

	err := ConfigureSink(snk, hdr)
	if !errors.Is(err, ErrSinkConfiguration) {
		t.Fatalf("ConfigureSink() error = %v, want ErrSinkConfiguration", err)
	}
	// The wrapped message keeps the requested parameters for diagnostics.
	if !strings.Contains(err.Error(), "192000") {
		t.Errorf("error %q does not name the requested rate", err)
	}
}
