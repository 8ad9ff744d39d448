package playback

import (
	"fmt"

	"github.com/embaudio/wavplay/audio"
	"github.com/embaudio/wavplay/formats/wav"
)

// ConfigureSink translates a parsed header into the sink's Configure call.
// It is a pure pass-through with no buffering; it exists so every backend
// sees the same call shape. Call it exactly once per session, after the
// header parsed and before any write.
func ConfigureSink(snk audio.Sink, hdr *wav.Header) error {
	err := snk.Configure(int(hdr.SampleRate), int(hdr.BitsPerSample), int(hdr.ChannelCount))
	if err != nil {
		return fmt.Errorf("%w: rate=%d bits=%d channels=%d: %v",
			ErrSinkConfiguration, hdr.SampleRate, hdr.BitsPerSample, hdr.ChannelCount, err)
	}
	return nil
}
