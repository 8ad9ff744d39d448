package sink

import (
	"encoding/binary"
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/embaudio/wavplay/audio"
)

// framesPerBuffer is the hardware transfer granularity: 512 frames of
// 16-bit mono is 1024 bytes per buffer, two of which are in flight at a
// time in the backend's ring.
const framesPerBuffer = 512

// framePacker converts little-endian 16-bit PCM bytes into fixed-size
// int16 frame buffers. A partially filled buffer is carried across calls,
// so only full buffers reach the device mid-stream; zero padding happens
// solely when the stream ends. Chunk boundaries that do not line up with
// the buffer size therefore never inject silence.
type framePacker struct {
	frames []int16
	n      int

	// pending holds a dangling low byte when a push ends mid-sample; it
	// is completed by the next push or flushed zero-padded at the end.
	pending    byte
	hasPending bool
}

func newFramePacker(frames []int16) *framePacker {
	return &framePacker{frames: frames}
}

// push consumes bytes from p until the buffer fills or p runs out. It
// reports how many bytes it consumed and whether the buffer is ready for
// the device. After a full buffer is handed off, call reset.
func (fp *framePacker) push(p []byte) (consumed int, full bool) {
	if fp.hasPending && len(p) > 0 && fp.n < len(fp.frames) {
		fp.frames[fp.n] = int16(uint16(fp.pending) | uint16(p[0])<<8)
		fp.hasPending = false
		fp.n++
		p = p[1:]
		consumed++
	}

	for fp.n < len(fp.frames) && len(p) >= 2 {
		fp.frames[fp.n] = int16(binary.LittleEndian.Uint16(p[:2]))
		p = p[2:]
		consumed += 2
		fp.n++
	}

	if fp.n < len(fp.frames) && len(p) == 1 && !fp.hasPending {
		fp.pending = p[0]
		fp.hasPending = true
		consumed++
	}

	return consumed, fp.n == len(fp.frames)
}

func (fp *framePacker) reset() { fp.n = 0 }

// flushPadded completes a dangling byte as a final zero-padded sample and
// zero-fills the rest of the buffer. It reports whether anything is left
// to write; the packer is empty afterwards.
func (fp *framePacker) flushPadded() bool {
	if fp.hasPending {
		fp.frames[fp.n] = int16(uint16(fp.pending))
		fp.hasPending = false
		fp.n++
	}
	if fp.n == 0 {
		return false
	}
	for i := fp.n; i < len(fp.frames); i++ {
		fp.frames[i] = 0
	}
	fp.n = 0
	return true
}

// PortAudio is an audio.Sink that renders through the default PortAudio
// output device. Stream.Write blocks until a hardware buffer slot is free,
// which is exactly the backpressure contract the streaming loop expects.
type PortAudio struct {
	stream *portaudio.Stream
	packer *framePacker

	initialized bool
	started     bool
	closed      bool
}

// NewPortAudio creates an unconfigured PortAudio sink.
func NewPortAudio() *PortAudio {
	return &PortAudio{}
}

// Configure initializes PortAudio and opens the default output stream.
// The hardware path is 16-bit mono only; other parameters are rejected
// before any device is touched.
func (s *PortAudio) Configure(sampleRate, bitsPerSample, channels int) error {
	if s.closed {
		return audio.ErrSinkClosed
	}
	if s.stream != nil {
		return audio.ErrSinkConfigured
	}
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate %d out of range", sampleRate)
	}
	if channels != 1 {
		return fmt.Errorf("%d channels requested, output is mono only", channels)
	}
	if bitsPerSample != 16 {
		return fmt.Errorf("unsupported bit depth %d, device takes 16-bit samples", bitsPerSample)
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.initialized = true

	frames := make([]int16, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), framesPerBuffer, frames)
	if err != nil {
		portaudio.Terminate()
		s.initialized = false
		return fmt.Errorf("%w", err)
	}
	s.stream = stream
	s.packer = newFramePacker(frames)
	return nil
}

func (s *PortAudio) Start() error {
	if s.closed {
		return audio.ErrSinkClosed
	}
	if s.stream == nil {
		return audio.ErrSinkNotConfigured
	}
	if err := s.stream.Start(); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.started = true
	return nil
}

// Write queues little-endian 16-bit PCM bytes. Full hardware buffers go to
// the device as they fill; a partial fill waits for the next Write, so
// arbitrary chunk sizes never pad the stream mid-playback. Blocks while
// the ring is full.
func (s *PortAudio) Write(p []byte) (int, error) {
	if s.closed {
		return 0, audio.ErrSinkClosed
	}
	if !s.started {
		return 0, audio.ErrSinkNotStarted
	}

	written := 0
	for len(p) > 0 {
		n, full := s.packer.push(p)
		p = p[n:]
		written += n

		if !full {
			break
		}
		if err := s.stream.Write(); err != nil {
			return written, fmt.Errorf("%w", err)
		}
		s.packer.reset()
	}

	return written, nil
}

func (s *PortAudio) Stop() error {
	if s.stream == nil || !s.started {
		return nil
	}

	// End of stream: the carried partial buffer goes out zero-padded,
	// a dangling byte first completed as a final sample.
	if s.packer.flushPadded() {
		if err := s.stream.Write(); err != nil {
			s.started = false
			s.stream.Stop()
			return fmt.Errorf("%w", err)
		}
	}

	s.started = false
	if err := s.stream.Stop(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *PortAudio) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var err error
	if s.stream != nil {
		err = s.stream.Close()
		s.stream = nil
	}
	if s.initialized {
		portaudio.Terminate()
		s.initialized = false
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
