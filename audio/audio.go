// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Source is a sequential byte source holding raw container bytes,
// typically a file on removable storage.
type Source interface {
	// Read fills p with the next bytes of the stream, returning how many
	// bytes were read. Read may block until storage I/O completes.
	io.Reader

	// Size returns the total length of the source in bytes.
	Size() int64

	// Close releases the underlying handle.
	io.Closer
}

// Sink is a hardware-facing audio output accepting configured PCM data.
type Sink interface {
	// Configure sets the output format. It must be called exactly once,
	// before Start. Parameters outside the backend's capability return
	// an error and leave the sink unconfigured.
	Configure(sampleRate, bitsPerSample, channels int) error

	// Start enables the output channel. Configure must have succeeded.
	Start() error

	// Write queues raw little-endian PCM bytes for output. It may block
	// until the hardware has consumed previously queued data; that
	// backpressure paces the caller to the output rate.
	Write(p []byte) (n int, err error)

	// Stop disables the output channel. Safe to call more than once.
	Stop() error

	// Close releases the backend. The sink cannot be restarted after Close.
	io.Closer
}

// Factory constructs a fresh, unconfigured Sink.
type Factory func() (Sink, error)

// Registry maps backend names (e.g. "portaudio", "raw") to sink factories.
type Registry struct {
	backends map[string]Factory

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]Factory),
		mtx:      &sync.Mutex{},
	}
}

func (r *Registry) Register(name string, f Factory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.backends[name] = f
}

func (r *Registry) Get(name string) (Factory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.backends[name]
	return f, ok
}

// Names returns the registered backend names, in no particular order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	return names
}
