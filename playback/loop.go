package playback

import (
	"fmt"
	"io"
	"time"

	"github.com/embaudio/wavplay/audio"
)

// DefaultChunkSize is the number of bytes moved per loop iteration. At
// 16-bit mono that is 512 sample frames, matching a typical hardware DMA
// buffer. It is independent of the file's block alignment but kept a
// multiple of common frame sizes so a frame is not split across two sink
// writes.
const DefaultChunkSize = 1024

// writeRetryBudget bounds how many times a failing or zero-length sink
// write is retried before the session is aborted. Read errors are never
// retried: a storage fault is fatal to the session.
const writeRetryBudget = 3

// Stats reports what one streaming run moved.
type Stats struct {
	// BytesStreamed counts bytes handed to the sink, in order, each
	// exactly once. On failure it reflects exactly what was sent before
	// the failure.
	BytesStreamed int64

	// Elapsed brackets the active streaming phase.
	Elapsed time.Duration
}

// Loop moves the data region of a stream to a sink in bounded-size chunks.
// The chunk buffer is allocated once and reused across iterations, so
// memory stays constant no matter how large the file is.
type Loop struct {
	buf []byte
}

// NewLoop creates a streaming loop with the given chunk capacity.
// chunkSize must be positive; DefaultChunkSize is a good choice.
func NewLoop(chunkSize int) (*Loop, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkSize)
	}
	return &Loop{buf: make([]byte, chunkSize)}, nil
}

// Run copies exactly dataSize bytes from src to snk, chunk by chunk, and
// reports the byte count and elapsed time. It never reads past dataSize,
// so trailing container bytes after the data chunk stay out of the sink.
//
// A short read before dataSize is exhausted forwards the bytes that did
// arrive, then fails with ErrUnexpectedEndOfStream. A sink write that
// keeps failing past the retry budget fails with ErrSinkWriteFailure.
// Either way Stats stays exact.
func (l *Loop) Run(src io.Reader, snk audio.Sink, dataSize uint32) (stats Stats, err error) {
	remaining := int64(dataSize)
	start := time.Now()
	defer func() { stats.Elapsed = time.Since(start) }()

	for remaining > 0 {
		chunkLen := int64(len(l.buf))
		if remaining < chunkLen {
			// Final short chunk: forwarded as-is, not padded. A
			// fixed-frame backend zero-fills its own tail.
			chunkLen = remaining
		}

		n, readErr := io.ReadFull(src, l.buf[:chunkLen])
		if n > 0 {
			written, writeErr := writeChunk(snk, l.buf[:n])
			stats.BytesStreamed += int64(written)
			remaining -= int64(written)
			if writeErr != nil {
				return stats, writeErr
			}
		}

		if readErr != nil {
			return stats, fmt.Errorf("%w: source ended after %d bytes, %d of %d data bytes streamed: %v",
				ErrUnexpectedEndOfStream, n, stats.BytesStreamed, dataSize, readErr)
		}
	}

	return stats, nil
}

// writeChunk pushes one chunk into the sink, absorbing short writes and up
// to writeRetryBudget transient failures (hardware momentarily busy).
// Returns how many bytes the sink actually accepted.
func writeChunk(snk audio.Sink, p []byte) (int, error) {
	off := 0
	retries := 0

	for off < len(p) {
		n, err := snk.Write(p[off:])
		off += n

		// Any forward progress resets the budget, even when the write
		// also reports an error: only a stalled sink counts against it.
		if n > 0 {
			retries = 0
			if err == nil {
				continue
			}
		}

		retries++
		if retries > writeRetryBudget {
			if err == nil {
				err = fmt.Errorf("sink accepted 0 bytes")
			}
			return off, fmt.Errorf("%w: %d of %d chunk bytes written, gave up after %d retries: %v",
				ErrSinkWriteFailure, off, len(p), writeRetryBudget, err)
		}
	}

	return off, nil
}
