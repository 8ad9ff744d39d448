package playback

import "errors"

var (
	ErrSourceUnavailable     = errors.New("source unavailable")
	ErrSinkConfiguration     = errors.New("sink configuration failed")
	ErrUnexpectedEndOfStream = errors.New("unexpected end of stream")
	ErrSinkWriteFailure      = errors.New("sink write failure")
	ErrSessionReused         = errors.New("session already run")
	ErrInvalidChunkSize      = errors.New("invalid chunk size")
)
