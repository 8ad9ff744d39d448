package wav

import "errors"

var (
	ErrTruncatedHeader      = errors.New("truncated WAV header")
	ErrUnsupportedContainer = errors.New("unsupported container")
	ErrUnsupportedFormat    = errors.New("unsupported audio format")
	ErrTooManyChunks        = errors.New("too many chunks before data")
)
