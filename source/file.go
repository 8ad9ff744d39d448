package source

import (
	"fmt"
	"os"
)

// File is a file-backed sequential byte source. It satisfies audio.Source.
type File struct {
	f    *os.File
	size int64
}

// OpenFile opens path for sequential reading and records its total size.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w", err)
	}

	return &File{f: f, size: info.Size()}, nil
}

func (s *File) Read(p []byte) (int, error) {
	return s.f.Read(p)
}

// Size returns the total file length in bytes.
func (s *File) Size() int64 {
	return s.size
}

func (s *File) Close() error {
	return s.f.Close()
}
