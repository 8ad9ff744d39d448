package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// MaxChunkSkips bounds how many non-data chunks the parser will skip while
// looking for the data chunk. Anything past that is treated as a malformed
// file rather than scanned open-endedly.
const MaxChunkSkips = 16

// Header holds every field of a canonical RIFF/WAVE PCM header, parsed once
// per file and immutable afterwards.
type Header struct {
	ContainerTag     string // "RIFF"
	DeclaredFileSize uint32 // total container size minus 8, informational
	FormatTag        string // "WAVE"
	FmtChunkID       string // "fmt "
	FmtChunkSize     uint32 // 16 for plain PCM, larger values carry extra bytes
	AudioFormatCode  uint16 // 1 = linear PCM
	ChannelCount     uint16
	SampleRate       uint32
	ByteRate         uint32 // informational, not re-derived
	BlockAlign       uint16 // bytes per sample frame
	BitsPerSample    uint16
	DataChunkID      string // "data"
	DataSize         uint32 // exact number of sample bytes that follow

	// HeaderBytes is how many bytes the parser consumed. The next byte of
	// the source is the first sample byte.
	HeaderBytes int64
}

// Duration reports the playback time of the data region, derived from the
// declared byte rate. Zero if the byte rate is not usable.
func (h *Header) Duration() time.Duration {
	if h.ByteRate == 0 {
		return 0
	}
	return time.Duration(float64(h.DataSize) / float64(h.ByteRate) * float64(time.Second))
}

// ParseHeader decodes a RIFF/WAVE PCM header from r, which must be
// positioned at offset 0. On success the reader is left positioned at the
// first sample-data byte.
//
// The fmt chunk is not assumed to be exactly 16 bytes: any surplus declared
// by FmtChunkSize is skipped. The data chunk is not assumed to follow fmt
// directly: unknown chunks in between are skipped by their declared size,
// up to MaxChunkSkips.
//
// Failures identify what was rejected: ErrTruncatedHeader when fewer bytes
// are available than a field requires, ErrUnsupportedContainer when one of
// the four tags mismatches, ErrUnsupportedFormat when the format code,
// channel count, sample rate or bit depth is outside what the pipeline
// handles.
func ParseHeader(r io.Reader) (*Header, error) {
	p := &parser{r: r}

	hdr := &Header{}

	var err error
	if hdr.ContainerTag, err = p.tag("RIFF"); err != nil {
		return nil, err
	}
	if hdr.DeclaredFileSize, err = p.uint32("declaredFileSize"); err != nil {
		return nil, err
	}
	if hdr.FormatTag, err = p.tag("WAVE"); err != nil {
		return nil, err
	}
	if hdr.FmtChunkID, err = p.tag("fmt "); err != nil {
		return nil, err
	}
	if hdr.FmtChunkSize, err = p.uint32("fmtChunkSize"); err != nil {
		return nil, err
	}
	if hdr.FmtChunkSize < 16 {
		return nil, fmt.Errorf("%w: fmtChunkSize = %d, need at least 16",
			ErrUnsupportedContainer, hdr.FmtChunkSize)
	}
	if hdr.AudioFormatCode, err = p.uint16("audioFormatCode"); err != nil {
		return nil, err
	}
	if hdr.ChannelCount, err = p.uint16("channelCount"); err != nil {
		return nil, err
	}
	if hdr.SampleRate, err = p.uint32("sampleRate"); err != nil {
		return nil, err
	}
	if hdr.ByteRate, err = p.uint32("byteRate"); err != nil {
		return nil, err
	}
	if hdr.BlockAlign, err = p.uint16("blockAlign"); err != nil {
		return nil, err
	}
	if hdr.BitsPerSample, err = p.uint16("bitsPerSample"); err != nil {
		return nil, err
	}

	// Validate the format before touching the rest of the container, so a
	// reject never reaches the data chunk.
	if hdr.AudioFormatCode != 1 {
		return nil, fmt.Errorf("%w: audioFormatCode = %d, only linear PCM (1) is supported",
			ErrUnsupportedFormat, hdr.AudioFormatCode)
	}
	if hdr.ChannelCount != 1 {
		return nil, fmt.Errorf("%w: channelCount = %d, only mono (1) is supported",
			ErrUnsupportedFormat, hdr.ChannelCount)
	}
	if hdr.SampleRate == 0 {
		return nil, fmt.Errorf("%w: sampleRate = 0", ErrUnsupportedFormat)
	}
	switch hdr.BitsPerSample {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: bitsPerSample = %d", ErrUnsupportedFormat, hdr.BitsPerSample)
	}

	// Surplus fmt bytes beyond the 16 PCM fields.
	if surplus := int64(hdr.FmtChunkSize) - 16; surplus > 0 {
		if err := p.skip(surplus, "fmt chunk surplus"); err != nil {
			return nil, err
		}
	}

	// Walk chunks until "data", skipping unknown ones by declared size.
	for skips := 0; ; skips++ {
		if skips > MaxChunkSkips {
			return nil, fmt.Errorf("%w: gave up after %d chunks", ErrTooManyChunks, MaxChunkSkips)
		}

		id, err := p.read4("chunk id")
		if err != nil {
			return nil, err
		}
		size, err := p.uint32("chunk size")
		if err != nil {
			return nil, err
		}
		if string(id[:]) == "data" {
			hdr.DataChunkID = string(id[:])
			hdr.DataSize = size
			break
		}
		// RIFF chunks are word aligned; an odd-sized chunk is followed by
		// one pad byte.
		pad := int64(size) + int64(size&1)
		if err := p.skip(pad, fmt.Sprintf("chunk %q", id[:])); err != nil {
			return nil, err
		}
	}

	hdr.HeaderBytes = p.consumed
	return hdr, nil
}

// parser keeps byte accounting while reading header fields in container
// order.
type parser struct {
	r        io.Reader
	consumed int64
	buf      [4]byte
}

func (p *parser) read4(field string) ([4]byte, error) {
	n, err := io.ReadFull(p.r, p.buf[:])
	p.consumed += int64(n)
	if err != nil {
		return p.buf, fmt.Errorf("%w: reading %s at offset %d: %v",
			ErrTruncatedHeader, field, p.consumed, err)
	}
	return p.buf, nil
}

func (p *parser) tag(want string) (string, error) {
	b, err := p.read4(fmt.Sprintf("tag %q", want))
	if err != nil {
		return "", err
	}
	got := string(b[:])
	if got != want {
		return "", fmt.Errorf("%w: want tag %q, got %q at offset %d",
			ErrUnsupportedContainer, want, got, p.consumed-4)
	}
	return got, nil
}

func (p *parser) uint32(field string) (uint32, error) {
	b, err := p.read4(field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func (p *parser) uint16(field string) (uint16, error) {
	n, err := io.ReadFull(p.r, p.buf[:2])
	p.consumed += int64(n)
	if err != nil {
		return 0, fmt.Errorf("%w: reading %s at offset %d: %v",
			ErrTruncatedHeader, field, p.consumed, err)
	}
	return binary.LittleEndian.Uint16(p.buf[:2]), nil
}

func (p *parser) skip(n int64, what string) error {
	copied, err := io.CopyN(io.Discard, p.r, n)
	p.consumed += copied
	if err != nil {
		return fmt.Errorf("%w: skipping %s (%d of %d bytes) at offset %d",
			ErrTruncatedHeader, what, copied, n, p.consumed)
	}
	return nil
}
