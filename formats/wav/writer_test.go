package wav

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

func TestWriteWAV16_RoundTripsThroughParser(t *testing.T) {
	t.Parallel()

	samples := []int16{-32768, -100, 0, 100, 32767}
	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	r := bytes.NewReader(buf.Bytes())
	hdr, err := ParseHeader(r)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	if hdr.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", hdr.SampleRate)
	}
	if hdr.ChannelCount != 1 {
		t.Errorf("ChannelCount = %d, want 1", hdr.ChannelCount)
	}
	if hdr.BitsPerSample != 16 {
		t.Errorf("BitsPerSample = %d, want 16", hdr.BitsPerSample)
	}
	if hdr.DataSize != uint32(len(samples)*2) {
		t.Errorf("DataSize = %d, want %d", hdr.DataSize, len(samples)*2)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	for i, want := range samples {
		got := int16(binary.LittleEndian.Uint16(payload[i*2 : i*2+2]))
		if got != want {
			t.Errorf("sample[%d] = %d, want %d", i, got, want)
		}
	}
}

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	if buf.Len() != 44 {
		t.Errorf("wrote %d bytes, want 44 (header only)", buf.Len())
	}

	hdr, err := ParseHeader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}
	if hdr.DataSize != 0 {
		t.Errorf("DataSize = %d, want 0", hdr.DataSize)
	}
}

func TestWriteWAV16_LargePayloadChunking(t *testing.T) {
	t.Parallel()

	// Bigger than the writer's internal chunk so the chunked path runs.
	samples := make([]int16, 20000)
	for i := range samples {
		samples[i] = int16(i)
	}

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 44100, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	if buf.Len() != 44+len(samples)*2 {
		t.Errorf("wrote %d bytes, want %d", buf.Len(), 44+len(samples)*2)
	}
}
