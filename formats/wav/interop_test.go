package wav_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	gowav "github.com/go-audio/wav"

	"github.com/embaudio/wavplay/formats/wav"
	"github.com/embaudio/wavplay/internal/audiotest"
)

// Headers written by the independent go-audio encoder must parse to the
// same parameters the encoder was given.
func TestParseHeader_GoAudioEncodedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fixture.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	samples := make([]int16, 2205) // 50ms at 44.1kHz
	for i := range samples {
		samples[i] = int16(i*13 - 1000)
	}
	if err := audiotest.EncodeWAV(f, 44100, samples); err != nil {
		t.Fatalf("EncodeWAV() error = %v", err)
	}
	f.Close()

	rf, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rf.Close()

	hdr, err := wav.ParseHeader(rf)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	if hdr.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", hdr.SampleRate)
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
}

// Files written by WriteWAV16 must be readable by the independent go-audio
// decoder.
func TestWriteWAV16_GoAudioDecodesIt(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200, 300, -300}
	var buf bytes.Buffer
	if err := wav.WriteWAV16(&buf, 16000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	dec := gowav.NewDecoder(bytes.NewReader(buf.Bytes()))
	if !dec.IsValidFile() {
		t.Fatal("go-audio decoder rejected WriteWAV16 output")
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}
	if dec.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", dec.SampleRate)
	}
	if dec.NumChans != 1 {
		t.Errorf("NumChans = %d, want 1", dec.NumChans)
	}
	if len(pcm.Data) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(pcm.Data), len(samples))
	}
	for i, want := range samples {
		if pcm.Data[i] != int(want) {
			t.Errorf("sample[%d] = %d, want %d", i, pcm.Data[i], want)
		}
	}
}
