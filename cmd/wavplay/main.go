package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/embaudio/wavplay"
	"github.com/embaudio/wavplay/audio"
	"github.com/embaudio/wavplay/playback"
	"github.com/embaudio/wavplay/sink"
)

// version is set via ldflags at build time
var version = "dev"

var CLI struct {
	Input     string           `arg:"" name:"input" help:"Input WAV file (linear PCM, mono)"`
	Output    string           `help:"Output backend: portaudio or raw" default:"portaudio"`
	RawFile   string           `help:"Destination for the raw backend; '-' is stdout" default:"-"`
	ChunkSize int              `help:"Streaming chunk size in bytes (0 = default)" default:"0"`
	Debug     bool             `help:"Enable debug logging"`
	Version   kong.VersionFlag `help:"Show version information"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("wavplay"),
		kong.Description("Stream a mono PCM WAV file to an audio output."),
		kong.UsageOnError(),
		kong.Vars{"version": "wavplay " + version},
	)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	snk, err := openSink()
	if err != nil {
		log.Fatal().Err(err).Str("output", CLI.Output).Msg("opening sink")
	}
	defer snk.Close()

	chunkSize := CLI.ChunkSize
	if chunkSize <= 0 {
		chunkSize = playback.DefaultChunkSize
	}

	log.Info().Str("file", CLI.Input).Str("output", CLI.Output).Int("chunk_size", chunkSize).Msg("starting playback")

	report := wavplay.PlayFile(CLI.Input, snk, chunkSize)

	if report.Header != nil {
		hdr := report.Header
		log.Info().
			Str("container", hdr.ContainerTag).
			Str("format", hdr.FormatTag).
			Uint32("declared_file_size", hdr.DeclaredFileSize).
			Uint16("audio_format", hdr.AudioFormatCode).
			Uint16("channels", hdr.ChannelCount).
			Uint32("sample_rate", hdr.SampleRate).
			Uint32("byte_rate", hdr.ByteRate).
			Uint16("block_align", hdr.BlockAlign).
			Uint16("bits_per_sample", hdr.BitsPerSample).
			Uint32("data_size", hdr.DataSize).
			Dur("declared_duration", hdr.Duration()).
			Msg("header")
	}

	if report.Err != nil {
		log.Error().
			Err(report.Err).
			Int64("bytes_streamed", report.BytesStreamed).
			Dur("elapsed", report.Elapsed).
			Msg("playback failed")
		os.Exit(1)
	}

	log.Info().
		Int64("bytes_streamed", report.BytesStreamed).
		Dur("elapsed", report.Elapsed).
		Stringer("outcome", report.Outcome).
		Msg("playback finished")
}

func openSink() (audio.Sink, error) {
	reg := audio.NewRegistry()
	reg.Register("portaudio", func() (audio.Sink, error) {
		return sink.NewPortAudio(), nil
	})
	reg.Register("raw", func() (audio.Sink, error) {
		if CLI.RawFile == "-" {
			return sink.NewWriter(os.Stdout), nil
		}
		f, err := os.Create(CLI.RawFile)
		if err != nil {
			return nil, err
		}
		return sink.NewWriter(f), nil
	})

	factory, ok := reg.Get(CLI.Output)
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (have %v)", CLI.Output, reg.Names())
	}
	return factory()
}
