// Package sink provides audio.Sink backends.
//
// PortAudio renders through the default output device; its blocking write
// provides the backpressure that paces the streaming loop. Writer forwards
// raw PCM bytes to any io.Writer, which is handy for dumping payloads and
// for running the pipeline in tests without a sound device.
package sink
