// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming pipeline around the dither engine.
//
// This package contains the building blocks that move PCM between
// decoders and the converter:
//   - Source interface for audio input
//   - DitherStage for sample format conversion
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    Format() dither.BufferFormat
//	    ReadFrames(dst sample.Buffer, frames int) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// A source yields PCM in its native format: a WAV decoder produces the
// file's integer samples, a Vorbis decoder produces floats. Sources that
// know their ReplayGain implement GainReporter.
//
// # Format Conversion
//
// DitherStage wraps a Source and converts it to another format:
//
//	out := dither.BufferFormat{Format: sample.FormatS16LE}
//	stage, err := audio.NewDitherStage(src, out, replaygain.Mode{Mode: replaygain.ModeTrack})
//
// # Resampling and Mixing
//
// Resampler and MonoMixer work on interleaved float samples. Integer sources
// are wrapped in a DitherStage producing floats automatically:
//
//	resampler, err := audio.NewResampler(source, 16000)
//	mono, err := audio.NewMonoMixer(resampler)
//
// # Error Handling
//
// Audio processing functions return io.EOF when no more data is available.
// Other errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadFrames(buf, frames)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n frames from buf
//	}
package audio
