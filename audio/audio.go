// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"

	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/replaygain"
	"github.com/ik5/audsad/sample"
)

type Source interface {
	// Format of the PCM stream: sample format, channels, layout and rate.
	Format() dither.BufferFormat
	// ReadFrames fills dst, laid out as Format, with up to frames frames.
	// Returns number of frames written. When n == 0 with err == io.EOF, the stream is finished.
	ReadFrames(dst sample.Buffer, frames int) (n int, err error)

	// BufSize is the preferred number of frames per read.
	BufSize() int

	// Close releases any resources.
	Close() error
}

// GainReporter is implemented by sources that carry ReplayGain metadata.
type GainReporter interface {
	ReplayGain() replaygain.Info
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg vorbis").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered format keys in no particular order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	return keys
}
