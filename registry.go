// SPDX-License-Identifier: EPL-2.0

package audsad

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ik5/audsad/audio"
	"github.com/ik5/audsad/formats/aiff"
	"github.com/ik5/audsad/formats/flac"
	"github.com/ik5/audsad/formats/mp3"
	"github.com/ik5/audsad/formats/vorbis"
	"github.com/ik5/audsad/formats/wav"
)

// NewRegistry returns a registry holding every decoder of the formats
// packages, keyed by lower case file extension without the dot.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})
	return reg
}

// DecoderFor picks the decoder for name by its extension.
func DecoderFor(reg *audio.Registry, name string) (audio.Decoder, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))

	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}
	return dec, nil
}
