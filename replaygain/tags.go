// SPDX-License-Identifier: EPL-2.0

package replaygain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tag names as written by Vorbis comments, FLAC and APEv2 tags. Keys are
// matched case-insensitively.
const (
	TagTrackGain = "REPLAYGAIN_TRACK_GAIN"
	TagTrackPeak = "REPLAYGAIN_TRACK_PEAK"
	TagAlbumGain = "REPLAYGAIN_ALBUM_GAIN"
	TagAlbumPeak = "REPLAYGAIN_ALBUM_PEAK"

	// Pre-standard tags written by early Vorbis taggers.
	tagLegacyRadio      = "RG_RADIO"
	tagLegacyAudiophile = "RG_AUDIOPHILE"
	tagLegacyPeak       = "RG_PEAK"
)

// FromComments builds Info from "KEY=value" comment strings.
func FromComments(comments []string) Info {
	tags := make(map[string]string, len(comments))
	for _, c := range comments {
		k, v, ok := strings.Cut(c, "=")
		if !ok {
			continue
		}
		addTag(tags, k, v)
	}
	return fromTags(tags)
}

// FromPairs builds Info from key/value pairs such as FLAC's VORBIS_COMMENT
// block.
func FromPairs(pairs [][2]string) Info {
	tags := make(map[string]string, len(pairs))
	for _, p := range pairs {
		addTag(tags, p[0], p[1])
	}
	return fromTags(tags)
}

// first occurrence wins
func addTag(tags map[string]string, k, v string) {
	k = strings.ToUpper(strings.TrimSpace(k))
	if _, ok := tags[k]; !ok {
		tags[k] = v
	}
}

func fromTags(tags map[string]string) Info {
	lookup := func(keys ...string) (float64, bool) {
		for _, k := range keys {
			v, ok := tags[k]
			if !ok {
				continue
			}
			f, err := ParseValue(v)
			if err != nil {
				continue
			}
			return f, true
		}
		return 0, false
	}

	var info Info

	if g, ok := lookup(TagTrackGain, tagLegacyRadio); ok {
		info.Present = true
		info.TrackGain = g
		info.TrackPeak = 1
		if p, ok := lookup(TagTrackPeak, tagLegacyPeak); ok && p > 0 {
			info.TrackPeak = p
		}
	}

	if g, ok := lookup(TagAlbumGain, tagLegacyAudiophile); ok {
		info.Present = true
		info.AlbumGain = g
		info.AlbumPeak = 1
		if p, ok := lookup(TagAlbumPeak); ok && p > 0 {
			info.AlbumPeak = p
		}
	}

	return info
}

// ParseValue parses a gain or peak such as "-6.48 dB", "+3.2dB" or "0.988525".
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.EqualFold(s[len(s)-2:], "db") {
		s = strings.TrimSpace(s[:len(s)-2])
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return f, nil
}
