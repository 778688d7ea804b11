// SPDX-License-Identifier: EPL-2.0

package replaygain

import (
	"fmt"
	"math"

	"github.com/ik5/audsad/utils"
)

// MaxScale bounds any gain derived from metadata (about +23.5 dB).
const MaxScale = 15.0

// GainMode selects which gain pair is used.
type GainMode int

const (
	ModeNone GainMode = iota
	ModeTrack
	ModeAlbum
)

func (m GainMode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeTrack:
		return "track"
	case ModeAlbum:
		return "album"
	}
	return fmt.Sprintf("GainMode(%d)", int(m))
}

// ParseGainMode accepts "none", "track" or "album".
func ParseGainMode(s string) (GainMode, error) {
	switch s {
	case "none", "off", "":
		return ModeNone, nil
	case "track":
		return ModeTrack, nil
	case "album":
		return ModeAlbum, nil
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Info is the ReplayGain metadata of a stream. Gains are in dB, peaks are
// linear. A peak of exactly 0 marks that gain type as absent.
type Info struct {
	Present   bool
	TrackGain float64
	TrackPeak float64
	AlbumGain float64
	AlbumPeak float64
}

// Mode is the user's ReplayGain preference.
type Mode struct {
	Mode               GainMode
	ClippingPrevention bool
	HardLimit          bool
	AdaptiveScaler     bool
	Preamp             float64 // dB
}

// Result is the effective scaling derived from Info and Mode.
type Result struct {
	Scale     float64
	HardLimit bool
	Adaptive  bool
	// Applied is false when no usable gain was found and Scale is unity.
	Applied bool
}

var unity = Result{Scale: 1}

// usable reports whether a gain pair carries a finite gain and a positive,
// finite peak. A zero peak marks the pair as absent.
func usable(gain, peak float64) bool {
	return peak > 0 && !math.IsInf(peak, 1) &&
		!math.IsNaN(gain) && !math.IsInf(gain, 0)
}

// Resolve computes the scale factor and limiter settings for m.
//
// The selected pair falls back to the other one when it is not usable. When
// neither pair is usable, the mode is ModeNone or the info is not present,
// the result is unity gain with the limiter off.
func (i Info) Resolve(m Mode) Result {
	if !i.Present {
		return unity
	}

	var gain, peak float64
	switch m.Mode {
	case ModeTrack:
		gain, peak = i.TrackGain, i.TrackPeak
		if !usable(gain, peak) {
			gain, peak = i.AlbumGain, i.AlbumPeak
		}
	case ModeAlbum:
		gain, peak = i.AlbumGain, i.AlbumPeak
		if !usable(gain, peak) {
			gain, peak = i.TrackGain, i.TrackPeak
		}
	default:
		return unity
	}

	if !usable(gain, peak) {
		return unity
	}

	scale := utils.DBToScale(gain) * utils.DBToScale(m.Preamp)
	if m.ClippingPrevention && scale*peak > 1.0 {
		scale = 1.0 / peak
	}
	if math.IsNaN(scale) {
		return unity
	}
	scale = min(scale, MaxScale)

	return Result{
		Scale:     scale,
		HardLimit: m.HardLimit,
		Adaptive:  m.AdaptiveScaler,
		Applied:   true,
	}
}
