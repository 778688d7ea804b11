// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math"

	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/sample"
	"github.com/ik5/audsad/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Channel holds the statistics of one channel. Levels are normalised so
// that integer full scale is 1.0.
type Channel struct {
	Mean   float64
	StdDev float64
	// Peak is the largest absolute level.
	Peak    float64
	PeakDB  float64
	RMS     float64
	RMSDB   float64
	Clipped int
}

// Report is the result of Analyze.
type Report struct {
	Format   dither.BufferFormat
	Frames   int
	Channels []Channel
}

func (r Report) String() string {
	s := fmt.Sprintf("%v, %d frames", r.Format, r.Frames)
	for i, c := range r.Channels {
		s += fmt.Sprintf("\n  ch%d: mean %+.5f std %.5f peak %.2f dBFS rms %.2f dBFS clipped %d",
			i, c.Mean, c.StdDev, c.PeakDB, c.RMSDB, c.Clipped)
	}
	return s
}

// Analyze computes per-channel statistics over the first frames frames of
// buf. Integer samples at the lowest or highest code count as clipped, as
// do float samples at or beyond ±1.
func Analyze(buf sample.Buffer, format dither.BufferFormat, frames int) (Report, error) {
	if format.Channels < 1 {
		return Report{}, dither.ErrInvalidChannels
	}
	if frames < 0 {
		return Report{}, dither.ErrInvalidFrameCount
	}
	if n := format.Frames(buf); n < frames {
		return Report{}, fmt.Errorf("%w: buffer holds %d of %d frames", dither.ErrBufferTooShort, n, frames)
	}

	read, err := reader(format)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Format: format, Frames: frames, Channels: make([]Channel, format.Channels)}
	if frames == 0 {
		return rep, nil
	}

	xs := make([]float64, frames)
	for c := range format.Channels {
		clipped := 0
		for i := range frames {
			x, clip := read(buf, c, i)
			xs[i] = x
			if clip {
				clipped++
			}
		}
		rep.Channels[c] = channelStats(xs, clipped)
	}

	return rep, nil
}

func channelStats(xs []float64, clipped int) Channel {
	var ch Channel
	if len(xs) > 1 {
		ch.Mean, ch.StdDev = stat.MeanStdDev(xs, nil)
	} else {
		ch.Mean = xs[0]
	}

	ch.Peak = math.Max(floats.Max(xs), -floats.Min(xs))
	ch.RMS = floats.Norm(xs, 2) / math.Sqrt(float64(len(xs)))
	ch.PeakDB = utils.ScaleToDB(ch.Peak)
	ch.RMSDB = utils.ScaleToDB(ch.RMS)
	ch.Clipped = clipped
	return ch
}

type readFunc func(b sample.Buffer, ch, i int) (float64, bool)

// reader returns a function that reads one normalised sample and reports
// whether it sits on the format's limits.
func reader(f dither.BufferFormat) (readFunc, error) {
	if f.Format.IsFloat() {
		if !f.Order.Valid() {
			return nil, sample.ErrUnsupportedOrder
		}
		return func(b sample.Buffer, ch, i int) (float64, bool) {
			var x float64
			if f.Order == sample.Interleaved {
				x = float64(b.Floats[0][i*f.Channels+ch])
			} else {
				x = float64(b.Floats[ch][i])
			}
			return x, math.Abs(x) >= 1
		}, nil
	}

	acc, err := sample.Lookup(f.Format, f.Order)
	if err != nil {
		return nil, err
	}

	var full float64
	lo, hi := int32(math.MinInt32), int32(math.MaxInt32)
	if f.Format.IsFixed() {
		if f.FracBits < 0 || f.FracBits > 31 {
			return nil, fmt.Errorf("%w: %d fractional bits", dither.ErrUnsupportedInputFormat, f.FracBits)
		}
		full = float64(int64(1) << f.FracBits)
	} else {
		bits := f.Format.Bits()
		full = float64(int64(1) << (bits - 1))
		lo, hi = int32(-full), int32(full-1)
	}

	return func(b sample.Buffer, ch, i int) (float64, bool) {
		v := acc.Get(b, f.Channels, ch, i)
		return float64(v) / full, v <= lo || v >= hi
	}, nil
}
