// SPDX-License-Identifier: EPL-2.0

package dither

import (
	"fmt"
	"sync"

	"github.com/ik5/audsad/noise"
	"github.com/ik5/audsad/replaygain"
	"github.com/ik5/audsad/sample"
)

// Converter converts PCM buffers between two BufferFormats with rounding,
// triangular dither, scaling and optional limiting.
//
// A Converter owns its noise generator and is not safe for concurrent use.
// Settings may be changed between ProcessBuffer calls.
type Converter struct {
	in  BufferFormat
	out BufferFormat

	inBits   int
	inFrac   int
	outBits  int
	channels int

	get sample.Accessor
	put sample.Accessor

	noise *noise.Generator

	dither    bool
	hardLimit bool
	adaptive  bool
	scale     float64
	rgScale   float64
	closed    bool
}

// Option configures a Converter at construction.
type Option func(*Converter)

// WithRand makes the converter draw dither noise from src.
func WithRand(src noise.Source) Option {
	return func(c *Converter) {
		if src != nil {
			c.noise = noise.NewGenerator(src)
		}
	}
}

// WithSeed seeds the converter's own generator deterministically.
func WithSeed(seed uint32) Option {
	return func(c *Converter) {
		c.noise = noise.NewGenerator(noise.NewPRNG(seed))
	}
}

func WithScale(scale float64) Option {
	return func(c *Converter) { c.scale = scale }
}

func WithDither(enabled bool) Option {
	return func(c *Converter) { c.dither = enabled }
}

func WithHardLimit(enabled bool) Option {
	return func(c *Converter) { c.hardLimit = enabled }
}

// New validates both formats and resolves their sample accessors. Float
// sides need no accessor. The converter starts with unity scale, dither on
// and the limiter off.
func New(in, out BufferFormat, opts ...Option) (*Converter, error) {
	if in.Channels < 1 {
		return nil, ErrInvalidChannels
	}
	if out.Channels != in.Channels {
		return nil, fmt.Errorf("%w: %d != %d", ErrChannelMismatch, in.Channels, out.Channels)
	}

	c := &Converter{
		in:       in,
		out:      out,
		channels: in.Channels,
		dither:   true,
		scale:    1,
		rgScale:  1,
	}

	if err := c.resolveInput(); err != nil {
		return nil, err
	}
	if err := c.resolveOutput(); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.noise == nil {
		c.noise = noise.NewGenerator(defaultSource())
	}

	return c, nil
}

func (c *Converter) resolveInput() error {
	f := c.in
	if !f.Order.Valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedInputFormat, f.Order)
	}

	switch {
	case f.Format.IsFloat():
		return nil
	case f.Format.IsFixed():
		if f.FracBits < 1 || f.FracBits > 31 {
			return fmt.Errorf("%w: fixed-point with %d fractional bits", ErrUnsupportedInputFormat, f.FracBits)
		}
		c.inFrac = f.FracBits
	default:
		c.inBits = f.bits()
	}

	acc, err := sample.Lookup(f.Format, f.Order)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedInputFormat, err)
	}
	c.get = acc
	return nil
}

func (c *Converter) resolveOutput() error {
	f := c.out
	if !f.Order.Valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedOutputFormat, f.Order)
	}

	switch {
	case f.Format.IsFloat():
		return nil
	case f.Format.IsFixed():
		return fmt.Errorf("%w: %v", ErrUnsupportedOutputFormat, f.Format)
	}

	acc, err := sample.Lookup(f.Format, f.Order)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedOutputFormat, err)
	}
	c.outBits = f.bits()
	c.put = acc
	return nil
}

// Close releases the converter. Further ProcessBuffer calls fail.
func (c *Converter) Close() error {
	c.closed = true
	c.get = nil
	c.put = nil
	return nil
}

// SetScale sets the manual linear gain. The range is not checked: 0 mutes
// and values above 1 may drive the output into clipping.
func (c *Converter) SetScale(scale float64) { c.scale = scale }

// SetDither toggles dithering. Without dither precision-reducing
// conversions are still rounded to nearest.
func (c *Converter) SetDither(enabled bool) { c.dither = enabled }

// SetHardLimit enables the soft limiter independently of ReplayGain.
func (c *Converter) SetHardLimit(enabled bool) { c.hardLimit = enabled }

// ApplyReplayGain derives the ReplayGain scale and limiter settings from
// info and mode. Missing or unusable metadata resets to unity gain with the
// limiter off.
func (c *Converter) ApplyReplayGain(info replaygain.Info, mode replaygain.Mode) error {
	if c.closed {
		return ErrClosed
	}

	res := info.Resolve(mode)
	c.rgScale = res.Scale
	c.hardLimit = res.HardLimit
	c.adaptive = res.Adaptive
	return nil
}

func (c *Converter) Scale() float64           { return c.scale }
func (c *Converter) ReplayGainScale() float64 { return c.rgScale }
func (c *Converter) Dither() bool             { return c.dither }
func (c *Converter) HardLimit() bool          { return c.hardLimit }
func (c *Converter) Adaptive() bool           { return c.adaptive }

func (c *Converter) InputFormat() BufferFormat  { return c.in }
func (c *Converter) OutputFormat() BufferFormat { return c.out }

var (
	seedMu  sync.Mutex
	seedGen *noise.PRNG
)

// InitRand makes converters created afterwards without WithRand or WithSeed
// derive their generators deterministically from seed. Each converter still
// owns an independent generator.
func InitRand(seed uint32) {
	seedMu.Lock()
	defer seedMu.Unlock()

	seedGen = noise.NewPRNG(seed)
}

func defaultSource() noise.Source {
	seedMu.Lock()
	defer seedMu.Unlock()

	if seedGen == nil {
		return noise.NewRandomPRNG()
	}

	p := noise.NewPRNG(0)
	p.SeedByArray([]uint32{seedGen.Uint32(), seedGen.Uint32(), seedGen.Uint32(), seedGen.Uint32()})
	return p
}
