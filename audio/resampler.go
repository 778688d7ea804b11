// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/sample"
	"github.com/ik5/audsad/utils"
)

// lowpassAlpha is the coefficient of the one-pole filter run over the input
// when downsampling.
const lowpassAlpha = 0.5

// Resampler changes the sample rate of src with 4-point cubic
// interpolation. Output is interleaved float with src's channel count;
// integer sources are converted to float first. When downsampling the input
// goes through a one-pole low-pass filter to reduce aliasing.
type Resampler struct {
	src      Source
	format   dither.BufferFormat
	channels int
	step     float64 // input frames per output frame

	lowpass  bool
	lpPrimed bool
	lpState  []float32

	// block read from src
	in     []float32
	inLen  int // frames
	inPos  int
	srcEOF bool

	// win holds the frames at t-1, t, t+1 and t+2 around the read position,
	// which lies pos of the way from win[1] to win[2]. live marks frames
	// that came from the source rather than edge padding.
	win     [4][]float32
	live    [4]bool
	pos     float64
	started bool
	done    bool
}

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 {
		return nil, fmt.Errorf("resampler: %w: %d", ErrInvalidSampleRate, dstRate)
	}

	src, err := AsFloat(src)
	if err != nil {
		return nil, fmt.Errorf("resampler: %w", err)
	}

	in := src.Format()
	if in.Channels < 1 {
		return nil, fmt.Errorf("resampler: %w", dither.ErrInvalidChannels)
	}
	if in.SampleRate <= 0 {
		return nil, fmt.Errorf("resampler: %w: source rate %d", ErrInvalidSampleRate, in.SampleRate)
	}

	out := FloatFormat(in)
	out.SampleRate = dstRate

	block := src.BufSize()
	if block <= 0 {
		block = 4096
	}

	r := &Resampler{
		src:      src,
		format:   out,
		channels: in.Channels,
		step:     float64(in.SampleRate) / float64(dstRate),
		lowpass:  in.SampleRate > dstRate,
		lpState:  make([]float32, in.Channels),
		in:       make([]float32, block*in.Channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, in.Channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int             { return r.format.SampleRate }
func (r *Resampler) Channels() int               { return r.channels }
func (r *Resampler) BufSize() int                { return r.src.BufSize() }
func (r *Resampler) Format() dither.BufferFormat { return r.format }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadFrames implements Source on top of ReadSamples.
func (r *Resampler) ReadFrames(dst sample.Buffer, frames int) (int, error) {
	buf, err := floatFrames(dst, r.channels, frames)
	if err != nil {
		return 0, err
	}
	n, err := r.ReadSamples(buf)
	return n / r.channels, err
}

// ReadSamples fills dst with interleaved samples at the output rate and
// returns the number of values written. len(dst) must be a multiple of the
// channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.done {
		return 0, io.EOF
	}

	if !r.started {
		if err := r.prime(); err != nil {
			return 0, r.finish(err)
		}
	}

	ch := r.channels
	want := len(dst) / ch
	n := 0
	for n < want {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return n * ch, r.finish(err)
			}
		}
		if !r.live[1] {
			return n * ch, r.finish(io.EOF)
		}

		x := float32(r.pos)
		for c := range ch {
			dst[n*ch+c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}
		n++
		r.pos += r.step
	}

	return n * ch, nil
}

// finish marks the stream as ended on io.EOF and passes err through.
func (r *Resampler) finish(err error) error {
	if err == io.EOF {
		r.done = true
	}
	return err
}

// prime fills the window so the first output frame lands on the first
// input frame. The missing frame before it repeats the first one.
func (r *Resampler) prime() error {
	r.started = true

	ok, err := r.next(r.win[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.win[0], r.win[1])
	r.live[1] = true

	for i := 2; i < 4; i++ {
		if err := r.load(i); err != nil {
			return err
		}
	}
	return nil
}

// advance slides the window one input frame forward.
func (r *Resampler) advance() error {
	for i := range 3 {
		copy(r.win[i], r.win[i+1])
		r.live[i] = r.live[i+1]
	}
	return r.load(3)
}

// load puts the next input frame into win[i], or repeats win[i-1] once the
// source is exhausted.
func (r *Resampler) load(i int) error {
	ok, err := r.next(r.win[i])
	if err != nil {
		return err
	}
	r.live[i] = ok
	if !ok {
		copy(r.win[i], r.win[i-1])
	}
	return nil
}

// next copies the next filtered input frame into frame. It reports false
// when the source has no more frames.
func (r *Resampler) next(frame []float32) (bool, error) {
	for r.inPos >= r.inLen {
		if r.srcEOF {
			return false, nil
		}

		n, err := ReadSamples(r.src, r.in)
		r.inLen, r.inPos = n/r.channels, 0
		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	ch := r.channels
	copy(frame, r.in[r.inPos*ch:(r.inPos+1)*ch])
	r.inPos++

	if r.lowpass {
		// The filter starts from the first frame so there is no ramp-in.
		if !r.lpPrimed {
			copy(r.lpState, frame)
			r.lpPrimed = true
		}
		for c := range ch {
			frame[c] = lowpassAlpha*frame[c] + (1-lowpassAlpha)*r.lpState[c]
			r.lpState[c] = frame[c]
		}
	}
	return true, nil
}
