// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"

	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/replaygain"
	"github.com/ik5/audsad/sample"
)

// PCMSource replays fixed integer samples in any integer sample format.
// Values are interleaved and centred (0 is silence) regardless of the
// format's signedness or layout.
type PCMSource struct {
	format  dither.BufferFormat
	vals    []int32
	pos     int // frames
	bufSize int
	gain    replaygain.Info
	closed  bool
}

func NewPCMSource(format dither.BufferFormat, vals []int32) *PCMSource {
	return &PCMSource{format: format, vals: vals, bufSize: 4096}
}

// WithReplayGain makes the source report info as its ReplayGain metadata.
func (p *PCMSource) WithReplayGain(info replaygain.Info) *PCMSource {
	p.gain = info
	return p
}

// WithBufSize overrides the preferred read size.
func (p *PCMSource) WithBufSize(frames int) *PCMSource {
	p.bufSize = frames
	return p
}

func (p *PCMSource) Format() dither.BufferFormat { return p.format }
func (p *PCMSource) BufSize() int                { return p.bufSize }
func (p *PCMSource) ReplayGain() replaygain.Info { return p.gain }
func (p *PCMSource) Closed() bool                { return p.closed }

func (p *PCMSource) Close() error {
	p.closed = true
	return nil
}

func (p *PCMSource) ReadFrames(dst sample.Buffer, frames int) (int, error) {
	ch := p.format.Channels
	total := len(p.vals) / ch
	if p.pos >= total {
		return 0, io.EOF
	}

	acc, err := sample.Lookup(p.format.Format, p.format.Order)
	if err != nil {
		return 0, err
	}

	n := min(frames, total-p.pos)
	for i := range n {
		for c := range ch {
			acc.Put(dst, p.vals[(p.pos+i)*ch+c], ch, c, i)
		}
	}
	p.pos += n

	if p.pos >= total {
		return n, io.EOF
	}
	return n, nil
}
