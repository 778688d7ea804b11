// SPDX-License-Identifier: EPL-2.0

package noise

// floatBits is the resolution used for float-domain dither. It is an
// approximation of the usable fractional precision, not a guaranteed bound.
const floatBits = 17

// Generator produces triangular (TPDF) dither noise from a Source.
type Generator struct {
	src Source
}

func NewGenerator(src Source) *Generator {
	if src == nil {
		src = NewRandomPRNG()
	}
	return &Generator{src: src}
}

// Source returns the underlying random source.
func (g *Generator) Source() Source { return g.src }

// Triangular returns noise with a peak-to-peak amplitude of bits bits, i.e.
// a value in (-2^(bits-1), 2^(bits-1)). The noise is the difference of two
// independent uniform draws, so bits must be at least 2; smaller values
// yield 0 and values above 32 are treated as 32.
func (g *Generator) Triangular(bits int) int32 {
	if bits < 2 {
		return 0
	}
	bits = min(bits, 32)

	// Both halves are in [0, 2^31), so v is in (-2^31, 2^31).
	v := int64(g.src.Uint32()>>1) - int64(g.src.Uint32()>>1)
	return int32(v / (int64(1) << (32 - bits)))
}

// TriangularFloat returns triangular noise in (-1, 1), i.e. one unit of
// peak amplitude either side of zero.
func (g *Generator) TriangularFloat() float64 {
	return float64(g.Triangular(floatBits)) / float64(int64(1)<<(floatBits-1))
}
