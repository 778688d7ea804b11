// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"math/rand/v2"
)

// Source supplies uniformly distributed pseudorandom integers.
type Source interface {
	Uint32() uint32
	Uint64() uint64
}

// PRNG is a seedable permuted congruential generator. It is not safe for
// concurrent use; give every stream its own instance.
type PRNG struct {
	pcg *rand.PCG
}

// NewPRNG returns a generator seeded from seed.
func NewPRNG(seed uint32) *PRNG {
	p := &PRNG{pcg: rand.NewPCG(0, 0)}
	p.Seed(seed)
	return p
}

// NewRandomPRNG returns a generator seeded from the runtime's random source.
func NewRandomPRNG() *PRNG {
	return &PRNG{pcg: rand.NewPCG(rand.Uint64(), rand.Uint64())}
}

// Seed reseeds the generator deterministically from a single integer.
func (p *PRNG) Seed(seed uint32) {
	p.SeedByArray([]uint32{seed})
}

// SeedByArray reseeds the generator deterministically from keys. Every key
// and the key count influence the resulting stream.
func (p *PRNG) SeedByArray(keys []uint32) {
	hi := splitmix64(uint64(len(keys)) ^ 0x6a09e667f3bcc909)
	lo := splitmix64(hi ^ 0xbb67ae8584caa73b)
	for _, k := range keys {
		hi = splitmix64(hi ^ uint64(k))
		lo = splitmix64(lo + uint64(k)<<32 + hi)
	}
	p.pcg.Seed(hi, lo)
}

func (p *PRNG) Uint32() uint32 { return uint32(p.pcg.Uint64() >> 32) }
func (p *PRNG) Uint64() uint64 { return p.pcg.Uint64() }

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
