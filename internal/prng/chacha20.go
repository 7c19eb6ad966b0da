package prng

import (
	"crypto/sha256"
	"encoding/hex"
	"math/bits"
)

// ChaCha20PRNG is the V3 PRNG. Despite the name it is not RFC 7539
// ChaCha20 — it's a bespoke 8-lane mixer seeded from a SHA-256 digest.
// The name is kept because every other darkstar implementation calls
// it that, and the wire format depends on this exact sequence of
// outputs being reproducible.
type ChaCha20PRNG struct {
	state   [8]uint32
	counter uint32
}

// NewChaCha20PRNG seeds a generator from the UTF-8 bytes of seed.
func NewChaCha20PRNG(seed string) *ChaCha20PRNG {
	sum := sha256.Sum256([]byte(seed))
	digest := hex.EncodeToString(sum[:])

	var p ChaCha20PRNG
	for i := range p.state {
		lane, _ := parseHexUint32(digest[i*8 : (i+1)*8])
		p.state[i] = lane
	}
	return &p
}

// Next returns the next float in [0, 1).
func (p *ChaCha20PRNG) Next() float64 {
	p.counter++
	c := p.counter
	i0, i1, i2 := c%8, (c+3)%8, (c+5)%8

	x, y, z := p.state[i0], p.state[i1], p.state[i2]

	x += y + c
	z = bits.RotateLeft32(x^z, 16)
	y += z + 3*c
	x = bits.RotateLeft32(x^y, 12)

	p.state[i0], p.state[i1], p.state[i2] = x, y, z

	t := x + y + z
	t = (t ^ (t >> 15)) * (t | 1)
	t2 := (t ^ (t >> 7)) * (t | 61)
	t = (t + t2) ^ t
	t ^= t >> 14
	return float64(t) / 4294967296.0
}

// parseHexUint32 decodes an 8-character hex string into a big-endian
// uint32 without pulling in strconv's broader ParseUint surface.
func parseHexUint32(s string) (uint32, error) {
	var b [4]byte
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}
