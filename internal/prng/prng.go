// Package prng implements the two seedable, uniform-float-in-[0,1)
// generators darkstar uses to drive obfuscation: Mulberry32 for the V2
// wire format and a bespoke 8-lane mixer (named, misleadingly,
// ChaCha20PRNG) for V3. Neither is a general-purpose RNG — both exist
// solely to be replayed bit-for-bit by every darkstar implementation
// given the same seed string.
package prng

// Source produces a deterministic stream of floats in [0, 1).
type Source interface {
	Next() float64
}

// Factory builds a Source from a UTF-8 seed string. The obfuscation
// pipeline passes one of these down into seeded transforms so they can
// construct a fresh, independently-seeded generator without knowing
// which concrete algorithm (Mulberry32 or the V3 mixer) is in play.
type Factory func(seed string) Source
