// Package literals implements the 12-entry obfuscation/deobfuscation
// function table that darkstar folds over each mnemonic token. The
// package name and the obfuscator/table shape are carried over from
// the teacher's literal-obfuscation package: there, a table of
// strategies transforms Go string literals into self-decoding AST;
// here the same table shape transforms token bytes directly, since
// the wire format — not a compiled binary — is what must decode them
// later.
package literals

import "github.com/aeondave/darkstar/internal/prng"

// Count is the number of entries in the function table (indices 0..11).
const Count = 12

// FirstSeededIndex is the lowest index requiring a seed and PRNG
// factory; everything below it is unseeded.
const FirstSeededIndex = 6

// Seeded reports whether the transform at idx requires seed material.
func Seeded(idx int) bool {
	return idx >= FirstSeededIndex
}

// Transform is one entry of the function table: a byte-slice transform
// paired with its inverse. Unseeded transforms ignore seed and factory.
type Transform interface {
	Obfuscate(data []byte, seed []byte, factory prng.Factory) []byte
	Deobfuscate(data []byte, seed []byte, factory prng.Factory) []byte
}

// table is the ordered, fixed function list indexed 0..11.
var table = [Count]Transform{
	0:  reverseTransform{},
	1:  atbashTransform{},
	2:  charCodesTransform{},
	3:  binaryTransform{},
	4:  caesarTransform{},
	5:  swapAdjacentTransform{},
	6:  shuffleTransform{},
	7:  xorTransform{},
	8:  interleaveTransform{},
	9:  vigenereTransform{},
	10: blockReverseTransform{},
	11: seededSubTransform{},
}

// At returns the transform registered at idx. idx must be in [0, Count).
func At(idx int) Transform {
	return table[idx]
}
