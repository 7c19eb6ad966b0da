package pipeline

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"

	"github.com/aeondave/darkstar/internal/literals"
	"github.com/aeondave/darkstar/internal/prng"
)

// tokenContext carries one token through the four-stage fold described
// in the spec's pipeline section: derive function order, derive cycle
// depth, derive the checksum seed, then fold the obfuscator table over
// the token's bytes. It is threaded through Pipeline[C] as C.
type tokenContext struct {
	password []byte
	token    []byte
	isV3     bool
	factory  prng.Factory

	selected     [literals.Count]int
	depth        int
	combinedSeed []byte

	current    []byte
	reverseKey []int
}

func deriveOrderStep(ctx *tokenContext) error {
	for i := range ctx.selected {
		ctx.selected[i] = i
	}
	rng := ctx.factory(string(ctx.password) + string(ctx.token))
	for i := len(ctx.selected) - 1; i > 0; i-- {
		j := int(rng.Next() * float64(i+1))
		ctx.selected[i], ctx.selected[j] = ctx.selected[j], ctx.selected[i]
	}
	return nil
}

func deriveDepthStep(ctx *tokenContext) error {
	if !ctx.isV3 {
		ctx.depth = literals.Count
		return nil
	}
	sum := sha256.Sum256(append(append([]byte(nil), ctx.password...), ctx.token...))
	d := binary.BigEndian.Uint16(sum[:2])
	ctx.depth = literals.Count + int(d%53)
	return nil
}

func deriveChecksumStep(ctx *tokenContext) error {
	checksum := 0
	for _, v := range ctx.selected {
		checksum += v
	}
	checksum %= 997
	ctx.combinedSeed = append(append([]byte(nil), ctx.password...), []byte(strconv.Itoa(checksum))...)
	return nil
}

func foldStep(ctx *tokenContext) error {
	ctx.current = append([]byte(nil), ctx.token...)
	ctx.reverseKey = make([]int, 0, ctx.depth)

	for i := 0; i < ctx.depth; i++ {
		idx := ctx.selected[i%literals.Count]
		if ctx.isV3 && i >= literals.Count {
			switch idx {
			case 2, 3, 8, 9:
				idx = (idx + 2) % literals.Count
			}
		}

		tr := literals.At(idx)
		if literals.Seeded(idx) {
			ctx.current = tr.Obfuscate(ctx.current, ctx.combinedSeed, ctx.factory)
		} else {
			ctx.current = tr.Obfuscate(ctx.current, nil, ctx.factory)
		}
		ctx.reverseKey = append(ctx.reverseKey, idx)
	}
	return nil
}

// ObfuscateToken runs the encrypt-side fold of §4.3 over a single
// token and returns its obfuscated bytes plus the reverse-key list
// that must accompany it to decrypt.
func ObfuscateToken(password, token []byte, isV3 bool, factory prng.Factory) (obfuscated []byte, reverseKey []int) {
	ctx := &tokenContext{password: password, token: token, isV3: isV3, factory: factory}

	p := New[*tokenContext]()
	p.Add(NewFuncStep("derive-order", deriveOrderStep))
	p.Add(NewFuncStep("derive-depth", deriveDepthStep))
	p.Add(NewFuncStep("derive-checksum", deriveChecksumStep))
	p.Add(NewFuncStep("fold", foldStep))

	// None of the fold stages can fail; darkstar's obfuscators are
	// total functions over their inputs.
	_ = p.Execute(ctx)

	return ctx.current, ctx.reverseKey
}

// DeobfuscateToken runs the decrypt-side fold: the checksum seed is
// rederived from the recorded reverse key (not from the original
// selection — see the checksum-asymmetry design note), then the
// deobfuscator table is applied in reverse order of the recorded
// indices.
func DeobfuscateToken(password, obfuscated []byte, reverseKey []int, isV3 bool, factory prng.Factory) []byte {
	checksum := checksumFromReverseKey(reverseKey, isV3)
	combinedSeed := append(append([]byte(nil), password...), []byte(strconv.Itoa(checksum))...)

	current := append([]byte(nil), obfuscated...)
	for j := len(reverseKey) - 1; j >= 0; j-- {
		idx := reverseKey[j]
		tr := literals.At(idx)
		if literals.Seeded(idx) {
			current = tr.Deobfuscate(current, combinedSeed, factory)
		} else {
			current = tr.Deobfuscate(current, nil, factory)
		}
	}
	return current
}

// checksumFromReverseKey reproduces the decrypt-side checksum formula.
// V2 sums every recorded index (always exactly 12, a full permutation
// of 0..11). V3 deduplicates the first 12 entries preserving first
// occurrence before summing; since those 12 are always a permutation
// of 0..11 by construction the two formulas agree (both total 66), but
// the dedup step must be preserved for forward compatibility with
// checksum variants, per the spec's design notes.
func checksumFromReverseKey(reverseKey []int, isV3 bool) int {
	if !isV3 {
		sum := 0
		for _, v := range reverseKey {
			sum += v
		}
		return sum % 997
	}

	first12 := reverseKey
	if len(first12) > literals.Count {
		first12 = first12[:literals.Count]
	}
	seen := make(map[int]bool, literals.Count)
	sum := 0
	for _, v := range first12 {
		if seen[v] {
			continue
		}
		seen[v] = true
		sum += v
	}
	return sum % 997
}
