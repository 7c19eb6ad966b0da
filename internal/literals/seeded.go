package literals

import (
	"strconv"
	"strings"

	"github.com/aeondave/darkstar/internal/prng"
)

// seedString turns the seed bytes back into a UTF-8 string for
// handing to a prng.Factory. The seed is always password bytes
// followed by ASCII decimal digits (see the pipeline's checksum
// derivation), so this round-trips without loss.
func seedString(seed []byte) string {
	return string(seed)
}

// shuffleTransform is function table entry 6: a seeded Fisher-Yates
// permutation of the byte slice.
type shuffleTransform struct{}

func (shuffleTransform) Obfuscate(data, seed []byte, factory prng.Factory) []byte {
	out := append([]byte(nil), data...)
	rng := factory(seedString(seed))
	for i := len(out) - 1; i > 0; i-- {
		j := int(rng.Next() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Deobfuscate replays the same Fisher-Yates sequence over an index
// array rather than the bytes directly, then inverts the resulting
// permutation. This is the only way to recover the pre-shuffle order
// without storing it out of band.
func (shuffleTransform) Deobfuscate(data, seed []byte, factory prng.Factory) []byte {
	n := len(data)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	rng := factory(seedString(seed))
	for i := n - 1; i > 0; i-- {
		j := int(rng.Next() * float64(i+1))
		indices[i], indices[j] = indices[j], indices[i]
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[indices[i]] = data[i]
	}
	return out
}

// xorTransform is function table entry 7: a repeating-key XOR.
// Self-inverse.
type xorTransform struct{}

func (xorTransform) Obfuscate(data, seed []byte, _ prng.Factory) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ seed[i%len(seed)]
	}
	return out
}

func (t xorTransform) Deobfuscate(data, seed []byte, factory prng.Factory) []byte {
	return t.Obfuscate(data, seed, factory)
}

// interleaveAlphabet is the pool random padding bytes are drawn from
// by the interleave transform.
const interleaveAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// interleaveTransform is function table entry 8: emits each input
// byte followed by one random filler byte. Deobfuscation simply drops
// every second byte — the filler carries no information, so nothing
// needs to be reconstructed.
type interleaveTransform struct{}

func (interleaveTransform) Obfuscate(data, seed []byte, factory prng.Factory) []byte {
	rng := factory(seedString(seed))
	out := make([]byte, len(data)*2)
	for i, b := range data {
		out[i*2] = b
		idx := int(rng.Next() * float64(len(interleaveAlphabet)))
		out[i*2+1] = interleaveAlphabet[idx]
	}
	return out
}

func (interleaveTransform) Deobfuscate(data, _ []byte, _ prng.Factory) []byte {
	out := make([]byte, len(data)/2)
	for i := range out {
		out[i] = data[i*2]
	}
	return out
}

// vigenereTransform is function table entry 9: an additive (non-
// wrapping) Vigenere cipher rendered as comma-separated decimal sums.
type vigenereTransform struct{}

func (vigenereTransform) Obfuscate(data, seed []byte, _ prng.Factory) []byte {
	var b strings.Builder
	for i, v := range data {
		if i > 0 {
			b.WriteByte(',')
		}
		sum := int(v) + int(seed[i%len(seed)])
		b.WriteString(strconv.Itoa(sum))
	}
	return []byte(b.String())
}

func (vigenereTransform) Deobfuscate(data, seed []byte, _ prng.Factory) []byte {
	s := string(data)
	if s == "" {
		return []byte{}
	}
	fields := strings.Split(s, ",")
	out := make([]byte, 0, len(fields))
	for i, f := range fields {
		if f == "" {
			continue
		}
		combined, err := strconv.Atoi(f)
		if err != nil {
			return []byte{}
		}
		keyCode := int(seed[i%len(seed)])
		out = append(out, byte((combined-keyCode)&0xFF))
	}
	return out
}

// blockReverseTransform is function table entry 10: reverses the
// byte slice in PRNG-sized blocks. Self-inverse because re-seeding the
// PRNG identically reproduces the same block size, and reversing the
// same blocks twice restores the original order.
type blockReverseTransform struct{}

func (blockReverseTransform) blockSize(data []byte, rng prng.Source) int {
	return int(rng.Next()*(float64(len(data))/2.0)) + 2
}

func (t blockReverseTransform) Obfuscate(data, seed []byte, factory prng.Factory) []byte {
	rng := factory(seedString(seed))
	blockSize := t.blockSize(data, rng)

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i += blockSize {
		end := min(i+blockSize, len(data))
		chunk := data[i:end]
		for j := len(chunk) - 1; j >= 0; j-- {
			out = append(out, chunk[j])
		}
	}
	return out
}

func (t blockReverseTransform) Deobfuscate(data, seed []byte, factory prng.Factory) []byte {
	return t.Obfuscate(data, seed, factory)
}

// seededSubTransform is function table entry 11: a PRNG-derived
// 256-entry substitution permutation.
type seededSubTransform struct{}

func (seededSubTransform) permutation(rng prng.Source) [256]byte {
	var perm [256]byte
	for i := range perm {
		perm[i] = byte(i)
	}
	for i := 255; i > 0; i-- {
		j := int(rng.Next() * float64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

func (t seededSubTransform) Obfuscate(data, seed []byte, factory prng.Factory) []byte {
	rng := factory(seedString(seed))
	perm := t.permutation(rng)

	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = perm[b]
	}
	return out
}

func (t seededSubTransform) Deobfuscate(data, seed []byte, factory prng.Factory) []byte {
	rng := factory(seedString(seed))
	perm := t.permutation(rng)

	var inverse [256]byte
	for i, v := range perm {
		inverse[v] = byte(i)
	}

	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = inverse[b]
	}
	return out
}
