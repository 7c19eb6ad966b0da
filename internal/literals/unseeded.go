package literals

import (
	"strconv"
	"strings"

	"github.com/aeondave/darkstar/internal/prng"
)

// reverseTransform is function table entry 0. Self-inverse.
type reverseTransform struct{}

func (reverseTransform) Obfuscate(data, _ []byte, _ prng.Factory) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[len(data)-1-i] = b
	}
	return out
}

func (t reverseTransform) Deobfuscate(data, seed []byte, factory prng.Factory) []byte {
	return t.Obfuscate(data, seed, factory)
}

// atbashTransform is function table entry 1. Self-inverse: mirrors
// A..Z and a..z around the middle of each range, passes other bytes
// through unchanged.
type atbashTransform struct{}

func (atbashTransform) Obfuscate(data, _ []byte, _ prng.Factory) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		switch {
		case b >= 'A' && b <= 'Z':
			out[i] = 'Z' - (b - 'A')
		case b >= 'a' && b <= 'z':
			out[i] = 'z' - (b - 'a')
		default:
			out[i] = b
		}
	}
	return out
}

func (t atbashTransform) Deobfuscate(data, seed []byte, factory prng.Factory) []byte {
	return t.Obfuscate(data, seed, factory)
}

// charCodesTransform is function table entry 2: an intentionally
// expanding transform that renders each byte as its decimal value,
// comma-joined.
type charCodesTransform struct{}

func (charCodesTransform) Obfuscate(data, _ []byte, _ prng.Factory) []byte {
	var b strings.Builder
	for i, v := range data {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	return []byte(b.String())
}

func (charCodesTransform) Deobfuscate(data, _ []byte, _ prng.Factory) []byte {
	return parseDecimalCSV(data, 10)
}

// binaryTransform is function table entry 3: each byte rendered as its
// minimal binary representation (no leading zeros; 0 renders as "0"),
// comma-joined.
type binaryTransform struct{}

func (binaryTransform) Obfuscate(data, _ []byte, _ prng.Factory) []byte {
	var b strings.Builder
	for i, v := range data {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 2))
	}
	return []byte(b.String())
}

func (binaryTransform) Deobfuscate(data, _ []byte, _ prng.Factory) []byte {
	return parseDecimalCSV(data, 2)
}

// parseDecimalCSV is shared by charCodes and binary deobfuscation: it
// splits data on commas and parses each field in the given base,
// matching the reference's fail-safe behavior of returning an empty
// result (rather than panicking) on malformed input.
func parseDecimalCSV(data []byte, base int) []byte {
	s := string(data)
	if s == "" {
		return []byte{}
	}
	fields := strings.Split(s, ",")
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, base, 16)
		if err != nil || v > 255 {
			return []byte{}
		}
		out = append(out, byte(v))
	}
	return out
}

// caesarTransform is function table entry 4: ROT13 over ASCII letters
// only. Self-inverse.
type caesarTransform struct{}

func (caesarTransform) Obfuscate(data, _ []byte, _ prng.Factory) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		switch {
		case b >= 'A' && b <= 'Z':
			out[i] = 'A' + (b-'A'+13)%26
		case b >= 'a' && b <= 'z':
			out[i] = 'a' + (b-'a'+13)%26
		default:
			out[i] = b
		}
	}
	return out
}

func (t caesarTransform) Deobfuscate(data, seed []byte, factory prng.Factory) []byte {
	return t.Obfuscate(data, seed, factory)
}

// swapAdjacentTransform is function table entry 5: swaps bytes in
// pairs (0,1), (2,3), ...; a trailing odd byte is left untouched.
// Self-inverse.
type swapAdjacentTransform struct{}

func (swapAdjacentTransform) Obfuscate(data, _ []byte, _ prng.Factory) []byte {
	out := append([]byte(nil), data...)
	for i := 0; i+1 < len(out); i += 2 {
		out[i], out[i+1] = out[i+1], out[i]
	}
	return out
}

func (t swapAdjacentTransform) Deobfuscate(data, seed []byte, factory prng.Factory) []byte {
	return t.Obfuscate(data, seed, factory)
}
