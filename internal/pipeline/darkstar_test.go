package pipeline

import (
	"bytes"
	"testing"

	"github.com/aeondave/darkstar/internal/prng"
)

func v2Factory(seed string) prng.Source { return prng.NewMulberry32(seed) }
func v3Factory(seed string) prng.Source { return prng.NewChaCha20PRNG(seed) }

func TestObfuscateTokenRoundTripV2(t *testing.T) {
	password := []byte("MySecre!Password123")
	for _, word := range []string{"cat", "dog", "fish", "bird", "", "a"} {
		token := []byte(word)
		obf, rk := ObfuscateToken(password, token, false, v2Factory)
		if len(rk) != 12 {
			t.Fatalf("V2 reverse key length = %d, want 12", len(rk))
		}
		back := DeobfuscateToken(password, obf, rk, false, v2Factory)
		if !bytes.Equal(back, token) {
			t.Fatalf("round trip mismatch for %q: got %q", word, back)
		}
	}
}

func TestObfuscateTokenRoundTripV3(t *testing.T) {
	password := []byte("Strong!Password#2026")
	for _, word := range []string{"apple", "banana", "cherry", "", "a", "elderberry"} {
		token := []byte(word)
		obf, rk := ObfuscateToken(password, token, true, v3Factory)
		if len(rk) < 12 || len(rk) > 64 {
			t.Fatalf("V3 reverse key length = %d, want [12,64]", len(rk))
		}
		back := DeobfuscateToken(password, obf, rk, true, v3Factory)
		if !bytes.Equal(back, token) {
			t.Fatalf("round trip mismatch for %q: got %q", word, back)
		}
	}
}

func TestObfuscateTokenEmptyPassword(t *testing.T) {
	obf, rk := ObfuscateToken(nil, []byte("a"), true, v3Factory)
	back := DeobfuscateToken(nil, obf, rk, true, v3Factory)
	if string(back) != "a" {
		t.Fatalf("round trip with empty password failed: got %q", back)
	}
}

func TestChecksumIsAlways66(t *testing.T) {
	// Both the encrypt-side and decrypt-side checksum formulas must
	// agree on 66, per the design note on checksum asymmetry, because
	// `selected` is always a permutation of 0..11.
	password := []byte("p")
	_, rk := ObfuscateToken(password, []byte("token"), true, v3Factory)
	if got := checksumFromReverseKey(rk, true); got != 66 {
		t.Fatalf("V3 checksum = %d, want 66", got)
	}
	_, rk2 := ObfuscateToken(password, []byte("token"), false, v2Factory)
	if got := checksumFromReverseKey(rk2, false); got != 66 {
		t.Fatalf("V2 checksum = %d, want 66", got)
	}
}
