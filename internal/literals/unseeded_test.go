package literals

import (
	"bytes"
	"testing"

	"github.com/aeondave/darkstar/internal/prng"
)

func noFactory(string) prng.Source { panic("unseeded transform must not touch the prng factory") }

func TestUnseededSelfInverse(t *testing.T) {
	cases := []struct {
		name string
		idx  int
	}{
		{"reverse", 0},
		{"atbash", 1},
		{"caesar", 4},
		{"swapAdjacent", 5},
	}
	samples := [][]byte{
		{},
		{0x41},
		[]byte("Hello, World!"),
		[]byte("The Quick Brown Fox"),
		{0x00, 0x01, 0xFF, 0xFE},
	}

	for _, tc := range cases {
		for _, data := range samples {
			tr := At(tc.idx)
			obf := tr.Obfuscate(append([]byte(nil), data...), nil, noFactory)
			back := tr.Deobfuscate(obf, nil, noFactory)
			if !bytes.Equal(back, data) {
				t.Fatalf("%s: round trip mismatch for %q: got %q", tc.name, data, back)
			}
		}
	}
}

func TestAtbashMirror(t *testing.T) {
	tr := At(1)
	got := tr.Obfuscate([]byte("AZaz09"), nil, noFactory)
	want := []byte("ZAza09")
	if !bytes.Equal(got, want) {
		t.Fatalf("atbash(%q) = %q, want %q", "AZaz09", got, want)
	}
}

func TestCaesarROT13(t *testing.T) {
	tr := At(4)
	got := tr.Obfuscate([]byte("Hello"), nil, noFactory)
	want := []byte("Uryyb")
	if !bytes.Equal(got, want) {
		t.Fatalf("caesar(%q) = %q, want %q", "Hello", got, want)
	}
}

func TestSwapAdjacentOddTrailing(t *testing.T) {
	tr := At(5)
	got := tr.Obfuscate([]byte{1, 2, 3}, nil, noFactory)
	want := []byte{2, 1, 3}
	if !bytes.Equal(got, want) {
		t.Fatalf("swapAdjacent = %v, want %v", got, want)
	}
}

func TestCharCodesRoundTrip(t *testing.T) {
	tr := At(2)
	data := []byte{0, 1, 2, 255, 128}
	obf := tr.Obfuscate(data, nil, noFactory)
	if string(obf) != "0,1,2,255,128" {
		t.Fatalf("charCodes obfuscate = %q", obf)
	}
	back := tr.Deobfuscate(obf, nil, noFactory)
	if !bytes.Equal(back, data) {
		t.Fatalf("charCodes round trip mismatch: got %v want %v", back, data)
	}
}

func TestCharCodesEmpty(t *testing.T) {
	tr := At(2)
	obf := tr.Obfuscate(nil, nil, noFactory)
	if len(obf) != 0 {
		t.Fatalf("expected empty obfuscated output, got %q", obf)
	}
	back := tr.Deobfuscate(obf, nil, noFactory)
	if len(back) != 0 {
		t.Fatalf("expected empty round trip, got %v", back)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	tr := At(3)
	data := []byte{0, 1, 2, 255, 128, 7}
	obf := tr.Obfuscate(data, nil, noFactory)
	if string(obf) != "0,1,10,11111111,10000000,111" {
		t.Fatalf("binary obfuscate = %q", obf)
	}
	back := tr.Deobfuscate(obf, nil, noFactory)
	if !bytes.Equal(back, data) {
		t.Fatalf("binary round trip mismatch: got %v want %v", back, data)
	}
}
