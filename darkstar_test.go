package main

import (
	"strings"
	"testing"
)

func TestEncryptDecryptRoundTripAllVersions(t *testing.T) {
	mnemonics := []string{
		"cat dog fish bird",
		"apple banana cherry date elderberry fig grape",
		"a",
		"correct horse battery staple",
	}
	password := "MySecre!Password123"

	for _, v := range []Version{V1, V2, V3} {
		for _, mnemonic := range mnemonics {
			res, err := Encrypt(mnemonic, password, v)
			if err != nil {
				t.Fatalf("Encrypt(%v, %q): %v", v, mnemonic, err)
			}
			got, err := Decrypt(res.EncryptedData, res.ReverseKey, password)
			if err != nil {
				t.Fatalf("Decrypt(%v, %q): %v", v, mnemonic, err)
			}
			if got != mnemonic {
				t.Fatalf("version %v round trip mismatch: got %q want %q", v, got, mnemonic)
			}
		}
	}
}

func TestDecryptWrongPasswordFails(t *testing.T) {
	res, err := Encrypt("cat dog fish", "right-password", V3)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := Decrypt(res.EncryptedData, res.ReverseKey, "wrong-password"); err == nil {
		t.Fatalf("expected decryption to fail with wrong password")
	}
}

func TestV1EnvelopeIsBareString(t *testing.T) {
	res, err := Encrypt("cat dog", "p", V1)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if strings.HasPrefix(res.EncryptedData, "{") {
		t.Fatalf("V1 envelope should be a bare transit string, got %q", res.EncryptedData)
	}
}

func TestV2AndV3EnvelopeIsJSON(t *testing.T) {
	for _, v := range []Version{V2, V3} {
		res, err := Encrypt("cat dog", "p", v)
		if err != nil {
			t.Fatalf("Encrypt(%v): %v", v, err)
		}
		if !strings.HasPrefix(res.EncryptedData, "{") {
			t.Fatalf("version %v envelope should be JSON, got %q", v, res.EncryptedData)
		}
	}
}

func TestSelfTestPasses(t *testing.T) {
	if code := runSelfTest(); code != 0 {
		t.Fatalf("runSelfTest() = %d, want 0", code)
	}
}
