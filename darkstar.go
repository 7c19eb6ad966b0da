package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aeondave/darkstar/internal/aescrypt"
	"github.com/aeondave/darkstar/internal/envelope"
	"github.com/aeondave/darkstar/internal/framing"
	"github.com/aeondave/darkstar/internal/pipeline"
	"github.com/aeondave/darkstar/internal/prng"
	"github.com/aeondave/darkstar/internal/reversekey"
)

// EncryptResult holds the two strings a caller needs to store or
// transmit in order to later decrypt a mnemonic: the encrypted
// payload (envelope + AES transit string) and the reverse key that
// lets the obfuscation pipeline be inverted.
type EncryptResult struct {
	EncryptedData string `json:"encryptedData"`
	ReverseKey    string `json:"reverseKey"`
}

func factoryFor(v Version) prng.Factory {
	if v == V3 {
		return func(seed string) prng.Source { return prng.NewChaCha20PRNG(seed) }
	}
	return func(seed string) prng.Source { return prng.NewMulberry32(seed) }
}

// Encrypt obfuscates and encrypts a space-delimited mnemonic under
// password, producing the wire format selected by v.
func Encrypt(mnemonic, password string, v Version) (EncryptResult, error) {
	words := strings.Split(mnemonic, " ")
	passwordBytes := []byte(password)
	factory := factoryFor(v)
	isV3 := v == V3

	tokens := make([][]byte, len(words))
	keys := make(reversekey.Keys, len(words))
	for i, word := range words {
		obf, rk := pipeline.ObfuscateToken(passwordBytes, []byte(word), isV3, factory)
		tokens[i] = obf
		keys[i] = rk
	}

	innerBase64, err := framing.Pack(tokens)
	if err != nil {
		return EncryptResult{}, fmt.Errorf("%w: %v", ErrOutputTooLarge, err)
	}

	var transit string
	if isV3 {
		transit, err = aescrypt.EncryptGCM(passwordBytes, []byte(innerBase64))
	} else {
		transit, err = aescrypt.EncryptCBC(passwordBytes, []byte(innerBase64))
	}
	if err != nil {
		return EncryptResult{}, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}

	encryptedData, err := envelope.Wrap(v, transit)
	if err != nil {
		return EncryptResult{}, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}

	var reverseKeyStr string
	if v == V1 {
		reverseKeyStr, err = reversekey.EncodeLegacy(keys)
		if err != nil {
			return EncryptResult{}, fmt.Errorf("%w: %v", ErrInvalidReverseKey, err)
		}
	} else {
		reverseKeyStr = reversekey.EncodePacked(keys, isV3)
	}

	return EncryptResult{EncryptedData: encryptedData, ReverseKey: reverseKeyStr}, nil
}

// Decrypt reverses Encrypt. The wire version is recovered from the
// encrypted payload's envelope, not supplied by the caller.
func Decrypt(encryptedData, reverseKeyStr, password string) (string, error) {
	transit, v := envelope.Detect(encryptedData)
	isV3 := v == V3

	keys, err := reversekey.Decode(reverseKeyStr, isV3)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidReverseKey, err)
	}

	passwordBytes := []byte(password)
	var innerBase64 []byte
	if isV3 {
		innerBase64, err = aescrypt.DecryptGCM(passwordBytes, transit)
	} else {
		innerBase64, err = aescrypt.DecryptCBC(passwordBytes, transit)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	tokens, err := framing.Unpack(string(innerBase64))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	}

	factory := factoryFor(v)
	words := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if i >= len(keys) {
			break
		}
		plain := pipeline.DeobfuscateToken(passwordBytes, tok, keys[i], isV3, factory)
		if !utf8.Valid(plain) {
			return "", fmt.Errorf("%w: word %d", ErrUTF8, i)
		}
		words = append(words, string(plain))
	}

	return strings.Join(words, " "), nil
}
