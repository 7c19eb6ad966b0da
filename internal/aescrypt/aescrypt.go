// Package aescrypt implements the outer AES transit layer: PBKDF2 key
// derivation followed by AES-256-CBC (legacy) or AES-256-GCM sealing,
// packed into a hex+base64 transit string.
package aescrypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Iterations is the PBKDF2-HMAC-SHA256 work factor applied to every
	// derivation, encrypt or decrypt, regardless of version.
	Iterations = 600000

	// KeySize is the derived AES-256 key length in bytes.
	KeySize = 32

	// SaltSize is the PBKDF2 salt length in bytes.
	SaltSize = 16

	// CBCIVSize is the AES-CBC initialization vector length in bytes.
	CBCIVSize = 16

	// GCMIVSize is the AES-GCM nonce length in bytes.
	GCMIVSize = 12

	// GCMTagSize is the AES-GCM authentication tag length in bytes.
	GCMTagSize = 16
)

// ErrDecryption is returned when a ciphertext fails to decrypt or
// authenticate, typically because of a wrong password.
var ErrDecryption = errors.New("aescrypt: decryption failed")

func deriveKey(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, Iterations, KeySize, sha256.New)
}

// zeroKey best-effort wipes a derived key buffer once the cipher built
// from it is no longer needed.
func zeroKey(key []byte) {
	for i := range key {
		key[i] = 0
	}
}

// EncryptCBC seals plaintext with AES-256-CBC and PKCS#7 padding under a
// freshly generated salt and IV, returning the hex(salt)+hex(iv)+base64(ct)
// transit string used by V1 and V2.
func EncryptCBC(password, plaintext []byte) (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("aescrypt: read salt: %w", err)
	}
	iv := make([]byte, CBCIVSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("aescrypt: read iv: %w", err)
	}

	key := deriveKey(password, salt)
	defer zeroKey(key)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("aescrypt: new cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, block.BlockSize())
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(salt) + hex.EncodeToString(iv) + base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptCBC reverses EncryptCBC, returning ErrDecryption on any
// malformed input, wrong password, or bad padding.
func DecryptCBC(password []byte, transit string) ([]byte, error) {
	if len(transit) < 2*SaltSize+2*CBCIVSize {
		return nil, fmt.Errorf("%w: transit string too short", ErrDecryption)
	}

	salt, err := hex.DecodeString(transit[:2*SaltSize])
	if err != nil {
		return nil, fmt.Errorf("%w: bad salt: %v", ErrDecryption, err)
	}
	iv, err := hex.DecodeString(transit[2*SaltSize : 2*SaltSize+2*CBCIVSize])
	if err != nil {
		return nil, fmt.Errorf("%w: bad iv: %v", ErrDecryption, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(transit[2*SaltSize+2*CBCIVSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: bad ciphertext encoding: %v", ErrDecryption, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext not block-aligned", ErrDecryption)
	}

	key := deriveKey(password, salt)
	defer zeroKey(key)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aescrypt: new cipher: %w", err)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	return plaintext, nil
}

// EncryptGCM seals plaintext with AES-256-GCM under a freshly generated
// salt and nonce, returning the hex(salt)+hex(nonce)+base64(ct||tag)
// transit string used by V3.
func EncryptGCM(password, plaintext []byte) (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("aescrypt: read salt: %w", err)
	}
	nonce := make([]byte, GCMIVSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("aescrypt: read nonce: %w", err)
	}

	key := deriveKey(password, salt)
	defer zeroKey(key)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("aescrypt: new cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("aescrypt: new gcm: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	return hex.EncodeToString(salt) + hex.EncodeToString(nonce) + base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptGCM reverses EncryptGCM, returning ErrDecryption on any
// malformed input, wrong password, or failed authentication.
func DecryptGCM(password []byte, transit string) ([]byte, error) {
	if len(transit) < 2*SaltSize+2*GCMIVSize {
		return nil, fmt.Errorf("%w: transit string too short", ErrDecryption)
	}

	salt, err := hex.DecodeString(transit[:2*SaltSize])
	if err != nil {
		return nil, fmt.Errorf("%w: bad salt: %v", ErrDecryption, err)
	}
	nonce, err := hex.DecodeString(transit[2*SaltSize : 2*SaltSize+2*GCMIVSize])
	if err != nil {
		return nil, fmt.Errorf("%w: bad nonce: %v", ErrDecryption, err)
	}
	sealed, err := base64.StdEncoding.DecodeString(transit[2*SaltSize+2*GCMIVSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: bad ciphertext encoding: %v", ErrDecryption, err)
	}
	if len(sealed) < GCMTagSize {
		return nil, fmt.Errorf("%w: ciphertext shorter than tag", ErrDecryption)
	}

	key := deriveKey(password, salt)
	defer zeroKey(key)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aescrypt: new cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("aescrypt: new gcm: %w", err)
	}

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	return plaintext, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padding := bytes.Repeat([]byte{byte(padLen)}, padLen)
	return append(append([]byte(nil), data...), padding...)
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("empty padded data")
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > len(data) {
		return nil, errors.New("invalid padding length")
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, errors.New("invalid padding bytes")
		}
	}
	return data[:len(data)-padLen], nil
}
