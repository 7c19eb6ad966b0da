// Package framing implements the length-prefixed blob that glues a
// sequence of obfuscated tokens together ahead of AES encryption, and
// the base64 wrapper around it.
package framing

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrOutputTooLarge is returned when a single obfuscated token's
// length cannot fit in the 16-bit big-endian length prefix.
var ErrOutputTooLarge = errors.New("framing: obfuscated token exceeds 65535 bytes")

// ErrMalformedBlob is returned when a blob's length prefixes don't
// account for its remaining bytes.
var ErrMalformedBlob = errors.New("framing: malformed blob")

// Pack concatenates u16-be-length-prefixed records for each token,
// then base64-encodes the result.
func Pack(tokens [][]byte) (string, error) {
	var blob []byte
	for i, tok := range tokens {
		if len(tok) > 0xFFFF {
			return "", fmt.Errorf("%w: token %d is %d bytes", ErrOutputTooLarge, i, len(tok))
		}
		blob = append(blob, byte(len(tok)>>8), byte(len(tok)))
		blob = append(blob, tok...)
	}
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Unpack base64-decodes s and splits it back into its length-prefixed
// records.
func Unpack(s string) ([][]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrMalformedBlob, err)
	}

	var tokens [][]byte
	offset := 0
	for offset < len(blob) {
		if offset+2 > len(blob) {
			return nil, fmt.Errorf("%w: truncated length prefix at offset %d", ErrMalformedBlob, offset)
		}
		length := int(blob[offset])<<8 | int(blob[offset+1])
		offset += 2
		if offset+length > len(blob) {
			return nil, fmt.Errorf("%w: record at offset %d overruns blob", ErrMalformedBlob, offset)
		}
		tokens = append(tokens, blob[offset:offset+length])
		offset += length
	}
	if offset != len(blob) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedBlob, len(blob)-offset)
	}
	return tokens, nil
}
