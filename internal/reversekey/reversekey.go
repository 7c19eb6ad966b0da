// Package reversekey implements the two on-wire encodings for the list
// of per-token obfuscator indices needed to invert the pipeline fold:
// the legacy JSON array form, and the nibble-packed binary form used
// by V2/V3, plus the detection logic that picks between them.
package reversekey

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidReverseKey is returned when a reverse-key string cannot be
// decoded under any of the known encodings.
var ErrInvalidReverseKey = errors.New("reversekey: invalid reverse key")

// Keys is the list of per-token obfuscator index sequences, one entry
// per mnemonic word in order.
type Keys [][]int

// EncodeLegacy renders keys as base64(json(keys)), the bare-envelope
// V1 form that never packs indices into nibbles.
func EncodeLegacy(keys Keys) (string, error) {
	raw, err := json.Marshal(keys)
	if err != nil {
		return "", fmt.Errorf("reversekey: marshal legacy: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// EncodePacked renders keys in the nibble-packed binary form used by
// V2 and V3. When withLength is true (V3) each word is prefixed with a
// one-byte length, since V3 cycle depths vary per word; V2's fixed
// 12-entry words carry no prefix and are assumed to have length 12 on
// decode.
func EncodePacked(keys Keys, withLength bool) string {
	var buf []byte
	for _, wordKey := range keys {
		if withLength {
			buf = append(buf, byte(len(wordKey)))
		}
		for i := 0; i < len(wordKey); i += 2 {
			high := byte(wordKey[i]) & 0x0F
			low := byte(0)
			if i+1 < len(wordKey) {
				low = byte(wordKey[i+1]) & 0x0F
			}
			buf = append(buf, (high<<4)|low)
		}
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodePacked reverses EncodePacked. withLength must match the value
// used at encode time; when false, every word is assumed to carry
// exactly 12 indices (the V2 legacy-packed convention).
func DecodePacked(s string, withLength bool) (Keys, error) {
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: bad base64: %v", ErrInvalidReverseKey, err)
	}

	var keys Keys
	offset := 0
	for offset < len(buf) {
		wordLen := 12
		if withLength {
			wordLen = int(buf[offset])
			offset++
		}

		numBytes := (wordLen + 1) / 2
		wordKey := make([]int, 0, wordLen)
		for i := 0; i < numBytes; i++ {
			if offset >= len(buf) {
				break
			}
			b := buf[offset]
			offset++
			high := int(b>>4) & 0x0F
			low := int(b) & 0x0F
			wordKey = append(wordKey, high)
			if len(wordKey) < wordLen {
				wordKey = append(wordKey, low)
			}
		}
		keys = append(keys, wordKey)
	}
	return keys, nil
}

// Decode auto-detects and decodes a reverse-key string. isV3 hints
// whether the packed form (if used) carries per-word length prefixes;
// it is ignored when the string decodes to the legacy JSON-array form.
func Decode(s string, isV3 bool) (Keys, error) {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return DecodePacked(s, false)
	}

	if strings.HasPrefix(strings.TrimSpace(string(decoded)), "[") {
		var keys Keys
		if err := json.Unmarshal(decoded, &keys); err != nil {
			return DecodePacked(s, false)
		}
		return keys, nil
	}

	return DecodePacked(s, isV3)
}
