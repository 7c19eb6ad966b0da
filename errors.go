package main

import "errors"

// The error taxonomy surfaced by Encrypt and Decrypt. Each wraps
// whatever underlying package error caused it via %w, so errors.Is
// against these sentinels and against the narrower internal sentinels
// both work.
var (
	// ErrInvalidReverseKey means the reverse key string could not be
	// decoded under any known encoding.
	ErrInvalidReverseKey = errors.New("darkstar: invalid reverse key")

	// ErrInvalidEnvelope means the encrypted payload's version wrapper
	// could not be parsed.
	ErrInvalidEnvelope = errors.New("darkstar: invalid envelope")

	// ErrDecryption means the AES layer failed to decrypt or
	// authenticate, almost always because of a wrong password.
	ErrDecryption = errors.New("darkstar: decryption failed, check password")

	// ErrMalformedBlob means the decrypted inner blob's length-prefixed
	// token framing was corrupt.
	ErrMalformedBlob = errors.New("darkstar: malformed token blob")

	// ErrUTF8 means a recovered token was not valid UTF-8.
	ErrUTF8 = errors.New("darkstar: recovered token is not valid utf-8")

	// ErrOutputTooLarge means an obfuscated token exceeded the 16-bit
	// length-prefix limit.
	ErrOutputTooLarge = errors.New("darkstar: obfuscated token too large")

	// ErrRandomSourceUnavailable means the system CSPRNG could not be
	// read for a salt or IV.
	ErrRandomSourceUnavailable = errors.New("darkstar: random source unavailable")
)
