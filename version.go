package main

import "github.com/aeondave/darkstar/internal/envelope"

// Version selects which wire format Encrypt produces. It mirrors
// internal/envelope.Version but lives at package main so CLI flag
// parsing doesn't need to reach into an internal package.
type Version = envelope.Version

const (
	V1 = envelope.V1
	V2 = envelope.V2
	V3 = envelope.V3
)
