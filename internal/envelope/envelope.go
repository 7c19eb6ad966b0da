// Package envelope implements the version wrapper around an AES
// transit string: a compact {"v":2|3,"data":"..."} JSON object for V2
// and V3, or a bare transit string with no wrapper at all for V1.
package envelope

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Version identifies which darkstar wire format produced a payload.
type Version int

const (
	// V1 is the bare AES-CBC transit string with no JSON wrapper and a
	// legacy JSON-array reverse key.
	V1 Version = 1
	// V2 is the {"v":2,...} envelope over AES-CBC.
	V2 Version = 2
	// V3 is the {"v":3,...} envelope over AES-GCM with an expanding
	// obfuscation transform and a variable cycle depth.
	V3 Version = 3
)

type wire struct {
	V    int    `json:"v"`
	Data string `json:"data"`
}

// Wrap produces the on-wire string for the given version. V1 has no
// wrapper: transit is returned unchanged.
func Wrap(v Version, transit string) (string, error) {
	if v == V1 {
		return transit, nil
	}
	raw, err := json.Marshal(wire{V: int(v), Data: transit})
	if err != nil {
		return "", fmt.Errorf("envelope: marshal: %w", err)
	}
	return string(raw), nil
}

// Detect inspects raw and returns the transit string it wraps along
// with the version it was tagged with. Any string that does not look
// like a JSON object (does not start with '{') is treated as a bare
// V1 transit string, matching the reference implementation's loose
// sniffing.
func Detect(raw string) (transit string, v Version) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return raw, V1
	}

	var w wire
	if err := json.Unmarshal([]byte(trimmed), &w); err != nil || w.Data == "" {
		return raw, V1
	}

	switch w.V {
	case 3:
		return w.Data, V3
	case 2:
		return w.Data, V2
	default:
		return raw, V1
	}
}
