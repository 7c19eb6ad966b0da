package envelope

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestWrapV1IsBare(t *testing.T) {
	got, err := Wrap(V1, "deadbeef")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "deadbeef"))
}

func TestWrapV2AndV3(t *testing.T) {
	for _, v := range []Version{V2, V3} {
		got, err := Wrap(v, "abc123")
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, fmt.Sprintf(`{"v":%d,"data":"abc123"}`, int(v))))
	}
}

func TestDetectRoundTrip(t *testing.T) {
	for _, v := range []Version{V2, V3} {
		wrapped, err := Wrap(v, "transit-here")
		qt.Assert(t, qt.IsNil(err))
		transit, got := Detect(wrapped)
		qt.Assert(t, qt.Equals(transit, "transit-here"))
		qt.Assert(t, qt.Equals(got, v))
	}
}

func TestDetectBareStringIsV1(t *testing.T) {
	transit, v := Detect("0123456789abcdef")
	qt.Assert(t, qt.Equals(v, V1))
	qt.Assert(t, qt.Equals(transit, "0123456789abcdef"))
}

func TestDetectMalformedJSONFallsBackToV1(t *testing.T) {
	raw := `{not valid json`
	transit, v := Detect(raw)
	qt.Assert(t, qt.Equals(v, V1))
	qt.Assert(t, qt.Equals(transit, raw))
}
