package guideadmin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseGuideTimeColombia(t *testing.T) {
	parsed, ok := ParseGuideTime(Colombia, "11/21/2024, 03:45 PM GMT-5")
	require.True(t, ok)
	require.Equal(t,
		time.Date(2024, time.November, 21, 20, 45, 0, 0, time.UTC).Unix(),
		parsed.Unix(),
	)
}

// the same raw string must land on the same instant no matter which
// tenant's trial list is consulted first, as long as the layout is
// registered for that tenant
func TestParseGuideTimeTrialOrderIrrelevant(t *testing.T) {
	raw := "11/21/2024, 03:45 PM GMT-5"

	// colombia registers this layout first, chile registers it last
	fromColombia, ok := ParseGuideTime(Colombia, raw)
	require.True(t, ok)
	fromChile, ok := ParseGuideTime(Chile, raw)
	require.True(t, ok)

	require.True(t, fromColombia.Equal(fromChile))
}

func TestParseGuideTimeMexico(t *testing.T) {
	parsed, ok := ParseGuideTime(Mexico, "Creado el 21 noviembre 2024 15:45:00")
	require.True(t, ok)

	expected := time.Date(2024, time.November, 21, 15, 45, 0, 0, Mexico.Location)
	require.True(t, parsed.Equal(expected))
}

func TestParseGuideTimeChile(t *testing.T) {
	parsed, ok := ParseGuideTime(Chile, "2024-11-21 03:45:05 PM")
	require.True(t, ok)

	expected := time.Date(2024, time.November, 21, 15, 45, 5, 0, Chile.Location)
	require.True(t, parsed.Equal(expected))
}

func TestParseGuideTimeGarbage(t *testing.T) {
	for _, raw := range []string{"", "hace 3 días", "not a date at all"} {
		parsed, ok := ParseGuideTime(Colombia, raw)
		require.False(t, ok, "expected %q not to parse", raw)
		require.True(t, parsed.IsZero())
	}
}
