package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockFormatClockRoundtrip(t *testing.T) {
	for _, s := range []string{"00:00", "09:05", "13:30", "23:59"} {
		parsed, err := ParseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatClock(parsed))
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, s := range []string{"25:00", "9am", "", "12:60"} {
		_, err := ParseClock(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("02-03-2026")
	assert.Error(t, err)
}
