package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalTime(t *testing.T) {
	parsed, err := parseOptionalTime("2026-03-01", false)
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *parsed)

	endOfDay, err := parseOptionalTime("2026-03-01", true)
	require.NoError(t, err)
	require.NotNil(t, endOfDay)
	assert.Equal(t, 23, endOfDay.Hour())

	empty, err := parseOptionalTime("  ", false)
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = parseOptionalTime("not-a-date", false)
	assert.Error(t, err)
}

func TestParseOptionalInt(t *testing.T) {
	value, err := parseOptionalInt("12")
	require.NoError(t, err)
	assert.Equal(t, 12, value)

	zero, err := parseOptionalInt("")
	require.NoError(t, err)
	assert.Equal(t, 0, zero)

	_, err = parseOptionalInt("twelve")
	assert.Error(t, err)
}
