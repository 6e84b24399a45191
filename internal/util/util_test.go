package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPercent(t *testing.T) {
	require.Equal(t, "4.00%", FormatPercent(0.04, 2))
	require.Equal(t, "-2.00%", FormatPercent(-0.02, 2))
	require.Equal(t, "0.2000%", FormatPercent(0.002, 4))
	// 0.615 * 100 has no exact float representation; decimal keeps it clean
	require.Equal(t, "61.50%", FormatPercent(0.615, 2))
}

func TestFormatSignedPercent(t *testing.T) {
	require.Equal(t, "+5.00%", FormatSignedPercent(0.05, 2))
	require.Equal(t, "-5.00%", FormatSignedPercent(-0.05, 2))
	require.Equal(t, "+0.00%", FormatSignedPercent(0, 2))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-02")
	require.NoError(t, err)
	require.Equal(t, NewDate(2024, 1, 2), d)

	_, err = ParseDate("01/02/2024")
	require.Error(t, err)
}
