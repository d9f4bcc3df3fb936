package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	for _, valid := range []string{"2024-01", "2024-12", "1999-09"} {
		m, err := ParseMonth(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, m.String())
		assert.True(t, m.Valid())
	}

	for _, invalid := range []string{"", "2024", "2024-13", "2024-00", "2024-1", "01-2024", "2024/01", "January 2024", "2024-01-15"} {
		_, err := ParseMonth(invalid)
		assert.Error(t, err, "month %q must be rejected", invalid)
	}
}

func TestMonthScan(t *testing.T) {
	var m Month
	require.NoError(t, m.Scan("2024-03"))
	assert.Equal(t, Month("2024-03"), m)

	require.NoError(t, m.Scan([]byte("2024-04")))
	assert.Equal(t, Month("2024-04"), m)

	assert.Error(t, m.Scan(42))
}

func TestCurrentMonth(t *testing.T) {
	assert.True(t, CurrentMonth().Valid())
}
