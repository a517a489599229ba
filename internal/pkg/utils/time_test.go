package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFutureClinicDate(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

	future, err := IsFutureClinicDate("2025-03-11", now)
	require.NoError(t, err)
	assert.True(t, future)

	// Today does not count as future even though the clock already passed
	// midnight.
	future, err = IsFutureClinicDate("2025-03-10", now)
	require.NoError(t, err)
	assert.False(t, future)

	future, err = IsFutureClinicDate("2025-03-09", now)
	require.NoError(t, err)
	assert.False(t, future)

	_, err = IsFutureClinicDate("10-03-2025", now)
	assert.Error(t, err)
}

func TestParseClinicDateRejectsBadInput(t *testing.T) {
	_, err := ParseClinicDate("2025-13-40")
	assert.Error(t, err)

	parsed, err := ParseClinicDate("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, time.June, parsed.Month())
}
