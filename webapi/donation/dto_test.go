package donation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultPageSize, pageLimit(0))
	assert.Equal(t, defaultPageSize, pageLimit(-5))
	assert.Equal(t, 25, pageLimit(25))
	assert.Equal(t, maxPageSize, pageLimit(maxPageSize))
	assert.Equal(t, maxPageSize, pageLimit(maxPageSize+1))
}

func TestParseTimeParam(t *testing.T) {
	t.Parallel()

	t.Run("date only", func(t *testing.T) {
		got, err := parseTimeParam("2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := parseTimeParam("2025-06-01T10:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC), got)
	})

	t.Run("naive datetime", func(t *testing.T) {
		got, err := parseTimeParam("2025-06-01T10:30:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC), got)
	})

	// Query decoding turns the + of a timezone offset into a space.
	t.Run("offset with space for plus", func(t *testing.T) {
		got, err := parseTimeParam("2025-06-01T10:30:00 03:00")
		require.NoError(t, err)
		want, err := time.Parse(time.RFC3339, "2025-06-01T10:30:00+03:00")
		require.NoError(t, err)
		assert.True(t, got.Equal(want))
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := parseTimeParam("last tuesday")
		assert.Error(t, err)
	})
}
