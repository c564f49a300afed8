package repository

import (
	"strings"
	"testing"
	"time"

	"stay/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOverlapQuery(t *testing.T) {
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	t.Run("WithoutExcludeOmitsSelfExclusion", func(t *testing.T) {
		query, params, err := buildOverlapQuery("room-1", checkIn, checkOut, "")

		require.NoError(t, err)
		assert.NotContains(t, query, "id <>")
		assert.Len(t, params, 2+len(model.ActiveStatuses))
		assert.NotContains(t, params, "")
	})

	t.Run("WithExcludeAppendsSelfExclusion", func(t *testing.T) {
		query, params, err := buildOverlapQuery("room-1", checkIn, checkOut, "booking-1")

		require.NoError(t, err)
		assert.Contains(t, query, "id <>")
		assert.Len(t, params, 3+len(model.ActiveStatuses))
		assert.Equal(t, "booking-1", params[len(params)-1])
	})

	t.Run("ExpandsActiveStatuses", func(t *testing.T) {
		query, params, err := buildOverlapQuery("room-1", checkIn, checkOut, "")

		require.NoError(t, err)
		assert.Equal(t, len(model.ActiveStatuses), strings.Count(query[strings.Index(query, "status IN"):strings.Index(query, "check_in_date")], "?"))

		for _, status := range model.ActiveStatuses {
			assert.Contains(t, params, status)
		}
	})
}

func TestBuildPeriodQuery(t *testing.T) {
	periodStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	_, params, err := buildPeriodQuery("room-1", periodStart, periodEnd)

	require.NoError(t, err)
	assert.Len(t, params, 2+len(model.ActiveStatuses))

	for _, status := range model.ActiveStatuses {
		assert.Contains(t, params, status)
	}

	assert.NotContains(t, params, string(model.StatusCancelled))
	assert.NotContains(t, params, string(model.StatusCheckedOut))
}
