package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stay/internal/domains/booking/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name   string
		from   model.Status
		to     model.Status
		wantOK bool
	}{
		{"pending to confirmed", model.StatusPending, model.StatusConfirmed, true},
		{"pending to cancelled", model.StatusPending, model.StatusCancelled, true},
		{"pending to checked_in", model.StatusPending, model.StatusCheckedIn, false},
		{"confirmed to checked_in", model.StatusConfirmed, model.StatusCheckedIn, true},
		{"confirmed to cancelled", model.StatusConfirmed, model.StatusCancelled, true},
		{"confirmed to pending", model.StatusConfirmed, model.StatusPending, false},
		{"checked_in to checked_out", model.StatusCheckedIn, model.StatusCheckedOut, true},
		{"checked_in to cancelled", model.StatusCheckedIn, model.StatusCancelled, false},
		{"checked_out is terminal", model.StatusCheckedOut, model.StatusPending, false},
		{"cancelled is terminal", model.StatusCancelled, model.StatusConfirmed, false},
		{"same status is a no-op", model.StatusConfirmed, model.StatusConfirmed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOK, tt.from.CanTransition(tt.to))
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, model.StatusPending.IsValid())
	assert.True(t, model.StatusCheckedOut.IsValid())
	assert.False(t, model.Status("unknown").IsValid())
	assert.False(t, model.Status("").IsValid())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, model.StatusCheckedOut.IsTerminal())
	assert.True(t, model.StatusCancelled.IsTerminal())
	assert.False(t, model.StatusPending.IsTerminal())
	assert.False(t, model.StatusCheckedIn.IsTerminal())
	assert.False(t, model.Status("unknown").IsTerminal())
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, model.StatusPending.IsActive())
	assert.True(t, model.StatusConfirmed.IsActive())
	assert.True(t, model.StatusCheckedIn.IsActive())
	assert.False(t, model.StatusCheckedOut.IsActive())
	assert.False(t, model.StatusCancelled.IsActive())
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, model.Nights(date(2025, 6, 1), date(2025, 6, 2)))
	assert.Equal(t, 3, model.Nights(date(2025, 6, 1), date(2025, 6, 4)))
	assert.Equal(t, 0, model.Nights(date(2025, 6, 1), date(2025, 6, 1)))
	assert.Equal(t, -2, model.Nights(date(2025, 6, 3), date(2025, 6, 1)))
}

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		name      string
		basePrice float64
		checkIn   time.Time
		checkOut  time.Time
		want      float64
		wantOK    bool
	}{
		{"single night", 100, date(2025, 6, 1), date(2025, 6, 2), 100, true},
		{"three nights", 80.5, date(2025, 6, 1), date(2025, 6, 4), 241.5, true},
		{"same day yields no nights", 100, date(2025, 6, 1), date(2025, 6, 1), 0, false},
		{"reversed range", 100, date(2025, 6, 4), date(2025, 6, 1), 0, false},
		{"zero check-in", 100, time.Time{}, date(2025, 6, 2), 0, false},
		{"zero check-out", 100, date(2025, 6, 1), time.Time{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := model.CalculatePrice(tt.basePrice, tt.checkIn, tt.checkOut)

			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd time.Time
		cStart, cEnd time.Time
		want         bool
	}{
		{
			name:   "full containment",
			aStart: date(2025, 6, 1), aEnd: date(2025, 6, 10),
			cStart: date(2025, 6, 3), cEnd: date(2025, 6, 5),
			want: true,
		},
		{
			name:   "partial overlap",
			aStart: date(2025, 6, 1), aEnd: date(2025, 6, 5),
			cStart: date(2025, 6, 4), cEnd: date(2025, 6, 8),
			want: true,
		},
		{
			name:   "same-day turnover is no conflict",
			aStart: date(2025, 6, 1), aEnd: date(2025, 6, 5),
			cStart: date(2025, 6, 5), cEnd: date(2025, 6, 8),
			want: false,
		},
		{
			name:   "back to back the other way",
			aStart: date(2025, 6, 5), aEnd: date(2025, 6, 8),
			cStart: date(2025, 6, 1), cEnd: date(2025, 6, 5),
			want: false,
		},
		{
			name:   "disjoint",
			aStart: date(2025, 6, 1), aEnd: date(2025, 6, 3),
			cStart: date(2025, 6, 10), cEnd: date(2025, 6, 12),
			want: false,
		},
		{
			name:   "identical interval",
			aStart: date(2025, 6, 1), aEnd: date(2025, 6, 5),
			cStart: date(2025, 6, 1), cEnd: date(2025, 6, 5),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Overlaps(tt.aStart, tt.aEnd, tt.cStart, tt.cEnd))
		})
	}
}

func TestBuildOccupancyCalendar(t *testing.T) {
	periodStart := date(2025, 6, 1)
	periodEnd := date(2025, 7, 1)

	bookings := []model.Booking{
		{
			CheckInDate:  date(2025, 6, 2),
			CheckOutDate: date(2025, 6, 5),
			Status:       string(model.StatusConfirmed),
		},
		{
			// Spills over from the previous month, clamps to the period.
			CheckInDate:  date(2025, 5, 30),
			CheckOutDate: date(2025, 6, 2),
			Status:       string(model.StatusCheckedIn),
		},
		{
			// Runs past the period end.
			CheckInDate:  date(2025, 6, 29),
			CheckOutDate: date(2025, 7, 3),
			Status:       string(model.StatusPending),
		},
	}

	calendar := model.BuildOccupancyCalendar(bookings, periodStart, periodEnd)

	assert.Equal(t, model.StatusCheckedIn, calendar["2025-06-01"])
	assert.Equal(t, model.StatusConfirmed, calendar["2025-06-02"])
	assert.Equal(t, model.StatusConfirmed, calendar["2025-06-04"])
	assert.Equal(t, model.StatusPending, calendar["2025-06-29"])
	assert.Equal(t, model.StatusPending, calendar["2025-06-30"])

	// Check-out day is free, and dates outside any booking stay absent.
	_, onCheckOutDay := calendar["2025-06-05"]
	assert.False(t, onCheckOutDay)

	_, beforePeriod := calendar["2025-05-31"]
	assert.False(t, beforePeriod)

	_, afterPeriod := calendar["2025-07-01"]
	assert.False(t, afterPeriod)

	assert.Len(t, calendar, 6)
}

func TestServiceItem_Subtotal(t *testing.T) {
	item := model.ServiceItem{Quantity: 3, UnitPrice: 12.5}

	assert.InDelta(t, 37.5, item.Subtotal(), 0.001)
}
