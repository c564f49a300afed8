package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/model/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:         "room-1",
		GuestID:        "guest-1",
		CheckInDate:    "2025-06-01",
		CheckOutDate:   "2025-06-04",
		NumberOfGuests: 2,
		Notes:          "late arrival",
	}

	userID := "test-user-id"
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	booking := req.ToModel(userID, checkIn, checkOut, 300)

	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.RoomID, booking.RoomID)
	if assert.NotNil(t, booking.GuestID) {
		assert.Equal(t, req.GuestID, *booking.GuestID)
	}
	assert.Equal(t, checkIn, booking.CheckInDate)
	assert.Equal(t, checkOut, booking.CheckOutDate)
	assert.InDelta(t, 300, booking.TotalPrice, 0.001)
	assert.Equal(t, string(model.StatusPending), booking.Status)
	assert.Equal(t, userID, booking.CreatedBy)
	assert.Equal(t, userID, booking.ModifiedBy)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingRequest_ToModelKeepsExplicitStatus(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:         "room-1",
		GuestID:        "guest-1",
		NumberOfGuests: 2,
		Status:         string(model.StatusConfirmed),
	}

	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	booking := req.ToModel("test-user-id", checkIn, checkOut, 300)

	assert.Equal(t, string(model.StatusConfirmed), booking.Status)
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	guestID := "guest-1"

	booking := model.Booking{
		ID:             "booking-1",
		RoomID:         "room-1",
		GuestID:        &guestID,
		CheckInDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:   time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		NumberOfGuests: 2,
		TotalPrice:     300,
		Status:         string(model.StatusConfirmed),
		Notes:          "late arrival",
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "creator",
			ModifiedBy: "modifier",
		},
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "booking-1", res.ID)
	assert.Equal(t, "2025-06-01", res.CheckInDate)
	assert.Equal(t, "2025-06-04", res.CheckOutDate)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, string(model.StatusConfirmed), res.Status)
	if assert.NotNil(t, res.GuestID) {
		assert.Equal(t, guestID, *res.GuestID)
	}
}

func TestGetBookingServicesResponse_FromModels(t *testing.T) {
	items := []model.ServiceItem{
		{ID: "item-1", ServiceID: "svc-1", Quantity: 2, UnitPrice: 25},
		{ID: "item-2", ServiceID: "svc-2", Quantity: 1, UnitPrice: 40},
	}

	var res dto.GetBookingServicesResponse
	res.FromModels("booking-1", items)

	assert.Equal(t, "booking-1", res.BookingID)
	assert.Len(t, res.Items, 2)
	assert.InDelta(t, 50, res.Items[0].Subtotal, 0.001)
	assert.InDelta(t, 90, res.Total, 0.001)
}

func TestCalendarResponse_FromCalendar(t *testing.T) {
	calendar := model.OccupancyCalendar{
		"2025-06-02": model.StatusConfirmed,
		"2025-06-03": model.StatusConfirmed,
	}

	var res dto.CalendarResponse
	res.FromCalendar("room-1", 2025, 6, calendar)

	assert.Equal(t, "room-1", res.RoomID)
	assert.Equal(t, 2025, res.Year)
	assert.Equal(t, 6, res.Month)
	assert.Equal(t, string(model.StatusConfirmed), res.Days["2025-06-02"])
	assert.Len(t, res.Days, 2)
}
