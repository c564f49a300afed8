package dto

import (
	"time"

	"stay/internal/domains/booking/model"
	"stay/shared"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
)

// ServiceSelection is one catalog service requested together with a booking.
type ServiceSelection struct {
	ServiceID string `json:"service_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

type CreateBookingRequest struct {
	RoomID         string             `json:"room_id"            validate:"required,uuid"`
	GuestID        string             `json:"guest_id"           validate:"required,uuid"`
	CheckInDate    string             `json:"check_in_date"      validate:"required,datetime=2006-01-02"`
	CheckOutDate   string             `json:"check_out_date"     validate:"required,datetime=2006-01-02,dateorder=CheckInDate"`
	NumberOfGuests int                `json:"number_of_guests"   validate:"required,min=1"`
	Status         string             `json:"status"             validate:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
	Services       []ServiceSelection `json:"service_selections" validate:"omitempty,dive"`
	Notes          string             `json:"notes"              validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, totalPrice float64) model.Booking {
	status := c.Status
	if status == "" {
		status = string(model.StatusPending)
	}

	guestID := c.GuestID

	return model.Booking{
		ID:             uuid.NewString(),
		RoomID:         c.RoomID,
		GuestID:        &guestID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: c.NumberOfGuests,
		TotalPrice:     totalPrice,
		Status:         status,
		Notes:          c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// PublicGuestRequest is the guest profile embedded in a public reservation.
type PublicGuestRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Email     string `json:"email"      validate:"required,email,max=255"`
	Phone     string `json:"phone"      validate:"required,max=30"`
}

// CreatePublicBookingRequest is the unauthenticated reservation payload. The
// resulting booking is always pending until staff confirms it.
type CreatePublicBookingRequest struct {
	RoomID         string             `json:"room_id"            validate:"required,uuid"`
	CheckInDate    string             `json:"check_in_date"      validate:"required,datetime=2006-01-02"`
	CheckOutDate   string             `json:"check_out_date"     validate:"required,datetime=2006-01-02,dateorder=CheckInDate"`
	NumberOfGuests int                `json:"number_of_guests"   validate:"required,min=1"`
	Guest          PublicGuestRequest `json:"guest"              validate:"required"`
	Services       []ServiceSelection `json:"service_selections" validate:"omitempty,dive"`
	Notes          string             `json:"notes"              validate:"omitempty,max=500"`
}

type UpdateBookingRequest struct {
	RoomID         string `db:"room_id"          json:"room_id"          validate:"omitempty,uuid"`
	GuestID        string `db:"guest_id"         json:"guest_id"         validate:"omitempty,uuid"`
	CheckInDate    string `json:"check_in_date"  validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate   string `json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
	NumberOfGuests *int   `db:"number_of_guests" json:"number_of_guests" validate:"omitempty,min=1"`
	Notes          string `db:"notes"            json:"notes"            validate:"omitempty,max=500"`
}

// ChangeStatusRequest moves a booking along its lifecycle. Force bypasses the
// transition graph for manual correction by a manager; it never bypasses the
// overlap invariant.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed checked_in checked_out cancelled"`
	Force  bool   `json:"force"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	RoomID         string  `json:"room_id"`
	GuestID        *string `json:"guest_id"`
	CheckInDate    string  `json:"check_in_date"`
	CheckOutDate   string  `json:"check_out_date"`
	Nights         int     `json:"nights"`
	NumberOfGuests int     `json:"number_of_guests"`
	TotalPrice     float64 `json:"total_price"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestID = model.GuestID
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.Nights = Nights(model)
	r.NumberOfGuests = model.NumberOfGuests
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

func Nights(booking model.Booking) int {
	return model.Nights(booking.CheckInDate, booking.CheckOutDate)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// CalendarResponse is the day-by-day occupancy of one room for one month.
// Days maps YYYY-MM-DD to a booking status; absent dates are vacant.
type CalendarResponse struct {
	RoomID string            `json:"room_id"`
	Year   int               `json:"year"`
	Month  int               `json:"month"`
	Days   map[string]string `json:"days"`
}

func (r *CalendarResponse) FromCalendar(roomID string, year, month int, calendar model.OccupancyCalendar) {
	r.RoomID = roomID
	r.Year = year
	r.Month = month

	r.Days = make(map[string]string, len(calendar))
	for day, status := range calendar {
		r.Days[day] = string(status)
	}
}

type AttachServiceRequest struct {
	ServiceID string `json:"service_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

type ServiceItemResponse struct {
	ID        string  `json:"id"`
	ServiceID string  `json:"service_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

func (r *ServiceItemResponse) FromModel(item model.ServiceItem) {
	r.ID = item.ID
	r.ServiceID = item.ServiceID
	r.Quantity = item.Quantity
	r.UnitPrice = item.UnitPrice
	r.Subtotal = item.Subtotal()
}

type GetBookingServicesResponse struct {
	BookingID string                `json:"booking_id"`
	Items     []ServiceItemResponse `json:"items"`
	Total     float64               `json:"total"`
}

func (r *GetBookingServicesResponse) FromModels(bookingID string, items []model.ServiceItem) {
	r.BookingID = bookingID

	r.Items = make([]ServiceItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
		r.Total += item.Subtotal()
	}
}
