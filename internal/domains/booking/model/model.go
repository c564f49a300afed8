package model

import (
	"stay/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldRoomID         = "room_id"
	FieldGuestID        = "guest_id"
	FieldCheckInDate    = "check_in_date"
	FieldCheckOutDate   = "check_out_date"
	FieldNumberOfGuests = "number_of_guests"
	FieldTotalPrice     = "total_price"
	FieldStatus         = "status"
	FieldNotes          = "notes"
	FieldCreatedBy      = "created_by"
)

// ErrMessageRoomAlreadyBooked is the record-level validation message for a
// date-range conflict, raised both by the optimistic overlap check and by the
// database exclusion constraint.
const ErrMessageRoomAlreadyBooked = "Room is already booked for selected dates."

// Status is a booking lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

// ActiveStatuses are the states that occupy a room and participate in the
// overlap invariant. A cancelled or checked-out booking frees its interval.
var ActiveStatuses = []string{
	string(StatusPending),
	string(StatusConfirmed),
	string(StatusCheckedIn),
}

// transitions is the allowed lifecycle graph. checked_out and cancelled are
// terminal. All transitions are staff-initiated; nothing is time-driven.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]

	return ok
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCheckedIn
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0 && s.IsValid()
}

// CanTransition reports whether moving from s to target follows the lifecycle
// graph. Staying in place is always allowed.
func (s Status) CanTransition(target Status) bool {
	if s == target {
		return true
	}

	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}

	return false
}

type Booking struct {
	ID             string    `db:"id"`
	RoomID         string    `db:"room_id"`
	GuestID        *string   `db:"guest_id"`
	CheckInDate    time.Time `db:"check_in_date"`
	CheckOutDate   time.Time `db:"check_out_date"`
	NumberOfGuests int       `db:"number_of_guests"`
	TotalPrice     float64   `db:"total_price"`
	Status         string    `db:"status"`
	Notes          string    `db:"notes"`
	model.Metadata
}

// Nights returns the whole-day length of the half-open interval
// [checkIn, checkOut). Zero or negative means an invalid range.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// CalculatePrice computes nights * basePrice for the room portion of a booking.
// The second return is false when either date is missing or the range yields no
// nights; callers must leave the stored price untouched in that case and let
// validation reject the dates.
func CalculatePrice(basePrice float64, checkIn, checkOut time.Time) (float64, bool) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0, false
	}

	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return 0, false
	}

	return float64(nights) * basePrice, true
}

// Overlaps applies the half-open intersection rule: [a,b) and [c,d) intersect
// iff a < d && c < b. Same-day turnover (b == c) is not a conflict.
func Overlaps(aStart, aEnd, cStart, cEnd time.Time) bool {
	return aStart.Before(cEnd) && cStart.Before(aEnd)
}

// OccupancyCalendar maps YYYY-MM-DD dates to the status of the booking holding
// that night within a requested period.
type OccupancyCalendar map[string]Status

// BuildOccupancyCalendar folds the given bookings into a per-date status map
// over [periodStart, periodEnd). Later bookings overwrite earlier entries on a
// shared date; the overlap invariant makes that unreachable for active
// bookings, the overwrite is the deterministic fallback.
func BuildOccupancyCalendar(bookings []Booking, periodStart, periodEnd time.Time) OccupancyCalendar {
	calendar := OccupancyCalendar{}

	for _, booking := range bookings {
		from := booking.CheckInDate
		if from.Before(periodStart) {
			from = periodStart
		}

		until := booking.CheckOutDate
		if until.After(periodEnd) {
			until = periodEnd
		}

		for day := from; day.Before(until); day = day.AddDate(0, 0, 1) {
			calendar[day.Format("2006-01-02")] = Status(booking.Status)
		}
	}

	return calendar
}
