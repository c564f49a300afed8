package model

import "stay/shared/model"

const (
	ServiceItemTableName  = "booking_services"
	ServiceItemEntityName = "booking service"

	FieldServiceItemBookingID = "booking_id"
	FieldServiceItemServiceID = "service_id"
)

// ServiceItem is a chargeable extra attached to a booking. UnitPrice snapshots
// the service price at attach time so later catalog edits do not reprice past
// stays. Line items never feed TotalPrice, which covers the room only.
type ServiceItem struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	ServiceID string  `db:"service_id"`
	Quantity  int     `db:"quantity"`
	UnitPrice float64 `db:"unit_price"`
	model.Metadata
}

func (s ServiceItem) Subtotal() float64 {
	return float64(s.Quantity) * s.UnitPrice
}
