package model

import "stay/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldActive      = "active"
)

// Service is a chargeable extra from the hotel catalog, breakfast, parking,
// airport transfer and the like. Price here is the current catalog price;
// bookings snapshot it into their line items.
type Service struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Active      bool    `db:"active"`
	model.Metadata
}
