package model

import (
	"stay/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "room_types"
	EntityName = "room type"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldBasePrice   = "base_price"
	FieldCapacity    = "capacity"
	FieldAmenities   = "amenities"
)

type RoomType struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	BasePrice   float64        `db:"base_price"`
	Capacity    int            `db:"capacity"`
	Amenities   pq.StringArray `db:"amenities"`
	model.Metadata
}
