package model

import (
	"stay/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "room_galleries"
	EntityName = "gallery"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImages      = "images"
)

// Gallery is a set of photos attached to a room.
type Gallery struct {
	ID          string         `db:"id"`
	RoomID      string         `db:"room_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Images      pq.StringArray `db:"images"`
	model.Metadata
}
