package model

import "stay/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldNumber     = "number"
	FieldRoomTypeID = "room_type_id"
	FieldFloor      = "floor"
	FieldStatus     = "status"
	FieldCapacity   = "capacity"
	FieldNotes      = "notes"
)

// Operational condition of the physical room, maintained by staff. This is
// independent from booking occupancy; only maintenance removes a room from
// the bookable inventory, the other states are display flags.
const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
	StatusReserved    = "reserved"
)

var Statuses = []string{StatusAvailable, StatusOccupied, StatusMaintenance, StatusReserved}

type Room struct {
	ID         string `db:"id"`
	Number     string `db:"number"`
	RoomTypeID string `db:"room_type_id"`
	Floor      int    `db:"floor"`
	Status     string `db:"status"`
	Capacity   int    `db:"capacity"`
	Notes      string `db:"notes"`
	model.Metadata
}

// EffectiveCapacity is the room's own capacity override when set, otherwise
// the capacity of its room type. Zero means no override.
func (r Room) EffectiveCapacity(roomTypeCapacity int) int {
	if r.Capacity > 0 {
		return r.Capacity
	}

	return roomTypeCapacity
}
