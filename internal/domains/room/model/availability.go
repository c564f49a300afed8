package model

// AvailableRoom is the scan target for the inventory availability query, a
// room row joined with its type.
type AvailableRoom struct {
	ID           string  `db:"id"`
	Number       string  `db:"number"`
	Floor        int     `db:"floor"`
	RoomTypeID   string  `db:"room_type_id"`
	RoomTypeName string  `db:"room_type_name"`
	BasePrice    float64 `db:"base_price"`
	Capacity     int     `db:"capacity"`
}
