package dto

import (
	"stay/internal/domains/room/model"
	"stay/shared"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number     string `json:"number"       validate:"required,max=20"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	Floor      int    `json:"floor"        validate:"omitempty,min=0"`
	Status     string `json:"status"       validate:"omitempty,oneof=available occupied maintenance reserved"`
	Capacity   int    `json:"capacity"     validate:"omitempty,min=1"`
	Notes      string `json:"notes"        validate:"omitempty,max=500"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Room{
		ID:         uuid.NewString(),
		Number:     c.Number,
		RoomTypeID: c.RoomTypeID,
		Floor:      c.Floor,
		Status:     status,
		Capacity:   c.Capacity,
		Notes:      c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number     string `db:"number"       json:"number"       validate:"omitempty,max=20"`
	RoomTypeID string `db:"room_type_id" json:"room_type_id" validate:"omitempty,uuid"`
	Floor      *int   `db:"floor"        json:"floor"        validate:"omitempty,min=0"`
	Status     string `db:"status"       json:"status"       validate:"omitempty,oneof=available occupied maintenance reserved"`
	Capacity   *int   `db:"capacity"     json:"capacity"     validate:"omitempty,min=1"`
	Notes      string `db:"notes"        json:"notes"        validate:"omitempty,max=500"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	RoomTypeID string `json:"room_type_id"`
	Floor      int    `json:"floor"`
	Status     string `json:"status"`
	Capacity   int    `json:"capacity"`
	Notes      string `json:"notes"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.RoomTypeID = model.RoomTypeID
	r.Floor = model.Floor
	r.Status = model.Status
	r.Capacity = model.Capacity
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// AvailableRoomResponse is a room row joined with its type for the public
// availability search.
type AvailableRoomResponse struct {
	ID           string  `json:"id"`
	Number       string  `json:"number"`
	Floor        int     `json:"floor"`
	RoomTypeID   string  `json:"room_type_id"`
	RoomTypeName string  `json:"room_type_name"`
	BasePrice    float64 `json:"base_price"`
	Capacity     int     `json:"capacity"`
}

// CheckAvailabilityResponse answers whether one room is free for an interval.
type CheckAvailabilityResponse struct {
	RoomID       string `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Available    bool   `json:"available"`
}

type SearchAvailabilityResponse struct {
	Rooms        []AvailableRoomResponse `json:"rooms"`
	CheckInDate  string                  `json:"check_in_date"`
	CheckOutDate string                  `json:"check_out_date"`
	Nights       int                     `json:"nights"`
}
