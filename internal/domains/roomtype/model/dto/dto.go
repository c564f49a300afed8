package dto

import (
	"stay/internal/domains/roomtype/model"
	"stay/shared"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateRoomTypeRequest struct {
	Name        string   `json:"name"        validate:"required,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	BasePrice   float64  `json:"base_price"  validate:"required,gt=0"`
	Capacity    int      `json:"capacity"    validate:"required,min=1"`
	Amenities   []string `json:"amenities"   validate:"omitempty,dive,max=100"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		BasePrice:   c.BasePrice,
		Capacity:    c.Capacity,
		Amenities:   pq.StringArray(c.Amenities),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name        string         `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string         `db:"description" json:"description" validate:"omitempty,max=500"`
	BasePrice   *float64       `db:"base_price"  json:"base_price"  validate:"omitempty,gt=0"`
	Capacity    *int           `db:"capacity"    json:"capacity"    validate:"omitempty,min=1"`
	Amenities   pq.StringArray `db:"amenities"   json:"amenities"   validate:"omitempty,dive,max=100"`
}

type RoomTypeResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BasePrice   float64  `json:"base_price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.BasePrice = model.BasePrice
	r.Capacity = model.Capacity
	r.Amenities = model.Amenities
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
