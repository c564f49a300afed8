package dto

import (
	"stay/internal/domains/guest/model"
	"stay/shared"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
)

// CreateGuestRequest is a guest profile. Phone is the required contact field;
// email is optional but must be unique when given because it keys the public
// booking path's find-or-create.
type CreateGuestRequest struct {
	FirstName      string `json:"first_name"      validate:"required,max=100"`
	LastName       string `json:"last_name"       validate:"required,max=100"`
	Email          string `json:"email"           validate:"omitempty,email,max=255"`
	Phone          string `json:"phone"           validate:"required,max=30"`
	PassportNumber string `json:"passport_number" validate:"omitempty,max=50"`
	DateOfBirth    string `json:"date_of_birth"   validate:"omitempty,datetime=2006-01-02"`
	Country        string `json:"country"         validate:"omitempty,max=100"`
	Notes          string `json:"notes"           validate:"omitempty,max=500"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	guest := model.Guest{
		ID:             uuid.NewString(),
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
		PassportNumber: c.PassportNumber,
		Country:        c.Country,
		Notes:          c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if c.DateOfBirth != constant.Empty {
		if dateOfBirth, err := timezone.Parse(constant.DateOnlyFormat, c.DateOfBirth); err == nil {
			guest.DateOfBirth = &dateOfBirth
		}
	}

	return guest
}

type UpdateGuestRequest struct {
	FirstName      string `db:"first_name"      json:"first_name"      validate:"omitempty,max=100"`
	LastName       string `db:"last_name"       json:"last_name"       validate:"omitempty,max=100"`
	Email          string `db:"email"           json:"email"           validate:"omitempty,email,max=255"`
	Phone          string `db:"phone"           json:"phone"           validate:"omitempty,max=30"`
	PassportNumber string `db:"passport_number" json:"passport_number" validate:"omitempty,max=50"`
	DateOfBirth    string `db:"date_of_birth"   json:"date_of_birth"   validate:"omitempty,datetime=2006-01-02"`
	Country        string `db:"country"         json:"country"         validate:"omitempty,max=100"`
	Notes          string `db:"notes"           json:"notes"           validate:"omitempty,max=500"`
}

type GuestResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PassportNumber string `json:"passport_number"`
	DateOfBirth    string `json:"date_of_birth"`
	Country        string `json:"country"`
	Notes          string `json:"notes"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.PassportNumber = model.PassportNumber
	r.Country = model.Country
	r.Notes = model.Notes

	if model.DateOfBirth != nil {
		r.DateOfBirth = model.DateOfBirth.Format(constant.DateOnlyFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
