package model

import (
	"time"

	"stay/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID             = "id"
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldPassportNumber = "passport_number"
	FieldDateOfBirth    = "date_of_birth"
	FieldCountry        = "country"
	FieldNotes          = "notes"
)

type Guest struct {
	ID             string     `db:"id"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	Email          string     `db:"email"`
	Phone          string     `db:"phone"`
	PassportNumber string     `db:"passport_number"`
	DateOfBirth    *time.Time `db:"date_of_birth"`
	Country        string     `db:"country"`
	Notes          string     `db:"notes"`
	model.Metadata
}
