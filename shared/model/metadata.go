package model

import "time"

const (
	FieldCreatedAt  = "created_at"
	FieldModifiedAt = "modified_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedBy = "modified_by"
)

type Metadata struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}
