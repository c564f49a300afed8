package model

import (
	"time"

	"stay/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldAmount    = "amount"
	FieldMethod    = "method"
	FieldStatus    = "status"
	FieldReference = "reference"
	FieldPaidAt    = "paid_at"
	FieldNotes     = "notes"
)

const (
	MethodCash     = "cash"
	MethodCard     = "card"
	MethodTransfer = "transfer"
)

// Payment processing states. Only completed payments count toward a booking's
// paid total; a refunded entry keeps its amount for the audit trail.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

var Statuses = []string{StatusPending, StatusCompleted, StatusFailed, StatusRefunded}

// Payment is one ledger entry against a booking. The ledger is informational;
// nothing forces it to reconcile against the booking's total price.
type Payment struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	Amount    float64   `db:"amount"`
	Method    string    `db:"method"`
	Status    string    `db:"status"`
	Reference string    `db:"reference"`
	PaidAt    time.Time `db:"paid_at"`
	Notes     string    `db:"notes"`
	model.Metadata
}
