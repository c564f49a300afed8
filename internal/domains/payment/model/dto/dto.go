package dto

import (
	"stay/internal/domains/payment/model"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	BookingID string  `json:"booking_id" validate:"required,uuid"`
	Amount    float64 `json:"amount"     validate:"required,gt=0"`
	Method    string  `json:"method"     validate:"required,oneof=cash card transfer"`
	Status    string  `json:"status"     validate:"omitempty,oneof=pending completed failed refunded"`
	Reference string  `json:"reference"  validate:"omitempty,max=100"`
	Notes     string  `json:"notes"      validate:"omitempty,max=500"`
}

func (c *CreatePaymentRequest) ToModel(user string) model.Payment {
	status := c.Status
	if status == "" {
		status = model.StatusCompleted
	}

	return model.Payment{
		ID:        uuid.NewString(),
		BookingID: c.BookingID,
		Amount:    c.Amount,
		Method:    c.Method,
		Status:    status,
		Reference: c.Reference,
		PaidAt:    timezone.Now(),
		Notes:     c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdatePaymentStatusRequest moves a ledger entry between processing states,
// for example to mark a pending transfer completed or a payment refunded.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed failed refunded"`
}

type PaymentResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Status    string  `json:"status"`
	Reference string  `json:"reference"`
	PaidAt    string  `json:"paid_at"`
	Notes     string  `json:"notes"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Method = model.Method
	r.Status = model.Status
	r.Reference = model.Reference
	r.PaidAt = model.PaidAt.Format(constant.DateFormat)
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

// BookingLedgerResponse summarizes the money side of one booking: the room
// charge, the service charges, and what has been paid so far.
type BookingLedgerResponse struct {
	BookingID     string            `json:"booking_id"`
	RoomCharge    float64           `json:"room_charge"`
	ServiceCharge float64           `json:"service_charge"`
	TotalCharge   float64           `json:"total_charge"`
	TotalPaid     float64           `json:"total_paid"`
	Balance       float64           `json:"balance"`
	Payments      []PaymentResponse `json:"payments"`
}
