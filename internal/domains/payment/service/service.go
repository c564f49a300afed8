package service

import (
	"context"
	"fmt"

	"stay/config"
	"stay/infras/otel"
	bookingModel "stay/internal/domains/booking/model"
	bookingRepository "stay/internal/domains/booking/repository"
	"stay/internal/domains/payment/model"
	"stay/internal/domains/payment/model/dto"
	"stay/internal/domains/payment/repository"
	"stay/shared"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Payment interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) error
	Get(ctx context.Context, id string) (dto.PaymentResponse, error)
	GetLedger(ctx context.Context, bookingID string) (dto.BookingLedgerResponse, error)
	ChangeStatus(ctx context.Context, req dto.UpdatePaymentStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Payment
	bookingRepo bookingRepository.Booking
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.Payment, bookingRepo bookingRepository.Booking, cfg *config.Config, otel otel.Otel) Payment {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.bookingRepo.Exist(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		return failure.ValidationOnField("booking_id", "booking not found") // nolint:wrapcheck
	}

	if req.Amount <= 0 {
		return failure.ValidationOnField("amount", "amount must be greater than zero") // nolint:wrapcheck
	}

	return s.repo.Insert(ctx, req.ToModel(user)) // nolint:wrapcheck
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	payment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return res, failure.NotFound("payment not found") // nolint:wrapcheck
	}

	res.FromModel(payment)

	return res, nil
}

// GetLedger totals a booking's charges against its payments. The room charge
// comes from the booking itself; service charges come from the line items.
// Only completed payments count toward the paid total.
func (s *serviceImpl) GetLedger(ctx context.Context, bookingID string) (res dto.BookingLedgerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLedger")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	items, err := s.bookingRepo.GetServiceItems(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking services")

		return res, fmt.Errorf("failed to get booking services: %w", err)
	}

	payments, err := s.repo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.BookingID = bookingID
	res.RoomCharge = booking.TotalPrice

	for _, item := range items {
		res.ServiceCharge += item.Subtotal()
	}

	res.Payments = make([]dto.PaymentResponse, len(payments))
	for i, payment := range payments {
		res.Payments[i].FromModel(payment)

		if payment.Status == model.StatusCompleted {
			res.TotalPaid += payment.Amount
		}
	}

	res.TotalCharge = res.RoomCharge + res.ServiceCharge
	res.Balance = res.TotalCharge - res.TotalPaid

	return res, nil
}

// ChangeStatus moves a ledger entry between processing states. Amounts never
// change; a refund is recorded by flipping the entry to refunded.
func (s *serviceImpl) ChangeStatus(ctx context.Context, req dto.UpdatePaymentStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if payment exists")

		return fmt.Errorf("failed to check if payment exists: %w", err)
	}

	if !exist {
		return failure.NotFound("payment not found") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:      req.Status,
		gModel.FieldModifiedAt: timezone.Now(),
		gModel.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update payment status")

		return fmt.Errorf("failed to update payment status: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if payment exists")

		return fmt.Errorf("failed to check if payment exists: %w", err)
	}

	if !exist {
		return failure.NotFound("payment not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete payment")

		return fmt.Errorf("failed to delete payment: %w", err)
	}

	return nil
}
