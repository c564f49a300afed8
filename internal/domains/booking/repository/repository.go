package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/booking/model"
	"stay/shared"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	gRepo "stay/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CreateLocked(ctx context.Context, booking model.Booking) error
	HasOverlap(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error)
	UpdateLocked(ctx context.Context, id string, fields map[string]any, roomID string, checkIn, checkOut time.Time) error
	GetForPeriod(ctx context.Context, roomID string, periodStart, periodEnd time.Time) ([]model.Booking, error)
	DeleteWithItems(ctx context.Context, id string) error
	InsertServiceItem(ctx context.Context, item model.ServiceItem) error
	GetServiceItems(ctx context.Context, bookingID string) ([]model.ServiceItem, error)
	GetServiceItem(ctx context.Context, filter gDto.FilterGroup) (model.ServiceItem, error)
	ExistServiceItems(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	DeleteServiceItem(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	serviceItems gRepo.Repository[model.ServiceItem]
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository:   gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		serviceItems: gRepo.NewRepository[model.ServiceItem](model.ServiceItemEntityName, model.ServiceItemTableName, model.FieldID, db, otel),
		db:           db,
		otel:         otel,
	}
}

// CreateLocked inserts a booking inside a transaction that serializes writers
// per room. The room row is locked FOR UPDATE before the overlap check, so two
// concurrent requests for the same room cannot both pass it. The exclusion
// constraint on bookings backstops the same invariant; its violation maps to
// the same validation failure as a detected overlap.
func (r *repositoryImpl) CreateLocked(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CreateLocked")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := r.BeginTx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error().Err(rbErr).Msg("failed to rollback booking transaction")
			}
		}
	}()

	if err = r.lockRoom(ctx, tx, booking.RoomID); err != nil {
		return err
	}

	conflict, err := r.hasOverlap(ctx, tx, booking.RoomID, booking.CheckInDate, booking.CheckOutDate, "")
	if err != nil {
		return err
	}

	if conflict {
		return failure.ValidationOnBase(model.ErrMessageRoomAlreadyBooked) // nolint:wrapcheck
	}

	if err = r.InsertTx(ctx, tx, booking); err != nil {
		return mapWriteError(err)
	}

	if err = tx.Commit(); err != nil {
		return mapWriteError(fmt.Errorf("failed to commit booking: %w", err))
	}

	return nil
}

// UpdateLocked applies a partial update under the same room lock and overlap
// check as CreateLocked. roomID, checkIn and checkOut are the post-update
// values; the booking itself is excluded from the conflict scan.
func (r *repositoryImpl) UpdateLocked(ctx context.Context, id string, fields map[string]any, roomID string, checkIn, checkOut time.Time) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateLocked")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := r.BeginTx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error().Err(rbErr).Msg("failed to rollback booking transaction")
			}
		}
	}()

	if err = r.lockRoom(ctx, tx, roomID); err != nil {
		return err
	}

	conflict, err := r.hasOverlap(ctx, tx, roomID, checkIn, checkOut, id)
	if err != nil {
		return err
	}

	if conflict {
		return failure.ValidationOnBase(model.ErrMessageRoomAlreadyBooked) // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = r.UpdateTx(ctx, tx, fields, filter); err != nil {
		return mapWriteError(err)
	}

	if err = tx.Commit(); err != nil {
		return mapWriteError(fmt.Errorf("failed to commit booking update: %w", err))
	}

	return nil
}

func (r *repositoryImpl) lockRoom(ctx context.Context, tx *sqlx.Tx, roomID string) error {
	var lockedID string

	err := tx.GetContext(ctx, &lockedID, "SELECT id FROM rooms WHERE id = $1 FOR UPDATE", roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	if err != nil {
		return fmt.Errorf("failed to lock room: %w", err)
	}

	return nil
}

// HasOverlap runs the conflict scan outside a transaction, against the read
// connection. It answers availability questions; writers use the locked path.
func (r *repositoryImpl) HasOverlap(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (res bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".HasOverlap")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.hasOverlap(ctx, r.db.Read, roomID, checkIn, checkOut, excludeID)
}

// overlapQuerier is satisfied by both *sqlx.DB and *sqlx.Tx.
type overlapQuerier interface {
	Rebind(query string) string
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func (r *repositoryImpl) hasOverlap(ctx context.Context, tx overlapQuerier, roomID string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	query, params, err := buildOverlapQuery(roomID, checkIn, checkOut, excludeID)
	if err != nil {
		return false, err
	}

	query = tx.Rebind(query)

	var conflict bool
	if err = tx.GetContext(ctx, &conflict, query, params...); err != nil {
		return false, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	return conflict, nil
}

// buildOverlapQuery assembles the conflict scan. The self-exclusion clause is
// appended only when an id is given; the create path has no booking to exclude
// and an empty string would not bind against the uuid column.
func buildOverlapQuery(roomID string, checkIn, checkOut time.Time, excludeID string) (string, []any, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = :room_id
			  AND status IN (:active_statuses)
			  AND check_in_date < :check_out
			  AND check_out_date > :check_in`

	args := map[string]any{
		"room_id":         roomID,
		"active_statuses": model.ActiveStatuses,
		"check_in":        checkIn,
		"check_out":       checkOut,
	}

	if excludeID != constant.Empty {
		query += `
			  AND id <> :exclude_id`
		args["exclude_id"] = excludeID
	}

	query += `
		)`

	query, params, err := sqlx.Named(query, args)
	if err != nil {
		return "", nil, fmt.Errorf("failed to build overlap query: %w", err)
	}

	query, params, err = sqlx.In(query, params...)
	if err != nil {
		return "", nil, fmt.Errorf("failed to expand overlap query: %w", err)
	}

	return query, params, nil
}

// GetForPeriod returns the active-status bookings of a room intersecting
// [periodStart, periodEnd), ordered by check-in. Cancelled and checked-out
// stays leave their interval free, so they do not appear on the calendar.
func (r *repositoryImpl) GetForPeriod(ctx context.Context, roomID string, periodStart, periodEnd time.Time) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetForPeriod")
	defer scope.End()
	defer scope.TraceIfError(err)

	query, params, err := buildPeriodQuery(roomID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	query = r.db.Read.Rebind(query)

	if err = r.db.Read.SelectContext(ctx, &res, query, params...); err != nil {
		return nil, fmt.Errorf("failed to get bookings for period: %w", err)
	}

	return res, nil
}

func buildPeriodQuery(roomID string, periodStart, periodEnd time.Time) (string, []any, error) {
	query := `
		SELECT * FROM bookings
		WHERE room_id = ?
		  AND status IN (?)
		  AND check_in_date < ?
		  AND check_out_date > ?
		ORDER BY check_in_date ASC`

	query, params, err := sqlx.In(query, roomID, model.ActiveStatuses, periodEnd, periodStart)
	if err != nil {
		return "", nil, fmt.Errorf("failed to build period query: %w", err)
	}

	return query, params, nil
}

// DeleteWithItems removes a booking and its service line items atomically.
func (r *repositoryImpl) DeleteWithItems(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".DeleteWithItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := r.BeginTx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error().Err(rbErr).Msg("failed to rollback booking transaction")
			}
		}
	}()

	itemFilter := shared.FilterByID(id, model.FieldServiceItemBookingID, model.ServiceItemTableName)

	if err = r.serviceItems.DeleteTx(ctx, tx, itemFilter); err != nil {
		return err
	}

	bookingFilter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = r.DeleteTx(ctx, tx, bookingFilter); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking delete: %w", err)
	}

	return nil
}

func (r *repositoryImpl) InsertServiceItem(ctx context.Context, item model.ServiceItem) error {
	return r.serviceItems.Insert(ctx, item) // nolint:wrapcheck
}

func (r *repositoryImpl) GetServiceItems(ctx context.Context, bookingID string) ([]model.ServiceItem, error) {
	filter := shared.FilterByID(bookingID, model.FieldServiceItemBookingID, model.ServiceItemTableName)

	return r.serviceItems.GetAll(ctx, gDto.QueryParams{}, filter) // nolint:wrapcheck
}

func (r *repositoryImpl) GetServiceItem(ctx context.Context, filter gDto.FilterGroup) (model.ServiceItem, error) {
	return r.serviceItems.Get(ctx, filter) // nolint:wrapcheck
}

func (r *repositoryImpl) ExistServiceItems(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return r.serviceItems.Exist(ctx, filter) // nolint:wrapcheck
}

func (r *repositoryImpl) DeleteServiceItem(ctx context.Context, filter gDto.FilterGroup) error {
	return r.serviceItems.Delete(ctx, filter) // nolint:wrapcheck
}

// mapWriteError translates the database's own enforcement of the booking
// invariants into the failures callers already handle. An exclusion or
// serialization error means another writer won the room, which presents the
// same way as a detected overlap.
func mapWriteError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeExclusionViolation, constant.PqErrorCodeSerializationFail:
		return failure.ValidationOnBase(model.ErrMessageRoomAlreadyBooked) // nolint:wrapcheck
	case constant.PqErrorCodeFkViolation:
		return failure.Conflict("booking references a missing record") // nolint:wrapcheck
	default:
		return err
	}
}
