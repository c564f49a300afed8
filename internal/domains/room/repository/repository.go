package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"stay/infras/otel"
	"stay/infras/postgres"
	bookingModel "stay/internal/domains/booking/model"
	"stay/internal/domains/room/model"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	gRepo "stay/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindAvailable(ctx context.Context, checkIn, checkOut time.Time, minCapacity int, roomTypeID string) ([]model.AvailableRoom, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindAvailable returns every bookable room whose interval does not intersect
// an active booking on [checkIn, checkOut). Overlap is the half-open rule, so
// a stay ending on checkIn does not block the room. Rooms under maintenance
// are excluded regardless of bookings. A room's own capacity override, when
// set, takes precedence over its type's.
func (r *repositoryImpl) FindAvailable(ctx context.Context, checkIn, checkOut time.Time, minCapacity int, roomTypeID string) (res []model.AvailableRoom, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".FindAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT r.id, r.number, r.floor, r.room_type_id,
		       rt.name AS room_type_name, rt.base_price,
		       COALESCE(NULLIF(r.capacity, 0), rt.capacity) AS capacity
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE r.status <> :maintenance
		  AND COALESCE(NULLIF(r.capacity, 0), rt.capacity) >= :min_capacity
		  AND NOT EXISTS (
		      SELECT 1 FROM bookings b
		      WHERE b.room_id = r.id
		        AND b.status IN (:active_statuses)
		        AND b.check_in_date < :check_out
		        AND b.check_out_date > :check_in
		  )`

	args := map[string]any{
		"maintenance":     model.StatusMaintenance,
		"min_capacity":    minCapacity,
		"active_statuses": bookingModel.ActiveStatuses,
		"check_in":        checkIn,
		"check_out":       checkOut,
	}

	if roomTypeID != "" {
		query += " AND r.room_type_id = :room_type_id"
		args["room_type_id"] = roomTypeID
	}

	query += " ORDER BY r.number ASC"

	query, params, err := sqlx.Named(query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to build availability query: %w", err)
	}

	query, params, err = sqlx.In(query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to expand availability query: %w", err)
	}

	query = r.db.Read.Rebind(query)

	if err = r.db.Read.SelectContext(ctx, &res, query, params...); err != nil {
		return nil, fmt.Errorf("failed to find available rooms: %w", err)
	}

	return res, nil
}
