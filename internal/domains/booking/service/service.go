package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"stay/config"
	"stay/infras/otel"
	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/model/dto"
	"stay/internal/domains/booking/repository"
	guestDto "stay/internal/domains/guest/model/dto"
	guestService "stay/internal/domains/guest/service"
	roomModel "stay/internal/domains/room/model"
	roomRepository "stay/internal/domains/room/repository"
	roomtypeModel "stay/internal/domains/roomtype/model"
	roomtypeRepository "stay/internal/domains/roomtype/repository"
	servicesModel "stay/internal/domains/services/model"
	servicesRepository "stay/internal/domains/services/repository"
	"stay/internal/events"
	"stay/shared"
	"stay/shared/cache"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	CreatePublic(ctx context.Context, req dto.CreatePublicBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	ChangeStatus(ctx context.Context, req dto.ChangeStatusRequest, id string) error
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	GetCalendar(ctx context.Context, roomID string, year, month int) (dto.CalendarResponse, error)
	AttachService(ctx context.Context, req dto.AttachServiceRequest, bookingID string) error
	GetServices(ctx context.Context, bookingID string) (dto.GetBookingServicesResponse, error)
	RemoveService(ctx context.Context, bookingID, itemID string) error
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepository.Room
	roomTypeRepo roomtypeRepository.RoomType
	serviceRepo  servicesRepository.Service
	guests       guestService.Guest
	publisher    events.BookingPublisher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepository.Room,
	roomTypeRepo roomtypeRepository.RoomType,
	serviceRepo servicesRepository.Service,
	guests guestService.Guest,
	publisher events.BookingPublisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		serviceRepo:  serviceRepo,
		guests:       guests,
		publisher:    publisher,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := parseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return err
	}

	guestExist, err := s.guestExists(ctx, req.GuestID)
	if err != nil {
		return err
	}

	if !guestExist {
		return failure.ValidationOnField("guest_id", "guest not found") // nolint:wrapcheck
	}

	roomType, err := s.bookableRoomType(ctx, req.RoomID, req.NumberOfGuests)
	if err != nil {
		return err
	}

	totalPrice, ok := model.CalculatePrice(roomType.BasePrice, checkIn, checkOut)
	if !ok {
		return failure.ValidationOnField("check_out_date", "check-out must be after check-in") // nolint:wrapcheck
	}

	booking := req.ToModel(user, checkIn, checkOut, totalPrice)

	items, err := s.resolveServiceSelections(ctx, req.Services, booking.ID, user)
	if err != nil {
		return err
	}

	// Staff may open a booking in any state. Only an active one claims the
	// room's interval, so an inactive one skips the locked overlap path.
	if model.Status(booking.Status).IsActive() {
		err = s.repo.CreateLocked(ctx, booking)
	} else {
		err = s.repo.Insert(ctx, booking)
	}

	if err != nil {
		return err
	}

	if err = s.attachItems(ctx, items); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.BookingEvent{
		Type:      events.BookingCreated,
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		GuestID:   booking.GuestID,
		Status:    booking.Status,
	})

	s.invalidateListCaches(ctx)

	return nil
}

// CreatePublic handles an unauthenticated reservation. The guest profile is
// resolved by email so a returning guest reuses their record, and the booking
// always starts pending. Requested services are attached at their current
// catalog price.
func (s *serviceImpl) CreatePublic(ctx context.Context, req dto.CreatePublicBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePublic")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := parseStayDates(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return res, err
	}

	roomType, err := s.bookableRoomType(ctx, req.RoomID, req.NumberOfGuests)
	if err != nil {
		return res, err
	}

	totalPrice, ok := model.CalculatePrice(roomType.BasePrice, checkIn, checkOut)
	if !ok {
		return res, failure.ValidationOnField("check_out_date", "check-out must be after check-in") // nolint:wrapcheck
	}

	guest, err := s.guests.FindOrCreate(ctx, guestDto.CreateGuestRequest{
		FirstName: req.Guest.FirstName,
		LastName:  req.Guest.LastName,
		Email:     req.Guest.Email,
		Phone:     req.Guest.Phone,
	})
	if err != nil {
		return res, err
	}

	bookingID := uuid.NewString()

	items, err := s.resolveServiceSelections(ctx, req.Services, bookingID, guest.Email)
	if err != nil {
		return res, err
	}

	guestID := guest.ID
	booking := model.Booking{
		ID:             bookingID,
		RoomID:         req.RoomID,
		GuestID:        &guestID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: req.NumberOfGuests,
		TotalPrice:     totalPrice,
		Status:         string(model.StatusPending),
		Notes:          req.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  guest.Email,
			ModifiedBy: guest.Email,
		},
	}

	if err = s.repo.CreateLocked(ctx, booking); err != nil {
		return res, err
	}

	if err = s.attachItems(ctx, items); err != nil {
		return res, err
	}

	s.publisher.Publish(ctx, events.BookingEvent{
		Type:      events.BookingCreated,
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		GuestID:   booking.GuestID,
		Status:    booking.Status,
	})

	s.invalidateListCaches(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update edits the stay itself. Any change to the room or the dates re-prices
// the booking from the room type's current base price and re-runs the overlap
// check with the booking excluded from the scan. Status never changes here.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if model.Status(current.Status).IsTerminal() {
		return failure.ValidationOnBase("booking can no longer be modified") // nolint:wrapcheck
	}

	if req.GuestID != constant.Empty {
		guestExist, err := s.guestExists(ctx, req.GuestID)
		if err != nil {
			return err
		}

		if !guestExist {
			return failure.ValidationOnField("guest_id", "guest not found") // nolint:wrapcheck
		}
	}

	roomID := current.RoomID
	if req.RoomID != constant.Empty {
		roomID = req.RoomID
	}

	checkIn := current.CheckInDate
	if req.CheckInDate != constant.Empty {
		if checkIn, err = timezone.Parse(constant.DateOnlyFormat, req.CheckInDate); err != nil {
			return failure.ValidationOnField("check_in_date", "invalid date") // nolint:wrapcheck
		}
	}

	checkOut := current.CheckOutDate
	if req.CheckOutDate != constant.Empty {
		if checkOut, err = timezone.Parse(constant.DateOnlyFormat, req.CheckOutDate); err != nil {
			return failure.ValidationOnField("check_out_date", "invalid date") // nolint:wrapcheck
		}
	}

	if !checkOut.After(checkIn) {
		return failure.ValidationOnField("check_out_date", "check-out must be after check-in") // nolint:wrapcheck
	}

	numberOfGuests := current.NumberOfGuests
	if req.NumberOfGuests != nil {
		numberOfGuests = *req.NumberOfGuests
	}

	roomType, err := s.bookableRoomType(ctx, roomID, numberOfGuests)
	if err != nil {
		return err
	}

	fields := shared.TransformFields(req, user)
	fields[model.FieldCheckInDate] = checkIn
	fields[model.FieldCheckOutDate] = checkOut

	if roomID != current.RoomID || !checkIn.Equal(current.CheckInDate) || !checkOut.Equal(current.CheckOutDate) {
		totalPrice, ok := model.CalculatePrice(roomType.BasePrice, checkIn, checkOut)
		if !ok {
			return failure.ValidationOnField("check_out_date", "check-out must be after check-in") // nolint:wrapcheck
		}

		fields[model.FieldTotalPrice] = totalPrice
	}

	if err = s.repo.UpdateLocked(ctx, id, fields, roomID, checkIn, checkOut); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.BookingEvent{
		Type:      events.BookingUpdated,
		BookingID: current.ID,
		RoomID:    roomID,
		GuestID:   current.GuestID,
		Status:    current.Status,
	})

	s.invalidateBookingCaches(ctx, id)

	return nil
}

// ChangeStatus moves a booking along its lifecycle. Cancelling and checking
// out leave the active set and never consult availability; re-activating a
// terminal booking with force re-runs the overlap check, the invariant holds
// no matter how the status got there.
func (s *serviceImpl) ChangeStatus(ctx context.Context, req dto.ChangeStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	from := model.Status(current.Status)
	target := model.Status(req.Status)

	if from == target {
		return nil
	}

	if !req.Force && !from.CanTransition(target) {
		return failure.ValidationOnField("status", fmt.Sprintf("cannot transition from %s to %s", from, target)) // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:      string(target),
		gModel.FieldModifiedAt: timezone.Now(),
		gModel.FieldModifiedBy: user,
	}

	if target.IsActive() && !from.IsActive() {
		err = s.repo.UpdateLocked(ctx, id, fields, current.RoomID, current.CheckInDate, current.CheckOutDate)
	} else {
		err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
	}

	if err != nil {
		return err
	}

	eventType := events.BookingStatusChanged
	if target == model.StatusCancelled {
		eventType = events.BookingCancelled
	}

	s.publisher.Publish(ctx, events.BookingEvent{
		Type:      eventType,
		BookingID: current.ID,
		RoomID:    current.RoomID,
		GuestID:   current.GuestID,
		Status:    string(target),
	})

	s.invalidateBookingCaches(ctx, id)

	return nil
}

// Cancel is the guest-facing shortcut for the cancelled transition. It frees
// the room's interval immediately.
func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	return s.ChangeStatus(ctx, dto.ChangeStatusRequest{Status: string(model.StatusCancelled)}, id)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.DeleteWithItems(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.publisher.Publish(ctx, events.BookingEvent{
		Type:      events.BookingDeleted,
		BookingID: current.ID,
		RoomID:    current.RoomID,
		GuestID:   current.GuestID,
		Status:    current.Status,
	})

	s.invalidateBookingCaches(ctx, id)

	return nil
}

// GetCalendar builds the day-by-day occupancy of one room for one month.
func (s *serviceImpl) GetCalendar(ctx context.Context, roomID string, year, month int) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCalendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	if month < 1 || month > 12 {
		return res, failure.ValidationOnField("month", "month must be between 1 and 12") // nolint:wrapcheck
	}

	roomExist, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return res, fmt.Errorf("failed to check room existence: %w", err)
	}

	if !roomExist {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, timezone.GetLocation())
	periodEnd := periodStart.AddDate(0, 1, 0)

	bookings, err := s.repo.GetForPeriod(ctx, roomID, periodStart, periodEnd)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for calendar")

		return res, fmt.Errorf("failed to get bookings for calendar: %w", err)
	}

	res.FromCalendar(roomID, year, month, model.BuildOccupancyCalendar(bookings, periodStart, periodEnd))

	return res, nil
}

// AttachService adds a catalog service to a booking, snapshotting the current
// catalog price into the line item.
func (s *serviceImpl) AttachService(ctx context.Context, req dto.AttachServiceRequest, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AttachService")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if model.Status(booking.Status).IsTerminal() {
		return failure.ValidationOnBase("booking can no longer be modified") // nolint:wrapcheck
	}

	catalogService, err := s.serviceRepo.Get(ctx, shared.FilterByID(req.ServiceID, servicesModel.FieldID, servicesModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return fmt.Errorf("failed to get service: %w", err)
	}

	if catalogService.ID == constant.Empty {
		return failure.ValidationOnField("service_id", "service not found") // nolint:wrapcheck
	}

	if !catalogService.Active {
		return failure.ValidationOnField("service_id", "service is not active") // nolint:wrapcheck
	}

	item := model.ServiceItem{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		ServiceID: req.ServiceID,
		Quantity:  req.Quantity,
		UnitPrice: catalogService.Price,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.InsertServiceItem(ctx, item); err != nil {
		return err
	}

	s.invalidateBookingCaches(ctx, bookingID)

	return nil
}

func (s *serviceImpl) GetServices(ctx context.Context, bookingID string) (res dto.GetBookingServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return res, fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	items, err := s.repo.GetServiceItems(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking services")

		return res, fmt.Errorf("failed to get booking services: %w", err)
	}

	res.FromModels(bookingID, items)

	return res, nil
}

func (s *serviceImpl) RemoveService(ctx context.Context, bookingID, itemID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveService")
	defer scope.End()
	defer scope.TraceIfError(nil)

	item, err := s.repo.GetServiceItem(ctx, shared.FilterByID(itemID, model.FieldID, model.ServiceItemTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking service")

		return fmt.Errorf("failed to get booking service: %w", err)
	}

	if item.ID == constant.Empty || item.BookingID != bookingID {
		return failure.NotFound("booking service not found") // nolint:wrapcheck
	}

	if err := s.repo.DeleteServiceItem(ctx, shared.FilterByID(itemID, model.FieldID, model.ServiceItemTableName)); err != nil {
		log.Error().Err(err).Msg("failed to remove booking service")

		return fmt.Errorf("failed to remove booking service: %w", err)
	}

	s.invalidateBookingCaches(ctx, bookingID)

	return nil
}

// parseStayDates parses the request dates in the hotel timezone and enforces
// the strict ordering a half-open stay needs.
func parseStayDates(checkInDate, checkOutDate string) (time.Time, time.Time, error) {
	checkIn, err := timezone.Parse(constant.DateOnlyFormat, checkInDate)
	if err != nil {
		return time.Time{}, time.Time{}, failure.ValidationOnField("check_in_date", "invalid date") // nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, checkOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, failure.ValidationOnField("check_out_date", "invalid date") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, failure.ValidationOnField("check_out_date", "check-out must be after check-in") // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

func (s *serviceImpl) guestExists(ctx context.Context, guestID string) (bool, error) {
	exist, err := s.guests.Get(ctx, guestID)
	if err != nil {
		if failure.GetCode(err) == http.StatusNotFound {
			return false, nil
		}

		return false, err
	}

	return exist.ID != constant.Empty, nil
}

// bookableRoomType loads the room, rejects unbookable ones, and returns the
// room type carrying the price. The guest count is checked against the room's
// capacity override when set, otherwise against the type's capacity.
func (s *serviceImpl) bookableRoomType(ctx context.Context, roomID string, numberOfGuests int) (roomtypeModel.RoomType, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return roomtypeModel.RoomType{}, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return roomtypeModel.RoomType{}, failure.ValidationOnField("room_id", "room not found") // nolint:wrapcheck
	}

	if room.Status == roomModel.StatusMaintenance {
		return roomtypeModel.RoomType{}, failure.ValidationOnField("room_id", "room is under maintenance") // nolint:wrapcheck
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(room.RoomTypeID, roomtypeModel.FieldID, roomtypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return roomtypeModel.RoomType{}, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return roomtypeModel.RoomType{}, failure.ValidationOnField("room_id", "room type not found") // nolint:wrapcheck
	}

	if numberOfGuests > room.EffectiveCapacity(roomType.Capacity) {
		return roomtypeModel.RoomType{}, failure.ValidationOnField("number_of_guests", "exceeds room capacity") // nolint:wrapcheck
	}

	return roomType, nil
}

// resolveServiceSelections turns requested catalog services into line items,
// snapshotting each service's current price. An unknown or inactive service
// rejects the whole booking before anything is written.
func (s *serviceImpl) resolveServiceSelections(ctx context.Context, selections []dto.ServiceSelection, bookingID, user string) ([]model.ServiceItem, error) {
	items := make([]model.ServiceItem, 0, len(selections))

	for _, selection := range selections {
		catalogService, err := s.serviceRepo.Get(ctx, shared.FilterByID(selection.ServiceID, servicesModel.FieldID, servicesModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get service")

			return nil, fmt.Errorf("failed to get service: %w", err)
		}

		if catalogService.ID == constant.Empty {
			return nil, failure.ValidationOnField("service_selections", "service not found") // nolint:wrapcheck
		}

		if !catalogService.Active {
			return nil, failure.ValidationOnField("service_selections", "service is not active") // nolint:wrapcheck
		}

		items = append(items, model.ServiceItem{
			ID:        uuid.NewString(),
			BookingID: bookingID,
			ServiceID: selection.ServiceID,
			Quantity:  selection.Quantity,
			UnitPrice: catalogService.Price,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	}

	return items, nil
}

func (s *serviceImpl) attachItems(ctx context.Context, items []model.ServiceItem) error {
	for _, item := range items {
		if err := s.repo.InsertServiceItem(ctx, item); err != nil {
			log.Error().Err(err).Msg("failed to attach booking service")

			return fmt.Errorf("failed to attach booking service: %w", err)
		}
	}

	return nil
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
