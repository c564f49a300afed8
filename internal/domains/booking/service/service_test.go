package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stay/config"
	"stay/infras/otel/mocks"
	bookingMocks "stay/internal/domains/booking/mocks"
	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/model/dto"
	"stay/internal/domains/booking/service"
	guestModel "stay/internal/domains/guest/model"
	guestDto "stay/internal/domains/guest/model/dto"
	guestServiceMocks "stay/internal/domains/guest/service/mocks"
	roomMocks "stay/internal/domains/room/mocks"
	roomModel "stay/internal/domains/room/model"
	roomtypeMocks "stay/internal/domains/roomtype/mocks"
	roomtypeModel "stay/internal/domains/roomtype/model"
	servicesMocks "stay/internal/domains/services/mocks"
	servicesModel "stay/internal/domains/services/model"
	eventMocks "stay/internal/events/mocks"
	cacheMocks "stay/shared/cache/mocks"
	"stay/shared/constant"
	"stay/shared/failure"
)

type fixture struct {
	repo         *bookingMocks.MockBooking
	roomRepo     *roomMocks.MockRoom
	roomTypeRepo *roomtypeMocks.MockRoomType
	serviceRepo  *servicesMocks.MockService
	guests       *guestServiceMocks.MockGuest
	publisher    *eventMocks.MockBookingPublisher
	cache        *cacheMocks.MockRedisCache
	svc          service.Booking
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:         bookingMocks.NewMockBooking(ctrl),
		roomRepo:     roomMocks.NewMockRoom(ctrl),
		roomTypeRepo: roomtypeMocks.NewMockRoomType(ctrl),
		serviceRepo:  servicesMocks.NewMockService(ctrl),
		guests:       guestServiceMocks.NewMockGuest(ctrl),
		publisher:    eventMocks.NewMockBookingPublisher(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Invalidation runs in fire-and-forget goroutines.
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.roomRepo, f.roomTypeRepo, f.serviceRepo, f.guests, f.publisher, cfg, f.cache, mocks.NewOtel())

	return f
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func (f *fixture) expectBookableRoom(capacity int, basePrice float64) {
	f.roomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(roomModel.Room{ID: "room-1", RoomTypeID: "rt-1", Status: roomModel.StatusAvailable}, nil)

	f.roomTypeRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(roomtypeModel.RoomType{ID: "rt-1", BasePrice: basePrice, Capacity: capacity}, nil)
}

func TestBookingService_Create(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:         "room-1",
		GuestID:        "guest-1",
		CheckInDate:    "2025-06-01",
		CheckOutDate:   "2025-06-04",
		NumberOfGuests: 2,
	}

	t.Run("successful creation prices three nights", func(t *testing.T) {
		f := newFixture(t)

		f.guests.EXPECT().
			Get(gomock.Any(), "guest-1").
			Return(guestDto.GuestResponse{ID: "guest-1"}, nil)
		f.expectBookableRoom(2, 100)

		var created model.Booking

		f.repo.EXPECT().
			CreateLocked(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				created = booking

				return nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		err := f.svc.Create(testContext(), req)

		assert.NoError(t, err)
		assert.InDelta(t, 300, created.TotalPrice, 0.001)
		assert.Equal(t, string(model.StatusPending), created.Status)
	})

	t.Run("requested services are attached at catalog price", func(t *testing.T) {
		f := newFixture(t)

		withServices := req
		withServices.Services = []dto.ServiceSelection{{ServiceID: "svc-1", Quantity: 2}}

		f.guests.EXPECT().
			Get(gomock.Any(), "guest-1").
			Return(guestDto.GuestResponse{ID: "guest-1"}, nil)
		f.expectBookableRoom(2, 100)
		f.serviceRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(servicesModel.Service{ID: "svc-1", Price: 25, Active: true}, nil)

		var created model.Booking

		f.repo.EXPECT().
			CreateLocked(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				created = booking

				return nil
			})
		f.repo.EXPECT().
			InsertServiceItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item model.ServiceItem) error {
				assert.Equal(t, created.ID, item.BookingID)
				assert.Equal(t, 2, item.Quantity)
				assert.InDelta(t, 25, item.UnitPrice, 0.001)

				return nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		err := f.svc.Create(testContext(), withServices)

		assert.NoError(t, err)
	})

	t.Run("inactive service selection rejects before anything is written", func(t *testing.T) {
		f := newFixture(t)

		withServices := req
		withServices.Services = []dto.ServiceSelection{{ServiceID: "svc-1", Quantity: 1}}

		f.guests.EXPECT().
			Get(gomock.Any(), "guest-1").
			Return(guestDto.GuestResponse{ID: "guest-1"}, nil)
		f.expectBookableRoom(2, 100)
		f.serviceRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(servicesModel.Service{ID: "svc-1", Price: 25, Active: false}, nil)

		err := f.svc.Create(testContext(), withServices)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not active")
	})

	t.Run("cancelled initial status skips the overlap lock", func(t *testing.T) {
		f := newFixture(t)

		cancelledReq := req
		cancelledReq.Status = string(model.StatusCancelled)

		f.guests.EXPECT().
			Get(gomock.Any(), "guest-1").
			Return(guestDto.GuestResponse{ID: "guest-1"}, nil)
		f.expectBookableRoom(2, 100)

		var created model.Booking

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				created = booking

				return nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		err := f.svc.Create(testContext(), cancelledReq)

		assert.NoError(t, err)
		assert.Equal(t, string(model.StatusCancelled), created.Status)
	})

	t.Run("room capacity override caps the party", func(t *testing.T) {
		f := newFixture(t)

		f.guests.EXPECT().
			Get(gomock.Any(), "guest-1").
			Return(guestDto.GuestResponse{ID: "guest-1"}, nil)
		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: "room-1", RoomTypeID: "rt-1", Status: roomModel.StatusAvailable, Capacity: 1}, nil)
		f.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomtypeModel.RoomType{ID: "rt-1", BasePrice: 100, Capacity: 4}, nil)

		err := f.svc.Create(testContext(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "capacity")
	})

	t.Run("overlap conflict surfaces the record-level message", func(t *testing.T) {
		f := newFixture(t)

		f.guests.EXPECT().
			Get(gomock.Any(), "guest-1").
			Return(guestDto.GuestResponse{ID: "guest-1"}, nil)
		f.expectBookableRoom(2, 100)

		f.repo.EXPECT().
			CreateLocked(gomock.Any(), gomock.Any()).
			Return(failure.ValidationOnBase(model.ErrMessageRoomAlreadyBooked))

		err := f.svc.Create(testContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), model.ErrMessageRoomAlreadyBooked)
	})

	t.Run("check-out not after check-in", func(t *testing.T) {
		f := newFixture(t)

		badReq := req
		badReq.CheckOutDate = "2025-06-01"

		err := f.svc.Create(testContext(), badReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown guest", func(t *testing.T) {
		f := newFixture(t)

		f.guests.EXPECT().
			Get(gomock.Any(), "guest-1").
			Return(guestDto.GuestResponse{}, failure.NotFound("guest not found"))

		err := f.svc.Create(testContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("room under maintenance", func(t *testing.T) {
		f := newFixture(t)

		f.guests.EXPECT().
			Get(gomock.Any(), "guest-1").
			Return(guestDto.GuestResponse{ID: "guest-1"}, nil)
		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: "room-1", RoomTypeID: "rt-1", Status: roomModel.StatusMaintenance}, nil)

		err := f.svc.Create(testContext(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "maintenance")
	})

	t.Run("occupied room still accepts future bookings", func(t *testing.T) {
		f := newFixture(t)

		f.guests.EXPECT().
			Get(gomock.Any(), "guest-1").
			Return(guestDto.GuestResponse{ID: "guest-1"}, nil)
		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: "room-1", RoomTypeID: "rt-1", Status: roomModel.StatusOccupied}, nil)
		f.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomtypeModel.RoomType{ID: "rt-1", BasePrice: 100, Capacity: 2}, nil)

		f.repo.EXPECT().CreateLocked(gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		err := f.svc.Create(testContext(), req)

		assert.NoError(t, err)
	})

	t.Run("party larger than capacity", func(t *testing.T) {
		f := newFixture(t)

		f.guests.EXPECT().
			Get(gomock.Any(), "guest-1").
			Return(guestDto.GuestResponse{ID: "guest-1"}, nil)
		f.expectBookableRoom(1, 100)

		err := f.svc.Create(testContext(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "capacity")
	})
}

func TestBookingService_CreatePublic(t *testing.T) {
	req := dto.CreatePublicBookingRequest{
		RoomID:         "room-1",
		CheckInDate:    "2025-06-01",
		CheckOutDate:   "2025-06-03",
		NumberOfGuests: 2,
		Guest: dto.PublicGuestRequest{
			FirstName: "Ana",
			LastName:  "Silva",
			Email:     "ana@example.com",
		},
	}

	t.Run("reuses guest by email and forces pending", func(t *testing.T) {
		f := newFixture(t)

		f.expectBookableRoom(2, 150)

		f.guests.EXPECT().
			FindOrCreate(gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{ID: "guest-9", Email: "ana@example.com"}, nil)

		var created model.Booking

		f.repo.EXPECT().
			CreateLocked(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				created = booking

				return nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		res, err := f.svc.CreatePublic(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, string(model.StatusPending), created.Status)
		assert.Equal(t, "ana@example.com", created.CreatedBy)
		assert.InDelta(t, 300, res.TotalPrice, 0.001)
		assert.Equal(t, 2, res.Nights)
	})

	t.Run("attaches requested services at catalog price", func(t *testing.T) {
		f := newFixture(t)

		withServices := req
		withServices.Services = []dto.ServiceSelection{{ServiceID: "svc-1", Quantity: 1}}

		f.expectBookableRoom(2, 150)

		f.guests.EXPECT().
			FindOrCreate(gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{ID: "guest-9", Email: "ana@example.com"}, nil)
		f.serviceRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(servicesModel.Service{ID: "svc-1", Price: 40, Active: true}, nil)

		var created model.Booking

		f.repo.EXPECT().
			CreateLocked(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				created = booking

				return nil
			})
		f.repo.EXPECT().
			InsertServiceItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item model.ServiceItem) error {
				assert.Equal(t, created.ID, item.BookingID)
				assert.InDelta(t, 40, item.UnitPrice, 0.001)
				assert.Equal(t, "ana@example.com", item.CreatedBy)

				return nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		_, err := f.svc.CreatePublic(context.Background(), withServices)

		assert.NoError(t, err)
	})

	t.Run("guest lookup failure aborts", func(t *testing.T) {
		f := newFixture(t)

		f.expectBookableRoom(2, 150)

		f.guests.EXPECT().
			FindOrCreate(gomock.Any(), gomock.Any()).
			Return(guestModel.Guest{}, errors.New("database error"))

		_, err := f.svc.CreatePublic(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestBookingService_ChangeStatus(t *testing.T) {
	stored := model.Booking{
		ID:           "booking-1",
		RoomID:       "room-1",
		CheckInDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Status:       string(model.StatusConfirmed),
	}

	t.Run("cancel skips the availability check", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, string(model.StatusCancelled), fields[model.FieldStatus])

				return nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		err := f.svc.Cancel(testContext(), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("illegal transition without force", func(t *testing.T) {
		f := newFixture(t)

		pending := stored
		pending.Status = string(model.StatusPending)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)

		err := f.svc.ChangeStatus(testContext(), dto.ChangeStatusRequest{Status: string(model.StatusCheckedIn)}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "cannot transition")
	})

	t.Run("forced re-activation re-checks availability", func(t *testing.T) {
		f := newFixture(t)

		cancelled := stored
		cancelled.Status = string(model.StatusCancelled)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)
		f.repo.EXPECT().
			UpdateLocked(gomock.Any(), "booking-1", gomock.Any(), "room-1", cancelled.CheckInDate, cancelled.CheckOutDate).
			Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		err := f.svc.ChangeStatus(testContext(), dto.ChangeStatusRequest{Status: string(model.StatusConfirmed), Force: true}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("forced re-activation still honors the overlap invariant", func(t *testing.T) {
		f := newFixture(t)

		cancelled := stored
		cancelled.Status = string(model.StatusCancelled)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)
		f.repo.EXPECT().
			UpdateLocked(gomock.Any(), "booking-1", gomock.Any(), "room-1", gomock.Any(), gomock.Any()).
			Return(failure.ValidationOnBase(model.ErrMessageRoomAlreadyBooked))

		err := f.svc.ChangeStatus(testContext(), dto.ChangeStatusRequest{Status: string(model.StatusConfirmed), Force: true}, "booking-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), model.ErrMessageRoomAlreadyBooked)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		err := f.svc.ChangeStatus(testContext(), dto.ChangeStatusRequest{Status: string(model.StatusConfirmed)}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := f.svc.ChangeStatus(testContext(), dto.ChangeStatusRequest{Status: string(model.StatusConfirmed)}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	stored := model.Booking{
		ID:             "booking-1",
		RoomID:         "room-1",
		CheckInDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:   time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		NumberOfGuests: 2,
		TotalPrice:     300,
		Status:         string(model.StatusConfirmed),
	}

	t.Run("date change re-prices the stay", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.expectBookableRoom(2, 100)

		f.repo.EXPECT().
			UpdateLocked(gomock.Any(), "booking-1", gomock.Any(), "room-1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fields map[string]any, _ string, _, _ time.Time) error {
				assert.InDelta(t, 500, fields[model.FieldTotalPrice].(float64), 0.001)

				return nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		err := f.svc.Update(testContext(), dto.UpdateBookingRequest{CheckOutDate: "2025-06-06"}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("notes-only change keeps the stored price", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.expectBookableRoom(2, 100)

		f.repo.EXPECT().
			UpdateLocked(gomock.Any(), "booking-1", gomock.Any(), "room-1", stored.CheckInDate, stored.CheckOutDate).
			DoAndReturn(func(_ context.Context, _ string, fields map[string]any, _ string, _, _ time.Time) error {
				_, repriced := fields[model.FieldTotalPrice]
				assert.False(t, repriced)

				return nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		err := f.svc.Update(testContext(), dto.UpdateBookingRequest{Notes: "late arrival"}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("guest reassignment validates the new guest", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.guests.EXPECT().
			Get(gomock.Any(), "guest-2").
			Return(guestDto.GuestResponse{ID: "guest-2"}, nil)
		f.expectBookableRoom(2, 100)

		f.repo.EXPECT().
			UpdateLocked(gomock.Any(), "booking-1", gomock.Any(), "room-1", stored.CheckInDate, stored.CheckOutDate).
			DoAndReturn(func(_ context.Context, _ string, fields map[string]any, _ string, _, _ time.Time) error {
				assert.Equal(t, "guest-2", fields[model.FieldGuestID])

				return nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		err := f.svc.Update(testContext(), dto.UpdateBookingRequest{GuestID: "guest-2"}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("reassignment to an unknown guest rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.guests.EXPECT().
			Get(gomock.Any(), "guest-2").
			Return(guestDto.GuestResponse{}, failure.NotFound("guest not found"))

		err := f.svc.Update(testContext(), dto.UpdateBookingRequest{GuestID: "guest-2"}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "guest not found")
	})

	t.Run("terminal booking cannot be modified", func(t *testing.T) {
		f := newFixture(t)

		done := stored
		done.Status = string(model.StatusCheckedOut)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(done, nil)

		err := f.svc.Update(testContext(), dto.UpdateBookingRequest{Notes: "too late"}, "booking-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no longer be modified")
	})

	t.Run("reversed dates rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		err := f.svc.Update(testContext(), dto.UpdateBookingRequest{CheckOutDate: "2025-05-30"}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_GetCalendar(t *testing.T) {
	t.Run("month out of range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetCalendar(testContext(), "room-1", 2025, 13)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.GetCalendar(testContext(), "missing", 2025, 6)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("folds bookings into day statuses", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			GetForPeriod(gomock.Any(), "room-1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, periodStart, _ time.Time) ([]model.Booking, error) {
				return []model.Booking{
					{
						CheckInDate:  periodStart.AddDate(0, 0, 1),
						CheckOutDate: periodStart.AddDate(0, 0, 3),
						Status:       string(model.StatusConfirmed),
					},
				}, nil
			})

		res, err := f.svc.GetCalendar(testContext(), "room-1", 2025, 6)

		assert.NoError(t, err)
		assert.Equal(t, "room-1", res.RoomID)
		assert.Equal(t, string(model.StatusConfirmed), res.Days["2025-06-02"])
		assert.Equal(t, string(model.StatusConfirmed), res.Days["2025-06-03"])
		assert.Len(t, res.Days, 2)
	})
}

func TestBookingService_AttachService(t *testing.T) {
	stored := model.Booking{ID: "booking-1", Status: string(model.StatusConfirmed)}

	t.Run("snapshots the catalog price", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.serviceRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(servicesModel.Service{ID: "svc-1", Price: 25, Active: true}, nil)

		f.repo.EXPECT().
			InsertServiceItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item model.ServiceItem) error {
				assert.InDelta(t, 25, item.UnitPrice, 0.001)
				assert.Equal(t, "booking-1", item.BookingID)

				return nil
			})

		err := f.svc.AttachService(testContext(), dto.AttachServiceRequest{ServiceID: "svc-1", Quantity: 2}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("inactive service rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.serviceRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(servicesModel.Service{ID: "svc-1", Price: 25, Active: false}, nil)

		err := f.svc.AttachService(testContext(), dto.AttachServiceRequest{ServiceID: "svc-1", Quantity: 1}, "booking-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not active")
	})

	t.Run("terminal booking rejected", func(t *testing.T) {
		f := newFixture(t)

		done := stored
		done.Status = string(model.StatusCancelled)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(done, nil)

		err := f.svc.AttachService(testContext(), dto.AttachServiceRequest{ServiceID: "svc-1", Quantity: 1}, "booking-1")

		assert.Error(t, err)
	})
}

func TestBookingService_RemoveService(t *testing.T) {
	t.Run("item of another booking is not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			GetServiceItem(gomock.Any(), gomock.Any()).
			Return(model.ServiceItem{ID: "item-1", BookingID: "other-booking"}, nil)

		err := f.svc.RemoveService(testContext(), "booking-1", "item-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("successful removal", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			GetServiceItem(gomock.Any(), gomock.Any()).
			Return(model.ServiceItem{ID: "item-1", BookingID: "booking-1"}, nil)
		f.repo.EXPECT().DeleteServiceItem(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.RemoveService(testContext(), "booking-1", "item-1")

		assert.NoError(t, err)
	})
}
