package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stay/config"
	"stay/infras/otel/mocks"
	bookingMocks "stay/internal/domains/booking/mocks"
	servicesMocks "stay/internal/domains/services/mocks"
	"stay/internal/domains/services/model"
	"stay/internal/domains/services/model/dto"
	"stay/internal/domains/services/service"
	cacheMocks "stay/shared/cache/mocks"
	"stay/shared/constant"
	"stay/shared/failure"
)

func newServiceService(t *testing.T) (*servicesMocks.MockService, *bookingMocks.MockBooking, service.Service) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := servicesMocks.NewMockService(ctrl)
	bookingRepo := bookingMocks.NewMockBooking(ctrl)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return repo, bookingRepo, service.New(repo, bookingRepo, cfg, mockCache, mocks.NewOtel())
}

func serviceContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestServiceService_Create(t *testing.T) {
	req := dto.CreateServiceRequest{
		Name:  "Breakfast",
		Price: 15,
	}

	t.Run("successful creation", func(t *testing.T) {
		repo, _, svc := newServiceService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, catalogService model.Service) error {
				assert.Equal(t, "Breakfast", catalogService.Name)
				assert.True(t, catalogService.Active)

				return nil
			})

		err := svc.Create(serviceContext(), req)

		assert.NoError(t, err)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		repo, _, svc := newServiceService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Create(serviceContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "already in use")
	})
}

func TestServiceService_Delete(t *testing.T) {
	t.Run("service referenced by bookings is kept", func(t *testing.T) {
		repo, bookingRepo, svc := newServiceService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		bookingRepo.EXPECT().ExistServiceItems(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Delete(serviceContext(), "svc-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unreferenced service is deleted", func(t *testing.T) {
		repo, bookingRepo, svc := newServiceService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		bookingRepo.EXPECT().ExistServiceItems(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(serviceContext(), "svc-1")

		assert.NoError(t, err)
	})
}
