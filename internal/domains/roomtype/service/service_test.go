package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stay/config"
	"stay/infras/otel/mocks"
	roomMocks "stay/internal/domains/room/mocks"
	roomtypeMocks "stay/internal/domains/roomtype/mocks"
	"stay/internal/domains/roomtype/model"
	"stay/internal/domains/roomtype/model/dto"
	"stay/internal/domains/roomtype/service"
	cacheMocks "stay/shared/cache/mocks"
	"stay/shared/constant"
	"stay/shared/failure"
)

func newRoomTypeService(t *testing.T) (*roomtypeMocks.MockRoomType, *roomMocks.MockRoom, service.RoomType) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := roomtypeMocks.NewMockRoomType(ctrl)
	roomRepo := roomMocks.NewMockRoom(ctrl)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return repo, roomRepo, service.New(repo, roomRepo, cfg, mockCache, mocks.NewOtel())
}

func roomTypeContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestRoomTypeService_Create(t *testing.T) {
	req := dto.CreateRoomTypeRequest{
		Name:      "Deluxe",
		BasePrice: 120,
		Capacity:  2,
		Amenities: []string{"wifi", "minibar"},
	}

	t.Run("successful creation", func(t *testing.T) {
		repo, _, svc := newRoomTypeService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, roomType model.RoomType) error {
				assert.Equal(t, "Deluxe", roomType.Name)
				assert.NotEmpty(t, roomType.ID)
				assert.Equal(t, "test-user-id", roomType.CreatedBy)
				assert.Equal(t, []string{"wifi", "minibar"}, []string(roomType.Amenities))

				return nil
			})

		err := svc.Create(roomTypeContext(), req)

		assert.NoError(t, err)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		repo, _, svc := newRoomTypeService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Create(roomTypeContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "already in use")
	})
}

func TestRoomTypeService_Delete(t *testing.T) {
	t.Run("room type referenced by rooms is kept", func(t *testing.T) {
		repo, roomRepo, svc := newRoomTypeService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Delete(roomTypeContext(), "rt-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Contains(t, err.Error(), "referenced by rooms")
	})

	t.Run("unknown room type", func(t *testing.T) {
		repo, _, svc := newRoomTypeService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(roomTypeContext(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("unreferenced room type is deleted", func(t *testing.T) {
		repo, roomRepo, svc := newRoomTypeService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(roomTypeContext(), "rt-1")

		assert.NoError(t, err)
	})
}
