//go:build wireinject
// +build wireinject

package di

import (
	"stay/config"
	"stay/infras/jwt"
	"stay/infras/kafka"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/infras/redis"
	"stay/infras/s3"
	"stay/internal/events"
	"stay/permissions"
	"stay/shared/cache"
	"stay/transport/http"
	"stay/transport/http/middleware"
	"stay/transport/http/router"

	bookingRepository "stay/internal/domains/booking/repository"
	bookingService "stay/internal/domains/booking/service"
	galleryRepository "stay/internal/domains/gallery/repository"
	galleryService "stay/internal/domains/gallery/service"
	guestRepository "stay/internal/domains/guest/repository"
	guestService "stay/internal/domains/guest/service"
	paymentRepository "stay/internal/domains/payment/repository"
	paymentService "stay/internal/domains/payment/service"
	roomRepository "stay/internal/domains/room/repository"
	roomService "stay/internal/domains/room/service"
	roomtypeRepository "stay/internal/domains/roomtype/repository"
	roomtypeService "stay/internal/domains/roomtype/service"
	servicesRepository "stay/internal/domains/services/repository"
	servicesService "stay/internal/domains/services/service"

	bookingHandler "stay/internal/handlers/booking"
	galleryHandler "stay/internal/handlers/gallery"
	guestHandler "stay/internal/handlers/guest"
	healthHandler "stay/internal/handlers/health"
	paymentHandler "stay/internal/handlers/payment"
	roomHandler "stay/internal/handlers/room"
	roomtypeHandler "stay/internal/handlers/roomtype"
	servicesHandler "stay/internal/handlers/services"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewBookingPublisher,
)

var roomTypeDomain = wire.NewSet(
	roomtypeRepository.New,
	roomtypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var servicesDomain = wire.NewSet(
	servicesRepository.New,
	servicesService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var domains = wire.NewSet(
	roomTypeDomain,
	roomDomain,
	guestDomain,
	servicesDomain,
	bookingDomain,
	paymentDomain,
	galleryDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomtypeHandler.New,
	roomHandler.New,
	guestHandler.New,
	servicesHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	galleryHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
