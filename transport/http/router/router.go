package router

import (
	"stay/internal/handlers/booking"
	"stay/internal/handlers/gallery"
	"stay/internal/handlers/guest"
	"stay/internal/handlers/health"
	"stay/internal/handlers/payment"
	"stay/internal/handlers/room"
	"stay/internal/handlers/roomtype"
	"stay/internal/handlers/services"
	"stay/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	RoomType roomtype.Handler
	Room     room.Handler
	Guest    guest.Handler
	Service  services.Handler
	Booking  booking.Handler
	Payment  payment.Handler
	Gallery  gallery.Handler
	Health   health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.Tracing)
	router.Use(r.App.CORS)
	router.Use(r.App.RateLimit())

	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		// Widget surface, no authentication.
		routerGroup.Route("/public", func(public chi.Router) {
			r.DomainHandlers.Booking.RouterPublic(public)
			r.DomainHandlers.Room.RouterPublic(public)
		})

		routerGroup.Group(func(staff chi.Router) {
			staff.Use(r.Auth.APIKey)
			staff.Use(r.Auth.Auth)
			staff.Use(r.Auth.RBAC)

			r.DomainHandlers.RoomType.Router(staff)
			r.DomainHandlers.Room.Router(staff)
			r.DomainHandlers.Guest.Router(staff)
			r.DomainHandlers.Service.Router(staff)
			r.DomainHandlers.Booking.Router(staff)
			r.DomainHandlers.Payment.Router(staff)
			r.DomainHandlers.Gallery.Router(staff)
		})
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
	}
}
