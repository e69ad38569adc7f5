package router

import (
	"studio/internal/handlers/auth"
	"studio/internal/handlers/booking"
	"studio/internal/handlers/class"
	"studio/internal/handlers/classbooking"
	"studio/internal/handlers/room"
	"studio/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Room         room.Handler
	Class        class.Handler
	Booking      booking.Handler
	ClassBooking classbooking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Class.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.ClassBooking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
