package router

import (
	"kiraya/internal/handlers/auth"
	"kiraya/internal/handlers/booking"
	"kiraya/internal/handlers/car"
	"kiraya/internal/handlers/city"
	"kiraya/internal/handlers/draft"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	City    city.Handler
	Car     car.Handler
	Draft   draft.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.City.Router(routerGroup)
		r.DomainHandlers.Car.Router(routerGroup)
		r.DomainHandlers.Draft.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
