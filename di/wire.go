//go:build wireinject
// +build wireinject

package di

import (
	"kiraya/config"
	"kiraya/infras/jwt"
	"kiraya/infras/otel"
	"kiraya/infras/postgres"
	"kiraya/infras/redis"
	"kiraya/infras/s3"
	"kiraya/permissions"
	"kiraya/shared/cache"
	"kiraya/transport/http"
	"kiraya/transport/http/middleware"
	"kiraya/transport/http/router"

	"github.com/google/wire"

	authService "kiraya/internal/domains/auth/service"
	bookingRepository "kiraya/internal/domains/booking/repository"
	bookingService "kiraya/internal/domains/booking/service"
	carRepository "kiraya/internal/domains/car/repository"
	carService "kiraya/internal/domains/car/service"
	cityRepository "kiraya/internal/domains/city/repository"
	cityService "kiraya/internal/domains/city/service"
	draftService "kiraya/internal/domains/draft/service"
	draftStore "kiraya/internal/domains/draft/store"
	userRepository "kiraya/internal/domains/user/repository"

	authHandler "kiraya/internal/handlers/auth"
	bookingHandler "kiraya/internal/handlers/booking"
	carHandler "kiraya/internal/handlers/car"
	cityHandler "kiraya/internal/handlers/city"
	draftHandler "kiraya/internal/handlers/draft"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var cityDomain = wire.NewSet(
	cityRepository.New,
	cityService.New,
)

var carDomain = wire.NewSet(
	carRepository.New,
	carService.New,
)

var draftDomain = wire.NewSet(
	draftStore.New,
	draftService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	cityDomain,
	carDomain,
	draftDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	cityHandler.New,
	carHandler.New,
	draftHandler.New,
	bookingHandler.New,
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
