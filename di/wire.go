//go:build wireinject
// +build wireinject

package di

import (
	"studio/config"
	"studio/infras/jwt"
	"studio/infras/kafka"
	"studio/infras/otel"
	"studio/infras/postgres"
	"studio/infras/redis"
	"studio/infras/s3"
	"studio/internal/events"
	"studio/permissions"
	"studio/shared/cache"
	"studio/transport/http"
	"studio/transport/http/middleware"
	"studio/transport/http/router"

	bookingRepository "studio/internal/domains/booking/repository"
	bookingService "studio/internal/domains/booking/service"
	bookingHandler "studio/internal/handlers/booking"

	classRepository "studio/internal/domains/class/repository"
	classService "studio/internal/domains/class/service"
	classHandler "studio/internal/handlers/class"

	classBookingRepository "studio/internal/domains/classbooking/repository"
	classBookingService "studio/internal/domains/classbooking/service"
	classBookingHandler "studio/internal/handlers/classbooking"

	roomRepository "studio/internal/domains/room/repository"
	roomService "studio/internal/domains/room/service"
	roomHandler "studio/internal/handlers/room"

	authService "studio/internal/domains/auth/service"
	userRepository "studio/internal/domains/user/repository"
	userService "studio/internal/domains/user/service"
	authHandler "studio/internal/handlers/auth"
	userHandler "studio/internal/handlers/user"

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
	events.NewPublisher,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var classDomain = wire.NewSet(
	classRepository.New,
	classService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var classBookingDomain = wire.NewSet(
	classBookingRepository.New,
	classBookingService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var domains = wire.NewSet(
	roomDomain,
	classDomain,
	bookingDomain,
	classBookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	classHandler.New,
	bookingHandler.New,
	classBookingHandler.New,
	authHandler.New,
	userHandler.New,
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
