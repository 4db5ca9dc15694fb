//go:build wireinject
// +build wireinject

package di

import (
	"roomapi/config"
	"roomapi/infras/database"
	"roomapi/infras/jwt"
	"roomapi/infras/kafka"
	"roomapi/infras/otel"
	"roomapi/infras/redis"
	"roomapi/shared/cache"
	"roomapi/transport/http"
	"roomapi/transport/http/middleware"
	"roomapi/transport/http/router"

	roomRepository "roomapi/internal/domains/room/repository"
	roomService "roomapi/internal/domains/room/service"
	roomHandler "roomapi/internal/handlers/room"
	userHandler "roomapi/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	redis.New,
	kafka.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var domains = wire.NewSet(
	roomDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
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
