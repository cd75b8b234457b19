//go:build wireinject
// +build wireinject

package di

import (
	"venuely/config"
	"venuely/infras/jwt"
	"venuely/infras/kafka"
	"venuely/infras/otel"
	"venuely/infras/postgres"
	"venuely/infras/recommendation"
	"venuely/infras/redis"
	"venuely/infras/s3"
	"venuely/internal/realtime"
	"venuely/internal/session"
	"venuely/permissions"
	"venuely/shared/cache"
	"venuely/transport/http"
	"venuely/transport/http/middleware"
	"venuely/transport/http/router"

	accountRepository "venuely/internal/domains/account/repository"
	authService "venuely/internal/domains/auth/service"
	chatRepository "venuely/internal/domains/chat/repository"
	chatService "venuely/internal/domains/chat/service"
	dashboardService "venuely/internal/domains/dashboard/service"
	eventRepository "venuely/internal/domains/event/repository"
	eventService "venuely/internal/domains/event/service"
	favoriteRepository "venuely/internal/domains/favorite/repository"
	favoriteService "venuely/internal/domains/favorite/service"
	hallRepository "venuely/internal/domains/hall/repository"
	hallService "venuely/internal/domains/hall/service"
	hotelRepository "venuely/internal/domains/hotel/repository"
	hotelService "venuely/internal/domains/hotel/service"
	inviteRepository "venuely/internal/domains/invite/repository"
	inviteService "venuely/internal/domains/invite/service"
	menuRepository "venuely/internal/domains/menu/repository"
	menuService "venuely/internal/domains/menu/service"
	profileRepository "venuely/internal/domains/profile/repository"
	profileService "venuely/internal/domains/profile/service"
	reviewRepository "venuely/internal/domains/review/repository"
	reviewService "venuely/internal/domains/review/service"
	roleRepository "venuely/internal/domains/role/repository"
	roleService "venuely/internal/domains/role/service"

	authHandler "venuely/internal/handlers/auth"
	chatHandler "venuely/internal/handlers/chat"
	dashboardHandler "venuely/internal/handlers/dashboard"
	eventHandler "venuely/internal/handlers/event"
	favoriteHandler "venuely/internal/handlers/favorite"
	hallHandler "venuely/internal/handlers/hall"
	hotelHandler "venuely/internal/handlers/hotel"
	inviteHandler "venuely/internal/handlers/invite"
	menuHandler "venuely/internal/handlers/menu"
	profileHandler "venuely/internal/handlers/profile"
	realtimeHandler "venuely/internal/handlers/realtime"
	recommendationHandler "venuely/internal/handlers/recommendation"
	reviewHandler "venuely/internal/handlers/review"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	recommendation.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var realtimeSet = wire.NewSet(
	realtime.NewHub,
	realtime.NewPublisher,
	realtime.NewConsumer,
)

var sessionSet = wire.NewSet(
	session.NewRoleResolver,
	wire.Bind(new(session.RoleSource), new(roleService.Role)),
)

var authDomain = wire.NewSet(
	accountRepository.New,
	profileRepository.New,
	roleRepository.New,
	authService.New,
	roleService.New,
	profileService.New,
)

var venueDomain = wire.NewSet(
	eventRepository.New,
	hotelRepository.New,
	hallRepository.New,
	menuRepository.New,
	reviewRepository.New,
	eventService.New,
	hotelService.New,
	hallService.New,
	menuService.New,
	reviewService.New,
)

var engagementDomain = wire.NewSet(
	inviteRepository.New,
	chatRepository.New,
	chatRepository.NewMessage,
	favoriteRepository.New,
	inviteService.New,
	chatService.New,
	favoriteService.New,
	dashboardService.New,
)

var domains = wire.NewSet(
	authDomain,
	venueDomain,
	engagementDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	profileHandler.New,
	eventHandler.New,
	hotelHandler.New,
	hallHandler.New,
	menuHandler.New,
	inviteHandler.New,
	chatHandler.New,
	favoriteHandler.New,
	reviewHandler.New,
	dashboardHandler.New,
	recommendationHandler.New,
	realtimeHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		realtimeSet,
		sessionSet,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
