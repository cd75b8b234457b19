package router

import (
	"venuely/internal/handlers/auth"
	"venuely/internal/handlers/chat"
	"venuely/internal/handlers/dashboard"
	"venuely/internal/handlers/event"
	"venuely/internal/handlers/favorite"
	"venuely/internal/handlers/hall"
	"venuely/internal/handlers/hotel"
	"venuely/internal/handlers/invite"
	"venuely/internal/handlers/menu"
	"venuely/internal/handlers/profile"
	"venuely/internal/handlers/realtime"
	"venuely/internal/handlers/recommendation"
	"venuely/internal/handlers/review"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth           auth.Handler
	Profile        profile.Handler
	Event          event.Handler
	Hotel          hotel.Handler
	Hall           hall.Handler
	Menu           menu.Handler
	Invite         invite.Handler
	Chat           chat.Handler
	Favorite       favorite.Handler
	Review         review.Handler
	Dashboard      dashboard.Handler
	Recommendation recommendation.Handler
	Realtime       realtime.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Profile.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Hall.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Invite.Router(routerGroup)
		r.DomainHandlers.Chat.Router(routerGroup)
		r.DomainHandlers.Favorite.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Recommendation.Router(routerGroup)
		r.DomainHandlers.Realtime.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
