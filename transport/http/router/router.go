package router

import (
	"roomapi/config"
	"roomapi/internal/handlers/room"
	"roomapi/internal/handlers/user"
	"roomapi/transport/http/middleware"
	"strings"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room room.Handler
	User user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
	Config         *config.Config
}

// SetupRoutes mounts every domain under the configured base path.
func (r *Router) SetupRoutes(router chi.Router) {
	routes := func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.Auth.Auth)
			r.DomainHandlers.User.Router(protected)
		})
	}

	basePath := "/" + strings.Trim(r.Config.App.BasePath, "/")
	if basePath == "/" {
		routes(router)

		return
	}

	router.Route(basePath, routes)
}

func New(domainHandlers DomainHandlers, auth middleware.Auth, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
		Config:         cfg,
	}
}
