package router

import (
	"blog-gateway/internal/application"
	"blog-gateway/internal/container"
	pginfra "blog-gateway/internal/infrastructure/postgres"
	handlers "blog-gateway/internal/interface/http"
	"blog-gateway/internal/router/modules"
	"blog-gateway/pkg/helpers"
)

// InitGatewayModules wires the front tier from container singletons and
// registers it with the router registry. Called once during startup.
func InitGatewayModules(r *Registry) {
	cfg := container.GetConfig()

	repo := pginfra.NewUserRepository(container.GetPGPool())
	auth := application.NewAuthService(repo, container.GetLogger())
	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure, cfg.SessionTTL)

	handler := handlers.NewWebHandler(
		auth,
		container.GetSessions(),
		container.GetBackend(),
		container.GetLogger(),
		cookies,
		cfg.EnforceDeleteOwnership,
	)

	r.Add(modules.NewWebModule(handler, container.GetSessions(), container.GetRedis(), container.GetLogger()))
}

// InitPostStoreModules wires the data tier.
func InitPostStoreModules(r *Registry) {
	repo := pginfra.NewPostRepository(container.GetPGPool())
	handler := handlers.NewPostStoreHandler(repo, container.GetLogger())
	r.Add(modules.NewPostStoreModule(handler))
}
