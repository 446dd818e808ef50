package fx

import (
	"go.uber.org/fx"

	"Bolso/config"
	"Bolso/internal/domain/user"
	"Bolso/internal/middleware"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config, userSvc *user.Service) (*middleware.JwtService, error) {
	return middleware.NewJwtService(cfg.JWT, userSvc)
}
