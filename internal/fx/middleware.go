package fx

import (
	"FinMate/config"
	"FinMate/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config) *middleware.JwtService {
	return middleware.NewJwtService(cfg)
}
