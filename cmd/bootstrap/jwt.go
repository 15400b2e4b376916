package bootstrap

import (
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/config"
	"pet-resort-api/internal/pkg/jwt"
	"pet-resort-api/internal/usecase"
	"pet-resort-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		func(s *jwt.Service) usecase.TokenVerifier { return s },
		func(s *jwt.Service) commands.TokenIssuer { return s },
	),
)

// NewJWTService reads the signing secret once; the service keeps it for the life of the process.
func NewJWTService(cfg config.Config, c clock.Clock) (*jwt.Service, error) {
	duration, err := cfg.JWT.ParseDuration()
	if err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.JWT.Secret, duration, c)
}
