package bootstrap

import (
	"pet-resort-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	RedisModule,
	BrokerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
