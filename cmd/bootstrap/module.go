package bootstrap

import (
	"estate-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	components.StoreModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
