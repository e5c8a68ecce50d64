package bootstrap

import (
	"perfume-order-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	HistoryModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
