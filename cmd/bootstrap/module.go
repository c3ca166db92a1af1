package bootstrap

import (
	"go.uber.org/fx"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
