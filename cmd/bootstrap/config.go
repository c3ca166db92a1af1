package bootstrap

import (
	"go.uber.org/fx"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
