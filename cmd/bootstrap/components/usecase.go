package components

import (
	"go.uber.org/fx"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/policy"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/pkg/clock"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/pkg/config"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/commands"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPolicyRules,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewSeriesCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewSeriesQueries,
		queries.NewAvailabilityQueries,
	),
)

func NewPolicyRules(cfg config.Config) policy.Rules {
	return policy.Rules{
		WindowHours:          cfg.Policy.CancellationWindowHours,
		FeePercent:           cfg.Policy.CancellationFeePercent,
		DisallowInsideWindow: cfg.Policy.DisallowInsideWindow,
	}
}
