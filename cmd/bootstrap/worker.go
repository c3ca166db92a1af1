package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/pkg/config"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/commands"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/worker"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewMaterializer,
	),
	fx.Invoke(
		startMaterializer,
	),
)

func NewMaterializer(series commands.SeriesCommands, cfg config.Config, logger *slog.Logger) *worker.Materializer {
	return worker.NewMaterializer(series, cfg.Worker, logger)
}

func startMaterializer(lc fx.Lifecycle, m *worker.Materializer) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return m.Start()
		},
		OnStop: func(ctx context.Context) error {
			return m.Stop(ctx)
		},
	})
}
