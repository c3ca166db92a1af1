package worker

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/pkg/config"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/pkg/errs"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/commands"
)

// Materializer periodically turns due series occurrences into pending
// bookings. Multiple instances can run at once; the per-series claim keeps
// sweeps from double-booking.
type Materializer struct {
	series commands.SeriesCommands
	cfg    config.WorkerConfig
	logger *slog.Logger
	cron   *cron.Cron
}

func NewMaterializer(series commands.SeriesCommands, cfg config.WorkerConfig, logger *slog.Logger) *Materializer {
	return &Materializer{
		series: series,
		cfg:    cfg,
		logger: logger,
		cron:   cron.New(),
	}
}

func (m *Materializer) Start() error {
	_, err := m.cron.AddFunc(m.cfg.MaterializerSchedule, m.runSweep)
	if err != nil {
		return errs.Wrap(err, "invalid materializer schedule")
	}
	m.cron.Start()
	m.logger.Info("series materializer started", "schedule", m.cfg.MaterializerSchedule)
	return nil
}

// Stop halts scheduling and waits for an in-flight sweep to finish.
func (m *Materializer) Stop(ctx context.Context) error {
	stopped := m.cron.Stop()
	select {
	case <-stopped.Done():
		m.logger.Info("series materializer stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Materializer) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), m.cfg.MaterializerTimeout)
	defer cancel()

	report, err := m.series.MaterializeDue(ctx, m.cfg.MaterializerBatch)
	if err != nil {
		m.logger.Error("materializer sweep failed", "error", err.Error())
		return
	}
	if report.Processed == 0 {
		return
	}
	m.logger.Info("materializer sweep completed",
		"processed", report.Processed,
		"materialized", report.Materialized,
		"skipped", report.Skipped,
		"failed", report.Failed)
}
