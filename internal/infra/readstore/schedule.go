package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/schedule"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra/db"
)

// ScheduleReadStore reads the provider-management tables the scheduler
// consumes but never writes: weekly working windows and ad-hoc time-off.
type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(db db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: db}
}

func (s *ScheduleReadStore) GetWorkingWindows(ctx context.Context, providerID uuid.UUID) ([]schedule.WorkingWindow, error) {
	const query = `
		SELECT weekday, start_time, end_time, active
		FROM provider_working_windows
		WHERE provider_id = $1
		ORDER BY weekday, start_time`

	rows, err := s.db.Query(ctx, query, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to list working windows", err)
	}
	defer rows.Close()

	var windows []schedule.WorkingWindow
	for rows.Next() {
		var (
			weekday          int
			startStr, endStr string
			active           bool
		)
		if err := rows.Scan(&weekday, &startStr, &endStr, &active); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan working window", err)
		}
		start, err := schedule.ParseWallTime(startStr)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "malformed working window start", err)
		}
		end, err := schedule.ParseWallTime(endStr)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "malformed working window end", err)
		}
		windows = append(windows, schedule.WorkingWindow{
			ProviderID: providerID,
			Weekday:    time.Weekday(weekday),
			Start:      start,
			End:        end,
			Active:     active,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to read working windows", err)
	}
	return windows, nil
}

func (s *ScheduleReadStore) GetTimeOff(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]schedule.TimeOff, error) {
	const query = `
		SELECT starts_at, ends_at, reason
		FROM provider_time_off
		WHERE provider_id = $1 AND starts_at < $3 AND ends_at > $2
		ORDER BY starts_at`

	rows, err := s.db.Query(ctx, query, providerID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to list time off", err)
	}
	defer rows.Close()

	var periods []schedule.TimeOff
	for rows.Next() {
		off := schedule.TimeOff{ProviderID: providerID}
		if err := rows.Scan(&off.StartsAt, &off.EndsAt, &off.Reason); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan time off", err)
		}
		periods = append(periods, off)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to read time off", err)
	}
	return periods, nil
}
