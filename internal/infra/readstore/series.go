package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra/db"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/queries"
)

type SeriesReadStore struct {
	db db.DBTX
}

func NewSeriesReadStore(db db.DBTX) *SeriesReadStore {
	return &SeriesReadStore{db: db}
}

func (s *SeriesReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.SeriesView, error) {
	const query = `
		SELECT id, provider_id, service_id,
		       customer_name, customer_email,
		       start_date, start_time, recurrence_interval, end_date,
		       status, next_occurrence, note, created_at
		FROM recurring_series
		WHERE id = $1`

	var view queries.SeriesView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.ProviderID, &view.ServiceID,
		&view.CustomerName, &view.CustomerEmail,
		&view.StartDate, &view.StartTime, &view.Interval, &view.EndDate,
		&view.Status, &view.NextOccurrence, &view.Note, &view.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to find series view", err)
	}
	return &view, nil
}

// ListDueIDs scans for active series due on or before the given day. The day
// boundary is civil, matching the date-typed next-occurrence column.
func (s *SeriesReadStore) ListDueIDs(ctx context.Context, dueBy time.Time, limit int) ([]uuid.UUID, error) {
	const query = `
		SELECT id FROM recurring_series
		WHERE status = 'active' AND next_occurrence IS NOT NULL AND next_occurrence <= $1::date
		ORDER BY next_occurrence
		LIMIT $2`

	rows, err := s.db.Query(ctx, query, dueBy.UTC().Format("2006-01-02"), limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to list due series", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan series id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to read series ids", err)
	}
	return ids, nil
}
