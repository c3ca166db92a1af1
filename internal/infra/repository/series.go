package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/booking"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/schedule"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/series"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra/db"
)

const seriesColumns = `id, provider_id, service_id,
	customer_name, customer_email, customer_phone,
	start_date, start_time, recurrence_interval, end_date,
	status, next_occurrence, note, created_at`

type SeriesRepository struct {
	db db.DBTX
}

func NewSeriesRepository(db db.DBTX) *SeriesRepository {
	return &SeriesRepository{db: db}
}

func (r *SeriesRepository) Insert(ctx context.Context, s *series.Series) error {
	const query = `
		INSERT INTO recurring_series (
			id, provider_id, service_id,
			customer_name, customer_email, customer_phone,
			start_date, start_time, recurrence_interval, end_date,
			status, next_occurrence, note, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, query,
		s.ID(), s.ProviderID(), s.ServiceID(),
		s.Customer().Name(), s.Customer().Email(), s.Customer().Phone(),
		s.StartDate(), s.StartTime().String(), s.IntervalKind().String(), s.EndDate(),
		s.Status().String(), s.NextOccurrence(), s.Note().String(), s.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to insert series", err)
	}
	return nil
}

func (r *SeriesRepository) FindByID(ctx context.Context, id uuid.UUID) (*series.Series, error) {
	row := r.db.QueryRow(ctx, `SELECT `+seriesColumns+` FROM recurring_series WHERE id = $1`, id)

	s, err := scanSeries(row)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to find series", err)
	}
	return s, nil
}

func (r *SeriesRepository) Update(ctx context.Context, s *series.Series) error {
	const query = `
		UPDATE recurring_series
		SET status = $2, next_occurrence = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, s.ID(), s.Status().String(), s.NextOccurrence())
	if err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to update series", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "series not found", nil)
	}
	return nil
}

// AdvanceFrom writes the advanced pointer guarded on the previous value; the
// guarded update is the materializer's claim. Zero rows means another worker
// already claimed the occurrence.
func (r *SeriesRepository) AdvanceFrom(ctx context.Context, s *series.Series, prevNextOccurrence time.Time) (bool, error) {
	const query = `
		UPDATE recurring_series
		SET status = $2, next_occurrence = $3
		WHERE id = $1 AND status = 'active' AND next_occurrence = $4`

	tag, err := r.db.Exec(ctx, query, s.ID(), s.Status().String(), s.NextOccurrence(), prevNextOccurrence)
	if err != nil {
		return false, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to advance series", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanSeries(row pgx.Row) (*series.Series, error) {
	var (
		id, providerID, serviceID uuid.UUID
		name, email, phone        string
		startDate                 time.Time
		startTime, interval       string
		endDate, nextOccurrence   *time.Time
		status, note              string
		createdAt                 time.Time
	)
	err := row.Scan(
		&id, &providerID, &serviceID,
		&name, &email, &phone,
		&startDate, &startTime, &interval, &endDate,
		&status, &nextOccurrence, &note, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	customer, err := booking.NewCustomer(name, email, phone)
	if err != nil {
		return nil, err
	}
	wallTime, err := schedule.ParseWallTime(startTime)
	if err != nil {
		return nil, err
	}

	return series.ReconstructSeries(
		id, providerID, serviceID, customer,
		startDate, wallTime, series.Interval(interval), endDate,
		series.Status(status), nextOccurrence, booking.NewNote(note), createdAt,
	), nil
}
