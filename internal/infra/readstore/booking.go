package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/schedule"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra/db"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/queries"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (s *BookingReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT id, provider_id, staff_id, service_id,
		       customer_name, customer_email, customer_phone,
		       starts_at, ends_at, status, note, series_id,
		       cancelled_at, cancellation_reason, cancellation_fee_cents, created_at
		FROM bookings
		WHERE id = $1`

	var (
		view              queries.BookingView
		staffID, seriesID uuid.NullUUID
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.ProviderID, &staffID, &view.ServiceID,
		&view.CustomerName, &view.CustomerEmail, &view.CustomerPhone,
		&view.StartsAt, &view.EndsAt, &view.Status, &view.Note, &seriesID,
		&view.CancelledAt, &view.CancellationReason, &view.CancellationFeeCents, &view.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to find booking view", err)
	}
	if staffID.Valid {
		view.StaffID = &staffID.UUID
	}
	if seriesID.Valid {
		view.SeriesID = &seriesID.UUID
	}
	return &view, nil
}

func (s *BookingReadStore) ListByProvider(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT id, staff_id, service_id, starts_at, ends_at, status
		FROM bookings
		WHERE provider_id = $1 AND starts_at >= $2 AND starts_at < $3
		ORDER BY starts_at`

	rows, err := s.db.Query(ctx, query, providerID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item    queries.BookingListItem
			staffID uuid.NullUUID
		)
		if err := rows.Scan(&item.ID, &staffID, &item.ServiceID, &item.StartsAt, &item.EndsAt, &item.Status); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking row", err)
		}
		if staffID.Valid {
			item.StaffID = &staffID.UUID
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to read booking rows", err)
	}
	return items, nil
}

func (s *BookingReadStore) ListBusyIntervals(ctx context.Context, providerID uuid.UUID, staffID *uuid.UUID, from, to time.Time) ([]schedule.Interval, error) {
	const query = `
		SELECT starts_at, ends_at
		FROM bookings
		WHERE provider_id = $1
		  AND COALESCE(staff_id, '00000000-0000-0000-0000-000000000000'::uuid)
		      = COALESCE($2, '00000000-0000-0000-0000-000000000000'::uuid)
		  AND status IN ('pending', 'confirmed', 'in_progress')
		  AND starts_at < $4 AND ends_at > $3
		ORDER BY starts_at`

	var lane uuid.NullUUID
	if staffID != nil {
		lane = uuid.NullUUID{UUID: *staffID, Valid: true}
	}
	rows, err := s.db.Query(ctx, query, providerID, lane, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to list busy intervals", err)
	}
	defer rows.Close()

	var busy []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan busy interval", err)
		}
		busy = append(busy, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to read busy intervals", err)
	}
	return busy, nil
}
