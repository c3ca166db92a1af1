package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/booking"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra/db"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/shared"
)

const bookingColumns = `id, provider_id, staff_id, service_id,
	customer_name, customer_email, customer_phone,
	starts_at, ends_at, status, note, series_id,
	created_at, cancelled_at, cancellation_reason, cancellation_fee_cents`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, provider_id, staff_id, service_id,
			customer_name, customer_email, customer_phone,
			starts_at, ends_at, status, note, series_id,
			created_at, cancellation_fee_cents
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, query,
		b.ID(), b.ProviderID(), nullUUID(b.StaffID()), b.ServiceID(),
		b.Customer().Name(), b.Customer().Email(), b.Customer().Phone(),
		b.Slot().Start(), b.Slot().End(), b.Status().String(), b.Note().String(), nullUUID(b.SeriesID()),
		b.CreatedAt(), b.CancellationFeeCents(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	b, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, providerID uuid.UUID, staffID *uuid.UUID, start, end time.Time) (*shared.Overlap, error) {
	// The staff lane mirrors the exclusion constraint: no-staff bookings
	// share one lane keyed on the zero uuid.
	const query = `
		SELECT id, status FROM bookings
		WHERE provider_id = $1
		  AND COALESCE(staff_id, '00000000-0000-0000-0000-000000000000'::uuid)
		      = COALESCE($2, '00000000-0000-0000-0000-000000000000'::uuid)
		  AND status IN ('pending', 'confirmed', 'in_progress')
		  AND starts_at < $4 AND ends_at > $3
		ORDER BY starts_at
		LIMIT 1`

	var (
		id     uuid.UUID
		status string
	)
	err := r.db.QueryRow(ctx, query, providerID, nullUUID(staffID), start, end).Scan(&id, &status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to find overlapping booking", err)
	}
	return &shared.Overlap{BookingID: id, Status: booking.Status(status)}, nil
}

// Update persists the mutable lifecycle fields; slot and identity are fixed
// at creation.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET status = $2, cancelled_at = $3, cancellation_reason = $4, cancellation_fee_cents = $5
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		b.ID(), b.Status().String(), b.CancelledAt(), b.CancellationReason(), b.CancellationFeeCents(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, providerID, serviceID uuid.UUID
		staffID, seriesID         uuid.NullUUID
		name, email, phone        string
		startsAt, endsAt          time.Time
		status, note              string
		createdAt                 time.Time
		cancelledAt               *time.Time
		cancellationReason        *string
		feeCents                  int64
	)
	err := row.Scan(
		&id, &providerID, &staffID, &serviceID,
		&name, &email, &phone,
		&startsAt, &endsAt, &status, &note, &seriesID,
		&createdAt, &cancelledAt, &cancellationReason, &feeCents,
	)
	if err != nil {
		return nil, err
	}

	customer, err := booking.NewCustomer(name, email, phone)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlot(startsAt, endsAt)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(
		id, providerID, uuidPtr(staffID), serviceID,
		customer, slot, booking.Status(status), booking.NewNote(note), uuidPtr(seriesID),
		createdAt, cancelledAt, cancellationReason, feeCents,
	), nil
}

func nullUUID(p *uuid.UUID) uuid.NullUUID {
	if p == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *p, Valid: true}
}

func uuidPtr(n uuid.NullUUID) *uuid.UUID {
	if !n.Valid {
		return nil
	}
	u := n.UUID
	return &u
}
