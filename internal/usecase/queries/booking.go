package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/pkg/errs"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/shared"
)

type BookingQueries interface {
	// GetByID returns the booking view, scoped to the requesting provider.
	// A booking owned by another provider is NotFound, not Forbidden.
	GetByID(ctx context.Context, providerID, id uuid.UUID) (*BookingView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, providerID, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to load booking view")
	}
	if view.ProviderID != providerID {
		return nil, shared.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID, from, to time.Time) ([]*BookingListItem, error) {
	if !from.Before(to) {
		return nil, shared.ErrValidation
	}
	return q.store.ListByProvider(ctx, providerID, from, to)
}
