package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/pkg/errs"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/shared"
)

type SeriesQueries interface {
	GetByID(ctx context.Context, providerID, id uuid.UUID) (*SeriesView, error)
}

type seriesQueriesImpl struct {
	store SeriesReadStore
}

func NewSeriesQueries(store SeriesReadStore) SeriesQueries {
	return &seriesQueriesImpl{store: store}
}

func (q *seriesQueriesImpl) GetByID(ctx context.Context, providerID, id uuid.UUID) (*SeriesView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrSeriesNotFound
		}
		return nil, errs.Wrap(err, "failed to load series view")
	}
	if view.ProviderID != providerID {
		return nil, shared.ErrSeriesNotFound
	}
	return view, nil
}
