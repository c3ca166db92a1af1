package readstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/domain/booking"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra/db"
)

// ServiceCatalogStore reads the service catalog owned by the provider
// management side. Duration and price are copied into bookings at creation
// time, so later catalog edits never resize existing bookings.
type ServiceCatalogStore struct {
	db db.DBTX
}

func NewServiceCatalogStore(db db.DBTX) *ServiceCatalogStore {
	return &ServiceCatalogStore{db: db}
}

func (s *ServiceCatalogStore) GetService(ctx context.Context, id uuid.UUID) (booking.ServiceSpec, error) {
	const query = `SELECT id, duration_minutes, price_cents, is_active FROM services WHERE id = $1`

	var spec booking.ServiceSpec
	err := s.db.QueryRow(ctx, query, id).Scan(&spec.ID, &spec.DurationMinutes, &spec.PriceCents, &spec.IsActive)
	if err != nil {
		return booking.ServiceSpec{}, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to find service", err)
	}
	return spec, nil
}
