package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra/db"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra/readstore"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/infra/uow"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/commands"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/queries"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/shared"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Booking read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Series read side doubles as the materializer's due scanner
		fx.Annotate(
			readstore.NewSeriesReadStore,
			fx.As(new(queries.SeriesReadStore)),
			fx.As(new(commands.DueSeriesLister)),
		),
		// Provider-management collaborators, read-only
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(shared.ScheduleDirectory)),
		),
		fx.Annotate(
			readstore.NewServiceCatalogStore,
			fx.As(new(shared.ServiceCatalog)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
