package components

import (
	"sabzi/internal/infra/listen"
	"sabzi/internal/infra/readstore"
	sqlc "sabzi/internal/infra/sqlc/generated"
	"sabzi/internal/infra/uow"
	"sabzi/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		uow.NewPostgresUoW,
		listen.NewHub,
		// Deal
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DealViewQueries)),
		),
		fx.Annotate(
			readstore.NewDealReadStore,
			fx.As(new(queries.DealReadStore)),
		),
		// Offer
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OfferViewQueries)),
		),
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserViewQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(queries.EmailReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
