package components

import (
	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/infra/readstore"
	"pet-resort-api/internal/infra/uow"
	"pet-resort-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

// Read stores query the pool directly; write-side repositories are created per transaction
// by the unit of work.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewResortReadStore,
			fx.As(new(queries.ResortReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewPetReadStore,
			fx.As(new(queries.PetReadStore)),
		),
		fx.Annotate(
			readstore.NewNoteReadStore,
			fx.As(new(queries.NoteReadStore)),
		),
		fx.Annotate(
			readstore.NewEmployeeReadStore,
			fx.As(new(queries.EmployeeReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
