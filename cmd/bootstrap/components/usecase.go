package components

import (
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/usecase"
	"pet-resort-api/internal/usecase/commands"
	"pet-resort-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseAuthModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewResortCommands,
		commands.NewReservationCommands,
		commands.NewPetCommands,
		commands.NewNoteCommands,
		commands.NewEmployeeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewResortQueries,
		queries.NewReservationQueries,
		queries.NewPetQueries,
		queries.NewAvailabilityQueries,
		queries.NewNoteQueries,
		queries.NewEmployeeQueries,
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		usecase.NewAuthorizer,
	),
)
