package components

import (
	"restaurant-api/internal/domain/reservation"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/config"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
	func(cfg config.Config) reservation.ActivePolicy {
		return reservation.ActivePolicy{CompletedBlocks: cfg.Reservation.CompletedBlocks}
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewTableQueries,
		queries.NewMenuQueries,
		queries.NewOrderQueries,
		queries.NewInventoryQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewTableCommands,
		commands.NewMenuCommands,
		commands.NewOrderCommands,
		commands.NewInventoryCommands,
	),
)
