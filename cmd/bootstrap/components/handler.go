package components

import (
	"pet-resort-api/internal/handler"
	"pet-resort-api/internal/handler/api"
	"pet-resort-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewResortHandler,
		api.NewReservationHandler,
		api.NewPetHandler,
		api.NewNoteHandler,
		api.NewEmployeeHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
