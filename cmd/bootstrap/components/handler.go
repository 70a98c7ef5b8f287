package components

import (
	"restaurant-api/internal/handler"
	"restaurant-api/internal/handler/api"
	"restaurant-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewTableHandler,
		api.NewMenuHandler,
		api.NewOrderHandler,
		api.NewInventoryHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	table *api.TableHandler,
	menu *api.MenuHandler,
	order *api.OrderHandler,
	inventory *api.InventoryHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Reservation: reservation,
		Table:       table,
		Menu:        menu,
		Order:       order,
		Inventory:   inventory,
	}
}
