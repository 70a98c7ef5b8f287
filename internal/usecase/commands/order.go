package commands

import (
	"context"

	"restaurant-api/internal/domain/order"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound       = errs.New("order not found")
	ErrMenuItemUnavailable = errs.New("menu item unavailable or unknown")
)

type OrderItemInput struct {
	MenuItemID uuid.UUID
	Quantity   int
}

type CreateOrderInput struct {
	Items            []OrderItemInput
	PaymentMethod    string
	DeliveryAddress  *order.Address
	DeliveryFeeCents int64
}

type UpdateOrderInput struct {
	Status      *string
	IsPaid      *bool
	IsDelivered *bool
}

type OrderCommands interface {
	Create(ctx context.Context, actor Actor, in CreateOrderInput) (*queries.OrderView, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateOrderInput) (*queries.OrderView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	views queries.OrderQueries
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, views queries.OrderQueries, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{uow: uow, views: views, clock: clk}
}

// Create prices each line from the stored menu record, never from client
// input.
func (uc *orderCommandsImpl) Create(ctx context.Context, actor Actor, in CreateOrderInput) (*queries.OrderView, error) {
	method, err := order.NewPaymentMethod(in.PaymentMethod)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if len(in.Items) == 0 {
		return nil, errs.Mark(order.ErrNoItems, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids := make([]uuid.UUID, len(in.Items))
		for i, item := range in.Items {
			ids[i] = item.MenuItemID
		}

		menuItems, err := tx.MenuItems().FindAvailableByIDs(ctx, ids)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		byID := make(map[uuid.UUID]int64, len(menuItems))
		names := make(map[uuid.UUID]string, len(menuItems))
		images := make(map[uuid.UUID]string, len(menuItems))
		for _, m := range menuItems {
			byID[m.ID()] = m.PriceCents()
			names[m.ID()] = m.Name()
			images[m.ID()] = m.ImageURL()
		}

		lines := make([]order.Line, len(in.Items))
		for i, item := range in.Items {
			price, ok := byID[item.MenuItemID]
			if !ok {
				return ErrMenuItemUnavailable
			}
			lines[i] = order.Line{
				MenuItemID: item.MenuItemID,
				Name:       names[item.MenuItemID],
				Quantity:   item.Quantity,
				PriceCents: price,
				ImageURL:   images[item.MenuItemID],
			}
		}

		o, err := order.NewOrder(actor.ID, lines, method, in.DeliveryAddress, in.DeliveryFeeCents)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		createdID, err = tx.Orders().Create(ctx, o)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.views.GetByID(ctx, actor.ID, true, createdID)
}

func (uc *orderCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateOrderInput) (*queries.OrderView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOrderNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if in.Status != nil {
			status, err := order.NewStatus(*in.Status)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			if err := o.ChangeStatus(status); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			// A delivered status implies the delivered flag unless the caller
			// set it explicitly.
			if status == order.StatusDelivered && in.IsDelivered == nil {
				o.MarkDelivered(true, uc.clock.Now())
			}
		}
		if in.IsPaid != nil {
			o.MarkPaid(*in.IsPaid, uc.clock.Now())
		}
		if in.IsDelivered != nil {
			o.MarkDelivered(*in.IsDelivered, uc.clock.Now())
		}

		if err := tx.Orders().Update(ctx, o); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.views.GetByID(ctx, uuid.Nil, true, id)
}

func (uc *orderCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Orders().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOrderNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
