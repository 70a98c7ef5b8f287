package commands

import (
	"context"

	"restaurant-api/internal/domain/inventory"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInventoryItemNotFound  = errs.New("inventory item not found")
	ErrDuplicateInventoryName = errs.New("inventory item name already in use")
)

type CreateInventoryItemInput struct {
	Name     string
	Quantity float64
	Unit     string
	MinLevel float64
}

type UpdateInventoryItemInput struct {
	Name     *string
	Quantity *float64
	Unit     *string
	MinLevel *float64
}

type InventoryCommands interface {
	Create(ctx context.Context, in CreateInventoryItemInput) (*queries.InventoryItemView, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInventoryItemInput) (*queries.InventoryItemView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type inventoryCommandsImpl struct {
	uow   shared.UnitOfWork
	views queries.InventoryQueries
	clock clock.Clock
}

func NewInventoryCommands(uow shared.UnitOfWork, views queries.InventoryQueries, clk clock.Clock) InventoryCommands {
	return &inventoryCommandsImpl{uow: uow, views: views, clock: clk}
}

func (uc *inventoryCommandsImpl) Create(ctx context.Context, in CreateInventoryItemInput) (*queries.InventoryItemView, error) {
	item, err := inventory.NewItem(in.Name, in.Quantity, in.Unit, in.MinLevel, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Inventory().Create(ctx, item); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateInventoryName)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.views.GetByID(ctx, item.ID())
}

func (uc *inventoryCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateInventoryItemInput) (*queries.InventoryItemView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Inventory().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrInventoryItemNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if in.Name != nil {
			if err := item.Rename(*in.Name); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if in.Quantity != nil {
			if err := item.AdjustQuantity(*in.Quantity, uc.clock.Now()); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if in.Unit != nil {
			if err := item.ChangeUnit(*in.Unit); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if in.MinLevel != nil {
			if err := item.ChangeMinLevel(*in.MinLevel); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}

		if err := tx.Inventory().Update(ctx, item); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateInventoryName)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.views.GetByID(ctx, id)
}

func (uc *inventoryCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Inventory().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrInventoryItemNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
