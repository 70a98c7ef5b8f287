package commands

import (
	"context"

	"restaurant-api/internal/domain/menu"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/pkg/patch"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMenuItemNotFound  = errs.New("menu item not found")
	ErrDuplicateMenuName = errs.New("menu item name already in use")
)

type CreateMenuItemInput struct {
	Name            string
	Description     string
	PriceCents      int64
	Category        string
	IsAvailable     *bool
	ImageURL        string
	PreparationTime int
}

type UpdateMenuItemInput struct {
	Name            *string
	Description     *string
	PriceCents      *int64
	Category        *string
	IsAvailable     *bool
	ImageURL        *string
	PreparationTime *int
}

type MenuCommands interface {
	Create(ctx context.Context, in CreateMenuItemInput) (*queries.MenuItemView, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateMenuItemInput) (*queries.MenuItemView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type menuCommandsImpl struct {
	uow   shared.UnitOfWork
	views queries.MenuQueries
}

func NewMenuCommands(uow shared.UnitOfWork, views queries.MenuQueries) MenuCommands {
	return &menuCommandsImpl{uow: uow, views: views}
}

func (uc *menuCommandsImpl) Create(ctx context.Context, in CreateMenuItemInput) (*queries.MenuItemView, error) {
	category, err := menu.NewCategory(in.Category)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	available := patch.Coalesce(in.IsAvailable, true)

	item, err := menu.NewItem(in.Name, in.Description, in.PriceCents, category, available, in.ImageURL, in.PreparationTime)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.MenuItems().Create(ctx, item); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateMenuName)
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

func (uc *menuCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateMenuItemInput) (*queries.MenuItemView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.MenuItems().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrMenuItemNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if in.Name != nil {
			if err := item.Rename(*in.Name); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if in.Description != nil {
			item.ChangeDescription(*in.Description)
		}
		if in.PriceCents != nil {
			if err := item.ChangePrice(*in.PriceCents); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if in.Category != nil {
			category, err := menu.NewCategory(*in.Category)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			if err := item.ChangeCategory(category); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if in.IsAvailable != nil {
			item.SetAvailability(*in.IsAvailable)
		}
		if in.ImageURL != nil {
			item.ChangeImageURL(*in.ImageURL)
		}
		if in.PreparationTime != nil {
			if err := item.ChangePreparationTime(*in.PreparationTime); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}

		if err := tx.MenuItems().Update(ctx, item); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateMenuName)
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

func (uc *menuCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.MenuItems().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrMenuItemNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
