package commands

import (
	"context"

	"restaurant-api/internal/domain/table"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/pkg/patch"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateTableNumber = errs.New("table number already in use")

type CreateTableInput struct {
	Number      int
	Capacity    int
	IsAvailable *bool
	Location    string
	Description string
}

type UpdateTableInput struct {
	Number      *int
	Capacity    *int
	IsAvailable *bool
	Location    *string
	Description *string
}

type TableCommands interface {
	Create(ctx context.Context, in CreateTableInput) (*queries.TableView, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateTableInput) (*queries.TableView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tableCommandsImpl struct {
	uow   shared.UnitOfWork
	views queries.TableQueries
}

func NewTableCommands(uow shared.UnitOfWork, views queries.TableQueries) TableCommands {
	return &tableCommandsImpl{uow: uow, views: views}
}

func (uc *tableCommandsImpl) Create(ctx context.Context, in CreateTableInput) (*queries.TableView, error) {
	available := patch.Coalesce(in.IsAvailable, true)

	t, err := table.NewTable(in.Number, in.Capacity, available, in.Location, in.Description)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Tables().Create(ctx, t); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateTableNumber)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.views.GetByID(ctx, t.ID())
}

func (uc *tableCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateTableInput) (*queries.TableView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Tables().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrTableNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if in.Number != nil {
			if err := t.ChangeNumber(*in.Number); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if in.Capacity != nil {
			if err := t.ChangeCapacity(*in.Capacity); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if in.IsAvailable != nil {
			t.SetAvailability(*in.IsAvailable)
		}
		if in.Location != nil {
			t.ChangeLocation(*in.Location)
		}
		if in.Description != nil {
			t.ChangeDescription(*in.Description)
		}

		if err := tx.Tables().Update(ctx, t); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateTableNumber)
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

func (uc *tableCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Tables().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrTableNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
