package queries

import (
	"context"

	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMenuItemNotFound = errs.New("menu item not found")

type MenuQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
	// ListAll filters by category when one is given.
	ListAll(ctx context.Context, category *string) ([]*MenuItemView, error)
}

type MenuReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
	FindAll(ctx context.Context, category *string) ([]*MenuItemView, error)
}

type menuQueriesImpl struct {
	readStore MenuReadStore
}

func NewMenuQueries(readStore MenuReadStore) MenuQueries {
	return &menuQueriesImpl{readStore: readStore}
}

func (q *menuQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MenuItemView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *menuQueriesImpl) ListAll(ctx context.Context, category *string) ([]*MenuItemView, error) {
	return q.readStore.FindAll(ctx, category)
}
