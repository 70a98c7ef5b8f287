package queries

import (
	"context"

	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInventoryItemNotFound = errs.New("inventory item not found")

type InventoryQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*InventoryItemView, error)
	ListAll(ctx context.Context) ([]*InventoryItemView, error)
	ListLowStock(ctx context.Context) ([]*InventoryItemView, error)
}

type InventoryReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InventoryItemView, error)
	FindAll(ctx context.Context) ([]*InventoryItemView, error)
	FindLowStock(ctx context.Context) ([]*InventoryItemView, error)
}

type inventoryQueriesImpl struct {
	readStore InventoryReadStore
}

func NewInventoryQueries(readStore InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{readStore: readStore}
}

func (q *inventoryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*InventoryItemView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInventoryItemNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *inventoryQueriesImpl) ListAll(ctx context.Context) ([]*InventoryItemView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *inventoryQueriesImpl) ListLowStock(ctx context.Context) ([]*InventoryItemView, error) {
	return q.readStore.FindLowStock(ctx)
}
