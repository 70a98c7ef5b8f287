package queries

import (
	"context"

	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTableNotFound = errs.New("table not found")

type TableQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TableView, error)
	ListAll(ctx context.Context) ([]*TableView, error)
}

type TableReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TableView, error)
	FindAll(ctx context.Context) ([]*TableView, error)
}

type tableQueriesImpl struct {
	readStore TableReadStore
}

func NewTableQueries(readStore TableReadStore) TableQueries {
	return &tableQueriesImpl{readStore: readStore}
}

func (q *tableQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TableView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *tableQueriesImpl) ListAll(ctx context.Context) ([]*TableView, error) {
	return q.readStore.FindAll(ctx)
}
