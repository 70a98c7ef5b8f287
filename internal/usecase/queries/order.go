package queries

import (
	"context"

	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound  = errs.New("order not found")
	ErrOrderForbidden = errs.New("order access denied")
)

type OrderQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorPrivileged bool, id uuid.UUID) (*OrderView, error)
	ListAll(ctx context.Context) ([]*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindAll(ctx context.Context) ([]*OrderView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorPrivileged bool, id uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !actorPrivileged && view.UserID != actorID {
		return nil, ErrOrderForbidden
	}
	return view, nil
}

func (q *orderQueriesImpl) ListAll(ctx context.Context) ([]*OrderView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}
