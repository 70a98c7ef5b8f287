package queries

import (
	"context"

	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrReservationForbidden = errs.New("reservation access denied")
)

type ReservationQueries interface {
	// GetByID enforces that customers only see their own reservations.
	GetByID(ctx context.Context, actorID uuid.UUID, actorPrivileged bool, id uuid.UUID) (*ReservationView, error)
	ListAll(ctx context.Context) ([]*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindAll(ctx context.Context) ([]*ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorPrivileged bool, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if !actorPrivileged && view.UserID != actorID {
		return nil, ErrReservationForbidden
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context) ([]*ReservationView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}
