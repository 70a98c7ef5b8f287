package shared

import (
	"context"

	"restaurant-api/internal/domain/inventory"
	"restaurant-api/internal/domain/menu"
	"restaurant-api/internal/domain/order"
	"restaurant-api/internal/domain/reservation"
	"restaurant-api/internal/domain/table"
	"restaurant-api/internal/domain/user"
	"restaurant-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures and deadlocks
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Tables() TableRepository
	Users() UserRepository
	MenuItems() MenuRepository
	Orders() OrderRepository
	Inventory() InventoryRepository
	DB() db.DBTX
}

type ReservationRepository interface {
	// LockTable serializes all reservation writes for one table until the
	// surrounding transaction ends.
	LockTable(ctx context.Context, tableID uuid.UUID) error
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	Update(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ListByTable(ctx context.Context, tableID uuid.UUID) ([]*reservation.Reservation, error)
}

type TableRepository interface {
	Create(ctx context.Context, t *table.Table) (uuid.UUID, error)
	Update(ctx context.Context, t *table.Table) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*table.Table, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type MenuRepository interface {
	Create(ctx context.Context, item *menu.Item) (uuid.UUID, error)
	Update(ctx context.Context, item *menu.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*menu.Item, error)
	FindAvailableByIDs(ctx context.Context, ids []uuid.UUID) ([]*menu.Item, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) (uuid.UUID, error)
	Update(ctx context.Context, o *order.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
}

type InventoryRepository interface {
	Create(ctx context.Context, item *inventory.Item) (uuid.UUID, error)
	Update(ctx context.Context, item *inventory.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error)
}
