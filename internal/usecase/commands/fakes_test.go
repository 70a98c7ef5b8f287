//go:build unit

package commands_test

import (
	"context"

	"restaurant-api/internal/domain/inventory"
	"restaurant-api/internal/domain/menu"
	"restaurant-api/internal/domain/order"
	"restaurant-api/internal/domain/reservation"
	"restaurant-api/internal/domain/table"
	"restaurant-api/internal/domain/user"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW runs the transactional function directly against in-memory
// repositories. Retry and isolation behavior is covered by the e2e suite.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		tx: &fakeTx{
			reservations: &fakeReservationRepo{items: map[uuid.UUID]*reservation.Reservation{}},
			tables:       &fakeTableRepo{items: map[uuid.UUID]*table.Table{}},
			users:        &fakeUserRepo{items: map[uuid.UUID]*user.User{}},
			menuItems:    &fakeMenuRepo{items: map[uuid.UUID]*menu.Item{}},
			orders:       &fakeOrderRepo{items: map[uuid.UUID]*order.Order{}},
			inventory:    &fakeInventoryRepo{items: map[uuid.UUID]*inventory.Item{}},
		},
	}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	reservations *fakeReservationRepo
	tables       *fakeTableRepo
	users        *fakeUserRepo
	menuItems    *fakeMenuRepo
	orders       *fakeOrderRepo
	inventory    *fakeInventoryRepo
}

func (t *fakeTx) Reservations() shared.ReservationRepository { return t.reservations }
func (t *fakeTx) Tables() shared.TableRepository             { return t.tables }
func (t *fakeTx) Users() shared.UserRepository               { return t.users }
func (t *fakeTx) MenuItems() shared.MenuRepository           { return t.menuItems }
func (t *fakeTx) Orders() shared.OrderRepository             { return t.orders }
func (t *fakeTx) Inventory() shared.InventoryRepository      { return t.inventory }
func (t *fakeTx) DB() db.DBTX                                { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeReservationRepo struct {
	items       map[uuid.UUID]*reservation.Reservation
	lockedTable []uuid.UUID
}

func (r *fakeReservationRepo) LockTable(_ context.Context, tableID uuid.UUID) error {
	r.lockedTable = append(r.lockedTable, tableID)
	return nil
}

func (r *fakeReservationRepo) Create(_ context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	r.items[res.ID()] = res
	return res.ID(), nil
}

func (r *fakeReservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.items[res.ID()]; !ok {
		return notFound("reservation not found")
	}
	r.items[res.ID()] = res
	return nil
}

func (r *fakeReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return notFound("reservation not found")
	}
	delete(r.items, id)
	return nil
}

func (r *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.items[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return res, nil
}

func (r *fakeReservationRepo) ListByTable(_ context.Context, tableID uuid.UUID) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for _, res := range r.items {
		if res.TableID() == tableID {
			out = append(out, res)
		}
	}
	return out, nil
}

type fakeTableRepo struct {
	items map[uuid.UUID]*table.Table
}

func (r *fakeTableRepo) Create(_ context.Context, t *table.Table) (uuid.UUID, error) {
	r.items[t.ID()] = t
	return t.ID(), nil
}

func (r *fakeTableRepo) Update(_ context.Context, t *table.Table) error {
	if _, ok := r.items[t.ID()]; !ok {
		return notFound("table not found")
	}
	r.items[t.ID()] = t
	return nil
}

func (r *fakeTableRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return notFound("table not found")
	}
	delete(r.items, id)
	return nil
}

func (r *fakeTableRepo) FindByID(_ context.Context, id uuid.UUID) (*table.Table, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, notFound("table not found")
	}
	return t, nil
}

type fakeUserRepo struct {
	items map[uuid.UUID]*user.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) (uuid.UUID, error) {
	for _, existing := range r.items {
		if existing.Email().Value() == u.Email().Value() {
			return uuid.Nil, infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
		}
	}
	r.items[u.ID()] = u
	return u.ID(), nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.items {
		if u.Email().Value() == email {
			return u, nil
		}
	}
	return nil, notFound("user not found")
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return u, nil
}

type fakeMenuRepo struct {
	items map[uuid.UUID]*menu.Item
}

func (r *fakeMenuRepo) Create(_ context.Context, item *menu.Item) (uuid.UUID, error) {
	r.items[item.ID()] = item
	return item.ID(), nil
}

func (r *fakeMenuRepo) Update(_ context.Context, item *menu.Item) error {
	if _, ok := r.items[item.ID()]; !ok {
		return notFound("menu item not found")
	}
	r.items[item.ID()] = item
	return nil
}

func (r *fakeMenuRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return notFound("menu item not found")
	}
	delete(r.items, id)
	return nil
}

func (r *fakeMenuRepo) FindByID(_ context.Context, id uuid.UUID) (*menu.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, notFound("menu item not found")
	}
	return item, nil
}

func (r *fakeMenuRepo) FindAvailableByIDs(_ context.Context, ids []uuid.UUID) ([]*menu.Item, error) {
	var out []*menu.Item
	for _, id := range ids {
		if item, ok := r.items[id]; ok && item.IsAvailable() {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	items map[uuid.UUID]*order.Order
}

func (r *fakeOrderRepo) Create(_ context.Context, o *order.Order) (uuid.UUID, error) {
	r.items[o.ID()] = o
	return o.ID(), nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *order.Order) error {
	if _, ok := r.items[o.ID()]; !ok {
		return notFound("order not found")
	}
	r.items[o.ID()] = o
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return notFound("order not found")
	}
	delete(r.items, id)
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, notFound("order not found")
	}
	return o, nil
}

type fakeInventoryRepo struct {
	items map[uuid.UUID]*inventory.Item
}

func (r *fakeInventoryRepo) Create(_ context.Context, item *inventory.Item) (uuid.UUID, error) {
	for _, existing := range r.items {
		if existing.Name() == item.Name() {
			return uuid.Nil, infra.WrapRepoErr("duplicate inventory name", nil, infra.KindDuplicateKey)
		}
	}
	r.items[item.ID()] = item
	return item.ID(), nil
}

func (r *fakeInventoryRepo) Update(_ context.Context, item *inventory.Item) error {
	if _, ok := r.items[item.ID()]; !ok {
		return notFound("inventory item not found")
	}
	r.items[item.ID()] = item
	return nil
}

func (r *fakeInventoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return notFound("inventory item not found")
	}
	delete(r.items, id)
	return nil
}

func (r *fakeInventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, notFound("inventory item not found")
	}
	return item, nil
}

// stubReservationViews resolves views straight from the write-side fake so
// command tests do not need a separate read model.
type stubReservationViews struct {
	repo *fakeReservationRepo
}

func (s stubReservationViews) GetByID(_ context.Context, _ uuid.UUID, _ bool, id uuid.UUID) (*queries.ReservationView, error) {
	res, ok := s.repo.items[id]
	if !ok {
		return nil, queries.ErrReservationNotFound
	}
	view := &queries.ReservationView{
		ID:        res.ID(),
		UserID:    res.UserID(),
		TableID:   res.TableID(),
		StartTime: res.Slot().Start(),
		EndTime:   res.Slot().End(),
		Guests:    res.Guests(),
		Status:    res.Status().String(),
	}
	if notes := res.Notes(); notes != "" {
		view.Notes = &notes
	}
	return view, nil
}

func (s stubReservationViews) ListAll(_ context.Context) ([]*queries.ReservationView, error) {
	return nil, nil
}

func (s stubReservationViews) ListByUser(_ context.Context, _ uuid.UUID) ([]*queries.ReservationView, error) {
	return nil, nil
}

type stubOrderViews struct {
	repo *fakeOrderRepo
}

func (s stubOrderViews) GetByID(_ context.Context, _ uuid.UUID, _ bool, id uuid.UUID) (*queries.OrderView, error) {
	o, ok := s.repo.items[id]
	if !ok {
		return nil, queries.ErrOrderNotFound
	}
	items := make([]queries.OrderLineView, len(o.Lines()))
	for i, line := range o.Lines() {
		items[i] = queries.OrderLineView{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			PriceCents: line.PriceCents,
			ImageURL:   line.ImageURL,
		}
	}
	return &queries.OrderView{
		ID:            o.ID(),
		UserID:        o.UserID(),
		Items:         items,
		TotalCents:    o.TotalCents(),
		Status:        o.Status().String(),
		PaymentMethod: o.PaymentMethod().String(),
		IsPaid:        o.IsPaid(),
		PaidAt:        o.PaidAt(),
		DeliveryFee:   o.DeliveryFeeCents(),
		IsDelivered:   o.IsDelivered(),
		DeliveredAt:   o.DeliveredAt(),
	}, nil
}

func (s stubOrderViews) ListAll(_ context.Context) ([]*queries.OrderView, error) {
	return nil, nil
}

func (s stubOrderViews) ListByUser(_ context.Context, _ uuid.UUID) ([]*queries.OrderView, error) {
	return nil, nil
}

type stubInventoryViews struct {
	repo *fakeInventoryRepo
}

func (s stubInventoryViews) GetByID(_ context.Context, id uuid.UUID) (*queries.InventoryItemView, error) {
	item, ok := s.repo.items[id]
	if !ok {
		return nil, queries.ErrInventoryItemNotFound
	}
	return &queries.InventoryItemView{
		ID:          item.ID(),
		Name:        item.Name(),
		Quantity:    item.Quantity(),
		Unit:        item.Unit(),
		MinLevel:    item.MinLevel(),
		IsLowStock:  item.IsLowStock(),
		LastUpdated: item.LastUpdated(),
	}, nil
}

func (s stubInventoryViews) ListAll(_ context.Context) ([]*queries.InventoryItemView, error) {
	return nil, nil
}

func (s stubInventoryViews) ListLowStock(_ context.Context) ([]*queries.InventoryItemView, error) {
	return nil, nil
}
