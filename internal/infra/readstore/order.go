package readstore

import (
	"context"

	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderViewColumns = `
	o.id, o.user_id, u.name AS user_name, o.total_cents, o.status, o.payment_method,
	o.is_paid, o.paid_at, o.delivery_fee_cents, o.is_delivered, o.delivered_at,
	o.delivery_street, o.delivery_city, o.delivery_postal_code, o.delivery_country,
	o.created_at, o.updated_at
	FROM orders o
	JOIN users u ON u.id = o.user_id`

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	query := `SELECT` + orderViewColumns + ` WHERE o.id = $1`

	view, err := scanOrderView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	if err := r.attachLines(ctx, []*queries.OrderView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *OrderReadStore) FindAll(ctx context.Context) ([]*queries.OrderView, error) {
	query := `SELECT` + orderViewColumns + ` ORDER BY o.created_at DESC`
	return r.list(ctx, query)
}

func (r *OrderReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.OrderView, error) {
	query := `SELECT` + orderViewColumns + ` WHERE o.user_id = $1 ORDER BY o.created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *OrderReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var views []*queries.OrderView
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}

	if err := r.attachLines(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *OrderReadStore) attachLines(ctx context.Context, views []*queries.OrderView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*queries.OrderView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	const query = `
		SELECT order_id, menu_item_id, name, quantity, price_cents, image_url
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID uuid.UUID
			line    queries.OrderLineView
		)
		if err := rows.Scan(&orderID, &line.MenuItemID, &line.Name, &line.Quantity, &line.PriceCents, &line.ImageURL); err != nil {
			return infra.WrapRepoErr("failed to scan order item row", err)
		}
		if v, ok := byID[orderID]; ok {
			v.Items = append(v.Items, line)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate order item rows", err)
	}
	return nil
}

func scanOrderView(row pgx.Row) (*queries.OrderView, error) {
	var (
		v                           queries.OrderView
		paidAt, deliveredAt         pgtype.Timestamptz
		street, city, postal, cntry pgtype.Text
		createdAt, updatedAt        pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.UserID, &v.UserName, &v.TotalCents, &v.Status, &v.PaymentMethod,
		&v.IsPaid, &paidAt, &v.DeliveryFee, &v.IsDelivered, &deliveredAt,
		&street, &city, &postal, &cntry,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.PaidAt = pgconv.TimePtrFromPgtype(paidAt)
	v.DeliveredAt = pgconv.TimePtrFromPgtype(deliveredAt)
	v.DeliveryStreet = pgconv.StringPtrFromPgtype(street)
	v.DeliveryCity = pgconv.StringPtrFromPgtype(city)
	v.DeliveryPostal = pgconv.StringPtrFromPgtype(postal)
	v.DeliveryCountry = pgconv.StringPtrFromPgtype(cntry)
	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time
	return &v, nil
}
