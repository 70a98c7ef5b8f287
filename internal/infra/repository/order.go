package repository

import (
	"context"

	"restaurant-api/internal/domain/order"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	const query = `
		INSERT INTO orders (id, user_id, total_cents, status, payment_method, is_paid, paid_at,
		                    delivery_street, delivery_city, delivery_postal_code, delivery_country,
		                    delivery_fee_cents, is_delivered, delivered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	street, city, postal, country := addressColumns(o.DeliveryAddress())

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		o.ID(), o.UserID(), o.TotalCents(), o.Status().String(), o.PaymentMethod().String(),
		o.IsPaid(), pgconv.TimePtrToPgtype(o.PaidAt()),
		street, city, postal, country,
		o.DeliveryFeeCents(), o.IsDelivered(), pgconv.TimePtrToPgtype(o.DeliveredAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	if err := r.insertLines(ctx, o.ID(), o.Lines()); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *OrderRepository) insertLines(ctx context.Context, orderID uuid.UUID, lines []order.Line) error {
	const query = `
		INSERT INTO order_items (order_id, menu_item_id, name, quantity, price_cents, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, l := range lines {
		if _, err := r.db.Exec(ctx, query, orderID, l.MenuItemID, l.Name, l.Quantity, l.PriceCents, l.ImageURL); err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return nil
}

// Update persists mutable order state. Lines are immutable after creation.
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	const query = `
		UPDATE orders
		SET status = $2, is_paid = $3, paid_at = $4, is_delivered = $5, delivered_at = $6, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		o.ID(), o.Status().String(),
		o.IsPaid(), pgconv.TimePtrToPgtype(o.PaidAt()),
		o.IsDelivered(), pgconv.TimePtrToPgtype(o.DeliveredAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	const query = `
		SELECT id, user_id, total_cents, status, payment_method, is_paid, paid_at,
		       delivery_street, delivery_city, delivery_postal_code, delivery_country,
		       delivery_fee_cents, is_delivered, delivered_at, created_at, updated_at
		FROM orders
		WHERE id = $1`

	var (
		orderID, userID              uuid.UUID
		totalCents                   int64
		status, paymentMethod        string
		isPaid                       bool
		paidAt                       pgtype.Timestamptz
		street, city, postal, cntry  pgtype.Text
		deliveryFee                  int64
		isDelivered                  bool
		deliveredAt                  pgtype.Timestamptz
		createdAt, updatedAt         pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&orderID, &userID, &totalCents, &status, &paymentMethod, &isPaid, &paidAt,
		&street, &city, &postal, &cntry,
		&deliveryFee, &isDelivered, &deliveredAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	lines, err := r.findLines(ctx, orderID)
	if err != nil {
		return nil, err
	}

	st, err := order.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid order status in storage", err)
	}
	pm, err := order.NewPaymentMethod(paymentMethod)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid payment method in storage", err)
	}

	return order.ReconstructOrder(
		orderID, userID, lines, totalCents, st, pm,
		isPaid, pgconv.TimePtrFromPgtype(paidAt),
		addressFromColumns(street, city, postal, cntry),
		deliveryFee,
		isDelivered, pgconv.TimePtrFromPgtype(deliveredAt),
		createdAt.Time, updatedAt.Time,
	), nil
}

func (r *OrderRepository) findLines(ctx context.Context, orderID uuid.UUID) ([]order.Line, error) {
	const query = `
		SELECT menu_item_id, name, quantity, price_cents, image_url
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	var lines []order.Line
	for rows.Next() {
		var l order.Line
		if err := rows.Scan(&l.MenuItemID, &l.Name, &l.Quantity, &l.PriceCents, &l.ImageURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item row", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order item rows", err)
	}
	return lines, nil
}

func addressColumns(a *order.Address) (street, city, postal, country pgtype.Text) {
	if a == nil {
		return
	}
	street = pgtype.Text{String: a.Street, Valid: true}
	city = pgtype.Text{String: a.City, Valid: true}
	postal = pgtype.Text{String: a.PostalCode, Valid: true}
	country = pgtype.Text{String: a.Country, Valid: true}
	return
}

func addressFromColumns(street, city, postal, country pgtype.Text) *order.Address {
	if !street.Valid && !city.Valid && !postal.Valid && !country.Valid {
		return nil
	}
	return &order.Address{
		Street:     street.String,
		City:       city.String,
		PostalCode: postal.String,
		Country:    country.String,
	}
}
