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

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: dbtx}
}

func (r *InventoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InventoryItemView, error) {
	const query = `
		SELECT id, name, quantity, unit, min_level, last_updated, created_at, updated_at
		FROM inventory_items
		WHERE id = $1`

	view, err := scanInventoryItemView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inventory item by ID", err)
	}
	return view, nil
}

func (r *InventoryReadStore) FindAll(ctx context.Context) ([]*queries.InventoryItemView, error) {
	const query = `
		SELECT id, name, quantity, unit, min_level, last_updated, created_at, updated_at
		FROM inventory_items
		ORDER BY name`
	return r.list(ctx, query)
}

func (r *InventoryReadStore) FindLowStock(ctx context.Context) ([]*queries.InventoryItemView, error) {
	const query = `
		SELECT id, name, quantity, unit, min_level, last_updated, created_at, updated_at
		FROM inventory_items
		WHERE quantity <= min_level
		ORDER BY name`
	return r.list(ctx, query)
}

func (r *InventoryReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.InventoryItemView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory items", err)
	}
	defer rows.Close()

	var views []*queries.InventoryItemView
	for rows.Next() {
		view, err := scanInventoryItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory item row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate inventory item rows", err)
	}
	return views, nil
}

func scanInventoryItemView(row pgx.Row) (*queries.InventoryItemView, error) {
	var (
		v                    queries.InventoryItemView
		lastUpdated          pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.Name, &v.Quantity, &v.Unit, &v.MinLevel, &lastUpdated, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	v.LastUpdated = lastUpdated.Time
	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time
	v.IsLowStock = v.Quantity <= v.MinLevel
	return &v, nil
}
