package repository

import (
	"context"

	"restaurant-api/internal/domain/inventory"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(dbtx db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: dbtx}
}

func (r *InventoryRepository) Create(ctx context.Context, item *inventory.Item) (uuid.UUID, error) {
	const query = `
		INSERT INTO inventory_items (id, name, quantity, unit, min_level, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		item.ID(), item.Name(), item.Quantity(), item.Unit(), item.MinLevel(), item.LastUpdated(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create inventory item", err)
	}
	return id, nil
}

func (r *InventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	const query = `
		UPDATE inventory_items
		SET name = $2, quantity = $3, unit = $4, min_level = $5, last_updated = $6, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		item.ID(), item.Name(), item.Quantity(), item.Unit(), item.MinLevel(), item.LastUpdated(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update inventory item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("inventory item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete inventory item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("inventory item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	const query = `
		SELECT id, name, quantity, unit, min_level, last_updated, created_at, updated_at
		FROM inventory_items
		WHERE id = $1`

	var (
		itemID               uuid.UUID
		name, unit           string
		quantity, minLevel   float64
		lastUpdated          pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&itemID, &name, &quantity, &unit, &minLevel, &lastUpdated, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inventory item by ID", err)
	}

	return inventory.ReconstructItem(
		itemID, name, quantity, unit, minLevel,
		lastUpdated.Time, createdAt.Time, updatedAt.Time,
	), nil
}
