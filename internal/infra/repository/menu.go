package repository

import (
	"context"

	"restaurant-api/internal/domain/menu"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type MenuRepository struct {
	db db.DBTX
}

func NewMenuRepository(dbtx db.DBTX) *MenuRepository {
	return &MenuRepository{db: dbtx}
}

func (r *MenuRepository) Create(ctx context.Context, item *menu.Item) (uuid.UUID, error) {
	const query = `
		INSERT INTO menu_items (id, name, description, price_cents, category, is_available, image_url, preparation_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		item.ID(), item.Name(), item.Description(), item.PriceCents(),
		item.Category().String(), item.IsAvailable(), item.ImageURL(), item.PreparationTime(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create menu item", err)
	}
	return id, nil
}

func (r *MenuRepository) Update(ctx context.Context, item *menu.Item) error {
	const query = `
		UPDATE menu_items
		SET name = $2, description = $3, price_cents = $4, category = $5,
		    is_available = $6, image_url = $7, preparation_time = $8, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		item.ID(), item.Name(), item.Description(), item.PriceCents(),
		item.Category().String(), item.IsAvailable(), item.ImageURL(), item.PreparationTime(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id uuid.UUID) (*menu.Item, error) {
	const query = `
		SELECT id, name, description, price_cents, category, is_available, image_url, preparation_time, created_at, updated_at
		FROM menu_items
		WHERE id = $1`

	item, err := scanMenuItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item by ID", err)
	}
	return item, nil
}

// FindAvailableByIDs loads available items for order pricing. Missing or
// unavailable ids are simply absent from the result.
func (r *MenuRepository) FindAvailableByIDs(ctx context.Context, ids []uuid.UUID) ([]*menu.Item, error) {
	const query = `
		SELECT id, name, description, price_cents, category, is_available, image_url, preparation_time, created_at, updated_at
		FROM menu_items
		WHERE id = ANY($1) AND is_available`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find menu items by IDs", err)
	}
	defer rows.Close()

	var result []*menu.Item
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate menu item rows", err)
	}
	return result, nil
}

func scanMenuItem(row pgx.Row) (*menu.Item, error) {
	var (
		id                   uuid.UUID
		name, description    string
		priceCents           int64
		category             string
		isAvailable          bool
		imageURL             string
		preparationTime      int
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&id, &name, &description, &priceCents, &category, &isAvailable, &imageURL, &preparationTime, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	cat, err := menu.NewCategory(category)
	if err != nil {
		return nil, err
	}

	return menu.ReconstructItem(
		id, name, description, priceCents, cat, isAvailable, imageURL, preparationTime,
		createdAt.Time, updatedAt.Time,
	), nil
}
