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

type MenuReadStore struct {
	db db.DBTX
}

func NewMenuReadStore(dbtx db.DBTX) *MenuReadStore {
	return &MenuReadStore{db: dbtx}
}

func (r *MenuReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MenuItemView, error) {
	const query = `
		SELECT id, name, description, price_cents, category, is_available, image_url, preparation_time, created_at, updated_at
		FROM menu_items
		WHERE id = $1`

	view, err := scanMenuItemView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item by ID", err)
	}
	return view, nil
}

func (r *MenuReadStore) FindAll(ctx context.Context, category *string) ([]*queries.MenuItemView, error) {
	query := `
		SELECT id, name, description, price_cents, category, is_available, image_url, preparation_time, created_at, updated_at
		FROM menu_items`
	var args []any
	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, *category)
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	defer rows.Close()

	var views []*queries.MenuItemView
	for rows.Next() {
		view, err := scanMenuItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate menu item rows", err)
	}
	return views, nil
}

func scanMenuItemView(row pgx.Row) (*queries.MenuItemView, error) {
	var (
		v                    queries.MenuItemView
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.Name, &v.Description, &v.PriceCents, &v.Category,
		&v.IsAvailable, &v.ImageURL, &v.PreparationTime, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time
	return &v, nil
}
