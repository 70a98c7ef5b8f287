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

type TableReadStore struct {
	db db.DBTX
}

func NewTableReadStore(dbtx db.DBTX) *TableReadStore {
	return &TableReadStore{db: dbtx}
}

func (r *TableReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TableView, error) {
	const query = `
		SELECT id, number, capacity, is_available, location, description, created_at, updated_at
		FROM tables
		WHERE id = $1`

	view, err := scanTableView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("table not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find table by ID", err)
	}
	return view, nil
}

func (r *TableReadStore) FindAll(ctx context.Context) ([]*queries.TableView, error) {
	const query = `
		SELECT id, number, capacity, is_available, location, description, created_at, updated_at
		FROM tables
		ORDER BY number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}
	defer rows.Close()

	var views []*queries.TableView
	for rows.Next() {
		view, err := scanTableView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan table row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate table rows", err)
	}
	return views, nil
}

func scanTableView(row pgx.Row) (*queries.TableView, error) {
	var (
		v                    queries.TableView
		location, desc       pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.Number, &v.Capacity, &v.IsAvailable, &location, &desc, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	v.Location = pgconv.StringPtrFromPgtype(location)
	v.Description = pgconv.StringPtrFromPgtype(desc)
	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time
	return &v, nil
}
