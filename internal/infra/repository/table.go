package repository

import (
	"context"

	"restaurant-api/internal/domain/table"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TableRepository struct {
	db db.DBTX
}

func NewTableRepository(dbtx db.DBTX) *TableRepository {
	return &TableRepository{db: dbtx}
}

func (r *TableRepository) Create(ctx context.Context, t *table.Table) (uuid.UUID, error) {
	const query = `
		INSERT INTO tables (id, number, capacity, is_available, location, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		t.ID(), t.Number(), t.Capacity(), t.IsAvailable(), t.Location(), t.Description(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create table", err)
	}
	return id, nil
}

func (r *TableRepository) Update(ctx context.Context, t *table.Table) error {
	const query = `
		UPDATE tables
		SET number = $2, capacity = $3, is_available = $4, location = $5,
		    description = $6, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		t.ID(), t.Number(), t.Capacity(), t.IsAvailable(), t.Location(), t.Description(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update table", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("table not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete table", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("table not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TableRepository) FindByID(ctx context.Context, id uuid.UUID) (*table.Table, error) {
	const query = `
		SELECT id, number, capacity, is_available, location, description, created_at, updated_at
		FROM tables
		WHERE id = $1`

	var (
		tableID              uuid.UUID
		number, capacity     int
		isAvailable          bool
		location, desc       string
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tableID, &number, &capacity, &isAvailable, &location, &desc, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("table not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find table by ID", err)
	}

	return table.ReconstructTable(
		tableID, number, capacity, isAvailable, location, desc,
		createdAt.Time, updatedAt.Time,
	), nil
}
