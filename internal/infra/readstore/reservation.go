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

const reservationViewColumns = `
	r.id, r.user_id, u.name AS user_name, r.table_id, t.number AS table_number,
	r.start_time, r.end_time, r.guests, r.status, r.notes, r.created_at, r.updated_at
	FROM reservations r
	JOIN users u ON u.id = r.user_id
	JOIN tables t ON t.id = r.table_id`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := `SELECT` + reservationViewColumns + ` WHERE r.id = $1`

	view, err := scanReservationView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	query := `SELECT` + reservationViewColumns + ` ORDER BY r.start_time`
	return r.list(ctx, query)
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	query := `SELECT` + reservationViewColumns + ` WHERE r.user_id = $1 ORDER BY r.start_time`
	return r.list(ctx, query, userID)
}

func (r *ReservationReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return views, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var (
		v                    queries.ReservationView
		startTime, endTime   pgtype.Timestamptz
		notes                pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.UserID, &v.UserName, &v.TableID, &v.TableNumber,
		&startTime, &endTime, &v.Guests, &v.Status, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.StartTime = startTime.Time
	v.EndTime = endTime.Time
	v.Notes = pgconv.StringPtrFromPgtype(notes)
	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time
	return &v, nil
}
