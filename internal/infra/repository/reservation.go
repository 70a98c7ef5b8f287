package repository

import (
	"context"

	"restaurant-api/internal/domain/reservation"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/infra/db"
	"restaurant-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

// LockTable takes a transaction-scoped advisory lock keyed by the table id.
// Concurrent writers for the same table queue here, so the conflict scan and
// the insert that follows see a stable set of rows.
func (r *ReservationRepository) LockTable(ctx context.Context, tableID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text))`, tableID.String())
	if err != nil {
		return infra.WrapRepoErr("failed to lock table for reservation writes", err)
	}
	return nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations (id, user_id, table_id, start_time, end_time, guests, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		res.ID(), res.UserID(), res.TableID(),
		res.Slot().Start(), res.Slot().End(),
		res.Guests(), res.Status().String(), res.Notes(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		UPDATE reservations
		SET user_id = $2, table_id = $3, start_time = $4, end_time = $5,
		    guests = $6, status = $7, notes = $8, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		res.ID(), res.UserID(), res.TableID(),
		res.Slot().Start(), res.Slot().End(),
		res.Guests(), res.Status().String(), res.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const query = `
		SELECT id, user_id, table_id, start_time, end_time, guests, status, notes, created_at, updated_at
		FROM reservations
		WHERE id = $1`

	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return res, nil
}

// ListByTable returns every reservation for the table regardless of status.
// Filtering by activity is a domain concern.
func (r *ReservationRepository) ListByTable(ctx context.Context, tableID uuid.UUID) ([]*reservation.Reservation, error) {
	const query = `
		SELECT id, user_id, table_id, start_time, end_time, guests, status, notes, created_at, updated_at
		FROM reservations
		WHERE table_id = $1
		ORDER BY start_time`

	rows, err := r.db.Query(ctx, query, tableID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by table", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, userID, tableID  uuid.UUID
		startTime, endTime   pgtype.Timestamptz
		guests               int
		status, notes        string
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&id, &userID, &tableID, &startTime, &endTime, &guests, &status, &notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	slot, err := reservation.NewTimeSlot(startTime.Time, endTime.Time)
	if err != nil {
		return nil, err
	}
	st, err := reservation.NewStatus(status)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		id, userID, tableID, slot, guests, st, notes,
		createdAt.Time, updatedAt.Time,
	), nil
}
