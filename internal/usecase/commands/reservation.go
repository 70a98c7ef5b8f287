package commands

import (
	"context"
	"time"

	"restaurant-api/internal/domain/reservation"
	"restaurant-api/internal/domain/user"
	"restaurant-api/internal/infra"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/pkg/errs"
	"restaurant-api/internal/pkg/patch"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTableNotFound           = errs.New("table not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrSlotConflict            = errs.New("table is already reserved for this time slot")
	ErrForbidden               = errs.New("operation not allowed for this user")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// Actor identifies the authenticated user a command runs on behalf of.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) Privileged() bool {
	return a.Role == user.RoleStaff || a.Role == user.RoleAdmin
}

type CreateReservationInput struct {
	TableID   uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Guests    int
	Notes     string
}

type UpdateReservationInput struct {
	TableID   *uuid.UUID
	StartTime *time.Time
	EndTime   *time.Time
	Guests    *int
	Status    *string
	Notes     *string
}

type ReservationCommands interface {
	Create(ctx context.Context, actor Actor, in CreateReservationInput) (*queries.ReservationView, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, in UpdateReservationInput) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ReservationView, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	views   queries.ReservationQueries
	policy  reservation.ActivePolicy
	clock   clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	views queries.ReservationQueries,
	policy reservation.ActivePolicy,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		factory: factory,
		views:   views,
		policy:  policy,
		clock:   clk,
	}
}

func (uc *reservationCommandsImpl) Create(ctx context.Context, actor Actor, in CreateReservationInput) (*queries.ReservationView, error) {
	slot, err := reservation.NewTimeSlot(in.StartTime, in.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tbl, err := tx.Tables().FindByID(ctx, in.TableID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrTableNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		res, err := uc.factory.CreateReservation(
			reservation.TableSpec{ID: tbl.ID(), Number: tbl.Number(), Capacity: tbl.Capacity()},
			actor.ID, slot, in.Guests, in.Notes,
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		// All writers for this table serialize here, so the scan below sees
		// every committed and in-flight-committed reservation.
		if err := tx.Reservations().LockTable(ctx, tbl.ID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		existing, err := tx.Reservations().ListByTable(ctx, tbl.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if reservation.HasConflict(existing, slot, uuid.Nil, uc.policy) {
			return ErrSlotConflict
		}

		createdID, err = tx.Reservations().Create(ctx, res)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.views.GetByID(ctx, actor.ID, true, createdID)
}

func (uc *reservationCommandsImpl) Update(ctx context.Context, actor Actor, id uuid.UUID, in UpdateReservationInput) (*queries.ReservationView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !actor.Privileged() && !res.IsOwnedBy(actor.ID) {
			return ErrForbidden
		}

		effTableID := patch.Coalesce(in.TableID, res.TableID())
		effStart := patch.Coalesce(in.StartTime, res.Slot().Start())
		effEnd := patch.Coalesce(in.EndTime, res.Slot().End())
		effGuests := patch.Coalesce(in.Guests, res.Guests())

		effSlot, err := reservation.NewTimeSlot(effStart, effEnd)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		tableChanged := effTableID != res.TableID()
		slotChanged := !effSlot.Start().Equal(res.Slot().Start()) || !effSlot.End().Equal(res.Slot().End())

		effStatus := res.Status()
		if in.Status != nil {
			effStatus, err = reservation.NewStatus(*in.Status)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		// Reviving a reservation re-occupies the slot, so it must pass the
		// same conflict check as a reschedule.
		statusActivating := uc.policy.IsActive(effStatus) && !uc.policy.IsActive(res.Status())

		// Pending reservations cannot be rescheduled into the past. Later
		// statuses describe reservations whose time may already have gone by.
		if slotChanged && res.Status() == reservation.StatusPending && effSlot.StartsBefore(uc.clock.Now()) {
			return errs.Mark(reservation.ErrPastStartTime, ErrDomainValidation)
		}

		if in.TableID != nil || in.Guests != nil {
			tbl, err := tx.Tables().FindByID(ctx, effTableID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, ErrTableNotFound)
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if err := res.ChangeGuests(effGuests, tbl.Capacity()); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}

		if tableChanged || slotChanged || statusActivating {
			if err := tx.Reservations().LockTable(ctx, effTableID); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			existing, err := tx.Reservations().ListByTable(ctx, effTableID)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if reservation.HasConflict(existing, effSlot, res.ID(), uc.policy) {
				return ErrSlotConflict
			}
		}

		res.MoveToTable(effTableID)
		res.Reschedule(effSlot)
		if err := res.ChangeStatus(effStatus); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if in.Notes != nil {
			res.ChangeNotes(*in.Notes)
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.views.GetByID(ctx, actor.ID, true, id)
}

func (uc *reservationCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ReservationView, error) {
	newStatus, err := reservation.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if uc.policy.IsActive(newStatus) && !uc.policy.IsActive(res.Status()) {
			if err := tx.Reservations().LockTable(ctx, res.TableID()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			existing, err := tx.Reservations().ListByTable(ctx, res.TableID())
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if reservation.HasConflict(existing, res.Slot(), res.ID(), uc.policy) {
				return ErrSlotConflict
			}
		}

		if err := res.ChangeStatus(newStatus); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.views.GetByID(ctx, uuid.Nil, true, id)
}

func (uc *reservationCommandsImpl) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !actor.Privileged() && !res.IsOwnedBy(actor.ID) {
			return ErrForbidden
		}

		if err := tx.Reservations().Delete(ctx, id); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
