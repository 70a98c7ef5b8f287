//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"restaurant-api/internal/domain/reservation"
	"restaurant-api/internal/domain/table"
	"restaurant-api/internal/domain/user"
	"restaurant-api/internal/pkg/clock"
	"restaurant-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

type reservationFixture struct {
	uow     *fakeUoW
	clock   *clock.MockClock
	table   *table.Table
	usecase commands.ReservationCommands
}

func newReservationFixture(t *testing.T, policy reservation.ActivePolicy) *reservationFixture {
	t.Helper()

	uow := newFakeUoW()
	clk := clock.NewMockClock(baseTime)

	tbl, err := table.NewTable(1, 4, true, "Main Hall", "")
	require.NoError(t, err)
	uow.tx.tables.items[tbl.ID()] = tbl

	uc := commands.NewReservationCommands(
		uow,
		reservation.NewFactory(clk),
		stubReservationViews{repo: uow.tx.reservations},
		policy,
		clk,
	)

	return &reservationFixture{uow: uow, clock: clk, table: tbl, usecase: uc}
}

func (f *reservationFixture) seedReservation(t *testing.T, userID uuid.UUID, start, end time.Time, status reservation.Status) *reservation.Reservation {
	t.Helper()

	slot, err := reservation.NewTimeSlot(start, end)
	require.NoError(t, err)

	res := reservation.ReconstructReservation(
		uuid.New(), userID, f.table.ID(), slot, 2, status, "", baseTime, baseTime,
	)
	f.uow.tx.reservations.items[res.ID()] = res
	return res
}

func customerActor() commands.Actor {
	return commands.Actor{ID: uuid.New(), Role: user.RoleCustomer}
}

func staffActor() commands.Actor {
	return commands.Actor{ID: uuid.New(), Role: user.RoleStaff}
}

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending reservation on a free table", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		actor := customerActor()

		view, err := f.usecase.Create(ctx, actor, commands.CreateReservationInput{
			TableID:   f.table.ID(),
			StartTime: baseTime.Add(2 * time.Hour),
			EndTime:   baseTime.Add(4 * time.Hour),
			Guests:    2,
			Notes:     "window seat",
		})

		require.NoError(t, err)
		assert.Equal(t, actor.ID, view.UserID)
		assert.Equal(t, "Pending", view.Status)
		require.NotNil(t, view.Notes)
		assert.Equal(t, "window seat", *view.Notes)
		assert.Equal(t, []uuid.UUID{f.table.ID()}, f.uow.tx.reservations.lockedTable)
	})

	t.Run("rejects an overlapping slot", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		f.seedReservation(t, uuid.New(), baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusConfirmed)

		_, err := f.usecase.Create(ctx, customerActor(), commands.CreateReservationInput{
			TableID:   f.table.ID(),
			StartTime: baseTime.Add(3 * time.Hour),
			EndTime:   baseTime.Add(5 * time.Hour),
			Guests:    2,
		})

		assert.ErrorIs(t, err, commands.ErrSlotConflict)
	})

	t.Run("back to back slots do not conflict", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		f.seedReservation(t, uuid.New(), baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusConfirmed)

		_, err := f.usecase.Create(ctx, customerActor(), commands.CreateReservationInput{
			TableID:   f.table.ID(),
			StartTime: baseTime.Add(4 * time.Hour),
			EndTime:   baseTime.Add(6 * time.Hour),
			Guests:    2,
		})

		assert.NoError(t, err)
	})

	t.Run("cancelled reservations free their slot", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		f.seedReservation(t, uuid.New(), baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusCancelled)

		_, err := f.usecase.Create(ctx, customerActor(), commands.CreateReservationInput{
			TableID:   f.table.ID(),
			StartTime: baseTime.Add(2 * time.Hour),
			EndTime:   baseTime.Add(4 * time.Hour),
			Guests:    2,
		})

		assert.NoError(t, err)
	})

	t.Run("completed reservations block by default", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		f.seedReservation(t, uuid.New(), baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusCompleted)

		_, err := f.usecase.Create(ctx, customerActor(), commands.CreateReservationInput{
			TableID:   f.table.ID(),
			StartTime: baseTime.Add(2 * time.Hour),
			EndTime:   baseTime.Add(4 * time.Hour),
			Guests:    2,
		})

		assert.ErrorIs(t, err, commands.ErrSlotConflict)
	})

	t.Run("relaxed policy lets completed reservations free their slot", func(t *testing.T) {
		f := newReservationFixture(t, reservation.ActivePolicy{CompletedBlocks: false})
		f.seedReservation(t, uuid.New(), baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusCompleted)

		_, err := f.usecase.Create(ctx, customerActor(), commands.CreateReservationInput{
			TableID:   f.table.ID(),
			StartTime: baseTime.Add(2 * time.Hour),
			EndTime:   baseTime.Add(4 * time.Hour),
			Guests:    2,
		})

		assert.NoError(t, err)
	})

	t.Run("rejects a start time in the past", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())

		_, err := f.usecase.Create(ctx, customerActor(), commands.CreateReservationInput{
			TableID:   f.table.ID(),
			StartTime: baseTime.Add(-2 * time.Hour),
			EndTime:   baseTime.Add(2 * time.Hour),
			Guests:    2,
		})

		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("rejects guests above table capacity", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())

		_, err := f.usecase.Create(ctx, customerActor(), commands.CreateReservationInput{
			TableID:   f.table.ID(),
			StartTime: baseTime.Add(2 * time.Hour),
			EndTime:   baseTime.Add(4 * time.Hour),
			Guests:    5,
		})

		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("rejects an end time not after the start time", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())

		_, err := f.usecase.Create(ctx, customerActor(), commands.CreateReservationInput{
			TableID:   f.table.ID(),
			StartTime: baseTime.Add(2 * time.Hour),
			EndTime:   baseTime.Add(2 * time.Hour),
			Guests:    2,
		})

		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("unknown table", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())

		_, err := f.usecase.Create(ctx, customerActor(), commands.CreateReservationInput{
			TableID:   uuid.New(),
			StartTime: baseTime.Add(2 * time.Hour),
			EndTime:   baseTime.Add(4 * time.Hour),
			Guests:    2,
		})

		assert.ErrorIs(t, err, commands.ErrTableNotFound)
	})
}

func TestReservationCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("notes only update skips the conflict check", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		actor := customerActor()
		res := f.seedReservation(t, actor.ID, baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusConfirmed)
		// Overlapping neighbor would fail any conflict re-check.
		f.seedReservation(t, uuid.New(), baseTime.Add(3*time.Hour), baseTime.Add(5*time.Hour), reservation.StatusConfirmed)

		notes := "birthday cake"
		view, err := f.usecase.Update(ctx, actor, res.ID(), commands.UpdateReservationInput{Notes: &notes})

		require.NoError(t, err)
		require.NotNil(t, view.Notes)
		assert.Equal(t, notes, *view.Notes)
		assert.Empty(t, f.uow.tx.reservations.lockedTable)
	})

	t.Run("reschedule into an occupied slot fails", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		actor := customerActor()
		res := f.seedReservation(t, actor.ID, baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusConfirmed)
		f.seedReservation(t, uuid.New(), baseTime.Add(5*time.Hour), baseTime.Add(7*time.Hour), reservation.StatusConfirmed)

		start := baseTime.Add(6 * time.Hour)
		end := baseTime.Add(8 * time.Hour)
		_, err := f.usecase.Update(ctx, actor, res.ID(), commands.UpdateReservationInput{StartTime: &start, EndTime: &end})

		assert.ErrorIs(t, err, commands.ErrSlotConflict)
	})

	t.Run("reschedule ignores the reservation's own slot", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		actor := customerActor()
		res := f.seedReservation(t, actor.ID, baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusConfirmed)

		// Shift by one hour; the only overlap is with itself.
		start := baseTime.Add(3 * time.Hour)
		end := baseTime.Add(5 * time.Hour)
		view, err := f.usecase.Update(ctx, actor, res.ID(), commands.UpdateReservationInput{StartTime: &start, EndTime: &end})

		require.NoError(t, err)
		assert.Equal(t, start, view.StartTime)
		assert.Equal(t, end, view.EndTime)
	})

	t.Run("customers cannot touch other users' reservations", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		res := f.seedReservation(t, uuid.New(), baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusConfirmed)

		notes := "hijack"
		_, err := f.usecase.Update(ctx, customerActor(), res.ID(), commands.UpdateReservationInput{Notes: &notes})

		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("staff can update any reservation", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		res := f.seedReservation(t, uuid.New(), baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusConfirmed)

		notes := "allergy note"
		_, err := f.usecase.Update(ctx, staffActor(), res.ID(), commands.UpdateReservationInput{Notes: &notes})

		assert.NoError(t, err)
	})

	t.Run("pending reservations cannot move into the past", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		actor := customerActor()
		res := f.seedReservation(t, actor.ID, baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusPending)

		start := baseTime.Add(-3 * time.Hour)
		end := baseTime.Add(-1 * time.Hour)
		_, err := f.usecase.Update(ctx, actor, res.ID(), commands.UpdateReservationInput{StartTime: &start, EndTime: &end})

		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("confirmed reservations may be corrected to a past slot", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		res := f.seedReservation(t, uuid.New(), baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusConfirmed)

		start := baseTime.Add(-3 * time.Hour)
		end := baseTime.Add(-1 * time.Hour)
		_, err := f.usecase.Update(ctx, staffActor(), res.ID(), commands.UpdateReservationInput{StartTime: &start, EndTime: &end})

		assert.NoError(t, err)
	})

	t.Run("reviving a cancelled reservation re-checks conflicts", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		res := f.seedReservation(t, uuid.New(), baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusCancelled)
		f.seedReservation(t, uuid.New(), baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusConfirmed)

		status := "Confirmed"
		_, err := f.usecase.Update(ctx, staffActor(), res.ID(), commands.UpdateReservationInput{Status: &status})

		assert.ErrorIs(t, err, commands.ErrSlotConflict)
	})

	t.Run("moving to a smaller table fails the capacity check", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		actor := customerActor()
		res := f.seedReservation(t, actor.ID, baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusConfirmed)

		small, err := table.NewTable(2, 1, true, "", "")
		require.NoError(t, err)
		f.uow.tx.tables.items[small.ID()] = small

		smallID := small.ID()
		_, err = f.usecase.Update(ctx, actor, res.ID(), commands.UpdateReservationInput{TableID: &smallID})

		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("restating the current table still re-checks capacity", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		actor := customerActor()
		res := f.seedReservation(t, actor.ID, baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusConfirmed)

		// Capacity shrank after booking; a patch that names the table must
		// notice, even though the table itself did not change.
		require.NoError(t, f.table.ChangeCapacity(1))

		sameID := f.table.ID()
		_, err := f.usecase.Update(ctx, actor, res.ID(), commands.UpdateReservationInput{TableID: &sameID})

		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())

		notes := "whatever"
		_, err := f.usecase.Update(ctx, staffActor(), uuid.New(), commands.UpdateReservationInput{Notes: &notes})

		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}

func TestReservationCommands_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("cancelling never needs a conflict check", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		res := f.seedReservation(t, uuid.New(), baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusConfirmed)

		view, err := f.usecase.UpdateStatus(ctx, res.ID(), "Cancelled")

		require.NoError(t, err)
		assert.Equal(t, "Cancelled", view.Status)
		assert.Empty(t, f.uow.tx.reservations.lockedTable)
	})

	t.Run("reactivating into an occupied slot fails", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		res := f.seedReservation(t, uuid.New(), baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusNoShow)
		f.seedReservation(t, uuid.New(), baseTime.Add(3*time.Hour), baseTime.Add(5*time.Hour), reservation.StatusConfirmed)

		_, err := f.usecase.UpdateStatus(ctx, res.ID(), "Confirmed")

		assert.ErrorIs(t, err, commands.ErrSlotConflict)
	})

	t.Run("invalid status string", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())

		_, err := f.usecase.UpdateStatus(ctx, uuid.New(), "Arrived")

		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestReservationCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can delete", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		actor := customerActor()
		res := f.seedReservation(t, actor.ID, baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusPending)

		require.NoError(t, f.usecase.Delete(ctx, actor, res.ID()))
		assert.Empty(t, f.uow.tx.reservations.items)
	})

	t.Run("customers cannot delete other users' reservations", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		res := f.seedReservation(t, uuid.New(), baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusPending)

		err := f.usecase.Delete(ctx, customerActor(), res.ID())

		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("staff can delete any reservation", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())
		res := f.seedReservation(t, uuid.New(), baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour), reservation.StatusPending)

		assert.NoError(t, f.usecase.Delete(ctx, staffActor(), res.ID()))
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newReservationFixture(t, reservation.DefaultActivePolicy())

		err := f.usecase.Delete(ctx, staffActor(), uuid.New())

		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}
