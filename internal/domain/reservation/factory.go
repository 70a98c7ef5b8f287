package reservation

import (
	"strings"

	"restaurant-api/internal/pkg/clock"

	"github.com/google/uuid"
)

// TableSpec is the write-side snapshot of the table a reservation is being
// placed on. The table itself is owned by the table registry.
type TableSpec struct {
	ID       uuid.UUID
	Number   int
	Capacity int
}

type Factory struct {
	clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{clock: clk}
}

// CreateReservation builds a new Pending reservation after validating the
// slot against the clock and the guest count against the table capacity.
// Conflict detection happens later, inside the per-table critical section.
func (f *Factory) CreateReservation(
	table TableSpec,
	userID uuid.UUID,
	slot TimeSlot,
	guests int,
	notes string,
) (*Reservation, error) {
	if slot.StartsBefore(f.clock.Now()) {
		return nil, ErrPastStartTime
	}
	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}
	if guests > table.Capacity {
		return nil, ErrCapacityExceeded
	}

	return &Reservation{
		id:      uuid.New(),
		userID:  userID,
		tableID: table.ID,
		slot:    slot,
		guests:  guests,
		status:  StatusPending,
		notes:   strings.TrimSpace(notes),
	}, nil
}
