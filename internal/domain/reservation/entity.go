package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot   = errors.New("invalid time slot")
	ErrPastStartTime     = errors.New("start time is in the past")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrInvalidGuestCount = errors.New("number of guests must be at least 1")
	ErrCapacityExceeded  = errors.New("table capacity exceeded")
)

type Reservation struct {
	id        uuid.UUID
	userID    uuid.UUID
	tableID   uuid.UUID
	slot      TimeSlot
	guests    int
	status    Status
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructReservation(
	id, userID, tableID uuid.UUID,
	slot TimeSlot,
	guests int,
	status Status,
	notes string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		tableID:   tableID,
		slot:      slot,
		guests:    guests,
		status:    status,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Reschedule replaces the slot. The past-time rule for pending reservations
// is enforced by the caller, which owns the clock.
func (r *Reservation) Reschedule(slot TimeSlot) {
	r.slot = slot
}

func (r *Reservation) MoveToTable(tableID uuid.UUID) {
	r.tableID = tableID
}

func (r *Reservation) ChangeGuests(guests, tableCapacity int) error {
	if guests < 1 {
		return ErrInvalidGuestCount
	}
	if guests > tableCapacity {
		return ErrCapacityExceeded
	}
	r.guests = guests
	return nil
}

// ChangeStatus replaces the status. Any recognized status is reachable from
// any other; only unknown values are rejected.
func (r *Reservation) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	r.status = status
	return nil
}

func (r *Reservation) ChangeNotes(notes string) {
	r.notes = strings.TrimSpace(notes)
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) TableID() uuid.UUID   { return r.tableID }
func (r *Reservation) Slot() TimeSlot       { return r.slot }
func (r *Reservation) Guests() int          { return r.guests }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Notes() string        { return r.notes }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
