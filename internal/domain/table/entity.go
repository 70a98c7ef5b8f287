package table

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidNumber   = errors.New("table number must be positive")
	ErrInvalidCapacity = errors.New("table capacity must be at least 1")
)

// Table is the seating unit reservations are placed on. The scheduler only
// reads it; mutations go through the registry use cases.
type Table struct {
	id          uuid.UUID
	number      int
	capacity    int
	isAvailable bool
	location    string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTable(number, capacity int, isAvailable bool, location, description string) (*Table, error) {
	if number < 1 {
		return nil, ErrInvalidNumber
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Table{
		id:          uuid.New(),
		number:      number,
		capacity:    capacity,
		isAvailable: isAvailable,
		location:    strings.TrimSpace(location),
		description: strings.TrimSpace(description),
	}, nil
}

func ReconstructTable(
	id uuid.UUID,
	number, capacity int,
	isAvailable bool,
	location, description string,
	createdAt, updatedAt time.Time,
) *Table {
	return &Table{
		id:          id,
		number:      number,
		capacity:    capacity,
		isAvailable: isAvailable,
		location:    location,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t *Table) ChangeNumber(number int) error {
	if number < 1 {
		return ErrInvalidNumber
	}
	t.number = number
	return nil
}

func (t *Table) ChangeCapacity(capacity int) error {
	if capacity < 1 {
		return ErrInvalidCapacity
	}
	t.capacity = capacity
	return nil
}

func (t *Table) SetAvailability(available bool) { t.isAvailable = available }
func (t *Table) ChangeLocation(location string) { t.location = strings.TrimSpace(location) }
func (t *Table) ChangeDescription(desc string)  { t.description = strings.TrimSpace(desc) }

func (t *Table) CanSeat(guests int) bool {
	return guests >= 1 && guests <= t.capacity
}

func (t *Table) ID() uuid.UUID        { return t.id }
func (t *Table) Number() int          { return t.number }
func (t *Table) Capacity() int        { return t.capacity }
func (t *Table) IsAvailable() bool    { return t.isAvailable }
func (t *Table) Location() string     { return t.location }
func (t *Table) Description() string  { return t.description }
func (t *Table) CreatedAt() time.Time { return t.createdAt }
func (t *Table) UpdatedAt() time.Time { return t.updatedAt }
