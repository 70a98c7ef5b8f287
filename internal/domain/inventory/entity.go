package inventory

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("item name cannot be empty")
	ErrEmptyUnit        = errors.New("unit cannot be empty")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrNegativeMinLevel = errors.New("minimum level cannot be negative")
)

type Item struct {
	id          uuid.UUID
	name        string
	quantity    float64
	unit        string
	minLevel    float64
	lastUpdated time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(name string, quantity float64, unit string, minLevel float64, now time.Time) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return nil, ErrEmptyUnit
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if minLevel < 0 {
		return nil, ErrNegativeMinLevel
	}
	return &Item{
		id:          uuid.New(),
		name:        name,
		quantity:    quantity,
		unit:        unit,
		minLevel:    minLevel,
		lastUpdated: now,
	}, nil
}

func ReconstructItem(
	id uuid.UUID,
	name string,
	quantity float64,
	unit string,
	minLevel float64,
	lastUpdated time.Time,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		name:        name,
		quantity:    quantity,
		unit:        unit,
		minLevel:    minLevel,
		lastUpdated: lastUpdated,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// AdjustQuantity sets the absolute stock level and stamps lastUpdated.
func (i *Item) AdjustQuantity(quantity float64, now time.Time) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	i.quantity = quantity
	i.lastUpdated = now
	return nil
}

func (i *Item) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	i.name = name
	return nil
}

func (i *Item) ChangeUnit(unit string) error {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return ErrEmptyUnit
	}
	i.unit = unit
	return nil
}

func (i *Item) ChangeMinLevel(minLevel float64) error {
	if minLevel < 0 {
		return ErrNegativeMinLevel
	}
	i.minLevel = minLevel
	return nil
}

// IsLowStock reports whether the stock level has fallen to or below the
// minimum level.
func (i *Item) IsLowStock() bool {
	return i.quantity <= i.minLevel
}

func (i *Item) ID() uuid.UUID          { return i.id }
func (i *Item) Name() string           { return i.name }
func (i *Item) Quantity() float64      { return i.quantity }
func (i *Item) Unit() string           { return i.unit }
func (i *Item) MinLevel() float64      { return i.minLevel }
func (i *Item) LastUpdated() time.Time { return i.lastUpdated }
func (i *Item) CreatedAt() time.Time   { return i.createdAt }
func (i *Item) UpdatedAt() time.Time   { return i.updatedAt }
