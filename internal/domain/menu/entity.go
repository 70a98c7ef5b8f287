package menu

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("menu item name must not be empty")
	ErrEmptyDescription = errors.New("menu item description must not be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidCategory  = errors.New("invalid menu category")
	ErrNegativePrepTime = errors.New("preparation time cannot be negative")
)

const DefaultImageURL = "no-photo.jpg"

type Item struct {
	id              uuid.UUID
	name            string
	description     string
	priceCents      int64
	category        Category
	isAvailable     bool
	imageURL        string
	preparationTime int // minutes
	createdAt       time.Time
	updatedAt       time.Time
}

func NewItem(name, description string, priceCents int64, category Category, isAvailable bool, imageURL string, preparationTime int) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if preparationTime < 0 {
		return nil, ErrNegativePrepTime
	}
	if imageURL == "" {
		imageURL = DefaultImageURL
	}
	return &Item{
		id:              uuid.New(),
		name:            name,
		description:     description,
		priceCents:      priceCents,
		category:        category,
		isAvailable:     isAvailable,
		imageURL:        imageURL,
		preparationTime: preparationTime,
	}, nil
}

func ReconstructItem(
	id uuid.UUID,
	name, description string,
	priceCents int64,
	category Category,
	isAvailable bool,
	imageURL string,
	preparationTime int,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:              id,
		name:            name,
		description:     description,
		priceCents:      priceCents,
		category:        category,
		isAvailable:     isAvailable,
		imageURL:        imageURL,
		preparationTime: preparationTime,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (i *Item) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	i.name = name
	return nil
}

func (i *Item) ChangePrice(priceCents int64) error {
	if priceCents < 0 {
		return ErrNegativePrice
	}
	i.priceCents = priceCents
	return nil
}

func (i *Item) ChangeCategory(category Category) error {
	if !category.IsValid() {
		return ErrInvalidCategory
	}
	i.category = category
	return nil
}

func (i *Item) ChangeDescription(description string) { i.description = description }
func (i *Item) SetAvailability(available bool)       { i.isAvailable = available }
func (i *Item) ChangeImageURL(url string)            { i.imageURL = url }

func (i *Item) ChangePreparationTime(minutes int) error {
	if minutes < 0 {
		return ErrNegativePrepTime
	}
	i.preparationTime = minutes
	return nil
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) Name() string         { return i.name }
func (i *Item) Description() string  { return i.description }
func (i *Item) PriceCents() int64    { return i.priceCents }
func (i *Item) Category() Category   { return i.category }
func (i *Item) IsAvailable() bool    { return i.isAvailable }
func (i *Item) ImageURL() string     { return i.imageURL }
func (i *Item) PreparationTime() int { return i.preparationTime }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
