//go:build unit || e2e

package builder

import (
	"time"

	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type MenuItemBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	PriceCents  int64
	Category    string
	IsAvailable bool
}

func NewMenuItemBuilder() *MenuItemBuilder {
	return &MenuItemBuilder{
		ID:          uuid.New(),
		Name:        "Margherita Pizza",
		Description: "Tomato, mozzarella and basil",
		PriceCents:  1250,
		Category:    "Main Course",
		IsAvailable: true,
	}
}

func (b *MenuItemBuilder) BuildCreateDTO() reqdto.CreateMenuItemRequest {
	return reqdto.CreateMenuItemRequest{
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		Category:    b.Category,
		IsAvailable: &b.IsAvailable,
	}
}

func (b *MenuItemBuilder) BuildReadModel() *queries.MenuItemView {
	now := time.Now()
	return &queries.MenuItemView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		Category:    b.Category,
		IsAvailable: b.IsAvailable,
		ImageURL:    "no-photo.jpg",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *MenuItemBuilder) WithName(name string) *MenuItemBuilder {
	b.Name = name
	return b
}

func (b *MenuItemBuilder) WithCategory(category string) *MenuItemBuilder {
	b.Category = category
	return b
}

func (b *MenuItemBuilder) WithPriceCents(price int64) *MenuItemBuilder {
	b.PriceCents = price
	return b
}

func (b *MenuItemBuilder) AsUnavailable() *MenuItemBuilder {
	b.IsAvailable = false
	return b
}
