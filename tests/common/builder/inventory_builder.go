//go:build unit || e2e

package builder

import (
	"time"

	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type InventoryItemBuilder struct {
	ID       uuid.UUID
	Name     string
	Quantity float64
	Unit     string
	MinLevel float64
}

func NewInventoryItemBuilder() *InventoryItemBuilder {
	return &InventoryItemBuilder{
		ID:       uuid.New(),
		Name:     "Tomatoes",
		Quantity: 25,
		Unit:     "kg",
		MinLevel: 5,
	}
}

func (b *InventoryItemBuilder) BuildCreateDTO() reqdto.CreateInventoryItemRequest {
	return reqdto.CreateInventoryItemRequest{
		Name:     b.Name,
		Quantity: b.Quantity,
		Unit:     b.Unit,
		MinLevel: b.MinLevel,
	}
}

func (b *InventoryItemBuilder) BuildReadModel() *queries.InventoryItemView {
	now := time.Now()
	return &queries.InventoryItemView{
		ID:          b.ID,
		Name:        b.Name,
		Quantity:    b.Quantity,
		Unit:        b.Unit,
		MinLevel:    b.MinLevel,
		IsLowStock:  b.Quantity <= b.MinLevel,
		LastUpdated: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *InventoryItemBuilder) WithQuantity(quantity float64) *InventoryItemBuilder {
	b.Quantity = quantity
	return b
}

func (b *InventoryItemBuilder) WithMinLevel(minLevel float64) *InventoryItemBuilder {
	b.MinLevel = minLevel
	return b
}
