package request

import (
	"restaurant-api/internal/usecase/commands"
)

type CreateInventoryItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"min=0"`
	Unit     string  `json:"unit" binding:"required"`
	MinLevel float64 `json:"min_level,omitempty" binding:"omitempty,min=0"`
}

func (r CreateInventoryItemRequest) ToInput() commands.CreateInventoryItemInput {
	return commands.CreateInventoryItemInput{
		Name:     r.Name,
		Quantity: r.Quantity,
		Unit:     r.Unit,
		MinLevel: r.MinLevel,
	}
}

type UpdateInventoryItemRequest struct {
	Name     *string  `json:"name,omitempty"`
	Quantity *float64 `json:"quantity,omitempty" binding:"omitempty,min=0"`
	Unit     *string  `json:"unit,omitempty"`
	MinLevel *float64 `json:"min_level,omitempty" binding:"omitempty,min=0"`
}

func (r UpdateInventoryItemRequest) ToInput() commands.UpdateInventoryItemInput {
	return commands.UpdateInventoryItemInput{
		Name:     r.Name,
		Quantity: r.Quantity,
		Unit:     r.Unit,
		MinLevel: r.MinLevel,
	}
}
