package request

import (
	"restaurant-api/internal/usecase/commands"
)

type CreateMenuItemRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description" binding:"required"`
	PriceCents      int64  `json:"price_cents" binding:"min=0"`
	Category        string `json:"category" binding:"required"`
	IsAvailable     *bool  `json:"is_available,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
	PreparationTime int    `json:"preparation_time,omitempty" binding:"omitempty,min=0"`
}

func (r CreateMenuItemRequest) ToInput() commands.CreateMenuItemInput {
	return commands.CreateMenuItemInput{
		Name:            r.Name,
		Description:     r.Description,
		PriceCents:      r.PriceCents,
		Category:        r.Category,
		IsAvailable:     r.IsAvailable,
		ImageURL:        r.ImageURL,
		PreparationTime: r.PreparationTime,
	}
}

type UpdateMenuItemRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	PriceCents      *int64  `json:"price_cents,omitempty" binding:"omitempty,min=0"`
	Category        *string `json:"category,omitempty"`
	IsAvailable     *bool   `json:"is_available,omitempty"`
	ImageURL        *string `json:"image_url,omitempty"`
	PreparationTime *int    `json:"preparation_time,omitempty" binding:"omitempty,min=0"`
}

func (r UpdateMenuItemRequest) ToInput() commands.UpdateMenuItemInput {
	return commands.UpdateMenuItemInput{
		Name:            r.Name,
		Description:     r.Description,
		PriceCents:      r.PriceCents,
		Category:        r.Category,
		IsAvailable:     r.IsAvailable,
		ImageURL:        r.ImageURL,
		PreparationTime: r.PreparationTime,
	}
}
