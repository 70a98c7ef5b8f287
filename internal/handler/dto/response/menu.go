package response

import (
	"time"

	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MenuItemResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PriceCents      int64     `json:"priceCents"`
	Category        string    `json:"category"`
	IsAvailable     bool      `json:"isAvailable"`
	ImageURL        string    `json:"imageUrl"`
	PreparationTime int       `json:"preparationTime"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromMenuItemView(view *queries.MenuItemView) *MenuItemResponse {
	var resp MenuItemResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromMenuItemViews(views []*queries.MenuItemView) []*MenuItemResponse {
	result := make([]*MenuItemResponse, len(views))
	for i, v := range views {
		result[i] = FromMenuItemView(v)
	}
	return result
}
