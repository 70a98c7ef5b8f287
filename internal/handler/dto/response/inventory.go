package response

import (
	"time"

	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type InventoryItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	MinLevel    float64   `json:"minLevel"`
	IsLowStock  bool      `json:"isLowStock"`
	LastUpdated time.Time `json:"lastUpdated"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromInventoryItemView(view *queries.InventoryItemView) *InventoryItemResponse {
	var resp InventoryItemResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromInventoryItemViews(views []*queries.InventoryItemView) []*InventoryItemResponse {
	result := make([]*InventoryItemResponse, len(views))
	for i, v := range views {
		result[i] = FromInventoryItemView(v)
	}
	return result
}
