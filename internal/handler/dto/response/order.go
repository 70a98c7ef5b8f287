package response

import (
	"time"

	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderLineResponse struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	PriceCents int64     `json:"priceCents"`
	ImageURL   string    `json:"imageUrl"`
}

type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"userId"`
	UserName        string              `json:"userName"`
	Items           []OrderLineResponse `json:"items"`
	TotalCents      int64               `json:"totalCents"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"paymentMethod"`
	IsPaid          bool                `json:"isPaid"`
	PaidAt          *time.Time          `json:"paidAt,omitempty"`
	DeliveryFee     int64               `json:"deliveryFeeCents"`
	IsDelivered     bool                `json:"isDelivered"`
	DeliveredAt     *time.Time          `json:"deliveredAt,omitempty"`
	DeliveryStreet  *string             `json:"deliveryStreet,omitempty"`
	DeliveryCity    *string             `json:"deliveryCity,omitempty"`
	DeliveryPostal  *string             `json:"deliveryPostalCode,omitempty"`
	DeliveryCountry *string             `json:"deliveryCountry,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	result := make([]*OrderResponse, len(views))
	for i, v := range views {
		result[i] = FromOrderView(v)
	}
	return result
}
