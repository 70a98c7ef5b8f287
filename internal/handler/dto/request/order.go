package request

import (
	"restaurant-api/internal/domain/order"
	"restaurant-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
}

type DeliveryAddressRequest struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

type CreateOrderRequest struct {
	Items            []OrderItemRequest      `json:"items" binding:"required,min=1,dive"`
	PaymentMethod    string                  `json:"payment_method" binding:"required"`
	DeliveryAddress  *DeliveryAddressRequest `json:"delivery_address,omitempty"`
	DeliveryFeeCents int64                   `json:"delivery_fee_cents,omitempty" binding:"omitempty,min=0"`
}

func (r CreateOrderRequest) ToInput() commands.CreateOrderInput {
	items := make([]commands.OrderItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = commands.OrderItemInput{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}

	var addr *order.Address
	if r.DeliveryAddress != nil {
		addr = &order.Address{
			Street:     r.DeliveryAddress.Street,
			City:       r.DeliveryAddress.City,
			PostalCode: r.DeliveryAddress.PostalCode,
			Country:    r.DeliveryAddress.Country,
		}
	}

	return commands.CreateOrderInput{
		Items:            items,
		PaymentMethod:    r.PaymentMethod,
		DeliveryAddress:  addr,
		DeliveryFeeCents: r.DeliveryFeeCents,
	}
}

type UpdateOrderRequest struct {
	Status      *string `json:"status,omitempty"`
	IsPaid      *bool   `json:"is_paid,omitempty"`
	IsDelivered *bool   `json:"is_delivered,omitempty"`
}

func (r UpdateOrderRequest) ToInput() commands.UpdateOrderInput {
	return commands.UpdateOrderInput{
		Status:      r.Status,
		IsPaid:      r.IsPaid,
		IsDelivered: r.IsDelivered,
	}
}
