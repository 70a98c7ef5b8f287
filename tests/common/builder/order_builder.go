//go:build unit || e2e

package builder

import (
	"time"

	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	MenuItemID    uuid.UUID
	Quantity      int
	PriceCents    int64
	PaymentMethod string
	Status        string
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		MenuItemID:    uuid.New(),
		Quantity:      2,
		PriceCents:    1250,
		PaymentMethod: "Card",
		Status:        "Pending",
	}
}

func (b *OrderBuilder) BuildCreateDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		Items: []reqdto.OrderItemRequest{
			{MenuItemID: b.MenuItemID, Quantity: b.Quantity},
		},
		PaymentMethod: b.PaymentMethod,
	}
}

func (b *OrderBuilder) BuildReadModel() *queries.OrderView {
	now := time.Now()
	return &queries.OrderView{
		ID:       b.ID,
		UserID:   b.UserID,
		UserName: "Test User",
		Items: []queries.OrderLineView{
			{
				MenuItemID: b.MenuItemID,
				Name:       "Margherita Pizza",
				Quantity:   b.Quantity,
				PriceCents: b.PriceCents,
				ImageURL:   "no-photo.jpg",
			},
		},
		TotalCents:    b.PriceCents * int64(b.Quantity),
		Status:        b.Status,
		PaymentMethod: b.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *OrderBuilder) WithUserID(id uuid.UUID) *OrderBuilder {
	b.UserID = id
	return b
}

func (b *OrderBuilder) WithStatus(status string) *OrderBuilder {
	b.Status = status
	return b
}

func (b *OrderBuilder) WithPaymentMethod(method string) *OrderBuilder {
	b.PaymentMethod = method
	return b
}
