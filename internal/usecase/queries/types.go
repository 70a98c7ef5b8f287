package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name"`
	TableID     uuid.UUID `json:"table_id"`
	TableNumber int       `json:"table_number"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Guests      int       `json:"guests"`
	Status      string    `json:"status"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TableView struct {
	ID          uuid.UUID `json:"id"`
	Number      int       `json:"number"`
	Capacity    int       `json:"capacity"`
	IsAvailable bool      `json:"is_available"`
	Location    *string   `json:"location,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MenuItemView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	PriceCents      int64     `json:"price_cents"`
	Category        string    `json:"category"`
	IsAvailable     bool      `json:"is_available"`
	ImageURL        string    `json:"image_url"`
	PreparationTime int       `json:"preparation_time"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type OrderLineView struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	PriceCents int64     `json:"price_cents"`
	ImageURL   string    `json:"image_url"`
}

type OrderView struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	UserName        string          `json:"user_name"`
	Items           []OrderLineView `json:"items"`
	TotalCents      int64           `json:"total_cents"`
	Status          string          `json:"status"`
	PaymentMethod   string          `json:"payment_method"`
	IsPaid          bool            `json:"is_paid"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	DeliveryFee     int64           `json:"delivery_fee_cents"`
	IsDelivered     bool            `json:"is_delivered"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
	DeliveryStreet  *string         `json:"delivery_street,omitempty"`
	DeliveryCity    *string         `json:"delivery_city,omitempty"`
	DeliveryPostal  *string         `json:"delivery_postal_code,omitempty"`
	DeliveryCountry *string         `json:"delivery_country,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type InventoryItemView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	MinLevel    float64   `json:"min_level"`
	IsLowStock  bool      `json:"is_low_stock"`
	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
