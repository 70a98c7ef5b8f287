package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoItems              = errors.New("order must contain at least one item")
	ErrInvalidQuantity      = errors.New("item quantity must be at least 1")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrNegativeFee          = errors.New("delivery fee cannot be negative")
)

// Line is an order line priced from the menu record at order time, never from
// client input.
type Line struct {
	MenuItemID uuid.UUID
	Name       string
	Quantity   int
	PriceCents int64
	ImageURL   string
}

func (l Line) SubtotalCents() int64 {
	return l.PriceCents * int64(l.Quantity)
}

type Address struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

type Order struct {
	id              uuid.UUID
	userID          uuid.UUID
	lines           []Line
	totalCents      int64
	status          Status
	paymentMethod   PaymentMethod
	isPaid          bool
	paidAt          *time.Time
	deliveryAddress *Address
	deliveryFee     int64
	isDelivered     bool
	deliveredAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewOrder builds a Pending order, computing the total from the given lines
// plus the delivery fee.
func NewOrder(userID uuid.UUID, lines []Line, method PaymentMethod, addr *Address, deliveryFeeCents int64) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoItems
	}
	if !method.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if deliveryFeeCents < 0 {
		return nil, ErrNegativeFee
	}
	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}
	return &Order{
		id:              uuid.New(),
		userID:          userID,
		lines:           lines,
		totalCents:      ComputeTotalCents(lines, deliveryFeeCents),
		status:          StatusPending,
		paymentMethod:   method,
		deliveryAddress: addr,
		deliveryFee:     deliveryFeeCents,
	}, nil
}

func ReconstructOrder(
	id, userID uuid.UUID,
	lines []Line,
	totalCents int64,
	status Status,
	method PaymentMethod,
	isPaid bool,
	paidAt *time.Time,
	addr *Address,
	deliveryFee int64,
	isDelivered bool,
	deliveredAt *time.Time,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:              id,
		userID:          userID,
		lines:           lines,
		totalCents:      totalCents,
		status:          status,
		paymentMethod:   method,
		isPaid:          isPaid,
		paidAt:          paidAt,
		deliveryAddress: addr,
		deliveryFee:     deliveryFee,
		isDelivered:     isDelivered,
		deliveredAt:     deliveredAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ComputeTotalCents sums line subtotals and the delivery fee.
func ComputeTotalCents(lines []Line, deliveryFeeCents int64) int64 {
	var total int64
	for _, l := range lines {
		total += l.SubtotalCents()
	}
	return total + deliveryFeeCents
}

func (o *Order) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	o.status = status
	return nil
}

func (o *Order) MarkPaid(paid bool, now time.Time) {
	if o.isPaid == paid {
		return
	}
	o.isPaid = paid
	if paid {
		o.paidAt = &now
	} else {
		o.paidAt = nil
	}
}

func (o *Order) MarkDelivered(delivered bool, now time.Time) {
	if o.isDelivered == delivered {
		return
	}
	o.isDelivered = delivered
	if delivered {
		o.deliveredAt = &now
	} else {
		o.deliveredAt = nil
	}
}

func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.userID == userID
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) UserID() uuid.UUID            { return o.userID }
func (o *Order) Lines() []Line                { return o.lines }
func (o *Order) TotalCents() int64            { return o.totalCents }
func (o *Order) Status() Status               { return o.status }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) IsPaid() bool                 { return o.isPaid }
func (o *Order) PaidAt() *time.Time           { return o.paidAt }
func (o *Order) DeliveryAddress() *Address    { return o.deliveryAddress }
func (o *Order) DeliveryFeeCents() int64      { return o.deliveryFee }
func (o *Order) IsDelivered() bool            { return o.isDelivered }
func (o *Order) DeliveredAt() *time.Time      { return o.deliveredAt }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }
