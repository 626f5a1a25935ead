package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// transitions описывает допустимые переходы статуса заказа.
// Оплата захватывается синхронно, поэтому новые заказы сразу processing;
// дальше статус двигают внешние системы (фулфилмент, админка).
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusCompleted},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Address - снимок адреса на момент оформления заказа.
type Address struct {
	Email    string
	FullName string
	Address  string
	City     string
	State    string
	Zip      string
	Country  string
	Phone    string
}

type Order struct {
	ID          int64
	OrderNumber string
	UserID      int64
	Status      OrderStatus

	SubtotalCents int
	TaxCents      int
	ShippingCents int
	TotalCents    int

	ShippingAddress Address
	ShippingMethod  string
	BillingAddress  Address

	PaymentMethod string
	PaymentStatus string
	PaymentID     string

	CreatedAt time.Time

	Items []OrderItem
}

// OrderItem фиксирует цену товара на момент создания заказа и больше не меняется.
type OrderItem struct {
	OrderID        int64
	ProductID      int64
	Quantity       int
	UnitPriceCents int
	TotalCents     int
}

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrOrderNumberExhausted = errors.New("order number generation retries exhausted")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidStatusChange  = errors.New("invalid order status transition")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(o)
}
