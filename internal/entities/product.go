package entities

import (
	"errors"
	"time"
)

type Product struct {
	ProductID  int64
	Name       string
	SKU        string
	PriceCents int
	Quantity   int
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (p Product) InStock() bool {
	return p.Quantity > 0
}

var (
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock используется как sentinel, детали несёт InsufficientStockError
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError называет товар, которого не хватило при оформлении заказа.
type InsufficientStockError struct {
	ProductID int64
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return "insufficient stock for " + e.Name
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
