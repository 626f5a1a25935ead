package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
)

type Product struct {
	ProductID  int64     `db:"product_id"`
	Name       string    `db:"name"`
	SKU        string    `db:"sku"`
	PriceCents int       `db:"price_cents"`
	Quantity   int       `db:"quantity"`
	IsActive   bool      `db:"is_active"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ProductID:  p.ProductID,
		Name:       p.Name,
		SKU:        p.SKU,
		PriceCents: p.PriceCents,
		Quantity:   p.Quantity,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

type CartItem struct {
	UserID     int64     `db:"user_id"`
	ProductID  int64     `db:"product_id"`
	Quantity   int       `db:"quantity"`
	PriceCents int       `db:"price_cents"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func CartItemToEntry(ci CartItem) entities.CartEntry {
	return entities.CartEntry{
		ProductID:  ci.ProductID,
		Quantity:   ci.Quantity,
		PriceCents: ci.PriceCents,
	}
}

type User struct {
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:        u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type Order struct {
	OrderID     int64  `db:"order_id"`
	OrderNumber string `db:"order_number"`
	UserID      int64  `db:"user_id"`
	Status      string `db:"status"`

	SubtotalCents int `db:"subtotal_cents"`
	TaxCents      int `db:"tax_cents"`
	ShippingCents int `db:"shipping_cents"`
	TotalCents    int `db:"total_cents"`

	ShippingAddress []byte `db:"shipping_address"`
	BillingAddress  []byte `db:"billing_address"`

	PaymentMethod sql.NullString `db:"payment_method"`
	PaymentStatus sql.NullString `db:"payment_status"`
	PaymentID     sql.NullString `db:"payment_id"`

	CreatedAt time.Time `db:"created_at"`
}

type OrderItem struct {
	OrderID        int64 `db:"order_id"`
	ProductID      int64 `db:"product_id"`
	Quantity       int   `db:"quantity"`
	UnitPriceCents int   `db:"unit_price_cents"`
	TotalCents     int   `db:"total_cents"`
}

// addressJSON - формат снимков адреса в колонках shipping_address/billing_address.
type addressJSON struct {
	Email          string `json:"email,omitempty"`
	FullName       string `json:"full_name"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zip            string `json:"zip"`
	Country        string `json:"country"`
	Phone          string `json:"phone"`
	ShippingMethod string `json:"shipping_method,omitempty"`
}

func marshalAddress(a entities.Address, shippingMethod string) ([]byte, error) {
	return json.Marshal(addressJSON{
		Email:          a.Email,
		FullName:       a.FullName,
		Address:        a.Address,
		City:           a.City,
		State:          a.State,
		Zip:            a.Zip,
		Country:        a.Country,
		Phone:          a.Phone,
		ShippingMethod: shippingMethod,
	})
}

func unmarshalAddress(data []byte) (entities.Address, string, error) {
	if len(data) == 0 {
		return entities.Address{}, "", nil
	}
	var a addressJSON
	if err := json.Unmarshal(data, &a); err != nil {
		return entities.Address{}, "", err
	}
	return entities.Address{
		Email:    a.Email,
		FullName: a.FullName,
		Address:  a.Address,
		City:     a.City,
		State:    a.State,
		Zip:      a.Zip,
		Country:  a.Country,
		Phone:    a.Phone,
	}, a.ShippingMethod, nil
}

func OrderToEntity(o Order, items []OrderItem) (entities.Order, error) {
	shipping, method, err := unmarshalAddress(o.ShippingAddress)
	if err != nil {
		return entities.Order{}, err
	}
	billing, _, err := unmarshalAddress(o.BillingAddress)
	if err != nil {
		return entities.Order{}, err
	}

	result := entities.Order{
		ID:          o.OrderID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		Status:      entities.OrderStatus(o.Status),

		SubtotalCents: o.SubtotalCents,
		TaxCents:      o.TaxCents,
		ShippingCents: o.ShippingCents,
		TotalCents:    o.TotalCents,

		ShippingAddress: shipping,
		ShippingMethod:  method,
		BillingAddress:  billing,

		PaymentMethod: o.PaymentMethod.String,
		PaymentStatus: o.PaymentStatus.String,
		PaymentID:     o.PaymentID.String,

		CreatedAt: o.CreatedAt,
	}

	result.Items = make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		result.Items = append(result.Items, entities.OrderItem{
			OrderID:        it.OrderID,
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			TotalCents:     it.TotalCents,
		})
	}

	return result, nil
}
