package handler

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/service"
)

// AddItemRequest запрос на добавление товара в корзину
type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"gte=0"`
}

// UpdateItemRequest запрос на изменение количества позиции
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// CartItem позиция корзины
type CartItem struct {
	ProductID      int64  `json:"product_id"`
	Name           string `json:"name"`
	SKU            string `json:"sku"`
	Quantity       int    `json:"quantity"`
	PriceCents     int    `json:"price_cents"`
	LineTotalCents int    `json:"line_total_cents"`
}

// Cart корзина с пересчитанными итогами
type Cart struct {
	Items      []CartItem `json:"items"`
	Count      int        `json:"count"`
	TotalCents int        `json:"total_cents"`
}

// CheckoutRequest форма оформления заказа
type CheckoutRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username,omitempty"`

	FullName string `json:"full_name" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state,omitempty"`
	Zip      string `json:"zip" validate:"required"`
	Country  string `json:"country" validate:"required"`
	Phone    string `json:"phone,omitempty"`

	ShippingMethod string `json:"shipping_method,omitempty" validate:"omitempty,oneof=standard express"`
	PaymentMethod  string `json:"payment_method,omitempty"`
}

// Address адрес в заказе
type Address struct {
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	Phone    string `json:"phone,omitempty"`
}

// OrderItem позиция заказа
type OrderItem struct {
	ProductID      int64 `json:"product_id"`
	Quantity       int   `json:"quantity"`
	UnitPriceCents int   `json:"unit_price_cents"`
	TotalCents     int   `json:"total_cents"`
}

// Order оформленный заказ
type Order struct {
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`

	SubtotalCents int `json:"subtotal_cents"`
	TaxCents      int `json:"tax_cents"`
	ShippingCents int `json:"shipping_cents"`
	TotalCents    int `json:"total_cents"`

	ShippingAddress Address `json:"shipping_address"`
	ShippingMethod  string  `json:"shipping_method"`
	BillingAddress  Address `json:"billing_address"`

	PaymentMethod string `json:"payment_method"`
	PaymentStatus string `json:"payment_status"`

	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

// CheckoutResponse результат оформления заказа
type CheckoutResponse struct {
	Order             Order     `json:"order"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
}

// UpdateStatusRequest запрос на смену статуса заказа
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped completed cancelled"`
}

// StatusEvent событие смены статуса заказа из kafka
type StatusEvent struct {
	OrderNumber string `json:"order_number" validate:"required"`
	Status      string `json:"status" validate:"required"`
}

func CartLineToJSON(line entities.CartLine) CartItem {
	return CartItem{
		ProductID:      line.Product.ProductID,
		Name:           line.Product.Name,
		SKU:            line.Product.SKU,
		Quantity:       line.Quantity,
		PriceCents:     line.PriceCents,
		LineTotalCents: line.LineTotalCents,
	}
}

func CartLinesToJSON(lines []entities.CartLine) Cart {
	items := make([]CartItem, 0, len(lines))
	count, total := 0, 0
	for _, line := range lines {
		items = append(items, CartLineToJSON(line))
		count += line.Quantity
		total += line.LineTotalCents
	}
	return Cart{Items: items, Count: count, TotalCents: total}
}

func CheckoutJSONToInfo(req CheckoutRequest) service.CheckoutInfo {
	return service.CheckoutInfo{
		Email:    req.Email,
		Username: req.Username,

		FullName: req.FullName,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Zip:      req.Zip,
		Country:  req.Country,
		Phone:    req.Phone,

		ShippingMethod: req.ShippingMethod,
		PaymentMethod:  req.PaymentMethod,
	}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		Email:    a.Email,
		FullName: a.FullName,
		Address:  a.Address,
		City:     a.City,
		State:    a.State,
		Zip:      a.Zip,
		Country:  a.Country,
		Phone:    a.Phone,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			TotalCents:     it.TotalCents,
		})
	}

	return Order{
		OrderNumber: o.OrderNumber,
		Status:      string(o.Status),

		SubtotalCents: o.SubtotalCents,
		TaxCents:      o.TaxCents,
		ShippingCents: o.ShippingCents,
		TotalCents:    o.TotalCents,

		ShippingAddress: AddressEntityToJSON(o.ShippingAddress),
		ShippingMethod:  o.ShippingMethod,
		BillingAddress:  AddressEntityToJSON(o.BillingAddress),

		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,

		Items:     items,
		CreatedAt: o.CreatedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	return out
}
