package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type orderRepo struct {
	base
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{base: newBase(db)}
}

var orderColumns = []string{
	"order_id", "order_number", "user_id", "status",
	"subtotal_cents", "tax_cents", "shipping_cents", "total_cents",
	"shipping_address", "billing_address",
	"payment_method", "payment_status", "payment_id", "created_at",
}

func (r *orderRepo) InsertOrder(ctx context.Context, o entities.Order) (int64, error) {
	shipping, err := marshalAddress(o.ShippingAddress, o.ShippingMethod)
	if err != nil {
		return 0, fmt.Errorf("failed to encode shipping address: %w", err)
	}
	billing, err := marshalAddress(o.BillingAddress, "")
	if err != nil {
		return 0, fmt.Errorf("failed to encode billing address: %w", err)
	}

	query, args := r.qb.Insert("orders").
		Columns(
			"order_number", "user_id", "status",
			"subtotal_cents", "tax_cents", "shipping_cents", "total_cents",
			"shipping_address", "billing_address",
			"payment_method", "payment_status", "payment_id",
		).
		Values(
			o.OrderNumber, o.UserID, string(o.Status),
			o.SubtotalCents, o.TaxCents, o.ShippingCents, o.TotalCents,
			shipping, billing,
			nullString(o.PaymentMethod), nullString(o.PaymentStatus), nullString(o.PaymentID),
		).
		Suffix("RETURNING order_id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}
	return id, nil
}

func (r *orderRepo) InsertOrderItems(ctx context.Context, orderID int64, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "unit_price_cents", "total_cents")

	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.Quantity, it.UnitPriceCents, it.TotalCents)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *orderRepo) OrderNumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.getContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM orders WHERE order_number = $1)", number)
	if err != nil {
		return false, fmt.Errorf("failed to check order number: %w", err)
	}
	return exists, nil
}

func (r *orderRepo) GetOrderByNumber(ctx context.Context, number string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_number": number}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "product_id", "quantity", "unit_price_cents", "total_cents").
		From("order_items").
		Where(sq.Eq{"order_id": order.OrderID}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items)
}

func (r *orderRepo) ListUserOrders(ctx context.Context, userID int64, limit int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID
	}

	query, args = r.qb.Select("order_id", "product_id", "quantity", "unit_price_cents", "total_cents").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[int64][]OrderItem, len(orders))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		order, err := OrderToEntity(o, itemsMap[o.OrderID])
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, nil
}

// GetStatusForUpdate читает статус с блокировкой строки, чтобы проверка
// перехода и обновление были атомарны.
func (r *orderRepo) GetStatusForUpdate(ctx context.Context, number string) (entities.OrderStatus, error) {
	query, args := r.qb.Select("status").
		From("orders").
		Where(sq.Eq{"order_number": number}).
		Suffix("FOR UPDATE").
		MustSql()

	var status string
	err := r.getContext(ctx, &status, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entities.ErrOrderNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get order status: %w", err)
	}
	return entities.OrderStatus(status), nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, number string, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"order_number": number}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}
