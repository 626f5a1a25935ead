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

type productRepo struct {
	base
}

func NewProductRepo(db *sqlx.DB) *productRepo {
	return &productRepo{base: newBase(db)}
}

var productColumns = []string{
	"product_id", "name", "sku", "price_cents", "quantity",
	"is_active", "created_at", "updated_at",
}

func (r *productRepo) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return ProductToEntity(product), nil
}

// GetProductForUpdate читает товар с блокировкой строки. Вызывается только
// внутри транзакции оформления заказа, чтобы цена и остаток не изменились
// между проверкой и списанием.
func (r *productRepo) GetProductForUpdate(ctx context.Context, productID int64) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"product_id": productID}).
		Suffix("FOR UPDATE").
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to lock product: %w", err)
	}

	return ProductToEntity(product), nil
}

// DecrementStock списывает остаток условно: запрос не затрагивает строку,
// если остатка не хватает, поэтому остаток не может уйти в минус даже при
// конкурентных оформлениях.
func (r *productRepo) DecrementStock(ctx context.Context, productID int64, quantity int) error {
	query, args := r.qb.Update("products").
		Set("quantity", sq.Expr("quantity - ?", quantity)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"product_id": productID}).
		Where(sq.GtOrEq{"quantity": quantity}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrInsufficientStock
	}
	return nil
}

func (r *productRepo) CreateProduct(ctx context.Context, p entities.Product) (int64, error) {
	query, args := r.qb.Insert("products").
		Columns("name", "sku", "price_cents", "quantity", "is_active").
		Values(p.Name, p.SKU, p.PriceCents, p.Quantity, p.IsActive).
		Suffix("RETURNING product_id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}
	return id, nil
}
