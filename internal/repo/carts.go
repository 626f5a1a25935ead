package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// cartRepo - постоянное хранилище корзин авторизованных пользователей,
// одна строка на позицию.
type cartRepo struct {
	base
}

func NewCartRepo(db *sqlx.DB) *cartRepo {
	return &cartRepo{base: newBase(db)}
}

func (r *cartRepo) GetEntries(ctx context.Context, owner entities.CartOwner) ([]entities.CartEntry, error) {
	query, args := r.qb.Select("user_id", "product_id", "quantity", "price_cents", "created_at", "updated_at").
		From("cart_items").
		Where(sq.Eq{"user_id": owner.UserID}).
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}

	entries := make([]entities.CartEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, CartItemToEntry(item))
	}
	return entries, nil
}

func (r *cartRepo) UpsertEntry(ctx context.Context, owner entities.CartOwner, entry entities.CartEntry) error {
	query, args := r.qb.Insert("cart_items").
		Columns("user_id", "product_id", "quantity", "price_cents").
		Values(owner.UserID, entry.ProductID, entry.Quantity, entry.PriceCents).
		Suffix(`ON CONFLICT (user_id, product_id) DO UPDATE
			SET quantity = EXCLUDED.quantity,
			    price_cents = EXCLUDED.price_cents,
			    updated_at = now()`).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return nil
}

func (r *cartRepo) RemoveEntry(ctx context.Context, owner entities.CartOwner, productID int64) (bool, error) {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"user_id": owner.UserID, "product_id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete cart item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *cartRepo) Clear(ctx context.Context, owner entities.CartOwner) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"user_id": owner.UserID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
