package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"

	"github.com/redis/go-redis/v9"
)

// Ключ гостевой корзины: cart:session:{session_id} -> gob([]CartEntry)
const sessionCartKey = "cart:session:%s"

// sessionCartRepo - эфемерное хранилище гостевых корзин в redis.
// Корзина живёт CartTTL с момента последнего изменения.
type sessionCartRepo struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionCartRepo(rdb *redis.Client, ttl time.Duration) *sessionCartRepo {
	return &sessionCartRepo{rdb: rdb, ttl: ttl}
}

func (r *sessionCartRepo) key(owner entities.CartOwner) string {
	return fmt.Sprintf(sessionCartKey, owner.SessionID)
}

func (r *sessionCartRepo) GetEntries(ctx context.Context, owner entities.CartOwner) ([]entities.CartEntry, error) {
	data, err := r.rdb.Get(ctx, r.key(owner)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session cart: %w", err)
	}

	entries, err := entities.UnmarshalCartEntries(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session cart: %w", err)
	}
	return entries, nil
}

func (r *sessionCartRepo) UpsertEntry(ctx context.Context, owner entities.CartOwner, entry entities.CartEntry) error {
	entries, err := r.GetEntries(ctx, owner)
	if err != nil {
		return err
	}

	replaced := false
	for i := range entries {
		if entries[i].ProductID == entry.ProductID {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	return r.save(ctx, owner, entries)
}

func (r *sessionCartRepo) RemoveEntry(ctx context.Context, owner entities.CartOwner, productID int64) (bool, error) {
	entries, err := r.GetEntries(ctx, owner)
	if err != nil {
		return false, err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ProductID != productID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return false, nil
	}

	if len(kept) == 0 {
		return true, r.Clear(ctx, owner)
	}
	return true, r.save(ctx, owner, kept)
}

func (r *sessionCartRepo) Clear(ctx context.Context, owner entities.CartOwner) error {
	if err := r.rdb.Del(ctx, r.key(owner)).Err(); err != nil {
		return fmt.Errorf("failed to clear session cart: %w", err)
	}
	return nil
}

func (r *sessionCartRepo) save(ctx context.Context, owner entities.CartOwner, entries []entities.CartEntry) error {
	data, err := entities.MarshalCartEntries(entries)
	if err != nil {
		return fmt.Errorf("failed to encode session cart: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key(owner), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session cart: %w", err)
	}
	return nil
}
