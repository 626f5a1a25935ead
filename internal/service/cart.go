package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
)

// CartStore - хранилище позиций корзины без бизнес-правил.
// Две реализации: постоянная (postgres, по user_id) и эфемерная (redis, по session_id).
type CartStore interface {
	GetEntries(ctx context.Context, owner entities.CartOwner) ([]entities.CartEntry, error)
	UpsertEntry(ctx context.Context, owner entities.CartOwner, entry entities.CartEntry) error
	RemoveEntry(ctx context.Context, owner entities.CartOwner, productID int64) (bool, error)
	Clear(ctx context.Context, owner entities.CartOwner) error
}

type ProductGetter interface {
	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
}

type cartService struct {
	logger     *slog.Logger
	products   ProductGetter
	userCarts  CartStore
	guestCarts CartStore
}

func NewCartService(logger *slog.Logger, products ProductGetter, userCarts, guestCarts CartStore) *cartService {
	return &cartService{
		logger:     logger.With(slog.String("service", "cart")),
		products:   products,
		userCarts:  userCarts,
		guestCarts: guestCarts,
	}
}

func (s *cartService) store(owner entities.CartOwner) CartStore {
	if owner.Identified() {
		return s.userCarts
	}
	return s.guestCarts
}

// AddItem добавляет товар в корзину. Если позиция уже есть, количества
// суммируются. Итог ограничивается текущим остатком - это мягкая проверка,
// жёсткая выполняется при оформлении заказа.
func (s *cartService) AddItem(ctx context.Context, owner entities.CartOwner, productID int64, quantity int) error {
	product, err := s.activeProduct(ctx, productID)
	if err != nil {
		return err
	}

	if quantity < 1 {
		quantity = 1
	}

	store := s.store(owner)
	entries, err := store.GetEntries(ctx, owner)
	if err != nil {
		return err
	}

	newQty := quantity
	for _, e := range entries {
		if e.ProductID == productID {
			newQty += e.Quantity
			break
		}
	}
	if newQty > product.Quantity {
		newQty = product.Quantity
	}
	if newQty < 1 {
		return entities.ErrOutOfStock
	}

	return store.UpsertEntry(ctx, owner, entities.CartEntry{
		ProductID:  productID,
		Quantity:   newQty,
		PriceCents: product.PriceCents,
	})
}

// UpdateQuantity выставляет количество позиции. Ноль и меньше означает удаление,
// количество сверх остатка урезается до остатка.
func (s *cartService) UpdateQuantity(ctx context.Context, owner entities.CartOwner, productID int64, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, owner, productID)
	}

	product, err := s.activeProduct(ctx, productID)
	if err != nil {
		return err
	}

	store := s.store(owner)
	entries, err := store.GetEntries(ctx, owner)
	if err != nil {
		return err
	}

	found := false
	for _, e := range entries {
		if e.ProductID == productID {
			found = true
			break
		}
	}
	if !found {
		return entities.ErrCartItemNotFound
	}

	if quantity > product.Quantity {
		quantity = product.Quantity
	}
	if quantity < 1 {
		// остаток кончился - позиция больше недоступна
		return s.RemoveItem(ctx, owner, productID)
	}

	return store.UpsertEntry(ctx, owner, entities.CartEntry{
		ProductID:  productID,
		Quantity:   quantity,
		PriceCents: product.PriceCents,
	})
}

func (s *cartService) RemoveItem(ctx context.Context, owner entities.CartOwner, productID int64) error {
	existed, err := s.store(owner).RemoveEntry(ctx, owner, productID)
	if err != nil {
		return err
	}
	if !existed {
		return entities.ErrCartItemNotFound
	}
	return nil
}

func (s *cartService) ClearCart(ctx context.Context, owner entities.CartOwner) error {
	return s.store(owner).Clear(ctx, owner)
}

// GetItems сводит позиции корзины с актуальным каталогом: живая цена,
// пересчитанный итог строки. Позиции исчезнувших товаров молча пропускаются.
func (s *cartService) GetItems(ctx context.Context, owner entities.CartOwner) ([]entities.CartLine, error) {
	entries, err := s.store(owner).GetEntries(ctx, owner)
	if err != nil {
		return nil, err
	}

	lines := make([]entities.CartLine, 0, len(entries))
	for _, e := range entries {
		product, err := s.products.GetProduct(ctx, e.ProductID)
		if errors.Is(err, entities.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cart entry: %w", err)
		}

		lines = append(lines, entities.CartLine{
			Product:        product,
			Quantity:       e.Quantity,
			PriceCents:     product.PriceCents,
			LineTotalCents: product.PriceCents * e.Quantity,
		})
	}
	return lines, nil
}

func (s *cartService) GetTotal(ctx context.Context, owner entities.CartOwner) (int, error) {
	lines, err := s.GetItems(ctx, owner)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, line := range lines {
		total += line.LineTotalCents
	}
	return total, nil
}

func (s *cartService) GetCount(ctx context.Context, owner entities.CartOwner) (int, error) {
	lines, err := s.GetItems(ctx, owner)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count, nil
}

// MergeSessionCart переливает гостевую корзину в корзину аккаунта при входе.
// Каждая позиция проигрывается через AddItem, поэтому суммирование и
// ограничение остатком работают одинаково, а результат не зависит от порядка.
func (s *cartService) MergeSessionCart(ctx context.Context, owner entities.CartOwner, sessionID string) error {
	if !owner.Identified() || sessionID == "" {
		return nil
	}

	guest := entities.CartOwner{SessionID: sessionID}
	entries, err := s.guestCarts.GetEntries(ctx, guest)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if err := s.AddItem(ctx, owner, e.ProductID, e.Quantity); err != nil {
			// недоступные товары не должны срывать вход в аккаунт
			s.logger.WarnContext(ctx, "failed to merge cart entry",
				slog.Int64("product_id", e.ProductID), slog.Any("error", err))
		}
	}

	return s.guestCarts.Clear(ctx, guest)
}

func (s *cartService) activeProduct(ctx context.Context, productID int64) (entities.Product, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return entities.Product{}, err
	}
	if !product.IsActive {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return product, nil
}
