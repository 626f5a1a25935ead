package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	userOwner  = entities.CartOwner{UserID: 42}
	guestOwner = entities.CartOwner{SessionID: "sess-1"}
)

func TestCartService_AddItem(t *testing.T) {
	type MockBehavior func(products *mocks.MockProductGetter, userCarts *mocks.MockCartStore)

	boots := entities.Product{ProductID: 1, Name: "Boots", PriceCents: 2500, Quantity: 10, IsActive: true}

	testCases := []struct {
		name         string
		owner        entities.CartOwner
		productID    int64
		quantity     int
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:      "adds new entry",
			owner:     userOwner,
			productID: 1,
			quantity:  3,
			mockBehavior: func(products *mocks.MockProductGetter, userCarts *mocks.MockCartStore) {
				products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(boots, nil)
				userCarts.EXPECT().GetEntries(mock.Anything, userOwner).Return(nil, nil)
				userCarts.EXPECT().
					UpsertEntry(mock.Anything, userOwner, entities.CartEntry{ProductID: 1, Quantity: 3, PriceCents: 2500}).
					Return(nil)
			},
		},
		{
			name:      "sums with existing entry",
			owner:     userOwner,
			productID: 1,
			quantity:  3,
			mockBehavior: func(products *mocks.MockProductGetter, userCarts *mocks.MockCartStore) {
				products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(boots, nil)
				userCarts.EXPECT().GetEntries(mock.Anything, userOwner).
					Return([]entities.CartEntry{{ProductID: 1, Quantity: 2, PriceCents: 2500}}, nil)
				userCarts.EXPECT().
					UpsertEntry(mock.Anything, userOwner, entities.CartEntry{ProductID: 1, Quantity: 5, PriceCents: 2500}).
					Return(nil)
			},
		},
		{
			name:      "clamps sum to stock",
			owner:     userOwner,
			productID: 1,
			quantity:  3,
			mockBehavior: func(products *mocks.MockProductGetter, userCarts *mocks.MockCartStore) {
				low := boots
				low.Quantity = 4
				products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(low, nil)
				userCarts.EXPECT().GetEntries(mock.Anything, userOwner).
					Return([]entities.CartEntry{{ProductID: 1, Quantity: 2, PriceCents: 2500}}, nil)
				userCarts.EXPECT().
					UpsertEntry(mock.Anything, userOwner, entities.CartEntry{ProductID: 1, Quantity: 4, PriceCents: 2500}).
					Return(nil)
			},
		},
		{
			name:      "quantity below one treated as one",
			owner:     userOwner,
			productID: 1,
			quantity:  -5,
			mockBehavior: func(products *mocks.MockProductGetter, userCarts *mocks.MockCartStore) {
				products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(boots, nil)
				userCarts.EXPECT().GetEntries(mock.Anything, userOwner).Return(nil, nil)
				userCarts.EXPECT().
					UpsertEntry(mock.Anything, userOwner, entities.CartEntry{ProductID: 1, Quantity: 1, PriceCents: 2500}).
					Return(nil)
			},
		},
		{
			name:      "product not found",
			owner:     userOwner,
			productID: 99,
			quantity:  1,
			mockBehavior: func(products *mocks.MockProductGetter, _ *mocks.MockCartStore) {
				products.EXPECT().GetProduct(mock.Anything, int64(99)).
					Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:      "inactive product behaves as missing",
			owner:     userOwner,
			productID: 1,
			quantity:  1,
			mockBehavior: func(products *mocks.MockProductGetter, _ *mocks.MockCartStore) {
				inactive := boots
				inactive.IsActive = false
				products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(inactive, nil)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:      "out of stock",
			owner:     userOwner,
			productID: 1,
			quantity:  2,
			mockBehavior: func(products *mocks.MockProductGetter, userCarts *mocks.MockCartStore) {
				empty := boots
				empty.Quantity = 0
				products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(empty, nil)
				userCarts.EXPECT().GetEntries(mock.Anything, userOwner).Return(nil, nil)
			},
			wantErr: entities.ErrOutOfStock,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			products := mocks.NewMockProductGetter(t)
			userCarts := mocks.NewMockCartStore(t)
			guestCarts := mocks.NewMockCartStore(t)

			tc.mockBehavior(products, userCarts)

			svc := service.NewCartService(discardLogger(), products, userCarts, guestCarts)

			err := svc.AddItem(context.Background(), tc.owner, tc.productID, tc.quantity)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCartService_AddItem_GuestUsesSessionStore(t *testing.T) {
	products := mocks.NewMockProductGetter(t)
	userCarts := mocks.NewMockCartStore(t)
	guestCarts := mocks.NewMockCartStore(t)

	boots := entities.Product{ProductID: 1, PriceCents: 2500, Quantity: 10, IsActive: true}
	products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(boots, nil)
	guestCarts.EXPECT().GetEntries(mock.Anything, guestOwner).Return(nil, nil)
	guestCarts.EXPECT().
		UpsertEntry(mock.Anything, guestOwner, entities.CartEntry{ProductID: 1, Quantity: 2, PriceCents: 2500}).
		Return(nil)

	svc := service.NewCartService(discardLogger(), products, userCarts, guestCarts)

	require.NoError(t, svc.AddItem(context.Background(), guestOwner, 1, 2))
}

func TestCartService_UpdateQuantity(t *testing.T) {
	type MockBehavior func(products *mocks.MockProductGetter, userCarts *mocks.MockCartStore)

	boots := entities.Product{ProductID: 1, Name: "Boots", PriceCents: 2500, Quantity: 10, IsActive: true}
	existing := []entities.CartEntry{{ProductID: 1, Quantity: 2, PriceCents: 2500}}

	testCases := []struct {
		name         string
		quantity     int
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:     "sets quantity",
			quantity: 7,
			mockBehavior: func(products *mocks.MockProductGetter, userCarts *mocks.MockCartStore) {
				products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(boots, nil)
				userCarts.EXPECT().GetEntries(mock.Anything, userOwner).Return(existing, nil)
				userCarts.EXPECT().
					UpsertEntry(mock.Anything, userOwner, entities.CartEntry{ProductID: 1, Quantity: 7, PriceCents: 2500}).
					Return(nil)
			},
		},
		{
			name:     "clamps to stock",
			quantity: 50,
			mockBehavior: func(products *mocks.MockProductGetter, userCarts *mocks.MockCartStore) {
				products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(boots, nil)
				userCarts.EXPECT().GetEntries(mock.Anything, userOwner).Return(existing, nil)
				userCarts.EXPECT().
					UpsertEntry(mock.Anything, userOwner, entities.CartEntry{ProductID: 1, Quantity: 10, PriceCents: 2500}).
					Return(nil)
			},
		},
		{
			name:     "zero removes entry",
			quantity: 0,
			mockBehavior: func(_ *mocks.MockProductGetter, userCarts *mocks.MockCartStore) {
				userCarts.EXPECT().RemoveEntry(mock.Anything, userOwner, int64(1)).Return(true, nil)
			},
		},
		{
			name:     "negative removes entry",
			quantity: -1,
			mockBehavior: func(_ *mocks.MockProductGetter, userCarts *mocks.MockCartStore) {
				userCarts.EXPECT().RemoveEntry(mock.Anything, userOwner, int64(1)).Return(true, nil)
			},
		},
		{
			name:     "item not in cart",
			quantity: 3,
			mockBehavior: func(products *mocks.MockProductGetter, userCarts *mocks.MockCartStore) {
				products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(boots, nil)
				userCarts.EXPECT().GetEntries(mock.Anything, userOwner).Return(nil, nil)
			},
			wantErr: entities.ErrCartItemNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			products := mocks.NewMockProductGetter(t)
			userCarts := mocks.NewMockCartStore(t)
			guestCarts := mocks.NewMockCartStore(t)

			tc.mockBehavior(products, userCarts)

			svc := service.NewCartService(discardLogger(), products, userCarts, guestCarts)

			err := svc.UpdateQuantity(context.Background(), userOwner, 1, tc.quantity)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	products := mocks.NewMockProductGetter(t)
	userCarts := mocks.NewMockCartStore(t)
	guestCarts := mocks.NewMockCartStore(t)

	userCarts.EXPECT().RemoveEntry(mock.Anything, userOwner, int64(1)).Return(false, nil)

	svc := service.NewCartService(discardLogger(), products, userCarts, guestCarts)

	err := svc.RemoveItem(context.Background(), userOwner, 1)
	assert.ErrorIs(t, err, entities.ErrCartItemNotFound)
}

func TestCartService_GetItems(t *testing.T) {
	products := mocks.NewMockProductGetter(t)
	userCarts := mocks.NewMockCartStore(t)
	guestCarts := mocks.NewMockCartStore(t)

	boots := entities.Product{ProductID: 1, Name: "Boots", PriceCents: 2500, Quantity: 10, IsActive: true}

	userCarts.EXPECT().GetEntries(mock.Anything, userOwner).Return([]entities.CartEntry{
		{ProductID: 1, Quantity: 2, PriceCents: 2000}, // цена на момент добавления устарела
		{ProductID: 2, Quantity: 1, PriceCents: 700},
	}, nil)
	products.EXPECT().GetProduct(mock.Anything, int64(1)).Return(boots, nil)
	products.EXPECT().GetProduct(mock.Anything, int64(2)).
		Return(entities.Product{}, entities.ErrProductNotFound)

	svc := service.NewCartService(discardLogger(), products, userCarts, guestCarts)

	lines, err := svc.GetItems(context.Background(), userOwner)
	require.NoError(t, err)

	// исчезнувший товар молча пропущен, цена взята из каталога
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].Product.ProductID)
	assert.Equal(t, 2500, lines[0].PriceCents)
	assert.Equal(t, 5000, lines[0].LineTotalCents)
}

func TestCartService_Totals(t *testing.T) {
	products := mocks.NewMockProductGetter(t)
	userCarts := mocks.NewMockCartStore(t)
	guestCarts := mocks.NewMockCartStore(t)

	userCarts.EXPECT().GetEntries(mock.Anything, userOwner).Return([]entities.CartEntry{
		{ProductID: 1, Quantity: 3, PriceCents: 1999},
		{ProductID: 2, Quantity: 2, PriceCents: 450},
	}, nil)
	products.EXPECT().GetProduct(mock.Anything, int64(1)).
		Return(entities.Product{ProductID: 1, PriceCents: 1999, Quantity: 10, IsActive: true}, nil)
	products.EXPECT().GetProduct(mock.Anything, int64(2)).
		Return(entities.Product{ProductID: 2, PriceCents: 450, Quantity: 10, IsActive: true}, nil)

	svc := service.NewCartService(discardLogger(), products, userCarts, guestCarts)

	total, err := svc.GetTotal(context.Background(), userOwner)
	require.NoError(t, err)
	assert.Equal(t, 3*1999+2*450, total)

	count, err := svc.GetCount(context.Background(), userOwner)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

// memCartStore - стейтфул заглушка для сценариев слияния корзин,
// где каждый AddItem видит результат предыдущего.
type memCartStore struct {
	mu      sync.Mutex
	entries map[string]map[int64]entities.CartEntry
}

func newMemCartStore() *memCartStore {
	return &memCartStore{entries: make(map[string]map[int64]entities.CartEntry)}
}

func (s *memCartStore) GetEntries(_ context.Context, owner entities.CartOwner) ([]entities.CartEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entities.CartEntry
	for _, e := range s.entries[owner.String()] {
		out = append(out, e)
	}
	return out, nil
}

func (s *memCartStore) UpsertEntry(_ context.Context, owner entities.CartOwner, entry entities.CartEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.entries[owner.String()]
	if !ok {
		m = make(map[int64]entities.CartEntry)
		s.entries[owner.String()] = m
	}
	m[entry.ProductID] = entry
	return nil
}

func (s *memCartStore) RemoveEntry(_ context.Context, owner entities.CartOwner, productID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.entries[owner.String()]
	if _, ok := m[productID]; !ok {
		return false, nil
	}
	delete(m, productID)
	return true, nil
}

func (s *memCartStore) Clear(_ context.Context, owner entities.CartOwner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, owner.String())
	return nil
}

func TestCartService_MergeSessionCart(t *testing.T) {
	seed := func(t *testing.T, userCarts, guestCarts *memCartStore, guestEntries []entities.CartEntry) {
		t.Helper()
		require.NoError(t, userCarts.UpsertEntry(context.Background(), userOwner,
			entities.CartEntry{ProductID: 1, Quantity: 1, PriceCents: 2500}))
		for _, e := range guestEntries {
			require.NoError(t, guestCarts.UpsertEntry(context.Background(), guestOwner, e))
		}
	}

	guestEntries := []entities.CartEntry{
		{ProductID: 1, Quantity: 2, PriceCents: 2500},
		{ProductID: 2, Quantity: 3, PriceCents: 700},
	}

	// результат слияния не должен зависеть от порядка гостевых позиций
	orders := [][]entities.CartEntry{
		guestEntries,
		{guestEntries[1], guestEntries[0]},
	}

	for i, order := range orders {
		t.Run([]string{"forward", "reversed"}[i], func(t *testing.T) {
			products := mocks.NewMockProductGetter(t)
			products.EXPECT().GetProduct(mock.Anything, int64(1)).
				Return(entities.Product{ProductID: 1, PriceCents: 2500, Quantity: 10, IsActive: true}, nil).Maybe()
			products.EXPECT().GetProduct(mock.Anything, int64(2)).
				Return(entities.Product{ProductID: 2, PriceCents: 700, Quantity: 10, IsActive: true}, nil).Maybe()

			userCarts := newMemCartStore()
			guestCarts := newMemCartStore()
			seed(t, userCarts, guestCarts, order)

			svc := service.NewCartService(discardLogger(), products, userCarts, guestCarts)

			require.NoError(t, svc.MergeSessionCart(context.Background(), userOwner, guestOwner.SessionID))

			merged, err := userCarts.GetEntries(context.Background(), userOwner)
			require.NoError(t, err)
			byProduct := make(map[int64]int)
			for _, e := range merged {
				byProduct[e.ProductID] = e.Quantity
			}
			assert.Equal(t, map[int64]int{1: 3, 2: 3}, byProduct)

			leftovers, err := guestCarts.GetEntries(context.Background(), guestOwner)
			require.NoError(t, err)
			assert.Empty(t, leftovers)
		})
	}
}

func TestCartService_MergeSessionCart_UnavailableEntriesSkipped(t *testing.T) {
	products := mocks.NewMockProductGetter(t)
	products.EXPECT().GetProduct(mock.Anything, int64(1)).
		Return(entities.Product{ProductID: 1, PriceCents: 2500, Quantity: 10, IsActive: true}, nil)
	products.EXPECT().GetProduct(mock.Anything, int64(2)).
		Return(entities.Product{}, entities.ErrProductNotFound)

	userCarts := newMemCartStore()
	guestCarts := newMemCartStore()
	require.NoError(t, guestCarts.UpsertEntry(context.Background(), guestOwner,
		entities.CartEntry{ProductID: 1, Quantity: 2, PriceCents: 2500}))
	require.NoError(t, guestCarts.UpsertEntry(context.Background(), guestOwner,
		entities.CartEntry{ProductID: 2, Quantity: 1, PriceCents: 700}))

	svc := service.NewCartService(discardLogger(), products, userCarts, guestCarts)

	require.NoError(t, svc.MergeSessionCart(context.Background(), userOwner, guestOwner.SessionID))

	merged, err := userCarts.GetEntries(context.Background(), userOwner)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, int64(1), merged[0].ProductID)

	leftovers, err := guestCarts.GetEntries(context.Background(), guestOwner)
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestCartService_ClearCart(t *testing.T) {
	products := mocks.NewMockProductGetter(t)
	userCarts := mocks.NewMockCartStore(t)
	guestCarts := mocks.NewMockCartStore(t)

	userCarts.EXPECT().Clear(mock.Anything, userOwner).Return(nil)

	svc := service.NewCartService(discardLogger(), products, userCarts, guestCarts)
	require.NoError(t, svc.ClearCart(context.Background(), userOwner))
}

func TestCartService_StoreErrorsPropagate(t *testing.T) {
	products := mocks.NewMockProductGetter(t)
	userCarts := mocks.NewMockCartStore(t)
	guestCarts := mocks.NewMockCartStore(t)

	storeErr := errors.New("redis down")
	guestCarts.EXPECT().GetEntries(mock.Anything, guestOwner).Return(nil, storeErr)

	svc := service.NewCartService(discardLogger(), products, userCarts, guestCarts)

	_, err := svc.GetItems(context.Background(), guestOwner)
	assert.ErrorIs(t, err, storeErr)
}
