package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-service/internal/service/mocks"
	trmmocks "github.com/SergeyBogomolovv/storefront-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type orderDeps struct {
	txManager *trmmocks.MockManager
	orders    *mocks.MockOrderRepo
	stock     *mocks.MockStockRepo
	users     *mocks.MockUserRepo
	carts     *mocks.MockCarts
	notifier  *mocks.MockNotifier
	cache     *mocks.MockCache
}

func newOrderDeps(t *testing.T) orderDeps {
	return orderDeps{
		txManager: trmmocks.NewMockManager(t),
		orders:    mocks.NewMockOrderRepo(t),
		stock:     mocks.NewMockStockRepo(t),
		users:     mocks.NewMockUserRepo(t),
		carts:     mocks.NewMockCarts(t),
		notifier:  mocks.NewMockNotifier(t),
		cache:     mocks.NewMockCache(t),
	}
}

type orderAPI interface {
	CreateOrder(ctx context.Context, owner entities.CartOwner, info service.CheckoutInfo) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (entities.Order, error)
	ListUserOrders(ctx context.Context, userID int64, limit int) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, number string, next entities.OrderStatus) error
	EstimatedDelivery(method string) time.Time
}

func (d orderDeps) service() orderAPI {
	return service.NewOrderService(discardLogger(), d.txManager, d.orders, d.stock, d.users, d.carts, d.notifier, d.cache)
}

// passthroughTx прогоняет колбэк транзакции как есть.
func (d orderDeps) passthroughTx() {
	d.txManager.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(context.Context) error) error {
			return cb(ctx)
		}).Maybe()
}

var checkoutInfo = service.CheckoutInfo{
	Email:          "jane@example.com",
	FullName:       "Jane Doe",
	Address:        "1 Main St",
	City:           "Oakland",
	State:          "CA",
	Zip:            "94601",
	Country:        "US",
	Phone:          "555-0101",
	ShippingMethod: "express",
	PaymentMethod:  "card",
}

var checkoutLines = []entities.CartLine{
	{Product: entities.Product{ProductID: 1, Name: "Boots", PriceCents: 2500, Quantity: 10, IsActive: true}, Quantity: 2, PriceCents: 2500, LineTotalCents: 5000},
	{Product: entities.Product{ProductID: 2, Name: "Lamp", PriceCents: 700, Quantity: 5, IsActive: true}, Quantity: 1, PriceCents: 700, LineTotalCents: 700},
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	deps := newOrderDeps(t)
	deps.carts.EXPECT().GetItems(mock.Anything, userOwner).Return(nil, nil)

	_, err := deps.service().CreateOrder(context.Background(), userOwner, checkoutInfo)
	assert.ErrorIs(t, err, entities.ErrEmptyCart)
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	deps := newOrderDeps(t)
	deps.passthroughTx()

	deps.carts.EXPECT().GetItems(mock.Anything, userOwner).Return(checkoutLines, nil)
	deps.users.EXPECT().FindByEmail(mock.Anything, "jane@example.com").
		Return(entities.User{ID: 42, Username: "jane", Email: "jane@example.com"}, nil)

	deps.stock.EXPECT().GetProductForUpdate(mock.Anything, int64(1)).Return(checkoutLines[0].Product, nil)
	deps.stock.EXPECT().GetProductForUpdate(mock.Anything, int64(2)).Return(checkoutLines[1].Product, nil)

	deps.orders.EXPECT().OrderNumberExists(mock.Anything, mock.Anything).Return(false, nil)

	var inserted entities.Order
	deps.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (int64, error) {
			inserted = o
			return 77, nil
		})
	deps.orders.EXPECT().InsertOrderItems(mock.Anything, int64(77), mock.Anything).Return(nil)

	deps.stock.EXPECT().DecrementStock(mock.Anything, int64(1), 2).Return(nil)
	deps.stock.EXPECT().DecrementStock(mock.Anything, int64(2), 1).Return(nil)

	deps.carts.EXPECT().ClearCart(mock.Anything, userOwner).Return(nil)

	var notifyBody string
	deps.notifier.EXPECT().
		Send(mock.Anything, "jane@example.com", mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _, _, body string) error {
			notifyBody = body
			return nil
		})

	order, err := deps.service().CreateOrder(context.Background(), userOwner, checkoutInfo)
	require.NoError(t, err)

	// 5700 * 8.75% = 498.75 -> 499 с округлением half-up
	assert.Equal(t, 5700, order.SubtotalCents)
	assert.Equal(t, 499, order.TaxCents)
	assert.Equal(t, 1500, order.ShippingCents)
	assert.Equal(t, 7699, order.TotalCents)

	assert.Equal(t, int64(77), order.ID)
	assert.Equal(t, int64(42), order.UserID)
	assert.Equal(t, entities.StatusProcessing, order.Status)
	assert.Regexp(t, `^ORD-\d{8}-\d{5}$`, order.OrderNumber)
	assert.Equal(t, "express", order.ShippingMethod)
	assert.Equal(t, "paid", order.PaymentStatus)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, int64(77), order.Items[0].OrderID)

	// email попадает только в billing-снимок адреса
	assert.Empty(t, inserted.ShippingAddress.Email)
	assert.Equal(t, "jane@example.com", inserted.BillingAddress.Email)

	assert.Contains(t, notifyBody, order.OrderNumber)
	assert.Contains(t, notifyBody, "76.99 GLD")
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	deps := newOrderDeps(t)
	deps.passthroughTx()

	deps.carts.EXPECT().GetItems(mock.Anything, userOwner).Return(checkoutLines, nil)
	deps.users.EXPECT().FindByEmail(mock.Anything, "jane@example.com").
		Return(entities.User{ID: 42}, nil)

	// к моменту оформления остался один ботинок
	drained := checkoutLines[0].Product
	drained.Quantity = 1
	deps.stock.EXPECT().GetProductForUpdate(mock.Anything, int64(1)).Return(drained, nil)

	// InsertOrder, InsertOrderItems, DecrementStock и ClearCart не ожидаются:
	// транзакция должна упасть без частичных записей
	_, err := deps.service().CreateOrder(context.Background(), userOwner, checkoutInfo)

	require.ErrorIs(t, err, entities.ErrInsufficientStock)
	var stockErr *entities.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(1), stockErr.ProductID)
	assert.Equal(t, 2, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Available)
}

func TestOrderService_CreateOrder_ConcurrentDecrementLoses(t *testing.T) {
	deps := newOrderDeps(t)
	deps.passthroughTx()

	deps.carts.EXPECT().GetItems(mock.Anything, userOwner).Return(checkoutLines[:1], nil)
	deps.users.EXPECT().FindByEmail(mock.Anything, "jane@example.com").
		Return(entities.User{ID: 42}, nil)
	deps.stock.EXPECT().GetProductForUpdate(mock.Anything, int64(1)).Return(checkoutLines[0].Product, nil)
	deps.orders.EXPECT().OrderNumberExists(mock.Anything, mock.Anything).Return(false, nil)
	deps.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(77, nil)
	deps.orders.EXPECT().InsertOrderItems(mock.Anything, int64(77), mock.Anything).Return(nil)

	// условный декремент проиграл гонку
	deps.stock.EXPECT().DecrementStock(mock.Anything, int64(1), 2).Return(entities.ErrInsufficientStock)

	_, err := deps.service().CreateOrder(context.Background(), userOwner, checkoutInfo)
	assert.ErrorIs(t, err, entities.ErrInsufficientStock)
}

func TestOrderService_CreateOrder_OrderNumberExhausted(t *testing.T) {
	deps := newOrderDeps(t)
	deps.passthroughTx()

	deps.carts.EXPECT().GetItems(mock.Anything, userOwner).Return(checkoutLines[:1], nil)
	deps.users.EXPECT().FindByEmail(mock.Anything, "jane@example.com").
		Return(entities.User{ID: 42}, nil)
	deps.stock.EXPECT().GetProductForUpdate(mock.Anything, int64(1)).Return(checkoutLines[0].Product, nil)

	deps.orders.EXPECT().OrderNumberExists(mock.Anything, mock.Anything).Return(true, nil).Times(5)

	_, err := deps.service().CreateOrder(context.Background(), userOwner, checkoutInfo)
	assert.ErrorIs(t, err, entities.ErrOrderNumberExhausted)
}

func TestOrderService_CreateOrder_NotificationFailureIgnored(t *testing.T) {
	deps := newOrderDeps(t)
	deps.passthroughTx()

	deps.carts.EXPECT().GetItems(mock.Anything, userOwner).Return(checkoutLines[:1], nil)
	deps.users.EXPECT().FindByEmail(mock.Anything, "jane@example.com").
		Return(entities.User{ID: 42}, nil)
	deps.stock.EXPECT().GetProductForUpdate(mock.Anything, int64(1)).Return(checkoutLines[0].Product, nil)
	deps.orders.EXPECT().OrderNumberExists(mock.Anything, mock.Anything).Return(false, nil)
	deps.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(77, nil)
	deps.orders.EXPECT().InsertOrderItems(mock.Anything, int64(77), mock.Anything).Return(nil)
	deps.stock.EXPECT().DecrementStock(mock.Anything, int64(1), 2).Return(nil)
	deps.carts.EXPECT().ClearCart(mock.Anything, userOwner).Return(nil)
	deps.notifier.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("kafka unavailable"))

	order, err := deps.service().CreateOrder(context.Background(), userOwner, checkoutInfo)
	require.NoError(t, err)
	assert.NotEmpty(t, order.OrderNumber)
}

func TestOrderService_CreateOrder_GuestCustomerCreated(t *testing.T) {
	deps := newOrderDeps(t)
	deps.passthroughTx()

	deps.carts.EXPECT().GetItems(mock.Anything, guestOwner).Return(checkoutLines[:1], nil)
	deps.users.EXPECT().FindByEmail(mock.Anything, "jane@example.com").
		Return(entities.User{}, entities.ErrUserNotFound)
	// имя гостя выводится из локальной части email
	deps.users.EXPECT().CreateUser(mock.Anything, "jane", "jane@example.com").
		Return(entities.User{ID: 101, Username: "jane", Email: "jane@example.com"}, nil)

	deps.stock.EXPECT().GetProductForUpdate(mock.Anything, int64(1)).Return(checkoutLines[0].Product, nil)
	deps.orders.EXPECT().OrderNumberExists(mock.Anything, mock.Anything).Return(false, nil)
	deps.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(78, nil)
	deps.orders.EXPECT().InsertOrderItems(mock.Anything, int64(78), mock.Anything).Return(nil)
	deps.stock.EXPECT().DecrementStock(mock.Anything, int64(1), 2).Return(nil)
	deps.carts.EXPECT().ClearCart(mock.Anything, guestOwner).Return(nil)
	deps.notifier.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	order, err := deps.service().CreateOrder(context.Background(), guestOwner, checkoutInfo)
	require.NoError(t, err)
	assert.Equal(t, int64(101), order.UserID)
}

// memStock - потокобезопасный склад с условным списанием,
// как UPDATE ... WHERE quantity >= $1 в БД.
type memStock struct {
	mu       sync.Mutex
	products map[int64]entities.Product
}

func (s *memStock) GetProductForUpdate(_ context.Context, productID int64) (entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return p, nil
}

func (s *memStock) DecrementStock(_ context.Context, productID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.products[productID]
	if p.Quantity < quantity {
		return entities.ErrInsufficientStock
	}
	p.Quantity -= quantity
	s.products[productID] = p
	return nil
}

type noopTx struct{}

func (noopTx) Do(ctx context.Context, cb func(context.Context) error) error { return cb(ctx) }

func TestOrderService_CreateOrder_NoOversell(t *testing.T) {
	last := entities.Product{ProductID: 1, Name: "Boots", PriceCents: 2500, Quantity: 1, IsActive: true}
	stock := &memStock{products: map[int64]entities.Product{1: last}}

	orders := mocks.NewMockOrderRepo(t)
	orders.EXPECT().OrderNumberExists(mock.Anything, mock.Anything).Return(false, nil).Maybe()
	orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(1, nil).Maybe()
	orders.EXPECT().InsertOrderItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	users := mocks.NewMockUserRepo(t)
	users.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(entities.User{ID: 42}, nil)

	carts := mocks.NewMockCarts(t)
	carts.EXPECT().GetItems(mock.Anything, mock.Anything).
		Return([]entities.CartLine{{Product: last, Quantity: 1, PriceCents: 2500, LineTotalCents: 2500}}, nil)
	carts.EXPECT().ClearCart(mock.Anything, mock.Anything).Return(nil).Maybe()

	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	cache := mocks.NewMockCache(t)

	svc := service.NewOrderService(discardLogger(), noopTx{}, orders, stock, users, carts, notifier, cache)

	results := make([]error, 2)
	var eg errgroup.Group
	for i := 0; i < 2; i++ {
		i := i
		owner := entities.CartOwner{UserID: int64(100 + i)}
		eg.Go(func() error {
			_, results[i] = svc.CreateOrder(context.Background(), owner, checkoutInfo)
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, entities.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 1, succeeded, "ровно одно оформление должно получить последний товар")

	final, err := stock.GetProductForUpdate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, final.Quantity)
}

func TestOrderService_GetOrderByNumber(t *testing.T) {
	order := entities.Order{ID: 77, OrderNumber: "ORD-20250101-12345", TotalCents: 7699, Status: entities.StatusProcessing}

	t.Run("cache miss goes to repo and caches", func(t *testing.T) {
		deps := newOrderDeps(t)
		deps.cache.EXPECT().Get(order.OrderNumber).Return(nil, false)
		deps.orders.EXPECT().GetOrderByNumber(mock.Anything, order.OrderNumber).Return(order, nil)
		deps.cache.EXPECT().Set(order.OrderNumber, mock.Anything).Return()

		got, err := deps.service().GetOrderByNumber(context.Background(), order.OrderNumber)
		require.NoError(t, err)
		assert.Equal(t, order, got)
	})

	t.Run("cache hit skips repo", func(t *testing.T) {
		deps := newOrderDeps(t)
		data, err := order.Marshal()
		require.NoError(t, err)
		deps.cache.EXPECT().Get(order.OrderNumber).Return(data, true)

		got, err := deps.service().GetOrderByNumber(context.Background(), order.OrderNumber)
		require.NoError(t, err)
		assert.Equal(t, order.OrderNumber, got.OrderNumber)
		assert.Equal(t, order.TotalCents, got.TotalCents)
	})

	t.Run("not found is not retried", func(t *testing.T) {
		deps := newOrderDeps(t)
		deps.cache.EXPECT().Get("ORD-20250101-00000").Return(nil, false)
		deps.orders.EXPECT().GetOrderByNumber(mock.Anything, "ORD-20250101-00000").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := deps.service().GetOrderByNumber(context.Background(), "ORD-20250101-00000")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	const number = "ORD-20250101-12345"

	t.Run("valid transition", func(t *testing.T) {
		deps := newOrderDeps(t)
		deps.passthroughTx()
		deps.orders.EXPECT().GetStatusForUpdate(mock.Anything, number).Return(entities.StatusProcessing, nil)
		deps.orders.EXPECT().UpdateStatus(mock.Anything, number, entities.StatusShipped).Return(nil)
		deps.cache.EXPECT().Delete(number).Return()

		err := deps.service().UpdateStatus(context.Background(), number, entities.StatusShipped)
		assert.NoError(t, err)
	})

	t.Run("invalid transition", func(t *testing.T) {
		deps := newOrderDeps(t)
		deps.passthroughTx()
		deps.orders.EXPECT().GetStatusForUpdate(mock.Anything, number).Return(entities.StatusCompleted, nil)

		err := deps.service().UpdateStatus(context.Background(), number, entities.StatusPending)
		assert.ErrorIs(t, err, entities.ErrInvalidStatusChange)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		deps := newOrderDeps(t)

		err := deps.service().UpdateStatus(context.Background(), number, entities.OrderStatus("teleported"))
		assert.ErrorIs(t, err, entities.ErrInvalidStatus)
	})
}

func TestOrderService_EstimatedDelivery(t *testing.T) {
	deps := newOrderDeps(t)
	svc := deps.service()

	now := time.Now().UTC()
	express := svc.EstimatedDelivery("express")
	standard := svc.EstimatedDelivery("standard")

	assert.WithinDuration(t, now.AddDate(0, 0, 2), express, time.Minute)
	assert.WithinDuration(t, now.AddDate(0, 0, 5), standard, time.Minute)
}
