package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/pricing"
	"github.com/SergeyBogomolovv/storefront-service/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-service/pkg/utils"

	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	InsertOrder(ctx context.Context, o entities.Order) (int64, error)
	InsertOrderItems(ctx context.Context, orderID int64, items []entities.OrderItem) error
	OrderNumberExists(ctx context.Context, number string) (bool, error)
	GetOrderByNumber(ctx context.Context, number string) (entities.Order, error)
	ListUserOrders(ctx context.Context, userID int64, limit int) ([]entities.Order, error)
	GetStatusForUpdate(ctx context.Context, number string) (entities.OrderStatus, error)
	UpdateStatus(ctx context.Context, number string, status entities.OrderStatus) error
}

type StockRepo interface {
	GetProductForUpdate(ctx context.Context, productID int64) (entities.Product, error)
	DecrementStock(ctx context.Context, productID int64, quantity int) error
}

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (entities.User, error)
	FindByUsername(ctx context.Context, username string) (entities.User, error)
	CreateUser(ctx context.Context, username, email string) (entities.User, error)
}

type Carts interface {
	GetItems(ctx context.Context, owner entities.CartOwner) ([]entities.CartLine, error)
	ClearCart(ctx context.Context, owner entities.CartOwner) error
}

type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// CheckoutInfo - данные формы оформления заказа.
type CheckoutInfo struct {
	Email    string
	Username string

	FullName string
	Address  string
	City     string
	State    string
	Zip      string
	Country  string
	Phone    string

	ShippingMethod string
	PaymentMethod  string
}

const orderNumberAttempts = 5

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	stock     StockRepo
	users     UserRepo
	carts     Carts
	notifier  Notifier
	cache     Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	stock StockRepo,
	users UserRepo,
	carts Carts,
	notifier Notifier,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		stock:     stock,
		users:     users,
		carts:     carts,
		notifier:  notifier,
		cache:     cache,
	}
}

// CreateOrder превращает текущую корзину в неизменяемый заказ.
// Цены и остатки перечитываются внутри транзакции - кэшу корзины не доверяем.
// Заказ, его позиции и списание остатков фиксируются атомарно: при нехватке
// хотя бы одного товара не остаётся никаких частичных записей.
func (s *orderService) CreateOrder(ctx context.Context, owner entities.CartOwner, info CheckoutInfo) (entities.Order, error) {
	lines, err := s.carts.GetItems(ctx, owner)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(lines) == 0 {
		return entities.Order{}, entities.ErrEmptyCart
	}

	user, err := s.resolveCustomer(ctx, info.Email, info.Username)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to resolve customer: %w", err)
	}

	var order entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		subtotal := 0
		items := make([]entities.OrderItem, 0, len(lines))

		for _, line := range lines {
			product, err := s.stock.GetProductForUpdate(ctx, line.Product.ProductID)
			if err != nil {
				return fmt.Errorf("failed to reread product %d: %w", line.Product.ProductID, err)
			}
			if line.Quantity > product.Quantity {
				return &entities.InsufficientStockError{
					ProductID: product.ProductID,
					Name:      product.Name,
					Requested: line.Quantity,
					Available: product.Quantity,
				}
			}

			subtotal += product.PriceCents * line.Quantity
			items = append(items, entities.OrderItem{
				ProductID:      product.ProductID,
				Quantity:       line.Quantity,
				UnitPriceCents: product.PriceCents,
				TotalCents:     product.PriceCents * line.Quantity,
			})
		}

		method := pricing.NormalizeMethod(info.ShippingMethod)
		shipping := pricing.ShippingAmount(method)
		tax := pricing.TaxAmount(subtotal, info.Country, info.State)

		number, err := s.reserveOrderNumber(ctx)
		if err != nil {
			return err
		}

		order = entities.Order{
			OrderNumber: number,
			UserID:      user.ID,
			// оплата-заглушка всегда успешна, заказ сразу уходит в обработку
			Status: entities.StatusProcessing,

			SubtotalCents: subtotal,
			TaxCents:      tax,
			ShippingCents: shipping,
			TotalCents:    subtotal + tax + shipping,

			ShippingAddress: checkoutAddress(info, ""),
			ShippingMethod:  method,
			BillingAddress:  checkoutAddress(info, info.Email),

			PaymentMethod: paymentMethod(info.PaymentMethod),
			PaymentStatus: "paid",
			PaymentID:     "demo-payment",

			CreatedAt: time.Now().UTC(),
		}

		id, err := s.orders.InsertOrder(ctx, order)
		if err != nil {
			return err
		}
		order.ID = id

		if err := s.orders.InsertOrderItems(ctx, id, items); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = id
		}
		order.Items = items

		for _, it := range items {
			if err := s.stock.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
				if errors.Is(err, entities.ErrInsufficientStock) {
					// конкурентное оформление забрало остаток после нашей проверки
					return &entities.InsufficientStockError{
						ProductID: it.ProductID,
						Requested: it.Quantity,
					}
				}
				return err
			}
		}

		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	// заказ зафиксирован; очистка корзины и письмо не влияют на его судьбу
	if err := s.carts.ClearCart(ctx, owner); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear cart after checkout",
			slog.String("owner", owner.String()), slog.Any("error", err))
	}
	s.sendConfirmation(ctx, order, info.Email)

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_number", order.OrderNumber),
		slog.Int("total_cents", order.TotalCents))

	return order, nil
}

// resolveCustomer находит или заводит аккаунт покупателя.
// Совпадение по email имеет приоритет над совпадением по имени.
func (s *orderService) resolveCustomer(ctx context.Context, email, username string) (entities.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, entities.ErrUserNotFound) {
		return entities.User{}, err
	}

	if username != "" {
		user, err = s.users.FindByUsername(ctx, username)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, entities.ErrUserNotFound) {
			return entities.User{}, err
		}
	}

	if username == "" {
		username, _, _ = strings.Cut(email, "@")
	}
	return s.users.CreateUser(ctx, username, email)
}

// reserveOrderNumber подбирает свободный номер заказа за ограниченное число
// попыток. Гонку между проверкой и вставкой закрывает уникальный индекс.
func (s *orderService) reserveOrderNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		number := generateOrderNumber()
		exists, err := s.orders.OrderNumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", entities.ErrOrderNumberExhausted
}

func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%s-%05d", time.Now().UTC().Format("20060102"), 10000+rand.IntN(90000))
}

func (s *orderService) sendConfirmation(ctx context.Context, order entities.Order, email string) {
	total := decimal.NewFromInt(int64(order.TotalCents)).Div(decimal.NewFromInt(100))
	subject := fmt.Sprintf("Order Confirmation %s", order.OrderNumber)
	body := fmt.Sprintf("Thanks for your order %s! Total: %s GLD", order.OrderNumber, total.StringFixed(2))

	if err := s.notifier.Send(ctx, email, subject, body); err != nil {
		s.logger.ErrorContext(ctx, "failed to send confirmation",
			slog.String("order_number", order.OrderNumber), slog.Any("error", err))
	}
}

func (s *orderService) GetOrderByNumber(ctx context.Context, number string) (entities.Order, error) {
	if data, ok := s.cache.Get(number); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			return order, nil
		}
		// битую запись выкидываем и идём в БД
		s.cache.Delete(number)
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByNumber(ctx, number)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if data, err := order.Marshal(); err == nil {
		s.cache.Set(number, data)
	}
	return order, nil
}

func (s *orderService) ListUserOrders(ctx context.Context, userID int64, limit int) ([]entities.Order, error) {
	return s.orders.ListUserOrders(ctx, userID, limit)
}

// UpdateStatus двигает заказ по машине статусов. Вызывается внешними
// системами (фулфилмент, админка), допустимость перехода проверяется
// под блокировкой строки.
func (s *orderService) UpdateStatus(ctx context.Context, number string, next entities.OrderStatus) error {
	if !next.Valid() {
		return entities.ErrInvalidStatus
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.orders.GetStatusForUpdate(ctx, number)
		if err != nil {
			return err
		}
		if !current.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidStatusChange, current, next)
		}
		return s.orders.UpdateStatus(ctx, number, next)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(number)
	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_number", number), slog.String("status", string(next)))
	return nil
}

// EstimatedDelivery оценивает дату доставки: 2 дня для express, иначе 5.
func (s *orderService) EstimatedDelivery(method string) time.Time {
	days := 5
	if pricing.NormalizeMethod(method) == pricing.MethodExpress {
		days = 2
	}
	return time.Now().UTC().AddDate(0, 0, days)
}

// checkoutAddress снимает адрес из формы; email присутствует только в billing-снимке.
func checkoutAddress(info CheckoutInfo, email string) entities.Address {
	return entities.Address{
		Email:    email,
		FullName: info.FullName,
		Address:  info.Address,
		City:     info.City,
		State:    info.State,
		Zip:      info.Zip,
		Country:  info.Country,
		Phone:    info.Phone,
	}
}

func paymentMethod(method string) string {
	if method == "" {
		return "card"
	}
	return method
}
