package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/service"
	"github.com/SergeyBogomolovv/storefront-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CartService interface {
	AddItem(ctx context.Context, owner entities.CartOwner, productID int64, quantity int) error
	UpdateQuantity(ctx context.Context, owner entities.CartOwner, productID int64, quantity int) error
	RemoveItem(ctx context.Context, owner entities.CartOwner, productID int64) error
	ClearCart(ctx context.Context, owner entities.CartOwner) error
	GetItems(ctx context.Context, owner entities.CartOwner) ([]entities.CartLine, error)
	GetTotal(ctx context.Context, owner entities.CartOwner) (int, error)
	GetCount(ctx context.Context, owner entities.CartOwner) (int, error)
	MergeSessionCart(ctx context.Context, owner entities.CartOwner, sessionID string) error
}

type OrderService interface {
	CreateOrder(ctx context.Context, owner entities.CartOwner, info service.CheckoutInfo) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (entities.Order, error)
	ListUserOrders(ctx context.Context, userID int64, limit int) ([]entities.Order, error)
	EstimatedDelivery(method string) time.Time
}

const (
	userIDHeader      = "X-User-ID"
	sessionCookieName = "cart_session"
	sessionCookieTTL  = 7 * 24 * time.Hour

	defaultOrdersLimit = 20
	maxOrdersLimit     = 100
)

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	carts    CartService
	orders   OrderService
	status   StatusUpdater
}

func NewHTTPHandler(logger *slog.Logger, carts CartService, orders OrderService, status StatusUpdater) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		carts:    carts,
		orders:   orders,
		status:   status,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddItem)
		r.Put("/items/{product_id}", h.UpdateItem)
		r.Delete("/items/{product_id}", h.RemoveItem)
		r.Post("/merge", h.MergeCart)
	})

	r.Post("/checkout", h.Checkout)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Get("/{order_number}", h.GetOrder)
		r.Put("/{order_number}/status", h.UpdateOrderStatus)
	})
}

// owner определяет владельца корзины: авторизованный пользователь по
// заголовку X-User-ID, иначе гость по cookie сессии. Гостю без cookie
// сессия выдаётся на месте.
func (h *HTTPHandler) owner(w http.ResponseWriter, r *http.Request) (entities.CartOwner, error) {
	if raw := r.Header.Get(userIDHeader); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			return entities.CartOwner{}, fmt.Errorf("invalid %s header", userIDHeader)
		}
		return entities.CartOwner{UserID: userID}, nil
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			return entities.CartOwner{SessionID: cookie.Value}, nil
		}
	}

	sessionID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  time.Now().Add(sessionCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return entities.CartOwner{SessionID: sessionID}, nil
}

// AddItem добавляет товар в корзину.
// @Summary      Добавить товар в корзину
// @Description  Добавляет товар, суммируя с уже лежащим количеством. Количество сверх остатка урезается до остатка.
// @Tags         cart
// @Accept       json
// @Param        input  body  AddItemRequest  true  "Товар и количество"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      409  {object}  utils.ErrorResponse "Товара нет в наличии"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/items [post]
func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	owner, err := h.owner(w, r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.carts.AddItem(ctx, owner, req.ProductID, req.Quantity); err != nil {
		h.writeCartError(ctx, w, err, req.ProductID)
		return
	}

	h.writeCart(ctx, w, owner)
}

// UpdateItem выставляет количество позиции корзины.
// @Summary      Изменить количество позиции
// @Description  Выставляет точное количество. Ноль удаляет позицию, значение сверх остатка урезается до остатка.
// @Tags         cart
// @Accept       json
// @Param        product_id  path  int                true  "ID товара"
// @Param        input       body  UpdateItemRequest  true  "Новое количество"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Позиция не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/items/{product_id} [put]
func (h *HTTPHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := h.productIDParam(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req UpdateItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	owner, err := h.owner(w, r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.carts.UpdateQuantity(ctx, owner, productID, req.Quantity); err != nil {
		h.writeCartError(ctx, w, err, productID)
		return
	}

	h.writeCart(ctx, w, owner)
}

// RemoveItem убирает позицию из корзины.
// @Summary      Удалить позицию из корзины
// @Tags         cart
// @Param        product_id  path  int  true  "ID товара"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse "Позиция не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/items/{product_id} [delete]
func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := h.productIDParam(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	owner, err := h.owner(w, r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.carts.RemoveItem(ctx, owner, productID); err != nil {
		h.writeCartError(ctx, w, err, productID)
		return
	}

	h.writeCart(ctx, w, owner)
}

// ClearCart опустошает корзину.
// @Summary      Очистить корзину
// @Tags         cart
// @Success      200  {object}  utils.MessageResponse
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart [delete]
func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	owner, err := h.owner(w, r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.carts.ClearCart(ctx, owner); err != nil {
		h.logger.ErrorContext(ctx, "failed to clear cart", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteMessage(w, "cart cleared", http.StatusOK)
}

// GetCart возвращает корзину с актуальными ценами и итогами.
// @Summary      Получить корзину
// @Tags         cart
// @Success      200  {object}  Cart
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart [get]
func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	owner, err := h.owner(w, r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeCart(ctx, w, owner)
}

// MergeCart переливает гостевую корзину в корзину аккаунта после входа.
// @Summary      Слить гостевую корзину с корзиной аккаунта
// @Description  Требует X-User-ID и cookie гостевой сессии. Количества складываются, cookie сбрасывается.
// @Tags         cart
// @Success      200  {object}  Cart
// @Failure      401  {object}  utils.ErrorResponse "Требуется авторизация"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/merge [post]
func (h *HTTPHandler) MergeCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	owner, err := h.owner(w, r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !owner.Identified() {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err := h.carts.MergeSessionCart(ctx, owner, cookie.Value); err != nil {
			h.logger.ErrorContext(ctx, "failed to merge session cart", slog.Any("error", err))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		// гостевая сессия отработала
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
	}

	h.writeCart(ctx, w, owner)
}

// Checkout оформляет заказ из текущей корзины.
// @Summary      Оформить заказ
// @Description  Перепроверяет остатки, атомарно списывает их и создаёт заказ. Корзина очищается после оформления.
// @Tags         orders
// @Accept       json
// @Param        input  body  CheckoutRequest  true  "Данные покупателя и доставки"
// @Success      201  {object}  CheckoutResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации или пустая корзина"
// @Failure      409  {object}  utils.ErrorResponse "Недостаточно товара на складе"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	owner, err := h.owner(w, r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.orders.CreateOrder(ctx, owner, CheckoutJSONToInfo(req))
	switch {
	case errors.Is(err, entities.ErrEmptyCart):
		checkoutsTotal.WithLabelValues("empty_cart").Inc()
		utils.WriteError(w, "cart is empty", http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrInsufficientStock):
		checkoutsTotal.WithLabelValues("insufficient_stock").Inc()
		var stockErr *entities.InsufficientStockError
		if errors.As(err, &stockErr) {
			utils.WriteError(w, stockErr.Error(), http.StatusConflict)
			return
		}
		utils.WriteError(w, "insufficient stock", http.StatusConflict)
		return
	case err != nil:
		checkoutsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	checkoutsTotal.WithLabelValues("success").Inc()
	checkoutDuration.Observe(time.Since(start).Seconds())

	utils.WriteJSON(w, CheckoutResponse{
		Order:             OrderEntityToJSON(order),
		EstimatedDelivery: h.orders.EstimatedDelivery(order.ShippingMethod),
	}, http.StatusCreated)
}

// GetOrder возвращает заказ по номеру.
// @Summary      Получить заказ по номеру
// @Tags         orders
// @Param        order_number  path  string  true  "Номер заказа, формат ORD-YYYYMMDD-NNNNN"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_number} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "order_number")

	if err := h.validate.Var(number, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrderByNumber(ctx, number)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_number", number))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders возвращает историю заказов пользователя.
// @Summary      История заказов
// @Description  Последние заказы авторизованного пользователя, новые первыми.
// @Tags         orders
// @Param        limit  query  int  false  "Максимум заказов в ответе (по умолчанию 20, не больше 100)"
// @Success      200  {array}  Order
// @Failure      401  {object}  utils.ErrorResponse "Требуется авторизация"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	owner, err := h.owner(w, r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !owner.Identified() {
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	limit := defaultOrdersLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.WriteError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(parsed, maxOrdersLimit)
	}

	orders, err := h.orders.ListUserOrders(ctx, owner.UserID, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// UpdateOrderStatus двигает заказ по машине статусов.
// @Summary      Обновить статус заказа
// @Description  Служебный эндпоинт для фулфилмента и админки. Допускаются только переходы машины статусов.
// @Tags         orders
// @Accept       json
// @Param        order_number  path  string               true  "Номер заказа"
// @Param        input         body  UpdateStatusRequest  true  "Новый статус"
// @Success      200  {object}  utils.MessageResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход статуса"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_number}/status [put]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "order_number")

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.status.UpdateStatus(ctx, number, entities.OrderStatus(req.Status))
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrInvalidStatus), errors.Is(err, entities.ErrInvalidStatusChange):
		utils.WriteError(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update order status",
			slog.Any("error", err), slog.String("order_number", number))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteMessage(w, "status updated", http.StatusOK)
}

func (h *HTTPHandler) productIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "product_id")
	if err := h.validate.Var(raw, "required,number"); err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

func (h *HTTPHandler) writeCart(ctx context.Context, w http.ResponseWriter, owner entities.CartOwner) {
	lines, err := h.carts.GetItems(ctx, owner)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get cart", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, CartLinesToJSON(lines), http.StatusOK)
}

func (h *HTTPHandler) writeCartError(ctx context.Context, w http.ResponseWriter, err error, productID int64) {
	switch {
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCartItemNotFound):
		utils.WriteError(w, "item is not in the cart", http.StatusNotFound)
	case errors.Is(err, entities.ErrOutOfStock):
		utils.WriteError(w, "product is out of stock", http.StatusConflict)
	default:
		h.logger.ErrorContext(ctx, "cart operation failed",
			slog.Int64("product_id", productID), slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
