package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	userOwner = entities.CartOwner{UserID: 42}

	bootsLine = entities.CartLine{
		Product:        entities.Product{ProductID: 1, Name: "Boots", SKU: "SKU-1", PriceCents: 2500, Quantity: 10, IsActive: true},
		Quantity:       2,
		PriceCents:     2500,
		LineTotalCents: 5000,
	}
)

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockCartService, *mocks.MockOrderService, *mocks.MockStatusUpdater) {
	t.Helper()

	carts := mocks.NewMockCartService(t)
	orders := mocks.NewMockOrderService(t)
	status := mocks.NewMockStatusUpdater(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, carts, orders, status)

	r := chi.NewRouter()
	h.Init(r)
	return r, carts, orders, status
}

func asUser(req *http.Request) *http.Request {
	req.Header.Set("X-User-ID", "42")
	return req
}

func TestHTTPHandler_AddItem(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(carts *mocks.MockCartService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"product_id":1,"quantity":2}`,
			mockBehavior: func(carts *mocks.MockCartService) {
				carts.EXPECT().AddItem(mock.Anything, userOwner, int64(1), 2).Return(nil).Once()
				carts.EXPECT().GetItems(mock.Anything, userOwner).
					Return([]entities.CartLine{bootsLine}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_cents":5000`,
		},
		{
			name: "product not found",
			body: `{"product_id":99,"quantity":1}`,
			mockBehavior: func(carts *mocks.MockCartService) {
				carts.EXPECT().AddItem(mock.Anything, userOwner, int64(99), 1).
					Return(entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
		{
			name: "out of stock",
			body: `{"product_id":1,"quantity":1}`,
			mockBehavior: func(carts *mocks.MockCartService) {
				carts.EXPECT().AddItem(mock.Anything, userOwner, int64(1), 1).
					Return(entities.ErrOutOfStock).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"product is out of stock"`,
		},
		{
			name:         "invalid body",
			body:         `{"product_id":"boots"}`,
			mockBehavior: func(carts *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:         "missing product id",
			body:         `{"quantity":1}`,
			mockBehavior: func(carts *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, carts, _, _ := newRouter(t)
			tc.mockBehavior(carts)

			req := asUser(httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(tc.body)))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_UpdateItem(t *testing.T) {
	testCases := []struct {
		name         string
		productID    string
		body         string
		mockBehavior func(carts *mocks.MockCartService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "success",
			productID: "1",
			body:      `{"quantity":5}`,
			mockBehavior: func(carts *mocks.MockCartService) {
				carts.EXPECT().UpdateQuantity(mock.Anything, userOwner, int64(1), 5).Return(nil).Once()
				carts.EXPECT().GetItems(mock.Anything, userOwner).
					Return([]entities.CartLine{bootsLine}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "zero quantity removes",
			productID: "1",
			body:      `{"quantity":0}`,
			mockBehavior: func(carts *mocks.MockCartService) {
				carts.EXPECT().UpdateQuantity(mock.Anything, userOwner, int64(1), 0).Return(nil).Once()
				carts.EXPECT().GetItems(mock.Anything, userOwner).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"items":[]`,
		},
		{
			name:      "item not in cart",
			productID: "7",
			body:      `{"quantity":3}`,
			mockBehavior: func(carts *mocks.MockCartService) {
				carts.EXPECT().UpdateQuantity(mock.Anything, userOwner, int64(7), 3).
					Return(entities.ErrCartItemNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"item is not in the cart"`,
		},
		{
			name:         "invalid product id",
			productID:    "boots",
			body:         `{"quantity":3}`,
			mockBehavior: func(carts *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, carts, _, _ := newRouter(t)
			tc.mockBehavior(carts)

			req := asUser(httptest.NewRequest(http.MethodPut, "/cart/items/"+tc.productID, strings.NewReader(tc.body)))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_GuestSessionIssued(t *testing.T) {
	r, carts, _, _ := newRouter(t)

	carts.EXPECT().
		GetItems(mock.Anything, mock.MatchedBy(func(owner entities.CartOwner) bool {
			return !owner.Identified() && owner.SessionID != ""
		})).
		Return(nil, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var sessionCookie *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == "cart_session" {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "guest must receive a session cookie")
	assert.NotEmpty(t, sessionCookie.Value)
}

func TestHTTPHandler_MergeCart(t *testing.T) {
	t.Run("merges and drops session cookie", func(t *testing.T) {
		r, carts, _, _ := newRouter(t)

		carts.EXPECT().MergeSessionCart(mock.Anything, userOwner, "3f0e3f3e-8b56-4a3e-a4a4-6f8f8b8b0001").Return(nil).Once()
		carts.EXPECT().GetItems(mock.Anything, userOwner).
			Return([]entities.CartLine{bootsLine}, nil).Once()

		req := asUser(httptest.NewRequest(http.MethodPost, "/cart/merge", nil))
		req.AddCookie(&http.Cookie{Name: "cart_session", Value: "3f0e3f3e-8b56-4a3e-a4a4-6f8f8b8b0001"})
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		res := rr.Result()
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)

		for _, c := range res.Cookies() {
			if c.Name == "cart_session" {
				assert.Equal(t, -1, c.MaxAge, "session cookie must be dropped after merge")
			}
		}
	})

	t.Run("requires authentication", func(t *testing.T) {
		r, _, _, _ := newRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/cart/merge", nil)
		req.AddCookie(&http.Cookie{Name: "cart_session", Value: "3f0e3f3e-8b56-4a3e-a4a4-6f8f8b8b0001"})
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		res := rr.Result()
		defer res.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})
}

func TestHTTPHandler_Checkout(t *testing.T) {
	checkoutBody := `{
		"email": "jane@example.com",
		"full_name": "Jane Doe",
		"address": "1 Main St",
		"city": "Oakland",
		"state": "CA",
		"zip": "94601",
		"country": "US",
		"shipping_method": "express"
	}`

	validOrder := entities.Order{
		OrderNumber:    "ORD-20250101-12345",
		Status:         entities.StatusProcessing,
		SubtotalCents:  5700,
		TaxCents:       499,
		ShippingCents:  1500,
		TotalCents:     7699,
		ShippingMethod: "express",
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(orders *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: checkoutBody,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					CreateOrder(mock.Anything, userOwner, mock.MatchedBy(func(info service.CheckoutInfo) bool {
						return info.Email == "jane@example.com" && info.ShippingMethod == "express"
					})).
					Return(validOrder, nil).Once()
				orders.EXPECT().EstimatedDelivery("express").
					Return(time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_number":"ORD-20250101-12345"`,
		},
		{
			name: "empty cart",
			body: checkoutBody,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().CreateOrder(mock.Anything, userOwner, mock.Anything).
					Return(entities.Order{}, entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"cart is empty"`,
		},
		{
			name: "insufficient stock",
			body: checkoutBody,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().CreateOrder(mock.Anything, userOwner, mock.Anything).
					Return(entities.Order{}, &entities.InsufficientStockError{
						ProductID: 1, Name: "Boots", Requested: 2, Available: 1,
					}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `Boots`,
		},
		{
			name:         "invalid email",
			body:         `{"email":"not-an-email","full_name":"Jane","address":"1 Main St","city":"Oakland","zip":"94601","country":"US"}`,
			mockBehavior: func(orders *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: checkoutBody,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().CreateOrder(mock.Anything, userOwner, mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, _, orders, _ := newRouter(t)
			tc.mockBehavior(orders)

			req := asUser(httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(tc.body)))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)

			if tc.wantStatus == http.StatusCreated {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.NotEmpty(t, resp["estimated_delivery"])
			}
		})
	}
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	validOrder := entities.Order{OrderNumber: "ORD-20250101-12345", Status: entities.StatusProcessing, TotalCents: 7699}

	testCases := []struct {
		name         string
		number       string
		mockBehavior func(orders *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			number: "ORD-20250101-12345",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().GetOrderByNumber(mock.Anything, "ORD-20250101-12345").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_number":"ORD-20250101-12345"`,
		},
		{
			name:   "not found",
			number: "ORD-20250101-00000",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().GetOrderByNumber(mock.Anything, "ORD-20250101-00000").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, _, orders, _ := newRouter(t)
			tc.mockBehavior(orders)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.number, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_UpdateOrderStatus(t *testing.T) {
	const number = "ORD-20250101-12345"

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(status *mocks.MockStatusUpdater)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"status":"shipped"}`,
			mockBehavior: func(status *mocks.MockStatusUpdater) {
				status.EXPECT().UpdateStatus(mock.Anything, number, entities.StatusShipped).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status updated"`,
		},
		{
			name: "invalid transition",
			body: `{"status":"pending"}`,
			mockBehavior: func(status *mocks.MockStatusUpdater) {
				status.EXPECT().UpdateStatus(mock.Anything, number, entities.StatusPending).
					Return(entities.ErrInvalidStatusChange).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "order not found",
			body: `{"status":"shipped"}`,
			mockBehavior: func(status *mocks.MockStatusUpdater) {
				status.EXPECT().UpdateStatus(mock.Anything, number, entities.StatusShipped).
					Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "unknown status rejected by validation",
			body:         `{"status":"teleported"}`,
			mockBehavior: func(status *mocks.MockStatusUpdater) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, _, _, status := newRouter(t)
			tc.mockBehavior(status)

			req := httptest.NewRequest(http.MethodPut, "/orders/"+number+"/status", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, _, orders, _ := newRouter(t)

		orders.EXPECT().ListUserOrders(mock.Anything, int64(42), 20).
			Return([]entities.Order{{OrderNumber: "ORD-20250101-12345"}}, nil).Once()

		req := asUser(httptest.NewRequest(http.MethodGet, "/orders", nil))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		res := rr.Result()
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, string(body), "ORD-20250101-12345")
	})

	t.Run("limit capped", func(t *testing.T) {
		r, _, orders, _ := newRouter(t)

		orders.EXPECT().ListUserOrders(mock.Anything, int64(42), 100).Return(nil, nil).Once()

		req := asUser(httptest.NewRequest(http.MethodGet, "/orders?limit=500", nil))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		res := rr.Result()
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("requires authentication", func(t *testing.T) {
		r, _, _, _ := newRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		res := rr.Result()
		defer res.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})
}
