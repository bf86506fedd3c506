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

	"github.com/go-chi/chi/v5"
	"github.com/mshop-dev/order-service/internal/entities"
	"github.com/mshop-dev/order-service/internal/handler"
	mocks "github.com/mshop-dev/order-service/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, orders *mocks.MockOrderService, carts *mocks.MockCartService, publisher *mocks.MockEventPublisher) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, orders, carts, publisher)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestHTTPHandler_PlaceOrder(t *testing.T) {
	results := []entities.OrderResult{
		{
			OrderID: 1001,
			BuyerID: 1,
			Seller:  entities.SellerSummary{ID: 2, Name: "alice"},
			Status:  entities.OrderCompleted,
			Lines: []entities.OrderLineView{
				{SaleItemID: 10, Quantity: 2, PriceEach: 700, Description: "Apple iPhone 13 (128GB Black)"},
			},
		},
		{
			OrderID: 1002,
			BuyerID: 1,
			Seller:  entities.SellerSummary{ID: 3, Name: "bob"},
			Status:  entities.OrderCancelled,
			Lines: []entities.OrderLineView{
				{SaleItemID: 20, Quantity: 3, PriceEach: 1200, Description: "Lenovo ThinkPad (- -)"},
			},
		},
	}

	validBody := `{"shipping_address":"221B Baker Street","items":[{"sale_item_id":10,"quantity":2,"price":700},{"sale_item_id":20,"quantity":3,"price":1200}]}`

	testCases := []struct {
		name         string
		userID       string
		body         string
		mockBehavior func(orders *mocks.MockOrderService, publisher *mocks.MockEventPublisher)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			userID: "1",
			body:   validBody,
			mockBehavior: func(orders *mocks.MockOrderService, publisher *mocks.MockEventPublisher) {
				orders.EXPECT().
					PlaceOrder(mock.Anything, 1, mock.Anything).
					Return(results, nil).Once()
				publisher.EXPECT().OrderPlaced(mock.Anything, results).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"CANCELLED"`,
		},
		{
			name:         "missing user header",
			userID:       "",
			body:         validBody,
			mockBehavior: func(orders *mocks.MockOrderService, publisher *mocks.MockEventPublisher) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"unauthorized"`,
		},
		{
			name:         "malformed json",
			userID:       "1",
			body:         `{"items":`,
			mockBehavior: func(orders *mocks.MockOrderService, publisher *mocks.MockEventPublisher) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid json body"`,
		},
		{
			name:         "no items",
			userID:       "1",
			body:         `{"shipping_address":"221B Baker Street","items":[]}`,
			mockBehavior: func(orders *mocks.MockOrderService, publisher *mocks.MockEventPublisher) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:   "self purchase",
			userID: "1",
			body:   validBody,
			mockBehavior: func(orders *mocks.MockOrderService, publisher *mocks.MockEventPublisher) {
				orders.EXPECT().
					PlaceOrder(mock.Anything, 1, mock.Anything).
					Return(nil, entities.ErrSelfPurchase).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"cannot buy your own item"`,
		},
		{
			name:   "buyer not found",
			userID: "1",
			body:   validBody,
			mockBehavior: func(orders *mocks.MockOrderService, publisher *mocks.MockEventPublisher) {
				orders.EXPECT().
					PlaceOrder(mock.Anything, 1, mock.Anything).
					Return(nil, entities.ErrAccountNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"account not found"`,
		},
		{
			name:   "internal error",
			userID: "1",
			body:   validBody,
			mockBehavior: func(orders *mocks.MockOrderService, publisher *mocks.MockEventPublisher) {
				orders.EXPECT().
					PlaceOrder(mock.Anything, 1, mock.Anything).
					Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderService(t)
			carts := mocks.NewMockCartService(t)
			publisher := mocks.NewMockEventPublisher(t)
			tc.mockBehavior(orders, publisher)

			r := newTestRouter(t, orders, carts, publisher)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			if tc.userID != "" {
				req.Header.Set("X-User-Id", tc.userID)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)

			if tc.wantStatus == http.StatusCreated {
				var resp []map[string]any
				require.NoError(t, json.Unmarshal(body, &resp))
				require.Len(t, resp, 2)
				assert.Equal(t, "COMPLETED", resp[0]["status"])
				assert.Equal(t, "CANCELLED", resp[1]["status"])
			}
		})
	}
}

func TestHTTPHandler_GetOrderDetail(t *testing.T) {
	detail := entities.OrderDetail{
		OrderID:   1001,
		BuyerID:   1,
		Status:    entities.OrderCompleted,
		CreatedOn: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Sellers:   []entities.SellerContact{{ID: 2, Name: "alice", Email: "alice@mail.com"}},
		Lines: []entities.OrderLineView{
			{SaleItemID: 10, Quantity: 2, PriceEach: 700, Description: "Apple iPhone 13 (128GB Black)"},
		},
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(orders *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "1001",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					GetOrderDetail(mock.Anything, 1001, 1).
					Return(detail, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":1001`,
		},
		{
			name:         "non-numeric id",
			orderID:      "abc",
			mockBehavior: func(orders *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid order id"`,
		},
		{
			name:    "not a participant",
			orderID: "1001",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					GetOrderDetail(mock.Anything, 1001, 1).
					Return(entities.OrderDetail{}, entities.ErrNotParticipant).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"forbidden"`,
		},
		{
			name:    "not found",
			orderID: "9999",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					GetOrderDetail(mock.Anything, 9999, 1).
					Return(entities.OrderDetail{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderService(t)
			carts := mocks.NewMockCartService(t)
			publisher := mocks.NewMockEventPublisher(t)
			tc.mockBehavior(orders)

			r := newTestRouter(t, orders, carts, publisher)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil)
			req.Header.Set("X-User-Id", "1")
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
	page := entities.OrderPage{
		Content: []entities.OrderSummary{
			{OrderID: 1001, BuyerID: 1, Status: entities.OrderCompleted, Sellers: []entities.SellerSummary{{ID: 2, Name: "alice"}}},
		},
		Page:          0,
		Size:          10,
		TotalElements: 1,
		TotalPages:    1,
		First:         true,
		Last:          true,
		Sort:          "createdOn:ASC",
	}

	testCases := []struct {
		name         string
		query        string
		mockBehavior func(orders *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "defaults",
			query: "",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					ListOrders(mock.Anything, 1, 0, 0, "", "").
					Return(page, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"sort":"createdOn:ASC"`,
		},
		{
			name:  "explicit paging",
			query: "?page=2&size=5&sort=paymentDate&direction=desc",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					ListOrders(mock.Anything, 1, 2, 5, "paymentDate", "desc").
					Return(page, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_elements":1`,
		},
		{
			name:         "non-numeric page",
			query:        "?page=abc",
			mockBehavior: func(orders *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid page"`,
		},
		{
			name:  "negative page",
			query: "?page=-1",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					ListOrders(mock.Anything, 1, -1, 0, "", "").
					Return(entities.OrderPage{}, entities.ErrInvalidPage).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid page parameters"`,
		},
		{
			name:  "unknown sort field",
			query: "?sort=price",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					ListOrders(mock.Anything, 1, 0, 0, "price", "").
					Return(entities.OrderPage{}, entities.ErrInvalidSort).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid page parameters"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderService(t)
			carts := mocks.NewMockCartService(t)
			publisher := mocks.NewMockEventPublisher(t)
			tc.mockBehavior(orders)

			r := newTestRouter(t, orders, carts, publisher)

			req := httptest.NewRequest(http.MethodGet, "/orders"+tc.query, nil)
			req.Header.Set("X-User-Id", "1")
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

func TestHTTPHandler_ListCart(t *testing.T) {
	views := []entities.CartItemView{
		{ID: 100, SaleItemID: 10, Quantity: 2, Description: "Apple iPhone 13 (128GB Black)", PriceEach: 700, AvailableQuantity: 5, SellerName: "alice"},
	}

	testCases := []struct {
		name         string
		mockBehavior func(carts *mocks.MockCartService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(carts *mocks.MockCartService) {
				carts.EXPECT().ListCart(mock.Anything, 1).Return(views, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"seller_name":"alice"`,
		},
		{
			name: "empty cart",
			mockBehavior: func(carts *mocks.MockCartService) {
				carts.EXPECT().ListCart(mock.Anything, 1).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "buyer not found",
			mockBehavior: func(carts *mocks.MockCartService) {
				carts.EXPECT().ListCart(mock.Anything, 1).Return(nil, entities.ErrAccountNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"account not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderService(t)
			carts := mocks.NewMockCartService(t)
			publisher := mocks.NewMockEventPublisher(t)
			tc.mockBehavior(carts)

			r := newTestRouter(t, orders, carts, publisher)

			req := httptest.NewRequest(http.MethodGet, "/cart", nil)
			req.Header.Set("X-User-Id", "1")
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
