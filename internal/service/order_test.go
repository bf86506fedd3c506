package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mshop-dev/order-service/internal/entities"
	"github.com/mshop-dev/order-service/internal/service"
	mocks "github.com/mshop-dev/order-service/internal/service/mocks"
	txMocks "github.com/mshop-dev/order-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceMocks struct {
	accounts *mocks.MockAccountRepo
	sellers  *mocks.MockSellerRepo
	items    *mocks.MockSaleItemRepo
	orders   *mocks.MockOrderRepo
	carts    *mocks.MockCartRepo
	cache    *mocks.MockCache
}

func newServiceMocks(t *testing.T) *serviceMocks {
	return &serviceMocks{
		accounts: mocks.NewMockAccountRepo(t),
		sellers:  mocks.NewMockSellerRepo(t),
		items:    mocks.NewMockSaleItemRepo(t),
		orders:   mocks.NewMockOrderRepo(t),
		carts:    mocks.NewMockCartRepo(t),
		cache:    mocks.NewMockCache(t),
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	type MockBehavior func(m *serviceMocks)

	dbError := errors.New("db error")

	buyer := entities.Account{ID: 1, Nickname: "buyer"}
	phone := entities.SaleItem{ID: 10, SellerID: 2, Brand: "Apple", Model: "iPhone 13", Color: "Black", StorageGB: 128, Price: 700, Quantity: 5}
	laptop := entities.SaleItem{ID: 20, SellerID: 3, Brand: "Lenovo", Model: "ThinkPad", Color: "", StorageGB: 0, Price: 1200, Quantity: 1}

	hasStatus := func(status entities.OrderStatus) interface{} {
		return mock.MatchedBy(func(o entities.Order) bool { return o.Status == status })
	}

	testCases := []struct {
		name         string
		req          service.PlaceOrderRequest
		mockBehavior MockBehavior
		wantStatuses []entities.OrderStatus
		wantErr      error
	}{
		{
			name: "two sellers, one group out of stock",
			req: service.PlaceOrderRequest{
				ShippingAddress: "221B Baker Street",
				Items: []service.OrderLineRequest{
					{SaleItemID: 10, Quantity: 2, Price: 700},
					{SaleItemID: 20, Quantity: 3, Price: 1200},
				},
			},
			mockBehavior: func(m *serviceMocks) {
				m.accounts.EXPECT().GetAccountByID(mock.Anything, 1).Return(buyer, nil)
				m.items.EXPECT().GetSaleItemByID(mock.Anything, 10).Return(phone, nil)
				m.items.EXPECT().GetSaleItemByID(mock.Anything, 20).Return(laptop, nil)
				m.items.EXPECT().LockSaleItems(mock.Anything, []int{10, 20}).
					Return([]entities.SaleItem{phone, laptop}, nil)

				m.sellers.EXPECT().GetSellerByID(mock.Anything, 2).Return(entities.Seller{AccountID: 2, Nickname: "alice"}, nil)
				m.orders.EXPECT().SaveOrder(mock.Anything, hasStatus(entities.OrderCompleted)).
					Return(entities.Order{ID: 1001, BuyerID: 1, Status: entities.OrderCompleted}, nil)
				m.items.EXPECT().DecrementQuantity(mock.Anything, 10, 2).Return(nil)

				m.sellers.EXPECT().GetSellerByID(mock.Anything, 3).Return(entities.Seller{AccountID: 3, Nickname: "bob"}, nil)
				m.orders.EXPECT().SaveOrder(mock.Anything, hasStatus(entities.OrderCancelled)).
					Return(entities.Order{ID: 1002, BuyerID: 1, Status: entities.OrderCancelled}, nil)

				m.orders.EXPECT().SaveOrderLines(mock.Anything, mock.Anything).Return(nil).Twice()

				// из корзины уходит только купленный товар
				m.carts.EXPECT().GetCartEntriesByBuyerAndItemIDs(mock.Anything, 1, []int{10}).
					Return([]entities.CartEntry{{ID: 100, BuyerID: 1, SaleItemID: 10}}, nil)
				m.carts.EXPECT().DeleteCartEntries(mock.Anything, []int{100}).Return(nil)
			},
			wantStatuses: []entities.OrderStatus{entities.OrderCompleted, entities.OrderCancelled},
		},
		{
			name: "duplicate lines of one item exceed stock together",
			req: service.PlaceOrderRequest{
				Items: []service.OrderLineRequest{
					{SaleItemID: 10, Quantity: 3, Price: 700},
					{SaleItemID: 10, Quantity: 3, Price: 700},
				},
			},
			mockBehavior: func(m *serviceMocks) {
				m.accounts.EXPECT().GetAccountByID(mock.Anything, 1).Return(buyer, nil)
				m.items.EXPECT().GetSaleItemByID(mock.Anything, 10).Return(phone, nil).Twice()
				m.items.EXPECT().LockSaleItems(mock.Anything, []int{10}).
					Return([]entities.SaleItem{phone}, nil)
				m.sellers.EXPECT().GetSellerByID(mock.Anything, 2).Return(entities.Seller{AccountID: 2, Nickname: "alice"}, nil)
				// суммарно 6 > 5, группа отменяется целиком, списаний нет
				m.orders.EXPECT().SaveOrder(mock.Anything, hasStatus(entities.OrderCancelled)).
					Return(entities.Order{ID: 1003, BuyerID: 1, Status: entities.OrderCancelled}, nil)
				m.orders.EXPECT().SaveOrderLines(mock.Anything, mock.Anything).Return(nil)
			},
			wantStatuses: []entities.OrderStatus{entities.OrderCancelled},
		},
		{
			name: "empty items",
			req:  service.PlaceOrderRequest{},
			mockBehavior: func(m *serviceMocks) {
			},
			wantErr: entities.ErrEmptyOrder,
		},
		{
			name: "buyer not found",
			req: service.PlaceOrderRequest{
				Items: []service.OrderLineRequest{{SaleItemID: 10, Quantity: 1, Price: 700}},
			},
			mockBehavior: func(m *serviceMocks) {
				m.accounts.EXPECT().GetAccountByID(mock.Anything, 1).
					Return(entities.Account{}, entities.ErrAccountNotFound)
			},
			wantErr: entities.ErrAccountNotFound,
		},
		{
			name: "self purchase",
			req: service.PlaceOrderRequest{
				Items: []service.OrderLineRequest{{SaleItemID: 30, Quantity: 1, Price: 50}},
			},
			mockBehavior: func(m *serviceMocks) {
				m.accounts.EXPECT().GetAccountByID(mock.Anything, 1).Return(buyer, nil)
				m.items.EXPECT().GetSaleItemByID(mock.Anything, 30).
					Return(entities.SaleItem{ID: 30, SellerID: 1}, nil)
			},
			wantErr: entities.ErrSelfPurchase,
		},
		{
			name: "sale item deleted before lock",
			req: service.PlaceOrderRequest{
				Items: []service.OrderLineRequest{{SaleItemID: 10, Quantity: 1, Price: 700}},
			},
			mockBehavior: func(m *serviceMocks) {
				m.accounts.EXPECT().GetAccountByID(mock.Anything, 1).Return(buyer, nil)
				m.items.EXPECT().GetSaleItemByID(mock.Anything, 10).Return(phone, nil)
				m.items.EXPECT().LockSaleItems(mock.Anything, []int{10}).
					Return(nil, nil)
			},
			wantErr: entities.ErrSaleItemNotFound,
		},
		{
			name: "retry works (first attempt fails, second succeeds)",
			req: service.PlaceOrderRequest{
				Items: []service.OrderLineRequest{{SaleItemID: 10, Quantity: 1, Price: 700}},
			},
			mockBehavior: func(m *serviceMocks) {
				m.accounts.EXPECT().GetAccountByID(mock.Anything, 1).Return(buyer, nil)
				// первая попытка - падает на резолве товара
				m.items.EXPECT().GetSaleItemByID(mock.Anything, 10).
					Once().Return(entities.SaleItem{}, dbError)
				// вторая попытка - всё ок
				m.items.EXPECT().GetSaleItemByID(mock.Anything, 10).Return(phone, nil)
				m.items.EXPECT().LockSaleItems(mock.Anything, []int{10}).
					Return([]entities.SaleItem{phone}, nil)
				m.sellers.EXPECT().GetSellerByID(mock.Anything, 2).Return(entities.Seller{AccountID: 2, Nickname: "alice"}, nil)
				m.orders.EXPECT().SaveOrder(mock.Anything, hasStatus(entities.OrderCompleted)).
					Return(entities.Order{ID: 1004, BuyerID: 1, Status: entities.OrderCompleted}, nil)
				m.items.EXPECT().DecrementQuantity(mock.Anything, 10, 1).Return(nil)
				m.orders.EXPECT().SaveOrderLines(mock.Anything, mock.Anything).Return(nil)
				m.carts.EXPECT().GetCartEntriesByBuyerAndItemIDs(mock.Anything, 1, []int{10}).
					Return(nil, nil)
			},
			wantStatuses: []entities.OrderStatus{entities.OrderCompleted},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			tc.mockBehavior(m)

			svc := service.NewOrderService(logger, tx, m.accounts, m.sellers, m.items, m.orders, m.carts, m.cache)

			results, err := svc.PlaceOrder(context.Background(), 1, tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, results, len(tc.wantStatuses))
			for i, status := range tc.wantStatuses {
				assert.Equal(t, status, results[i].Status)
			}
		})
	}
}

func TestOrderService_PlaceOrder_Snapshot(t *testing.T) {
	m := newServiceMocks(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})

	item := entities.SaleItem{ID: 10, SellerID: 2, Brand: "Apple", Model: "iPhone 13", Color: "Black", StorageGB: 128, Price: 700, Quantity: 5}

	m.accounts.EXPECT().GetAccountByID(mock.Anything, 1).Return(entities.Account{ID: 1}, nil)
	m.items.EXPECT().GetSaleItemByID(mock.Anything, 10).Return(item, nil)
	m.items.EXPECT().LockSaleItems(mock.Anything, []int{10}).Return([]entities.SaleItem{item}, nil)
	m.sellers.EXPECT().GetSellerByID(mock.Anything, 2).Return(entities.Seller{AccountID: 2, Nickname: "alice"}, nil)
	m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).
		Return(entities.Order{ID: 1001, BuyerID: 1, Status: entities.OrderCompleted}, nil)
	m.items.EXPECT().DecrementQuantity(mock.Anything, 10, 1).Return(nil)

	var savedLines []entities.OrderLine
	m.orders.EXPECT().SaveOrderLines(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, lines []entities.OrderLine) error {
			savedLines = lines
			return nil
		})
	m.carts.EXPECT().GetCartEntriesByBuyerAndItemIDs(mock.Anything, 1, []int{10}).Return(nil, nil)

	svc := service.NewOrderService(logger, tx, m.accounts, m.sellers, m.items, m.orders, m.carts, m.cache)

	results, err := svc.PlaceOrder(context.Background(), 1, service.PlaceOrderRequest{
		Items: []service.OrderLineRequest{{SaleItemID: 10, Quantity: 1, Price: 650}},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	// описание и цена фиксируются на момент покупки
	require.Len(t, savedLines, 1)
	assert.Equal(t, "Apple iPhone 13 (128GB Black)", savedLines[0].Description)
	assert.Equal(t, 650, savedLines[0].PriceEach)
	assert.Equal(t, 2, savedLines[0].SellerID)
	assert.Equal(t, 1001, savedLines[0].OrderID)
}

func TestOrderService_GetOrderDetail(t *testing.T) {
	type MockBehavior func(m *serviceMocks)

	createdOn := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:              1001,
		BuyerID:         1,
		Status:          entities.OrderCompleted,
		ShippingAddress: "221B Baker Street",
		CreatedOn:       createdOn,
		Lines: []entities.OrderLine{
			{ID: 1, OrderID: 1001, SaleItemID: 10, SellerID: 2, Quantity: 2, PriceEach: 700, Description: "Apple iPhone 13 (128GB Black)"},
		},
	}

	cachedDetail := entities.OrderDetail{
		OrderID:       1001,
		BuyerID:       1,
		Status:        entities.OrderCompleted,
		CreatedOn:     createdOn,
		LineSellerIDs: []int{2},
	}
	cachedData, err := cachedDetail.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		requesterID  int
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:        "cache hit, buyer",
			requesterID: 1,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("order:1001").Return(cachedData, true)
			},
		},
		{
			name:        "cache hit, seller of a line",
			requesterID: 2,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("order:1001").Return(cachedData, true)
			},
		},
		{
			name:        "cache hit, stranger",
			requesterID: 99,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("order:1001").Return(cachedData, true)
			},
			wantErr: entities.ErrNotParticipant,
		},
		{
			name:        "cache miss, loads and caches",
			requesterID: 1,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("order:1001").Return(nil, false)
				m.orders.EXPECT().GetOrderByID(mock.Anything, 1001).Return(order, nil)
				m.sellers.EXPECT().GetSellerByID(mock.Anything, 2).
					Return(entities.Seller{AccountID: 2, Nickname: "alice", Email: "alice@mail.com"}, nil)
				m.cache.EXPECT().Set("order:1001", mock.Anything)
			},
		},
		{
			name:        "corrupted cache entry falls back to repo",
			requesterID: 1,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("order:1001").Return([]byte("garbage"), true)
				m.orders.EXPECT().GetOrderByID(mock.Anything, 1001).Return(order, nil)
				m.sellers.EXPECT().GetSellerByID(mock.Anything, 2).
					Return(entities.Seller{AccountID: 2, Nickname: "alice"}, nil)
				m.cache.EXPECT().Set("order:1001", mock.Anything)
			},
		},
		{
			name:        "cache miss, stranger",
			requesterID: 99,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("order:1001").Return(nil, false)
				m.orders.EXPECT().GetOrderByID(mock.Anything, 1001).Return(order, nil)
			},
			wantErr: entities.ErrNotParticipant,
		},
		{
			name:        "order not found",
			requesterID: 1,
			mockBehavior: func(m *serviceMocks) {
				m.cache.EXPECT().Get("order:1001").Return(nil, false)
				m.orders.EXPECT().GetOrderByID(mock.Anything, 1001).
					Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(m)

			svc := service.NewOrderService(logger, tx, m.accounts, m.sellers, m.items, m.orders, m.carts, m.cache)

			detail, err := svc.GetOrderDetail(context.Background(), 1001, tc.requesterID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1001, detail.OrderID)
			assert.Equal(t, 1, detail.BuyerID)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	type MockBehavior func(m *serviceMocks)

	orders := []entities.Order{
		{
			ID:      1001,
			BuyerID: 1,
			Status:  entities.OrderCompleted,
			Lines: []entities.OrderLine{
				{SaleItemID: 10, SellerID: 2, Quantity: 1, PriceEach: 700, Description: "Apple iPhone 13 (128GB Black)"},
			},
		},
		{
			ID:      1002,
			BuyerID: 1,
			Status:  entities.OrderCancelled,
			Lines: []entities.OrderLine{
				{SaleItemID: 20, SellerID: 2, Quantity: 3, PriceEach: 1200, Description: "Lenovo ThinkPad (- -)"},
			},
		},
	}

	testCases := []struct {
		name          string
		page, size    int
		sortField     string
		sortDirection string
		mockBehavior  MockBehavior
		wantPage      entities.OrderPage
		wantErr       error
	}{
		{
			name: "middle page",
			page: 1, size: 10,
			mockBehavior: func(m *serviceMocks) {
				m.orders.EXPECT().
					ListOrdersForParticipant(mock.Anything, 1, entities.PageQuery{Page: 1, Size: 10, Sort: entities.SortByCreatedOn}).
					Return(orders, int64(25), nil)
				// продавец один и тот же, резолвится однократно
				m.sellers.EXPECT().GetSellerByID(mock.Anything, 2).
					Once().Return(entities.Seller{AccountID: 2, Nickname: "alice"}, nil)
			},
			wantPage: entities.OrderPage{
				Page: 1, Size: 10,
				TotalElements: 25, TotalPages: 3,
				First: false, Last: false,
				Sort: "createdOn:ASC",
			},
		},
		{
			name: "last page desc by payment date",
			page: 2, size: 10,
			sortField:     "paymentDate",
			sortDirection: "DESC",
			mockBehavior: func(m *serviceMocks) {
				m.orders.EXPECT().
					ListOrdersForParticipant(mock.Anything, 1, entities.PageQuery{Page: 2, Size: 10, Sort: entities.SortByPaymentDate, Desc: true}).
					Return(orders, int64(25), nil)
				m.sellers.EXPECT().GetSellerByID(mock.Anything, 2).
					Once().Return(entities.Seller{AccountID: 2, Nickname: "alice"}, nil)
			},
			wantPage: entities.OrderPage{
				Page: 2, Size: 10,
				TotalElements: 25, TotalPages: 3,
				First: false, Last: true,
				Sort: "paymentDate:DESC",
			},
		},
		{
			name: "empty result",
			page: 0, size: 10,
			mockBehavior: func(m *serviceMocks) {
				m.orders.EXPECT().
					ListOrdersForParticipant(mock.Anything, 1, mock.Anything).
					Return(nil, int64(0), nil)
			},
			wantPage: entities.OrderPage{
				Page: 0, Size: 10,
				TotalElements: 0, TotalPages: 0,
				First: true, Last: true,
				Sort: "createdOn:ASC",
			},
		},
		{
			name: "negative page",
			page: -1, size: 10,
			mockBehavior: func(m *serviceMocks) {},
			wantErr:      entities.ErrInvalidPage,
		},
		{
			name: "unknown sort field",
			page: 0, size: 10,
			sortField:    "price",
			mockBehavior: func(m *serviceMocks) {},
			wantErr:      entities.ErrInvalidSort,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(m)

			svc := service.NewOrderService(logger, tx, m.accounts, m.sellers, m.items, m.orders, m.carts, m.cache)

			page, err := svc.ListOrders(context.Background(), 1, tc.page, tc.size, tc.sortField, tc.sortDirection)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantPage.Page, page.Page)
			assert.Equal(t, tc.wantPage.Size, page.Size)
			assert.Equal(t, tc.wantPage.TotalElements, page.TotalElements)
			assert.Equal(t, tc.wantPage.TotalPages, page.TotalPages)
			assert.Equal(t, tc.wantPage.First, page.First)
			assert.Equal(t, tc.wantPage.Last, page.Last)
			assert.Equal(t, tc.wantPage.Sort, page.Sort)
		})
	}
}
