package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mshop-dev/order-service/internal/entities"
	"github.com/mshop-dev/order-service/internal/service"
	mocks "github.com/mshop-dev/order-service/internal/service/mocks"
	txMocks "github.com/mshop-dev/order-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_ListCart(t *testing.T) {
	type MockBehavior func(m *serviceMocks)

	dbError := errors.New("db error")

	buyer := entities.Account{ID: 1, Nickname: "buyer"}
	phone := entities.SaleItem{ID: 10, SellerID: 2, Brand: "Apple", Model: "iPhone 13", Color: "Black", StorageGB: 128, Price: 700, Quantity: 5}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantItemIDs  []int
		wantErr      error
	}{
		{
			name: "live entries kept, stale evicted",
			mockBehavior: func(m *serviceMocks) {
				m.accounts.EXPECT().GetAccountByID(mock.Anything, 1).Return(buyer, nil)
				m.carts.EXPECT().GetCartEntriesByBuyer(mock.Anything, 1).Return([]entities.CartEntry{
					{ID: 100, BuyerID: 1, SaleItemID: 10, Quantity: 2},
					{ID: 101, BuyerID: 1, SaleItemID: 20, Quantity: 1},
					{ID: 102, BuyerID: 1, SaleItemID: 30, Quantity: 1},
				}, nil)

				m.items.EXPECT().GetSaleItemByID(mock.Anything, 10).Return(phone, nil)
				m.orders.EXPECT().HasBuyerOrderedItem(mock.Anything, 1, 10).Return(false, nil)
				m.sellers.EXPECT().GetSellerByID(mock.Anything, 2).
					Once().Return(entities.Seller{AccountID: 2, Nickname: "alice"}, nil)

				// товар удалён из каталога
				m.items.EXPECT().GetSaleItemByID(mock.Anything, 20).
					Return(entities.SaleItem{}, entities.ErrSaleItemNotFound)

				// товар уже куплен этим покупателем
				m.items.EXPECT().GetSaleItemByID(mock.Anything, 30).
					Return(entities.SaleItem{ID: 30, SellerID: 2}, nil)
				m.orders.EXPECT().HasBuyerOrderedItem(mock.Anything, 1, 30).Return(true, nil)

				m.carts.EXPECT().DeleteCartEntries(mock.Anything, []int{101, 102}).Return(nil)
			},
			wantItemIDs: []int{10},
		},
		{
			name: "empty cart",
			mockBehavior: func(m *serviceMocks) {
				m.accounts.EXPECT().GetAccountByID(mock.Anything, 1).Return(buyer, nil)
				m.carts.EXPECT().GetCartEntriesByBuyer(mock.Anything, 1).Return(nil, nil)
				m.carts.EXPECT().DeleteCartEntries(mock.Anything, mock.Anything).Return(nil)
			},
			wantItemIDs: []int{},
		},
		{
			name: "buyer not found",
			mockBehavior: func(m *serviceMocks) {
				m.accounts.EXPECT().GetAccountByID(mock.Anything, 1).
					Return(entities.Account{}, entities.ErrAccountNotFound)
			},
			wantErr: entities.ErrAccountNotFound,
		},
		{
			name: "cart query fails",
			mockBehavior: func(m *serviceMocks) {
				m.accounts.EXPECT().GetAccountByID(mock.Anything, 1).Return(buyer, nil)
				m.carts.EXPECT().GetCartEntriesByBuyer(mock.Anything, 1).Return(nil, dbError)
			},
			wantErr: dbError,
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
					})

			tc.mockBehavior(m)

			svc := service.NewCartService(logger, tx, m.accounts, m.sellers, m.items, m.orders, m.carts)

			views, err := svc.ListCart(context.Background(), 1)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			gotItemIDs := make([]int, 0, len(views))
			for _, v := range views {
				assert.NotEmpty(t, v.Description)
				assert.NotEmpty(t, v.SellerName)
				gotItemIDs = append(gotItemIDs, v.SaleItemID)
			}
			assert.Equal(t, tc.wantItemIDs, gotItemIDs)
		})
	}
}
