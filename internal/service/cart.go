package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mshop-dev/order-service/internal/entities"
	"github.com/mshop-dev/order-service/pkg/trm"
)

type cartService struct {
	logger    *slog.Logger
	txManager trm.Manager
	accounts  AccountRepo
	sellers   SellerRepo
	items     SaleItemRepo
	orders    OrderRepo
	carts     CartRepo
}

func NewCartService(
	logger *slog.Logger,
	txManager trm.Manager,
	accounts AccountRepo,
	sellers SellerRepo,
	items SaleItemRepo,
	orders OrderRepo,
	carts CartRepo,
) *cartService {
	return &cartService{
		logger:    logger.With(slog.String("service", "cart")),
		txManager: txManager,
		accounts:  accounts,
		sellers:   sellers,
		items:     items,
		orders:    orders,
		carts:     carts,
	}
}

// ListCart возвращает корзину покупателя, попутно выбрасывая мёртвые записи:
// товар удалён из каталога либо уже куплен этим покупателем ранее.
func (s *cartService) ListCart(ctx context.Context, buyerID int) ([]entities.CartItemView, error) {
	var views []entities.CartItemView

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.accounts.GetAccountByID(ctx, buyerID); err != nil {
			return fmt.Errorf("failed to resolve buyer: %w", err)
		}

		entries, err := s.carts.GetCartEntriesByBuyer(ctx, buyerID)
		if err != nil {
			return fmt.Errorf("failed to get cart entries: %w", err)
		}

		sellerNames := make(map[int]string)
		var stale []int
		views = make([]entities.CartItemView, 0, len(entries))

		for _, entry := range entries {
			item, err := s.items.GetSaleItemByID(ctx, entry.SaleItemID)
			if errors.Is(err, entities.ErrSaleItemNotFound) {
				stale = append(stale, entry.ID)
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to resolve sale item %d: %w", entry.SaleItemID, err)
			}

			ordered, err := s.orders.HasBuyerOrderedItem(ctx, buyerID, entry.SaleItemID)
			if err != nil {
				return fmt.Errorf("failed to check ordered item %d: %w", entry.SaleItemID, err)
			}
			if ordered {
				stale = append(stale, entry.ID)
				continue
			}

			name, ok := sellerNames[item.SellerID]
			if !ok {
				seller, err := s.sellers.GetSellerByID(ctx, item.SellerID)
				if err != nil {
					return fmt.Errorf("failed to resolve seller %d: %w", item.SellerID, err)
				}
				name = seller.Nickname
				sellerNames[item.SellerID] = name
			}

			views = append(views, entities.CartItemView{
				ID:                entry.ID,
				SaleItemID:        entry.SaleItemID,
				Quantity:          entry.Quantity,
				Note:              entry.Note,
				Description:       item.DisplayName(),
				PriceEach:         item.Price,
				AvailableQuantity: item.Quantity,
				SellerName:        name,
			})
		}

		if len(stale) > 0 {
			s.logger.Debug("evicting stale cart entries", slog.Int("buyer_id", buyerID), slog.Int("count", len(stale)))
		}
		return s.carts.DeleteCartEntries(ctx, stale)
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}
