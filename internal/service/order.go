package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/mshop-dev/order-service/internal/entities"
	"github.com/mshop-dev/order-service/pkg/trm"
	"github.com/mshop-dev/order-service/pkg/utils"
)

type AccountRepo interface {
	GetAccountByID(ctx context.Context, id int) (entities.Account, error)
}

type SellerRepo interface {
	GetSellerByID(ctx context.Context, id int) (entities.Seller, error)
}

type SaleItemRepo interface {
	GetSaleItemByID(ctx context.Context, id int) (entities.SaleItem, error)

	// LockSaleItems берёт row-level блокировки в порядке возрастания id
	LockSaleItems(ctx context.Context, ids []int) ([]entities.SaleItem, error)
	// DecrementQuantity - атомарный условный декремент остатка
	DecrementQuantity(ctx context.Context, id, quantity int) error
}

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	SaveOrderLines(ctx context.Context, lines []entities.OrderLine) error
	GetOrderByID(ctx context.Context, id int) (entities.Order, error)
	ListOrdersForParticipant(ctx context.Context, userID int, q entities.PageQuery) ([]entities.Order, int64, error)
	HasBuyerOrderedItem(ctx context.Context, buyerID, saleItemID int) (bool, error)
}

type CartRepo interface {
	GetCartEntriesByBuyer(ctx context.Context, buyerID int) ([]entities.CartEntry, error)
	GetCartEntriesByBuyerAndItemIDs(ctx context.Context, buyerID int, itemIDs []int) ([]entities.CartEntry, error)
	DeleteCartEntries(ctx context.Context, ids []int) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type OrderLineRequest struct {
	SaleItemID int
	Quantity   int
	Price      int
}

type PlaceOrderRequest struct {
	ShippingAddress string
	Note            string
	Items           []OrderLineRequest
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	accounts  AccountRepo
	sellers   SellerRepo
	items     SaleItemRepo
	orders    OrderRepo
	carts     CartRepo
	cache     Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	accounts AccountRepo,
	sellers SellerRepo,
	items SaleItemRepo,
	orders OrderRepo,
	carts CartRepo,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		accounts:  accounts,
		sellers:   sellers,
		items:     items,
		orders:    orders,
		carts:     carts,
		cache:     cache,
	}
}

// PlaceOrder оформляет чекаут: позиции группируются по продавцам, для каждой
// группы проверка остатков выполняется по принципу всё-или-ничего, заказ
// сохраняется со статусом COMPLETED либо CANCELLED. Успешно списанные товары
// убираются из корзины покупателя. Всё выполняется в одной транзакции.
func (s *orderService) PlaceOrder(ctx context.Context, buyerID int, req PlaceOrderRequest) ([]entities.OrderResult, error) {
	if len(req.Items) == 0 {
		return nil, entities.ErrEmptyOrder
	}

	var results []entities.OrderResult
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			results, err = s.placeOrder(ctx, buyerID, req)
			return err
		})
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn,
		entities.ErrAccountNotFound,
		entities.ErrSaleItemNotFound,
		entities.ErrSellerNotFound,
		entities.ErrSelfPurchase,
	); err != nil {
		return nil, err
	}

	s.logger.Debug("checkout processed", slog.Int("buyer_id", buyerID), slog.Int("orders", len(results)))
	return results, nil
}

func (s *orderService) placeOrder(ctx context.Context, buyerID int, req PlaceOrderRequest) ([]entities.OrderResult, error) {
	buyer, err := s.accounts.GetAccountByID(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve buyer: %w", err)
	}

	groups, sellerOrder, err := s.groupBySeller(ctx, buyerID, req.Items)
	if err != nil {
		return nil, err
	}

	locked, err := s.lockCheckoutItems(ctx, groups)
	if err != nil {
		return nil, err
	}

	results := make([]entities.OrderResult, 0, len(sellerOrder))
	var purchasedItemIDs []int

	for _, sellerID := range sellerOrder {
		result, purchased, err := s.fulfillSellerGroup(ctx, buyer, sellerID, groups[sellerID], req, locked)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
		purchasedItemIDs = append(purchasedItemIDs, purchased...)
	}

	if err := s.reconcileCart(ctx, buyerID, purchasedItemIDs); err != nil {
		return nil, err
	}

	return results, nil
}

type resolvedLine struct {
	item     entities.SaleItem
	quantity int
	price    int
}

// groupBySeller за один проход резолвит каждую позицию и раскладывает их по
// продавцам, сохраняя относительный порядок внутри группы. Покупка
// собственного товара запрещена.
func (s *orderService) groupBySeller(ctx context.Context, buyerID int, items []OrderLineRequest) (map[int][]resolvedLine, []int, error) {
	groups := make(map[int][]resolvedLine)
	var sellerOrder []int

	for _, line := range items {
		item, err := s.items.GetSaleItemByID(ctx, line.SaleItemID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve sale item %d: %w", line.SaleItemID, err)
		}
		if item.SellerID == buyerID {
			return nil, nil, entities.ErrSelfPurchase
		}

		if _, ok := groups[item.SellerID]; !ok {
			sellerOrder = append(sellerOrder, item.SellerID)
		}
		groups[item.SellerID] = append(groups[item.SellerID], resolvedLine{
			item:     item,
			quantity: line.Quantity,
			price:    line.Price,
		})
	}

	return groups, sellerOrder, nil
}

// lockCheckoutItems блокирует все товары чекаута разом, до обработки групп:
// блокировки берутся в детерминированном (id-sorted) порядке, поэтому два
// конкурентных чекаута с пересекающимися товарами не взаимоблокируются.
func (s *orderService) lockCheckoutItems(ctx context.Context, groups map[int][]resolvedLine) (map[int]entities.SaleItem, error) {
	seen := make(map[int]struct{})
	var ids []int
	for _, group := range groups {
		for _, line := range group {
			if _, ok := seen[line.item.ID]; ok {
				continue
			}
			seen[line.item.ID] = struct{}{}
			ids = append(ids, line.item.ID)
		}
	}
	sort.Ints(ids)

	items, err := s.items.LockSaleItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lock sale items: %w", err)
	}
	if len(items) != len(ids) {
		// Товар удалили между резолвом и блокировкой
		return nil, entities.ErrSaleItemNotFound
	}

	locked := make(map[int]entities.SaleItem, len(items))
	for _, item := range items {
		locked[item.ID] = item
	}
	return locked, nil
}

func (s *orderService) fulfillSellerGroup(
	ctx context.Context,
	buyer entities.Account,
	sellerID int,
	group []resolvedLine,
	req PlaceOrderRequest,
	locked map[int]entities.SaleItem,
) (entities.OrderResult, []int, error) {
	seller, err := s.sellers.GetSellerByID(ctx, sellerID)
	if err != nil {
		return entities.OrderResult{}, nil, fmt.Errorf("failed to resolve seller %d: %w", sellerID, err)
	}

	inStock := checkStock(group, locked)

	status := entities.OrderCancelled
	if inStock {
		status = entities.OrderCompleted
	}

	order, err := s.orders.SaveOrder(ctx, entities.Order{
		BuyerID:         buyer.ID,
		Status:          status,
		Note:            req.Note,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		return entities.OrderResult{}, nil, fmt.Errorf("failed to save order: %w", err)
	}

	lines := make([]entities.OrderLine, 0, len(group))
	lineViews := make([]entities.OrderLineView, 0, len(group))
	var purchased []int

	for _, line := range group {
		if inStock {
			if err := s.items.DecrementQuantity(ctx, line.item.ID, line.quantity); err != nil {
				return entities.OrderResult{}, nil, fmt.Errorf("failed to decrement sale item %d: %w", line.item.ID, err)
			}
			purchased = append(purchased, line.item.ID)
		}

		// Снапшот цены из запроса и описания на момент покупки
		lines = append(lines, entities.OrderLine{
			OrderID:     order.ID,
			SaleItemID:  line.item.ID,
			SellerID:    sellerID,
			Quantity:    line.quantity,
			PriceEach:   line.price,
			Description: line.item.DisplayName(),
		})
		lineViews = append(lineViews, entities.OrderLineView{
			SaleItemID:  line.item.ID,
			Quantity:    line.quantity,
			PriceEach:   line.price,
			Description: line.item.DisplayName(),
		})
	}

	if err := s.orders.SaveOrderLines(ctx, lines); err != nil {
		return entities.OrderResult{}, nil, fmt.Errorf("failed to save order lines: %w", err)
	}

	s.logger.Debug("seller group fulfilled",
		slog.Int("order_id", order.ID),
		slog.Int("seller_id", sellerID),
		slog.String("status", string(status)),
	)

	return entities.OrderResult{
		OrderID:         order.ID,
		BuyerID:         buyer.ID,
		Seller:          entities.SellerSummary{ID: seller.AccountID, Name: seller.Nickname},
		Status:          status,
		ShippingAddress: order.ShippingAddress,
		Note:            order.Note,
		CreatedOn:       order.CreatedOn,
		Lines:           lineViews,
	}, purchased, nil
}

// checkStock - групповое решение всё-или-ничего: одна нехватка отменяет всю
// группу продавца. Потребности суммируются по товару, чтобы две строки одного
// товара не прошли проверку по отдельности и не увели остаток в минус.
func checkStock(group []resolvedLine, locked map[int]entities.SaleItem) bool {
	need := make(map[int]int, len(group))
	for _, line := range group {
		need[line.item.ID] += line.quantity
	}
	for id, quantity := range need {
		item, ok := locked[id]
		if !ok || item.Quantity < quantity {
			return false
		}
	}
	return true
}

func (s *orderService) reconcileCart(ctx context.Context, buyerID int, purchasedItemIDs []int) error {
	if len(purchasedItemIDs) == 0 {
		return nil
	}

	entries, err := s.carts.GetCartEntriesByBuyerAndItemIDs(ctx, buyerID, purchasedItemIDs)
	if err != nil {
		return fmt.Errorf("failed to find cart entries: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	ids := make([]int, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}
	if err := s.carts.DeleteCartEntries(ctx, ids); err != nil {
		return fmt.Errorf("failed to delete cart entries: %w", err)
	}
	return nil
}

// GetOrderDetail возвращает детальный просмотр заказа. Заказ неизменяем,
// поэтому собранный вид кэшируется; проверка доступа выполняется после
// чтения из кэша.
func (s *orderService) GetOrderDetail(ctx context.Context, orderID, requesterID int) (entities.OrderDetail, error) {
	key := detailCacheKey(orderID)
	if data, ok := s.cache.Get(key); ok {
		var detail entities.OrderDetail
		if err := detail.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order detail", slog.Int("order_id", orderID), slog.Any("error", err))
		} else {
			if !detail.VisibleTo(requesterID) {
				return entities.OrderDetail{}, entities.ErrNotParticipant
			}
			return detail, nil
		}
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.OrderDetail{}, err
	}
	if !order.IsParticipant(requesterID) {
		return entities.OrderDetail{}, entities.ErrNotParticipant
	}

	sellerIDs := order.SellerIDs()
	sellers := make([]entities.SellerContact, 0, len(sellerIDs))
	for _, id := range sellerIDs {
		seller, err := s.sellers.GetSellerByID(ctx, id)
		if err != nil {
			return entities.OrderDetail{}, fmt.Errorf("failed to resolve seller %d: %w", id, err)
		}
		sellers = append(sellers, entities.SellerContact{
			ID:       seller.AccountID,
			Name:     seller.Nickname,
			FullName: seller.FullName,
			Email:    seller.Email,
			Mobile:   seller.Mobile,
		})
	}

	detail := entities.OrderDetail{
		OrderID:         order.ID,
		BuyerID:         order.BuyerID,
		Status:          order.Status,
		ShippingAddress: order.ShippingAddress,
		Note:            order.Note,
		CreatedOn:       order.CreatedOn,
		PaymentDate:     order.PaymentDate,
		Sellers:         sellers,
		Lines:           lineViews(order.Lines),
		LineSellerIDs:   sellerIDs,
	}

	if data, err := detail.Marshal(); err != nil {
		s.logger.Error("failed to marshal order detail", slog.Int("order_id", orderID), slog.Any("error", err))
	} else {
		s.cache.Set(key, data)
	}

	return detail, nil
}

// ListOrders возвращает страницу заказов, где пользователь - покупатель или
// продавец хотя бы одной позиции.
func (s *orderService) ListOrders(ctx context.Context, userID, page, size int, sortField, sortDirection string) (entities.OrderPage, error) {
	q, err := entities.NewPageQuery(page, size, sortField, sortDirection)
	if err != nil {
		return entities.OrderPage{}, err
	}

	orders, total, err := s.orders.ListOrdersForParticipant(ctx, userID, q)
	if err != nil {
		return entities.OrderPage{}, fmt.Errorf("failed to list orders: %w", err)
	}

	sellerSummaries := make(map[int]entities.SellerSummary)
	content := make([]entities.OrderSummary, 0, len(orders))
	for _, order := range orders {
		sellerIDs := order.SellerIDs()
		sellers := make([]entities.SellerSummary, 0, len(sellerIDs))
		for _, id := range sellerIDs {
			summary, ok := sellerSummaries[id]
			if !ok {
				seller, err := s.sellers.GetSellerByID(ctx, id)
				if err != nil {
					return entities.OrderPage{}, fmt.Errorf("failed to resolve seller %d: %w", id, err)
				}
				summary = entities.SellerSummary{ID: seller.AccountID, Name: seller.Nickname}
				sellerSummaries[id] = summary
			}
			sellers = append(sellers, summary)
		}

		content = append(content, entities.OrderSummary{
			OrderID:         order.ID,
			BuyerID:         order.BuyerID,
			Status:          order.Status,
			ShippingAddress: order.ShippingAddress,
			Note:            order.Note,
			CreatedOn:       order.CreatedOn,
			PaymentDate:     order.PaymentDate,
			Sellers:         sellers,
			Lines:           lineViews(order.Lines),
		})
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(q.Size) - 1) / int64(q.Size))
	}

	return entities.OrderPage{
		Content:       content,
		Page:          q.Page,
		Size:          q.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         q.Page == 0,
		Last:          q.Page >= totalPages-1,
		Sort:          q.SortString(),
	}, nil
}

func lineViews(lines []entities.OrderLine) []entities.OrderLineView {
	views := make([]entities.OrderLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, entities.OrderLineView{
			SaleItemID:  line.SaleItemID,
			Quantity:    line.Quantity,
			PriceEach:   line.PriceEach,
			Description: line.Description,
		})
	}
	return views
}

func detailCacheKey(orderID int) string {
	return "order:" + strconv.Itoa(orderID)
}
