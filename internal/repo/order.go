package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mshop-dev/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/sync/errgroup"
)

var orderColumns = []string{
	"id", "customer_id", "status", "order_note",
	"shipping_address", "created_on", "payment_date",
}

var orderLineColumns = []string{
	"id", "order_id", "sale_item_id", "seller_id",
	"quantity", "price_each", "description",
}

// sortColumns - белый список полей сортировки и их колонок.
var sortColumns = map[entities.SortField]string{
	entities.SortByCreatedOn:   "created_on",
	entities.SortByID:          "id",
	entities.SortByStatus:      "status",
	entities.SortByPaymentDate: "payment_date",
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("customer_id", "status", "order_note", "shipping_address", "payment_date").
		Values(o.BuyerID, string(o.Status), nullString(o.Note), o.ShippingAddress, o.PaymentDate).
		Suffix("RETURNING id, created_on").
		MustSql()

	var saved struct {
		ID        int          `db:"id"`
		CreatedOn sql.NullTime `db:"created_on"`
	}
	if err := r.getContext(ctx, &saved, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	o.ID = saved.ID
	o.CreatedOn = saved.CreatedOn.Time
	return o, nil
}

func (r *postgresRepo) SaveOrderLines(ctx context.Context, lines []entities.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.qb.Insert("order_lines").
		Columns("order_id", "sale_item_id", "seller_id", "quantity", "price_each", "description")

	for _, line := range lines {
		q = q.Values(line.OrderID, line.SaleItemID, line.SellerID, line.Quantity, line.PriceEach, line.Description)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order lines: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id int) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(orderLineColumns...).
		From("order_lines").
		Where(sq.Eq{"order_id": id}).
		OrderBy("id").
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order lines: %w", err)
	}

	return OrderToEntity(order, lines), nil
}

// ListOrdersForParticipant возвращает страницу заказов, где пользователь
// выступает покупателем или продавцом хотя бы одной позиции.
func (r *postgresRepo) ListOrdersForParticipant(ctx context.Context, userID int, q entities.PageQuery) ([]entities.Order, int64, error) {
	participant := sq.Or{
		sq.Eq{"customer_id": userID},
		sq.Expr("id IN (SELECT order_id FROM order_lines WHERE seller_id = ?)", userID),
	}

	direction := "ASC"
	if q.Desc {
		direction = "DESC"
	}
	sortColumn, ok := sortColumns[q.Sort]
	if !ok {
		return nil, 0, entities.ErrInvalidSort
	}

	listQuery, listArgs := r.qb.Select(orderColumns...).
		From("orders").
		Where(participant).
		OrderBy(fmt.Sprintf("%s %s", sortColumn, direction), "id ASC").
		Limit(uint64(q.Size)).
		Offset(uint64(q.Page * q.Size)).
		MustSql()

	countQuery, countArgs := r.qb.Select("COUNT(*)").
		From("orders").
		Where(participant).
		MustSql()

	var (
		orders []Order
		total  int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.selectContext(gctx, &orders, listQuery, listArgs...); err != nil {
			return fmt.Errorf("failed to select orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.getContext(gctx, &total, countQuery, countArgs...); err != nil {
			return fmt.Errorf("failed to count orders: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if len(orders) == 0 {
		return []entities.Order{}, total, nil
	}

	ids := make([]int, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	// Строки заказов страницы одним запросом
	linesQuery, linesArgs := r.qb.Select(orderLineColumns...).
		From("order_lines").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, linesQuery, linesArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to select order lines: %w", err)
	}
	linesByOrder := make(map[int][]OrderLine, len(orders))
	for _, line := range lines {
		linesByOrder[line.OrderID] = append(linesByOrder[line.OrderID], line)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, linesByOrder[order.ID]))
	}
	return result, total, nil
}

// HasBuyerOrderedItem сообщает, покупал ли пользователь товар ранее
// (учитываются только успешные заказы).
func (r *postgresRepo) HasBuyerOrderedItem(ctx context.Context, buyerID, saleItemID int) (bool, error) {
	query, args := r.qb.Select("1").
		From("orders o").
		Join("order_lines l ON l.order_id = o.id").
		Where(sq.And{
			sq.Eq{"o.customer_id": buyerID},
			sq.Eq{"l.sale_item_id": saleItemID},
			sq.Eq{"o.status": string(entities.OrderCompleted)},
		}).
		Limit(1).
		MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check ordered item: %w", err)
	}
	return true, nil
}
