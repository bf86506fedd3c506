package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mshop-dev/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var saleItemColumns = []string{
	"id", "seller_id", "brand", "model", "description",
	"color", "storage_gb", "ram_gb", "price", "quantity",
	"created_on", "updated_on",
}

func (r *postgresRepo) GetSaleItemByID(ctx context.Context, id int) (entities.SaleItem, error) {
	query, args := r.qb.Select(saleItemColumns...).
		From("sale_items").
		Where(sq.Eq{"id": id}).
		MustSql()

	var item SaleItem
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.SaleItem{}, entities.ErrSaleItemNotFound
	}
	if err != nil {
		return entities.SaleItem{}, fmt.Errorf("failed to get sale item: %w", err)
	}

	return SaleItemToEntity(item), nil
}

// LockSaleItems берёт блокировки строк в порядке возрастания id, чтобы два
// конкурентных чекаута с пересекающимися товарами не зашли в deadlock.
func (r *postgresRepo) LockSaleItems(ctx context.Context, ids []int) ([]entities.SaleItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args := r.qb.Select(saleItemColumns...).
		From("sale_items").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		Suffix("FOR UPDATE").
		MustSql()

	var items []SaleItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to lock sale items: %w", err)
	}

	result := make([]entities.SaleItem, 0, len(items))
	for _, item := range items {
		result = append(result, SaleItemToEntity(item))
	}
	return result, nil
}

// DecrementQuantity - условный декремент: запас не может уйти в минус,
// недостаток проявляется как ErrOutOfStock по нулю затронутых строк.
func (r *postgresRepo) DecrementQuantity(ctx context.Context, id, quantity int) error {
	query, args := r.qb.Update("sale_items").
		Set("quantity", sq.Expr("quantity - ?", quantity)).
		Set("updated_on", sq.Expr("now()")).
		Where(sq.And{
			sq.Eq{"id": id},
			sq.GtOrEq{"quantity": quantity},
		}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement quantity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrOutOfStock
	}
	return nil
}
