package repo

import (
	"context"
	"fmt"

	"github.com/mshop-dev/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var cartColumns = []string{"id", "account_id", "sale_item_id", "quantity", "note"}

func (r *postgresRepo) GetCartEntriesByBuyer(ctx context.Context, buyerID int) ([]entities.CartEntry, error) {
	query, args := r.qb.Select(cartColumns...).
		From("carts").
		Where(sq.Eq{"account_id": buyerID}).
		OrderBy("id").
		MustSql()

	var rows []CartEntry
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart entries: %w", err)
	}

	entries := make([]entities.CartEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, CartEntryToEntity(row))
	}
	return entries, nil
}

func (r *postgresRepo) GetCartEntriesByBuyerAndItemIDs(ctx context.Context, buyerID int, itemIDs []int) ([]entities.CartEntry, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}

	query, args := r.qb.Select(cartColumns...).
		From("carts").
		Where(sq.And{
			sq.Eq{"account_id": buyerID},
			sq.Eq{"sale_item_id": itemIDs},
		}).
		MustSql()

	var rows []CartEntry
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart entries: %w", err)
	}

	entries := make([]entities.CartEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, CartEntryToEntity(row))
	}
	return entries, nil
}

// DeleteCartEntries идемпотентна: отсутствующие записи просто пропускаются.
func (r *postgresRepo) DeleteCartEntries(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	query, args := r.qb.Delete("carts").
		Where(sq.Eq{"id": ids}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete cart entries: %w", err)
	}
	return nil
}
