package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mshop-dev/order-service/internal/entities"
	"github.com/mshop-dev/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetAccountByID(ctx context.Context, id int) (entities.Account, error) {
	query, args := r.qb.Select("id", "nickname", "email", "full_name").
		From("accounts").
		Where(sq.Eq{"id": id}).
		MustSql()

	var account Account
	err := r.getContext(ctx, &account, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Account{}, entities.ErrAccountNotFound
	}
	if err != nil {
		return entities.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return AccountToEntity(account), nil
}

func (r *postgresRepo) GetSellerByID(ctx context.Context, id int) (entities.Seller, error) {
	query, args := r.qb.Select(
		"s.account_id", "a.nickname", "a.email", "a.full_name",
		"s.mobile", "s.bank_name", "s.bank_account_no").
		From("sellers s").
		Join("accounts a ON a.id = s.account_id").
		Where(sq.Eq{"s.account_id": id}).
		MustSql()

	var seller Seller
	err := r.getContext(ctx, &seller, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Seller{}, entities.ErrSellerNotFound
	}
	if err != nil {
		return entities.Seller{}, fmt.Errorf("failed to get seller: %w", err)
	}

	return SellerToEntity(seller), nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
