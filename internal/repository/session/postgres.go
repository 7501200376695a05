package session

import (
	"context"
	"errors"
	"fmt"

	"cartsession-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectColumns = `
id, session_key, created_at, expires_at, source,
cart, cart_cache, totals, coupons, fees, removed_contents, customer
`

// Sort keys exposed by the listing endpoint, mapped to their columns. The
// map doubles as the whitelist: ORDER BY is interpolated, never bound.
var orderColumns = map[string]string{
	"cart_created": "created_at",
	"cart_expiry":  "expires_at",
	"cart_key":     "session_key",
	"cart_source":  "source",
}

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context, key string) (*domain.SessionRecord, error) {
	q := fmt.Sprintf(`SELECT %s FROM cart_sessions WHERE session_key = $1`, selectColumns)

	var rec domain.SessionRecord
	err := r.pool.QueryRow(ctx, q, key).Scan(
		&rec.ID,
		&rec.Key,
		&rec.Created,
		&rec.Expiry,
		&rec.Source,
		&rec.Cart,
		&rec.CartCache,
		&rec.Totals,
		&rec.Coupons,
		&rec.Fees,
		&rec.RemovedContents,
		&rec.Customer,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *postgresRepo) Delete(ctx context.Context, key string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_sessions WHERE session_key = $1`, key)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) List(ctx context.Context, params ListParams) ([]domain.SessionRecord, error) {
	column, ok := orderColumns[params.OrderBy]
	if !ok {
		column = "created_at"
	}
	order := OrderDesc
	if params.Order == OrderAsc {
		order = OrderAsc
	}

	q := fmt.Sprintf(`SELECT %s FROM cart_sessions ORDER BY %s %s OFFSET $1 LIMIT $2`, selectColumns, column, order)

	rows, err := r.pool.Query(ctx, q, params.Offset, params.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SessionRecord
	for rows.Next() {
		var rec domain.SessionRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Key,
			&rec.Created,
			&rec.Expiry,
			&rec.Source,
			&rec.Cart,
			&rec.CartCache,
			&rec.Totals,
			&rec.Coupons,
			&rec.Fees,
			&rec.RemovedContents,
			&rec.Customer,
		); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cart_sessions`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
