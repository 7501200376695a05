package customer

import (
	"context"
	"errors"
	"io"
	"log"

	"cartsession-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const q = `
SELECT id, email, COALESCE(first_name, ''), COALESCE(last_name, ''), vat_exempt
FROM customers
WHERE id = $1
`
	var c domain.Customer
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&c.ID,
		&c.Email,
		&c.FirstName,
		&c.LastName,
		&c.VatExempt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("customer repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &c, nil
}
