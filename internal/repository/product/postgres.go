package product

import (
	"context"
	"errors"
	"io"
	"log"

	"cartsession-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
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

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT id, COALESCE(parent_id, 0), name, slug, COALESCE(sku, ''), product_type,
       price, weight, COALESCE(length, 0), COALESCE(width, 0), COALESCE(height, 0),
       manages_stock, COALESCE(stock_quantity, 0), backorders,
       COALESCE(min_purchase_qty, 1), COALESCE(max_purchase_qty, 0),
       sold_individually, virtual, COALESCE(thumbnail_url, '')
FROM products
WHERE id = $1
`
	var p domain.Product
	var price decimal.NullDecimal
	var weight decimal.NullDecimal
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID,
		&p.ParentID,
		&p.Name,
		&p.Slug,
		&p.SKU,
		&p.Type,
		&price,
		&weight,
		&p.Length,
		&p.Width,
		&p.Height,
		&p.ManagesStock,
		&p.StockQuantity,
		&p.Backorders,
		&p.MinPurchaseQty,
		&p.MaxPurchaseQty,
		&p.SoldIndividually,
		&p.Virtual,
		&p.ThumbnailURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	if price.Valid {
		p.Price = price.Decimal
	}
	if weight.Valid {
		p.Weight = &weight.Decimal
	}
	return &p, nil
}
