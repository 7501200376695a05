package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	ID               int64
	Name             string
	Slug             string
	SKU              string
	Type             string
	Price            string
	Weight           string
	ManagesStock     bool
	StockQuantity    int
	Backorders       string
	SoldIndividually bool
	ThumbnailURL     string
}

type sessionSeed struct {
	Key      string
	Source   string
	Expiry   time.Duration
	Cart     string
	Totals   string
	Coupons  string
	Fees     string
	Customer string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			ID:            101,
			Name:          "Demo T-Shirt",
			Slug:          "demo-t-shirt",
			SKU:           "SKU-DEMO-TSHIRT",
			Type:          "simple",
			Price:         "19.99",
			Weight:        "0.2",
			ManagesStock:  true,
			StockQuantity: 50,
			Backorders:    "no",
			ThumbnailURL:  "https://cdn.example.com/demo-t-shirt.jpg",
		},
		{
			ID:               102,
			Name:             "Demo Mug",
			Slug:             "demo-mug",
			SKU:              "SKU-DEMO-MUG",
			Type:             "simple",
			Price:            "12.99",
			Weight:           "0.35",
			SoldIndividually: true,
			Backorders:       "no",
		},
		{
			ID:            103,
			Name:          "Demo Poster",
			Slug:          "demo-poster",
			SKU:           "SKU-DEMO-POSTER",
			Type:          "simple",
			Price:         "7.50",
			ManagesStock:  true,
			StockQuantity: 0,
			Backorders:    "notify",
		},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Slug, err)
		}
	}

	if err := upsertCustomer(ctx, pool, 1, "jane@example.com", "Jane", "Doe"); err != nil {
		return fmt.Errorf("upsert customer: %w", err)
	}

	if err := upsertCoupon(ctx, pool, "welcome10", "10% off first order", "percent", "10"); err != nil {
		return fmt.Errorf("upsert coupon: %w", err)
	}

	sessions := []sessionSeed{
		{
			Key:    "seed-guest-cart",
			Source: "headless",
			Expiry: 48 * time.Hour,
			Cart: `[
  {"key": "line-tshirt", "product_id": 101, "quantity": 2, "line_subtotal": 39.98, "line_subtotal_tax": 4.0, "line_total": 39.98, "line_tax": 4.0},
  {"key": "line-mug", "product_id": 102, "quantity": 1, "line_subtotal": 12.99, "line_subtotal_tax": 1.3, "line_total": 12.99, "line_tax": 1.3}
]`,
			Totals:   `{"subtotal": 52.97, "subtotal_tax": 5.3, "cart_contents_total": 52.97, "cart_contents_tax": 5.3, "total": 58.27, "total_tax": 5.3}`,
			Customer: `{"email": "guest@example.com", "billing": {"country": "US"}, "shipping": {"country": "US"}}`,
		},
		{
			Key:    "seed-account-cart",
			Source: "native",
			Expiry: 48 * time.Hour,
			Cart: `[
  {"key": "line-poster", "product_id": 103, "quantity": 3, "line_subtotal": 22.5, "line_subtotal_tax": 0, "line_total": 20.25, "line_tax": 0}
]`,
			Totals:   `{"subtotal": 22.5, "discount_total": 2.25, "cart_contents_total": 20.25, "fee_total": 1.5, "total": 21.75}`,
			Coupons:  `["welcome10"]`,
			Fees:     `{"cartsession-gift-wrap": {"name": "Gift Wrap", "amount": 1.5}}`,
			Customer: `{"id": 1, "email": "jane@example.com", "first_name": "Jane", "last_name": "Doe"}`,
		},
	}
	for _, s := range sessions {
		if err := upsertSession(ctx, pool, s); err != nil {
			return fmt.Errorf("upsert session %s: %w", s.Key, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (id, name, slug, sku, product_type, price, weight,
                      manages_stock, stock_quantity, backorders,
                      sold_individually, thumbnail_url)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::numeric, $8, $9, $10, $11, NULLIF($12, ''))
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    price = EXCLUDED.price,
    stock_quantity = EXCLUDED.stock_quantity
`
	_, err := pool.Exec(ctx, q,
		p.ID, p.Name, p.Slug, p.SKU, p.Type, p.Price, p.Weight,
		p.ManagesStock, p.StockQuantity, p.Backorders,
		p.SoldIndividually, p.ThumbnailURL,
	)
	return err
}

func upsertCustomer(ctx context.Context, pool *pgxpool.Pool, id int64, email, first, last string) error {
	const q = `
INSERT INTO customers (id, email, first_name, last_name)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email
`
	_, err := pool.Exec(ctx, q, id, email, first, last)
	return err
}

func upsertCoupon(ctx context.Context, pool *pgxpool.Pool, code, description, discountType, amount string) error {
	const q = `
INSERT INTO coupons (code, description, discount_type, amount)
VALUES ($1, $2, $3, $4::numeric)
ON CONFLICT (code) DO UPDATE SET amount = EXCLUDED.amount
`
	_, err := pool.Exec(ctx, q, code, description, discountType, amount)
	return err
}

func upsertSession(ctx context.Context, pool *pgxpool.Pool, s sessionSeed) error {
	const q = `
INSERT INTO cart_sessions (session_key, expires_at, source, cart, totals, coupons, fees, customer)
VALUES ($1, $2, $3, NULLIF($4, '')::jsonb, NULLIF($5, '')::jsonb, NULLIF($6, '')::jsonb, NULLIF($7, '')::jsonb, NULLIF($8, '')::jsonb)
ON CONFLICT (session_key) DO UPDATE SET
    expires_at = EXCLUDED.expires_at,
    cart = EXCLUDED.cart,
    totals = EXCLUDED.totals,
    coupons = EXCLUDED.coupons,
    fees = EXCLUDED.fees,
    customer = EXCLUDED.customer
`
	_, err := pool.Exec(ctx, q,
		s.Key, time.Now().UTC().Add(s.Expiry), s.Source,
		s.Cart, s.Totals, s.Coupons, s.Fees, s.Customer,
	)
	return err
}
