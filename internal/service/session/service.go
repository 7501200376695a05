// Package session reconstructs stored cart sessions and projects them into
// field-filtered responses. It is the read side of the cart: storage,
// catalog, customer and pricing collaborators are injected, nothing here
// mutates a cart beyond whole-session deletion.
package session

import (
	"context"
	"io"
	"log"

	"cartsession-api/internal/domain"
	couponrepo "cartsession-api/internal/repository/coupon"
	customerrepo "cartsession-api/internal/repository/customer"
	"cartsession-api/internal/repository/persistentcart"
	productrepo "cartsession-api/internal/repository/product"
	sessrepo "cartsession-api/internal/repository/session"
)

// Settings carries the store-wide configuration the projection depends on.
// It is injected explicitly; the service never reads ambient state.
type Settings struct {
	TaxDisplayMode        string // "incl" or "excl"
	WeightUnit            string // kg, g, lbs, oz
	DimensionUnit         string // cm, mm, m, in, yd
	PriceDecimals         int32
	CurrencySymbol        string
	CouponsEnabled        bool
	PersistentCartEnabled bool
	APIBase               string // absolute base for hypermedia links, no trailing slash
}

type sessionRepo interface {
	Get(ctx context.Context, key string) (*domain.SessionRecord, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, params sessrepo.ListParams) ([]domain.SessionRecord, error)
	Count(ctx context.Context) (int, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

type customerRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type couponRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

type markerRepo interface {
	Clear(ctx context.Context, sessionKey string) error
}

type Service struct {
	sessions  sessionRepo
	products  productRepo
	customers customerRepo
	coupons   couponRepo
	markers   markerRepo
	settings  Settings
	hooks     *Hooks
	logger    *log.Logger
}

func New(
	sessions sessrepo.Repository,
	products productrepo.Repository,
	customers customerrepo.Repository,
	coupons couponrepo.Repository,
	markers persistentcart.Repository,
	settings Settings,
	hooks *Hooks,
	logger *log.Logger,
) *Service {
	if hooks == nil {
		hooks = &Hooks{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		sessions:  sessions,
		products:  products,
		customers: customers,
		coupons:   coupons,
		markers:   markers,
		settings:  settings,
		hooks:     hooks,
		logger:    logger,
	}
}
