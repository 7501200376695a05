package coupon

import (
	"context"

	"cartsession-api/internal/domain"
)

type Repository interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}
