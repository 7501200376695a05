package product

import (
	"context"

	"cartsession-api/internal/domain"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}
