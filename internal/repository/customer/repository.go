package customer

import (
	"context"

	"cartsession-api/internal/domain"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}
