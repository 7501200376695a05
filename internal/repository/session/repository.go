package session

import (
	"context"

	"cartsession-api/internal/domain"
)

// Sort orders accepted by List.
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// ListParams narrows a List call. OrderBy must be one of the listing sort
// keys; anything else falls back to session creation time.
type ListParams struct {
	Offset  int
	Limit   int
	OrderBy string
	Order   string
}

type Repository interface {
	Get(ctx context.Context, key string) (*domain.SessionRecord, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, params ListParams) ([]domain.SessionRecord, error)
	Count(ctx context.Context) (int, error)
}
