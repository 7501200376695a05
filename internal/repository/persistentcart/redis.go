package persistentcart

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "persistent_cart:"

type redisRepo struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) Repository {
	return &redisRepo{client: client}
}

func (r *redisRepo) Clear(ctx context.Context, sessionKey string) error {
	if err := r.client.Del(ctx, keyPrefix+sessionKey).Err(); err != nil {
		return fmt.Errorf("clear persistent cart %s: %w", sessionKey, err)
	}
	return nil
}
