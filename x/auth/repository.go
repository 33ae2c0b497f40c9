package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Repository keeps the token denylist. A logged-out token stays
// denied until it would have expired anyway.
type Repository interface {
	DenyToken(ctx context.Context, token string, ttl time.Duration) error
	IsTokenDenied(ctx context.Context, token string) (bool, error)
}

type repository struct {
	rdb *redis.Client
}

func NewRepository(rdb *redis.Client) Repository {
	return &repository{rdb}
}

func denyKey(token string) string {
	return "auth:denied:" + token
}

func (r *repository) DenyToken(ctx context.Context, token string, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "Auth.Repository.DenyToken")
	defer span.End()

	err := r.rdb.Set(ctx, denyKey(token), "1", ttl).Err()
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (r *repository) IsTokenDenied(ctx context.Context, token string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Auth.Repository.IsTokenDenied")
	defer span.End()

	_, err := r.rdb.Get(ctx, denyKey(token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	return true, nil
}
