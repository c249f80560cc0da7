package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

// KV maps keys onto plain Redis strings. SET replaces the value atomically
// and without expiry.
type KV struct {
	client *goredis.Client
	prefix string
}

func NewKV(r *Redis, prefix string) *KV {
	return &KV{client: r.Client, prefix: prefix}
}

func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := k.client.Get(ctx, k.prefix+key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (k *KV) Set(ctx context.Context, key, value string) error {
	return k.client.Set(ctx, k.prefix+key, value, 0).Err()
}

func (k *KV) Close() error {
	return k.client.Close()
}
