package repository

import (
	"context"
	"encoding/json"

	"github.com/cardapio/cardapio/backend/food-service/internal/food"
	"github.com/redis/go-redis/v9"
)

// RedisRepo stores each food as JSON under "<prefix><id>" and keeps the
// insertion order in the list "<prefix>index".
type RedisRepo struct {
	client *redis.Client
	prefix string
}

// NewRedisRepo creates a Redis-backed food repository. Prefix may be empty.
func NewRedisRepo(client *redis.Client, prefix string) *RedisRepo {
	if prefix == "" {
		prefix = "food:"
	}
	return &RedisRepo{client: client, prefix: prefix}
}

func (r *RedisRepo) key(id string) string {
	return r.prefix + id
}

func (r *RedisRepo) indexKey() string {
	return r.prefix + "index"
}

func (r *RedisRepo) Save(ctx context.Context, f *food.Food) (*food.Food, error) {
	prepare(f)
	b, err := json.Marshal(f)
	if err != nil {
		return nil, storageError("redis encode", err)
	}
	ok, err := r.client.SetNX(ctx, r.key(f.ID), b, 0).Result()
	if err != nil {
		return nil, storageError("redis save", err)
	}
	if !ok {
		return nil, storageError("redis save", ErrDuplicateID)
	}
	if err := r.client.RPush(ctx, r.indexKey(), f.ID).Err(); err != nil {
		_ = r.client.Del(ctx, r.key(f.ID)).Err()
		return nil, storageError("redis index", err)
	}
	out := *f
	return &out, nil
}

func (r *RedisRepo) FindAll(ctx context.Context) ([]*food.Food, error) {
	ids, err := r.client.LRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, storageError("redis index", err)
	}
	out := make([]*food.Food, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, storageError("redis find", err)
	}
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			// removed out of band; the index entry is stale
			continue
		}
		var f food.Food
		if err := json.Unmarshal([]byte(s), &f); err != nil {
			return nil, storageError("redis decode", err)
		}
		out = append(out, &f)
	}
	return out, nil
}

func (r *RedisRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
