package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cardapio/cardapio/backend/food-service/internal/food"
)

// ObjectStore is the subset of storage.MinIOStorage used by MinIORepo.
type ObjectStore interface {
	PutBytes(ctx context.Context, key string, data []byte, contentType string) error
	GetBytes(ctx context.Context, key string) ([]byte, error)
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	Ping(ctx context.Context) error
}

// MinIORepo writes each food as a JSON object named
// "<prefix><created-unix-nanos>-<id>.json", so a lexicographic listing of the
// prefix yields creation order. Caller-supplied duplicate IDs are not
// detected by this driver.
type MinIORepo struct {
	store  ObjectStore
	prefix string
}

func NewMinIORepo(store ObjectStore, prefix string) *MinIORepo {
	if prefix == "" {
		prefix = "foods/"
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &MinIORepo{store: store, prefix: prefix}
}

func (m *MinIORepo) objectKey(f *food.Food) string {
	return fmt.Sprintf("%s%020d-%s.json", m.prefix, f.CreatedAt.UnixNano(), f.ID)
}

func (m *MinIORepo) Save(ctx context.Context, f *food.Food) (*food.Food, error) {
	prepare(f)
	b, err := json.Marshal(f)
	if err != nil {
		return nil, storageError("minio encode", err)
	}
	if err := m.store.PutBytes(ctx, m.objectKey(f), b, "application/json"); err != nil {
		return nil, storageError("minio save", err)
	}
	out := *f
	return &out, nil
}

func (m *MinIORepo) FindAll(ctx context.Context) ([]*food.Food, error) {
	keys, err := m.store.ListKeys(ctx, m.prefix)
	if err != nil {
		return nil, storageError("minio list", err)
	}
	out := make([]*food.Food, 0, len(keys))
	for _, k := range keys {
		if !strings.HasSuffix(k, ".json") {
			continue
		}
		b, err := m.store.GetBytes(ctx, k)
		if err != nil {
			return nil, storageError("minio get", err)
		}
		var f food.Food
		if err := json.Unmarshal(b, &f); err != nil {
			return nil, storageError("minio decode", err)
		}
		out = append(out, &f)
	}
	return out, nil
}

func (m *MinIORepo) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}
