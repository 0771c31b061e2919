package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cardapio/cardapio/backend/food-service/internal/food"
	"github.com/google/uuid"
)

var (
	// ErrStorage marks every failure reported by a storage driver. Callers
	// test for it with errors.Is.
	ErrStorage = errors.New("food storage failure")

	ErrDuplicateID = errors.New("food id already exists")
)

// Repository is the only storage contract the service layer depends on.
type Repository interface {
	Save(ctx context.Context, f *food.Food) (*food.Food, error)
	FindAll(ctx context.Context) ([]*food.Food, error)
}

// Pinger is implemented by drivers that can report backend reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// prepare assigns the identifier and creation time a record is missing.
func prepare(f *food.Food) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
}
