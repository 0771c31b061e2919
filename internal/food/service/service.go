package service

import (
	"context"

	"github.com/cardapio/cardapio/backend/food-service/internal/food"
	"github.com/cardapio/cardapio/backend/food-service/internal/food/repository"
	"github.com/cardapio/cardapio/backend/food-service/pkg/logger"
	"github.com/cardapio/cardapio/backend/food-service/pkg/metrics"
)

// Service turns transfer shapes into records and back. It holds no state of
// its own; all persistence goes through the repository.
type Service struct {
	repo repository.Repository
}

func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new record built from req and returns it with its ID.
func (s *Service) Create(ctx context.Context, req food.FoodRequest) (*food.Food, error) {
	saved, err := s.repo.Save(ctx, food.NewFood(req))
	if err != nil {
		metrics.StorageErrors.WithLabelValues("save").Inc()
		logger.Errorf("save food %q: %v", req.Name, err)
		return nil, err
	}
	metrics.FoodsCreated.Inc()
	logger.Debugf("saved food id=%s", saved.ID)
	return saved, nil
}

// List returns every stored record as a response shape, in repository order.
// The result is never nil.
func (s *Service) List(ctx context.Context) ([]food.FoodResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		metrics.StorageErrors.WithLabelValues("find_all").Inc()
		logger.Errorf("list foods: %v", err)
		return nil, err
	}
	out := make([]food.FoodResponse, 0, len(list))
	for _, f := range list {
		out = append(out, food.NewFoodResponse(f))
	}
	return out, nil
}

// Ping checks the repository when the driver supports it.
func (s *Service) Ping(ctx context.Context) error {
	if p, ok := s.repo.(repository.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
