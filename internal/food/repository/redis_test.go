package repository

import (
	"context"
	"errors"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/cardapio/cardapio/backend/food-service/internal/food"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisRepo_SaveFindAll(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	repo := NewRedisRepo(client, "test:food:")
	ctx := context.Background()

	require.NoError(t, repo.Ping(ctx))

	list, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	price := 8.5
	a, err := repo.Save(ctx, &food.Food{Name: "Brigadeiro", Price: &price})
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	b, err := repo.Save(ctx, &food.Food{Name: "Esfiha", Image: "e.png"})
	require.NoError(t, err)

	require.True(t, m.Exists("test:food:"+a.ID))

	list, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, a.ID, list[0].ID)
	require.Equal(t, "Brigadeiro", list[0].Name)
	require.Equal(t, 8.5, *list[0].Price)
	require.Equal(t, b.ID, list[1].ID)
	require.Equal(t, "e.png", list[1].Image)
	require.Nil(t, list[1].Price)
}

func TestRedisRepo_DuplicateID(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	repo := NewRedisRepo(client, "")
	ctx := context.Background()

	_, err = repo.Save(ctx, &food.Food{ID: "x", Name: "one"})
	require.NoError(t, err)
	_, err = repo.Save(ctx, &food.Food{ID: "x", Name: "two"})
	require.True(t, errors.Is(err, ErrStorage))
	require.True(t, errors.Is(err, ErrDuplicateID))

	list, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "one", list[0].Name)
}

func TestRedisRepo_SkipsStaleIndexEntries(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	repo := NewRedisRepo(client, "food:")
	ctx := context.Background()

	a, err := repo.Save(ctx, &food.Food{Name: "gone"})
	require.NoError(t, err)
	_, err = repo.Save(ctx, &food.Food{Name: "kept"})
	require.NoError(t, err)
	m.Del("food:" + a.ID)

	list, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "kept", list[0].Name)
}

func TestRedisRepo_UnreachableIsStorageError(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	repo := NewRedisRepo(client, "")
	m.Close()

	_, err = repo.FindAll(context.Background())
	require.True(t, errors.Is(err, ErrStorage))
	_, err = repo.Save(context.Background(), &food.Food{Name: "x"})
	require.True(t, errors.Is(err, ErrStorage))
}
