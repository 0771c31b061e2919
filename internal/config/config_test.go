package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FOOD_STORE", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, StoreMemory, cfg.Store.Kind)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "foods", cfg.MongoDB.Collection)
	require.Equal(t, "food:", cfg.Redis.Prefix)
}

func TestLoadConfigMongo(t *testing.T) {
	t.Setenv("FOOD_STORE", "mongo")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DATABASE", "cardapio_test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.MongoDB.Selected)
	require.Equal(t, "cardapio_test", cfg.MongoDB.Database)
}

func TestLoadConfigRequiresSelectedDriverSettings(t *testing.T) {
	cases := map[string]string{
		"mongo":    "MONGODB_URI",
		"redis":    "REDIS_HOST",
		"postgres": "POSTGRES_URL",
		"minio":    "MINIO_ENDPOINT",
	}
	for kind, key := range cases {
		t.Run(kind, func(t *testing.T) {
			t.Setenv("FOOD_STORE", kind)
			t.Setenv(key, "")
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestLoadConfigRejectsUnknownStore(t *testing.T) {
	t.Setenv("FOOD_STORE", "cassandra")
	_, err := LoadConfig()
	require.Error(t, err)
}

func TestRedisAddr(t *testing.T) {
	t.Setenv("FOOD_STORE", "redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "cache:6380", cfg.Redis.Addr())
}
