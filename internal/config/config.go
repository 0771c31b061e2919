package config

import (
	"fmt"
	"time"

	"github.com/cardapio/cardapio/backend/food-service/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage driver names accepted by FOOD_STORE.
const (
	StoreMemory   = "memory"
	StoreMongo    = "mongo"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreMinIO    = "minio"
)

// Config holds application configuration
type Config struct {
	LogLevel  string
	Server    ServerConfig
	Store     StoreConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	Postgres  PostgresConfig
	MinIO     storage.MinIOConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port         string `validate:"required"`
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type StoreConfig struct {
	Kind string `validate:"oneof=memory mongo redis postgres minio"`
}

type MongoDBConfig struct {
	URI        string `validate:"required_if=Selected true"`
	Database   string `validate:"required_if=Selected true"`
	Collection string
	Timeout    time.Duration
	Selected   bool
}

type RedisConfig struct {
	Host     string `validate:"required_if=Selected true"`
	Port     string
	Password string
	DB       int
	Prefix   string
	Selected bool
}

// Addr returns host:port for the Redis client.
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

type PostgresConfig struct {
	URL      string `validate:"required_if=Selected true"`
	Table    string
	Selected bool
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64 `validate:"gte=0"`
	Burst         int     `validate:"gte=0"`
	WindowSeconds int     `validate:"gte=0"`
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_ENVIRONMENT", "development")
	v.SetDefault("FOOD_STORE", StoreMemory)
	v.SetDefault("MONGODB_DATABASE", "cardapio")
	v.SetDefault("MONGODB_COLLECTION", "foods")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PREFIX", "food:")
	v.SetDefault("POSTGRES_TABLE", "foods")
	v.SetDefault("MINIO_BUCKET", storage.DefaultBucket)
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)

	kind := v.GetString("FOOD_STORE")
	cfg := &Config{
		LogLevel: v.GetString("LOG_LEVEL"),
		Server: ServerConfig{
			Port:         v.GetString("SERVER_PORT"),
			Host:         v.GetString("SERVER_HOST"),
			Environment:  v.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Store: StoreConfig{Kind: kind},
		MongoDB: MongoDBConfig{
			URI:        v.GetString("MONGODB_URI"),
			Database:   v.GetString("MONGODB_DATABASE"),
			Collection: v.GetString("MONGODB_COLLECTION"),
			Timeout:    time.Duration(v.GetInt("MONGODB_TIMEOUT")) * time.Second,
			Selected:   kind == StoreMongo,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			Prefix:   v.GetString("REDIS_PREFIX"),
			Selected: kind == StoreRedis,
		},
		Postgres: PostgresConfig{
			URL:      v.GetString("POSTGRES_URL"),
			Table:    v.GetString("POSTGRES_TABLE"),
			Selected: kind == StorePostgres,
		},
		MinIO: storage.MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
			Bucket:    v.GetString("MINIO_BUCKET"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       v.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      v.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         v.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: v.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if kind == StoreMinIO && cfg.MinIO.Endpoint == "" {
		return nil, fmt.Errorf("invalid config: MINIO_ENDPOINT is required when FOOD_STORE=%s", StoreMinIO)
	}
	return cfg, nil
}
