package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardapio/cardapio/backend/food-service/handlers"
	"github.com/cardapio/cardapio/backend/food-service/internal/config"
	"github.com/cardapio/cardapio/backend/food-service/internal/database"
	"github.com/cardapio/cardapio/backend/food-service/internal/food/handler"
	"github.com/cardapio/cardapio/backend/food-service/internal/food/repository"
	"github.com/cardapio/cardapio/backend/food-service/internal/food/service"
	"github.com/cardapio/cardapio/backend/food-service/internal/storage"
	"github.com/cardapio/cardapio/backend/food-service/pkg/logger"
	"github.com/cardapio/cardapio/backend/food-service/pkg/metrics"
	"github.com/cardapio/cardapio/backend/food-service/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL is read again by config; this covers messages logged while loading it
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	if cfg.Server.Environment == "development" {
		logger.SetOutput(os.Stdout, true)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Infof("config loaded: store=%s env=%s log=%s", cfg.Store.Kind, cfg.Server.Environment, logger.LevelString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics(), middleware.CORS())

	// Redis is shared by the redis store and the distributed rate limiter.
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		rdb, err = database.ConnectRedis(ctx, cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB, 5*time.Second)
		if err != nil {
			if cfg.Store.Kind == config.StoreRedis {
				logger.Fatalf("redis store selected but unreachable: %v", err)
			}
			logger.Warnf("failed to connect to Redis (%s): %v", cfg.Redis.Addr(), err)
			rdb = nil
		} else {
			defer rdb.Close()
			logger.Infof("connected to Redis at %s", cfg.Redis.Addr())
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
			logger.Infof("rate limiter enabled (redis, %.1f rps)", cfg.RateLimit.RPS)
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			logger.Infof("rate limiter enabled (memory, %.1f rps)", cfg.RateLimit.RPS)
		}
	}

	repo, closeRepo, err := openRepository(ctx, cfg, rdb)
	if err != nil {
		logger.Fatalf("failed to open %s store: %v", cfg.Store.Kind, err)
	}
	defer closeRepo()
	svc := service.New(repo)

	probes := map[string]handlers.Probe{"storage": svc.Ping}
	if rdb != nil && cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
		probes["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	handlers.RegisterHealth(r, startTime, probes)
	handlers.RegisterSwagger(r)
	handler.RegisterFoodRoutes(r, svc)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Infof("food service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}

// openRepository builds the driver named by FOOD_STORE. The returned func
// releases the driver's connections.
func openRepository(ctx context.Context, cfg *config.Config, rdb *redis.Client) (repository.Repository, func(), error) {
	noop := func() {}
	switch cfg.Store.Kind {
	case config.StoreMongo:
		client, err := connectMongoWithRetry(ctx, cfg.MongoDB)
		if err != nil {
			return nil, noop, err
		}
		col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
		logger.Infof("using MongoDB collection %s.%s", cfg.MongoDB.Database, cfg.MongoDB.Collection)
		return repository.NewMongoRepo(col), func() { _ = client.Disconnect(context.Background()) }, nil
	case config.StoreRedis:
		if rdb == nil {
			return nil, noop, errors.New("redis client unavailable")
		}
		logger.Infof("using Redis with key prefix %q", cfg.Redis.Prefix)
		return repository.NewRedisRepo(rdb, cfg.Redis.Prefix), noop, nil
	case config.StorePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres.URL, 10*time.Second)
		if err != nil {
			return nil, noop, err
		}
		logger.Infof("using Postgres table %s", cfg.Postgres.Table)
		return repository.NewPostgresRepo(pool, cfg.Postgres.Table), pool.Close, nil
	case config.StoreMinIO:
		s, err := storage.NewMinIOStorage(&cfg.MinIO)
		if err != nil {
			return nil, noop, err
		}
		logger.Infof("using MinIO bucket %s", cfg.MinIO.Bucket)
		return repository.NewMinIORepo(s, "foods/"), noop, nil
	default:
		logger.Warnf("using in-memory store; records are lost on restart")
		return repository.NewMemoryRepo(), noop, nil
	}
}

// connectMongoWithRetry tolerates the database starting after the service.
func connectMongoWithRetry(ctx context.Context, cfg config.MongoDBConfig) (*mongo.Client, error) {
	const maxAttempts = 5
	backoff := time.Second
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, err := database.ConnectMongo(ctx, cfg.URI, cfg.Timeout)
		if err == nil {
			return client, nil
		}
		lastErr = err
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, err)
		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}
	return nil, lastErr
}
