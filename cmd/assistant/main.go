package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/brownlk99/blue-prince-ml-sub000/internal/config"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/errors"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/handlers/cli"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/repositories/runs"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/services"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	} else {
		log.Info("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	if level, parseErr := log.ParseLevel(cfg.LogLevel); parseErr == nil {
		log.SetLevel(level)
	}

	providerConfig := &services.ProviderConfig{}

	// Keep the Redis client for cleanup
	var redisClient *redis.Client

	if cfg.Redis.URL != "" {
		log.WithField("url", cfg.Redis.URL).Info("Connecting to Redis")

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.WithError(parseErr).Warn("Failed to parse Redis URL, falling back to in-memory storage")
		} else {
			redisClient = redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				log.WithError(pingErr).Warn("Failed to connect to Redis, falling back to in-memory storage")
				_ = redisClient.Close()
				redisClient = nil
			} else {
				log.Info("Using Redis for persistence")
				providerConfig.RunRepository = runs.NewRedis(&runs.RedisConfig{
					Client:        redisClient,
					TimeProvider:  &runs.SystemTimeProvider{},
					UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
				})
			}
		}
	} else {
		log.Info("No REDIS_URL found, using in-memory storage")
	}

	if redisClient != nil {
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				log.WithError(closeErr).Warn("Error closing Redis connection")
			}
		}()
	}

	serviceProvider := services.NewProvider(providerConfig)
	service := serviceProvider.HouseMapService

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Resume the most recent run, or start day 1 fresh
	run, err := service.LatestRun(ctx)
	switch {
	case err == nil:
		log.WithFields(log.Fields{"run_id": run.ID, "day": run.Day}).Info("Resuming run")
	case errors.IsNotFound(err):
		run, err = service.StartRun(ctx, 1)
		if err != nil {
			log.WithError(err).Fatal("Failed to start run")
		}
		log.WithField("run_id", run.ID).Info("Started new run")
	default:
		log.WithError(err).Fatal("Failed to look up latest run")
	}

	handler := cli.NewHandler(&cli.HandlerConfig{
		Service: service,
		RunID:   run.ID,
		Input:   os.Stdin,
		Output:  os.Stdout,
	})

	if err := handler.Run(ctx); err != nil {
		log.WithError(err).Fatal("Menu loop failed")
	}
}
