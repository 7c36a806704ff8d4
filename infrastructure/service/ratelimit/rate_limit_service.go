package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Service tracks failed attempts per key (typically "login:ip:<addr>") and
// blocks a key once the attempt limit is exceeded.
type Service interface {
	IsBlocked(ctx context.Context, key string) (bool, error)
	CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Increment(ctx context.Context, key string, window time.Duration) error
	Block(ctx context.Context, key string, duration time.Duration) error
}

// Config configures the redis-backed limiter.
type Config struct {
	Enabled       bool
	RedisURL      string
	Attempts      int
	Window        time.Duration
	BlockDuration time.Duration
}

type redisService struct {
	client *redis.Client
	logger *logrus.Logger
}

// NewService returns a redis-backed limiter, or a noop implementation when
// rate limiting is disabled.
func NewService(cfg Config, logger *logrus.Logger) (Service, error) {
	if !cfg.Enabled {
		logger.Info("Rate limiting disabled")
		return &noopService{}, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"attempts":       cfg.Attempts,
		"window":         cfg.Window,
		"block_duration": cfg.BlockDuration,
	}).Info("Rate limiting service initialized")

	return &redisService{client: client, logger: logger}, nil
}

func (s *redisService) IsBlocked(ctx context.Context, key string) (bool, error) {
	exists, err := s.client.Exists(ctx, blockKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check block status: %w", err)
	}
	return exists > 0, nil
}

func (s *redisService) CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := s.client.Get(ctx, key).Int()
	if err != nil {
		if err == redis.Nil {
			return true, nil
		}
		return false, fmt.Errorf("failed to read attempt counter: %w", err)
	}
	return count < limit, nil
}

func (s *redisService) Increment(ctx context.Context, key string, window time.Duration) error {
	pipeline := s.client.Pipeline()
	pipeline.Incr(ctx, key)
	pipeline.Expire(ctx, key, window)
	if _, err := pipeline.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment attempt counter: %w", err)
	}
	return nil
}

func (s *redisService) Block(ctx context.Context, key string, duration time.Duration) error {
	if err := s.client.Set(ctx, blockKey(key), 1, duration).Err(); err != nil {
		return fmt.Errorf("failed to block key: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"key":      key,
		"duration": duration,
	}).Warn("Rate limit block applied")
	return nil
}

func blockKey(key string) string {
	return "blocked:" + key
}

// noopService allows everything; used when rate limiting is disabled.
type noopService struct{}

func (n *noopService) IsBlocked(ctx context.Context, key string) (bool, error) {
	return false, nil
}

func (n *noopService) CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	return true, nil
}

func (n *noopService) Increment(ctx context.Context, key string, window time.Duration) error {
	return nil
}

func (n *noopService) Block(ctx context.Context, key string, duration time.Duration) error {
	return nil
}
