// Package ratelimit содержит реализацию ограничителя частоты запросов на Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"postline/internal/config"
	"postline/internal/ports/ratelimit"
	"postline/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodAllow = "allow"

	ErrorFailedToIncr   = "failed to increment rate limit counter"
	ErrorFailedToExpire = "failed to set rate limit window expiry"
	ErrorFailedToClose  = "failed to close redis connection"
)

const keyPrefix = "postline:ratelimit:"

// RedisLimiter реализует интерфейс Limiter счетчиком с фиксированным окном.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedisLimiter создает новый ограничитель поверх Redis.
func NewRedisLimiter(ctx context.Context, cfg *config.RedisConfig, limit int, window time.Duration) (ratelimit.Limiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetAddress(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.ConnectTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}, nil
}

// Allow инкрементирует счетчик окна для ключа и сообщает, разрешен ли запрос.
// Первый инкремент в окне устанавливает срок его жизни.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodAllow), zap.String("key", key))

	redisKey := keyPrefix + key

	counter, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		log.Error(ctx, ErrorFailedToIncr, zap.Error(err))
		return false, fmt.Errorf("%s: %w", ErrorFailedToIncr, err)
	}

	if counter == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			log.Error(ctx, ErrorFailedToExpire, zap.Error(err))
			return false, fmt.Errorf("%s: %w", ErrorFailedToExpire, err)
		}
	}

	return counter <= int64(l.limit), nil
}

// Close закрывает соединение с Redis.
func (l *RedisLimiter) Close() error {
	if err := l.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
