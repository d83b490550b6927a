package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"postline/internal/ports/ratelimit"
	"postline/pkg/logger"
)

// Константы для логирования.
const (
	LogRateLimitExceeded = "rate limit exceeded"
	LogRateLimitError    = "rate limiter unavailable, letting request through"

	ErrorTooManyRequests = "too many requests"
)

// NewRateLimitMiddleware создает промежуточное ПО ограничения частоты
// запросов. Ключом окна служит пара IP-адрес и путь. При недоступности
// лимитера запросы пропускаются.
func NewRateLimitMiddleware(limiter ratelimit.Limiter) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "ratelimit"))

		key := ctx.IP() + ":" + ctx.Path()

		allowed, err := limiter.Allow(requestCtx, key)
		if err != nil {
			log.Warn(requestCtx, LogRateLimitError, zap.Error(err))
			return ctx.Next()
		}

		if !allowed {
			log.Debug(requestCtx, LogRateLimitExceeded, zap.String("key", key))
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": ErrorTooManyRequests,
			})
		}

		return ctx.Next()
	}
}
