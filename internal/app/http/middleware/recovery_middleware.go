package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"postline/pkg/logger"
)

// Константы для логирования.
const (
	LogPanicRecovered  = "panic recovered"
	LogPanicWriteError = "failed to write response after panic"

	ErrorInternal = "Internal Server Error"
)

// NewRecoveryMiddleware создает промежуточное ПО, перехватывающее панику
// обработчика. Вызывающий получает 500 без деталей причины; причина и
// стек уходят только в лог.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			requestCtx := ctx.Context()
			log := logger.Log(requestCtx)
			log.Error(requestCtx, LogPanicRecovered,
				zap.String("panic", fmt.Sprintf("%v", r)),
				zap.ByteString("stack", debug.Stack()),
			)

			if err := ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": ErrorInternal,
			}); err != nil {
				log.Error(requestCtx, LogPanicWriteError, zap.Error(err))
			}
		}()

		return ctx.Next()
	}
}
