// Package shutdown останавливает приложение по сигналам SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// Wait блокируется до первого SIGINT или SIGTERM, затем запускает хуки
// завершения параллельно. На все хуки отводится общий timeout; хук, не
// успевший за это время, бросается недоделанным.
func Wait(timeout time.Duration, hooks ...func(context.Context) error) {
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan struct{}, len(hooks))
	for _, hook := range hooks {
		go func() {
			_ = hook(ctx)
			done <- struct{}{}
		}()
	}

	for range hooks {
		select {
		case <-done:
		case <-ctx.Done():
			return
		}
	}
}
