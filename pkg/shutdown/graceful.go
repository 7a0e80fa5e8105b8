// Package shutdown предоставляет функциональность для корректного завершения приложения
// путем ожидания и обработки сигналов SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Wait блокирует выполнение до получения сигнала SIGINT или SIGTERM,
// затем выполняет хуки строго по порядку в рамках заданного timeout.
// Порядок важен: HTTP сервер должен остановиться до закрытия базы.
// По истечении timeout оставшиеся хуки не запускаются.
func Wait(timeout time.Duration, hooks ...func(context.Context) error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	signal.Stop(sigCh)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	runHooks(ctx, hooks)
}

func runHooks(ctx context.Context, hooks []func(context.Context) error) {
	for _, hook := range hooks {
		if ctx.Err() != nil {
			return
		}

		done := make(chan struct{})
		go func(fn func(context.Context) error) {
			defer close(done)
			_ = fn(ctx)
		}(hook)

		select {
		case <-done:
		case <-ctx.Done():
			return
		}
	}
}
