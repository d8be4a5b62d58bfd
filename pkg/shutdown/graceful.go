// Package shutdown blocks until SIGINT or SIGTERM and runs shutdown hooks
// within a bounded timeout.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"agrohub/pkg/logger"
)

// Wait blocks until SIGINT or SIGTERM is received, then runs all hooks
// concurrently within the given timeout. Hook errors are logged, not returned.
func Wait(ctx context.Context, timeout time.Duration, hooks ...func(context.Context) error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log := logger.Log(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, hook := range hooks {
		wg.Add(1)
		go func(fn func(context.Context) error) {
			defer wg.Done()
			if err := fn(shutdownCtx); err != nil {
				log.Error(shutdownCtx, "shutdown hook failed", zap.Error(err))
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warn(shutdownCtx, "shutdown timeout exceeded before all hooks completed")
	}
}
