package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Hook is a side effect that runs only after the store write it belongs to has committed.
type Hook struct {
	Name string
	Run  func(ctx context.Context) error
}

// RunHooks runs every hook in order. A failing hook is logged and never stops the ones after it.
func RunHooks(ctx context.Context, logger *zap.Logger, operation string, hooks ...Hook) {
	for _, hook := range hooks {
		if hook.Run == nil {
			continue
		}
		if err := hook.Run(ctx); err != nil {
			logger.Warn("post-commit hook failed",
				zap.String("operation", operation),
				zap.String("hook", hook.Name),
				zap.Error(fmt.Errorf("%s.%s: %w", operation, hook.Name, err)))
		}
	}
}
