package repository

import (
	"context"
	"time"
)

// Every store call runs under a bounded timeout; cancellation otherwise
// inherits from the request context.
func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}
