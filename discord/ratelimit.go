package discord

import (
	"context"
	"sync"

	"github.com/keshon/commandkit"
	"golang.org/x/time/rate"
)

// WithUserRateLimit drops invocations from users who exceed the given rate.
// Each user gets an independent token bucket, created on first use.
func WithUserRateLimit(limit rate.Limit, burst int) commandkit.Middleware {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	allow := func(userID string) bool {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[userID]
		if !ok {
			l = rate.NewLimiter(limit, burst)
			limiters[userID] = l
		}
		return l.Allow()
	}

	return func(cmd commandkit.Command) commandkit.Command {
		return commandkit.Wrap(cmd, func(ctx context.Context, inv *commandkit.Invocation) error {
			c, ok := FromInvocation(inv)
			if ok && c.Event != nil && c.Event.Author != nil {
				if !allow(c.Event.Author.ID) {
					return nil
				}
			}
			return cmd.Run(ctx, inv)
		})
	}
}
