package middleware

import (
	"escrow-marketplace/pkg/log"
	"escrow-marketplace/pkg/scope"
)

// Config carries the edge settings for Middleware.
type Config struct {
	// TrustHeader accepts X-Caller-Address without a token. Only enable it
	// behind a gateway that authenticates callers.
	TrustHeader     bool
	RateLimitPerMin int
}

type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	trustHeader bool
	limiter     *rateLimiter
}

// New builds the middleware set. jwtManager may be nil when only the trusted
// header is accepted.
func New(l log.Logger, jwtManager scope.Manager, cfg Config) Middleware {
	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		trustHeader: cfg.TrustHeader,
		limiter:     newRateLimiter(cfg.RateLimitPerMin),
	}
}
