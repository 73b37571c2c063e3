package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"escrow-marketplace/internal/model"
	"escrow-marketplace/pkg/address"
	"escrow-marketplace/pkg/log"
	"escrow-marketplace/pkg/response"
	"escrow-marketplace/pkg/scope"
)

const (
	authorizationHeader = "Authorization"
	callerHeader        = "X-Caller-Address"
	bearerPrefix        = "Bearer "
)

// Auth resolves the caller identity and stores it in the request context as a
// model.Scope. Requests without a usable identity are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		caller, ok := m.resolveCaller(c)
		if !ok {
			response.Unauthorized(c)
			return
		}

		ctx = scope.SetScopeToContext(ctx, model.Scope{Address: caller})
		ctx = log.SetCaller(ctx, caller)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (m Middleware) resolveCaller(c *gin.Context) (string, bool) {
	ctx := c.Request.Context()

	if raw := c.GetHeader(authorizationHeader); raw != "" {
		if m.jwtManager == nil || !strings.HasPrefix(raw, bearerPrefix) {
			return "", false
		}
		payload, err := m.jwtManager.Verify(strings.TrimPrefix(raw, bearerPrefix))
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v", err)
			return "", false
		}
		caller, err := address.Normalize(payload.Subject)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: token subject: %v", err)
			return "", false
		}
		return caller, true
	}

	if m.trustHeader {
		if raw := c.GetHeader(callerHeader); raw != "" {
			caller, err := address.Normalize(raw)
			if err != nil {
				return "", false
			}
			return caller, true
		}
	}
	return "", false
}
