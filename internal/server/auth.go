package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gridbits/enertrack/internal/callerctx"
)

// callerHeader carries the authenticated account id. The fronting auth layer
// validates credentials and injects this header; the core only trusts and
// forwards the principal.
const callerHeader = "X-Account-Id"

// RequireCaller rejects state-changing requests without a caller principal and
// stores it in the request context for the handler.
func RequireCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := strings.TrimSpace(c.GetHeader(callerHeader))
		if caller == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		ctx := callerctx.WithCaller(c.Request.Context(), caller)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CallerFromRequest returns the principal established by RequireCaller.
func CallerFromRequest(c *gin.Context) string {
	caller, _ := callerctx.Caller(c.Request.Context())
	return caller
}
