package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/looplj/authhub/internal/ent"
)

// WithEntClient binds the ent client to the request context so services can
// resolve it (or a transactional client) from the context.
func WithEntClient(client *ent.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ent.NewContext(c.Request.Context(), client)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
