package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/looplj/authhub/internal/authz"
	"github.com/looplj/authhub/internal/contexts"
	"github.com/looplj/authhub/internal/log"
	"github.com/looplj/authhub/internal/server/biz"
)

// RouteMeta is the declarative per-operation authorization metadata. It is
// built once at route registration and passed by value into the guard
// pipeline; there is no runtime reflection or global registry.
type RouteMeta struct {
	// Public operations skip authentication entirely.
	Public bool
	// Permission names the required permission; empty means the operation
	// is unrestricted beyond authentication.
	Permission string
}

// WithAuth is the first guard stage. Public operations pass through with no
// identity attached; protected operations require a valid bearer token and
// attach the resolved user to the request context. The stage either attaches
// an identity or fails the whole operation, never both.
func WithAuth(auth *biz.AuthService, meta RouteMeta) gin.HandlerFunc {
	return func(c *gin.Context) {
		if meta.Public {
			c.Next()
			return
		}

		token, err := ExtractBearerToken(c.Request)
		if err != nil {
			AbortWithError(c, http.StatusUnauthorized, err)
			return
		}

		u, err := auth.AuthenticateToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, biz.ErrUnauthenticated) {
				AbortWithError(c, http.StatusUnauthorized, errors.New("invalid token"))
			} else {
				AbortWithError(c, http.StatusInternalServerError, errors.New("failed to validate token"))
			}

			return
		}

		ctx := contexts.WithUser(c.Request.Context(), u)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// WithPermission is the second guard stage, evaluated only after WithAuth.
// It hydrates the caller's permission snapshot and resolves the operation's
// required permission against it. A missing principal at this stage denies
// defensively even though WithAuth should already have rejected.
func WithPermission(users *biz.UserService, meta RouteMeta) gin.HandlerFunc {
	return func(c *gin.Context) {
		if meta.Permission == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()

		u, ok := contexts.GetUser(ctx)
		if !ok {
			AbortWithError(c, http.StatusForbidden, errors.New("permission denied"))
			return
		}

		snapshot, err := users.GetSnapshot(ctx, u.ID)
		if err != nil {
			if errors.Is(err, biz.ErrNotFound) {
				AbortWithError(c, http.StatusForbidden, errors.New("permission denied"))
			} else {
				AbortWithError(c, http.StatusInternalServerError, errors.New("failed to resolve permissions"))
			}

			return
		}

		if !authz.Resolve(snapshot, meta.Permission) {
			log.Debug(ctx, "permission denied",
				log.Int("user_id", u.ID),
				log.String("permission", meta.Permission),
			)
			AbortWithError(c, http.StatusForbidden, fmt.Errorf("permission denied"))

			return
		}

		c.Next()
	}
}
