package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OptionalAuth resolves the caller and stores it on the context when present.
// It never rejects a request.
func OptionalAuth(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := resolver.Resolve(c.Request.Context(), c.Request); ok {
			SetIdentity(c, id)
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a resolved identity.
// It must be used AFTER OptionalAuth.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := FromContext(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "AUTHENTICATION_REQUIRED",
					"message": "Authentication required. Please log in.",
				},
			})
			return
		}
		c.Next()
	}
}
