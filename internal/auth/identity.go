package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	identityKey = "identity"
	userIDKey   = "userID"
)

// Identity is the caller as reported by the user service.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Resolver turns an inbound request into a caller identity.
// A request without a usable credential resolves to (nil, false); that is a
// normal outcome, not an error.
type Resolver interface {
	Resolve(ctx context.Context, r *http.Request) (*Identity, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, r *http.Request) (*Identity, bool)

func (f ResolverFunc) Resolve(ctx context.Context, r *http.Request) (*Identity, bool) {
	return f(ctx, r)
}

// Anonymous never resolves an identity.
var Anonymous Resolver = ResolverFunc(func(context.Context, *http.Request) (*Identity, bool) {
	return nil, false
})

// SetIdentity stores id on the gin context.
func SetIdentity(c *gin.Context, id *Identity) {
	c.Set(identityKey, id)
	c.Set(userIDKey, id.ID)
}

// FromContext returns the identity stored by OptionalAuth, if any.
func FromContext(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*Identity)
	return id, ok && id != nil
}
