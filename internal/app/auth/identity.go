// Package auth carries the per-request identity context and the
// authorization predicates shared by the resource controllers.
package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/models"
)

// ContextKey is the gin context key the auth middleware stores the
// identity under.
const ContextKey = "identity"

// Identity is the per-request authenticated principal. It is derived from a
// verified token plus a live user lookup, lives only for the duration of the
// request, and is never persisted.
type Identity struct {
	ID         string
	Role       models.Role
	IsApproved bool
}

// IsAdmin reports whether the identity carries the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// FromContext returns the identity attached by the auth middleware.
// Handlers behind the middleware may assume ok is true.
func FromContext(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(ContextKey)
	if !exists {
		return Identity{}, false
	}

	identity, ok := value.(Identity)
	return identity, ok
}

// CanModify authorizes mutation of a resource instance: admins may modify
// anything, everyone else only resources they created. Pure predicate;
// callers turn a false result into a 403.
func CanModify(identity Identity, creatorID string) bool {
	if identity.IsAdmin() {
		return true
	}
	return identity.ID == creatorID
}
