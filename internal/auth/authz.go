package auth

import (
	"slices"

	"github.com/hongminglow/devcamper-be/internal/apperr"
	"github.com/hongminglow/devcamper-be/internal/models"
)

// Owned is any resource that records the user who created it.
type Owned interface {
	OwnerID() int64
}

// HasRole reports whether the user's role is in roles.
func HasRole(user models.User, roles ...models.Role) bool {
	return slices.Contains(roles, user.Role)
}

// CanMutate reports whether actor may change resource: owners and admins may.
func CanMutate(actor models.User, resource Owned) bool {
	return actor.IsAdmin() || actor.ID == resource.OwnerID()
}

// RequireOwner returns a Forbidden error naming the actor and resource when
// CanMutate denies the operation.
func RequireOwner(actor models.User, resource Owned, action, kind string, resourceID int64) error {
	if CanMutate(actor, resource) {
		return nil
	}
	return apperr.Forbidden("User %d is not authorized to %s %s %d", actor.ID, action, kind, resourceID)
}
