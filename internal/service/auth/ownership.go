package auth

import "pressbox/internal/domain/entity"

// Action names a mutation attempt for denial messages.
type Action string

// Actions gated by the ownership check.
const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Authorize allows a mutation iff the authenticated user owns the resource.
// It is stateless and side-effect-free, and must be called only after the
// resource's existence is confirmed: existence is reported before ownership
// so a missing resource never leaks whether it would have been someone
// else's.
func Authorize(user *entity.User, ownerID int64, action Action) error {
	if user != nil && user.ID == ownerID {
		return nil
	}
	return &entity.ForbiddenError{Action: string(action)}
}
