package services

import (
	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/user"
)

// OrderScope is the read restriction the policy computed for a caller.
// An unrestricted scope exposes every order; a restricted scope exposes only
// the orders owned by the scope's user.
type OrderScope struct {
	userID *kernel.UUID
}

// UnrestrictedOrderScope grants access to all orders.
func UnrestrictedOrderScope() OrderScope {
	return OrderScope{}
}

// OwnOrdersScope grants access only to the given user's orders.
func OwnOrdersScope(userID kernel.UUID) OrderScope {
	return OrderScope{userID: &userID}
}

// IsRestricted reports whether the scope limits reads to a single user.
func (s OrderScope) IsRestricted() bool {
	return s.userID != nil
}

// UserID returns the user whose orders the scope is limited to.
// Returns nil for an unrestricted scope.
func (s OrderScope) UserID() *kernel.UUID {
	return s.userID
}

// OrderAccessPolicy decides which orders a caller may read based on the
// caller's role set. Administrators see every order; everyone else sees only
// their own. Query handlers apply the resulting scope as a filter, which makes
// an order belonging to someone else indistinguishable from a missing one.
type OrderAccessPolicy struct{}

// NewOrderAccessPolicy creates a new OrderAccessPolicy instance.
func NewOrderAccessPolicy() OrderAccessPolicy {
	return OrderAccessPolicy{}
}

// ScopeFor computes the order read scope for a caller with the given roles.
func (OrderAccessPolicy) ScopeFor(callerID kernel.UUID, roles []user.Role) OrderScope {
	for _, role := range roles {
		if role == user.RoleAdministrator {
			return UnrestrictedOrderScope()
		}
	}
	return OwnOrdersScope(callerID)
}
