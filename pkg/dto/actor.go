package dto

import "github.com/google/uuid"

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID  uuid.UUID
	Email   string
	IsStaff bool
}

// CanAccess reports whether the actor owns a resource or is staff.
func (a *Actor) CanAccess(ownerID uuid.UUID) bool {
	if a == nil {
		return false
	}
	return a.IsStaff || a.UserID == ownerID
}
