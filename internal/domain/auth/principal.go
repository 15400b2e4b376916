package auth

import (
	"pet-resort-api/internal/domain/user"

	"github.com/google/uuid"
)

// Principal is the authenticated identity of one request. It is derived from a verified
// token and never persisted.
type Principal struct {
	SubjectID uuid.UUID
	Role      user.Role
}

func NewPrincipal(subjectID uuid.UUID, role user.Role) Principal {
	return Principal{SubjectID: subjectID, Role: role}
}

func (p Principal) IsSuperUser() bool {
	return p.Role.IsSuperUser()
}

func (p Principal) IsAdmin() bool {
	return p.Role.IsAdmin()
}

func (p Principal) IsSelfOrAdmin(target uuid.UUID) bool {
	return p.Role.IsAdmin() || p.SubjectID == target
}
