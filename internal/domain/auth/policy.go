package auth

import (
	"errors"

	"pet-resort-api/internal/domain/user"

	"github.com/google/uuid"
)

var ErrForbidden = errors.New("forbidden")

func RequireSuperUser(p Principal) bool {
	return p.IsSuperUser()
}

func RequireAdmin(p Principal) bool {
	return p.IsAdmin()
}

func RequireSelfOrAdmin(p Principal, target uuid.UUID) bool {
	return p.IsSelfOrAdmin(target)
}

// RequireSelfOrSuperUser lets staff act on anyone and everyone else only on themselves.
func RequireSelfOrSuperUser(p Principal, target uuid.UUID) bool {
	return p.IsSuperUser() || p.SubjectID == target
}

// RequireUserOnly holds only for plain users; it scopes self-service mutation paths.
func RequireUserOnly(p Principal) bool {
	return p.Role == user.RoleUser
}

// Policy names the single access rule bound to an endpoint.
type Policy int

const (
	PolicyAuthenticated Policy = iota
	PolicySuperUser
	PolicyAdmin
	PolicySelfOrAdmin
	PolicyUserOnly
	PolicySelfOrSuperUser
)

func (p Policy) String() string {
	switch p {
	case PolicyAuthenticated:
		return "authenticated"
	case PolicySuperUser:
		return "superuser"
	case PolicyAdmin:
		return "admin"
	case PolicySelfOrAdmin:
		return "self_or_admin"
	case PolicyUserOnly:
		return "user_only"
	case PolicySelfOrSuperUser:
		return "self_or_superuser"
	default:
		return "unknown"
	}
}

// Allows evaluates the policy. target is consulted only by the self-or policies.
// Unknown policies deny.
func (p Policy) Allows(principal Principal, target uuid.UUID) bool {
	if !principal.Role.IsValid() {
		return false
	}
	switch p {
	case PolicyAuthenticated:
		return true
	case PolicySuperUser:
		return RequireSuperUser(principal)
	case PolicyAdmin:
		return RequireAdmin(principal)
	case PolicySelfOrAdmin:
		return RequireSelfOrAdmin(principal, target)
	case PolicyUserOnly:
		return RequireUserOnly(principal)
	case PolicySelfOrSuperUser:
		return RequireSelfOrSuperUser(principal, target)
	default:
		return false
	}
}

// Authorize returns ErrForbidden when the policy denies.
func Authorize(p Policy, principal Principal, target uuid.UUID) error {
	if !p.Allows(principal, target) {
		return ErrForbidden
	}
	return nil
}
