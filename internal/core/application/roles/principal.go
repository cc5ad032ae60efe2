// Package roles binds an authenticated principal to the operations its role
// may perform. The HTTP adapter resolves a principal once per request and
// asks the Registry for the matching capability set; everything below that
// still checks ownership of the individual load, bid or vehicle.
package roles

import (
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

type Role int

const (
	UnknownRole Role = iota
	Carrier
	Shipper
)

func getRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is not a wire value
	return map[Role]string{
		Carrier: "CARRIER",
		Shipper: "SHIPPER",
	}
}

func ParseRole(s string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for role, name := range getRoleStrings() {
		if name == normalized {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a role", s))
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Principal is the authenticated caller. The zero value is anonymous.
type Principal struct {
	ID   kernel.UUID
	Role Role
}

func NewPrincipal(id kernel.UUID, role Role) Principal {
	return Principal{ID: id, Role: role}
}

func (p Principal) IsAnonymous() bool {
	return p.ID.Validate() != nil || p.Role == UnknownRole
}

func (p Principal) require(role Role, action string) error {
	if p.IsAnonymous() {
		return errs.NewUnauthorizedError("no authenticated principal")
	}
	if p.Role != role {
		return errs.NewForbiddenError(fmt.Sprintf("only %ss can %s", strings.ToLower(role.String()), action))
	}
	return nil
}
