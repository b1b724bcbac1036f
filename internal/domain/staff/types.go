package staff

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
)

func (r Role) String() string {
	return string(r)
}

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleOwner, RoleManager:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}
