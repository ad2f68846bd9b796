package models

import "fmt"

// Role is the single authority claim carried in the token. Applicants
// apply for jobs, managers post them, admins manage users.
type Role string

const (
	RoleApplicant Role = "Applicant"
	RoleManager   Role = "Manager"
	RoleAdmin     Role = "Admin"
)

func (r Role) String() string { return string(r) }

// ParseRole validates a role name coming from a token claim or an admin
// request body.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleApplicant, RoleManager, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}
