package user

import "time"

type Role string

const (
	RoleHR       Role = "hr"       // Full visibility, payroll generation
	RoleManager  Role = "manager"  // Department-scoped visibility, can approve leave
	RoleEmployee Role = "employee" // Own rows only
)

// ValidRoles lists the roles accepted at signup.
var ValidRoles = []Role{RoleHR, RoleManager, RoleEmployee}

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	IsActive        bool
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}
