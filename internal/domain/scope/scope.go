package scope

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stafflane/hrms-backend-go/internal/domain/user"
)

var (
	ErrMissingClaims     = errors.New("token claims are missing or invalid")
	ErrMissingEmployeeID = errors.New("employee_id claim is missing")
)

// Scope is the row-visibility rule for one authenticated caller. It is a pure
// value built once per request from token claims and applied by every ledger
// query path:
//
//	hr       -> all rows
//	manager  -> rows of employees in the manager's own department
//	employee -> the caller's own rows only
type Scope struct {
	Role       user.Role
	EmployeeID string
	Department string
}

// FromContext builds the caller's scope from the verified JWT in ctx.
func FromContext(ctx context.Context) (Scope, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Scope{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	return FromClaims(claims)
}

// FromClaims builds a scope from raw token claims.
func FromClaims(claims map[string]interface{}) (Scope, error) {
	roleStr, ok := claims["role"].(string)
	if !ok || !user.IsValidRole(roleStr) {
		return Scope{}, ErrMissingClaims
	}

	s := Scope{Role: user.Role(roleStr)}

	if employeeID, ok := claims["employee_id"].(string); ok {
		s.EmployeeID = employeeID
	}
	if department, ok := claims["department"].(string); ok {
		s.Department = department
	}

	// HR visibility is global; the other roles cannot be scoped without an
	// employee row to anchor them.
	if s.Role != user.RoleHR && s.EmployeeID == "" {
		return Scope{}, ErrMissingEmployeeID
	}

	return s, nil
}

// SQLFilter renders the scope as a WHERE fragment for a query whose
// employee-id column is employeeIDCol (e.g. "a.employee_id"). argIdx is the
// next free placeholder number. The returned clause is empty for hr.
func (s Scope) SQLFilter(employeeIDCol string, argIdx int) (string, []interface{}) {
	switch s.Role {
	case user.RoleManager:
		clause := fmt.Sprintf("%s IN (SELECT id FROM employees WHERE department = $%d)", employeeIDCol, argIdx)
		return clause, []interface{}{s.Department}
	case user.RoleEmployee:
		return fmt.Sprintf("%s = $%d", employeeIDCol, argIdx), []interface{}{s.EmployeeID}
	default:
		return "", nil
	}
}

// AllowsEmployee is the in-memory form of the predicate, used on single rows
// already fetched (payslip, review, summary target).
func (s Scope) AllowsEmployee(employeeID string, department string) bool {
	switch s.Role {
	case user.RoleHR:
		return true
	case user.RoleManager:
		return department == s.Department
	case user.RoleEmployee:
		return employeeID == s.EmployeeID
	}
	return false
}

// CanApprove reports whether the caller may process leave requests and write
// performance reviews.
func (s Scope) CanApprove() bool {
	return s.Role == user.RoleHR || s.Role == user.RoleManager
}
