package scope

import (
	"testing"

	"github.com/stafflane/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromClaims(t *testing.T) {
	s, err := FromClaims(map[string]interface{}{
		"role":        "manager",
		"employee_id": "emp-1",
		"department":  "Engineering",
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleManager, s.Role)
	assert.Equal(t, "emp-1", s.EmployeeID)
	assert.Equal(t, "Engineering", s.Department)
}

func TestFromClaims_InvalidRole(t *testing.T) {
	_, err := FromClaims(map[string]interface{}{"role": "superuser"})
	assert.ErrorIs(t, err, ErrMissingClaims)

	_, err = FromClaims(map[string]interface{}{})
	assert.ErrorIs(t, err, ErrMissingClaims)
}

func TestFromClaims_EmployeeWithoutEmployeeID(t *testing.T) {
	_, err := FromClaims(map[string]interface{}{"role": "employee"})
	assert.ErrorIs(t, err, ErrMissingEmployeeID)

	// HR users may exist without an employee row.
	s, err := FromClaims(map[string]interface{}{"role": "hr"})
	require.NoError(t, err)
	assert.Equal(t, user.RoleHR, s.Role)
}

func TestSQLFilter_HR(t *testing.T) {
	s := Scope{Role: user.RoleHR}
	clause, args := s.SQLFilter("a.employee_id", 3)
	assert.Empty(t, clause)
	assert.Empty(t, args)
}

func TestSQLFilter_Manager(t *testing.T) {
	s := Scope{Role: user.RoleManager, EmployeeID: "emp-1", Department: "Sales"}
	clause, args := s.SQLFilter("lr.employee_id", 2)
	assert.Equal(t, "lr.employee_id IN (SELECT id FROM employees WHERE department = $2)", clause)
	assert.Equal(t, []interface{}{"Sales"}, args)
}

func TestSQLFilter_Employee(t *testing.T) {
	s := Scope{Role: user.RoleEmployee, EmployeeID: "emp-9"}
	clause, args := s.SQLFilter("p.employee_id", 1)
	assert.Equal(t, "p.employee_id = $1", clause)
	assert.Equal(t, []interface{}{"emp-9"}, args)
}

func TestAllowsEmployee(t *testing.T) {
	hr := Scope{Role: user.RoleHR}
	manager := Scope{Role: user.RoleManager, EmployeeID: "m-1", Department: "Sales"}
	employee := Scope{Role: user.RoleEmployee, EmployeeID: "e-1"}

	assert.True(t, hr.AllowsEmployee("anyone", "anywhere"))

	assert.True(t, manager.AllowsEmployee("e-2", "Sales"))
	assert.False(t, manager.AllowsEmployee("e-2", "Engineering"))

	assert.True(t, employee.AllowsEmployee("e-1", "Sales"))
	assert.False(t, employee.AllowsEmployee("e-2", "Sales"))
}

func TestCanApprove(t *testing.T) {
	assert.True(t, Scope{Role: user.RoleHR}.CanApprove())
	assert.True(t, Scope{Role: user.RoleManager}.CanApprove())
	assert.False(t, Scope{Role: user.RoleEmployee}.CanApprove())
}
