package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusPending PayrollStatus = "pending"
	PayrollStatusPaid    PayrollStatus = "paid"
)

// PayrollRecord is one employee-month compensation row, immutable after
// generation except for the pending -> paid transition.
type PayrollRecord struct {
	ID           string
	EmployeeID   string
	PayrollMonth string // "YYYY-MM"
	BasicSalary  decimal.Decimal
	Allowances   decimal.Decimal
	Deductions   decimal.Decimal
	Overtime     decimal.Decimal
	Bonus        decimal.Decimal
	Tax          decimal.Decimal
	NetSalary    decimal.Decimal
	Status       PayrollStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeName *string
	EmployeeCode *string
	Department   *string
	Position     *string
}
