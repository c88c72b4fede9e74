package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/stafflane/hrms-backend-go/internal/pkg/validator"
)

type BatchEntry struct {
	EmployeeID  string          `json:"employee_id"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	Overtime    decimal.Decimal `json:"overtime"`
	Bonus       decimal.Decimal `json:"bonus"`
}

type GenerateBatchRequest struct {
	PayrollMonth string       `json:"payroll_month"`
	Entries      []BatchEntry `json:"entries"`
}

func (r *GenerateBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.PayrollMonth); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "payroll_month",
			Message: "payroll_month must be in YYYY-MM format",
		})
	}

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "at least one entry is required",
		})
	}
	for i, entry := range r.Entries {
		if validator.IsEmpty(entry.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "entries[" + validator.Itoa(i) + "].employee_id",
				Message: "employee_id is required",
			})
		}
		if entry.BasicSalary.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "entries[" + validator.Itoa(i) + "].basic_salary",
				Message: "basic_salary must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidRequest struct {
	IDs []string `json:"ids"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "at least one payroll record id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	PayrollMonth *string
	Page         int
	Limit        int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.PayrollMonth != nil && *f.PayrollMonth != "" {
		if _, ok := validator.IsValidMonth(*f.PayrollMonth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "payroll_month",
				Message: "payroll_month must be in YYYY-MM format",
			})
		}
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollRecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	PayrollMonth string  `json:"payroll_month"`
	BasicSalary  string  `json:"basic_salary"`
	Allowances   string  `json:"allowances"`
	Deductions   string  `json:"deductions"`
	Overtime     string  `json:"overtime"`
	Bonus        string  `json:"bonus"`
	Tax          string  `json:"tax"`
	NetSalary    string  `json:"net_salary"`
	Status       string  `json:"status"`
}

func ToResponse(r PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		EmployeeCode: r.EmployeeCode,
		PayrollMonth: r.PayrollMonth,
		BasicSalary:  r.BasicSalary.StringFixed(2),
		Allowances:   r.Allowances.StringFixed(2),
		Deductions:   r.Deductions.StringFixed(2),
		Overtime:     r.Overtime.StringFixed(2),
		Bonus:        r.Bonus.StringFixed(2),
		Tax:          r.Tax.StringFixed(2),
		NetSalary:    r.NetSalary.StringFixed(2),
		Status:       string(r.Status),
	}
}

// BatchFailure reports one entry that could not be inserted; the remaining
// entries of the batch are unaffected.
type BatchFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type GenerateBatchResponse struct {
	BatchID      string                  `json:"batch_id"`
	PayrollMonth string                  `json:"payroll_month"`
	Created      []PayrollRecordResponse `json:"created"`
	Failed       []BatchFailure          `json:"failed,omitempty"`
}

type ListPayrollResponse struct {
	Records []PayrollRecordResponse `json:"records"`
	Total   int64                   `json:"total"`
	Page    int                     `json:"page"`
	Limit   int                     `json:"limit"`
}
