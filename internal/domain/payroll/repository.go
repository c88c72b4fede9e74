package payroll

import (
	"context"

	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
)

// PayrollRepository defines data access for payroll rows. CreateRecord relies
// on the UNIQUE(employee_id, payroll_month) constraint and surfaces duplicates
// as ErrPayrollRecordAlreadyExists.
type PayrollRepository interface {
	CreateRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetRecordByID(ctx context.Context, id string) (PayrollRecord, error)
	List(ctx context.Context, sc scope.Scope, filter ListFilter) ([]PayrollRecord, int64, error)
	MarkPaid(ctx context.Context, ids []string) (int64, error)
}
