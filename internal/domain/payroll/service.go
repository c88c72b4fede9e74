package payroll

import (
	"context"
)

type PayrollService interface {
	// GenerateBatch creates one record per entry for the target month.
	// Entries are inserted independently: a failure in one entry does not
	// roll back the others.
	GenerateBatch(ctx context.Context, req GenerateBatchRequest) (GenerateBatchResponse, error)

	// List retrieves payroll rows visible under the caller's scope, newest
	// month first.
	List(ctx context.Context, filter ListFilter) (ListPayrollResponse, error)

	// Payslip retrieves a single record if the caller's scope allows it.
	Payslip(ctx context.Context, id string) (PayrollRecordResponse, error)

	// PayslipPDF renders the payslip as a PDF document.
	PayslipPDF(ctx context.Context, id string) ([]byte, error)

	// MarkPaid finalizes pending records.
	MarkPaid(ctx context.Context, req MarkPaidRequest) (int64, error)
}
