package payroll

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/stafflane/hrms-backend-go/internal/domain/employee"
	"github.com/stafflane/hrms-backend-go/internal/domain/payroll"
	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employee.EmployeeRepository
	taxPolicy payroll.TaxPolicy
}

func NewPayrollService(payrollRepository payroll.PayrollRepository, employeeRepository employee.EmployeeRepository, taxPolicy payroll.TaxPolicy) payroll.PayrollService {
	if taxPolicy == nil {
		taxPolicy = payroll.DefaultTaxPolicy()
	}
	return &PayrollServiceImpl{
		PayrollRepository:  payrollRepository,
		EmployeeRepository: employeeRepository,
		taxPolicy:          taxPolicy,
	}
}

// GenerateBatch implements payroll.PayrollService. Entries are inserted one
// by one on purpose: a duplicate month or a missing employee fails that entry
// alone and is reported in Failed, while the rest of the batch lands.
func (s *PayrollServiceImpl) GenerateBatch(ctx context.Context, req payroll.GenerateBatchRequest) (payroll.GenerateBatchResponse, error) {
	resp := payroll.GenerateBatchResponse{
		BatchID:      uuid.New().String(),
		PayrollMonth: req.PayrollMonth,
		Created:      make([]payroll.PayrollRecordResponse, 0, len(req.Entries)),
	}

	for _, entry := range req.Entries {
		tax, net := payroll.Compute(payroll.ComputationInput{
			BasicSalary: entry.BasicSalary,
			Allowances:  entry.Allowances,
			Deductions:  entry.Deductions,
			Overtime:    entry.Overtime,
			Bonus:       entry.Bonus,
		}, s.taxPolicy)

		if _, err := s.EmployeeRepository.GetByID(ctx, entry.EmployeeID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				resp.Failed = append(resp.Failed, payroll.BatchFailure{
					EmployeeID: entry.EmployeeID,
					Reason:     payroll.ErrEmployeeNotFound.Error(),
				})
				continue
			}
			return payroll.GenerateBatchResponse{}, err
		}

		created, err := s.PayrollRepository.CreateRecord(ctx, payroll.PayrollRecord{
			EmployeeID:   entry.EmployeeID,
			PayrollMonth: req.PayrollMonth,
			BasicSalary:  entry.BasicSalary,
			Allowances:   entry.Allowances,
			Deductions:   entry.Deductions,
			Overtime:     entry.Overtime,
			Bonus:        entry.Bonus,
			Tax:          tax,
			NetSalary:    net,
		})
		if err != nil {
			if errors.Is(err, payroll.ErrPayrollRecordAlreadyExists) {
				resp.Failed = append(resp.Failed, payroll.BatchFailure{
					EmployeeID: entry.EmployeeID,
					Reason:     err.Error(),
				})
				continue
			}
			return payroll.GenerateBatchResponse{}, err
		}

		resp.Created = append(resp.Created, payroll.ToResponse(created))
	}

	return resp, nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.ListFilter) (payroll.ListPayrollResponse, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}
	if err := filter.Validate(); err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	records, total, err := s.PayrollRepository.List(ctx, sc, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	resp := payroll.ListPayrollResponse{
		Records: make([]payroll.PayrollRecordResponse, 0, len(records)),
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, payroll.ToResponse(rec))
	}
	return resp, nil
}

// Payslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	rec, err := s.scopedRecord(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return payroll.ToResponse(rec), nil
}

// PayslipPDF implements payroll.PayrollService.
func (s *PayrollServiceImpl) PayslipPDF(ctx context.Context, id string) ([]byte, error) {
	rec, err := s.scopedRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	name := ""
	if rec.EmployeeName != nil {
		name = *rec.EmployeeName
	}
	code := ""
	if rec.EmployeeCode != nil {
		code = *rec.EmployeeCode
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", name, code))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", rec.PayrollMonth))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Basic salary: %s", rec.BasicSalary.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: %s", rec.Allowances.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overtime: %s", rec.Overtime.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Bonus: %s", rec.Bonus.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %s", rec.Deductions.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Tax: %s", rec.Tax.StringFixed(2)))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %s", rec.NetSalary.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// MarkPaid implements payroll.PayrollService. Returns the number of records
// that actually moved to paid; already-paid ids are skipped silently.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, req payroll.MarkPaidRequest) (int64, error) {
	return s.PayrollRepository.MarkPaid(ctx, req.IDs)
}

func (s *PayrollServiceImpl) scopedRecord(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	sc, err := scope.FromContext(ctx)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	rec, err := s.PayrollRepository.GetRecordByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	dept := ""
	if rec.Department != nil {
		dept = *rec.Department
	}
	if !sc.AllowsEmployee(rec.EmployeeID, dept) {
		return payroll.PayrollRecord{}, payroll.ErrPayslipForbidden
	}

	return rec, nil
}
