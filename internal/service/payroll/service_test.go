package payroll

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflane/hrms-backend-go/internal/domain/employee"
	"github.com/stafflane/hrms-backend-go/internal/domain/payroll"
	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
)

func scopedCtx(t *testing.T, role, employeeID, department string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	claims := map[string]interface{}{
		"user_id": "user-1",
		"email":   "test@example.com",
		"role":    role,
		"type":    "access",
	}
	if employeeID != "" {
		claims["employee_id"] = employeeID
	}
	if department != "" {
		claims["department"] = department
	}
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakePayrollRepo struct {
	records map[string]payroll.PayrollRecord
	nextID  int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: make(map[string]payroll.PayrollRecord)}
}

func (f *fakePayrollRepo) CreateRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == record.EmployeeID && existing.PayrollMonth == record.PayrollMonth {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
	}
	f.nextID++
	record.ID = fmt.Sprintf("pay-%d", f.nextID)
	record.Status = payroll.PayrollStatusPending
	f.records[record.ID] = record
	return record, nil
}

func (f *fakePayrollRepo) GetRecordByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return rec, nil
}

func (f *fakePayrollRepo) List(ctx context.Context, sc scope.Scope, filter payroll.ListFilter) ([]payroll.PayrollRecord, int64, error) {
	var out []payroll.PayrollRecord
	for _, rec := range f.records {
		dept := ""
		if rec.Department != nil {
			dept = *rec.Department
		}
		if !sc.AllowsEmployee(rec.EmployeeID, dept) {
			continue
		}
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

func (f *fakePayrollRepo) MarkPaid(ctx context.Context, ids []string) (int64, error) {
	var updated int64
	for _, id := range ids {
		rec, ok := f.records[id]
		if !ok || rec.Status != payroll.PayrollStatusPending {
			continue
		}
		rec.Status = payroll.PayrollStatusPaid
		f.records[id] = rec
		updated++
	}
	return updated, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, sc scope.Scope, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) NextEmployeeCode(ctx context.Context) (string, error) {
	return "EMP0001", nil
}

func knownEmployees(ids ...string) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, id := range ids {
		repo.employees[id] = employee.Employee{ID: id, Department: "Engineering"}
	}
	return repo
}

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestGenerateBatchComputesTaxAndNet(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := NewPayrollService(repo, knownEmployees("emp-1"), nil)

	resp, err := svc.GenerateBatch(context.Background(), payroll.GenerateBatchRequest{
		PayrollMonth: "2026-09",
		Entries: []payroll.BatchEntry{{
			EmployeeID:  "emp-1",
			BasicSalary: d("50000"),
			Allowances:  d("2000"),
			Overtime:    d("500"),
			Bonus:       d("1000"),
			Deductions:  d("1000"),
		}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Created, 1)
	assert.Empty(t, resp.Failed)
	assert.NotEmpty(t, resp.BatchID)

	// tax = 10% of 50000; net = 50000+2000+500+1000-1000-5000
	assert.Equal(t, "5000.00", resp.Created[0].Tax)
	assert.Equal(t, "47500.00", resp.Created[0].NetSalary)
	assert.Equal(t, "pending", resp.Created[0].Status)
}

func TestGenerateBatchEntriesAreIndependent(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := NewPayrollService(repo, knownEmployees("emp-1", "emp-2"), nil)

	// Pre-existing record makes emp-1 a duplicate for the month.
	_, err := repo.CreateRecord(context.Background(), payroll.PayrollRecord{
		EmployeeID:   "emp-1",
		PayrollMonth: "2026-09",
		BasicSalary:  d("40000"),
		NetSalary:    d("36000"),
	})
	require.NoError(t, err)

	resp, err := svc.GenerateBatch(context.Background(), payroll.GenerateBatchRequest{
		PayrollMonth: "2026-09",
		Entries: []payroll.BatchEntry{
			{EmployeeID: "emp-1", BasicSalary: d("50000")},
			{EmployeeID: "emp-2", BasicSalary: d("30000")},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Created, 1)
	assert.Equal(t, "emp-2", resp.Created[0].EmployeeID)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, "emp-1", resp.Failed[0].EmployeeID)
}

func TestGenerateBatchReportsUnknownEmployee(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := NewPayrollService(repo, knownEmployees("emp-1"), nil)

	resp, err := svc.GenerateBatch(context.Background(), payroll.GenerateBatchRequest{
		PayrollMonth: "2026-09",
		Entries: []payroll.BatchEntry{
			{EmployeeID: "ghost", BasicSalary: d("10000")},
			{EmployeeID: "emp-1", BasicSalary: d("20000")},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, "ghost", resp.Failed[0].EmployeeID)
	require.Len(t, resp.Created, 1)
}

func TestGenerateBatchCustomTaxPolicy(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := NewPayrollService(repo, knownEmployees("emp-1"), payroll.FlatRate{Rate: d("0.25")})

	resp, err := svc.GenerateBatch(context.Background(), payroll.GenerateBatchRequest{
		PayrollMonth: "2026-09",
		Entries:      []payroll.BatchEntry{{EmployeeID: "emp-1", BasicSalary: d("10000")}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Created, 1)
	assert.Equal(t, "2500.00", resp.Created[0].Tax)
	assert.Equal(t, "7500.00", resp.Created[0].NetSalary)
}

func TestPayslipEnforcesScope(t *testing.T) {
	repo := newFakePayrollRepo()
	dept := "Engineering"
	repo.records["pay-1"] = payroll.PayrollRecord{
		ID:           "pay-1",
		EmployeeID:   "emp-1",
		PayrollMonth: "2026-09",
		BasicSalary:  d("50000"),
		NetSalary:    d("45000"),
		Status:       payroll.PayrollStatusPending,
		Department:   &dept,
	}
	svc := NewPayrollService(repo, knownEmployees("emp-1"), nil)

	// The owner may read it.
	_, err := svc.Payslip(scopedCtx(t, "employee", "emp-1", "Engineering"), "pay-1")
	assert.NoError(t, err)

	// Another employee may not.
	_, err = svc.Payslip(scopedCtx(t, "employee", "emp-2", "Engineering"), "pay-1")
	assert.ErrorIs(t, err, payroll.ErrPayslipForbidden)

	// A manager in the same department may.
	_, err = svc.Payslip(scopedCtx(t, "manager", "emp-mgr", "Engineering"), "pay-1")
	assert.NoError(t, err)

	// A manager elsewhere may not.
	_, err = svc.Payslip(scopedCtx(t, "manager", "emp-mgr2", "Sales"), "pay-1")
	assert.ErrorIs(t, err, payroll.ErrPayslipForbidden)
}

func TestPayslipPDFRendersDocument(t *testing.T) {
	repo := newFakePayrollRepo()
	name := "Ada Lovelace"
	code := "EMP0001"
	repo.records["pay-1"] = payroll.PayrollRecord{
		ID:           "pay-1",
		EmployeeID:   "emp-1",
		PayrollMonth: "2026-09",
		BasicSalary:  d("50000"),
		Tax:          d("5000"),
		NetSalary:    d("45000"),
		Status:       payroll.PayrollStatusPending,
		EmployeeName: &name,
		EmployeeCode: &code,
	}
	svc := NewPayrollService(repo, knownEmployees("emp-1"), nil)

	pdfBytes, err := svc.PayslipPDF(scopedCtx(t, "hr", "emp-hr", "People"), "pay-1")
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestMarkPaidSkipsAlreadyPaid(t *testing.T) {
	repo := newFakePayrollRepo()
	repo.records["pay-1"] = payroll.PayrollRecord{ID: "pay-1", Status: payroll.PayrollStatusPending}
	repo.records["pay-2"] = payroll.PayrollRecord{ID: "pay-2", Status: payroll.PayrollStatusPaid}
	svc := NewPayrollService(repo, knownEmployees(), nil)

	updated, err := svc.MarkPaid(context.Background(), payroll.MarkPaidRequest{IDs: []string{"pay-1", "pay-2"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
	assert.Equal(t, payroll.PayrollStatusPaid, repo.records["pay-1"].Status)
}
