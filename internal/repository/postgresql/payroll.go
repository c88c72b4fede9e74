package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stafflane/hrms-backend-go/internal/domain/payroll"
	"github.com/stafflane/hrms-backend-go/internal/domain/scope"
	"github.com/stafflane/hrms-backend-go/internal/pkg/database"
)

const payrollColumns = `p.id, p.employee_id, p.payroll_month, p.basic_salary, p.allowances,
	p.deductions, p.overtime, p.bonus, p.tax, p.net_salary, p.status, p.created_at, p.updated_at`

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func scanPayroll(row pgx.Row, withEmployee bool) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	dest := []interface{}{
		&rec.ID, &rec.EmployeeID, &rec.PayrollMonth, &rec.BasicSalary, &rec.Allowances,
		&rec.Deductions, &rec.Overtime, &rec.Bonus, &rec.Tax, &rec.NetSalary,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &rec.EmployeeName, &rec.EmployeeCode, &rec.Department, &rec.Position)
	}
	if err := row.Scan(dest...); err != nil {
		return payroll.PayrollRecord{}, err
	}
	return rec, nil
}

// CreateRecord implements payroll.PayrollRepository. The payrolls table has
// UNIQUE(employee_id, payroll_month); regenerating a month for the same
// employee fails the insert and surfaces as ErrPayrollRecordAlreadyExists.
func (r *payrollRepository) CreateRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (employee_id, payroll_month, basic_salary, allowances,
			deductions, overtime, bonus, tax, net_salary, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.PayrollMonth,
		record.BasicSalary,
		record.Allowances,
		record.Deductions,
		record.Overtime,
		record.Bonus,
		record.Tax,
		record.NetSalary,
		payroll.PayrollStatusPending,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	record.Status = payroll.PayrollStatusPending
	return record, nil
}

// GetRecordByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetRecordByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `,
		       e.first_name || ' ' || e.last_name AS employee_name,
		       e.employee_code,
		       e.department,
		       e.position
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	rec, err := scanPayroll(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, sc scope.Scope, filter payroll.ListFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if clause, scopeArgs := sc.SQLFilter("p.employee_id", argIdx); clause != "" {
		baseWhere += " AND " + clause
		args = append(args, scopeArgs...)
		argIdx += len(scopeArgs)
	}

	if filter.PayrollMonth != nil && *filter.PayrollMonth != "" {
		baseWhere += fmt.Sprintf(" AND p.payroll_month = $%d", argIdx)
		args = append(args, *filter.PayrollMonth)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM payrolls p WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	listQuery := `
		SELECT ` + payrollColumns + `,
		       e.first_name || ' ' || e.last_name AS employee_name,
		       e.employee_code,
		       e.department,
		       e.position
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE ` + baseWhere + fmt.Sprintf(`
		ORDER BY p.payroll_month DESC, p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayroll(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// MarkPaid implements payroll.PayrollRepository. Only pending rows move to
// paid; already-paid rows are skipped, and the affected count lets the
// service report how many actually transitioned.
func (r *payrollRepository) MarkPaid(ctx context.Context, ids []string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET status = 'paid', updated_at = NOW()
		WHERE id = ANY($1) AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to mark payroll records paid: %w", err)
	}

	return tag.RowsAffected(), nil
}
