package performance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflane/hrms-backend-go/internal/domain/employee"
	"github.com/stafflane/hrms-backend-go/internal/domain/performance"
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

type fakePerformanceRepo struct {
	reviews map[string]performance.PerformanceReview
	nextID  int
}

func newFakePerformanceRepo() *fakePerformanceRepo {
	return &fakePerformanceRepo{reviews: make(map[string]performance.PerformanceReview)}
}

func (f *fakePerformanceRepo) Create(ctx context.Context, review performance.PerformanceReview) (performance.PerformanceReview, error) {
	f.nextID++
	review.ID = fmt.Sprintf("rev-%d", f.nextID)
	f.reviews[review.ID] = review
	return review, nil
}

func (f *fakePerformanceRepo) GetByID(ctx context.Context, id string) (performance.PerformanceReview, error) {
	rev, ok := f.reviews[id]
	if !ok {
		return performance.PerformanceReview{}, performance.ErrReviewNotFound
	}
	return rev, nil
}

func (f *fakePerformanceRepo) List(ctx context.Context, sc scope.Scope, filter performance.ListFilter) ([]performance.PerformanceReview, int64, error) {
	var out []performance.PerformanceReview
	for _, rev := range f.reviews {
		dept := ""
		if rev.Department != nil {
			dept = *rev.Department
		}
		if !sc.AllowsEmployee(rev.EmployeeID, dept) {
			continue
		}
		if filter.EmployeeID != nil && rev.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, rev)
	}
	return out, int64(len(out)), nil
}

func (f *fakePerformanceRepo) Update(ctx context.Context, req performance.UpdateRequest) (performance.PerformanceReview, error) {
	rev, ok := f.reviews[req.ID]
	if !ok {
		return performance.PerformanceReview{}, performance.ErrReviewNotFound
	}
	if req.Rating != nil {
		rev.Rating = *req.Rating
	}
	if req.Comments != nil {
		rev.Comments = req.Comments
	}
	if req.Status != nil {
		rev.Status = performance.Status(*req.Status)
	}
	f.reviews[req.ID] = rev
	return rev, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
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
	return "EMP-0001", nil
}

func teamMember(id, department string) employee.Employee {
	return employee.Employee{
		ID:         id,
		FirstName:  "Dewi",
		LastName:   "Lestari",
		Department: department,
		Position:   "Engineer",
	}
}

func TestCreateReviewAsManager(t *testing.T) {
	repo := newFakePerformanceRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": teamMember("emp-1", "Engineering"),
	}}
	svc := NewPerformanceService(repo, employees)
	ctx := scopedCtx(t, "manager", "emp-mgr", "Engineering")

	resp, err := svc.Create(ctx, performance.CreateRequest{
		EmployeeID: "emp-1",
		ReviewDate: "2025-06-30",
		Rating:     4,
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "emp-mgr", resp.ReviewerID)
	assert.Equal(t, "2025-06-30", resp.ReviewDate)
	assert.Equal(t, string(performance.StatusDraft), resp.Status)
}

func TestCreateReviewRejectsEmployeeRole(t *testing.T) {
	svc := NewPerformanceService(newFakePerformanceRepo(), &fakeEmployeeRepo{})
	ctx := scopedCtx(t, "employee", "emp-1", "Engineering")

	_, err := svc.Create(ctx, performance.CreateRequest{EmployeeID: "emp-2", Rating: 3})
	assert.ErrorIs(t, err, performance.ErrReviewerRoleRequired)
}

func TestCreateReviewManagerLimitedToDepartment(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": teamMember("emp-1", "Sales"),
	}}
	svc := NewPerformanceService(newFakePerformanceRepo(), employees)
	ctx := scopedCtx(t, "manager", "emp-mgr", "Engineering")

	_, err := svc.Create(ctx, performance.CreateRequest{EmployeeID: "emp-1", Rating: 3})
	assert.ErrorIs(t, err, performance.ErrOutOfScope)
}

func TestGetHidesOutOfScopeReview(t *testing.T) {
	repo := newFakePerformanceRepo()
	dept := "Sales"
	created, err := repo.Create(context.Background(), performance.PerformanceReview{
		EmployeeID: "emp-1",
		ReviewerID: "emp-mgr-sales",
		ReviewDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Rating:     4,
		Status:     performance.StatusDraft,
		Department: &dept,
	})
	require.NoError(t, err)

	svc := NewPerformanceService(repo, &fakeEmployeeRepo{})

	_, err = svc.Get(scopedCtx(t, "employee", "emp-2", "Engineering"), created.ID)
	assert.ErrorIs(t, err, performance.ErrReviewNotFound)

	resp, err := svc.Get(scopedCtx(t, "employee", "emp-1", "Sales"), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
}

func TestUpdateRequiresReviewerOrHR(t *testing.T) {
	repo := newFakePerformanceRepo()
	created, err := repo.Create(context.Background(), performance.PerformanceReview{
		EmployeeID: "emp-1",
		ReviewerID: "emp-mgr",
		ReviewDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Rating:     3,
		Status:     performance.StatusDraft,
	})
	require.NoError(t, err)

	svc := NewPerformanceService(repo, &fakeEmployeeRepo{})
	rating := 5

	_, err = svc.Update(scopedCtx(t, "manager", "emp-other-mgr", "Engineering"), performance.UpdateRequest{
		ID:     created.ID,
		Rating: &rating,
	})
	assert.ErrorIs(t, err, performance.ErrNotReviewOwner)

	resp, err := svc.Update(scopedCtx(t, "manager", "emp-mgr", "Engineering"), performance.UpdateRequest{
		ID:     created.ID,
		Rating: &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Rating)

	status := string(performance.StatusSubmitted)
	resp, err = svc.Update(scopedCtx(t, "hr", "emp-hr", "People"), performance.UpdateRequest{
		ID:     created.ID,
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, string(performance.StatusSubmitted), resp.Status)
}
