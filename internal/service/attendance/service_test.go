package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflane/hrms-backend-go/internal/domain/attendance"
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

type dayKey struct {
	employeeID string
	date       string
}

type fakeAttendanceRepo struct {
	byDay  map[dayKey]attendance.Attendance
	nextID int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{byDay: make(map[dayKey]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(employeeID string, date time.Time) dayKey {
	return dayKey{employeeID: employeeID, date: date.Format("2006-01-02")}
}

// Create mirrors the UNIQUE(employee_id, date) constraint.
func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	k := f.key(att.EmployeeID, att.Date)
	if _, exists := f.byDay[k]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	f.byDay[k] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	att, ok := f.byDay[f.key(employeeID, date)]
	if !ok || att.CheckOut != nil {
		return attendance.Attendance{}, attendance.ErrNotCheckedIn
	}
	return att, nil
}

func (f *fakeAttendanceRepo) CloseSession(ctx context.Context, id string, checkOut time.Time, totalHours float64) (attendance.Attendance, error) {
	for k, att := range f.byDay {
		if att.ID != id {
			continue
		}
		if att.CheckOut != nil {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
		}
		att.CheckOut = &checkOut
		att.TotalHours = &totalHours
		att.Status = attendance.StatusCheckedOut
		f.byDay[k] = att
		return att, nil
	}
	return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
}

func (f *fakeAttendanceRepo) List(ctx context.Context, sc scope.Scope, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range f.byDay {
		if !sc.AllowsEmployee(att.EmployeeID, "") {
			continue
		}
		out = append(out, att)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) Summarize(ctx context.Context, employeeID string) (attendance.Summary, error) {
	var s attendance.Summary
	var hoursSum float64
	var hoursCount int64
	for _, att := range f.byDay {
		if att.EmployeeID != employeeID {
			continue
		}
		s.TotalDays++
		if att.Status != attendance.StatusAbsent {
			s.PresentDays++
		} else {
			s.AbsentDays++
		}
		if att.TotalHours != nil {
			hoursSum += *att.TotalHours
			hoursCount++
		}
	}
	if hoursCount > 0 {
		s.AvgHours = hoursSum / float64(hoursCount)
	}
	return s, nil
}

func newTestService(repo *fakeAttendanceRepo, now time.Time) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		now:                  func() time.Time { return now },
	}
}

func TestRecordCheckIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)
	ctx := scopedCtx(t, "employee", "emp-1", "Engineering")

	resp, err := svc.Record(ctx, attendance.RecordRequest{Type: attendance.RecordTypeCheckIn})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.Nil(t, resp.CheckOut)
}

func TestRecordSecondCheckInSameDayFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)
	ctx := scopedCtx(t, "employee", "emp-1", "Engineering")

	_, err := svc.Record(ctx, attendance.RecordRequest{Type: attendance.RecordTypeCheckIn})
	require.NoError(t, err)

	_, err = svc.Record(ctx, attendance.RecordRequest{Type: attendance.RecordTypeCheckIn})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestRecordCheckOutComputesHours(t *testing.T) {
	repo := newFakeAttendanceRepo()
	checkIn := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	ctx := scopedCtx(t, "employee", "emp-1", "Engineering")

	_, err := newTestService(repo, checkIn).Record(ctx, attendance.RecordRequest{Type: attendance.RecordTypeCheckIn})
	require.NoError(t, err)

	checkOut := checkIn.Add(8*time.Hour + 15*time.Minute)
	resp, err := newTestService(repo, checkOut).Record(ctx, attendance.RecordRequest{Type: attendance.RecordTypeCheckOut})
	require.NoError(t, err)

	require.NotNil(t, resp.TotalHours)
	assert.InDelta(t, 8.25, *resp.TotalHours, 0.001)
	assert.Equal(t, string(attendance.StatusCheckedOut), resp.Status)
}

func TestRecordCheckOutWithoutCheckInFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	now := time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)
	ctx := scopedCtx(t, "employee", "emp-1", "Engineering")

	_, err := svc.Record(ctx, attendance.RecordRequest{Type: attendance.RecordTypeCheckOut})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestRecordDoubleCheckOutFails(t *testing.T) {
	repo := newFakeAttendanceRepo()
	checkIn := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	ctx := scopedCtx(t, "employee", "emp-1", "Engineering")

	_, err := newTestService(repo, checkIn).Record(ctx, attendance.RecordRequest{Type: attendance.RecordTypeCheckIn})
	require.NoError(t, err)

	svc := newTestService(repo, checkIn.Add(8*time.Hour))
	_, err = svc.Record(ctx, attendance.RecordRequest{Type: attendance.RecordTypeCheckOut})
	require.NoError(t, err)

	_, err = svc.Record(ctx, attendance.RecordRequest{Type: attendance.RecordTypeCheckOut})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestSummaryDefaultsToCaller(t *testing.T) {
	repo := newFakeAttendanceRepo()
	hours := 8.0
	out := time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC)
	repo.byDay[dayKey{employeeID: "emp-1", date: "2026-09-01"}] = attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Status:     attendance.StatusCheckedOut,
		CheckOut:   &out,
		TotalHours: &hours,
	}
	svc := newTestService(repo, out)

	summary, err := svc.Summary(scopedCtx(t, "employee", "emp-1", "Engineering"), "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalDays)
	assert.Equal(t, int64(1), summary.PresentDays)
	assert.InDelta(t, 8.0, summary.AvgHours, 0.001)
}
