package attendance

import (
	"github.com/stafflane/hrms-backend-go/internal/pkg/validator"
)

const (
	RecordTypeCheckIn  = "check_in"
	RecordTypeCheckOut = "check_out"
)

type RecordRequest struct {
	Type string `json:"type"`
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != RecordTypeCheckIn && r.Type != RecordTypeCheckOut {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be check_in or check_out",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
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

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	Date         string   `json:"date"`
	CheckIn      string   `json:"check_in"`
	CheckOut     *string  `json:"check_out,omitempty"`
	TotalHours   *float64 `json:"total_hours,omitempty"`
	Status       string   `json:"status"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		CheckIn:      a.CheckIn.Format("2006-01-02 15:04:05"),
		TotalHours:   a.TotalHours,
		Status:       string(a.Status),
	}
	if a.CheckOut != nil {
		out := a.CheckOut.Format("2006-01-02 15:04:05")
		resp.CheckOut = &out
	}
	return resp
}

type ListAttendanceResponse struct {
	Records []AttendanceResponse `json:"records"`
	Total   int64                `json:"total"`
	Page    int                  `json:"page"`
	Limit   int                  `json:"limit"`
}

// Summary aggregates an employee's full attendance history.
type Summary struct {
	TotalDays   int64   `json:"total_days"`
	PresentDays int64   `json:"present_days"`
	AbsentDays  int64   `json:"absent_days"`
	AvgHours    float64 `json:"avg_hours"`
}
