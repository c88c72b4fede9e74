package dashboard

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type HRStatsResponse struct {
	TotalEmployees    int64             `json:"total_employees"`
	DepartmentCounts  []DepartmentCount `json:"department_counts"`
	PendingLeaveCount int64             `json:"pending_leave_count"`
	PayrollCountMonth int64             `json:"payroll_count_current_month"`
}

type ManagerStatsResponse struct {
	Department        string `json:"department"`
	TeamSize          int64  `json:"team_size"`
	PendingLeaveCount int64  `json:"pending_leave_count"`
	ReviewsThisMonth  int64  `json:"reviews_this_month"`
}

type MonthAttendance struct {
	Total   int64 `json:"total"`
	Present int64 `json:"present"`
}

type EmployeeStatsResponse struct {
	Attendance        MonthAttendance `json:"attendance"`
	ApprovedLeaveYear int64           `json:"approved_leave_this_year"`
	AvgRatingYear     float64         `json:"avg_rating_this_year"`
}

type Activity struct {
	Kind         string `json:"kind"` // check_in | leave_request | review
	EmployeeName string `json:"employee_name"`
	Detail       string `json:"detail"`
	OccurredAt   string `json:"occurred_at"`
}

type ActivitiesResponse struct {
	Activities []Activity `json:"activities"`
}
