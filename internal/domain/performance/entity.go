package performance

import "time"

type Status string

const (
	StatusDraft        Status = "draft"
	StatusSubmitted    Status = "submitted"
	StatusAcknowledged Status = "acknowledged"
)

type PerformanceReview struct {
	ID                  string
	EmployeeID          string
	ReviewerID          string
	ReviewDate          time.Time
	Rating              int // 1..5
	Comments            *string
	Goals               *string
	Achievements        *string
	AreasForImprovement *string
	Status              Status
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// DTO / Join
	EmployeeName *string
	ReviewerName *string
	Department   *string
}
