package performance

import (
	"github.com/stafflane/hrms-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	EmployeeID          string  `json:"employee_id"`
	ReviewDate          string  `json:"review_date"`
	Rating              int     `json:"rating"`
	Comments            *string `json:"comments,omitempty"`
	Goals               *string `json:"goals,omitempty"`
	Achievements        *string `json:"achievements,omitempty"`
	AreasForImprovement *string `json:"areas_for_improvement,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.ReviewDate != "" {
		if _, ok := validator.IsValidDate(r.ReviewDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "review_date",
				Message: "review_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	ID                  string  `json:"-"`
	Rating              *int    `json:"rating,omitempty"`
	Comments            *string `json:"comments,omitempty"`
	Goals               *string `json:"goals,omitempty"`
	Achievements        *string `json:"achievements,omitempty"`
	AreasForImprovement *string `json:"areas_for_improvement,omitempty"`
	Status              *string `json:"status,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		})
	}
	if r.Status != nil {
		valid := []string{string(StatusDraft), string(StatusSubmitted), string(StatusAcknowledged)}
		if !validator.IsInSlice(*r.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: draft, submitted, acknowledged",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	EmployeeID *string
	Page       int
	Limit      int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type ReviewResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        *string `json:"employee_name,omitempty"`
	ReviewerID          string  `json:"reviewer_id"`
	ReviewerName        *string `json:"reviewer_name,omitempty"`
	ReviewDate          string  `json:"review_date"`
	Rating              int     `json:"rating"`
	Comments            *string `json:"comments,omitempty"`
	Goals               *string `json:"goals,omitempty"`
	Achievements        *string `json:"achievements,omitempty"`
	AreasForImprovement *string `json:"areas_for_improvement,omitempty"`
	Status              string  `json:"status"`
}

func ToResponse(r PerformanceReview) ReviewResponse {
	return ReviewResponse{
		ID:                  r.ID,
		EmployeeID:          r.EmployeeID,
		EmployeeName:        r.EmployeeName,
		ReviewerID:          r.ReviewerID,
		ReviewerName:        r.ReviewerName,
		ReviewDate:          r.ReviewDate.Format("2006-01-02"),
		Rating:              r.Rating,
		Comments:            r.Comments,
		Goals:               r.Goals,
		Achievements:        r.Achievements,
		AreasForImprovement: r.AreasForImprovement,
		Status:              string(r.Status),
	}
}

type ListReviewResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}
