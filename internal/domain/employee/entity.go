package employee

import "time"

type Employee struct {
	ID           string
	UserID       string
	EmployeeCode string
	FirstName    string
	LastName     string
	Department   string
	Position     string
	ManagerID    *string
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	Email    *string
	IsActive *bool
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
