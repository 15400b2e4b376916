package request

import (
	"time"

	"pet-resort-api/internal/domain/employee"

	"github.com/google/uuid"
)

type EmployeeProfileRequest struct {
	Title    string  `json:"title" binding:"max=100"`
	HireDate *string `json:"hire_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Status   string  `json:"status" binding:"omitempty,oneof=active on_leave inactive"`
}

func (r EmployeeProfileRequest) ToAttributes() (employee.Attributes, error) {
	attrs := employee.Attributes{Title: r.Title, Status: r.Status}
	if r.HireDate != nil {
		d, err := time.Parse(time.DateOnly, *r.HireDate)
		if err != nil {
			return employee.Attributes{}, err
		}
		attrs.HireDate = &d
	}
	return attrs, nil
}

type CreateEmployeeRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
	EmployeeProfileRequest
}
