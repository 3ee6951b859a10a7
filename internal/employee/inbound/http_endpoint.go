package inbound

import (
	"github.com/shandysiswandi/gostaff/internal/employee/usecase"
	"github.com/shandysiswandi/gostaff/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for employee records.
type HTTPEndpoint struct {
	uc uc
}

// Validate checks an employee record and echoes it back.
// @Summary Validate employee
// @Description Checks name, birth date, email, phone and the age dependent hourly salary floor. Every failed rule is reported.
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body EmployeeRequest true "Employee record"
// @Success 200 {object} EmployeeResponse "The record as received"
// @Failure 400 {array} string "Failed rule messages" example:["Name is required.","Phone is not valid."]
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/employee [post]
func (h *HTTPEndpoint) Validate(r *router.Request) (any, error) {
	var req EmployeeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Validate(r.Context(), usecase.ValidateInput{
		Name:         req.Name,
		DateOfBirth:  req.DateOfBirth.Date,
		Email:        req.Email,
		Phone:        req.Phone,
		HourlySalary: req.HourlySalary,
	})
	if err != nil {
		return nil, err
	}

	return EmployeeResponse{
		Name:         resp.Name,
		DateOfBirth:  req.DateOfBirth, // as sent
		Email:        resp.Email,
		Phone:        resp.Phone,
		HourlySalary: resp.HourlySalary,
	}, nil
}
