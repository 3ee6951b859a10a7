package inbound

import (
	"github.com/shandysiswandi/gostaff/internal/pkg/router"
	"github.com/shandysiswandi/gostaff/internal/staff/usecase"
)

// HTTPEndpoint exposes HTTP handlers for staff records.
type HTTPEndpoint struct {
	uc uc
}

// Validate checks a staff record and echoes it back.
// @Summary Validate staff
// @Description Checks name, email, phone and that the hourly salary is set and between 30 and 400. Every failed rule is reported.
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body StaffRequest true "Staff record"
// @Success 200 {object} StaffResponse "The record as received"
// @Failure 400 {array} string "Failed rule messages" example:["Hourly salary is required."]
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/staff [post]
func (h *HTTPEndpoint) Validate(r *router.Request) (any, error) {
	var req StaffRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Validate(r.Context(), usecase.ValidateInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		HourlySalary: req.HourlySalary,
	})
	if err != nil {
		return nil, err
	}

	return StaffResponse{
		Name:         resp.Name,
		Email:        resp.Email,
		Phone:        resp.Phone,
		HourlySalary: resp.HourlySalary,
	}, nil
}
