package inbound

import "github.com/shandysiswandi/gostaff/internal/pkg/clock"

type EmployeeRequest struct {
	Name         string        `json:"name"`
	DateOfBirth  clock.RawDate `json:"dateOfBirth" swaggertype:"string" example:"1990-05-17"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	HourlySalary float64       `json:"hourlySalary"`
}

type EmployeeResponse struct {
	Name         string        `json:"name"`
	DateOfBirth  clock.RawDate `json:"dateOfBirth" swaggertype:"string" example:"1990-05-17"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	HourlySalary float64       `json:"hourlySalary"`
}
