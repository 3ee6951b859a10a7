package inbound

import (
	"context"

	"github.com/shandysiswandi/gostaff/internal/employee/entity"
	"github.com/shandysiswandi/gostaff/internal/employee/usecase"
	"github.com/shandysiswandi/gostaff/internal/pkg/router"
)

type uc interface {
	Validate(ctx context.Context, in usecase.ValidateInput) (*entity.Employee, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/employee", end.Validate)
}
