package inbound

import (
	"context"

	"github.com/shandysiswandi/gostaff/internal/pkg/router"
	"github.com/shandysiswandi/gostaff/internal/staff/entity"
	"github.com/shandysiswandi/gostaff/internal/staff/usecase"
)

type uc interface {
	Validate(ctx context.Context, in usecase.ValidateInput) (*entity.Staff, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/staff", end.Validate)
}
