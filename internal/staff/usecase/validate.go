package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gostaff/internal/pkg/goerror"
	"github.com/shandysiswandi/gostaff/internal/pkg/validator"
	"github.com/shandysiswandi/gostaff/internal/staff/entity"
)

// ValidateInput is a staff record as received. A nil HourlySalary means the
// salary was null or absent.
type ValidateInput struct {
	Name         string   `validate:"required,between=10~250" label:"Name"`
	Email        string   `validate:"required,email_address" label:"Email address"`
	Phone        string   `validate:"required,number" label:"Phone"`
	HourlySalary *float64 `validate:"required,between=30~400" label:"Hourly salary"`
}

// Validate checks a staff record against the staff rules and returns it
// unchanged when every rule passes.
func (s *Usecase) Validate(ctx context.Context, in ValidateInput) (*entity.Staff, error) {
	ctx, span := s.startSpan(ctx, "Validate")
	defer span.End()

	if err := s.validator.ValidateContext(ctx, in); err != nil {
		var verr validator.V10ValidationError
		if !errors.As(err, &verr) {
			slog.ErrorContext(ctx, "failed to run staff rules", "error", err)
			return nil, goerror.NewServer(err)
		}

		s.recordFailures(ctx, verr)
		return nil, goerror.NewInvalidInput(verr)
	}

	return &entity.Staff{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		HourlySalary: *in.HourlySalary,
	}, nil
}
