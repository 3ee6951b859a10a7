package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gostaff/internal/employee/entity"
	"github.com/shandysiswandi/gostaff/internal/pkg/clock"
	"github.com/shandysiswandi/gostaff/internal/pkg/goerror"
	"github.com/shandysiswandi/gostaff/internal/pkg/validator"
)

const (
	tagBirthDate    = "employee_birthdate"
	tagMinimumWage  = "employee_min_wage"
	notValidMessage = "{0} is not valid."
)

// ValidateInput is an employee record as received. Fields are checked in
// declaration order and each field reports at most one failure.
type ValidateInput struct {
	Name         string     `validate:"required,between=10~250" label:"Name"`
	DateOfBirth  clock.Date `validate:"employee_birthdate" label:"Birthdate"`
	Email        string     `validate:"required,email_address" label:"Email address"`
	Phone        string     `validate:"required,number" label:"Phone"`
	HourlySalary float64    `validate:"employee_min_wage" label:"Minimum hourly salary"`
}

func registerRules(v validator.Validator) error {
	return errors.Join(
		v.RegisterRule(validator.Rule{Tag: tagBirthDate, Message: notValidMessage, Check: birthDateRule}),
		v.RegisterRule(validator.Rule{Tag: tagMinimumWage, Message: notValidMessage, Check: minimumWageRule}),
	)
}

func birthDateRule(ctx context.Context, value, _ any) bool {
	dob, ok := value.(clock.Date)
	now, hasNow := validator.ReferenceTime(ctx)
	if !ok || !hasNow {
		return false
	}

	return entity.BirthDateAllowed(dob, clock.Today(now))
}

func minimumWageRule(ctx context.Context, value, record any) bool {
	salary, ok := value.(float64)
	in, isInput := record.(ValidateInput)
	now, hasNow := validator.ReferenceTime(ctx)
	if !ok || !isInput || !hasNow {
		return false
	}

	return salary >= entity.MinHourlySalary(in.DateOfBirth, clock.Today(now))
}

// Validate checks an employee record against the employee rules and returns
// it unchanged when every rule passes.
func (s *Usecase) Validate(ctx context.Context, in ValidateInput) (*entity.Employee, error) {
	ctx, span := s.startSpan(ctx, "Validate")
	defer span.End()

	ctx = validator.WithReferenceTime(ctx, s.clock.Now())

	if err := s.validator.ValidateContext(ctx, in); err != nil {
		var verr validator.V10ValidationError
		if !errors.As(err, &verr) {
			slog.ErrorContext(ctx, "failed to run employee rules", "error", err)
			return nil, goerror.NewServer(err)
		}

		s.recordFailures(ctx, verr)
		return nil, goerror.NewInvalidInput(verr)
	}

	return &entity.Employee{
		Name:         in.Name,
		DateOfBirth:  in.DateOfBirth,
		Email:        in.Email,
		Phone:        in.Phone,
		HourlySalary: in.HourlySalary,
	}, nil
}
