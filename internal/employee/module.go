package employee

import (
	"github.com/shandysiswandi/gostaff/internal/employee/inbound"
	"github.com/shandysiswandi/gostaff/internal/employee/usecase"
	"github.com/shandysiswandi/gostaff/internal/pkg/clock"
	"github.com/shandysiswandi/gostaff/internal/pkg/instrument"
	"github.com/shandysiswandi/gostaff/internal/pkg/router"
	"github.com/shandysiswandi/gostaff/internal/pkg/validator"
)

type Dependency struct {
	Router     *router.Router             `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc, err := usecase.New(usecase.Dependency{
		Validator:  dep.Validator,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})
	if err != nil {
		return err
	}

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
