package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gostaff/internal/pkg/clock"
	"github.com/shandysiswandi/gostaff/internal/pkg/instrument"
	"github.com/shandysiswandi/gostaff/internal/pkg/validator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const recordName = "employee"

type Usecase struct {
	validator validator.Validator
	clock     clock.Clocker
	ins       instrument.Instrumentation
	failures  metric.Int64Counter
}

type Dependency struct {
	Validator  validator.Validator
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

// New registers the employee rules on dep.Validator and returns the use case.
func New(dep Dependency) (*Usecase, error) {
	if err := registerRules(dep.Validator); err != nil {
		return nil, err
	}

	failures, err := dep.Instrument.Meter("employee.usecase").Int64Counter(
		"personnel.validation.failures",
		metric.WithDescription("Number of failed rules per record field"),
	)
	if err != nil {
		slog.Error("failed to create validation failures counter", "error", err)
	}

	return &Usecase{
		validator: dep.Validator,
		clock:     dep.Clock,
		ins:       dep.Instrument,
		failures:  failures,
	}, nil
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("employee.usecase").Start(ctx, name)
}

func (s *Usecase) recordFailures(ctx context.Context, verr validator.V10ValidationError) {
	fields := verr.Fields()

	trace.SpanFromContext(ctx).SetAttributes(attribute.StringSlice("validation.failed_fields", fields))
	if s.failures != nil {
		for _, field := range fields {
			s.failures.Add(ctx, 1, metric.WithAttributes(
				attribute.String("record", recordName),
				attribute.String("field", field),
			))
		}
	}

	slog.InfoContext(ctx, "employee record rejected", "fields", fields)
}
