package validator

import (
	"context"
	"time"
)

// Validator validates structs against their `validate` tags.
type Validator interface {
	// Validate validates data with a background context.
	Validate(data any) error
	// ValidateContext validates data. Rules that depend on the current date
	// read it from ctx (see WithReferenceTime).
	ValidateContext(ctx context.Context, data any) error
	// RegisterRule adds a custom tag. It must be called before the validator
	// is shared between goroutines.
	RegisterRule(rule Rule) error
}

// Predicate reports whether value satisfies a rule. record is the struct that
// declares the field, so a predicate may read sibling fields.
type Predicate func(ctx context.Context, value, record any) bool

// Rule is a named predicate with its English message.
//
// Message may use {0} for the field label and {1} for the tag parameter.
type Rule struct {
	Tag     string
	Message string
	Check   Predicate
}

type referenceTimeKey struct{}

// WithReferenceTime returns a copy of ctx that pins the "now" used by date rules.
func WithReferenceTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, referenceTimeKey{}, t)
}

// ReferenceTime returns the instant pinned by WithReferenceTime.
func ReferenceTime(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(referenceTimeKey{}).(time.Time)
	return t, ok
}
