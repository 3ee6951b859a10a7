package validator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/gostaff/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contact struct {
	Name   string   `json:"name" validate:"required,between=10~250" label:"Name"`
	Email  string   `json:"email" validate:"required,email_address" label:"Email address"`
	Phone  string   `json:"phone" validate:"required,number" label:"Phone"`
	Salary *float64 `json:"hourlySalary" validate:"required,between=30~400" label:"Hourly salary"`
}

type nickname struct {
	Nick string `json:"nick" validate:"required"`
}

func ptr[T any](v T) *T { return &v }

func newTestValidator(t *testing.T) *V10Validator {
	t.Helper()

	v, err := NewV10Validator(clock.NewFixed(time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	return v
}

func TestV10Validator_Validate(t *testing.T) {
	valid := contact{
		Name:   "Jane Appleseed",
		Email:  "jane@example.com",
		Phone:  "0812345678",
		Salary: ptr(30.0),
	}

	tests := []struct {
		name       string
		input      func() contact
		wantFields []string
		wantMsgs   []string
	}{
		{
			name:  "valid",
			input: func() contact { return valid },
		},
		{
			name: "every field empty",
			input: func() contact {
				return contact{}
			},
			wantFields: []string{"name", "email", "phone", "salary"},
			wantMsgs: []string{
				"Name is required.",
				"Email address is required.",
				"Phone is required.",
				"Hourly salary is required.",
			},
		},
		{
			name: "second rule of each field",
			input: func() contact {
				return contact{Name: "short", Email: "not-an-email", Phone: "+62-812", Salary: ptr(400.01)}
			},
			wantFields: []string{"name", "email", "phone", "salary"},
			wantMsgs: []string{
				"Name must be between 10 and 250 characters.",
				"Email address is not valid.",
				"Phone is not valid.",
				"Hourly salary must be between 30 and 400.",
			},
		},
		{
			name: "name length counts runes",
			input: func() contact {
				c := valid
				c.Name = "ÄÖÜäöüßéèê"
				return c
			},
		},
		{
			name: "email needs only a single inner at sign",
			input: func() contact {
				c := valid
				c.Email = "john@example"
				return c
			},
		},
		{
			name: "upper salary bound inclusive",
			input: func() contact {
				c := valid
				c.Salary = ptr(400.0)
				return c
			},
		},
		{
			name: "below lower salary bound",
			input: func() contact {
				c := valid
				c.Salary = ptr(29.99)
				return c
			},
			wantFields: []string{"salary"},
			wantMsgs:   []string{"Hourly salary must be between 30 and 400."},
		},
	}

	v := newTestValidator(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input())
			if len(tt.wantMsgs) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr V10ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsgs, verr.Messages())
			assert.Equal(t, tt.wantFields, verr.Fields())
		})
	}
}

func TestV10Validator_EmailAddress(t *testing.T) {
	type mailbox struct {
		Email string `validate:"email_address" label:"Email address"`
	}

	v := newTestValidator(t)

	for _, email := range []string{"john@example", "john@example.com", "a@b", "first.last+tag@sub.example.org", "john smith@example"} {
		assert.NoError(t, v.Validate(mailbox{Email: email}), email)
	}

	for _, email := range []string{"john", "@example.com", "john@", "john@doe@example.com", "@", ""} {
		var verr V10ValidationError
		require.ErrorAs(t, v.Validate(mailbox{Email: email}), &verr, email)
		assert.Equal(t, []string{"Email address is not valid."}, verr.Messages(), email)
	}
}

func TestV10Validator_LabelFallsBackToJSONName(t *testing.T) {
	v := newTestValidator(t)

	err := v.Validate(nickname{})

	var verr V10ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"nick is required."}, verr.Messages())
}

func TestV10Validator_RegisterRule(t *testing.T) {
	type shift struct {
		Start int `validate:"required"`
		End   int `validate:"after_start" label:"End"`
	}

	v := newTestValidator(t)
	require.NoError(t, v.RegisterRule(Rule{
		Tag:     "after_start",
		Message: "{0} is not valid.",
		Check: func(_ context.Context, value, record any) bool {
			s, ok := record.(shift)
			return ok && value.(int) > s.Start
		},
	}))

	assert.NoError(t, v.Validate(shift{Start: 8, End: 17}))
	assert.NoError(t, v.Validate(&shift{Start: 8, End: 17}))

	var verr V10ValidationError
	require.ErrorAs(t, v.Validate(shift{Start: 8, End: 7}), &verr)
	assert.Equal(t, []string{"End is not valid."}, verr.Messages())
	assert.Equal(t, []string{"end"}, verr.Fields())
}

func TestV10Validator_RegisterRuleRejectsIncompleteRule(t *testing.T) {
	v := newTestValidator(t)

	assert.ErrorIs(t, v.RegisterRule(Rule{Tag: "x"}), ErrInvalidRule)
	assert.ErrorIs(t, v.RegisterRule(Rule{Check: func(context.Context, any, any) bool { return true }}), ErrInvalidRule)
}

func TestV10Validator_ReferenceTime(t *testing.T) {
	type event struct {
		On clock.Date `validate:"not_future" label:"Date"`
	}

	var seen []time.Time
	v := newTestValidator(t)
	require.NoError(t, v.RegisterRule(Rule{
		Tag:     "not_future",
		Message: "{0} is not valid.",
		Check: func(ctx context.Context, value, _ any) bool {
			now, ok := ReferenceTime(ctx)
			if !ok {
				return false
			}
			seen = append(seen, now)
			return !value.(clock.Date).Time().After(clock.Today(now))
		},
	}))

	t.Run("stamped from the clock", func(t *testing.T) {
		seen = nil
		require.NoError(t, v.Validate(event{On: clock.NewDate(2026, time.October, 19)}))
		require.Len(t, seen, 1)
		assert.Equal(t, time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC), seen[0])
	})

	t.Run("pinned by the caller", func(t *testing.T) {
		ctx := WithReferenceTime(context.Background(), time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))

		var verr V10ValidationError
		require.ErrorAs(t, v.ValidateContext(ctx, event{On: clock.NewDate(2026, time.October, 19)}), &verr)
		assert.Equal(t, []string{"Date is not valid."}, verr.Messages())
	})
}

func TestV10Validator_NonStructInput(t *testing.T) {
	v := newTestValidator(t)

	err := v.Validate("not a struct")

	require.Error(t, err)
	var verr V10ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestV10ValidationError_Error(t *testing.T) {
	assert.Equal(t, "validation error", V10ValidationError{}.Error())
	assert.Equal(t, "Name is required. Phone is required.", V10ValidationError{
		{Field: "name", Message: "Name is required."},
		{Field: "phone", Message: "Phone is required."},
	}.Error())
}
