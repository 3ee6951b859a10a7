package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/samber/lo"
	"github.com/shandysiswandi/gostaff/internal/pkg/clock"
)

var (
	// ErrTranslatorNotFound indicates the requested translator is unavailable.
	ErrTranslatorNotFound = errors.New("translator not found")

	// ErrInvalidRule indicates a Rule without a tag or a predicate.
	ErrInvalidRule = errors.New("validator: rule requires a tag and a check")
)

// FieldError is a single failed rule.
type FieldError struct {
	// Field is the lowerCamel name of the struct field.
	Field string `json:"field"`
	// Message is the human-readable message for the failed rule.
	Message string `json:"message"`
}

// V10ValidationError lists failed rules in field declaration order.
type V10ValidationError []FieldError

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	return strings.Join(vs.Messages(), " ")
}

// Messages returns the failure messages in order.
func (vs V10ValidationError) Messages() []string {
	return lo.Map(vs, func(fe FieldError, _ int) string {
		return fe.Message
	})
}

// Fields returns the names of the failed fields in order.
func (vs V10ValidationError) Fields() []string {
	return lo.Map(vs, func(fe FieldError, _ int) string {
		return fe.Field
	})
}

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
	clock      clock.Clocker
}

// NewV10Validator constructs a V10Validator with English messages and the
// shared custom rules. clk supplies "now" when the context does not pin one.
func NewV10Validator(clk clock.Clocker) (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldLabel)

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	if err := v10CustomValidation(validate, enTrans); err != nil {
		return nil, err
	}

	if clk == nil {
		clk = clock.New()
	}

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
		clock:      clk,
	}, nil
}

// Validate validates a struct with a background context.
func (v *V10Validator) Validate(data any) error {
	return v.ValidateContext(context.Background(), data)
}

// ValidateContext validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) ValidateContext(ctx context.Context, data any) error {
	if _, ok := ReferenceTime(ctx); !ok {
		ctx = WithReferenceTime(ctx, v.clock.Now())
	}

	if err := v.validate.StructCtx(ctx, data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		errV10 := make(V10ValidationError, 0, len(validateErrs))
		for _, fe := range validateErrs {
			errV10 = append(errV10, FieldError{
				Field:   lo.CamelCase(fe.StructField()),
				Message: fe.Translate(v.translator),
			})
		}

		return errV10
	}

	return nil
}

// RegisterRule adds a custom tag backed by rule.Check and its message.
func (v *V10Validator) RegisterRule(rule Rule) error {
	if rule.Tag == "" || rule.Check == nil {
		return ErrInvalidRule
	}

	check := rule.Check
	err := v.validate.RegisterValidationCtx(rule.Tag, func(ctx context.Context, fl validator.FieldLevel) bool {
		return check(ctx, fl.Field().Interface(), fl.Parent().Interface())
	})
	if err != nil {
		return err
	}

	return v.validate.RegisterTranslation(rule.Tag, v.translator, addMessage(rule.Tag, rule.Message), translateParam)
}

func fieldLabel(fld reflect.StructField) string {
	if label := fld.Tag.Get("label"); label != "" {
		return label
	}

	if name, _, _ := strings.Cut(fld.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}

	return fld.Name
}

func addMessage(key, message string) func(ut.Translator) error {
	return func(trans ut.Translator) error {
		return trans.Add(key, message, true)
	}
}

func translateParam(trans ut.Translator, fe validator.FieldError) string {
	t, err := trans.T(fe.Tag(), fe.Field(), fe.Param())
	if err != nil {
		slog.Warn("warning: error translating", "FieldError", fe, "error", err)
		return fe.(error).Error()
	}

	return t
}

func v10CustomValidation(validate *validator.Validate, enTrans ut.Translator) error {
	messages := map[string]string{
		"required":      "{0} is required.",
		"number":        "{0} is not valid.",
		"email_address": "{0} is not valid.",
	}
	for tag, message := range messages {
		if err := validate.RegisterTranslation(tag, enTrans, addMessage(tag, message), translateParam); err != nil {
			return err
		}
	}

	if err := validate.RegisterValidation("email_address", emailAddress); err != nil {
		return err
	}

	if err := validate.RegisterValidation("between", between); err != nil {
		return err
	}

	return validate.RegisterTranslation("between", enTrans,
		func(trans ut.Translator) error {
			if err := trans.Add("between", "{0} must be between {1} and {2}.", true); err != nil {
				return err
			}
			return trans.Add("between-string", "{0} must be between {1} and {2} characters.", true)
		},
		func(trans ut.Translator, fe validator.FieldError) string {
			low, high, _ := strings.Cut(fe.Param(), "~")

			key := fe.Tag()
			if fe.Kind() == reflect.String {
				key += "-string"
			}

			t, err := trans.T(key, fe.Field(), low, high)
			if err != nil {
				slog.Warn("warning: error translating", "FieldError", fe, "error", err)
				return fe.(error).Error()
			}

			return t
		},
	)
}

// emailAddress accepts a string holding exactly one '@' that is neither its
// first nor its last character.
func emailAddress(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	s := field.String()
	at := strings.IndexByte(s, '@')

	return at > 0 && at < len(s)-1 && at == strings.LastIndexByte(s, '@')
}

// between checks an inclusive "min~max" range: rune count for strings, value
// for numbers.
func between(fl validator.FieldLevel) bool {
	low, high, err := parseBounds(fl.Param())
	if err != nil {
		panic(err)
	}

	field := fl.Field()

	var n float64
	switch field.Kind() {
	case reflect.String:
		n = float64(utf8.RuneCountInString(field.String()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = float64(field.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n = float64(field.Uint())
	case reflect.Float32, reflect.Float64:
		n = field.Float()
	default:
		return false
	}

	return n >= low && n <= high
}

func parseBounds(param string) (float64, float64, error) {
	lowRaw, highRaw, ok := strings.Cut(param, "~")
	if !ok {
		return 0, 0, fmt.Errorf("validator: between expects min~max, got %q", param)
	}

	low, err := strconv.ParseFloat(lowRaw, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("validator: bad lower bound %q: %w", lowRaw, err)
	}

	high, err := strconv.ParseFloat(highRaw, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("validator: bad upper bound %q: %w", highRaw, err)
	}

	return low, high, nil
}
