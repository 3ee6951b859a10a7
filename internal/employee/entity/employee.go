package entity

import (
	"time"

	"github.com/shandysiswandi/gostaff/internal/pkg/clock"
)

const (
	// MaxAgeYears is the oldest accepted age.
	MaxAgeYears = 65

	// SeniorAgeYears is the age from which SeniorMinHourlySalary applies.
	SeniorAgeYears = 30

	// SeniorMinHourlySalary is the salary floor for employees aged SeniorAgeYears or more.
	SeniorMinHourlySalary = 200.0

	// JuniorMinHourlySalary is the salary floor for younger employees.
	JuniorMinHourlySalary = 50.0
)

// Employee is a record that passed every employee rule.
type Employee struct {
	Name         string
	DateOfBirth  clock.Date
	Email        string
	Phone        string
	HourlySalary float64
}

// BirthDateAllowed reports whether someone born on dob is at most MaxAgeYears
// old on today. Dates after today are allowed.
func BirthDateAllowed(dob clock.Date, today time.Time) bool {
	return !dob.Time().Before(clock.YearsBefore(today, MaxAgeYears))
}

// MinHourlySalary returns the salary floor for someone born on dob.
func MinHourlySalary(dob clock.Date, today time.Time) float64 {
	if !dob.Time().After(clock.YearsBefore(today, SeniorAgeYears)) {
		return SeniorMinHourlySalary
	}

	return JuniorMinHourlySalary
}
