package entity

import (
	"testing"
	"time"

	"github.com/shandysiswandi/gostaff/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
)

func TestBirthDateAllowed(t *testing.T) {
	today := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  clock.Date
		want bool
	}{
		{name: "exactly 65", dob: clock.NewDate(1961, time.October, 19), want: true},
		{name: "one day over 65", dob: clock.NewDate(1961, time.October, 18), want: false},
		{name: "young", dob: clock.NewDate(2001, time.March, 3), want: true},
		{name: "future", dob: clock.NewDate(2030, time.January, 1), want: true},
		{name: "zero date", dob: clock.Date{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BirthDateAllowed(tt.dob, today))
		})
	}
}

func TestMinHourlySalary(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		dob   clock.Date
		want  float64
	}{
		{
			name:  "turns 30 today",
			today: time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
			dob:   clock.NewDate(1996, time.October, 19),
			want:  SeniorMinHourlySalary,
		},
		{
			name:  "turns 30 tomorrow",
			today: time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
			dob:   clock.NewDate(1996, time.October, 20),
			want:  JuniorMinHourlySalary,
		},
		{
			name:  "leap day anchor clamps to 28 February",
			today: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			dob:   clock.NewDate(1994, time.February, 28),
			want:  SeniorMinHourlySalary,
		},
		{
			name:  "born 1 March before leap day anchor",
			today: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			dob:   clock.NewDate(1994, time.March, 1),
			want:  JuniorMinHourlySalary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MinHourlySalary(tt.dob, tt.today), 0)
		})
	}
}
