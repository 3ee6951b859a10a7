package entity

const (
	// MinHourlySalary is the lowest accepted hourly salary, inclusive.
	MinHourlySalary = 30.0

	// MaxHourlySalary is the highest accepted hourly salary, inclusive.
	MaxHourlySalary = 400.0
)

// Staff is a record that passed every staff rule. HourlySalary is always set.
type Staff struct {
	Name         string
	Email        string
	Phone        string
	HourlySalary float64
}
