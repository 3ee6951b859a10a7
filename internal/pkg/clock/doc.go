// Package clock provides a tiny time abstraction.
//
// Production code should depend on the Clocker interface instead of calling
// time.Now() directly. This makes business logic easier to test because you can
// swap in a Fixed clock that returns a deterministic time.
//
// The package also carries calendar helpers (Date, Today, YearsBefore) used by
// age based rules, which compare calendar dates rather than instants.
package clock
