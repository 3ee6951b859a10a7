// Package uid generates identifiers used for request tracking.
package uid

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}
