// Package validator provides a small validation abstraction for request and
// domain structs.
//
// Business code should depend on the Validator interface so validation can be
// shared and tested consistently. Rules are declared with struct tags; each
// field stops at its first failing tag and every failure maps to one English
// message built from the field's `label` tag. Modules add their own rules,
// including cross-field ones, through RegisterRule before serving traffic.
package validator
