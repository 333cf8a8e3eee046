// Package selfcheck holds suites that exercise the engine's own contracts.
// The minunit binary runs them with "minunit run"; minunit_suites.go is
// produced by "minunit generate internal/selfcheck".
package selfcheck
