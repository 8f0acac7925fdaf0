// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Every possible finding is declared once in the static Info table (ids.go)
// with its level, category, and message templates; report sites only carry an
// ID, a location, and the message arguments. The Manager fans reports out to
// Consumer implementations, applies suppression and warnings-as-errors
// policy, and enforces the error budget that ShouldContinue exposes to
// producers.
//
// Phases depend on the narrow Reporter interface, not on the Manager, so
// tests can capture diagnostics with a Bag (via BagReporter) and the CLI can
// plug in rendering consumers from internal/diagfmt without the lexer knowing
// about either.
//
// Keep the data model deterministic and side-effect free: rendering and IO
// live in internal/diagfmt, orchestration in internal/driver.
package diag
