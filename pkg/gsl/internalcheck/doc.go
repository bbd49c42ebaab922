// Package internalcheck contains repository policy checks that run as
// ordinary tests. They load the module's packages with go/packages and
// scan the syntax trees for violations of the binding's layering rules:
// the cgo boundary stays confined to pkg/gsl/internal/backend, and every
// allocation entry point in the backend has a matching release function.
package internalcheck
