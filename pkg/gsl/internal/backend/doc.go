// Package backend hosts the thin cgo layer that links the Go API to the
// native GSL library. The real implementation lives behind build tags so
// that the rest of the repository can compile without cgo.
//
// Every foreign signature the binding uses is declared here and nowhere
// else. Public packages hold the owning wrapper types and forward to the
// functions in this package; they never import "C" themselves.
package backend
