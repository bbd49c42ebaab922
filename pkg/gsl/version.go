package gsl

import "github.com/ctfree/gogsl/pkg/gsl/internal/backend"

// BindingVersion is the semantic version of the Go binding, populated at
// build time via ldflags. In development it defaults to v0.0.0-in-progress.
var BindingVersion = "v0.0.0-in-progress"

// Version returns the version string reported by the linked GSL library
// (gsl_version), or the empty string when the native bindings are not built
// into the binary.
func Version() string {
	return backend.Version()
}

// Built reports whether the native GSL library is linked into this binary.
// When false, every native call in the wrapper packages returns ErrNotBuilt.
func Built() bool {
	return backend.Built()
}
