// Package gsltest provides helpers for tests that compare against values
// computed by the native GSL library. The tolerance checks mirror the
// gsl_test_rel and gsl_test_abs macros from the library's own test suite.
package gsltest

import (
	"math"
	"testing"

	"github.com/ctfree/gogsl/pkg/gsl"
)

// RequireNative skips the test when the native GSL library is not linked
// into the binary, so conformance tests are exercised only on real builds.
func RequireNative(tb testing.TB) {
	tb.Helper()
	if !gsl.Built() {
		tb.Skip("native GSL bindings not built")
	}
}

// CloseRel fails the test unless got is within relative tolerance rel of
// want. NaN matches NaN, and infinities must match exactly, following
// gsl_test_rel.
func CloseRel(tb testing.TB, got, want, rel float64, name string) {
	tb.Helper()
	if !closeRel(got, want, rel) {
		tb.Errorf("%s = %.18g, want %.18g (rel tol %g)", name, got, want, rel)
	}
}

// CloseAbs fails the test unless |got - want| <= abs. NaN matches NaN,
// following gsl_test_abs.
func CloseAbs(tb testing.TB, got, want, abs float64, name string) {
	tb.Helper()
	if !closeAbs(got, want, abs) {
		tb.Errorf("%s = %.18g, want %.18g (abs tol %g)", name, got, want, abs)
	}
}

func closeRel(got, want, rel float64) bool {
	switch {
	case math.IsNaN(got) || math.IsNaN(want):
		return math.IsNaN(got) == math.IsNaN(want)
	case math.IsInf(got, 0) || math.IsInf(want, 0):
		return got == want
	case want != 0:
		return math.Abs(got-want) <= rel*math.Abs(want)
	default:
		return math.Abs(got) <= rel
	}
}

func closeAbs(got, want, abs float64) bool {
	if math.IsNaN(got) || math.IsNaN(want) {
		return math.IsNaN(got) == math.IsNaN(want)
	}
	if math.IsInf(got, 0) || math.IsInf(want, 0) {
		return got == want
	}
	return math.Abs(got-want) <= abs
}
