// Package gsl is the root of a Go binding for the GNU Scientific Library.
// It carries what every wrapper package shares: the GSL status code
// enumeration, the Error type that surfaces a native status to Go callers,
// and version reporting for the binding and the linked library.
//
// The numerical surface lives in the subpackages (vector, matrix,
// permutation, blas, linalg, sf, rng, qrng, stats, integration, deriv,
// interp, odeiv), each wrapping one GSL module, plus interop for converting
// to and from gonum types. All of them compile without
// cgo; in that flavor every native call reports ErrNotBuilt so downstream
// projects can build on platforms where the library is not installed.
package gsl
