// Package sf wraps the gsl_sf special function evaluations.
//
// Every function comes in two forms, mirroring the native library. The
// natural form returns the value directly; because the binding disables the
// GSL error handler, a domain or overflow failure shows up only as NaN (or
// zero for underflows) in the returned value:
//
//	y := sf.Gamma(-1) // NaN, no further detail
//
// The E form calls the gsl_sf_*_e variant, which reports the failure as an
// error carrying the GSL status code and also returns an absolute error
// estimate alongside the value:
//
//	r, err := sf.GammaE(-1)
//	if gsl.CodeOf(err) == gsl.EDom { ... }
//
// Use the natural form in inner loops where failures are impossible or
// acceptable as NaN, and the E form whenever the status code or the error
// estimate matters.
package sf
