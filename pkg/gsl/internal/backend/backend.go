//go:build cgo && !windows

package backend

/*
#cgo LDFLAGS: -lgsl -lgslcblas -lm
#cgo darwin CFLAGS: -I/opt/homebrew/include
#cgo darwin LDFLAGS: -L/opt/homebrew/lib
#cgo linux CFLAGS: -I/usr/local/include
#cgo linux LDFLAGS: -L/usr/local/lib

#include <gsl/gsl_errno.h>
#include <gsl/gsl_version.h>
*/
import "C"

import "unsafe"

// GSL's default error handler calls abort(). The binding reports every
// status through Go errors instead, so the handler is switched off before
// any other native call can run.
func init() {
	C.gsl_set_error_handler_off()
}

// Built reports whether the native library is linked into this binary.
func Built() bool { return true }

// Version returns the version string of the linked GSL library.
func Version() string {
	return C.GoString(C.gsl_version)
}

// dptr returns the C view of a float64 slice, or nil for an empty slice.
// The pointer is only valid for the duration of a single cgo call.
func dptr(s []float64) *C.double {
	if len(s) == 0 {
		return nil
	}
	return (*C.double)(unsafe.Pointer(&s[0]))
}
