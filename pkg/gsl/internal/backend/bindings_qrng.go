//go:build cgo && !windows

package backend

/*
#include <gsl/gsl_qrng.h>
*/
import "C"

// QrngType is the native descriptor for a quasi-random sequence algorithm.
type QrngType = *C.gsl_qrng_type

// Qrng is the native handle for a quasi-random sequence instance.
type Qrng = *C.gsl_qrng

func QrngTypeSobol() QrngType         { return C.gsl_qrng_sobol }
func QrngTypeNiederreiter2() QrngType { return C.gsl_qrng_niederreiter_2 }
func QrngTypeHalton() QrngType        { return C.gsl_qrng_halton }
func QrngTypeReverseHalton() QrngType { return C.gsl_qrng_reversehalton }

func QrngTypeName(t QrngType) string { return C.GoString(t.name) }

// QrngTypeMaxDimension returns the largest dimension the algorithm
// supports. Callers validate requested dimensions against it before
// allocating.
func QrngTypeMaxDimension(t QrngType) int { return int(t.max_dimension) }

// QrngAlloc allocates a sequence of the given algorithm and dimension,
// positioned at the start.
func QrngAlloc(t QrngType, dim int) (Qrng, error) {
	q := C.gsl_qrng_alloc(t, C.uint(dim))
	if q == nil {
		return nil, &Error{Op: "qrng_alloc", Code: ENoMem}
	}
	return q, nil
}

// QrngFree releases a sequence. Safe on nil.
func QrngFree(q Qrng) {
	if q == nil {
		return
	}
	C.gsl_qrng_free(q)
}

// QrngInit rewinds the sequence to its starting point.
func QrngInit(q Qrng) { C.gsl_qrng_init(q) }

// QrngGet stores the next point of the sequence in x. len(x) must equal
// the sequence dimension; the caller checks.
func QrngGet(q Qrng, x []float64) error {
	return statusErr("qrng_get", int(C.gsl_qrng_get(q, dptr(x))))
}

func QrngName(q Qrng) string { return C.GoString(C.gsl_qrng_name(q)) }

func QrngDimension(q Qrng) int { return int(q.dimension) }

// QrngMemcpy copies the state of src into dst. Both sequences must use the
// same algorithm and dimension.
func QrngMemcpy(dst, src Qrng) error {
	return statusErr("qrng_memcpy", int(C.gsl_qrng_memcpy(dst, src)))
}

// QrngClone allocates an exact copy of the sequence, position included.
func QrngClone(q Qrng) (Qrng, error) {
	c := C.gsl_qrng_clone(q)
	if c == nil {
		return nil, &Error{Op: "qrng_clone", Code: ENoMem}
	}
	return c, nil
}
