//go:build cgo && !windows

package backend

/*
#include <gsl/gsl_vector.h>
*/
import "C"

import "unsafe"

// Vector is the native handle for a gsl_vector of doubles.
type Vector = *C.gsl_vector

// VectorAlloc allocates a zero-initialized vector of length n.
func VectorAlloc(n int) (Vector, error) {
	v := C.gsl_vector_calloc(C.size_t(n))
	if v == nil {
		return nil, &Error{Op: "vector_calloc", Code: ENoMem}
	}
	return v, nil
}

// VectorFree releases a vector. Safe on nil.
func VectorFree(v Vector) {
	if v == nil {
		return
	}
	C.gsl_vector_free(v)
}

func VectorLen(v Vector) int {
	return int(v.size)
}

func VectorGet(v Vector, i int) float64 {
	return float64(C.gsl_vector_get(v, C.size_t(i)))
}

func VectorSet(v Vector, i int, x float64) {
	C.gsl_vector_set(v, C.size_t(i), C.double(x))
}

func VectorSetAll(v Vector, x float64) {
	C.gsl_vector_set_all(v, C.double(x))
}

func VectorSetZero(v Vector) {
	C.gsl_vector_set_zero(v)
}

func VectorSetBasis(v Vector, i int) error {
	return statusErr("vector_set_basis", int(C.gsl_vector_set_basis(v, C.size_t(i))))
}

// VectorData copies the vector contents out to a fresh Go slice.
func VectorData(v Vector) []float64 {
	n := int(v.size)
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	stride := int(v.stride)
	src := unsafe.Slice((*float64)(unsafe.Pointer(v.data)), (n-1)*stride+1)
	for i := 0; i < n; i++ {
		out[i] = src[i*stride]
	}
	return out
}

// VectorSetData copies a Go slice into the vector. len(data) must equal
// the vector length; the caller checks before crossing the boundary.
func VectorSetData(v Vector, data []float64) error {
	n := int(v.size)
	if len(data) != n {
		return &Error{Op: "vector_set_data", Code: EBadLen}
	}
	stride := int(v.stride)
	dst := unsafe.Slice((*float64)(unsafe.Pointer(v.data)), (n-1)*stride+1)
	for i := 0; i < n; i++ {
		dst[i*stride] = data[i]
	}
	return nil
}

// VectorMemcpy copies src into dst. Lengths must match (EBadLen from the
// native side otherwise).
func VectorMemcpy(dst, src Vector) error {
	return statusErr("vector_memcpy", int(C.gsl_vector_memcpy(dst, src)))
}

func VectorSwapElements(v Vector, i, j int) error {
	return statusErr("vector_swap_elements", int(C.gsl_vector_swap_elements(v, C.size_t(i), C.size_t(j))))
}

func VectorReverse(v Vector) error {
	return statusErr("vector_reverse", int(C.gsl_vector_reverse(v)))
}

func VectorAdd(a, b Vector) error {
	return statusErr("vector_add", int(C.gsl_vector_add(a, b)))
}

func VectorSub(a, b Vector) error {
	return statusErr("vector_sub", int(C.gsl_vector_sub(a, b)))
}

func VectorMul(a, b Vector) error {
	return statusErr("vector_mul", int(C.gsl_vector_mul(a, b)))
}

func VectorDiv(a, b Vector) error {
	return statusErr("vector_div", int(C.gsl_vector_div(a, b)))
}

func VectorScale(v Vector, x float64) error {
	return statusErr("vector_scale", int(C.gsl_vector_scale(v, C.double(x))))
}

func VectorAddConstant(v Vector, x float64) error {
	return statusErr("vector_add_constant", int(C.gsl_vector_add_constant(v, C.double(x))))
}

func VectorMax(v Vector) float64 {
	return float64(C.gsl_vector_max(v))
}

func VectorMin(v Vector) float64 {
	return float64(C.gsl_vector_min(v))
}

func VectorMinmax(v Vector) (min, max float64) {
	var cmin, cmax C.double
	C.gsl_vector_minmax(v, &cmin, &cmax)
	return float64(cmin), float64(cmax)
}

func VectorMaxIndex(v Vector) int {
	return int(C.gsl_vector_max_index(v))
}

func VectorMinIndex(v Vector) int {
	return int(C.gsl_vector_min_index(v))
}

func VectorIsNull(v Vector) bool {
	return C.gsl_vector_isnull(v) == 1
}

func VectorIsPos(v Vector) bool {
	return C.gsl_vector_ispos(v) == 1
}

func VectorIsNeg(v Vector) bool {
	return C.gsl_vector_isneg(v) == 1
}
