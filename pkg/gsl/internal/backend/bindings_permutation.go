//go:build cgo && !windows

package backend

/*
#include <gsl/gsl_errno.h>
#include <gsl/gsl_permutation.h>
*/
import "C"

import "unsafe"

// Permutation is the native handle for a gsl_permutation.
type Permutation = *C.gsl_permutation

// PermutationAlloc allocates a permutation of size n initialized to the
// identity.
func PermutationAlloc(n int) (Permutation, error) {
	p := C.gsl_permutation_calloc(C.size_t(n))
	if p == nil {
		return nil, &Error{Op: "permutation_calloc", Code: ENoMem}
	}
	return p, nil
}

// PermutationFree releases a permutation. Safe on nil.
func PermutationFree(p Permutation) {
	if p == nil {
		return
	}
	C.gsl_permutation_free(p)
}

func PermutationLen(p Permutation) int {
	return int(C.gsl_permutation_size(p))
}

func PermutationGet(p Permutation, i int) int {
	return int(C.gsl_permutation_get(p, C.size_t(i)))
}

func PermutationSwap(p Permutation, i, j int) error {
	return statusErr("permutation_swap", int(C.gsl_permutation_swap(p, C.size_t(i), C.size_t(j))))
}

// PermutationNext advances p to the next permutation in lexicographic
// order. It reports false once p is the last permutation.
func PermutationNext(p Permutation) bool {
	return C.gsl_permutation_next(p) == C.GSL_SUCCESS
}

// PermutationPrev steps p back to the previous permutation in
// lexicographic order. It reports false once p is the identity.
func PermutationPrev(p Permutation) bool {
	return C.gsl_permutation_prev(p) == C.GSL_SUCCESS
}

func PermutationReverse(p Permutation) {
	C.gsl_permutation_reverse(p)
}

func PermutationInverse(inv, p Permutation) error {
	return statusErr("permutation_inverse", int(C.gsl_permutation_inverse(inv, p)))
}

func PermutationValid(p Permutation) bool {
	return C.gsl_permutation_valid(p) == C.GSL_SUCCESS
}

func PermutationMemcpy(dst, src Permutation) error {
	return statusErr("permutation_memcpy", int(C.gsl_permutation_memcpy(dst, src)))
}

// PermutationData copies the index array out to a fresh Go slice.
func PermutationData(p Permutation) []int {
	n := int(p.size)
	if n == 0 {
		return nil
	}
	src := unsafe.Slice((*C.size_t)(unsafe.Pointer(p.data)), n)
	out := make([]int, n)
	for i, v := range src {
		out[i] = int(v)
	}
	return out
}
