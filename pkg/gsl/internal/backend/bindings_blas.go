//go:build cgo && !windows

package backend

/*
#include <gsl/gsl_blas.h>
*/
import "C"

// BlasDdot computes the scalar product x^T y.
func BlasDdot(x, y Vector) (float64, error) {
	var result C.double
	status := C.gsl_blas_ddot(x, y, &result)
	return float64(result), statusErr("blas_ddot", int(status))
}

// BlasDnrm2 computes the Euclidean norm of x.
func BlasDnrm2(x Vector) float64 {
	return float64(C.gsl_blas_dnrm2(x))
}

// BlasDasum computes the sum of absolute values of x.
func BlasDasum(x Vector) float64 {
	return float64(C.gsl_blas_dasum(x))
}

// BlasIdamax returns the index of the element of x with largest absolute
// value.
func BlasIdamax(x Vector) int {
	return int(C.gsl_blas_idamax(x))
}

// BlasDaxpy computes y = alpha*x + y.
func BlasDaxpy(alpha float64, x, y Vector) error {
	return statusErr("blas_daxpy", int(C.gsl_blas_daxpy(C.double(alpha), x, y)))
}

// BlasDscal rescales x by alpha.
func BlasDscal(alpha float64, x Vector) {
	C.gsl_blas_dscal(C.double(alpha), x)
}

// BlasDcopy copies x into y.
func BlasDcopy(x, y Vector) error {
	return statusErr("blas_dcopy", int(C.gsl_blas_dcopy(x, y)))
}

// BlasDgemv computes y = alpha*op(A)*x + beta*y.
func BlasDgemv(transA Transpose, alpha float64, a Matrix, x Vector, beta float64, y Vector) error {
	status := C.gsl_blas_dgemv(C.CBLAS_TRANSPOSE_t(transA), C.double(alpha), a, x, C.double(beta), y)
	return statusErr("blas_dgemv", int(status))
}

// BlasDgemm computes C = alpha*op(A)*op(B) + beta*C.
func BlasDgemm(transA, transB Transpose, alpha float64, a, b Matrix, beta float64, c Matrix) error {
	status := C.gsl_blas_dgemm(C.CBLAS_TRANSPOSE_t(transA), C.CBLAS_TRANSPOSE_t(transB),
		C.double(alpha), a, b, C.double(beta), c)
	return statusErr("blas_dgemm", int(status))
}
