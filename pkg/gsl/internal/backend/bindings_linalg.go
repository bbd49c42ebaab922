//go:build cgo && !windows

package backend

/*
#include <gsl/gsl_linalg.h>
*/
import "C"

// LUDecomp factorizes a into PA = LU in place and records the permutation
// in p. It returns the sign of the permutation.
func LUDecomp(a Matrix, p Permutation) (signum int, err error) {
	var s C.int
	status := C.gsl_linalg_LU_decomp(a, p, &s)
	return int(s), statusErr("linalg_LU_decomp", int(status))
}

// LUSolve solves Ax = b using a factorization from LUDecomp.
func LUSolve(lu Matrix, p Permutation, b, x Vector) error {
	return statusErr("linalg_LU_solve", int(C.gsl_linalg_LU_solve(lu, p, b, x)))
}

// LUSvx solves Ax = b in place, with x holding b on entry.
func LUSvx(lu Matrix, p Permutation, x Vector) error {
	return statusErr("linalg_LU_svx", int(C.gsl_linalg_LU_svx(lu, p, x)))
}

// LUDet computes the determinant from a factorization and its signum.
func LUDet(lu Matrix, signum int) float64 {
	return float64(C.gsl_linalg_LU_det(lu, C.int(signum)))
}

// LULnDet computes the logarithm of the absolute value of the determinant.
func LULnDet(lu Matrix) float64 {
	return float64(C.gsl_linalg_LU_lndet(lu))
}

// LUInvert computes the inverse of the factorized matrix into inv.
func LUInvert(lu Matrix, p Permutation, inv Matrix) error {
	return statusErr("linalg_LU_invert", int(C.gsl_linalg_LU_invert(lu, p, inv)))
}

// QRDecomp factorizes a into QR in place, storing the Householder
// coefficients in tau. len(tau) must be min(rows, cols).
func QRDecomp(a Matrix, tau Vector) error {
	return statusErr("linalg_QR_decomp", int(C.gsl_linalg_QR_decomp(a, tau)))
}

// QRSolve solves the square system Ax = b using a factorization from
// QRDecomp.
func QRSolve(qr Matrix, tau Vector, b, x Vector) error {
	return statusErr("linalg_QR_solve", int(C.gsl_linalg_QR_solve(qr, tau, b, x)))
}

// QRLSSolve finds the least squares solution of the overdetermined system
// Ax = b, writing the residual b - Ax alongside.
func QRLSSolve(qr Matrix, tau Vector, b, x, residual Vector) error {
	return statusErr("linalg_QR_lssolve", int(C.gsl_linalg_QR_lssolve(qr, tau, b, x, residual)))
}

// CholeskyDecomp factorizes a symmetric positive definite matrix in place
// into L L^T. A non positive definite input reports EDom.
func CholeskyDecomp(a Matrix) error {
	return statusErr("linalg_cholesky_decomp1", int(C.gsl_linalg_cholesky_decomp1(a)))
}

// CholeskySolve solves Ax = b using a factorization from CholeskyDecomp.
func CholeskySolve(chol Matrix, b, x Vector) error {
	return statusErr("linalg_cholesky_solve", int(C.gsl_linalg_cholesky_solve(chol, b, x)))
}

// CholeskyInvert computes the inverse in place from a factorization.
func CholeskyInvert(chol Matrix) error {
	return statusErr("linalg_cholesky_invert", int(C.gsl_linalg_cholesky_invert(chol)))
}

// SVDecomp computes the thin singular value decomposition A = U S V^T.
// On exit a holds U. work must have the column count of a.
func SVDecomp(a, v Matrix, s, work Vector) error {
	return statusErr("linalg_SV_decomp", int(C.gsl_linalg_SV_decomp(a, v, s, work)))
}

// SVSolve solves Ax = b in the least squares sense using a decomposition
// from SVDecomp.
func SVSolve(u, v Matrix, s, b, x Vector) error {
	return statusErr("linalg_SV_solve", int(C.gsl_linalg_SV_solve(u, v, s, b, x)))
}
