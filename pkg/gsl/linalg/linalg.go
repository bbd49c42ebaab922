// Package linalg wraps the gsl_linalg factorizations and solvers for dense
// double-precision systems: LU, QR, Cholesky and singular value
// decomposition.
//
// Factorizations operate in place on the input matrix, as in the native
// library. Helper outputs (permutations, tau vectors, solution vectors) are
// allocated by the wrappers and owned by the caller. Native failure states
// pass through untranslated: a singular pivot reports gsl.EZeroDiv or
// gsl.ESing, a non positive definite Cholesky input reports gsl.EDom, and
// shape mismatches report gsl.EBadLen or gsl.ENotSqr.
package linalg

import (
	"runtime"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
	"github.com/ctfree/gogsl/pkg/gsl/matrix"
	"github.com/ctfree/gogsl/pkg/gsl/permutation"
	"github.com/ctfree/gogsl/pkg/gsl/vector"
)

func freedErr(op string) error {
	return &gsl.Error{Op: op, Code: gsl.EFault}
}

// LUDecomp factorizes the square matrix a in place into PA = LU. The
// diagonal of L is implicit. It returns the pivot permutation and the sign
// of the permutation, which LUDet needs.
func LUDecomp(a *matrix.Matrix) (*permutation.Permutation, int, error) {
	if a.Handle() == nil {
		return nil, 0, freedErr("linalg_LU_decomp")
	}
	rows, _ := a.Dims()
	p, err := permutation.New(rows)
	if err != nil {
		return nil, 0, err
	}
	signum, err := backend.LUDecomp(a.Handle(), p.Handle())
	runtime.KeepAlive(a)
	if err != nil {
		p.Free()
		return nil, 0, err
	}
	return p, signum, nil
}

// LUSolve solves Ax = b using a factorization from LUDecomp, returning a
// newly allocated solution vector.
func LUSolve(lu *matrix.Matrix, p *permutation.Permutation, b *vector.Vector) (*vector.Vector, error) {
	if lu.Handle() == nil || p.Handle() == nil || b.Handle() == nil {
		return nil, freedErr("linalg_LU_solve")
	}
	_, cols := lu.Dims()
	x, err := vector.New(cols)
	if err != nil {
		return nil, err
	}
	if err := backend.LUSolve(lu.Handle(), p.Handle(), b.Handle(), x.Handle()); err != nil {
		x.Free()
		return nil, err
	}
	runtime.KeepAlive(lu)
	runtime.KeepAlive(p)
	runtime.KeepAlive(b)
	return x, nil
}

// LUSvx solves Ax = b in place: x holds b on entry and the solution on
// return.
func LUSvx(lu *matrix.Matrix, p *permutation.Permutation, x *vector.Vector) error {
	if lu.Handle() == nil || p.Handle() == nil || x.Handle() == nil {
		return freedErr("linalg_LU_svx")
	}
	err := backend.LUSvx(lu.Handle(), p.Handle(), x.Handle())
	runtime.KeepAlive(lu)
	runtime.KeepAlive(p)
	runtime.KeepAlive(x)
	return err
}

// LUDet computes the determinant of the original matrix from its LU
// factorization and the signum returned by LUDecomp.
func LUDet(lu *matrix.Matrix, signum int) float64 {
	if lu.Handle() == nil {
		return 0
	}
	d := backend.LUDet(lu.Handle(), signum)
	runtime.KeepAlive(lu)
	return d
}

// LULnDet computes the logarithm of the absolute value of the determinant
// from an LU factorization. It stays finite where LUDet would overflow.
func LULnDet(lu *matrix.Matrix) float64 {
	if lu.Handle() == nil {
		return 0
	}
	d := backend.LULnDet(lu.Handle())
	runtime.KeepAlive(lu)
	return d
}

// LUInvert computes the inverse of the factorized matrix, returning a newly
// allocated matrix.
func LUInvert(lu *matrix.Matrix, p *permutation.Permutation) (*matrix.Matrix, error) {
	if lu.Handle() == nil || p.Handle() == nil {
		return nil, freedErr("linalg_LU_invert")
	}
	rows, cols := lu.Dims()
	inv, err := matrix.New(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := backend.LUInvert(lu.Handle(), p.Handle(), inv.Handle()); err != nil {
		inv.Free()
		return nil, err
	}
	runtime.KeepAlive(lu)
	runtime.KeepAlive(p)
	return inv, nil
}

// QRDecomp factorizes a in place into QR form and returns the Householder
// coefficients tau, of length min(rows, cols).
func QRDecomp(a *matrix.Matrix) (*vector.Vector, error) {
	if a.Handle() == nil {
		return nil, freedErr("linalg_QR_decomp")
	}
	rows, cols := a.Dims()
	n := rows
	if cols < n {
		n = cols
	}
	tau, err := vector.New(n)
	if err != nil {
		return nil, err
	}
	if err := backend.QRDecomp(a.Handle(), tau.Handle()); err != nil {
		tau.Free()
		return nil, err
	}
	runtime.KeepAlive(a)
	return tau, nil
}

// QRSolve solves the square system Ax = b using a factorization from
// QRDecomp, returning a newly allocated solution vector.
func QRSolve(qr *matrix.Matrix, tau, b *vector.Vector) (*vector.Vector, error) {
	if qr.Handle() == nil || tau.Handle() == nil || b.Handle() == nil {
		return nil, freedErr("linalg_QR_solve")
	}
	_, cols := qr.Dims()
	x, err := vector.New(cols)
	if err != nil {
		return nil, err
	}
	if err := backend.QRSolve(qr.Handle(), tau.Handle(), b.Handle(), x.Handle()); err != nil {
		x.Free()
		return nil, err
	}
	runtime.KeepAlive(qr)
	runtime.KeepAlive(tau)
	runtime.KeepAlive(b)
	return x, nil
}

// QRLSSolve finds the least squares solution of the overdetermined system
// Ax = b. It returns the solution x of length cols and the residual b - Ax
// of length rows.
func QRLSSolve(qr *matrix.Matrix, tau, b *vector.Vector) (x, residual *vector.Vector, err error) {
	if qr.Handle() == nil || tau.Handle() == nil || b.Handle() == nil {
		return nil, nil, freedErr("linalg_QR_lssolve")
	}
	rows, cols := qr.Dims()
	x, err = vector.New(cols)
	if err != nil {
		return nil, nil, err
	}
	residual, err = vector.New(rows)
	if err != nil {
		x.Free()
		return nil, nil, err
	}
	if err := backend.QRLSSolve(qr.Handle(), tau.Handle(), b.Handle(), x.Handle(), residual.Handle()); err != nil {
		x.Free()
		residual.Free()
		return nil, nil, err
	}
	runtime.KeepAlive(qr)
	runtime.KeepAlive(tau)
	runtime.KeepAlive(b)
	return x, residual, nil
}

// CholeskyDecomp factorizes a symmetric positive definite matrix in place
// into L L^T. A non positive definite input reports gsl.EDom and leaves the
// matrix partially overwritten.
func CholeskyDecomp(a *matrix.Matrix) error {
	if a.Handle() == nil {
		return freedErr("linalg_cholesky_decomp1")
	}
	err := backend.CholeskyDecomp(a.Handle())
	runtime.KeepAlive(a)
	return err
}

// CholeskySolve solves Ax = b using a factorization from CholeskyDecomp,
// returning a newly allocated solution vector.
func CholeskySolve(chol *matrix.Matrix, b *vector.Vector) (*vector.Vector, error) {
	if chol.Handle() == nil || b.Handle() == nil {
		return nil, freedErr("linalg_cholesky_solve")
	}
	_, cols := chol.Dims()
	x, err := vector.New(cols)
	if err != nil {
		return nil, err
	}
	if err := backend.CholeskySolve(chol.Handle(), b.Handle(), x.Handle()); err != nil {
		x.Free()
		return nil, err
	}
	runtime.KeepAlive(chol)
	runtime.KeepAlive(b)
	return x, nil
}

// CholeskyInvert computes the inverse of the original matrix in place from
// its Cholesky factorization.
func CholeskyInvert(chol *matrix.Matrix) error {
	if chol.Handle() == nil {
		return freedErr("linalg_cholesky_invert")
	}
	err := backend.CholeskyInvert(chol.Handle())
	runtime.KeepAlive(chol)
	return err
}

// SVDecomp computes the thin singular value decomposition A = U S V^T for a
// matrix with rows >= cols. On return a holds U; the returned v is the
// cols x cols orthogonal factor and s the singular values in descending
// order.
func SVDecomp(a *matrix.Matrix) (v *matrix.Matrix, s *vector.Vector, err error) {
	if a.Handle() == nil {
		return nil, nil, freedErr("linalg_SV_decomp")
	}
	_, cols := a.Dims()
	v, err = matrix.New(cols, cols)
	if err != nil {
		return nil, nil, err
	}
	s, err = vector.New(cols)
	if err != nil {
		v.Free()
		return nil, nil, err
	}
	work, err := vector.New(cols)
	if err != nil {
		v.Free()
		s.Free()
		return nil, nil, err
	}
	defer work.Free()

	if err := backend.SVDecomp(a.Handle(), v.Handle(), s.Handle(), work.Handle()); err != nil {
		v.Free()
		s.Free()
		return nil, nil, err
	}
	runtime.KeepAlive(a)
	return v, s, nil
}

// SVSolve solves Ax = b in the least squares sense using a decomposition
// from SVDecomp, returning a newly allocated solution vector. Singular
// values of zero are treated as exact zeros, so rank-deficient systems
// yield the minimum norm solution.
func SVSolve(u, v *matrix.Matrix, s, b *vector.Vector) (*vector.Vector, error) {
	if u.Handle() == nil || v.Handle() == nil || s.Handle() == nil || b.Handle() == nil {
		return nil, freedErr("linalg_SV_solve")
	}
	_, cols := u.Dims()
	x, err := vector.New(cols)
	if err != nil {
		return nil, err
	}
	if err := backend.SVSolve(u.Handle(), v.Handle(), s.Handle(), b.Handle(), x.Handle()); err != nil {
		x.Free()
		return nil, err
	}
	runtime.KeepAlive(u)
	runtime.KeepAlive(v)
	runtime.KeepAlive(s)
	runtime.KeepAlive(b)
	return x, nil
}
