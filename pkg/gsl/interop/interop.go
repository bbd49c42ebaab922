// Package interop converts between the native GSL container types and
// gonum's mat package, so callers can mix the binding with the pure-Go
// numeric ecosystem.
//
// Every conversion copies the elements; the gonum values never alias
// native memory and remain valid after the GSL handle is freed.
package interop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/matrix"
	"github.com/ctfree/gogsl/pkg/gsl/vector"
)

func freedErr(op string) error {
	return &gsl.Error{Op: op, Code: gsl.EFault}
}

// VecToGonum copies v into a new gonum vector.
func VecToGonum(v *vector.Vector) (*mat.VecDense, error) {
	data := v.Data()
	if data == nil {
		return nil, freedErr("interop_vec_to_gonum")
	}
	return mat.NewVecDense(len(data), data), nil
}

// VecFromGonum copies a gonum vector into a new GSL vector. The caller
// owns the result and must Free it.
func VecFromGonum(v mat.Vector) (*vector.Vector, error) {
	if v == nil || v.Len() == 0 {
		return nil, &gsl.Error{Op: "interop_vec_from_gonum", Code: gsl.EInval}
	}
	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}
	return vector.FromSlice(data)
}

// MatToGonum copies m into a new gonum dense matrix.
func MatToGonum(m *matrix.Matrix) (*mat.Dense, error) {
	data := m.Data()
	if data == nil {
		return nil, freedErr("interop_mat_to_gonum")
	}
	rows, cols := m.Dims()
	// Both layouts are row-major, so the flat copy transfers directly.
	return mat.NewDense(rows, cols, data), nil
}

// MatFromGonum copies a gonum matrix into a new GSL matrix. The caller
// owns the result and must Free it.
func MatFromGonum(m mat.Matrix) (*matrix.Matrix, error) {
	if m == nil {
		return nil, &gsl.Error{Op: "interop_mat_from_gonum", Code: gsl.EInval}
	}
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, &gsl.Error{Op: "interop_mat_from_gonum", Code: gsl.EInval}
	}
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = m.At(i, j)
		}
	}
	return matrix.FromSlice(rows, cols, data)
}
