// Package matrix wraps the row-major gsl_matrix type for float64 data.
//
// A Matrix owns one native allocation, released by Free or by the finalizer
// safety net. Element accessors panic on out-of-range indices; whole-matrix
// operations surface native GSL status codes as errors.
package matrix

import (
	"runtime"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
	"github.com/ctfree/gogsl/pkg/gsl/vector"
)

// Matrix wraps a native gsl_matrix with row-major float64 storage.
//
// Methods on a freed (or nil) Matrix return an error, or a zero value for
// the infallible getters. A Matrix is not safe for concurrent mutation.
type Matrix struct {
	m backend.Matrix
}

func freedErr(op string) error {
	return &gsl.Error{Op: op, Code: gsl.EFault}
}

// New allocates a rows x cols matrix, all elements initialized to zero.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &gsl.Error{Op: "matrix_calloc", Code: gsl.EInval}
	}
	h, err := backend.MatrixAlloc(rows, cols)
	if err != nil {
		return nil, err
	}
	m := &Matrix{m: h}
	runtime.SetFinalizer(m, (*Matrix).Free)
	return m, nil
}

// FromSlice allocates a rows x cols matrix and fills it from data, which
// must hold exactly rows*cols values in row-major order.
func FromSlice(rows, cols int, data []float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := backend.MatrixSetData(m.m, data); err != nil {
		m.Free()
		return nil, err
	}
	return m, nil
}

// Free releases the native matrix. It is idempotent and safe on a nil
// receiver.
func (m *Matrix) Free() {
	if m != nil && m.m != nil {
		backend.MatrixFree(m.m)
		m.m = nil
		runtime.SetFinalizer(m, nil)
	}
}

// Dims returns the number of rows and columns, or zeros for a freed matrix.
func (m *Matrix) Dims() (rows, cols int) {
	if m == nil || m.m == nil {
		return 0, 0
	}
	rows, cols = backend.MatrixDims(m.m)
	runtime.KeepAlive(m)
	return rows, cols
}

// At returns the element at row i, column j. It panics when the indices are
// out of range and returns 0 on a freed matrix.
func (m *Matrix) At(i, j int) float64 {
	if m == nil || m.m == nil {
		return 0
	}
	m.check(i, j)
	x := backend.MatrixGet(m.m, i, j)
	runtime.KeepAlive(m)
	return x
}

// SetAt stores x at row i, column j. It panics when the indices are out of
// range and is a no-op on a freed matrix.
func (m *Matrix) SetAt(i, j int, x float64) {
	if m == nil || m.m == nil {
		return
	}
	m.check(i, j)
	backend.MatrixSet(m.m, i, j, x)
	runtime.KeepAlive(m)
}

func (m *Matrix) check(i, j int) {
	rows, cols := backend.MatrixDims(m.m)
	if i < 0 || i >= rows || j < 0 || j >= cols {
		panic("matrix: index out of range")
	}
}

// SetAll assigns x to every element.
func (m *Matrix) SetAll(x float64) error {
	if m == nil || m.m == nil {
		return freedErr("matrix_set_all")
	}
	backend.MatrixSetAll(m.m, x)
	runtime.KeepAlive(m)
	return nil
}

// SetZero assigns zero to every element.
func (m *Matrix) SetZero() error {
	if m == nil || m.m == nil {
		return freedErr("matrix_set_zero")
	}
	backend.MatrixSetZero(m.m)
	runtime.KeepAlive(m)
	return nil
}

// SetIdentity writes ones on the diagonal and zeros elsewhere. The matrix
// does not need to be square.
func (m *Matrix) SetIdentity() error {
	if m == nil || m.m == nil {
		return freedErr("matrix_set_identity")
	}
	backend.MatrixSetIdentity(m.m)
	runtime.KeepAlive(m)
	return nil
}

// Data returns a copy of the elements in row-major order, or nil on a freed
// matrix.
func (m *Matrix) Data() []float64 {
	if m == nil || m.m == nil {
		return nil
	}
	data := backend.MatrixData(m.m)
	runtime.KeepAlive(m)
	return data
}

// SetData copies row-major data into the matrix. The length must be exactly
// rows*cols.
func (m *Matrix) SetData(data []float64) error {
	if m == nil || m.m == nil {
		return freedErr("matrix_memcpy")
	}
	err := backend.MatrixSetData(m.m, data)
	runtime.KeepAlive(m)
	return err
}

// CopyInto copies the elements of m into dst. Dimensions must match.
func (m *Matrix) CopyInto(dst *Matrix) error {
	if m == nil || m.m == nil || dst == nil || dst.m == nil {
		return freedErr("matrix_memcpy")
	}
	err := backend.MatrixMemcpy(dst.m, m.m)
	runtime.KeepAlive(m)
	runtime.KeepAlive(dst)
	return err
}

// Clone allocates a new matrix with the same dimensions and contents.
func (m *Matrix) Clone() (*Matrix, error) {
	if m == nil || m.m == nil {
		return nil, freedErr("matrix_memcpy")
	}
	rows, cols := backend.MatrixDims(m.m)
	out, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := backend.MatrixMemcpy(out.m, m.m); err != nil {
		out.Free()
		return nil, err
	}
	runtime.KeepAlive(m)
	return out, nil
}

// Transpose transposes the matrix in place. The native library reports
// ENotSqr for non-square matrices.
func (m *Matrix) Transpose() error {
	if m == nil || m.m == nil {
		return freedErr("matrix_transpose")
	}
	err := backend.MatrixTranspose(m.m)
	runtime.KeepAlive(m)
	return err
}

// TransposeCopy returns a new cols x rows matrix holding the transpose of m.
func (m *Matrix) TransposeCopy() (*Matrix, error) {
	if m == nil || m.m == nil {
		return nil, freedErr("matrix_transpose_memcpy")
	}
	rows, cols := backend.MatrixDims(m.m)
	out, err := New(cols, rows)
	if err != nil {
		return nil, err
	}
	if err := backend.MatrixTransposeMemcpy(out.m, m.m); err != nil {
		out.Free()
		return nil, err
	}
	runtime.KeepAlive(m)
	return out, nil
}

// Row copies row i into a newly allocated vector of length cols.
func (m *Matrix) Row(i int) (*vector.Vector, error) {
	if m == nil || m.m == nil {
		return nil, freedErr("matrix_get_row")
	}
	_, cols := backend.MatrixDims(m.m)
	v, err := vector.New(cols)
	if err != nil {
		return nil, err
	}
	if err := backend.MatrixGetRow(v.Handle(), m.m, i); err != nil {
		v.Free()
		return nil, err
	}
	runtime.KeepAlive(m)
	return v, nil
}

// Col copies column j into a newly allocated vector of length rows.
func (m *Matrix) Col(j int) (*vector.Vector, error) {
	if m == nil || m.m == nil {
		return nil, freedErr("matrix_get_col")
	}
	rows, _ := backend.MatrixDims(m.m)
	v, err := vector.New(rows)
	if err != nil {
		return nil, err
	}
	if err := backend.MatrixGetCol(v.Handle(), m.m, j); err != nil {
		v.Free()
		return nil, err
	}
	runtime.KeepAlive(m)
	return v, nil
}

// SetRow copies v into row i. The vector length must equal cols.
func (m *Matrix) SetRow(i int, v *vector.Vector) error {
	if m == nil || m.m == nil || v == nil || v.Handle() == nil {
		return freedErr("matrix_set_row")
	}
	err := backend.MatrixSetRow(m.m, i, v.Handle())
	runtime.KeepAlive(m)
	runtime.KeepAlive(v)
	return err
}

// SetCol copies v into column j. The vector length must equal rows.
func (m *Matrix) SetCol(j int, v *vector.Vector) error {
	if m == nil || m.m == nil || v == nil || v.Handle() == nil {
		return freedErr("matrix_set_col")
	}
	err := backend.MatrixSetCol(m.m, j, v.Handle())
	runtime.KeepAlive(m)
	runtime.KeepAlive(v)
	return err
}

// SwapRows exchanges rows i and j in place.
func (m *Matrix) SwapRows(i, j int) error {
	if m == nil || m.m == nil {
		return freedErr("matrix_swap_rows")
	}
	err := backend.MatrixSwapRows(m.m, i, j)
	runtime.KeepAlive(m)
	return err
}

// SwapCols exchanges columns i and j in place.
func (m *Matrix) SwapCols(i, j int) error {
	if m == nil || m.m == nil {
		return freedErr("matrix_swap_columns")
	}
	err := backend.MatrixSwapColumns(m.m, i, j)
	runtime.KeepAlive(m)
	return err
}

// Add adds the elements of b to m element-wise, in place.
func (m *Matrix) Add(b *Matrix) error {
	return m.binary("matrix_add", b, backend.MatrixAdd)
}

// Sub subtracts the elements of b from m element-wise, in place.
func (m *Matrix) Sub(b *Matrix) error {
	return m.binary("matrix_sub", b, backend.MatrixSub)
}

// MulElements multiplies m by b element-wise, in place.
func (m *Matrix) MulElements(b *Matrix) error {
	return m.binary("matrix_mul_elements", b, backend.MatrixMulElements)
}

// DivElements divides m by b element-wise, in place.
func (m *Matrix) DivElements(b *Matrix) error {
	return m.binary("matrix_div_elements", b, backend.MatrixDivElements)
}

func (m *Matrix) binary(op string, b *Matrix, f func(backend.Matrix, backend.Matrix) error) error {
	if m == nil || m.m == nil || b == nil || b.m == nil {
		return freedErr(op)
	}
	err := f(m.m, b.m)
	runtime.KeepAlive(m)
	runtime.KeepAlive(b)
	return err
}

// Scale multiplies every element by a.
func (m *Matrix) Scale(a float64) error {
	if m == nil || m.m == nil {
		return freedErr("matrix_scale")
	}
	err := backend.MatrixScale(m.m, a)
	runtime.KeepAlive(m)
	return err
}

// AddConstant adds a to every element.
func (m *Matrix) AddConstant(a float64) error {
	if m == nil || m.m == nil {
		return freedErr("matrix_add_constant")
	}
	err := backend.MatrixAddConstant(m.m, a)
	runtime.KeepAlive(m)
	return err
}

// Max returns the largest element, or 0 on a freed matrix.
func (m *Matrix) Max() float64 {
	if m == nil || m.m == nil {
		return 0
	}
	x := backend.MatrixMax(m.m)
	runtime.KeepAlive(m)
	return x
}

// Min returns the smallest element, or 0 on a freed matrix.
func (m *Matrix) Min() float64 {
	if m == nil || m.m == nil {
		return 0
	}
	x := backend.MatrixMin(m.m)
	runtime.KeepAlive(m)
	return x
}

// MinMax returns the smallest and largest elements in one pass.
func (m *Matrix) MinMax() (min, max float64) {
	if m == nil || m.m == nil {
		return 0, 0
	}
	min, max = backend.MatrixMinmax(m.m)
	runtime.KeepAlive(m)
	return min, max
}

// IsNull reports whether all elements are exactly zero.
func (m *Matrix) IsNull() bool {
	if m == nil || m.m == nil {
		return false
	}
	ok := backend.MatrixIsNull(m.m)
	runtime.KeepAlive(m)
	return ok
}

// Handle exposes the native pointer for sibling packages that pass matrices
// to other GSL modules. Callers must not retain it past the Matrix's
// lifetime.
func (m *Matrix) Handle() backend.Matrix {
	if m == nil {
		return nil
	}
	return m.m
}
