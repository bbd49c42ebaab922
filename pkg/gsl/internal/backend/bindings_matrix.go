//go:build cgo && !windows

package backend

/*
#include <gsl/gsl_matrix.h>
*/
import "C"

import "unsafe"

// Matrix is the native handle for a row-major gsl_matrix of doubles.
type Matrix = *C.gsl_matrix

// MatrixAlloc allocates a zero-initialized n1-by-n2 matrix.
func MatrixAlloc(n1, n2 int) (Matrix, error) {
	m := C.gsl_matrix_calloc(C.size_t(n1), C.size_t(n2))
	if m == nil {
		return nil, &Error{Op: "matrix_calloc", Code: ENoMem}
	}
	return m, nil
}

// MatrixFree releases a matrix. Safe on nil.
func MatrixFree(m Matrix) {
	if m == nil {
		return
	}
	C.gsl_matrix_free(m)
}

func MatrixDims(m Matrix) (rows, cols int) {
	return int(m.size1), int(m.size2)
}

func MatrixGet(m Matrix, i, j int) float64 {
	return float64(C.gsl_matrix_get(m, C.size_t(i), C.size_t(j)))
}

func MatrixSet(m Matrix, i, j int, x float64) {
	C.gsl_matrix_set(m, C.size_t(i), C.size_t(j), C.double(x))
}

func MatrixSetAll(m Matrix, x float64) {
	C.gsl_matrix_set_all(m, C.double(x))
}

func MatrixSetZero(m Matrix) {
	C.gsl_matrix_set_zero(m)
}

func MatrixSetIdentity(m Matrix) {
	C.gsl_matrix_set_identity(m)
}

// MatrixData copies the matrix contents out row-major into a fresh slice,
// honoring the trailing dimension of the native layout.
func MatrixData(m Matrix) []float64 {
	rows, cols := int(m.size1), int(m.size2)
	if rows == 0 || cols == 0 {
		return nil
	}
	tda := int(m.tda)
	src := unsafe.Slice((*float64)(unsafe.Pointer(m.data)), (rows-1)*tda+cols)
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		copy(out[i*cols:(i+1)*cols], src[i*tda:i*tda+cols])
	}
	return out
}

// MatrixSetData copies a row-major Go slice into the matrix. len(data)
// must equal rows*cols.
func MatrixSetData(m Matrix, data []float64) error {
	rows, cols := int(m.size1), int(m.size2)
	if len(data) != rows*cols {
		return &Error{Op: "matrix_set_data", Code: EBadLen}
	}
	if rows == 0 || cols == 0 {
		return nil
	}
	tda := int(m.tda)
	dst := unsafe.Slice((*float64)(unsafe.Pointer(m.data)), (rows-1)*tda+cols)
	for i := 0; i < rows; i++ {
		copy(dst[i*tda:i*tda+cols], data[i*cols:(i+1)*cols])
	}
	return nil
}

func MatrixMemcpy(dst, src Matrix) error {
	return statusErr("matrix_memcpy", int(C.gsl_matrix_memcpy(dst, src)))
}

// MatrixTranspose transposes a square matrix in place.
func MatrixTranspose(m Matrix) error {
	return statusErr("matrix_transpose", int(C.gsl_matrix_transpose(m)))
}

// MatrixTransposeMemcpy stores the transpose of src into dst, which must
// have the transposed dimensions.
func MatrixTransposeMemcpy(dst, src Matrix) error {
	return statusErr("matrix_transpose_memcpy", int(C.gsl_matrix_transpose_memcpy(dst, src)))
}

func MatrixGetRow(v Vector, m Matrix, i int) error {
	return statusErr("matrix_get_row", int(C.gsl_matrix_get_row(v, m, C.size_t(i))))
}

func MatrixGetCol(v Vector, m Matrix, j int) error {
	return statusErr("matrix_get_col", int(C.gsl_matrix_get_col(v, m, C.size_t(j))))
}

func MatrixSetRow(m Matrix, i int, v Vector) error {
	return statusErr("matrix_set_row", int(C.gsl_matrix_set_row(m, C.size_t(i), v)))
}

func MatrixSetCol(m Matrix, j int, v Vector) error {
	return statusErr("matrix_set_col", int(C.gsl_matrix_set_col(m, C.size_t(j), v)))
}

func MatrixSwapRows(m Matrix, i, j int) error {
	return statusErr("matrix_swap_rows", int(C.gsl_matrix_swap_rows(m, C.size_t(i), C.size_t(j))))
}

func MatrixSwapColumns(m Matrix, i, j int) error {
	return statusErr("matrix_swap_columns", int(C.gsl_matrix_swap_columns(m, C.size_t(i), C.size_t(j))))
}

func MatrixAdd(a, b Matrix) error {
	return statusErr("matrix_add", int(C.gsl_matrix_add(a, b)))
}

func MatrixSub(a, b Matrix) error {
	return statusErr("matrix_sub", int(C.gsl_matrix_sub(a, b)))
}

func MatrixMulElements(a, b Matrix) error {
	return statusErr("matrix_mul_elements", int(C.gsl_matrix_mul_elements(a, b)))
}

func MatrixDivElements(a, b Matrix) error {
	return statusErr("matrix_div_elements", int(C.gsl_matrix_div_elements(a, b)))
}

func MatrixScale(m Matrix, x float64) error {
	return statusErr("matrix_scale", int(C.gsl_matrix_scale(m, C.double(x))))
}

func MatrixAddConstant(m Matrix, x float64) error {
	return statusErr("matrix_add_constant", int(C.gsl_matrix_add_constant(m, C.double(x))))
}

func MatrixMax(m Matrix) float64 {
	return float64(C.gsl_matrix_max(m))
}

func MatrixMin(m Matrix) float64 {
	return float64(C.gsl_matrix_min(m))
}

func MatrixMinmax(m Matrix) (min, max float64) {
	var cmin, cmax C.double
	C.gsl_matrix_minmax(m, &cmin, &cmax)
	return float64(cmin), float64(cmax)
}

func MatrixIsNull(m Matrix) bool {
	return C.gsl_matrix_isnull(m) == 1
}
