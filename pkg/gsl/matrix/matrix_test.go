package matrix

import (
	"testing"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/gsltest"
)

func mustMat(t *testing.T, rows, cols int, data []float64) *Matrix {
	t.Helper()
	m, err := FromSlice(rows, cols, data)
	if err != nil {
		t.Fatalf("FromSlice(%d, %d): %v", rows, cols, err)
	}
	t.Cleanup(m.Free)
	return m
}

func wantData(t *testing.T, m *Matrix, want []float64) {
	t.Helper()
	got := m.Data()
	if len(got) != len(want) {
		t.Fatalf("data length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("element %d = %g, want %g (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestNewRejectsNonPositiveDims(t *testing.T) {
	for _, d := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		m, err := New(d[0], d[1])
		if m != nil || gsl.CodeOf(err) != gsl.EInval {
			t.Errorf("New(%d, %d) = %v, %v; want nil, EInval", d[0], d[1], m, err)
		}
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	gsltest.RequireNative(t)

	m, err := FromSlice(2, 2, []float64{1, 2, 3})
	if m != nil || gsl.CodeOf(err) != gsl.EBadLen {
		t.Fatalf("FromSlice short = %v, %v; want nil, EBadLen", m, err)
	}
}

func TestDimsAndAccessors(t *testing.T) {
	gsltest.RequireNative(t)

	m := mustMat(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	rows, cols := m.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("Dims = %d, %d; want 2, 3", rows, cols)
	}
	if m.At(1, 2) != 6 {
		t.Errorf("At(1,2) = %g, want 6", m.At(1, 2))
	}

	m.SetAt(0, 1, 42)
	if m.At(0, 1) != 42 {
		t.Errorf("At(0,1) after SetAt = %g, want 42", m.At(0, 1))
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	gsltest.RequireNative(t)

	m := mustMat(t, 2, 2, []float64{1, 2, 3, 4})
	defer func() {
		if recover() == nil {
			t.Error("At(0, 2) did not panic")
		}
	}()
	m.At(0, 2)
}

func TestSetIdentity(t *testing.T) {
	gsltest.RequireNative(t)

	m := mustMat(t, 2, 3, []float64{9, 9, 9, 9, 9, 9})
	if err := m.SetIdentity(); err != nil {
		t.Fatalf("SetIdentity: %v", err)
	}
	wantData(t, m, []float64{1, 0, 0, 0, 1, 0})
}

func TestTranspose(t *testing.T) {
	gsltest.RequireNative(t)

	m := mustMat(t, 2, 2, []float64{1, 2, 3, 4})
	if err := m.Transpose(); err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	wantData(t, m, []float64{1, 3, 2, 4})

	rect := mustMat(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	if err := rect.Transpose(); gsl.CodeOf(err) != gsl.ENotSqr {
		t.Errorf("Transpose non-square = %v, want ENotSqr", err)
	}

	tc, err := rect.TransposeCopy()
	if err != nil {
		t.Fatalf("TransposeCopy: %v", err)
	}
	defer tc.Free()
	rows, cols := tc.Dims()
	if rows != 3 || cols != 2 {
		t.Fatalf("TransposeCopy dims = %d, %d; want 3, 2", rows, cols)
	}
	wantData(t, tc, []float64{1, 4, 2, 5, 3, 6})
}

func TestRowColExtraction(t *testing.T) {
	gsltest.RequireNative(t)

	m := mustMat(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	row, err := m.Row(1)
	if err != nil {
		t.Fatalf("Row: %v", err)
	}
	defer row.Free()
	if got := row.Data(); got[0] != 4 || got[1] != 5 || got[2] != 6 {
		t.Errorf("Row(1) = %v, want [4 5 6]", got)
	}

	col, err := m.Col(2)
	if err != nil {
		t.Fatalf("Col: %v", err)
	}
	defer col.Free()
	if got := col.Data(); got[0] != 3 || got[1] != 6 {
		t.Errorf("Col(2) = %v, want [3 6]", got)
	}

	if err := m.SetRow(0, col); gsl.CodeOf(err) != gsl.EBadLen {
		t.Errorf("SetRow with wrong length = %v, want EBadLen", err)
	}
	if err := m.SetCol(0, col); err != nil {
		t.Fatalf("SetCol: %v", err)
	}
	wantData(t, m, []float64{3, 2, 3, 6, 5, 6})
}

func TestSwapRowsCols(t *testing.T) {
	gsltest.RequireNative(t)

	m := mustMat(t, 2, 2, []float64{1, 2, 3, 4})
	if err := m.SwapRows(0, 1); err != nil {
		t.Fatalf("SwapRows: %v", err)
	}
	wantData(t, m, []float64{3, 4, 1, 2})

	if err := m.SwapCols(0, 1); err != nil {
		t.Fatalf("SwapCols: %v", err)
	}
	wantData(t, m, []float64{4, 3, 2, 1})
}

func TestArithmetic(t *testing.T) {
	gsltest.RequireNative(t)

	a := mustMat(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustMat(t, 2, 2, []float64{10, 10, 10, 10})

	if err := a.Add(b); err != nil {
		t.Fatalf("Add: %v", err)
	}
	wantData(t, a, []float64{11, 12, 13, 14})

	if err := a.Sub(b); err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if err := a.MulElements(b); err != nil {
		t.Fatalf("MulElements: %v", err)
	}
	wantData(t, a, []float64{10, 20, 30, 40})

	if err := a.DivElements(b); err != nil {
		t.Fatalf("DivElements: %v", err)
	}
	if err := a.Scale(3); err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if err := a.AddConstant(-1); err != nil {
		t.Fatalf("AddConstant: %v", err)
	}
	wantData(t, a, []float64{2, 5, 8, 11})

	short := mustMat(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	if err := a.Add(short); gsl.CodeOf(err) != gsl.EBadLen {
		t.Errorf("Add mismatched dims = %v, want EBadLen", err)
	}
}

func TestMinMaxNull(t *testing.T) {
	gsltest.RequireNative(t)

	m := mustMat(t, 2, 2, []float64{3, -1, 4, 1})
	if m.Max() != 4 || m.Min() != -1 {
		t.Errorf("Max/Min = %g/%g, want 4/-1", m.Max(), m.Min())
	}
	min, max := m.MinMax()
	if min != -1 || max != 4 {
		t.Errorf("MinMax = %g/%g, want -1/4", min, max)
	}
	if m.IsNull() {
		t.Error("nonzero matrix reported null")
	}

	z, err := New(2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer z.Free()
	if !z.IsNull() {
		t.Error("fresh matrix not null")
	}
}

func TestFreedMatrix(t *testing.T) {
	gsltest.RequireNative(t)

	m, err := New(2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.Free()
	m.Free()

	if rows, cols := m.Dims(); rows != 0 || cols != 0 {
		t.Error("Dims after Free must be zeros")
	}
	if m.Data() != nil {
		t.Error("Data after Free must be nil")
	}
	if err := m.Scale(2); gsl.CodeOf(err) != gsl.EFault {
		t.Errorf("Scale after Free = %v, want EFault", err)
	}

	var nilM *Matrix
	nilM.Free()
	if nilM.At(0, 0) != 0 {
		t.Error("At on nil matrix must return 0")
	}
}
