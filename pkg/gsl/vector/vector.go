package vector

import (
	"runtime"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
)

// Vector wraps a native gsl_vector holding float64 elements.
//
// Each Vector owns exactly one native allocation. A finalizer releases it if
// the caller forgets, but deterministic cleanup with Free is preferred.
// Methods on a freed (or nil) Vector return an error, or a zero value for
// the infallible getters; they never touch the released native memory.
//
// A Vector is not safe for concurrent mutation. Distinct Vectors may be used
// from different goroutines without synchronization.
type Vector struct {
	v backend.Vector
}

func freedErr(op string) error {
	return &gsl.Error{Op: op, Code: gsl.EFault}
}

// New allocates a vector of n elements, all initialized to zero.
func New(n int) (*Vector, error) {
	if n <= 0 {
		return nil, &gsl.Error{Op: "vector_calloc", Code: gsl.EInval}
	}
	h, err := backend.VectorAlloc(n)
	if err != nil {
		return nil, err
	}
	v := &Vector{v: h}
	runtime.SetFinalizer(v, (*Vector).Free)
	return v, nil
}

// FromSlice allocates a vector of len(data) elements and copies data into it.
func FromSlice(data []float64) (*Vector, error) {
	v, err := New(len(data))
	if err != nil {
		return nil, err
	}
	if err := backend.VectorSetData(v.v, data); err != nil {
		v.Free()
		return nil, err
	}
	return v, nil
}

// Free releases the native vector. It is idempotent and safe on a nil
// receiver.
func (v *Vector) Free() {
	if v != nil && v.v != nil {
		backend.VectorFree(v.v)
		v.v = nil
		runtime.SetFinalizer(v, nil)
	}
}

// Len returns the number of elements, or 0 for a freed vector.
func (v *Vector) Len() int {
	if v == nil || v.v == nil {
		return 0
	}
	n := backend.VectorLen(v.v)
	runtime.KeepAlive(v)
	return n
}

// At returns the element at index i. It panics when i is out of range and
// returns 0 on a freed vector.
func (v *Vector) At(i int) float64 {
	if v == nil || v.v == nil {
		return 0
	}
	if i < 0 || i >= backend.VectorLen(v.v) {
		panic("vector: index out of range")
	}
	x := backend.VectorGet(v.v, i)
	runtime.KeepAlive(v)
	return x
}

// SetAt stores x at index i. It panics when i is out of range and is a no-op
// on a freed vector.
func (v *Vector) SetAt(i int, x float64) {
	if v == nil || v.v == nil {
		return
	}
	if i < 0 || i >= backend.VectorLen(v.v) {
		panic("vector: index out of range")
	}
	backend.VectorSet(v.v, i, x)
	runtime.KeepAlive(v)
}

// SetAll assigns x to every element.
func (v *Vector) SetAll(x float64) error {
	if v == nil || v.v == nil {
		return freedErr("vector_set_all")
	}
	backend.VectorSetAll(v.v, x)
	runtime.KeepAlive(v)
	return nil
}

// SetZero assigns zero to every element.
func (v *Vector) SetZero() error {
	if v == nil || v.v == nil {
		return freedErr("vector_set_zero")
	}
	backend.VectorSetZero(v.v)
	runtime.KeepAlive(v)
	return nil
}

// SetBasis makes the vector the i-th basis vector: element i becomes 1 and
// all others 0.
func (v *Vector) SetBasis(i int) error {
	if v == nil || v.v == nil {
		return freedErr("vector_set_basis")
	}
	if i < 0 || i >= backend.VectorLen(v.v) {
		return &gsl.Error{Op: "vector_set_basis", Code: gsl.EInval}
	}
	err := backend.VectorSetBasis(v.v, i)
	runtime.KeepAlive(v)
	return err
}

// Data returns a copy of the elements as a Go slice. The copy round-trips
// bit-identically through FromSlice. It returns nil on a freed vector.
func (v *Vector) Data() []float64 {
	if v == nil || v.v == nil {
		return nil
	}
	data := backend.VectorData(v.v)
	runtime.KeepAlive(v)
	return data
}

// SetData copies data into the vector. The length must match exactly.
func (v *Vector) SetData(data []float64) error {
	if v == nil || v.v == nil {
		return freedErr("vector_memcpy")
	}
	err := backend.VectorSetData(v.v, data)
	runtime.KeepAlive(v)
	return err
}

// CopyInto copies the elements of v into dst. Both vectors must have the
// same length.
func (v *Vector) CopyInto(dst *Vector) error {
	if v == nil || v.v == nil || dst == nil || dst.v == nil {
		return freedErr("vector_memcpy")
	}
	err := backend.VectorMemcpy(dst.v, v.v)
	runtime.KeepAlive(v)
	runtime.KeepAlive(dst)
	return err
}

// Clone allocates a new vector with the same length and contents.
func (v *Vector) Clone() (*Vector, error) {
	if v == nil || v.v == nil {
		return nil, freedErr("vector_memcpy")
	}
	out, err := New(backend.VectorLen(v.v))
	if err != nil {
		return nil, err
	}
	if err := backend.VectorMemcpy(out.v, v.v); err != nil {
		out.Free()
		return nil, err
	}
	runtime.KeepAlive(v)
	return out, nil
}

// Swap exchanges elements i and j.
func (v *Vector) Swap(i, j int) error {
	if v == nil || v.v == nil {
		return freedErr("vector_swap_elements")
	}
	n := backend.VectorLen(v.v)
	if i < 0 || i >= n || j < 0 || j >= n {
		return &gsl.Error{Op: "vector_swap_elements", Code: gsl.EInval}
	}
	err := backend.VectorSwapElements(v.v, i, j)
	runtime.KeepAlive(v)
	return err
}

// Reverse reverses the order of the elements.
func (v *Vector) Reverse() error {
	if v == nil || v.v == nil {
		return freedErr("vector_reverse")
	}
	err := backend.VectorReverse(v.v)
	runtime.KeepAlive(v)
	return err
}

// Add adds the elements of w to v element-wise, in place. The lengths must
// match; the native library reports EBadLen otherwise.
func (v *Vector) Add(w *Vector) error {
	return v.binary("vector_add", w, backend.VectorAdd)
}

// Sub subtracts the elements of w from v element-wise, in place.
func (v *Vector) Sub(w *Vector) error {
	return v.binary("vector_sub", w, backend.VectorSub)
}

// Mul multiplies v by w element-wise, in place.
func (v *Vector) Mul(w *Vector) error {
	return v.binary("vector_mul", w, backend.VectorMul)
}

// Div divides v by w element-wise, in place.
func (v *Vector) Div(w *Vector) error {
	return v.binary("vector_div", w, backend.VectorDiv)
}

func (v *Vector) binary(op string, w *Vector, f func(backend.Vector, backend.Vector) error) error {
	if v == nil || v.v == nil || w == nil || w.v == nil {
		return freedErr(op)
	}
	err := f(v.v, w.v)
	runtime.KeepAlive(v)
	runtime.KeepAlive(w)
	return err
}

// Scale multiplies every element by a.
func (v *Vector) Scale(a float64) error {
	if v == nil || v.v == nil {
		return freedErr("vector_scale")
	}
	err := backend.VectorScale(v.v, a)
	runtime.KeepAlive(v)
	return err
}

// AddConstant adds a to every element.
func (v *Vector) AddConstant(a float64) error {
	if v == nil || v.v == nil {
		return freedErr("vector_add_constant")
	}
	err := backend.VectorAddConstant(v.v, a)
	runtime.KeepAlive(v)
	return err
}

// Max returns the largest element, or 0 on a freed vector.
func (v *Vector) Max() float64 {
	if v == nil || v.v == nil {
		return 0
	}
	x := backend.VectorMax(v.v)
	runtime.KeepAlive(v)
	return x
}

// Min returns the smallest element, or 0 on a freed vector.
func (v *Vector) Min() float64 {
	if v == nil || v.v == nil {
		return 0
	}
	x := backend.VectorMin(v.v)
	runtime.KeepAlive(v)
	return x
}

// MinMax returns the smallest and largest elements in one pass.
func (v *Vector) MinMax() (min, max float64) {
	if v == nil || v.v == nil {
		return 0, 0
	}
	min, max = backend.VectorMinmax(v.v)
	runtime.KeepAlive(v)
	return min, max
}

// MaxIndex returns the index of the largest element. Ties resolve to the
// lowest index, matching gsl_vector_max_index.
func (v *Vector) MaxIndex() int {
	if v == nil || v.v == nil {
		return 0
	}
	i := backend.VectorMaxIndex(v.v)
	runtime.KeepAlive(v)
	return i
}

// MinIndex returns the index of the smallest element.
func (v *Vector) MinIndex() int {
	if v == nil || v.v == nil {
		return 0
	}
	i := backend.VectorMinIndex(v.v)
	runtime.KeepAlive(v)
	return i
}

// IsNull reports whether all elements are exactly zero.
func (v *Vector) IsNull() bool {
	if v == nil || v.v == nil {
		return false
	}
	ok := backend.VectorIsNull(v.v)
	runtime.KeepAlive(v)
	return ok
}

// IsPos reports whether all elements are strictly positive.
func (v *Vector) IsPos() bool {
	if v == nil || v.v == nil {
		return false
	}
	ok := backend.VectorIsPos(v.v)
	runtime.KeepAlive(v)
	return ok
}

// IsNeg reports whether all elements are strictly negative.
func (v *Vector) IsNeg() bool {
	if v == nil || v.v == nil {
		return false
	}
	ok := backend.VectorIsNeg(v.v)
	runtime.KeepAlive(v)
	return ok
}

// Handle exposes the native pointer for sibling packages that pass vectors
// to other GSL modules. Callers must not retain it past the Vector's
// lifetime.
func (v *Vector) Handle() backend.Vector {
	if v == nil {
		return nil
	}
	return v.v
}
