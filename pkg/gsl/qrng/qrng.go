// Package qrng exposes gsl_qrng, the quasi-random (low-discrepancy)
// sequence generators. Unlike the pseudo-random generators in package rng,
// successive points fill the unit hypercube evenly instead of
// independently, which is what quadrature and sampling applications want.
package qrng

import (
	"runtime"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
)

// Type identifies a sequence algorithm. The zero Type is invalid; obtain
// one from the algorithm constructors.
type Type struct {
	t backend.QrngType
}

// Sobol returns the Sobol sequence, usable up to dimension 40.
func Sobol() Type { return Type{t: backend.QrngTypeSobol()} }

// Niederreiter2 returns the Niederreiter base-2 sequence, usable up to
// dimension 12.
func Niederreiter2() Type { return Type{t: backend.QrngTypeNiederreiter2()} }

// Halton returns the Halton sequence, usable up to dimension 1229.
func Halton() Type { return Type{t: backend.QrngTypeHalton()} }

// ReverseHalton returns the reverse Halton sequence of Vandewoestyne and
// Cools.
func ReverseHalton() Type { return Type{t: backend.QrngTypeReverseHalton()} }

// Name returns the native name of the algorithm, such as "sobol", or the
// empty string for the zero Type.
func (t Type) Name() string {
	if t.t == nil {
		return ""
	}
	return backend.QrngTypeName(t.t)
}

// MaxDimension returns the largest dimension the algorithm supports.
func (t Type) MaxDimension() int {
	if t.t == nil {
		return 0
	}
	return backend.QrngTypeMaxDimension(t.t)
}

func freedErr(op string) error {
	return &gsl.Error{Op: op, Code: gsl.EFault}
}

// Qrng is a quasi-random sequence positioned at some point. Distinct Qrng
// values are safe to use from different goroutines; sharing one requires
// external synchronization.
type Qrng struct {
	q   backend.Qrng
	dim int
}

// New allocates a sequence of the given algorithm and dimension,
// positioned at the start. It reports EInval when dim is out of the
// algorithm's supported range.
func New(t Type, dim int) (*Qrng, error) {
	if !backend.Built() {
		return nil, gsl.ErrNotBuilt
	}
	if t.t == nil {
		return nil, &gsl.Error{Op: "qrng_alloc", Code: gsl.EInval}
	}
	if dim < 1 || dim > backend.QrngTypeMaxDimension(t.t) {
		return nil, &gsl.Error{Op: "qrng_alloc", Code: gsl.EInval}
	}
	h, err := backend.QrngAlloc(t.t, dim)
	if err != nil {
		return nil, err
	}
	q := &Qrng{q: h, dim: dim}
	runtime.SetFinalizer(q, (*Qrng).Free)
	return q, nil
}

// Free releases the native sequence. It is idempotent and safe on a nil
// receiver.
func (q *Qrng) Free() {
	if q != nil && q.q != nil {
		backend.QrngFree(q.q)
		q.q = nil
		runtime.SetFinalizer(q, nil)
	}
}

// Dim returns the dimension of the sequence, or 0 for a freed one.
func (q *Qrng) Dim() int {
	if q == nil || q.q == nil {
		return 0
	}
	return q.dim
}

// Name returns the algorithm name of this sequence.
func (q *Qrng) Name() string {
	if q == nil || q.q == nil {
		return ""
	}
	s := backend.QrngName(q.q)
	runtime.KeepAlive(q)
	return s
}

// Next returns the next point of the sequence. Each coordinate lies in
// (0, 1).
func (q *Qrng) Next() ([]float64, error) {
	if q == nil || q.q == nil {
		return nil, freedErr("qrng_get")
	}
	x := make([]float64, q.dim)
	err := backend.QrngGet(q.q, x)
	runtime.KeepAlive(q)
	if err != nil {
		return nil, err
	}
	return x, nil
}

// NextInto stores the next point of the sequence in x, whose length must
// equal Dim.
func (q *Qrng) NextInto(x []float64) error {
	if q == nil || q.q == nil {
		return freedErr("qrng_get")
	}
	if len(x) != q.dim {
		return &gsl.Error{Op: "qrng_get", Code: gsl.EBadLen}
	}
	err := backend.QrngGet(q.q, x)
	runtime.KeepAlive(q)
	return err
}

// Reset rewinds the sequence to its starting point.
func (q *Qrng) Reset() error {
	if q == nil || q.q == nil {
		return freedErr("qrng_init")
	}
	backend.QrngInit(q.q)
	runtime.KeepAlive(q)
	return nil
}

// CopyInto copies the state of q into dst. Both sequences must use the
// same algorithm and dimension; the native library reports EInval
// otherwise.
func (q *Qrng) CopyInto(dst *Qrng) error {
	if q == nil || q.q == nil || dst == nil || dst.q == nil {
		return freedErr("qrng_memcpy")
	}
	err := backend.QrngMemcpy(dst.q, q.q)
	runtime.KeepAlive(q)
	runtime.KeepAlive(dst)
	return err
}

// Clone allocates a new sequence with the same algorithm, dimension and
// position, so both produce the same subsequent points.
func (q *Qrng) Clone() (*Qrng, error) {
	if q == nil || q.q == nil {
		return nil, freedErr("qrng_clone")
	}
	h, err := backend.QrngClone(q.q)
	runtime.KeepAlive(q)
	if err != nil {
		return nil, err
	}
	out := &Qrng{q: h, dim: q.dim}
	runtime.SetFinalizer(out, (*Qrng).Free)
	return out, nil
}
