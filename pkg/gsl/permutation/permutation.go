// Package permutation wraps gsl_permutation, used primarily to carry pivot
// information for the linalg LU factorizations.
package permutation

import (
	"runtime"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
)

// Permutation wraps a native gsl_permutation. A new Permutation is the
// identity. Methods on a freed (or nil) Permutation return an error, or a
// zero value for the infallible getters.
type Permutation struct {
	p backend.Permutation
}

func freedErr(op string) error {
	return &gsl.Error{Op: op, Code: gsl.EFault}
}

// New allocates a permutation of n elements initialized to the identity.
func New(n int) (*Permutation, error) {
	if n <= 0 {
		return nil, &gsl.Error{Op: "permutation_calloc", Code: gsl.EInval}
	}
	h, err := backend.PermutationAlloc(n)
	if err != nil {
		return nil, err
	}
	p := &Permutation{p: h}
	runtime.SetFinalizer(p, (*Permutation).Free)
	return p, nil
}

// Free releases the native permutation. It is idempotent and safe on a nil
// receiver.
func (p *Permutation) Free() {
	if p != nil && p.p != nil {
		backend.PermutationFree(p.p)
		p.p = nil
		runtime.SetFinalizer(p, nil)
	}
}

// Len returns the number of elements, or 0 for a freed permutation.
func (p *Permutation) Len() int {
	if p == nil || p.p == nil {
		return 0
	}
	n := backend.PermutationLen(p.p)
	runtime.KeepAlive(p)
	return n
}

// At returns the i-th element. It panics when i is out of range and returns
// 0 on a freed permutation.
func (p *Permutation) At(i int) int {
	if p == nil || p.p == nil {
		return 0
	}
	if i < 0 || i >= backend.PermutationLen(p.p) {
		panic("permutation: index out of range")
	}
	x := backend.PermutationGet(p.p, i)
	runtime.KeepAlive(p)
	return x
}

// Swap exchanges elements i and j.
func (p *Permutation) Swap(i, j int) error {
	if p == nil || p.p == nil {
		return freedErr("permutation_swap")
	}
	err := backend.PermutationSwap(p.p, i, j)
	runtime.KeepAlive(p)
	return err
}

// Next advances to the next permutation in lexicographic order. It reports
// false when p is already the last permutation, leaving it unchanged.
func (p *Permutation) Next() bool {
	if p == nil || p.p == nil {
		return false
	}
	ok := backend.PermutationNext(p.p)
	runtime.KeepAlive(p)
	return ok
}

// Prev steps back to the previous permutation in lexicographic order. It
// reports false when p is already the identity.
func (p *Permutation) Prev() bool {
	if p == nil || p.p == nil {
		return false
	}
	ok := backend.PermutationPrev(p.p)
	runtime.KeepAlive(p)
	return ok
}

// Reverse reverses the order of the elements.
func (p *Permutation) Reverse() error {
	if p == nil || p.p == nil {
		return freedErr("permutation_reverse")
	}
	backend.PermutationReverse(p.p)
	runtime.KeepAlive(p)
	return nil
}

// Inverse returns a newly allocated permutation holding the inverse of p.
func (p *Permutation) Inverse() (*Permutation, error) {
	if p == nil || p.p == nil {
		return nil, freedErr("permutation_inverse")
	}
	out, err := New(backend.PermutationLen(p.p))
	if err != nil {
		return nil, err
	}
	if err := backend.PermutationInverse(out.p, p.p); err != nil {
		out.Free()
		return nil, err
	}
	runtime.KeepAlive(p)
	return out, nil
}

// IsValid reports whether the elements form a valid permutation of
// 0..n-1.
func (p *Permutation) IsValid() bool {
	if p == nil || p.p == nil {
		return false
	}
	ok := backend.PermutationValid(p.p)
	runtime.KeepAlive(p)
	return ok
}

// CopyInto copies the elements of p into dst. Lengths must match.
func (p *Permutation) CopyInto(dst *Permutation) error {
	if p == nil || p.p == nil || dst == nil || dst.p == nil {
		return freedErr("permutation_memcpy")
	}
	err := backend.PermutationMemcpy(dst.p, p.p)
	runtime.KeepAlive(p)
	runtime.KeepAlive(dst)
	return err
}

// Data returns a copy of the elements as a Go slice, or nil on a freed
// permutation.
func (p *Permutation) Data() []int {
	if p == nil || p.p == nil {
		return nil
	}
	data := backend.PermutationData(p.p)
	runtime.KeepAlive(p)
	return data
}

// Handle exposes the native pointer for sibling packages. Callers must not
// retain it past the Permutation's lifetime.
func (p *Permutation) Handle() backend.Permutation {
	if p == nil {
		return nil
	}
	return p.p
}
