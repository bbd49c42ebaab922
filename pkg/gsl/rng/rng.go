// Package rng wraps the GSL random number generator interface: generator
// algorithms, seeding, raw and uniform draws, and the sampling routines for
// the standard probability distributions.
package rng

import (
	"runtime"

	"github.com/ctfree/gogsl/pkg/gsl"
	"github.com/ctfree/gogsl/pkg/gsl/internal/backend"
)

// Type identifies a generator algorithm. The zero Type is invalid; obtain
// one from the algorithm constructors (MT19937, Taus2, ...), Types, or
// EnvSetup.
type Type struct {
	t backend.RngType
}

// Name returns the native name of the algorithm, such as "mt19937", or the
// empty string for the zero Type.
func (t Type) Name() string {
	if t.t == nil {
		return ""
	}
	return backend.RngTypeName(t.t)
}

// Min returns the smallest value Get can return for this algorithm.
func (t Type) Min() uint64 {
	if t.t == nil {
		return 0
	}
	return backend.RngTypeMin(t.t)
}

// Max returns the largest value Get can return for this algorithm.
func (t Type) Max() uint64 {
	if t.t == nil {
		return 0
	}
	return backend.RngTypeMax(t.t)
}

// MT19937 returns the Mersenne twister generator, the library default.
func MT19937() Type {
	return Type{t: backend.RngTypeMT19937()}
}

// RanlxS0 returns the RANLUX single-precision generator, luxury level 0.
func RanlxS0() Type {
	return Type{t: backend.RngTypeRanlxS0()}
}

// RanlxS1 returns the RANLUX single-precision generator, luxury level 1.
func RanlxS1() Type {
	return Type{t: backend.RngTypeRanlxS1()}
}

// RanlxS2 returns the RANLUX single-precision generator, luxury level 2.
func RanlxS2() Type {
	return Type{t: backend.RngTypeRanlxS2()}
}

// RanlxD1 returns the RANLUX double-precision generator, luxury level 1.
func RanlxD1() Type {
	return Type{t: backend.RngTypeRanlxD1()}
}

// RanlxD2 returns the RANLUX double-precision generator, luxury level 2.
func RanlxD2() Type {
	return Type{t: backend.RngTypeRanlxD2()}
}

// Ranlux389 returns the original RANLUX generator at its highest luxury
// level.
func Ranlux389() Type {
	return Type{t: backend.RngTypeRanlux389()}
}

// CMRG returns the L'Ecuyer combined multiple recursive generator.
func CMRG() Type {
	return Type{t: backend.RngTypeCMRG()}
}

// MRG returns the fifth-order multiple recursive generator.
func MRG() Type {
	return Type{t: backend.RngTypeMRG()}
}

// Taus returns the Tausworthe generator.
func Taus() Type {
	return Type{t: backend.RngTypeTaus()}
}

// Taus2 returns the improved-seeding variant of the Tausworthe generator.
func Taus2() Type {
	return Type{t: backend.RngTypeTaus2()}
}

// GFSR4 returns the four-tap shift register generator.
func GFSR4() Type {
	return Type{t: backend.RngTypeGFSR4()}
}

// Types returns every generator algorithm compiled into the native
// library, in the order of gsl_rng_types_setup.
func Types() []Type {
	raw := backend.RngTypes()
	out := make([]Type, len(raw))
	for i, t := range raw {
		out[i] = Type{t: t}
	}
	return out
}

// EnvSetup reads the GSL_RNG_TYPE and GSL_RNG_SEED environment variables
// and installs them as the library default algorithm and seed. It returns
// the chosen Type. Unset variables leave the mt19937 algorithm with seed 0.
func EnvSetup() Type {
	return Type{t: backend.RngEnvSetup()}
}

// Default returns the current library default algorithm. It is the zero
// Type until EnvSetup has run.
func Default() Type {
	return Type{t: backend.RngDefault()}
}

// DefaultSeed returns the current library default seed, as set by
// EnvSetup.
func DefaultSeed() uint64 {
	return backend.RngDefaultSeed()
}

// Rng is an instance of a random number generator with its own state.
//
// Distinct Rng values are safe to use from different goroutines; sharing
// one requires external synchronization. Methods on a freed (or nil) Rng
// return zero values, and fallible ones return an error.
type Rng struct {
	r backend.Rng
}

func freedErr(op string) error {
	return &gsl.Error{Op: op, Code: gsl.EFault}
}

// New allocates a generator of the given algorithm, seeded with the
// library default seed.
func New(t Type) (*Rng, error) {
	if !backend.Built() {
		return nil, gsl.ErrNotBuilt
	}
	if t.t == nil {
		return nil, &gsl.Error{Op: "rng_alloc", Code: gsl.EInval}
	}
	h, err := backend.RngAlloc(t.t)
	if err != nil {
		return nil, err
	}
	r := &Rng{r: h}
	runtime.SetFinalizer(r, (*Rng).Free)
	return r, nil
}

// Free releases the native generator. It is idempotent and safe on a nil
// receiver.
func (r *Rng) Free() {
	if r != nil && r.r != nil {
		backend.RngFree(r.r)
		r.r = nil
		runtime.SetFinalizer(r, nil)
	}
}

// Seed reinitializes the generator state from s. Seeding with 0 selects
// each algorithm's documented default seed.
func (r *Rng) Seed(s uint64) {
	if r == nil || r.r == nil {
		return
	}
	backend.RngSet(r.r, s)
	runtime.KeepAlive(r)
}

// Get returns the next raw value in [Min, Max].
func (r *Rng) Get() uint64 {
	if r == nil || r.r == nil {
		return 0
	}
	x := backend.RngGet(r.r)
	runtime.KeepAlive(r)
	return x
}

// Uniform returns the next value as a float64 in [0, 1).
func (r *Rng) Uniform() float64 {
	if r == nil || r.r == nil {
		return 0
	}
	x := backend.RngUniform(r.r)
	runtime.KeepAlive(r)
	return x
}

// UniformPos returns the next value as a float64 in (0, 1), never exactly
// zero.
func (r *Rng) UniformPos() float64 {
	if r == nil || r.r == nil {
		return 0
	}
	x := backend.RngUniformPos(r.r)
	runtime.KeepAlive(r)
	return x
}

// UniformInt returns a value uniformly distributed in [0, n). It reports
// EInval when n is zero or exceeds the range of the generator.
func (r *Rng) UniformInt(n uint64) (uint64, error) {
	if r == nil || r.r == nil {
		return 0, freedErr("rng_uniform_int")
	}
	if span := backend.RngMax(r.r) - backend.RngMin(r.r); n == 0 || n > span {
		return 0, &gsl.Error{Op: "rng_uniform_int", Code: gsl.EInval}
	}
	x := backend.RngUniformInt(r.r, n)
	runtime.KeepAlive(r)
	return x, nil
}

// Name returns the algorithm name of this generator.
func (r *Rng) Name() string {
	if r == nil || r.r == nil {
		return ""
	}
	s := backend.RngName(r.r)
	runtime.KeepAlive(r)
	return s
}

// Min returns the smallest value Get can return.
func (r *Rng) Min() uint64 {
	if r == nil || r.r == nil {
		return 0
	}
	x := backend.RngMin(r.r)
	runtime.KeepAlive(r)
	return x
}

// Max returns the largest value Get can return.
func (r *Rng) Max() uint64 {
	if r == nil || r.r == nil {
		return 0
	}
	x := backend.RngMax(r.r)
	runtime.KeepAlive(r)
	return x
}

// State returns a copy of the raw generator state. The layout is the
// algorithm's native state struct; it is mainly useful for checkpointing
// alongside Name.
func (r *Rng) State() []byte {
	if r == nil || r.r == nil {
		return nil
	}
	b := backend.RngState(r.r)
	runtime.KeepAlive(r)
	return b
}

// CopyInto copies the state of r into dst. Both generators must be of the
// same algorithm; the native library reports EInval otherwise.
func (r *Rng) CopyInto(dst *Rng) error {
	if r == nil || r.r == nil || dst == nil || dst.r == nil {
		return freedErr("rng_memcpy")
	}
	err := backend.RngMemcpy(dst.r, r.r)
	runtime.KeepAlive(r)
	runtime.KeepAlive(dst)
	return err
}

// Clone allocates a new generator with the same algorithm and state, so
// both produce the same subsequent sequence.
func (r *Rng) Clone() (*Rng, error) {
	if r == nil || r.r == nil {
		return nil, freedErr("rng_clone")
	}
	h, err := backend.RngClone(r.r)
	runtime.KeepAlive(r)
	if err != nil {
		return nil, err
	}
	out := &Rng{r: h}
	runtime.SetFinalizer(out, (*Rng).Free)
	return out, nil
}

// Shuffle randomly permutes data in place, visiting each of the n!
// orderings with equal probability.
func (r *Rng) Shuffle(data []float64) {
	if r == nil || r.r == nil {
		return
	}
	backend.RanShuffleFloat64(r.r, data)
	runtime.KeepAlive(r)
}

// ShuffleInt randomly permutes data in place.
func (r *Rng) ShuffleInt(data []int) {
	if r == nil || r.r == nil {
		return
	}
	backend.RanShuffleInt(r.r, data)
	runtime.KeepAlive(r)
}

// Choose fills dst with len(dst) items chosen from src without
// replacement, in the same relative order as src. It reports EInval when
// len(dst) exceeds len(src).
func (r *Rng) Choose(dst, src []float64) error {
	if r == nil || r.r == nil {
		return freedErr("ran_choose")
	}
	err := backend.RanChooseFloat64(r.r, dst, src)
	runtime.KeepAlive(r)
	return err
}

// Sample fills dst with len(dst) items sampled from src with replacement.
// It is a no-op when src is empty.
func (r *Rng) Sample(dst, src []float64) {
	if r == nil || r.r == nil {
		return
	}
	backend.RanSampleFloat64(r.r, dst, src)
	runtime.KeepAlive(r)
}
