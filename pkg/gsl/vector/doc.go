// Package vector wraps the gsl_vector type for float64 data.
//
// A Vector owns a contiguous native allocation created by gsl_vector_calloc
// and released by gsl_vector_free. Construction and release follow the same
// discipline as every handle type in this module:
//
//	v, err := vector.FromSlice([]float64{1, 2, 3})
//	if err != nil {
//	    return err
//	}
//	defer v.Free()
//
// A finalizer is set as a safety net, but explicit cleanup is recommended to
// keep native memory usage predictable.
//
// Element accessors (At, SetAt) bounds-check on the Go side and panic on
// out-of-range indices. Whole-vector operations (Add, Scale, CopyInto, ...)
// return errors carrying the GSL status code when the native call rejects
// the operation, for example gsl.EBadLen for mismatched lengths.
package vector
