package marshal

import (
	"github.com/plexgraph/graph-bridge/errors"
)

// Vector is an owned, contiguous, variable-length sequence of one scalar
// kind. A vector is exclusively owned by the call path that created it;
// sharing happens only through an ArrayView, whose validity is tied to the
// vector's generation counter.
type Vector[T Value] struct {
	elems    []T
	gen      uint64
	released bool
}

// VectorOf builds a vector from native elements.
func VectorOf[T Value](elems ...T) *Vector[T] {
	owned := make([]T, len(elems))
	copy(owned, elems)
	return &Vector[T]{elems: owned}
}

// VectorCheck reports whether the host value is an ordered finite sequence
// whose elements all coerce to the codec's kind. It short-circuits on the
// first failing element.
func VectorCheck[T Value](c Codec[T], host any) bool {
	seq, ok := hostSequence(host)
	if !ok {
		return false
	}
	for _, elem := range seq {
		if !c.Check(elem) {
			return false
		}
	}
	return true
}

// VectorFromHost re-validates each element and builds an owned vector
// preserving host iteration order exactly.
func VectorFromHost[T Value](c Codec[T], host any) (*Vector[T], error) {
	seq, ok := hostSequence(host)
	if !ok {
		return nil, errors.NotSequence(errors.PhaseConstruct, host, "vector<"+c.Kind.String()+">")
	}

	elems := make([]T, 0, len(seq))
	for i, raw := range seq {
		v, ok := c.Extract(raw)
		if !ok {
			return nil, errors.InvalidElement(errors.PhaseConstruct, i, raw, c.Kind.String())
		}
		elems = append(elems, v)
	}
	return &Vector[T]{elems: elems}, nil
}

// Len returns the element count. A released vector has length zero.
func (v *Vector[T]) Len() int {
	return len(v.elems)
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	var zero T
	if v.released {
		return zero, errors.Released(typeName(v))
	}
	if i < 0 || i >= len(v.elems) {
		return zero, errors.OutOfBounds(errors.PhaseRuntime, nil, i, len(v.elems))
	}
	return v.elems[i], nil
}

// SetAt overwrites the element at index i in place. Outstanding views stay
// valid and observe the write; that aliasing is the point of a view.
func (v *Vector[T]) SetAt(i int, val T) error {
	if v.released {
		return errors.Released(typeName(v))
	}
	if i < 0 || i >= len(v.elems) {
		return errors.OutOfBounds(errors.PhaseRuntime, nil, i, len(v.elems))
	}
	v.elems[i] = val
	return nil
}

// Append grows the vector. Any outstanding views are invalidated since the
// backing storage may move.
func (v *Vector[T]) Append(vals ...T) error {
	if v.released {
		return errors.Released(typeName(v))
	}
	v.elems = append(v.elems, vals...)
	v.gen++
	return nil
}

// Resize sets the length to n, zero-filling new slots. Invalidates views.
func (v *Vector[T]) Resize(n int) error {
	if v.released {
		return errors.Released(typeName(v))
	}
	if n < 0 {
		return errors.OutOfBounds(errors.PhaseRuntime, nil, n, len(v.elems))
	}
	switch {
	case n <= len(v.elems):
		v.elems = v.elems[:n]
	default:
		grown := make([]T, n)
		copy(grown, v.elems)
		v.elems = grown
	}
	v.gen++
	return nil
}

// Equal reports element-wise equality. Vectors of different length are
// never equal.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if len(v.elems) != len(o.elems) {
		return false
	}
	for i := range v.elems {
		if v.elems[i] != o.elems[i] {
			return false
		}
	}
	return true
}

// NotEqual is the logical negation of Equal.
func (v *Vector[T]) NotEqual(o *Vector[T]) bool {
	return !v.Equal(o)
}

// ToHost converts the vector back to a host sequence. Unconditional: every
// valid vector maps to a host literal with no failure path.
func (v *Vector[T]) ToHost() []any {
	out := make([]any, len(v.elems))
	for i, e := range v.elems {
		out[i] = e
	}
	return out
}

// Release ends the vector's ownership of its storage and invalidates every
// outstanding view. The vector must not be used afterwards.
func (v *Vector[T]) Release() {
	v.elems = nil
	v.released = true
	v.gen++
}

// hostSequence normalizes the host sequence shapes this boundary accepts:
// the dynamic []any form plus the common typed slice forms host runtimes
// hand over directly. Anything else is not a sequence.
func hostSequence(host any) ([]any, bool) {
	switch s := host.(type) {
	case []any:
		return s, true
	case []bool:
		return box(s), true
	case []int:
		return box(s), true
	case []int16:
		return box(s), true
	case []int32:
		return box(s), true
	case []int64:
		return box(s), true
	case []float32:
		return box(s), true
	case []float64:
		return box(s), true
	case []string:
		return box(s), true
	default:
		return nil, false
	}
}

func box[T any](s []T) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
