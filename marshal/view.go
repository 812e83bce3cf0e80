package marshal

import (
	"github.com/plexgraph/graph-bridge/errors"
)

// ArrayView is a non-owning, zero-copy window over a numeric vector's
// storage. The Numeric constraint on View is what makes this capability
// absent for bool and string vectors: taking a view over them does not
// fail at runtime, it does not compile.
//
// A view stays valid until its backing vector is grown, resized, or
// released. Reading a view concurrently with a write to the backing vector
// is the caller's responsibility to synchronize.
type ArrayView[T Numeric] struct {
	owner *Vector[T]
	data  []T
	gen   uint64
}

// View takes a zero-copy view over v. It is rejected if v was released.
func View[T Numeric](v *Vector[T]) (*ArrayView[T], error) {
	if v.released {
		return nil, errors.Released(typeName(v))
	}
	return &ArrayView[T]{
		owner: v,
		data:  v.elems,
		gen:   v.gen,
	}, nil
}

// Valid reports whether the backing vector is still in the state the view
// was taken over.
func (a *ArrayView[T]) Valid() bool {
	return !a.owner.released && a.owner.gen == a.gen
}

// Len returns the number of elements the view exposes.
func (a *ArrayView[T]) Len() int {
	return len(a.data)
}

// At returns the element at index i, failing if the view was invalidated.
func (a *ArrayView[T]) At(i int) (T, error) {
	var zero T
	if !a.Valid() {
		return zero, errors.ViewInvalidated(typeName(a.owner))
	}
	if i < 0 || i >= len(a.data) {
		return zero, errors.OutOfBounds(errors.PhaseView, nil, i, len(a.data))
	}
	return a.data[i], nil
}

// Data returns the backing slice without copying. The slice aliases the
// vector's storage; writes through SetAt are visible here.
func (a *ArrayView[T]) Data() ([]T, error) {
	if !a.Valid() {
		return nil, errors.ViewInvalidated(typeName(a.owner))
	}
	return a.data, nil
}
