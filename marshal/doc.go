// Package marshal implements the value adapters of the host/native
// boundary: typed vectors with an optional zero-copy numeric view, fixed
// pairs, and the ordered-candidate variants behind the property value
// union.
//
// # Conversion Model
//
// Every adapter exposes the same two-phase contract the registry stores:
// a total convertibility predicate and a constructor. Both phases run the
// same per-element coercions (internal/scalar), so a value that passes the
// check constructs without a conversion error; an extraction failure after
// a passing check is reported as an internal invariant violation.
//
//	Host literal ←→ [marshal] ←→ Native value
//	[1, 2, 3, 4]  →  Vector[int32]{1, 2, 3, 4}
//	[1.5, 2.5]    →  Pair[float64, float64]{1.5, 2.5}
//	"out"         →  PropertyValue{tag: degree, value: DegreeOut}
//
// # Generic Instantiation
//
// Vector, ArrayView, and PairCodec are generic over the closed scalar set
// (the Value constraint). The concrete adapter set is enumerated exactly
// once, in RegisterStandard; nothing is hand-duplicated per type. The
// array view capability is the Numeric constraint plus the Viewer
// interface, implemented only by the numeric vector converters - there is
// no runtime "is this numeric" branch.
//
// # Ownership
//
// A Vector owns its storage until Release. An ArrayView borrows that
// storage zero-copy and is invalidated by Append, Resize, or Release of
// its backing vector. Reading a view concurrently with a write to the
// vector is a caller obligation to synchronize, not enforced here.
package marshal
