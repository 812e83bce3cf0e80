// Package graphbridge marshals values between a dynamically-typed host
// environment and the native value types of a graph computation library.
//
// The native side works with a fixed, closed set of scalar kinds (bool,
// int16, int32, int64, float32, float64, string, plus an opaque object
// kind) and containers derived from them: typed vectors, fixed pairs, and
// a tagged-union property value. This library lets host code construct,
// inspect, and exchange those values without knowing the native layout,
// and turns native failures into host-visible error categories.
//
// # Architecture Overview
//
// The library is organized into concern packages:
//
//	graphbridge/     Root package with build and module metadata
//	├── marshal/     Vector, pair, and variant adapters over the scalar kinds
//	├── registry/    Sealed converter table keyed by native type identity
//	├── boundary/    Translation of internal failures into host categories
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Build the standard registry once at startup, then convert host literals:
//
//	reg := registry.New()
//	if err := marshal.RegisterStandard(reg); err != nil {
//	    log.Fatal(err)
//	}
//	reg.Seal()
//
//	v, err := reg.Construct(marshal.VectorInt32ID, []any{1, 2, 3, 4})
//	if err != nil {
//	    log.Fatal(boundary.Translate(err))
//	}
//	vec := v.(*marshal.Vector[int32])
//	fmt.Println(vec.Len()) // 4
//
// Or use the documented process-wide singleton where injection is not
// practical:
//
//	v, err := marshal.Default().Construct(marshal.DegreeSelectorID, "out")
//
// # Conversion Model
//
// Every converter exposes a convertibility check and a constructor. The
// check is total and side-effect free; the constructor re-validates and
// builds the owned native value. Host sequence order is always preserved.
// Variant converters try an ordered candidate list and commit to the first
// candidate that accepts, in both the check and the construction pass.
//
// # Thread Safety
//
// A Registry is written only during the boot phase; after Seal it is
// read-only and safe for concurrent lookups. Vectors, pairs, and property
// values are exclusively owned by the call path that created them. An
// ArrayView must not be read concurrently with a write to its backing
// vector; that synchronization is the caller's obligation.
package graphbridge
