// Package errors provides structured error types for the graph-bridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: element path, Go/native
// type names, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConstruct, errors.KindInvalidElement).
//		Path("elem[2]").
//		GoType("string").
//		NativeType("int32").
//		Detail("element does not coerce to int32").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseCheck, path, "string", "int32")
//	err := errors.OutOfBounds(errors.PhaseView, path, 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
// The boundary package maps every Kind declared here onto exactly one
// host-visible category.
package errors
