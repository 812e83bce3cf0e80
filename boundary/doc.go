// Package boundary translates internal failures into host-visible error
// categories at the exact point a call crosses back to host code.
//
// The mapping is fixed and exhaustive:
//
//	internal failure                         host category
//	──────────────────────────────────────────────────────
//	generic/runtime failure                  runtime error
//	I/O failure                              I/O error
//	conversion, argument, domain failure     value error
//
// Native code never constructs host categories directly, and no internal
// error type crosses the boundary unmediated. The translated error keeps
// the original message verbatim and exposes only its category to the host,
// matched with errors.Is against ErrRuntime, ErrIO, and ErrValue.
package boundary
