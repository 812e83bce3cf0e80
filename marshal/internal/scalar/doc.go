// Package scalar defines the closed scalar kind set and the per-kind host
// value coercions. Everything in the marshal package is generated or
// dispatched over this set; the marshal package re-exports the kind
// constants through type aliases.
package scalar
