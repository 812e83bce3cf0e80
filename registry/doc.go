// Package registry implements the process-wide converter table that maps
// native type identities to their host value converters.
//
// Registration is a boot-phase, single-threaded activity: populate the
// registry, call Seal, and only then begin normal host operations. After
// Seal the table is immutable and safe for concurrent lookups without
// locking. Register returns an error once the registry is sealed.
//
// Prefer constructing a Registry and passing it to the code that needs it.
// Where the host environment requires ambient lookup, marshal.Default
// provides the documented process-wide sealed singleton.
package registry
