package registry

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/plexgraph/graph-bridge/errors"
)

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

// TypeID is a native type identity, e.g. "vector<int32>".
type TypeID string

func (id TypeID) String() string { return string(id) }

// Converter produces a native value from a host value. Convertible is a
// total, side-effect-free predicate; Construct builds the owned native
// value. Implementations must keep the two consistent: a host value that
// passes Convertible must construct without a conversion error.
type Converter interface {
	TypeID() TypeID
	Convertible(host any) bool
	Construct(host any) (any, error)
}

// Registry is the converter table. Zero value is not usable; call New.
type Registry struct {
	entries map[TypeID]Converter
	order   []TypeID
	sealed  atomic.Bool
	mu      sync.Mutex
}

func New() *Registry {
	return &Registry{
		entries: make(map[TypeID]Converter),
	}
}

// Register stores one converter keyed by its type identity. It fails once
// the registry is sealed, and on a duplicate identity.
func (r *Registry) Register(c Converter) error {
	if r.sealed.Load() {
		return errors.Sealed(string(c.TypeID()))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := c.TypeID()
	if _, exists := r.entries[id]; exists {
		return errors.Duplicate(string(id))
	}
	r.entries[id] = c
	r.order = append(r.order, id)
	return nil
}

// Seal freezes the registry. Idempotent. After Seal the entry map is never
// written again, which is what makes lock-free concurrent lookups safe.
func (r *Registry) Seal() {
	r.sealed.Store(true)
}

// Sealed reports whether the boot phase has completed.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// Lookup returns the converter for a type identity.
func (r *Registry) Lookup(id TypeID) (Converter, error) {
	c, ok := r.entries[id]
	if !ok {
		return nil, errors.NotFound(string(id))
	}
	return c, nil
}

// Construct looks up the converter for id, checks convertibility, and
// builds the native value. A host value that fails the stored predicate is
// reported at this call site, never deferred.
func (r *Registry) Construct(id TypeID, host any) (any, error) {
	c, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	if !c.Convertible(host) {
		return nil, errors.New(errors.PhaseCheck, errors.KindTypeMismatch).
			NativeType(string(id)).
			GoType(typeName(host)).
			Value(host).
			Detail("host value is not convertible").
			Build()
	}
	return c.Construct(host)
}

// TypeIDs returns every registered identity in registration order.
func (r *Registry) TypeIDs() []TypeID {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]TypeID, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered converters.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}
