package marshal

import (
	"github.com/plexgraph/graph-bridge/errors"
	"github.com/plexgraph/graph-bridge/registry"
)

// Pair is a fixed two-slot native value with independently-typed slots.
// Pairs exist to carry two associated scalars across the boundary; they
// have plain value semantics and no lifecycle of their own.
type Pair[A, B any] struct {
	First  A
	Second B
}

// ToHost converts a pair to a two-element host literal. Total: every valid
// pair maps to a host literal with no failure path.
func (p Pair[A, B]) ToHost() []any {
	return []any{p.First, p.Second}
}

// PairCodec converts host two-element literals positionally: element 0
// against the first codec, element 1 against the second. Position matters,
// not type search order.
type PairCodec[A, B Value] struct {
	id     registry.TypeID
	first  Codec[A]
	second Codec[B]
}

func NewPairCodec[A, B Value](id registry.TypeID, first Codec[A], second Codec[B]) PairCodec[A, B] {
	return PairCodec[A, B]{id: id, first: first, second: second}
}

func (c PairCodec[A, B]) TypeID() registry.TypeID {
	return c.id
}

// Convertible reports whether host is an ordered 2-element literal whose
// positional elements satisfy the slot codecs.
func (c PairCodec[A, B]) Convertible(host any) bool {
	seq, ok := hostSequence(host)
	if !ok || len(seq) != 2 {
		return false
	}
	return c.first.Check(seq[0]) && c.second.Check(seq[1])
}

// Construct extracts both elements positionally.
func (c PairCodec[A, B]) Construct(host any) (any, error) {
	p, err := c.FromHost(host)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FromHost is the typed construction path.
func (c PairCodec[A, B]) FromHost(host any) (Pair[A, B], error) {
	var p Pair[A, B]

	seq, ok := hostSequence(host)
	if !ok {
		return p, errors.NotSequence(errors.PhaseConstruct, host, string(c.id))
	}
	if len(seq) != 2 {
		return p, errors.LengthMismatch(errors.PhaseConstruct, string(c.id), 2, len(seq))
	}

	first, ok := c.first.Extract(seq[0])
	if !ok {
		return p, errors.InvalidElement(errors.PhaseConstruct, 0, seq[0], c.first.Kind.String())
	}
	second, ok := c.second.Extract(seq[1])
	if !ok {
		return p, errors.InvalidElement(errors.PhaseConstruct, 1, seq[1], c.second.Kind.String())
	}

	p.First = first
	p.Second = second
	return p, nil
}
