package marshal

import (
	"github.com/plexgraph/graph-bridge/errors"
	"github.com/plexgraph/graph-bridge/registry"
)

// Degree selects which vertex degree a computation refers to. Host code
// spells it with the keywords "in", "out", and "total".
type Degree uint8

const (
	DegreeIn Degree = iota
	DegreeOut
	DegreeTotal
)

var degreeNames = [...]string{
	DegreeIn:    "in",
	DegreeOut:   "out",
	DegreeTotal: "total",
}

func (d Degree) String() string {
	if int(d) < len(degreeNames) {
		return degreeNames[d]
	}
	return "unknown"
}

// DegreeFromHost accepts a Degree value or one of the exact keywords.
// Matching is case-sensitive: "Out" is an ordinary string, "out" a Degree.
func DegreeFromHost(host any) (Degree, bool) {
	switch v := host.(type) {
	case Degree:
		if int(v) < len(degreeNames) {
			return v, true
		}
	case string:
		for d, name := range degreeNames {
			if v == name {
				return Degree(d), true
			}
		}
	}
	return 0, false
}

// PropertyValue is the tagged union crossing the boundary: exactly one
// active representation, tagged with the type identity of the candidate
// that produced it. The tag is immutable once constructed.
type PropertyValue struct {
	tag   registry.TypeID
	value any
}

func NewPropertyValue(tag registry.TypeID, value any) PropertyValue {
	return PropertyValue{tag: tag, value: value}
}

// Tag returns the active representation's type identity.
func (p PropertyValue) Tag() registry.TypeID {
	return p.tag
}

// Value returns the active native representation.
func (p PropertyValue) Value() any {
	return p.value
}

// ToHost converts the active representation back to a host literal,
// preserving the active tag's shape: vectors become host sequences,
// scalars pass through.
func (p PropertyValue) ToHost() any {
	type hoster interface{ ToHost() []any }
	if h, ok := p.value.(hoster); ok {
		return h.ToHost()
	}
	return p.value
}

// Candidate is one entry in a variant's ordered candidate list.
type Candidate struct {
	Tag       registry.TypeID
	Converter registry.Converter
}

// Variant converts host values against an ordered candidate list with
// first-match-wins semantics. The list and its order are fixed at
// construction; the convertibility pass and the construction pass walk the
// identical list with identical per-candidate predicates, so construction
// can never pick a different candidate than the check did.
type Variant struct {
	id         registry.TypeID
	candidates []Candidate
}

func NewVariant(id registry.TypeID, candidates ...Candidate) *Variant {
	owned := make([]Candidate, len(candidates))
	copy(owned, candidates)
	return &Variant{id: id, candidates: owned}
}

func (v *Variant) TypeID() registry.TypeID {
	return v.id
}

// Candidates returns the candidate tags in priority order.
func (v *Variant) Candidates() []registry.TypeID {
	tags := make([]registry.TypeID, len(v.candidates))
	for i, c := range v.candidates {
		tags[i] = c.Tag
	}
	return tags
}

func (v *Variant) match(host any) (Candidate, bool) {
	for _, c := range v.candidates {
		if c.Converter.Convertible(host) {
			return c, true
		}
	}
	return Candidate{}, false
}

// Convertible returns true on the first candidate whose own check accepts
// the host value; lower-priority candidates are not consulted.
func (v *Variant) Convertible(host any) bool {
	_, ok := v.match(host)
	return ok
}

// Construct re-applies the same priority search and tags the result with
// the accepting candidate's identity. No candidate accepting is a
// conversion failure, never a fallback to an arbitrary kind.
func (v *Variant) Construct(host any) (any, error) {
	c, ok := v.match(host)
	if !ok {
		return nil, errors.NoCandidate(host, string(v.id))
	}
	native, err := c.Converter.Construct(host)
	if err != nil {
		return nil, err
	}
	return PropertyValue{tag: c.Tag, value: native}, nil
}
