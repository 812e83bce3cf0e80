package marshal

import (
	"fmt"

	"github.com/plexgraph/graph-bridge/errors"
	"github.com/plexgraph/graph-bridge/registry"
)

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

// Viewer is the array view capability. Only the numeric vector converters
// implement it; asking a string or bool vector converter for a view is a
// failed type assertion, not a runtime branch inside the converter.
type Viewer interface {
	ViewOf(vec any) (any, error)
}

// scalarConverter adapts one scalar codec to the registry interface.
type scalarConverter[T Value] struct {
	id    registry.TypeID
	codec Codec[T]
}

// NewScalarConverter wraps a codec as a registry converter.
func NewScalarConverter[T Value](id registry.TypeID, codec Codec[T]) registry.Converter {
	return scalarConverter[T]{id: id, codec: codec}
}

func (c scalarConverter[T]) TypeID() registry.TypeID {
	return c.id
}

func (c scalarConverter[T]) Convertible(host any) bool {
	return c.codec.Check(host)
}

func (c scalarConverter[T]) Construct(host any) (any, error) {
	v, ok := c.codec.Extract(host)
	if !ok {
		return nil, errors.New(errors.PhaseConstruct, errors.KindTypeMismatch).
			NativeType(string(c.id)).
			GoType(typeName(host)).
			Value(host).
			Detail("host value does not coerce to %s", c.codec.Kind).
			Build()
	}
	return v, nil
}

// objectConverter passes opaque host values through untouched.
type objectConverter struct{}

// NewObjectConverter returns the converter for the opaque object kind.
func NewObjectConverter() registry.Converter {
	return objectConverter{}
}

func (objectConverter) TypeID() registry.TypeID { return ObjectID }

func (objectConverter) Convertible(any) bool { return true }

func (objectConverter) Construct(host any) (any, error) {
	return host, nil
}

// degreeConverter matches the degree selector keywords.
type degreeConverter struct{}

// NewDegreeConverter returns the converter for the degree keyword kind.
func NewDegreeConverter() registry.Converter {
	return degreeConverter{}
}

func (degreeConverter) TypeID() registry.TypeID { return DegreeID }

func (degreeConverter) Convertible(host any) bool {
	_, ok := DegreeFromHost(host)
	return ok
}

func (degreeConverter) Construct(host any) (any, error) {
	d, ok := DegreeFromHost(host)
	if !ok {
		return nil, errors.New(errors.PhaseConstruct, errors.KindTypeMismatch).
			NativeType(string(DegreeID)).
			GoType(typeName(host)).
			Value(host).
			Detail(`expected "in", "out", or "total"`).
			Build()
	}
	return d, nil
}

// vectorConverter adapts one vector instantiation to the registry
// interface. The concrete set of these is finite and enumerated once by
// RegisterStandard, over the scalar kind set.
type vectorConverter[T Value] struct {
	id    registry.TypeID
	codec Codec[T]
}

// NewVectorConverter wraps a vector instantiation as a registry converter
// without the array view capability.
func NewVectorConverter[T Value](id registry.TypeID, codec Codec[T]) registry.Converter {
	return vectorConverter[T]{id: id, codec: codec}
}

func (c vectorConverter[T]) TypeID() registry.TypeID {
	return c.id
}

func (c vectorConverter[T]) Convertible(host any) bool {
	return VectorCheck(c.codec, host)
}

func (c vectorConverter[T]) Construct(host any) (any, error) {
	seq, ok := hostSequence(host)
	if !ok {
		return nil, errors.NotSequence(errors.PhaseConstruct, host, string(c.id))
	}
	for i, elem := range seq {
		if !c.codec.Check(elem) {
			return nil, errors.InvalidElement(errors.PhaseConstruct, i, elem, c.codec.Kind.String())
		}
	}

	vec, err := VectorFromHost(c.codec, host)
	if err != nil {
		// The check above passed, so extraction cannot fail for a
		// well-behaved codec. This is an internal bug, not user input.
		return nil, errors.Invariant(errors.PhaseConstruct,
			"element extraction failed after convertibility check passed: %v", err)
	}
	return vec, nil
}

// numericVectorConverter adds the Viewer capability to the numeric
// instantiations.
type numericVectorConverter[T Numeric] struct {
	vectorConverter[T]
}

// NewNumericVectorConverter wraps a numeric vector instantiation as a
// registry converter that also implements Viewer.
func NewNumericVectorConverter[T Numeric](id registry.TypeID, codec Codec[T]) registry.Converter {
	return numericVectorConverter[T]{vectorConverter[T]{id: id, codec: codec}}
}

func (c numericVectorConverter[T]) ViewOf(vec any) (any, error) {
	v, ok := vec.(*Vector[T])
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseView, nil, typeName(vec), string(c.id))
	}
	return View(v)
}
