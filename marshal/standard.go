package marshal

import (
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/plexgraph/graph-bridge/registry"
)

// RegisterStandard populates reg with the full standard converter set:
// every scalar kind, every vector instantiation, the fixed pair
// combinations, and the two variants. Call once during the boot phase,
// before Seal. Registration failures are aggregated, not short-circuited,
// so a broken boot reports every problem at once.
func RegisterStandard(reg *registry.Registry) error {
	converters := []registry.Converter{
		// Scalars, in kind order.
		NewScalarConverter(BoolID, BoolCodec),
		NewScalarConverter(Int16ID, Int16Codec),
		NewScalarConverter(Int32ID, Int32Codec),
		NewScalarConverter(Int64ID, Int64Codec),
		NewScalarConverter(FloatID, Float32Codec),
		NewScalarConverter(DoubleID, Float64Codec),
		NewScalarConverter(StringID, StringCodec),
		NewObjectConverter(),
		NewDegreeConverter(),

		// Vectors, one per scalar kind. Numeric instantiations carry the
		// array view capability; bool and string do not.
		NewVectorConverter(VectorBoolID, BoolCodec),
		NewNumericVectorConverter(VectorInt16ID, Int16Codec),
		NewNumericVectorConverter(VectorInt32ID, Int32Codec),
		NewNumericVectorConverter(VectorInt64ID, Int64Codec),
		NewNumericVectorConverter(VectorFloatID, Float32Codec),
		NewNumericVectorConverter(VectorDoubleID, Float64Codec),
		NewVectorConverter(VectorStringID, StringCodec),

		// Pairs, only the combinations that actually cross the boundary.
		NewPairCodec(PairDoubleID, Float64Codec, Float64Codec),
		NewPairCodec(PairInt64ID, Int64Codec, Int64Codec),

		// Variants.
		NewPropertyValueVariant(),
		NewDegreeSelectorVariant(),
	}

	var err error
	for _, c := range converters {
		err = multierr.Append(err, reg.Register(c))
	}
	if err != nil {
		return err
	}

	Logger().Debug("standard converters registered",
		zap.Int("count", len(converters)))
	return nil
}

// propertyCandidates is the fixed priority order for the property value
// union: scalars in kind order, then vectors in kind order, then the
// opaque object as the catch-all. Object must come last: it accepts every
// host value, so anything after it would be unreachable.
func propertyCandidates() []Candidate {
	return []Candidate{
		{Tag: BoolID, Converter: NewScalarConverter(BoolID, BoolCodec)},
		{Tag: Int16ID, Converter: NewScalarConverter(Int16ID, Int16Codec)},
		{Tag: Int32ID, Converter: NewScalarConverter(Int32ID, Int32Codec)},
		{Tag: Int64ID, Converter: NewScalarConverter(Int64ID, Int64Codec)},
		{Tag: FloatID, Converter: NewScalarConverter(FloatID, Float32Codec)},
		{Tag: DoubleID, Converter: NewScalarConverter(DoubleID, Float64Codec)},
		{Tag: StringID, Converter: NewScalarConverter(StringID, StringCodec)},
		{Tag: VectorBoolID, Converter: NewVectorConverter(VectorBoolID, BoolCodec)},
		{Tag: VectorInt16ID, Converter: NewNumericVectorConverter(VectorInt16ID, Int16Codec)},
		{Tag: VectorInt32ID, Converter: NewNumericVectorConverter(VectorInt32ID, Int32Codec)},
		{Tag: VectorInt64ID, Converter: NewNumericVectorConverter(VectorInt64ID, Int64Codec)},
		{Tag: VectorFloatID, Converter: NewNumericVectorConverter(VectorFloatID, Float32Codec)},
		{Tag: VectorDoubleID, Converter: NewNumericVectorConverter(VectorDoubleID, Float64Codec)},
		{Tag: VectorStringID, Converter: NewVectorConverter(VectorStringID, StringCodec)},
		{Tag: ObjectID, Converter: NewObjectConverter()},
	}
}

// NewPropertyValueVariant builds the tagged union over every scalar and
// vector kind.
func NewPropertyValueVariant() *Variant {
	return NewVariant(PropertyValueID, propertyCandidates()...)
}

// NewDegreeSelectorVariant builds the variant host code passes where a
// degree is expected: the degree keywords take priority over every general
// scalar and vector match, so "out" selects a degree even though it is
// also a perfectly good string.
func NewDegreeSelectorVariant() *Variant {
	candidates := append(
		[]Candidate{{Tag: DegreeID, Converter: NewDegreeConverter()}},
		propertyCandidates()...,
	)
	return NewVariant(DegreeSelectorID, candidates...)
}

var (
	defaultRegistry     *registry.Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide sealed registry holding the standard
// converter set. Prefer injecting a Registry built with RegisterStandard;
// this singleton exists for hosts that require ambient lookup.
func Default() *registry.Registry {
	defaultRegistryOnce.Do(func() {
		reg := registry.New()
		if err := RegisterStandard(reg); err != nil {
			// The standard set registers distinct identities into a fresh
			// registry; failure here means the set itself is broken.
			panic(err)
		}
		reg.Seal()
		defaultRegistry = reg
	})
	return defaultRegistry
}
