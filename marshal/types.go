package marshal

import (
	"github.com/plexgraph/graph-bridge/marshal/internal/scalar"
	"github.com/plexgraph/graph-bridge/registry"
)

type ScalarKind = scalar.Kind

const (
	KindBool    = scalar.KindBool
	KindInt16   = scalar.KindInt16
	KindInt32   = scalar.KindInt32
	KindInt64   = scalar.KindInt64
	KindFloat32 = scalar.KindFloat32
	KindFloat64 = scalar.KindFloat64
	KindString  = scalar.KindString
	KindObject  = scalar.KindObject
)

// Kinds returns the closed scalar kind set in canonical order.
func Kinds() []ScalarKind {
	return scalar.Kinds()
}

// Value is the set of Go types backing the scalar kinds. Vectors and pairs
// are instantiated over this set and nothing else.
type Value interface {
	~bool | ~int16 | ~int32 | ~int64 | ~float32 | ~float64 | ~string
}

// Numeric is the subset of Value representable as a flat numeric buffer.
// Only vectors over Numeric expose an array view.
type Numeric interface {
	~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Type identities for every converter registered by RegisterStandard.
const (
	BoolID   registry.TypeID = "bool"
	Int16ID  registry.TypeID = "int16"
	Int32ID  registry.TypeID = "int32"
	Int64ID  registry.TypeID = "int64"
	FloatID  registry.TypeID = "float"
	DoubleID registry.TypeID = "double"
	StringID registry.TypeID = "string"
	ObjectID registry.TypeID = "object"
	DegreeID registry.TypeID = "degree"

	VectorBoolID   registry.TypeID = "vector<bool>"
	VectorInt16ID  registry.TypeID = "vector<int16>"
	VectorInt32ID  registry.TypeID = "vector<int32>"
	VectorInt64ID  registry.TypeID = "vector<int64>"
	VectorFloatID  registry.TypeID = "vector<float>"
	VectorDoubleID registry.TypeID = "vector<double>"
	VectorStringID registry.TypeID = "vector<string>"

	PairDoubleID     registry.TypeID = "pair<double,double>"
	PairInt64ID      registry.TypeID = "pair<int64,int64>"
	PairStringBoolID registry.TypeID = "pair<string,bool>"

	PropertyValueID  registry.TypeID = "property_value"
	DegreeSelectorID registry.TypeID = "degree_selector"
)

// Codec couples a scalar kind with its host extraction function. Check and
// extract share one implementation so the convertibility pass and the
// construction pass can never disagree.
type Codec[T Value] struct {
	Kind    ScalarKind
	Extract func(any) (T, bool)
}

// Check reports whether the host value coerces to this codec's kind.
func (c Codec[T]) Check(host any) bool {
	_, ok := c.Extract(host)
	return ok
}

// The per-kind codecs, one per member of the closed scalar set.
var (
	BoolCodec    = Codec[bool]{Kind: KindBool, Extract: scalar.AsBool}
	Int16Codec   = Codec[int16]{Kind: KindInt16, Extract: scalar.AsInt16}
	Int32Codec   = Codec[int32]{Kind: KindInt32, Extract: scalar.AsInt32}
	Int64Codec   = Codec[int64]{Kind: KindInt64, Extract: scalar.AsInt64}
	Float32Codec = Codec[float32]{Kind: KindFloat32, Extract: scalar.AsFloat32}
	Float64Codec = Codec[float64]{Kind: KindFloat64, Extract: scalar.AsFloat64}
	StringCodec  = Codec[string]{Kind: KindString, Extract: scalar.AsString}
)
