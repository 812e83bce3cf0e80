package scalar

// Kind identifies one member of the closed scalar type set. Declaration
// order is the canonical candidate order used by variant converters.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindString
	KindObject
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindFloat32: "float",
	KindFloat64: "double",
	KindString:  "string",
	KindObject:  "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsNumeric reports whether a flat numeric buffer can represent values of
// this kind. Only numeric kinds ever yield an array view.
func (k Kind) IsNumeric() bool {
	return k >= KindInt16 && k <= KindFloat64
}

// Kinds returns the full scalar kind set in canonical order.
func Kinds() []Kind {
	return []Kind{
		KindBool,
		KindInt16,
		KindInt32,
		KindInt64,
		KindFloat32,
		KindFloat64,
		KindString,
		KindObject,
	}
}
