package scalar

import "math"

// Host literals usually arrive as decoded JSON, where every number is a
// float64. Each coercion accepts the exact Go type, lossless widenings, and
// whole-valued floats inside the target range. Nothing is ever truncated.

func AsBool(value any) (bool, bool) {
	v, ok := value.(bool)
	return v, ok
}

func AsInt16(value any) (int16, bool) {
	switch v := value.(type) {
	case int16:
		return v, true
	case int8:
		return int16(v), true
	case uint8:
		return int16(v), true
	case int32:
		if v >= math.MinInt16 && v <= math.MaxInt16 {
			return int16(v), true
		}
	case int64:
		if v >= math.MinInt16 && v <= math.MaxInt16 {
			return int16(v), true
		}
	case int:
		if v >= math.MinInt16 && v <= math.MaxInt16 {
			return int16(v), true
		}
	case uint16:
		if v <= math.MaxInt16 {
			return int16(v), true
		}
	case uint32:
		if v <= math.MaxInt16 {
			return int16(v), true
		}
	case uint64:
		if v <= math.MaxInt16 {
			return int16(v), true
		}
	case uint:
		if v <= math.MaxInt16 {
			return int16(v), true
		}
	case float64:
		if v >= math.MinInt16 && v <= math.MaxInt16 && v == float64(int16(v)) {
			return int16(v), true
		}
	case float32:
		if v >= math.MinInt16 && v <= math.MaxInt16 && v == float32(int16(v)) {
			return int16(v), true
		}
	}
	return 0, false
}

func AsInt32(value any) (int32, bool) {
	switch v := value.(type) {
	case int32:
		return v, true
	case int8:
		return int32(v), true
	case int16:
		return int32(v), true
	case uint8:
		return int32(v), true
	case uint16:
		return int32(v), true
	case int64:
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return int32(v), true
		}
	case int:
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return int32(v), true
		}
	case uint32:
		if v <= math.MaxInt32 {
			return int32(v), true
		}
	case uint64:
		if v <= math.MaxInt32 {
			return int32(v), true
		}
	case uint:
		if v <= math.MaxInt32 {
			return int32(v), true
		}
	case float64:
		if v >= math.MinInt32 && v <= math.MaxInt32 && v == float64(int32(v)) {
			return int32(v), true
		}
	case float32:
		if v >= math.MinInt32 && v <= math.MaxInt32 && v == float32(int32(v)) {
			return int32(v), true
		}
	}
	return 0, false
}

func AsInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	case uint:
		if uint64(v) <= math.MaxInt64 {
			return int64(v), true
		}
	case float64:
		if v >= math.MinInt64 && v < math.MaxInt64 && v == float64(int64(v)) {
			return int64(v), true
		}
	case float32:
		if v >= math.MinInt64 && v < math.MaxInt64 && v == float32(int64(v)) {
			return int64(v), true
		}
	}
	return 0, false
}

func AsFloat32(value any) (float32, bool) {
	switch v := value.(type) {
	case float32:
		return v, true
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return float32(v), true
		}
		if math.Abs(v) <= math.MaxFloat32 {
			return float32(v), true
		}
	case int8:
		return float32(v), true
	case int16:
		return float32(v), true
	case int32:
		return float32(v), true
	case int64:
		return float32(v), true
	case int:
		return float32(v), true
	case uint8:
		return float32(v), true
	case uint16:
		return float32(v), true
	case uint32:
		return float32(v), true
	case uint64:
		return float32(v), true
	case uint:
		return float32(v), true
	}
	return 0, false
}

func AsFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint:
		return float64(v), true
	}
	return 0, false
}

func AsString(value any) (string, bool) {
	v, ok := value.(string)
	return v, ok
}

// AsObject accepts any host value, including nil. The object kind is the
// opaque escape hatch for values the native side treats as uninterpreted.
func AsObject(value any) (any, bool) {
	return value, true
}
