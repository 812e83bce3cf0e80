package scalar

import (
	"math"
	"testing"
)

func TestAsBool(t *testing.T) {
	tests := []struct {
		input  any
		name   string
		want   bool
		wantOK bool
	}{
		{true, "bool true", true, true},
		{false, "bool false", false, true},
		{1, "int one", false, false},
		{0, "int zero", false, false},
		{"true", "string", false, false},
		{nil, "nil", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsBool(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("AsBool(%v) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAsInt16(t *testing.T) {
	tests := []struct {
		input  any
		name   string
		want   int16
		wantOK bool
	}{
		{int16(0), "int16 zero", 0, true},
		{int16(math.MaxInt16), "int16 max", math.MaxInt16, true},
		{int16(math.MinInt16), "int16 min", math.MinInt16, true},
		{int8(-5), "int8", -5, true},
		{uint8(200), "uint8", 200, true},
		{int(1234), "int in range", 1234, true},
		{int(math.MaxInt16 + 1), "int too large", 0, false},
		{int(math.MinInt16 - 1), "int too small", 0, false},
		{int64(100), "int64 in range", 100, true},
		{int64(1 << 20), "int64 too large", 0, false},
		{uint64(100), "uint64 in range", 100, true},
		{uint64(1 << 40), "uint64 too large", 0, false},
		{float64(42), "float64 whole", 42, true},
		{float64(-3), "float64 negative whole", -3, true},
		{float64(3.5), "float64 fractional", 0, false},
		{float64(1e6), "float64 too large", 0, false},
		{float32(7), "float32 whole", 7, true},
		{"12", "string", 0, false},
		{true, "bool", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsInt16(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("AsInt16(%v) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAsInt32(t *testing.T) {
	tests := []struct {
		input  any
		name   string
		want   int32
		wantOK bool
	}{
		{int32(0), "int32 zero", 0, true},
		{int32(math.MaxInt32), "int32 max", math.MaxInt32, true},
		{int16(-100), "int16", -100, true},
		{int(42), "int", 42, true},
		{int64(math.MaxInt32), "int64 at max", math.MaxInt32, true},
		{int64(math.MaxInt32 + 1), "int64 too large", 0, false},
		{uint32(math.MaxInt32), "uint32 at max", math.MaxInt32, true},
		{uint32(math.MaxInt32 + 1), "uint32 too large", 0, false},
		{float64(1000000), "float64 whole", 1000000, true},
		{float64(3.14), "float64 fractional", 0, false},
		{float64(-1), "float64 negative", -1, true},
		{nil, "nil", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsInt32(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("AsInt32(%v) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAsInt64(t *testing.T) {
	tests := []struct {
		input  any
		name   string
		want   int64
		wantOK bool
	}{
		{int64(math.MaxInt64), "int64 max", math.MaxInt64, true},
		{int64(math.MinInt64), "int64 min", math.MinInt64, true},
		{int(7), "int", 7, true},
		{int32(-9), "int32", -9, true},
		{uint64(math.MaxInt64), "uint64 at max", math.MaxInt64, true},
		{uint64(math.MaxInt64) + 1, "uint64 too large", 0, false},
		{float64(1 << 40), "float64 large whole", 1 << 40, true},
		{float64(0.5), "float64 fractional", 0, false},
		{"9", "string", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsInt64(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("AsInt64(%v) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAsFloat32(t *testing.T) {
	tests := []struct {
		input  any
		name   string
		want   float32
		wantOK bool
	}{
		{float32(1.5), "float32", 1.5, true},
		{float64(2.25), "float64 representable", 2.25, true},
		{float64(math.MaxFloat32), "float64 at max", math.MaxFloat32, true},
		{float64(math.MaxFloat64), "float64 out of range", 0, false},
		{int(3), "int", 3, true},
		{int64(-8), "int64", -8, true},
		{"1.0", "string", 0, false},
		{true, "bool", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsFloat32(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("AsFloat32(%v) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	t.Run("float64 inf", func(t *testing.T) {
		got, ok := AsFloat32(math.Inf(1))
		if !ok || !math.IsInf(float64(got), 1) {
			t.Errorf("AsFloat32(+inf) = (%v, %v), want (+inf, true)", got, ok)
		}
	})
	t.Run("float64 nan", func(t *testing.T) {
		got, ok := AsFloat32(math.NaN())
		if !ok || got == got {
			t.Errorf("AsFloat32(NaN) = (%v, %v), want (NaN, true)", got, ok)
		}
	})
}

func TestAsFloat64(t *testing.T) {
	tests := []struct {
		input  any
		name   string
		want   float64
		wantOK bool
	}{
		{float64(3.14), "float64", 3.14, true},
		{float32(0.5), "float32", 0.5, true},
		{int(-2), "int", -2, true},
		{int64(1 << 50), "int64", 1 << 50, true},
		{uint64(12), "uint64", 12, true},
		{"x", "string", 0, false},
		{nil, "nil", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsFloat64(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("AsFloat64(%v) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAsString(t *testing.T) {
	if got, ok := AsString("out"); !ok || got != "out" {
		t.Errorf("AsString(out) = (%q, %v)", got, ok)
	}
	if _, ok := AsString(42); ok {
		t.Error("AsString should reject numbers")
	}
	if _, ok := AsString([]byte("x")); ok {
		t.Error("AsString should reject byte slices")
	}
}

func TestAsObject(t *testing.T) {
	inputs := []any{nil, 1, "s", []any{1, 2}, struct{}{}}
	for _, in := range inputs {
		if _, ok := AsObject(in); !ok {
			t.Errorf("AsObject(%v) rejected", in)
		}
	}
}
