package ox

import (
	"context"
	"testing"
)

func mathRuntime(t *testing.T) *Runtime {
	t.Helper()
	engine := NewEngine(Config{})
	r := engine.NewRuntime()
	if err := r.Import(context.Background(), "math"); err != nil {
		t.Fatalf("import math: %v", err)
	}
	return r
}

func callMath(t *testing.T, r *Runtime, name string, args ...float64) float64 {
	t.Helper()
	vals := make([]Value, len(args))
	for i, a := range args {
		vals[i] = NewNumber(a)
	}
	result, err := r.Call(context.Background(), name, vals...)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	if result.Kind() != KindNumber {
		t.Fatalf("%s: expected number, got %s", name, result.Kind())
	}
	return result.Number()
}

func TestMathAbsMinMax(t *testing.T) {
	r := mathRuntime(t)

	cases := []struct {
		name string
		args []float64
		want float64
	}{
		{"abs", []float64{-3}, 3},
		{"abs", []float64{2.5}, 2.5},
		{"abs", []float64{0}, 0},
		{"min", []float64{2, 5}, 2},
		{"min", []float64{-1, -7}, -7},
		{"max", []float64{2, 5}, 5},
		{"max", []float64{-1, -7}, -1},
	}
	for _, tc := range cases {
		if got := callMath(t, r, tc.name, tc.args...); got != tc.want {
			t.Fatalf("%s(%v): expected %v, got %v", tc.name, tc.args, tc.want, got)
		}
	}
}

func TestMathModRem(t *testing.T) {
	r := mathRuntime(t)

	cases := []struct {
		name string
		args []float64
		want float64
	}{
		{"mod", []float64{7, 3}, 1},
		{"mod", []float64{-7, 3}, 2},
		{"mod", []float64{2, 5}, 2},
		{"mod", []float64{5, 0}, 5},
		{"rem", []float64{7, 3}, 1},
		{"rem", []float64{-7, 3}, -1},
	}
	for _, tc := range cases {
		if got := callMath(t, r, tc.name, tc.args...); got != tc.want {
			t.Fatalf("%s(%v): expected %v, got %v", tc.name, tc.args, tc.want, got)
		}
	}
}

func TestMathFloor(t *testing.T) {
	r := mathRuntime(t)

	if got := callMath(t, r, "floor", 2.7); got != 2 {
		t.Fatalf("floor(2.7): expected 2, got %v", got)
	}
	if got := callMath(t, r, "floor", -2.3); got != -3 {
		t.Fatalf("floor(-2.3): expected -3, got %v", got)
	}
	if got := callMath(t, r, "floor", 4); got != 4 {
		t.Fatalf("floor(4): expected 4, got %v", got)
	}
}

func TestMathRound(t *testing.T) {
	r := mathRuntime(t)

	cases := []struct {
		arg  float64
		want float64
	}{
		{2.4, 2},
		{2.6, 3},
		{-2.6, -2},
		{0.5, 1},
	}
	for _, tc := range cases {
		if got := callMath(t, r, "round", tc.arg); got != tc.want {
			t.Fatalf("round(%v): expected %v, got %v", tc.arg, tc.want, got)
		}
	}
}

func TestMathRoundNegativeFraction(t *testing.T) {
	// Pins the long-standing rounding quirk for negative inputs with a
	// fractional part below one half.
	r := mathRuntime(t)
	if got := callMath(t, r, "round", -2.423); got != -3 {
		t.Fatalf("round(-2.423): expected -3, got %v", got)
	}
}
