package ox

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const recurseSource = `
func recurse(n) {
	if n <= 0 {
		return 0
	}
	return recurse(n - 1) + 1
}
`

func TestRecursionLimitExceeded(t *testing.T) {
	engine := NewEngine(Config{RecursionLimit: 3})
	_, err := engine.Execute(context.Background(), recurseSource+`recurse(5)`)
	if err == nil {
		t.Fatalf("expected recursion depth error")
	}

	var oxErr *Error
	if !errors.As(err, &oxErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if oxErr.Kind != StackOverflowError {
		t.Fatalf("expected StackOverflowError, got %s", oxErr.Kind)
	}
	if !strings.Contains(err.Error(), "recursion depth exceeded (limit 3)") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecursionLimitAllowsWithinBound(t *testing.T) {
	engine := NewEngine(Config{RecursionLimit: 5})
	val, err := engine.Execute(context.Background(), recurseSource+`recurse(4)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val.Kind() != KindNumber || val.Number() != 4 {
		t.Fatalf("unexpected result: %s", val.String())
	}
}

func TestRecursionLimitDefaultApplies(t *testing.T) {
	engine := NewEngine(Config{})
	_, err := engine.Execute(context.Background(), recurseSource+`recurse(500)`)
	if err == nil {
		t.Fatalf("expected recursion depth error")
	}
	if !IsKind(err, StackOverflowError) {
		t.Fatalf("expected StackOverflowError, got %v", err)
	}
}

func TestRecursionErrorTruncatesFrames(t *testing.T) {
	engine := NewEngine(Config{RecursionLimit: 64})
	_, err := engine.Execute(context.Background(), recurseSource+`recurse(100)`)
	if err == nil {
		t.Fatalf("expected recursion depth error")
	}

	var oxErr *Error
	if !errors.As(err, &oxErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if len(oxErr.Frames) != 65 {
		t.Fatalf("expected 65 frames, got %d", len(oxErr.Frames))
	}
	if !strings.Contains(err.Error(), "frames omitted") {
		t.Fatalf("expected truncated rendering, got %v", err)
	}
}
