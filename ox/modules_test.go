package ox

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestImportStandardLibrary(t *testing.T) {
	val := execSource(t, `
import math
abs(-3)
`)
	wantNumber(t, val, 3)
}

func TestImportUnknownModule(t *testing.T) {
	err := execErr(t, `import nope`)
	if !IsKind(err, NameError) {
		t.Fatalf("expected NameError, got %v", err)
	}
	if !strings.Contains(err.Error(), "library not found: nope") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoaderProvidesModules(t *testing.T) {
	loader := LoaderFunc(func(name string) (string, error) {
		if name != "geo" {
			return "", ErrModuleNotFound
		}
		return `
struct Vec { x, y }
func dot(a, b) {
	return a.x * b.x + a.y * b.y
}
`, nil
	})

	engine := NewEngine(Config{Loader: loader})
	val, err := engine.Execute(context.Background(), `
import geo
dot(Vec(1, 2), Vec(3, 4))
`)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	wantNumber(t, val, 11)

	// Names the loader does not know fall back to the embedded library.
	val, err = engine.Execute(context.Background(), `
import math
floor(2.7)
`)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	wantNumber(t, val, 2)
}

func TestLoaderErrorSurfaces(t *testing.T) {
	loader := LoaderFunc(func(name string) (string, error) {
		return "", errors.New("storage offline")
	})
	engine := NewEngine(Config{Loader: loader})
	_, err := engine.Execute(context.Background(), `import geo`)
	if !IsKind(err, NameError) {
		t.Fatalf("expected NameError, got %v", err)
	}
	if !strings.Contains(err.Error(), "storage offline") {
		t.Fatalf("expected loader error detail, got %v", err)
	}
}

func TestImportCycleReported(t *testing.T) {
	loader := LoaderFunc(func(name string) (string, error) {
		switch name {
		case "a":
			return `import b`, nil
		case "b":
			return `import a`, nil
		}
		return "", ErrModuleNotFound
	})
	engine := NewEngine(Config{Loader: loader})
	_, err := engine.Execute(context.Background(), `import a`)
	if !IsKind(err, NameError) {
		t.Fatalf("expected NameError, got %v", err)
	}
	if !strings.Contains(err.Error(), "circular import: a -> b -> a") {
		t.Fatalf("expected import chain in error, got %v", err)
	}
}

func TestImportSelfCycleReported(t *testing.T) {
	loader := LoaderFunc(func(name string) (string, error) {
		return `import loop`, nil
	})
	engine := NewEngine(Config{Loader: loader})
	_, err := engine.Execute(context.Background(), `import loop`)
	if !IsKind(err, NameError) {
		t.Fatalf("expected NameError, got %v", err)
	}
	if !strings.Contains(err.Error(), "circular import: loop -> loop") {
		t.Fatalf("expected import chain in error, got %v", err)
	}
}

func TestImportIsIdempotent(t *testing.T) {
	engine := NewEngine(Config{})
	r := engine.NewRuntime()

	ctx := context.Background()
	if _, err := r.Execute(ctx, `import math`); err != nil {
		t.Fatalf("first import: %v", err)
	}
	if _, err := r.Execute(ctx, `import math`); err != nil {
		t.Fatalf("second import: %v", err)
	}
	val, err := r.Execute(ctx, `max(2, 5)`)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	wantNumber(t, val, 5)

	if removed := engine.ClearModuleCache(); removed != 1 {
		t.Fatalf("expected 1 cached module, got %d", removed)
	}
}

func TestImportExportsOnlyFunctionsAndStructs(t *testing.T) {
	loader := LoaderFunc(func(name string) (string, error) {
		return `
secret = 42
func reveal() { return 7 }
`, nil
	})
	engine := NewEngine(Config{Loader: loader})
	r := engine.NewRuntime()

	if _, err := r.Execute(context.Background(), `import hidden`); err != nil {
		t.Fatalf("import: %v", err)
	}
	if _, ok := r.Lookup("secret"); ok {
		t.Fatalf("module variable leaked into globals")
	}
	val, err := r.Execute(context.Background(), `reveal()`)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	wantNumber(t, val, 7)
}

func TestImportLastWriteWins(t *testing.T) {
	loader := LoaderFunc(func(name string) (string, error) {
		if name == "first" {
			return `func answer() { return 1 }`, nil
		}
		return `func answer() { return 2 }`, nil
	})
	engine := NewEngine(Config{Loader: loader})
	val, err := engine.Execute(context.Background(), `
import first
import second
answer()
`)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	wantNumber(t, val, 2)
}

func TestRuntimeImport(t *testing.T) {
	engine := NewEngine(Config{})
	r := engine.NewRuntime()

	if err := r.Import(context.Background(), "math"); err != nil {
		t.Fatalf("import: %v", err)
	}
	val, err := r.Execute(context.Background(), `min(3, 1)`)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	wantNumber(t, val, 1)
}
