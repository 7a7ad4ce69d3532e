package ox

import (
	"context"
	"errors"
	"strings"
)

// Loader resolves an import name to ox source text. A Loader that has no
// source for a name returns ErrModuleNotFound so the engine can fall back
// to the embedded standard library.
type Loader interface {
	Load(name string) (string, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(name string) (string, error)

func (f LoaderFunc) Load(name string) (string, error) { return f(name) }

// ErrModuleNotFound signals that a Loader has no source for the requested
// import name.
var ErrModuleNotFound = errors.New("module not found")

// importModule evaluates the named module once and merges its exported
// functions and struct definitions into the global scope. Re-importing a
// cached module re-declares the same exports, so imports are idempotent.
func (exec *Execution) importModule(name string, pos Position) error {
	exports, err := exec.loadModule(name, pos)
	if err != nil {
		return err
	}
	for n, val := range exports {
		exec.globals.Declare(n, val)
	}
	return nil
}

func (exec *Execution) loadModule(name string, pos Position) (map[string]Value, error) {
	engine := exec.engine

	engine.modMu.Lock()
	cached, ok := engine.modules[name]
	engine.modMu.Unlock()
	if ok {
		return cached, nil
	}

	// The cache fills only after a module finishes evaluating, so a
	// module still on the load stack is a circular import.
	if cycle, ok := importCycle(exec.loadStack, name); ok {
		return nil, exec.errorAt(NameError, pos, "circular import: %s", strings.Join(cycle, " -> "))
	}

	source, err := exec.moduleSource(name, pos)
	if err != nil {
		return nil, err
	}

	program, err := Parse(source)
	if err != nil {
		return nil, err
	}

	// A module evaluates in its own isolated scope seeded with the
	// builtins. Only its functions and struct definitions escape.
	modEnv := newEnv(nil)
	for n, val := range engine.builtins {
		modEnv.Declare(n, val)
	}
	modExec := engine.newExecution(exec.ctx, modEnv, source)
	modExec.loadStack = append(append([]string(nil), exec.loadStack...), name)
	modExec.steps = exec.steps
	if _, _, err := modExec.evalStatements(program.Statements, modEnv); err != nil {
		return nil, err
	}
	exec.steps = modExec.steps

	exports := make(map[string]Value)
	for n, val := range modEnv.values {
		if val.Kind() == KindFunction || val.Kind() == KindStruct {
			exports[n] = val
		}
	}

	engine.modMu.Lock()
	engine.modules[name] = exports
	engine.modMu.Unlock()

	return exports, nil
}

func importCycle(stack []string, next string) ([]string, bool) {
	for i, key := range stack {
		if key == next {
			cycle := append(append([]string(nil), stack[i:]...), next)
			return cycle, true
		}
	}
	return nil, false
}

func (exec *Execution) moduleSource(name string, pos Position) (string, error) {
	if loader := exec.engine.config.Loader; loader != nil {
		source, err := loader.Load(name)
		if err == nil {
			return source, nil
		}
		if !errors.Is(err, ErrModuleNotFound) {
			return "", exec.errorAt(NameError, pos, "library %s: %v", name, err)
		}
	}
	if source, ok := stdlibSource(name); ok {
		return source, nil
	}
	return "", exec.errorAt(NameError, pos, "library not found: %s", name)
}

// Import loads a module into the runtime's global scope by name, the same
// way an import statement in a script would.
func (r *Runtime) Import(ctx context.Context, name string) error {
	exec := r.engine.newExecution(ctx, r.globals, "")
	return exec.importModule(name, Position{})
}
