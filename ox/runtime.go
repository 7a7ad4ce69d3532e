package ox

import (
	"context"
	"maps"
)

// Runtime is a persistent global scope bound to one engine. Successive
// Execute calls see the bindings left behind by earlier ones, which is
// what the REPL builds on.
type Runtime struct {
	engine  *Engine
	globals *Env
}

// NewRuntime creates a Runtime whose global scope starts with the
// engine's registered builtins.
func (e *Engine) NewRuntime() *Runtime {
	globals := newEnv(nil)
	for name, val := range e.builtins {
		globals.Declare(name, val)
	}
	return &Runtime{engine: e, globals: globals}
}

// Execute parses and evaluates source against the runtime's global scope.
// It returns the value of the last top-level statement.
func (r *Runtime) Execute(ctx context.Context, source string) (Value, error) {
	program, err := Parse(source)
	if err != nil {
		return NewNil(), err
	}
	return r.run(ctx, program, source)
}

// Run evaluates an already-parsed program against the runtime's global
// scope. Error code frames are unavailable without the source text.
func (r *Runtime) Run(ctx context.Context, program *Program) (Value, error) {
	return r.run(ctx, program, "")
}

func (r *Runtime) run(ctx context.Context, program *Program, source string) (Value, error) {
	exec := r.engine.newExecution(ctx, r.globals, source)
	val, _, err := exec.evalStatements(program.Statements, r.globals)
	if err != nil {
		return NewNil(), err
	}
	return val, nil
}

// Call invokes a global function or struct constructor by name.
func (r *Runtime) Call(ctx context.Context, name string, args ...Value) (Value, error) {
	callee, ok := r.globals.Get(name)
	if !ok {
		exec := r.engine.newExecution(ctx, r.globals, "")
		return NewNil(), exec.errorAt(NameError, Position{}, "undefined variable %s", name)
	}
	exec := r.engine.newExecution(ctx, r.globals, "")
	return exec.callValue(callee, args, Position{})
}

// Lookup returns the current global binding for name.
func (r *Runtime) Lookup(name string) (Value, bool) {
	return r.globals.Get(name)
}

// Globals returns a copy of the runtime's current global bindings,
// builtins included.
func (r *Runtime) Globals() map[string]Value {
	out := make(map[string]Value, len(r.globals.values))
	maps.Copy(out, r.globals.values)
	return out
}

// Execute runs source in a fresh single-use Runtime.
func (e *Engine) Execute(ctx context.Context, source string) (Value, error) {
	return e.NewRuntime().Execute(ctx, source)
}
