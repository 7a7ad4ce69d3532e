package ox

import (
	"io"
	"maps"
	"os"
	"strings"
	"sync"
)

// Config controls execution bounds and host integration points.
type Config struct {
	// RecursionLimit caps the interpreter call stack depth.
	RecursionLimit int
	// StepQuota caps evaluation steps per execution. Zero disables the quota.
	StepQuota int
	// Output receives the text written by print and println.
	Output io.Writer
	// Loader resolves import names to source text before the embedded
	// standard library is consulted.
	Loader Loader
}

// Engine executes ox programs with deterministic limits. An Engine is safe
// for concurrent use; each script runs through its own Runtime.
type Engine struct {
	config   Config
	builtins map[string]Value
	modules  map[string]map[string]Value
	modMu    sync.Mutex
}

// NewEngine constructs an Engine with sane defaults and registers the
// built-in natives.
func NewEngine(cfg Config) *Engine {
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = 128
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	engine := &Engine{
		config:   cfg,
		builtins: make(map[string]Value),
		modules:  make(map[string]map[string]Value),
	}

	engine.Register("print", engine.builtinPrint)
	engine.Register("println", engine.builtinPrintln)

	return engine
}

// Register binds a named native callable into the global scope of every
// Runtime created afterwards.
func (e *Engine) Register(name string, fn BuiltinFunc) {
	e.builtins[name] = NewBuiltin(name, fn)
}

// Builtins returns a copy of the registered builtin map.
func (e *Engine) Builtins() map[string]Value {
	out := make(map[string]Value, len(e.builtins))
	maps.Copy(out, e.builtins)
	return out
}

// ClearModuleCache drops all cached module exports and returns the number
// of entries removed.
func (e *Engine) ClearModuleCache() int {
	e.modMu.Lock()
	defer e.modMu.Unlock()

	count := len(e.modules)
	clear(e.modules)
	return count
}

func (e *Engine) builtinPrint(_ *Execution, args []Value) (Value, error) {
	return NewNil(), e.write(args, "")
}

func (e *Engine) builtinPrintln(_ *Execution, args []Value) (Value, error) {
	return NewNil(), e.write(args, "\n")
}

func (e *Engine) write(args []Value, suffix string) error {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	_, err := io.WriteString(e.config.Output, strings.Join(parts, " ")+suffix)
	return err
}
