package ox

// Env is one scope in the lexical chain. Name lookup walks from the
// innermost scope outward, stopping at the first match.
type Env struct {
	parent *Env
	values map[string]Value
}

func newEnv(parent *Env) *Env {
	return &Env{parent: parent, values: make(map[string]Value)}
}

func (e *Env) Get(name string) (Value, bool) {
	if val, ok := e.values[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, false
}

// Declare binds name in this scope, shadowing any outer binding.
func (e *Env) Declare(name string, val Value) {
	e.values[name] = val
}

// Set mutates the nearest existing binding of name. It reports false when
// no scope on the chain defines the name; assignment never implicitly
// creates a binding here.
func (e *Env) Set(name string, val Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = val
		return true
	}
	if e.parent != nil {
		return e.parent.Set(name, val)
	}
	return false
}
