package ox

// ValueKind tags the dynamic type of a runtime value.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindStruct
	KindInstance
	KindFunction
	KindBuiltin
)

// Value is the tagged runtime representation of every ox value. Numbers
// have no separate integer form; all arithmetic is float64.
type Value struct {
	kind ValueKind
	data any
}

// Function is a user-defined closure: parameter names, the owned body and
// the environment chain active at definition time. recv is set on bound
// instance-method values and is prepended to the caller's arguments.
type Function struct {
	Name   string
	Params []string
	Body   []Statement
	Env    *Env

	recv *Value
}

// BuiltinFunc is the signature of host-injected natives.
type BuiltinFunc func(exec *Execution, args []Value) (Value, error)

// Builtin is a named native callable bound into the global scope.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}
