package ox

func NewNil() Value            { return Value{kind: KindNil} }
func NewBool(b bool) Value     { return Value{kind: KindBool, data: b} }
func NewNumber(f float64) Value {
	return Value{kind: KindNumber, data: f}
}
func NewString(s string) Value { return Value{kind: KindString, data: s} }
func NewArray(a []Value) Value { return Value{kind: KindArray, data: a} }

func NewStruct(def *StructDef) Value {
	return Value{kind: KindStruct, data: def}
}

func NewInstance(inst *Instance) Value {
	return Value{kind: KindInstance, data: inst}
}

func NewFunction(fn *Function) Value {
	return Value{kind: KindFunction, data: fn}
}

func NewBuiltin(name string, fn BuiltinFunc) Value {
	return Value{kind: KindBuiltin, data: &Builtin{Name: name, Fn: fn}}
}

// bindReceiver produces a bound-method value: a copy of fn whose receiver
// is prepended to the arguments at call time.
func bindReceiver(fn *Function, recv Value) Value {
	bound := *fn
	bound.recv = &recv
	return NewFunction(&bound)
}
