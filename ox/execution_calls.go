package ox

func (exec *Execution) evalCallExpr(e *CallExpr, env *Env) (Value, error) {
	callee, err := exec.evalExpression(e.Callee, env)
	if err != nil {
		return NewNil(), err
	}

	args := make([]Value, len(e.Args))
	for i, arg := range e.Args {
		val, err := exec.evalExpression(arg, env)
		if err != nil {
			return NewNil(), err
		}
		args[i] = val
	}

	return exec.callValue(callee, args, e.Pos())
}

func (exec *Execution) callValue(callee Value, args []Value, pos Position) (Value, error) {
	switch callee.Kind() {
	case KindFunction:
		return exec.callFunction(callee.Function(), args, pos)
	case KindBuiltin:
		builtin := callee.Builtin()
		if err := exec.pushFrame(builtin.Name, pos); err != nil {
			return NewNil(), err
		}
		defer exec.popFrame()
		return builtin.Fn(exec, args)
	case KindStruct:
		return exec.construct(callee.StructDef(), args, pos)
	default:
		return NewNil(), exec.errorAt(TypeError, pos, "cannot call %s", callee.Kind())
	}
}

func (exec *Execution) callFunction(fn *Function, args []Value, pos Position) (Value, error) {
	if fn.recv != nil {
		bound := make([]Value, 0, len(args)+1)
		bound = append(bound, *fn.recv)
		bound = append(bound, args...)
		args = bound
	}
	if len(args) != len(fn.Params) {
		return NewNil(), exec.errorAt(ArityError, pos, "function %s expected %d args, got %d", fn.Name, len(fn.Params), len(args))
	}

	if err := exec.pushFrame(fn.Name, pos); err != nil {
		return NewNil(), err
	}
	defer exec.popFrame()

	local := newEnv(fn.Env)
	for i, param := range fn.Params {
		local.Declare(param, args[i])
	}

	val, returned, err := exec.evalStatements(fn.Body, local)
	if err != nil {
		return NewNil(), err
	}
	// Without an explicit return a call yields nil, never the last
	// statement's value.
	if !returned {
		return NewNil(), nil
	}
	return val, nil
}

// construct instantiates a struct definition. Arguments map positionally
// onto the full field list, inherited fields first.
func (exec *Execution) construct(def *StructDef, args []Value, pos Position) (Value, error) {
	fields := def.AllFields()
	if len(args) != len(fields) {
		return NewNil(), exec.errorAt(ArityError, pos, "struct %s expected %d fields, got %d", def.Name, len(fields), len(args))
	}
	inst := &Instance{Def: def, Fields: make(map[string]Value, len(fields))}
	for i, name := range fields {
		inst.Fields[name] = args[i]
	}
	return NewInstance(inst), nil
}
