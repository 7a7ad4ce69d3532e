package ox

// evalMemberExpr handles dot access. On an instance it resolves fields
// first and methods second; on a struct definition it resolves static
// methods through the inheritance chain.
func (exec *Execution) evalMemberExpr(e *MemberExpr, env *Env) (Value, error) {
	obj, err := exec.evalExpression(e.Object, env)
	if err != nil {
		return NewNil(), err
	}

	switch obj.Kind() {
	case KindInstance:
		inst := obj.Instance()
		if val, ok := inst.Fields[e.Property]; ok {
			return val, nil
		}
		if fn, ok := inst.Def.Method(e.Property); ok {
			return bindReceiver(fn, obj), nil
		}
		return NewNil(), exec.errorAt(NameError, e.Pos(), "undefined field or method %s on %s", e.Property, inst.Def.Name)
	case KindStruct:
		def := obj.StructDef()
		if fn, ok := def.Static(e.Property); ok {
			return NewFunction(fn), nil
		}
		return NewNil(), exec.errorAt(NameError, e.Pos(), "undefined static method %s on %s", e.Property, def.Name)
	default:
		return NewNil(), exec.errorAt(TypeError, e.Pos(), "cannot access member %s on %s", e.Property, obj.Kind())
	}
}

// evalMethodExpr handles colon access: an instance method looked up
// through the receiver's struct chain, returned with the receiver bound
// as the implicit first argument.
func (exec *Execution) evalMethodExpr(e *MethodExpr, env *Env) (Value, error) {
	obj, err := exec.evalExpression(e.Object, env)
	if err != nil {
		return NewNil(), err
	}
	if obj.Kind() != KindInstance {
		return NewNil(), exec.errorAt(TypeError, e.Pos(), "cannot call method %s on %s", e.Name, obj.Kind())
	}
	inst := obj.Instance()
	fn, ok := inst.Def.Method(e.Name)
	if !ok {
		return NewNil(), exec.errorAt(NameError, e.Pos(), "undefined method %s on %s", e.Name, inst.Def.Name)
	}
	return bindReceiver(fn, obj), nil
}

func (exec *Execution) evalIndexExpr(e *IndexExpr, env *Env) (Value, error) {
	obj, err := exec.evalExpression(e.Object, env)
	if err != nil {
		return NewNil(), err
	}
	idx, err := exec.evalExpression(e.Index, env)
	if err != nil {
		return NewNil(), err
	}

	switch obj.Kind() {
	case KindArray:
		arr := obj.Array()
		i, err := exec.arrayIndex(idx, len(arr), e.Index.Pos())
		if err != nil {
			return NewNil(), err
		}
		return arr[i], nil
	case KindString:
		// Strings index by character, not by byte.
		runes := []rune(obj.String())
		i, err := exec.arrayIndex(idx, len(runes), e.Index.Pos())
		if err != nil {
			return NewNil(), err
		}
		return NewString(string(runes[i])), nil
	default:
		return NewNil(), exec.errorAt(TypeError, e.Pos(), "cannot index %s", obj.Kind())
	}
}
