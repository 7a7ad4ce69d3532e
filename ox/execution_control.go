package ox

import "errors"

func (exec *Execution) evalIfStatement(s *IfStmt, env *Env) (Value, bool, error) {
	cond, err := exec.evalExpression(s.Condition, env)
	if err != nil {
		return NewNil(), false, err
	}
	if cond.Truthy() {
		return exec.evalStatements(s.Consequent, newEnv(env))
	}
	for _, clause := range s.ElseIf {
		condVal, err := exec.evalExpression(clause.Condition, env)
		if err != nil {
			return NewNil(), false, err
		}
		if condVal.Truthy() {
			return exec.evalStatements(clause.Consequent, newEnv(env))
		}
	}
	if len(s.Alternate) > 0 {
		return exec.evalStatements(s.Alternate, newEnv(env))
	}
	return NewNil(), false, nil
}

func (exec *Execution) evalWhileStatement(s *WhileStmt, env *Env) (Value, bool, error) {
	for {
		cond, err := exec.evalExpression(s.Condition, env)
		if err != nil {
			return NewNil(), false, err
		}
		if !cond.Truthy() {
			return NewNil(), false, nil
		}

		val, returned, err := exec.evalStatements(s.Body, newEnv(env))
		if err != nil {
			if errors.Is(err, errLoopBreak) {
				return NewNil(), false, nil
			}
			if errors.Is(err, errLoopContinue) {
				continue
			}
			return NewNil(), false, err
		}
		if returned {
			return val, true, nil
		}
	}
}

func (exec *Execution) evalForStatement(s *ForStmt, env *Env) (Value, bool, error) {
	// The loop variable lives in its own scope wrapping the body.
	loopEnv := newEnv(env)
	if err := exec.evalAssignStatement(s.Init, loopEnv); err != nil {
		return NewNil(), false, err
	}

	for {
		cond, err := exec.evalExpression(s.Condition, loopEnv)
		if err != nil {
			return NewNil(), false, err
		}
		if !cond.Truthy() {
			return NewNil(), false, nil
		}

		val, returned, err := exec.evalStatements(s.Body, newEnv(loopEnv))
		if err != nil {
			if errors.Is(err, errLoopBreak) {
				return NewNil(), false, nil
			}
			if !errors.Is(err, errLoopContinue) {
				return NewNil(), false, err
			}
		} else if returned {
			return val, true, nil
		}

		// The post clause still runs after a continue.
		if err := exec.evalAssignStatement(s.Post, loopEnv); err != nil {
			return NewNil(), false, err
		}
	}
}

func (exec *Execution) evalFuncStatement(s *FuncStmt, env *Env) error {
	fn := &Function{Name: s.Name, Params: s.Params, Body: s.Body, Env: env}

	switch s.Kind {
	case FuncFree:
		env.Declare(s.Name, NewFunction(fn))
		return nil
	case FuncStatic:
		def, err := exec.resolveStructDef(s.Struct, s.Pos(), env)
		if err != nil {
			return err
		}
		fn.Name = s.Struct + "." + s.Name
		def.Statics[s.Name] = fn
		return nil
	case FuncInstance:
		def, err := exec.resolveStructDef(s.Struct, s.Pos(), env)
		if err != nil {
			return err
		}
		fn.Name = s.Struct + ":" + s.Name
		def.Methods[s.Name] = fn
		return nil
	default:
		return exec.errorAt(TypeError, s.Pos(), "unsupported function declaration")
	}
}

func (exec *Execution) resolveStructDef(name string, pos Position, env *Env) (*StructDef, error) {
	val, ok := env.Get(name)
	if !ok {
		return nil, exec.errorAt(NameError, pos, "undefined struct %s", name)
	}
	if val.Kind() != KindStruct {
		return nil, exec.errorAt(TypeError, pos, "%s is not a struct", name)
	}
	return val.StructDef(), nil
}

func (exec *Execution) evalStructStatement(s *StructStmt, env *Env) error {
	var parent *StructDef
	if s.Parent != "" {
		def, err := exec.resolveStructDef(s.Parent, s.Pos(), env)
		if err != nil {
			return err
		}
		parent = def
	}
	env.Declare(s.Name, NewStruct(newStructDef(s.Name, s.Fields, parent)))
	return nil
}
