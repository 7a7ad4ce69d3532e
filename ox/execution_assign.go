package ox

func (exec *Execution) evalAssignStatement(s *AssignStmt, env *Env) error {
	val, err := exec.evalExpression(s.Value, env)
	if err != nil {
		return err
	}

	switch t := s.Target.(type) {
	case *Identifier:
		if s.Op == tokenPlusAssign {
			cur, ok := env.Get(t.Name)
			if !ok {
				return exec.errorAt(NameError, t.Pos(), "undefined variable %s", t.Name)
			}
			combined, err := exec.augment(cur, val, s.Pos())
			if err != nil {
				return err
			}
			env.Set(t.Name, combined)
			return nil
		}
		// Plain assignment rebinds the nearest existing binding, or
		// declares in the current scope when the name is new.
		if !env.Set(t.Name, val) {
			env.Declare(t.Name, val)
		}
		return nil

	case *MemberExpr:
		obj, err := exec.evalExpression(t.Object, env)
		if err != nil {
			return err
		}
		if obj.Kind() != KindInstance {
			return exec.errorAt(TypeError, t.Pos(), "cannot assign to field on %s", obj.Kind())
		}
		inst := obj.Instance()
		cur, ok := inst.Fields[t.Property]
		if !ok {
			return exec.errorAt(NameError, t.Pos(), "undefined field %s on %s", t.Property, inst.Def.Name)
		}
		if s.Op == tokenPlusAssign {
			val, err = exec.augment(cur, val, s.Pos())
			if err != nil {
				return err
			}
		}
		inst.Fields[t.Property] = val
		return nil

	case *IndexExpr:
		obj, err := exec.evalExpression(t.Object, env)
		if err != nil {
			return err
		}
		if obj.Kind() != KindArray {
			return exec.errorAt(TypeError, t.Pos(), "cannot assign by index into %s", obj.Kind())
		}
		idx, err := exec.evalExpression(t.Index, env)
		if err != nil {
			return err
		}
		arr := obj.Array()
		i, err := exec.arrayIndex(idx, len(arr), t.Index.Pos())
		if err != nil {
			return err
		}
		if s.Op == tokenPlusAssign {
			val, err = exec.augment(arr[i], val, s.Pos())
			if err != nil {
				return err
			}
		}
		arr[i] = val
		return nil

	default:
		return exec.errorAt(TypeError, s.Pos(), "invalid assignment target")
	}
}

// augment implements the += combination rule: an array target grows by one
// element, everything else goes through the addition rules.
func (exec *Execution) augment(cur, val Value, pos Position) (Value, error) {
	if cur.Kind() == KindArray {
		arr := cur.Array()
		grown := make([]Value, 0, len(arr)+1)
		grown = append(grown, arr...)
		grown = append(grown, val)
		return NewArray(grown), nil
	}
	return exec.addValues(cur, val, pos)
}

func (exec *Execution) arrayIndex(idx Value, length int, pos Position) (int, error) {
	if idx.Kind() != KindNumber {
		return 0, exec.errorAt(TypeError, pos, "index must be a number, got %s", idx.Kind())
	}
	i := int(idx.Number())
	if i < 0 || i >= length {
		return 0, exec.errorAt(TypeError, pos, "index %d out of bounds for length %d", i, length)
	}
	return i, nil
}
