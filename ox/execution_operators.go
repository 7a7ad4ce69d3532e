package ox

import "math"

func (exec *Execution) evalUnaryExpr(e *UnaryExpr, env *Env) (Value, error) {
	val, err := exec.evalExpression(e.Right, env)
	if err != nil {
		return NewNil(), err
	}
	switch e.Operator {
	case tokenMinus:
		if val.Kind() != KindNumber {
			return NewNil(), exec.errorAt(TypeError, e.Pos(), "cannot negate %s", val.Kind())
		}
		return NewNumber(-val.Number()), nil
	case tokenBang:
		return NewBool(!val.Truthy()), nil
	default:
		return NewNil(), exec.errorAt(TypeError, e.Pos(), "unsupported unary operator %s", e.Operator)
	}
}

func (exec *Execution) evalBinaryExpr(e *BinaryExpr, env *Env) (Value, error) {
	left, err := exec.evalExpression(e.Left, env)
	if err != nil {
		return NewNil(), err
	}
	right, err := exec.evalExpression(e.Right, env)
	if err != nil {
		return NewNil(), err
	}

	switch e.Operator {
	case tokenAnd:
		return NewBool(left.Truthy() && right.Truthy()), nil
	case tokenOr:
		return NewBool(left.Truthy() || right.Truthy()), nil
	case tokenPlus:
		return exec.addValues(left, right, e.Pos())
	case tokenMinus, tokenAsterisk, tokenSlash, tokenCaret:
		return exec.arithmetic(e.Operator, left, right, e.Pos())
	case tokenLT, tokenLTE, tokenGT, tokenGTE:
		return exec.compare(e.Operator, left, right, e.Pos())
	case tokenEQ:
		return exec.equality(left, right, false, e.Pos())
	case tokenNotEQ:
		return exec.equality(left, right, true, e.Pos())
	default:
		return NewNil(), exec.errorAt(TypeError, e.Pos(), "unsupported operator %s", e.Operator)
	}
}

// addValues implements +: numeric addition, string concatenation, or array
// concatenation into a fresh array.
func (exec *Execution) addValues(left, right Value, pos Position) (Value, error) {
	switch {
	case left.Kind() == KindNumber && right.Kind() == KindNumber:
		return NewNumber(left.Number() + right.Number()), nil
	case left.Kind() == KindString && right.Kind() == KindString:
		return NewString(left.String() + right.String()), nil
	case left.Kind() == KindArray && right.Kind() == KindArray:
		l, r := left.Array(), right.Array()
		joined := make([]Value, 0, len(l)+len(r))
		joined = append(joined, l...)
		joined = append(joined, r...)
		return NewArray(joined), nil
	default:
		return NewNil(), exec.errorAt(TypeError, pos, "cannot add %s and %s", left.Kind(), right.Kind())
	}
}

func (exec *Execution) arithmetic(op TokenType, left, right Value, pos Position) (Value, error) {
	if left.Kind() != KindNumber || right.Kind() != KindNumber {
		return NewNil(), exec.errorAt(TypeError, pos, "operator %s expects numbers, got %s and %s", op, left.Kind(), right.Kind())
	}
	l, r := left.Number(), right.Number()
	switch op {
	case tokenMinus:
		return NewNumber(l - r), nil
	case tokenAsterisk:
		return NewNumber(l * r), nil
	case tokenSlash:
		// Division by zero follows IEEE 754: Inf or NaN.
		return NewNumber(l / r), nil
	case tokenCaret:
		return NewNumber(math.Pow(l, r)), nil
	default:
		return NewNil(), exec.errorAt(TypeError, pos, "unsupported operator %s", op)
	}
}

func (exec *Execution) compare(op TokenType, left, right Value, pos Position) (Value, error) {
	if left.Kind() == KindNumber && right.Kind() == KindNumber {
		l, r := left.Number(), right.Number()
		switch op {
		case tokenLT:
			return NewBool(l < r), nil
		case tokenLTE:
			return NewBool(l <= r), nil
		case tokenGT:
			return NewBool(l > r), nil
		case tokenGTE:
			return NewBool(l >= r), nil
		}
	}
	if left.Kind() == KindString && right.Kind() == KindString {
		l, r := left.String(), right.String()
		switch op {
		case tokenLT:
			return NewBool(l < r), nil
		case tokenLTE:
			return NewBool(l <= r), nil
		case tokenGT:
			return NewBool(l > r), nil
		case tokenGTE:
			return NewBool(l >= r), nil
		}
	}
	return NewNil(), exec.errorAt(TypeError, pos, "operator %s expects two numbers or two strings, got %s and %s", op, left.Kind(), right.Kind())
}

// equality implements == and !=. Mixed kinds are a type error, except
// that nil compares unequal to every other kind instead of failing.
func (exec *Execution) equality(left, right Value, negate bool, pos Position) (Value, error) {
	if left.Kind() != right.Kind() {
		if left.Kind() == KindNil || right.Kind() == KindNil {
			return NewBool(negate), nil
		}
		return NewNil(), exec.errorAt(TypeError, pos, "cannot compare %s and %s", left.Kind(), right.Kind())
	}
	eq := left.Equal(right)
	if negate {
		eq = !eq
	}
	return NewBool(eq), nil
}
