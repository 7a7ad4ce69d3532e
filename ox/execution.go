package ox

import (
	"context"
	"errors"
	"fmt"
)

// Execution is the per-run evaluation state: the interpreter call stack,
// step accounting and the source text used for error code frames.
type Execution struct {
	engine       *Engine
	globals      *Env
	ctx          context.Context
	quota        int
	steps        int
	recursionCap int
	callStack    []callFrame
	loadStack    []string
	source       string
}

type callFrame struct {
	Function string
	Pos      Position
}

var (
	errLoopBreak         = errors.New("loop break")
	errLoopContinue      = errors.New("loop continue")
	errStepQuotaExceeded = errors.New("step quota exceeded")
)

func (e *Engine) newExecution(ctx context.Context, globals *Env, source string) *Execution {
	return &Execution{
		engine:       e,
		globals:      globals,
		ctx:          ctx,
		quota:        e.config.StepQuota,
		recursionCap: e.config.RecursionLimit,
		source:       source,
	}
}

func (exec *Execution) step() error {
	exec.steps++
	if exec.quota > 0 && exec.steps > exec.quota {
		return fmt.Errorf("%w (%d)", errStepQuotaExceeded, exec.quota)
	}
	if exec.ctx != nil {
		select {
		case <-exec.ctx.Done():
			return exec.ctx.Err()
		default:
		}
	}
	return nil
}

func (exec *Execution) errorAt(kind ErrorKind, pos Position, format string, args ...any) error {
	frames := make([]StackFrame, 0, len(exec.callStack)+1)
	if len(exec.callStack) > 0 {
		current := exec.callStack[len(exec.callStack)-1]
		frames = append(frames, StackFrame{Function: current.Function, Pos: pos})
		for i := len(exec.callStack) - 1; i >= 0; i-- {
			frames = append(frames, StackFrame(exec.callStack[i]))
		}
	} else {
		frames = append(frames, StackFrame{Function: "<script>", Pos: pos})
	}

	codeFrame := ""
	if exec.source != "" {
		codeFrame = formatCodeFrame(exec.source, pos)
	}

	return &Error{
		Kind:      kind,
		Message:   fmt.Sprintf(format, args...),
		Pos:       pos,
		CodeFrame: codeFrame,
		Frames:    frames,
	}
}

func (exec *Execution) pushFrame(name string, pos Position) error {
	if len(exec.callStack) >= exec.recursionCap {
		return exec.errorAt(StackOverflowError, pos, "recursion depth exceeded (limit %d)", exec.recursionCap)
	}
	exec.callStack = append(exec.callStack, callFrame{Function: name, Pos: pos})
	return nil
}

func (exec *Execution) popFrame() {
	exec.callStack = exec.callStack[:len(exec.callStack)-1]
}

// evalStatements runs stmts in env. The bool result reports whether a
// return statement fired; otherwise the value of the last statement is
// returned, which the REPL shows.
func (exec *Execution) evalStatements(stmts []Statement, env *Env) (Value, bool, error) {
	result := NewNil()
	for _, stmt := range stmts {
		if err := exec.step(); err != nil {
			return NewNil(), false, err
		}
		val, returned, err := exec.evalStatement(stmt, env)
		if err != nil {
			return NewNil(), false, err
		}
		if returned {
			return val, true, nil
		}
		result = val
	}
	return result, false, nil
}

func (exec *Execution) evalStatement(stmt Statement, env *Env) (Value, bool, error) {
	switch s := stmt.(type) {
	case *ExprStmt:
		val, err := exec.evalExpression(s.Expr, env)
		return val, false, err
	case *AssignStmt:
		err := exec.evalAssignStatement(s, env)
		return NewNil(), false, err
	case *ReturnStmt:
		if s.Value == nil {
			return NewNil(), true, nil
		}
		val, err := exec.evalExpression(s.Value, env)
		return val, true, err
	case *IfStmt:
		return exec.evalIfStatement(s, env)
	case *WhileStmt:
		return exec.evalWhileStatement(s, env)
	case *ForStmt:
		return exec.evalForStatement(s, env)
	case *BreakStmt:
		return NewNil(), false, errLoopBreak
	case *ContinueStmt:
		return NewNil(), false, errLoopContinue
	case *FuncStmt:
		err := exec.evalFuncStatement(s, env)
		return NewNil(), false, err
	case *StructStmt:
		err := exec.evalStructStatement(s, env)
		return NewNil(), false, err
	case *ImportStmt:
		err := exec.importModule(s.Name, s.Pos())
		return NewNil(), false, err
	default:
		return NewNil(), false, exec.errorAt(TypeError, stmt.Pos(), "unsupported statement")
	}
}

func (exec *Execution) evalExpression(expr Expression, env *Env) (Value, error) {
	if err := exec.step(); err != nil {
		return NewNil(), err
	}
	switch e := expr.(type) {
	case *Identifier:
		val, ok := env.Get(e.Name)
		if !ok {
			return NewNil(), exec.errorAt(NameError, e.Pos(), "undefined variable %s", e.Name)
		}
		return val, nil
	case *NumberLiteral:
		return NewNumber(e.Value), nil
	case *StringLiteral:
		return NewString(e.Value), nil
	case *BoolLiteral:
		return NewBool(e.Value), nil
	case *NilLiteral:
		return NewNil(), nil
	case *ArrayLiteral:
		elems := make([]Value, len(e.Elements))
		for i, el := range e.Elements {
			val, err := exec.evalExpression(el, env)
			if err != nil {
				return NewNil(), err
			}
			elems[i] = val
		}
		return NewArray(elems), nil
	case *UnaryExpr:
		return exec.evalUnaryExpr(e, env)
	case *BinaryExpr:
		return exec.evalBinaryExpr(e, env)
	case *CallExpr:
		return exec.evalCallExpr(e, env)
	case *IndexExpr:
		return exec.evalIndexExpr(e, env)
	case *MemberExpr:
		return exec.evalMemberExpr(e, env)
	case *MethodExpr:
		return exec.evalMethodExpr(e, env)
	default:
		return NewNil(), exec.errorAt(TypeError, expr.Pos(), "unsupported expression")
	}
}
