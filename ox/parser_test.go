package ox

import "testing"

func mustParse(t *testing.T, source string) *Program {
	t.Helper()
	program, err := Parse(source)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return program
}

func TestParseFunctionForms(t *testing.T) {
	program := mustParse(t, `
func dist(a, b) { return a - b }
func Point.origin() { return Point(0, 0) }
func Point:translate(self, dx, dy) { self.x += dx }
`)
	if len(program.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(program.Statements))
	}

	free := program.Statements[0].(*FuncStmt)
	if free.Kind != FuncFree || free.Name != "dist" || len(free.Params) != 2 {
		t.Fatalf("unexpected free function: %+v", free)
	}

	static := program.Statements[1].(*FuncStmt)
	if static.Kind != FuncStatic || static.Struct != "Point" || static.Name != "origin" {
		t.Fatalf("unexpected static method: %+v", static)
	}
	if len(static.Params) != 0 {
		t.Fatalf("expected no params, got %v", static.Params)
	}

	method := program.Statements[2].(*FuncStmt)
	if method.Kind != FuncInstance || method.Struct != "Point" || method.Name != "translate" {
		t.Fatalf("unexpected instance method: %+v", method)
	}
	if len(method.Params) != 3 || method.Params[0] != "self" {
		t.Fatalf("unexpected params: %v", method.Params)
	}
}

func TestParsePrecedence(t *testing.T) {
	program := mustParse(t, `1 + 2 * 3`)
	expr := program.Statements[0].(*ExprStmt).Expr.(*BinaryExpr)
	if expr.Operator != tokenPlus {
		t.Fatalf("expected + at root, got %s", expr.Operator)
	}
	right := expr.Right.(*BinaryExpr)
	if right.Operator != tokenAsterisk {
		t.Fatalf("expected * on the right, got %s", right.Operator)
	}
}

func TestParsePowerRightAssociative(t *testing.T) {
	program := mustParse(t, `2 ^ 3 ^ 2`)
	expr := program.Statements[0].(*ExprStmt).Expr.(*BinaryExpr)
	if expr.Operator != tokenCaret {
		t.Fatalf("expected ^ at root, got %s", expr.Operator)
	}
	if _, ok := expr.Left.(*NumberLiteral); !ok {
		t.Fatalf("expected number on the left, got %T", expr.Left)
	}
	right := expr.Right.(*BinaryExpr)
	if right.Operator != tokenCaret {
		t.Fatalf("expected nested ^ on the right, got %s", right.Operator)
	}
}

func TestParseLogicalPrecedence(t *testing.T) {
	program := mustParse(t, `a == 1 && b < 2 || c`)
	root := program.Statements[0].(*ExprStmt).Expr.(*BinaryExpr)
	if root.Operator != tokenOr {
		t.Fatalf("expected || at root, got %s", root.Operator)
	}
	left := root.Left.(*BinaryExpr)
	if left.Operator != tokenAnd {
		t.Fatalf("expected && below ||, got %s", left.Operator)
	}
}

func TestParseStructDeclaration(t *testing.T) {
	program := mustParse(t, `
struct Point { x, y }
struct RelativePoint inherits Point { cx, cy }
`)
	base := program.Statements[0].(*StructStmt)
	if base.Name != "Point" || base.Parent != "" {
		t.Fatalf("unexpected struct: %+v", base)
	}
	if len(base.Fields) != 2 || base.Fields[0] != "x" || base.Fields[1] != "y" {
		t.Fatalf("unexpected fields: %v", base.Fields)
	}

	child := program.Statements[1].(*StructStmt)
	if child.Parent != "Point" || len(child.Fields) != 2 {
		t.Fatalf("unexpected child struct: %+v", child)
	}
}

func TestParseForLoop(t *testing.T) {
	program := mustParse(t, `for i = 0, i < 10, i += 1 { total += i }`)
	loop := program.Statements[0].(*ForStmt)
	if loop.Init.Op != tokenAssign {
		t.Fatalf("unexpected init op: %s", loop.Init.Op)
	}
	if loop.Post.Op != tokenPlusAssign {
		t.Fatalf("unexpected post op: %s", loop.Post.Op)
	}
	if len(loop.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(loop.Body))
	}
}

func TestParseIfElseChain(t *testing.T) {
	program := mustParse(t, `
if a { x = 1 } else if b { x = 2 } else if c { x = 3 } else { x = 4 }
`)
	stmt := program.Statements[0].(*IfStmt)
	if len(stmt.ElseIf) != 2 {
		t.Fatalf("expected 2 else-if clauses, got %d", len(stmt.ElseIf))
	}
	if len(stmt.Alternate) != 1 {
		t.Fatalf("expected else branch, got %d statements", len(stmt.Alternate))
	}
}

func TestParseMemberMethodIndex(t *testing.T) {
	program := mustParse(t, `p:scale(2).x[0]`)
	index := program.Statements[0].(*ExprStmt).Expr.(*IndexExpr)
	member := index.Object.(*MemberExpr)
	if member.Property != "x" {
		t.Fatalf("unexpected property: %s", member.Property)
	}
	call := member.Object.(*CallExpr)
	method := call.Callee.(*MethodExpr)
	if method.Name != "scale" {
		t.Fatalf("unexpected method: %s", method.Name)
	}
}

func TestParseStatementBoundaries(t *testing.T) {
	program := mustParse(t, `
p = Point(1, 2)
[p.x, p.y]
`)
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	if _, ok := program.Statements[1].(*ExprStmt).Expr.(*ArrayLiteral); !ok {
		t.Fatalf("expected array literal statement, got %T", program.Statements[1].(*ExprStmt).Expr)
	}

	program = mustParse(t, `
x = f
(1 + 2)
`)
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	assign := program.Statements[0].(*AssignStmt)
	if _, ok := assign.Value.(*Identifier); !ok {
		t.Fatalf("expected bare identifier value, got %T", assign.Value)
	}
}

func TestParseCallAndIndexOnSameLine(t *testing.T) {
	program := mustParse(t, `rows[0](1)`)
	call := program.Statements[0].(*ExprStmt).Expr.(*CallExpr)
	if _, ok := call.Callee.(*IndexExpr); !ok {
		t.Fatalf("expected index callee, got %T", call.Callee)
	}

	program = mustParse(t, "total = add(\n  1,\n  2\n)")
	call = program.Statements[0].(*AssignStmt).Value.(*CallExpr)
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(call.Args))
	}
}

func TestParseBareReturn(t *testing.T) {
	program := mustParse(t, `func f() { return }`)
	fn := program.Statements[0].(*FuncStmt)
	ret := fn.Body[0].(*ReturnStmt)
	if ret.Value != nil {
		t.Fatalf("expected bare return, got %T", ret.Value)
	}
}

func TestParseBreakOutsideLoop(t *testing.T) {
	for _, source := range []string{
		`break`,
		`continue`,
		`func f() { break }`,
		`while true { func g() { continue } }`,
	} {
		_, err := Parse(source)
		if err == nil {
			t.Fatalf("expected error for %q", source)
		}
		if !IsKind(err, ParseError) {
			t.Fatalf("expected ParseError for %q, got %v", source, err)
		}
	}
}

func TestParseBreakInsideLoop(t *testing.T) {
	mustParse(t, `while true { if done { break } continue }`)
	mustParse(t, `for i = 0, i < 3, i = i + 1 { break }`)
}

func TestParseErrors(t *testing.T) {
	for _, source := range []string{
		`func f( { }`,
		`struct Point { }`,
		`if x { y = 1`,
		`1 = 2`,
		`x +`,
		`p:1`,
	} {
		_, err := Parse(source)
		if err == nil {
			t.Fatalf("expected error for %q", source)
		}
		if !IsKind(err, ParseError) {
			t.Fatalf("expected ParseError for %q, got %v", source, err)
		}
	}
}

func TestParseAssignmentTargets(t *testing.T) {
	program := mustParse(t, `
x = 1
p.x = 2
items[0] += 3
`)
	if _, ok := program.Statements[0].(*AssignStmt).Target.(*Identifier); !ok {
		t.Fatalf("expected identifier target")
	}
	if _, ok := program.Statements[1].(*AssignStmt).Target.(*MemberExpr); !ok {
		t.Fatalf("expected member target")
	}
	indexAssign := program.Statements[2].(*AssignStmt)
	if _, ok := indexAssign.Target.(*IndexExpr); !ok {
		t.Fatalf("expected index target")
	}
	if indexAssign.Op != tokenPlusAssign {
		t.Fatalf("expected +=, got %s", indexAssign.Op)
	}
}
