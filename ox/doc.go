// Package ox implements the ox scripting language: a lexer, a recursive
// descent parser, and a tree-walking evaluator. The language supports:
//   - Number (float64), string, bool, nil, and array literals.
//   - Arithmetic (+, -, *, /, ^), comparison, equality, and logical operators.
//   - Variables with lexical scoping, if/else, while, and C-style for loops.
//   - Function definitions via `func name(args...) { ... }`.
//   - Structs with positional constructors, single inheritance via
//     `inherits`, static methods (`func Type.name`), and instance methods
//     (`func Type:name`) called with `value:name(...)`.
//   - Imports of embedded standard library modules and host-loaded modules.
//
// Comments beginning with `//` are ignored. The interpreter enforces a
// recursion limit and an optional step quota, and supports cancellation
// through context.Context.
package ox
