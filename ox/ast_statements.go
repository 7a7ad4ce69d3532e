package ox

type AssignStmt struct {
	Target   Expression
	Op       TokenType // tokenAssign or tokenPlusAssign
	Value    Expression
	position Position
}

func (s *AssignStmt) stmtNode()     {}
func (s *AssignStmt) Pos() Position { return s.position }

type ExprStmt struct {
	Expr     Expression
	position Position
}

func (s *ExprStmt) stmtNode()     {}
func (s *ExprStmt) Pos() Position { return s.position }

type IfStmt struct {
	Condition  Expression
	Consequent []Statement
	ElseIf     []*IfStmt
	Alternate  []Statement
	position   Position
}

func (s *IfStmt) stmtNode()     {}
func (s *IfStmt) Pos() Position { return s.position }

type WhileStmt struct {
	Condition Expression
	Body      []Statement
	position  Position
}

func (s *WhileStmt) stmtNode()     {}
func (s *WhileStmt) Pos() Position { return s.position }

// ForStmt is the C-style loop: the init assignment runs once in the loop
// scope, the post assignment runs after every iteration.
type ForStmt struct {
	Init      *AssignStmt
	Condition Expression
	Post      *AssignStmt
	Body      []Statement
	position  Position
}

func (s *ForStmt) stmtNode()     {}
func (s *ForStmt) Pos() Position { return s.position }

type ReturnStmt struct {
	Value    Expression // nil for a bare return
	position Position
}

func (s *ReturnStmt) stmtNode()     {}
func (s *ReturnStmt) Pos() Position { return s.position }

type BreakStmt struct {
	position Position
}

func (s *BreakStmt) stmtNode()     {}
func (s *BreakStmt) Pos() Position { return s.position }

type ContinueStmt struct {
	position Position
}

func (s *ContinueStmt) stmtNode()     {}
func (s *ContinueStmt) Pos() Position { return s.position }

// FuncKind distinguishes the three function-declaration header forms.
type FuncKind int

const (
	// FuncFree is a plain function: func name(params) { ... }
	FuncFree FuncKind = iota
	// FuncStatic is a static struct method: func Struct.name(params) { ... }
	FuncStatic
	// FuncInstance is an instance method: func Struct:name(params) { ... }
	// The first parameter receives the instance.
	FuncInstance
)

type FuncStmt struct {
	Kind     FuncKind
	Struct   string // receiver struct name for static/instance methods
	Name     string
	Params   []string
	Body     []Statement
	position Position
}

func (s *FuncStmt) stmtNode()     {}
func (s *FuncStmt) Pos() Position { return s.position }

type StructStmt struct {
	Name     string
	Parent   string // empty unless the declaration carries an inherits clause
	Fields   []string
	position Position
}

func (s *StructStmt) stmtNode()     {}
func (s *StructStmt) Pos() Position { return s.position }

type ImportStmt struct {
	Name     string
	position Position
}

func (s *ImportStmt) stmtNode()     {}
func (s *ImportStmt) Pos() Position { return s.position }
