package parser

import (
	"github.com/phylospec/phylospec/internal/lexer"
)

// Node 所有 AST 节点的接口
type Node interface {
	TokenLiteral() string
	Span() lexer.Range
}

// Stmt 顶层语句
type Stmt interface {
	Node
	statementNode()
}

// Expr 值表达式
type Expr interface {
	Node
	expressionNode()
}

// TypeExpr 类型标注，如 Real 或 Vector<Real>
type TypeExpr interface {
	Node
	typeNode()
	TypeName() string
}

// Argument 调用参数，赋值参数或抽样参数
type Argument interface {
	Expr
	ArgName() string
	ArgValue() Expr
}

// AtomicType 没有类型参数的类型
type AtomicType struct {
	Token lexer.Token
	Range lexer.Range
	Name  string
}

func (t *AtomicType) TokenLiteral() string { return t.Token.Literal }
func (t *AtomicType) Span() lexer.Range    { return t.Range }
func (t *AtomicType) typeNode()            {}
func (t *AtomicType) TypeName() string     { return t.Name }

// GenericType 带类型参数的类型
type GenericType struct {
	Token lexer.Token
	Range lexer.Range
	Name  string
	Args  []TypeExpr
}

func (t *GenericType) TokenLiteral() string { return t.Token.Literal }
func (t *GenericType) Span() lexer.Range    { return t.Range }
func (t *GenericType) typeNode()            {}
func (t *GenericType) TypeName() string     { return t.Name }

// AssignmentStmt 赋值语句 `Type name = value`
type AssignmentStmt struct {
	Token lexer.Token
	Range lexer.Range
	Type  TypeExpr
	Name  string
	Value Expr
}

func (s *AssignmentStmt) TokenLiteral() string { return s.Token.Literal }
func (s *AssignmentStmt) Span() lexer.Range    { return s.Range }
func (s *AssignmentStmt) statementNode()       {}

// DrawStmt 抽样语句 `Type name ~ value`
type DrawStmt struct {
	Token lexer.Token
	Range lexer.Range
	Type  TypeExpr
	Name  string
	Value Expr
}

func (s *DrawStmt) TokenLiteral() string { return s.Token.Literal }
func (s *DrawStmt) Span() lexer.Range    { return s.Range }
func (s *DrawStmt) statementNode()       {}

// DecoratedStmt 带装饰器的语句
type DecoratedStmt struct {
	Token     lexer.Token // @
	Range     lexer.Range
	Decorator *Call
	Stmt      Stmt
}

func (s *DecoratedStmt) TokenLiteral() string { return s.Token.Literal }
func (s *DecoratedStmt) Span() lexer.Range    { return s.Range }
func (s *DecoratedStmt) statementNode()       {}

// ImportStmt 导入语句 `import a.b.c`
type ImportStmt struct {
	Token lexer.Token // import
	Range lexer.Range
	Path  []string
}

func (s *ImportStmt) TokenLiteral() string { return s.Token.Literal }
func (s *ImportStmt) Span() lexer.Range    { return s.Range }
func (s *ImportStmt) statementNode()       {}

// Literal 字面量，值为 string、int64、float64 或 bool
type Literal struct {
	Token lexer.Token
	Range lexer.Range
	Value any
}

func (e *Literal) TokenLiteral() string { return e.Token.Literal }
func (e *Literal) Span() lexer.Range    { return e.Range }
func (e *Literal) expressionNode()      {}

// Variable 变量引用
type Variable struct {
	Token lexer.Token
	Range lexer.Range
	Name  string
}

func (e *Variable) TokenLiteral() string { return e.Token.Literal }
func (e *Variable) Span() lexer.Range    { return e.Range }
func (e *Variable) expressionNode()      {}

// Unary 一元运算 `-x` 或 `!x`
type Unary struct {
	Token   lexer.Token
	Range   lexer.Range
	Op      lexer.TokenType
	Operand Expr
}

func (e *Unary) TokenLiteral() string { return e.Token.Literal }
func (e *Unary) Span() lexer.Range    { return e.Range }
func (e *Unary) expressionNode()      {}

// Binary 二元运算 `left op right`
type Binary struct {
Token lexer.Token // 运算符
	Range lexer.Range
	Op    lexer.TokenType
	Left  Expr
	Right Expr
}

func (e *Binary) TokenLiteral() string { return e.Token.Literal }
func (e *Binary) Span() lexer.Range    { return e.Range }
func (e *Binary) expressionNode()      {}

// Call 按名称调用生成器
type Call struct {
	Token lexer.Token
	Range lexer.Range
	Name  string
	Args  []Argument
}

func (e *Call) TokenLiteral() string { return e.Token.Literal }
func (e *Call) Span() lexer.Range    { return e.Range }
func (e *Call) expressionNode()      {}

// AssignedArgument 参数 `name = value`，Name 为空时只有 `value`
type AssignedArgument struct {
	Token lexer.Token
	Range lexer.Range
	Name  string
	Value Expr
}

func (e *AssignedArgument) TokenLiteral() string { return e.Token.Literal }
func (e *AssignedArgument) Span() lexer.Range    { return e.Range }
func (e *AssignedArgument) expressionNode()      {}
func (e *AssignedArgument) ArgName() string      { return e.Name }
func (e *AssignedArgument) ArgValue() Expr       { return e.Value }

// DrawnArgument 抽样参数 `name ~ value`
type DrawnArgument struct {
	Token lexer.Token
	Range lexer.Range
	Name  string
	Value Expr
}

func (e *DrawnArgument) TokenLiteral() string { return e.Token.Literal }
func (e *DrawnArgument) Span() lexer.Range    { return e.Range }
func (e *DrawnArgument) expressionNode()      {}
func (e *DrawnArgument) ArgName() string      { return e.Name }
func (e *DrawnArgument) ArgValue() Expr       { return e.Value }

// Grouping 括号表达式
type Grouping struct {
	Token lexer.Token
	Range lexer.Range
	Inner Expr
}

func (e *Grouping) TokenLiteral() string { return e.Token.Literal }
func (e *Grouping) Span() lexer.Range    { return e.Range }
func (e *Grouping) expressionNode()      {}

// ArrayLiteral 数组 `[a, b, c]`
type ArrayLiteral struct {
	Token    lexer.Token
	Range    lexer.Range
	Elements []Expr
}

func (e *ArrayLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *ArrayLiteral) Span() lexer.Range    { return e.Range }
func (e *ArrayLiteral) expressionNode()      {}

// ListComprehension 列表推导式 `[body for x in list]` 或 `[body for x, y in list]`
type ListComprehension struct {
	Token lexer.Token
	Range lexer.Range
	Body  Expr
	Vars  []string
	List  Expr
}

func (e *ListComprehension) TokenLiteral() string { return e.Token.Literal }
func (e *ListComprehension) Span() lexer.Range    { return e.Range }
func (e *ListComprehension) expressionNode()      {}

// PropertyGet 属性访问 `object.property`
type PropertyGet struct {
Token    lexer.Token // 属性名
	Range    lexer.Range
	Object   Expr
	Property string
}

func (e *PropertyGet) TokenLiteral() string { return e.Token.Literal }
func (e *PropertyGet) Span() lexer.Range    { return e.Range }
func (e *PropertyGet) expressionNode()      {}
