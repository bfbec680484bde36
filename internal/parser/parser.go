// Package parser 从 token 构建 PhyloSpec 语法树
package parser

import (
	"fmt"

	"github.com/phylospec/phylospec/internal/i18n"
	"github.com/phylospec/phylospec/internal/lexer"
)

// ErrorHandler 接收语法错误
type ErrorHandler func(tok lexer.Token, msg string)

// Error 定位到 token 的词法或语法错误
type Error struct {
	Token lexer.Token
	Msg   string
}

func (e *Error) Error() string {
	return i18n.T(i18n.ErrGeneric, e.Token.Range.StartLine, e.Token.Range.StartCol+1, e.Msg)
}

// Parser 基于 token 切片的递归下降解析器
type Parser struct {
	tokens       []lexer.Token
	current      int
	skipNewlines bool // 在 () 和 [] 内为 true
	handler      ErrorHandler
}

// New 创建解析器，handler 可以为 nil
func New(tokens []lexer.Token, handler ErrorHandler) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != lexer.TOKEN_EOF {
		eof := lexer.Token{Type: lexer.TOKEN_EOF}
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1].Range
			eof.Range = lexer.Range{StartLine: last.EndLine, StartCol: last.EndCol, EndLine: last.EndLine, EndCol: last.EndCol}
		}
		tokens = append(tokens[:len(tokens):len(tokens)], eof)
	}
	return &Parser{tokens: tokens, handler: handler}
}

// Parse 解析整个文档
// 解析失败的语句通过 handler 报告，不出现在结果中
func Parse(tokens []lexer.Token, handler ErrorHandler) []Stmt {
	return New(tokens, handler).ParseProgram()
}

// Document 解析后的脚本及其注释
type Document struct {
	Stmts    []Stmt
	Comments []lexer.Comment
}

// ParseSource 词法分析并解析 src，收集所有错误
func ParseSource(src string) ([]Stmt, []*Error) {
	doc, errs := ParseDocument(src)
	return doc.Stmts, errs
}

// ParseDocument 与 ParseSource 相同，但保留注释供 PrintDocument 使用
func ParseDocument(src string) (*Document, []*Error) {
	var errs []*Error
	tokens, comments := lexer.TokenizeWithComments(src, func(line int, msg string) {
		errs = append(errs, &Error{
			Token: lexer.Token{Type: lexer.TOKEN_ILLEGAL, Range: lexer.Range{StartLine: line, EndLine: line}},
			Msg:   msg,
		})
	})
	stmts := Parse(tokens, func(tok lexer.Token, msg string) {
		errs = append(errs, &Error{Token: tok, Msg: msg})
	})
	return &Document{Stmts: stmts, Comments: comments}, errs
}

// ParseTypeString 解析类型字符串，如 "Vector<Pair<T, Real>>"
func ParseTypeString(s string) (t TypeExpr, err error) {
	var lexErr error
	tokens := lexer.Tokenize(s, func(line int, msg string) {
		if lexErr == nil {
			lexErr = &lexer.Error{Line: line, Msg: msg}
		}
	})
	if lexErr != nil {
		return nil, lexErr
	}
	p := New(tokens, nil)
	err = p.guard(func() {
		t = p.parseType()
		if !p.isAtEnd() {
			p.error(p.peek(), i18n.T(i18n.ErrTrailingTypeInput, s))
		}
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ParseProgram 解析语句直到 EOF
func (p *Parser) ParseProgram() []Stmt {
	var stmts []Stmt
	p.skipEOLs()
	for !p.isAtEnd() {
		start := p.current
		var stmt Stmt
		err := p.guard(func() {
			stmt = p.parseDecorated()
			if !p.isAtEnd() {
				p.consume(lexer.TOKEN_EOL, i18n.T(i18n.ErrStatementNotTerminated))
			}
		})
		if err != nil {
			p.report(err)
			p.synchronize(start)
			continue
		}
		stmts = append(stmts, stmt)
		p.skipEOLs()
	}
	return stmts
}

// guard 执行 fn，把其中抛出的语法错误转换为返回值
func (p *Parser) guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			p.skipNewlines = false
			err = perr
		}
	}()
	fn()
	return nil
}

func (p *Parser) report(err error) {
	if p.handler == nil {
		return
	}
	// 词法分析器已报告过的错误不再重复报告
	if perr, ok := err.(*Error); ok && perr.Msg != "" {
		p.handler(perr.Token, perr.Msg)
	}
}

// synchronize 跳到下一个能完整解析出语句的行
// 从失败语句的第一个 token 重新扫描，避免括号内出错的语句吞掉后面的行
func (p *Parser) synchronize(start int) {
	p.current = start
	p.skipNewlines = false
	for {
		for !p.isAtEnd() && !p.check(lexer.TOKEN_EOL) {
			p.current++
		}
		p.skipEOLs()
		if p.isAtEnd() {
			return
		}
		save := p.current
		err := p.guard(func() { p.parseDecorated() })
		p.current = save
		if err == nil {
			return
		}
	}
}

// ---- token 辅助方法 ----

func (p *Parser) peek() lexer.Token {
	if p.skipNewlines {
		for p.tokens[p.current].Type == lexer.TOKEN_EOL {
			p.current++
		}
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.TOKEN_EOF
}

func (p *Parser) check(t lexer.TokenType) bool {
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if tok.Type != lexer.TOKEN_EOF {
		p.current++
	}
	return tok
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(t lexer.TokenType, msg string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	p.error(p.peek(), msg)
	return lexer.Token{}
}

func (p *Parser) skipEOLs() {
	for p.tokens[p.current].Type == lexer.TOKEN_EOL {
		p.current++
	}
}

// error 中止当前语句
func (p *Parser) error(tok lexer.Token, msg string) {
	switch tok.Type {
	case lexer.TOKEN_ILLEGAL:
		msg = i18n.T(i18n.ErrUnexpectedCharacter, tok.Literal)
	case lexer.TOKEN_INVALID:
		msg = ""
	}
	panic(&Error{Token: tok, Msg: msg})
}

// withNewlines 在忽略换行的模式下执行 fn
func (p *Parser) withNewlines(fn func()) {
	saved := p.skipNewlines
	p.skipNewlines = true
	fn()
	p.skipNewlines = saved
}

// ---- 语句 ----

func (p *Parser) parseDecorated() Stmt {
	if p.match(lexer.TOKEN_AT) {
		at := p.previous()
		start := p.peek()
		expr := p.parseCall()
		call, ok := expr.(*Call)
		if !ok {
			p.error(start, i18n.T(i18n.ErrDecoratorNotCall))
		}
		p.skipEOLs()
		inner := p.parseDecorated()
		return &DecoratedStmt{Token: at, Range: at.Range.Cover(inner.Span()), Decorator: call, Stmt: inner}
	}
	return p.parseStatement()
}

func (p *Parser) parseStatement() Stmt {
	if p.match(lexer.TOKEN_IMPORT) {
		return p.parseImport()
	}

	typ := p.parseType()
	name := p.consume(lexer.TOKEN_IDENT, i18n.T(i18n.ErrInvalidVariableName))

	switch {
	case p.match(lexer.TOKEN_ASSIGN):
		value := p.parseExpression()
		return &AssignmentStmt{Token: name, Range: typ.Span().Cover(value.Span()), Type: typ, Name: name.Literal, Value: value}
	case p.match(lexer.TOKEN_TILDE):
		value := p.parseExpression()
		return &DrawStmt{Token: name, Range: typ.Span().Cover(value.Span()), Type: typ, Name: name.Literal, Value: value}
	}
	p.error(p.peek(), i18n.T(i18n.ErrExpectAssignOrDraw))
	return nil
}

func (p *Parser) parseImport() Stmt {
	tok := p.previous()
	first := p.consume(lexer.TOKEN_IDENT, i18n.T(i18n.ErrImportPathMissing))
	path := []string{first.Literal}
	last := first
	for p.match(lexer.TOKEN_DOT) {
		last = p.consume(lexer.TOKEN_IDENT, i18n.T(i18n.ErrInvalidImportPath))
		path = append(path, last.Literal)
	}
	return &ImportStmt{Token: tok, Range: tok.Range.Cover(last.Range), Path: path}
}

func (p *Parser) parseType() TypeExpr {
	name := p.consume(lexer.TOKEN_IDENT, i18n.T(i18n.ErrInvalidVariableType))
	if !p.match(lexer.TOKEN_LT) {
		return &AtomicType{Token: name, Range: name.Range, Name: name.Literal}
	}
	var args []TypeExpr
	for {
		args = append(args, p.parseType())
		if !p.match(lexer.TOKEN_COMMA) {
			break
		}
	}
	closing := p.consume(lexer.TOKEN_GT, i18n.T(i18n.ErrGenericNotClosed))
	return &GenericType{Token: name, Range: name.Range.Cover(closing.Range), Name: name.Literal, Args: args}
}

// ---- 表达式 ----

func (p *Parser) parseExpression() Expr {
	return p.parseEquality()
}

func (p *Parser) parseEquality() Expr {
	return p.parseBinary(p.parseComparison, lexer.TOKEN_EQ, lexer.TOKEN_NOT_EQ)
}

func (p *Parser) parseComparison() Expr {
	return p.parseBinary(p.parseTerm, lexer.TOKEN_LT, lexer.TOKEN_LT_EQ, lexer.TOKEN_GT, lexer.TOKEN_GT_EQ)
}

func (p *Parser) parseTerm() Expr {
	return p.parseBinary(p.parseFactor, lexer.TOKEN_PLUS, lexer.TOKEN_MINUS)
}

func (p *Parser) parseFactor() Expr {
	return p.parseBinary(p.parseUnary, lexer.TOKEN_STAR, lexer.TOKEN_SLASH)
}

// parseBinary 解析由 ops 连接的左结合运算链
func (p *Parser) parseBinary(next func() Expr, ops ...lexer.TokenType) Expr {
	left := next()
	for p.match(ops...) {
		op := p.previous()
		right := next()
		left = &Binary{Token: op, Range: left.Span().Cover(right.Span()), Op: op.Type, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() Expr {
	if p.match(lexer.TOKEN_BANG, lexer.TOKEN_MINUS) {
		op := p.previous()
		operand := p.parseUnary()
		return &Unary{Token: op, Range: op.Range.Cover(operand.Span()), Op: op.Type, Operand: operand}
	}
	return p.parseCall()
}

func (p *Parser) parseCall() Expr {
	expr := p.parsePrimary()

	if v, ok := expr.(*Variable); ok && p.check(lexer.TOKEN_LPAREN) {
		p.advance()
		var args []Argument
		var closing lexer.Token
		p.withNewlines(func() {
			args = p.parseArguments()
			closing = p.consume(lexer.TOKEN_RPAREN, i18n.T(i18n.ErrExpectRParenArgs))
		})
		expr = &Call{Token: v.Token, Range: v.Range.Cover(closing.Range), Name: v.Name, Args: args}
	}

	for p.match(lexer.TOKEN_DOT) {
		name := p.consume(lexer.TOKEN_IDENT, i18n.T(i18n.ErrExpectPropertyName))
		expr = &PropertyGet{Token: name, Range: expr.Span().Cover(name.Range), Object: expr, Property: name.Literal}
	}
	return expr
}

func (p *Parser) parseArguments() []Argument {
	var args []Argument
	if p.check(lexer.TOKEN_RPAREN) {
		return args
	}
	for {
		args = append(args, p.parseArgument())
		if !p.match(lexer.TOKEN_COMMA) || p.check(lexer.TOKEN_RPAREN) {
			break
		}
	}
	if len(args) > 1 {
		for _, arg := range args {
			if a, ok := arg.(*AssignedArgument); ok && a.Name == "" {
				p.error(a.Token, i18n.T(i18n.ErrUnnamedArgument))
			}
		}
	}
	return args
}

func (p *Parser) parseArgument() Argument {
	start := p.peek()
	expr := p.parseExpression()
	if v, ok := expr.(*Variable); ok {
		switch {
		case p.match(lexer.TOKEN_ASSIGN):
			value := p.parseExpression()
			return &AssignedArgument{Token: v.Token, Range: v.Range.Cover(value.Span()), Name: v.Name, Value: value}
		case p.match(lexer.TOKEN_TILDE):
			value := p.parseExpression()
			return &DrawnArgument{Token: v.Token, Range: v.Range.Cover(value.Span()), Name: v.Name, Value: value}
		}
	}
	return &AssignedArgument{Token: start, Range: expr.Span(), Value: expr}
}

func (p *Parser) parsePrimary() Expr {
	tok := p.peek()
	switch tok.Type {
	case lexer.TOKEN_TRUE, lexer.TOKEN_FALSE:
		p.advance()
		return &Literal{Token: tok, Range: tok.Range, Value: tok.Type == lexer.TOKEN_TRUE}
	case lexer.TOKEN_INT, lexer.TOKEN_FLOAT, lexer.TOKEN_STRING:
		p.advance()
		return &Literal{Token: tok, Range: tok.Range, Value: tok.Value}
	case lexer.TOKEN_IDENT:
		p.advance()
		return &Variable{Token: tok, Range: tok.Range, Name: tok.Literal}
	case lexer.TOKEN_LPAREN:
		p.advance()
		var inner Expr
		var closing lexer.Token
		p.withNewlines(func() {
			inner = p.parseExpression()
			closing = p.consume(lexer.TOKEN_RPAREN, i18n.T(i18n.ErrExpectRParenExpr))
		})
		return &Grouping{Token: tok, Range: tok.Range.Cover(closing.Range), Inner: inner}
	case lexer.TOKEN_LBRACKET:
		p.advance()
		var expr Expr
		p.withNewlines(func() { expr = p.parseBracketed(tok) })
		return expr
	}
	p.error(tok, i18n.T(i18n.ErrExpectExpression))
	return nil
}

// parseBracketed 解析 '[' 之后的数组或列表推导式
func (p *Parser) parseBracketed(open lexer.Token) Expr {
	if p.check(lexer.TOKEN_RBRACKET) {
		closing := p.advance()
		return &ArrayLiteral{Token: open, Range: open.Range.Cover(closing.Range)}
	}

	first := p.parseExpression()

	if p.match(lexer.TOKEN_FOR) {
		vars := []string{p.consume(lexer.TOKEN_IDENT, i18n.T(i18n.ErrExpectLoopVariable)).Literal}
		if p.match(lexer.TOKEN_COMMA) {
			vars = append(vars, p.consume(lexer.TOKEN_IDENT, i18n.T(i18n.ErrExpectLoopVariable)).Literal)
		}
		p.consume(lexer.TOKEN_IN, i18n.T(i18n.ErrExpectIn))
		list := p.parseExpression()
		closing := p.consume(lexer.TOKEN_RBRACKET, i18n.T(i18n.ErrExpectRBracketComprehension))
		return &ListComprehension{Token: open, Range: open.Range.Cover(closing.Range), Body: first, Vars: vars, List: list}
	}

	elements := []Expr{first}
	for p.match(lexer.TOKEN_COMMA) {
		if p.check(lexer.TOKEN_RBRACKET) {
			break
		}
		elements = append(elements, p.parseExpression())
	}
	closing := p.consume(lexer.TOKEN_RBRACKET, i18n.T(i18n.ErrExpectRBracketArray))
	return &ArrayLiteral{Token: open, Range: open.Range.Cover(closing.Range), Elements: elements}
}

// FormatErrors 每行输出一个错误
func FormatErrors(errs []*Error) string {
	out := ""
	for _, err := range errs {
		out += fmt.Sprintln(err.Error())
	}
	return out
}
