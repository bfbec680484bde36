// Package lexer 将 PhyloSpec 源码切分为词法单元
package lexer

import (
	"strconv"
	"strings"

	"github.com/phylospec/phylospec/internal/i18n"
)

// ErrorHandler 接收词法错误
type ErrorHandler func(line int, msg string)

// Error 词法错误
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return i18n.T(i18n.ErrAtLine, e.Line, e.Msg)
}

// Lexer 词法分析器
type Lexer struct {
	input        string
	pos          int  // ch 的位置
	readPos      int  // 下一个字节的位置
	ch           byte // 当前字节，输入结束时为 0
	line         int
	lineStart    int  // 当前行首字节的位置
	lineHasToken bool // 当前行已产生过 token
	handler      ErrorHandler
	comments     []Comment
}

// New 创建词法分析器，handler 可以为 nil
func New(input string, handler ErrorHandler) *Lexer {
	l := &Lexer{
		input:   input,
		line:    1,
		handler: handler,
	}
	l.readChar()
	return l
}

// Tokenize 扫描全部输入，结果总以 TOKEN_EOF 结尾
func Tokenize(source string, handler ErrorHandler) []Token {
	tokens, _ := TokenizeWithComments(source, handler)
	return tokens
}

// TokenizeWithComments 扫描全部输入，同时返回源码中的注释
func TokenizeWithComments(source string, handler ErrorHandler) ([]Token, []Comment) {
	l := New(source, handler)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			return tokens, l.Comments()
		}
	}
}

// Comments 返回目前为止跳过的注释
func (l *Lexer) Comments() []Comment {
	return l.comments
}

// readChar 读取下一个字节
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

// peekChar 查看下一个字节但不移动位置
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// newline 记录 pos 之前刚消费了一个换行
func (l *Lexer) newline() {
	l.line++
	l.lineStart = l.pos
	l.lineHasToken = false
}

// skipLineBreak 消费 \n、\r\n 或单独的 \r
func (l *Lexer) skipLineBreak() {
	if l.ch == '\r' {
		l.readChar()
		if l.ch == '\n' && !l.atEnd() {
			l.readChar()
		}
	} else {
		l.readChar()
	}
}

func (l *Lexer) error(msg string) {
	if l.handler != nil {
		l.handler(l.line, msg)
	}
}

// NextToken 扫描下一个 token
func (l *Lexer) NextToken() Token {
	tok := l.next()
	if tok.Type != TOKEN_EOL && tok.Type != TOKEN_EOF {
		l.lineHasToken = true
	}
	return tok
}

func (l *Lexer) next() Token {
	for {
		l.skipWhitespace()

		start := l.pos
		line, col := l.line, l.pos-l.lineStart
		tok := func(t TokenType, value any) Token {
			return Token{
				Type:    t,
				Literal: l.input[start:l.pos],
				Value:   value,
				Range:   Range{StartLine: line, StartCol: col, EndLine: l.line, EndCol: l.pos - l.lineStart},
			}
		}

		if l.atEnd() {
			return tok(TOKEN_EOF, nil)
		}

		switch l.ch {
		case '\n', '\r':
			l.skipLineBreak()
			t := tok(TOKEN_EOL, nil)
			l.newline()
			return t
		case '(':
			l.readChar()
			return tok(TOKEN_LPAREN, nil)
		case ')':
			l.readChar()
			return tok(TOKEN_RPAREN, nil)
		case '[':
			l.readChar()
			return tok(TOKEN_LBRACKET, nil)
		case ']':
			l.readChar()
			return tok(TOKEN_RBRACKET, nil)
		case ',':
			l.readChar()
			return tok(TOKEN_COMMA, nil)
		case '.':
			l.readChar()
			return tok(TOKEN_DOT, nil)
		case '-':
			l.readChar()
			return tok(TOKEN_MINUS, nil)
		case '+':
			l.readChar()
			return tok(TOKEN_PLUS, nil)
		case '/':
			l.readChar()
			return tok(TOKEN_SLASH, nil)
		case '*':
			l.readChar()
			return tok(TOKEN_STAR, nil)
		case '~':
			l.readChar()
			return tok(TOKEN_TILDE, nil)
		case '@':
			l.readChar()
			return tok(TOKEN_AT, nil)
		case '!':
			return tok(l.either('=', TOKEN_NOT_EQ, TOKEN_BANG), nil)
		case '=':
			return tok(l.either('=', TOKEN_EQ, TOKEN_ASSIGN), nil)
		case '<':
			return tok(l.either('=', TOKEN_LT_EQ, TOKEN_LT), nil)
		case '>':
			return tok(l.either('=', TOKEN_GT_EQ, TOKEN_GT), nil)
		case '"':
			value, ok := l.readString()
			if !ok {
				// 已到输入末尾，不产生 token
				continue
			}
			return tok(TOKEN_STRING, value)
		}

		if isDigit(l.ch) {
			t, value := l.readNumber()
			return tok(t, value)
		}
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return tok(LookupIdent(ident), nil)
		}

		l.readChar()
		return tok(TOKEN_ILLEGAL, nil)
	}
}

// either 消费当前字节，若下一个字节是 next 则一并消费
func (l *Lexer) either(next byte, two, one TokenType) TokenType {
	l.readChar()
	if l.ch == next && !l.atEnd() {
		l.readChar()
		return two
	}
	return one
}

// skipWhitespace 跳过空白和注释，但不跳过换行
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch {
		case l.ch == ' ' || l.ch == '\t':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			l.readComment()
		default:
			return
		}
	}
}

// readComment 读取注释直到行尾并记录下来
func (l *Lexer) readComment() {
	start, col := l.pos, l.pos-l.lineStart
	for !l.atEnd() && l.ch != '\n' && l.ch != '\r' {
		l.readChar()
	}
	text := strings.TrimRight(l.input[start:l.pos], " \t")
	l.comments = append(l.comments, Comment{
		Text:     text,
		Range:    Range{StartLine: l.line, StartCol: col, EndLine: l.line, EndCol: col + len(text)},
		Trailing: l.lineHasToken,
	})
}

// readString 读取双引号字符串，字符串可以跨行
func (l *Lexer) readString() (string, bool) {
	l.readChar() // 开头的引号
	start := l.pos
	for !l.atEnd() && l.ch != '"' {
		if l.ch == '\n' || l.ch == '\r' {
			l.skipLineBreak()
			l.newline()
			continue
		}
		l.readChar()
	}
	if l.atEnd() {
		l.error(i18n.T(i18n.ErrUnterminatedString))
		return "", false
	}
	value := l.input[start:l.pos]
	l.readChar() // 结尾的引号
	return value, true
}

// readNumber 读取整数或小数
// 无法表示的数字已经通过 handler 报告，返回 TOKEN_INVALID
func (l *Lexer) readNumber() (TokenType, any) {
	start := l.pos
	for isDigit(l.ch) && !l.atEnd() {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) && !l.atEnd() {
			l.readChar()
		}
		value, err := strconv.ParseFloat(l.input[start:l.pos], 64)
		if err != nil {
			l.error(i18n.T(i18n.ErrInvalidNumber, l.input[start:l.pos]))
			return TOKEN_INVALID, nil
		}
		return TOKEN_FLOAT, value
	}
	value, err := strconv.ParseInt(l.input[start:l.pos], 10, 64)
	if err != nil {
		l.error(i18n.T(i18n.ErrInvalidNumber, l.input[start:l.pos]))
		return TOKEN_INVALID, nil
	}
	return TOKEN_INT, value
}

// readIdentifier 读取由字母、数字和下划线组成的标识符
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for !l.atEnd() && (isLetter(l.ch) || isDigit(l.ch)) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
