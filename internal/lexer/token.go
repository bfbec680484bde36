package lexer

import "fmt"

// TokenType 词法单元类型
type TokenType int

const (
	// 特殊 token
	TOKEN_ILLEGAL TokenType = iota
	TOKEN_INVALID // 词法分析器已报告过的非法数字
	TOKEN_EOF
	TOKEN_EOL

	// 单字符 token
	TOKEN_LPAREN   // (
	TOKEN_RPAREN   // )
	TOKEN_LBRACKET // [
	TOKEN_RBRACKET // ]
	TOKEN_COMMA    // ,
	TOKEN_DOT      // .
	TOKEN_MINUS    // -
	TOKEN_PLUS     // +
	TOKEN_SLASH    // /
	TOKEN_STAR     // *
	TOKEN_TILDE    // ~
	TOKEN_AT       // @

	// 一到两个字符的 token
	TOKEN_BANG   // !
	TOKEN_NOT_EQ // !=
	TOKEN_ASSIGN // =
	TOKEN_EQ     // ==
	TOKEN_LT     // <
	TOKEN_LT_EQ  // <=
	TOKEN_GT     // >
	TOKEN_GT_EQ  // >=

	// 标识符和字面量
	TOKEN_IDENT
	TOKEN_STRING
	TOKEN_INT
	TOKEN_FLOAT

	// 关键字
	TOKEN_TRUE
	TOKEN_FALSE
	TOKEN_IMPORT
	TOKEN_FOR
	TOKEN_IN
)

// Range token 或节点在源码中的范围
// 行号从 1 开始，列是相对行首的字节偏移，EndCol 不包含在内
type Range struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// Cover 返回同时覆盖 r 和 o 的最小范围
func (r Range) Cover(o Range) Range {
	out := r
	if o.StartLine < out.StartLine || (o.StartLine == out.StartLine && o.StartCol < out.StartCol) {
		out.StartLine, out.StartCol = o.StartLine, o.StartCol
	}
	if o.EndLine > out.EndLine || (o.EndLine == out.EndLine && o.EndCol > out.EndCol) {
		out.EndLine, out.EndCol = o.EndLine, o.EndCol
	}
	return out
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.StartLine, r.StartCol, r.EndLine, r.EndCol)
}

// Token 词法单元
// Value 是解码后的字面量值：STRING 为 string，INT 为 int64，FLOAT 为 float64，其余为 nil
type Token struct {
	Type    TokenType
	Literal string
	Value   any
	Range   Range
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", TokenTypeName(t.Type), t.Literal, t.Range)
}

var keywords = map[string]TokenType{
	"true":   TOKEN_TRUE,
	"false":  TOKEN_FALSE,
	"import": TOKEN_IMPORT,
	"for":    TOKEN_FOR,
	"in":     TOKEN_IN,
}

// LookupIdent 查找关键字，不是关键字时返回 TOKEN_IDENT
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENT
}

var tokenNames = map[TokenType]string{
	TOKEN_ILLEGAL:  "ILLEGAL",
	TOKEN_INVALID:  "INVALID",
	TOKEN_EOF:      "EOF",
	TOKEN_EOL:      "EOL",
	TOKEN_LPAREN:   "(",
	TOKEN_RPAREN:   ")",
	TOKEN_LBRACKET: "[",
	TOKEN_RBRACKET: "]",
	TOKEN_COMMA:    ",",
	TOKEN_DOT:      ".",
	TOKEN_MINUS:    "-",
	TOKEN_PLUS:     "+",
	TOKEN_SLASH:    "/",
	TOKEN_STAR:     "*",
	TOKEN_TILDE:    "~",
	TOKEN_AT:       "@",
	TOKEN_BANG:     "!",
	TOKEN_NOT_EQ:   "!=",
	TOKEN_ASSIGN:   "=",
	TOKEN_EQ:       "==",
	TOKEN_LT:       "<",
	TOKEN_LT_EQ:    "<=",
	TOKEN_GT:       ">",
	TOKEN_GT_EQ:    ">=",
	TOKEN_IDENT:    "IDENT",
	TOKEN_STRING:   "STRING",
	TOKEN_INT:      "INT",
	TOKEN_FLOAT:    "FLOAT",
	TOKEN_TRUE:     "true",
	TOKEN_FALSE:    "false",
	TOKEN_IMPORT:   "import",
	TOKEN_FOR:      "for",
	TOKEN_IN:       "in",
}

// TokenTypeName 返回 token 类型的显示名称
func TokenTypeName(t TokenType) string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Comment 源码中的一条 // 注释
type Comment struct {
	Text     string // 包含开头的 //，不含行尾空白
	Range    Range
	Trailing bool // 同一行的注释之前还有其他 token
}
