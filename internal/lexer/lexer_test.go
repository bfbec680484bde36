package lexer

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phylospec/phylospec/internal/i18n"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

func types(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func TestTokenTypes(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenType
	}{
		{"", []TokenType{TOKEN_EOF}},
		{"()[],.-+/*~@", []TokenType{
			TOKEN_LPAREN, TOKEN_RPAREN, TOKEN_LBRACKET, TOKEN_RBRACKET, TOKEN_COMMA, TOKEN_DOT,
			TOKEN_MINUS, TOKEN_PLUS, TOKEN_SLASH, TOKEN_STAR, TOKEN_TILDE, TOKEN_AT, TOKEN_EOF,
		}},
		{"! != = == < <= > >=", []TokenType{
			TOKEN_BANG, TOKEN_NOT_EQ, TOKEN_ASSIGN, TOKEN_EQ, TOKEN_LT, TOKEN_LT_EQ, TOKEN_GT, TOKEN_GT_EQ, TOKEN_EOF,
		}},
		{"true false import for in trueish", []TokenType{
			TOKEN_TRUE, TOKEN_FALSE, TOKEN_IMPORT, TOKEN_FOR, TOKEN_IN, TOKEN_IDENT, TOKEN_EOF,
		}},
		{"Real x ~ Normal(mean=0, sd=1.5)", []TokenType{
			TOKEN_IDENT, TOKEN_IDENT, TOKEN_TILDE, TOKEN_IDENT, TOKEN_LPAREN, TOKEN_IDENT, TOKEN_ASSIGN,
			TOKEN_INT, TOKEN_COMMA, TOKEN_IDENT, TOKEN_ASSIGN, TOKEN_FLOAT, TOKEN_RPAREN, TOKEN_EOF,
		}},
		{"Vector<Vector<Real>>", []TokenType{
			TOKEN_IDENT, TOKEN_LT, TOKEN_IDENT, TOKEN_LT, TOKEN_IDENT, TOKEN_GT, TOKEN_GT, TOKEN_EOF,
		}},
		{"a\nb\r\nc\rd", []TokenType{
			TOKEN_IDENT, TOKEN_EOL, TOKEN_IDENT, TOKEN_EOL, TOKEN_IDENT, TOKEN_EOL, TOKEN_IDENT, TOKEN_EOF,
		}},
		{"x // comment ( [\ny", []TokenType{TOKEN_IDENT, TOKEN_EOL, TOKEN_IDENT, TOKEN_EOF}},
		{"5.x", []TokenType{TOKEN_INT, TOKEN_DOT, TOKEN_IDENT, TOKEN_EOF}},
		{"5.", []TokenType{TOKEN_INT, TOKEN_DOT, TOKEN_EOF}},
		{"a $ b", []TokenType{TOKEN_IDENT, TOKEN_ILLEGAL, TOKEN_IDENT, TOKEN_EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Tokenize(tt.input, func(line int, msg string) {
				t.Errorf("unexpected error at line %d: %s", line, msg)
			})
			assert.Equal(t, tt.want, types(got))
		})
	}
}

func TestLiteralValues(t *testing.T) {
	tokens := Tokenize(`12 3.25 "hello world" 0`, nil)
	require.Len(t, tokens, 5)

	assert.Equal(t, int64(12), tokens[0].Value)
	assert.Equal(t, 3.25, tokens[1].Value)
	assert.Equal(t, "hello world", tokens[2].Value)
	assert.Equal(t, `"hello world"`, tokens[2].Literal)
	assert.Equal(t, int64(0), tokens[3].Value)
	assert.Nil(t, tokens[4].Value)
}

func TestRanges(t *testing.T) {
	tokens := Tokenize("Real x = 1\n  y", nil)
	require.Len(t, tokens, 7)

	assert.Equal(t, Range{StartLine: 1, StartCol: 0, EndLine: 1, EndCol: 4}, tokens[0].Range)
	assert.Equal(t, Range{StartLine: 1, StartCol: 5, EndLine: 1, EndCol: 6}, tokens[1].Range)
	assert.Equal(t, Range{StartLine: 1, StartCol: 9, EndLine: 1, EndCol: 10}, tokens[3].Range)
	assert.Equal(t, Range{StartLine: 1, StartCol: 10, EndLine: 1, EndCol: 11}, tokens[4].Range)
	assert.Equal(t, Range{StartLine: 2, StartCol: 2, EndLine: 2, EndCol: 3}, tokens[5].Range)
	assert.Equal(t, 2, tokens[6].Range.StartLine)
}

func TestMultiLineString(t *testing.T) {
	tokens := Tokenize("\"a\r\nb\nc\" x", nil)
	require.Len(t, tokens, 3)

	str := tokens[0]
	assert.Equal(t, TOKEN_STRING, str.Type)
	assert.Equal(t, "a\r\nb\nc", str.Value)
	assert.Equal(t, 1, str.Range.StartLine)
	assert.Equal(t, 3, str.Range.EndLine)
	assert.Equal(t, 2, str.Range.EndCol)

	assert.Equal(t, Range{StartLine: 3, StartCol: 3, EndLine: 3, EndCol: 4}, tokens[1].Range)
}

func TestUnterminatedString(t *testing.T) {
	var errs []Error
	tokens := Tokenize("x = 1\ny = \"abc\ndef", func(line int, msg string) {
		errs = append(errs, Error{Line: line, Msg: msg})
	})

	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Line)
	assert.Equal(t, "Unterminated string.", errs[0].Msg)
	assert.Equal(t, []TokenType{
		TOKEN_IDENT, TOKEN_ASSIGN, TOKEN_INT, TOKEN_EOL, TOKEN_IDENT, TOKEN_ASSIGN, TOKEN_EOF,
	}, types(tokens))
}

func TestIntegerOverflow(t *testing.T) {
	var msgs []string
	tokens := Tokenize("99999999999999999999", func(line int, msg string) {
		msgs = append(msgs, msg)
	})
	require.Len(t, msgs, 1)
	assert.Equal(t, "Invalid number '99999999999999999999'.", msgs[0])
	assert.Equal(t, TOKEN_INVALID, tokens[0].Type)
	assert.Equal(t, "99999999999999999999", tokens[0].Literal)
}

func TestComments(t *testing.T) {
	tokens, comments := TokenizeWithComments("// header\nReal x = 1 // trailing  \n\n  // own line\n", nil)

	assert.Equal(t, []TokenType{
		TOKEN_EOL, TOKEN_IDENT, TOKEN_IDENT, TOKEN_ASSIGN, TOKEN_INT, TOKEN_EOL, TOKEN_EOL, TOKEN_EOL, TOKEN_EOF,
	}, types(tokens))
	assert.Equal(t, []Comment{
		{Text: "// header", Range: Range{StartLine: 1, StartCol: 0, EndLine: 1, EndCol: 9}},
		{Text: "// trailing", Range: Range{StartLine: 2, StartCol: 11, EndLine: 2, EndCol: 22}, Trailing: true},
		{Text: "// own line", Range: Range{StartLine: 4, StartCol: 2, EndLine: 4, EndCol: 13}},
	}, comments)
}

func TestCommentAfterMultiLineString(t *testing.T) {
	_, comments := TokenizeWithComments("String s = \"a\nb\" // note\n", nil)
	require.Len(t, comments, 1)
	assert.True(t, comments[0].Trailing)
	assert.Equal(t, 2, comments[0].Range.StartLine)
}

func TestLookupIdent(t *testing.T) {
	assert.Equal(t, TOKEN_IMPORT, LookupIdent("import"))
	assert.Equal(t, TOKEN_IDENT, LookupIdent("Import"))
	assert.Equal(t, "==", TokenTypeName(TOKEN_EQ))
}

func TestRangeCover(t *testing.T) {
	a := Range{StartLine: 1, StartCol: 4, EndLine: 1, EndCol: 6}
	b := Range{StartLine: 2, StartCol: 0, EndLine: 2, EndCol: 3}
	assert.Equal(t, Range{StartLine: 1, StartCol: 4, EndLine: 2, EndCol: 3}, a.Cover(b))
	assert.Equal(t, a.Cover(b), b.Cover(a))
}
