package parser

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phylospec/phylospec/internal/i18n"
	"github.com/phylospec/phylospec/internal/lexer"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

func mustParse(t *testing.T, src string) []Stmt {
	t.Helper()
	stmts, errs := ParseSource(src)
	require.Empty(t, errs, "unexpected errors: %s", FormatErrors(errs))
	return stmts
}

func parseErrors(src string) ([]Stmt, []*Error) {
	return ParseSource(src)
}

func TestAssignmentAndDraw(t *testing.T) {
	stmts := mustParse(t, "Real x = 1\nReal y ~ Normal(mean=0, sd=1)\n")
	require.Len(t, stmts, 2)

	assign, ok := stmts[0].(*AssignmentStmt)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
	assert.Equal(t, "Real", assign.Type.TypeName())
	assert.Equal(t, int64(1), assign.Value.(*Literal).Value)

	draw, ok := stmts[1].(*DrawStmt)
	require.True(t, ok)
	call := draw.Value.(*Call)
	assert.Equal(t, "Normal", call.Name)
	require.Len(t, call.Args, 2)
	assert.Equal(t, "mean", call.Args[0].ArgName())
	assert.Equal(t, "sd", call.Args[1].ArgName())
}

func TestGenericTypes(t *testing.T) {
	stmts := mustParse(t, "Vector<Pair<Real, Vector<Integer>>> v = x")
	typ, ok := stmts[0].(*AssignmentStmt).Type.(*GenericType)
	require.True(t, ok)
	assert.Equal(t, "Vector<Pair<Real, Vector<Integer>>>", PrintType(typ))
	assert.Equal(t, "Pair", typ.Args[0].TypeName())
}

func TestImport(t *testing.T) {
	stmts := mustParse(t, "import revbayes.core.distributions")
	imp, ok := stmts[0].(*ImportStmt)
	require.True(t, ok)
	assert.Equal(t, []string{"revbayes", "core", "distributions"}, imp.Path)
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want Expr
	}{
		{
			"1 + 2 * 3",
			&Binary{Op: lexer.TOKEN_PLUS, Left: lit(1), Right: &Binary{Op: lexer.TOKEN_STAR, Left: lit(2), Right: lit(3)}},
		},
		{
			"1 - 2 - 3",
			&Binary{Op: lexer.TOKEN_MINUS, Left: &Binary{Op: lexer.TOKEN_MINUS, Left: lit(1), Right: lit(2)}, Right: lit(3)},
		},
		{
			"a < b == true",
			&Binary{Op: lexer.TOKEN_EQ, Left: &Binary{Op: lexer.TOKEN_LT, Left: v("a"), Right: v("b")}, Right: &Literal{Value: true}},
		},
		{
			"-a * !b",
			&Binary{Op: lexer.TOKEN_STAR, Left: &Unary{Op: lexer.TOKEN_MINUS, Operand: v("a")}, Right: &Unary{Op: lexer.TOKEN_BANG, Operand: v("b")}},
		},
		{
			"(1 + 2) / 3.5",
			&Binary{Op: lexer.TOKEN_SLASH, Left: &Grouping{Inner: &Binary{Op: lexer.TOKEN_PLUS, Left: lit(1), Right: lit(2)}}, Right: &Literal{Value: 3.5}},
		},
		{
			"f(x).a.b",
			&PropertyGet{Property: "b", Object: &PropertyGet{Property: "a", Object: &Call{Name: "f", Args: []Argument{&AssignedArgument{Value: v("x")}}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			stmts := mustParse(t, "Real r = "+tt.src)
			got := stmts[0].(*AssignmentStmt).Value
			assert.True(t, Equal(tt.want, got), "got %s", PrintExpr(got))
		})
	}
}

func lit(n int64) *Literal    { return &Literal{Value: n} }
func v(name string) *Variable { return &Variable{Name: name} }

func TestNewlinesInsideBrackets(t *testing.T) {
	stmts := mustParse(t, "Real x ~ Normal(\n  mean = 0,\n  sd = 1,\n)\nVector<Real> v = [\n 1,\n 2,\n]\n")
	require.Len(t, stmts, 2)
	assert.Len(t, stmts[0].(*DrawStmt).Value.(*Call).Args, 2)
	assert.Len(t, stmts[1].(*AssignmentStmt).Value.(*ArrayLiteral).Elements, 2)
}

func TestArguments(t *testing.T) {
	stmts := mustParse(t, "Real x = f(5)\nReal y = f(rate ~ Exponential(1))\nReal z = f()")
	single := stmts[0].(*AssignmentStmt).Value.(*Call).Args[0]
	assert.Equal(t, "", single.ArgName())

	drawn, ok := stmts[1].(*AssignmentStmt).Value.(*Call).Args[0].(*DrawnArgument)
	require.True(t, ok)
	assert.Equal(t, "rate", drawn.Name)

	assert.Empty(t, stmts[2].(*AssignmentStmt).Value.(*Call).Args)
}

func TestUnnamedArgumentOnlyWhenSingle(t *testing.T) {
	_, errs := parseErrors("Real x = f(1, b = 2)")
	require.Len(t, errs, 1)
	assert.Equal(t, "Arguments can only be omitted when there is only one argument.", errs[0].Msg)
}

func TestDecorators(t *testing.T) {
	stmts := mustParse(t, "@observed(data=d)\n@fixed()\nReal x ~ Normal(mean=0, sd=1)")
	require.Len(t, stmts, 1)
	outer, ok := stmts[0].(*DecoratedStmt)
	require.True(t, ok)
	assert.Equal(t, "observed", outer.Decorator.Name)
	inner, ok := outer.Stmt.(*DecoratedStmt)
	require.True(t, ok)
	assert.Equal(t, "fixed", inner.Decorator.Name)
	_, ok = inner.Stmt.(*DrawStmt)
	assert.True(t, ok)

	_, errs := parseErrors("@observed\nReal x = 1")
	require.Len(t, errs, 1)
	assert.Equal(t, "Decorators can only be function calls.", errs[0].Msg)
}

func TestListComprehension(t *testing.T) {
	stmts := mustParse(t, "Vector<Real> v = [x * 2 for x in xs]\nVector<Real> w = [a + b for a, b in zip(xs, ys)]")
	lc := stmts[0].(*AssignmentStmt).Value.(*ListComprehension)
	assert.Equal(t, []string{"x"}, lc.Vars)
	assert.Equal(t, "xs", lc.List.(*Variable).Name)

	lc2 := stmts[1].(*AssignmentStmt).Value.(*ListComprehension)
	assert.Equal(t, []string{"a", "b"}, lc2.Vars)
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		src string
		msg string
	}{
		{"Real x 5", "Expect assignment or draw."},
		{"Real = 5", "Invalid variable name."},
		{"5 x = 5", "Invalid variable type."},
		{"Vector<Real x = 1", "Generic type must be closed with a '>'."},
		{"Real x = 1 2", "Statement has to be terminated by a line break."},
		{"Real x = f(a = 1", "Expect ')' after arguments."},
		{"Real x = (1 + 2", "Expect ')' after expression."},
		{"Real x = a.", "Expect property name after '.'."},
		{"Real x = ", "Expect expression."},
		{"Real x = $", "Unexpected character '$'."},
		{"import", "Import path must be provided."},
		{"import a.", "Invalid import path."},
		{"Vector<Real> v = [1, 2", "Expect ']' after array elements."},
		{"Vector<Real> v = [x for in xs]", "Expect variable name after 'for'."},
		{"Integer y = 99999999999999999999", "Invalid number '99999999999999999999'."},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			stmts, errs := parseErrors(tt.src)
			assert.Empty(t, stmts)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.msg, errs[0].Msg)
		})
	}
}

func TestErrorRecovery(t *testing.T) {
	tests := []string{
		"Real a = 1\nReal b = * 2\nReal c = 3\n",
		"Real a = 1\nReal b = (\nReal c = 3\n",
		"Real a = 1\n\nReal b = f(x = ,\n   y = 2)\n\nReal c = 3",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			stmts, errs := parseErrors(src)
			require.Len(t, errs, 1, FormatErrors(errs))
			require.Len(t, stmts, 2)
			assert.Equal(t, "a", stmts[0].(*AssignmentStmt).Name)
			assert.Equal(t, "c", stmts[1].(*AssignmentStmt).Name)
		})
	}
}

func TestInvalidNumberReportedOnce(t *testing.T) {
	stmts, errs := parseErrors("Integer y = 99999999999999999999\nReal c = 3\n")
	require.Len(t, errs, 1, FormatErrors(errs))
	assert.Equal(t, "line 1:1: Invalid number '99999999999999999999'.", errs[0].Error())
	require.Len(t, stmts, 1)
	assert.Equal(t, "c", stmts[0].(*AssignmentStmt).Name)
}

func TestErrorPosition(t *testing.T) {
	_, errs := parseErrors("Real a = 1\nReal b = * 2")
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Token.Range.StartLine)
	assert.Equal(t, 9, errs[0].Token.Range.StartCol)
	assert.Equal(t, "line 2:10: Expect expression.", errs[0].Error())
}

func TestSpans(t *testing.T) {
	stmts := mustParse(t, "Real x = f(\n  a = 1\n)")
	stmt := stmts[0].(*AssignmentStmt)
	assert.Equal(t, lexer.Range{StartLine: 1, StartCol: 0, EndLine: 3, EndCol: 1}, stmt.Span())
	arg := stmt.Value.(*Call).Args[0]
	assert.Equal(t, lexer.Range{StartLine: 2, StartCol: 2, EndLine: 2, EndCol: 7}, arg.Span())
}

func TestParseTypeString(t *testing.T) {
	typ, err := ParseTypeString("Vector<Pair<T,Real>>")
	require.NoError(t, err)
	assert.Equal(t, "Vector<Pair<T, Real>>", PrintType(typ))

	for _, bad := range []string{"", "Vector<", "Real Real", "Vector<Real>>", "\"Real"} {
		_, err := ParseTypeString(bad)
		assert.Error(t, err, bad)
	}
}

func TestInspect(t *testing.T) {
	stmts := mustParse(t, "Real x = f(a = 1 + y, b ~ D(2))")
	var names []string
	Inspect(stmts[0], func(n Node) bool {
		if v, ok := n.(*Variable); ok {
			names = append(names, v.Name)
		}
		_, isCall := n.(*Call)
		return !isCall || n.(*Call).Name != "D"
	})
	assert.Equal(t, []string{"y"}, names)
}
