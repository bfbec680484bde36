package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roundTripSource = `import phylospec.core

Real mu ~ Normal(mean=0, sd=1.0)
PositiveReal sigma ~ LogNormal(meanlog = -1, sdlog = (2 + 3) * 0.5)
@observed(data="alignment.nex")
@fixed()
Vector<Real> xs ~ iid(
    base = Normal(mean = mu, sd = sigma),
    n = 10,
)
Simplex freqs = [0.25, 0.25, 0.25, 0.25,]
Vector<Real> doubled = [x * 2 for x in xs]
Vector<Real> sums = [a + b for a, b in zip(first = xs, second = xs)]
Boolean flag = !(mu < 0) == false
String name = "multi
line"
Real len = xs.length
Real neg = - -mu
Real r = f(x ~ Exponential(rate = 1))
`

func TestRoundTrip(t *testing.T) {
	stmts := mustParse(t, roundTripSource)
	printed := Print(stmts)

	again := mustParse(t, printed)
	require.True(t, EqualStmts(stmts, again), "printed:\n%s", printed)

	// 重复输出结果不变
	assert.Equal(t, printed, Print(again))
}

func TestPrintCanonical(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"Real  x=1", "Real x = 1\n"},
		{"Real x ~ Normal( mean=0 ,sd = 1 )", "Real x ~ Normal(mean = 0, sd = 1)\n"},
		{"Vector<Real> v=[1,2,]", "Vector<Real> v = [1, 2]\n"},
		{"Real x = 2.0", "Real x = 2.0\n"},
		{"Real x = 1\n\n\nReal y = 2", "Real x = 1\n\nReal y = 2\n"},
		{"@a(x=1) Real x = 1", "@a(x = 1)\nReal x = 1\n"},
		{"import a.b", "import a.b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, Print(mustParse(t, tt.src)))
		})
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "1.0", FormatValue(1.0))
	assert.Equal(t, "0.125", FormatValue(0.125))
	assert.Equal(t, "-3", FormatValue(int64(-3)))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, `"x"`, FormatValue("x"))
}

func TestPrintComments(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{
			"// header comment\nReal x = 1 // trailing\n",
			"// header comment\nReal x = 1 // trailing\n",
		},
		{
			"// model\n\nReal  x=1   // one\n\n// second\nReal y = f(\n  a = 1, // inline\n  b = 2\n)\n// end\n",
			"// model\n\nReal x = 1 // one\n\n// second\nReal y = f(a = 1, b = 2) // inline\n// end\n",
		},
		{
			"@fixed() // why\n// about x\nReal x = 1\n",
			"// about x\n@fixed()\nReal x = 1 // why\n",
		},
		{"// only a comment", "// only a comment\n"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			doc, errs := ParseDocument(tt.src)
			require.Empty(t, errs, FormatErrors(errs))
			printed := PrintDocument(doc)
			assert.Equal(t, tt.want, printed)

			again, errs := ParseDocument(printed)
			require.Empty(t, errs)
			assert.Equal(t, printed, PrintDocument(again))
		})
	}
}

func TestPrintIgnoresComments(t *testing.T) {
	doc, errs := ParseDocument("Real x = 1 // a\nReal y = 2\n")
	require.Empty(t, errs)
	assert.Equal(t, "Real x = 1\nReal y = 2\n", Print(doc.Stmts))
}
