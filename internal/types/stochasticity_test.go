package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phylospec/phylospec/internal/parser"
)

func TestStochasticity(t *testing.T) {
	src := `import phylospec
Real mu ~ Normal(mean=0, sd=1)
Real y = mu * 2
Real c = 3
Real d = exp(c)
Real e = d + c
Vector<Real> v = [x * 2 for x in [c]]
Vector<Real> w = [x * 2 for x in [mu]]
Real z = q
Real g = exp(x~Normal(mean=c, sd=1))
@observed(data="obs.csv")
Real obs ~ Normal(mean=c, sd=1)
`
	stmts := parse(t, src)
	s := ResolveStochasticity(stmts)

	tests := []struct {
		name string
		want Stochasticity
	}{
		{"mu", Stochastic},
		{"y", Stochastic},
		{"c", Constant},
		{"d", Deterministic},
		{"e", Deterministic},
		{"v", Constant},
		{"w", Stochastic},
		{"z", Undefined},
		{"g", Stochastic},
		{"obs", Stochastic},
		{"unknown", Undefined},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Variable(tt.name), tt.name)
	}

	assert.Equal(t, Undefined, s.Of(stmts[0]))
	require.IsType(t, &parser.DrawStmt{}, stmts[1])
	draw := stmts[1].(*parser.DrawStmt)
	assert.Equal(t, Stochastic, s.Of(draw))
	assert.Equal(t, Deterministic, s.Of(draw.Value))
	assert.Equal(t, Undefined, s.Of(draw.Type))

	call := draw.Value.(*parser.Call)
	for _, arg := range call.Args {
		assert.Equal(t, Constant, s.Of(arg))
	}
}

func TestStochasticityString(t *testing.T) {
	assert.Equal(t, "constant", Constant.String())
	assert.Equal(t, "deterministic", Deterministic.String())
	assert.Equal(t, "stochastic", Stochastic.String())
	assert.Equal(t, "undefined", Undefined.String())
	assert.Equal(t, Stochastic, merge(Constant, Stochastic))
	assert.Equal(t, Undefined, merge(Undefined, Deterministic))
}
