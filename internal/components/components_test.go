package components

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phylospec/phylospec/internal/i18n"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

func TestCoreLibrary(t *testing.T) {
	lib, err := Core()
	require.NoError(t, err)
	assert.Equal(t, "phylospec-core", lib.Name)

	names := make(map[string]*Type)
	for _, typ := range lib.Types {
		names[typ.Name] = typ
	}
	for _, want := range []string{"Real", "PositiveReal", "Probability", "Integer", "Vector", "Pair", "Simplex", "Distribution"} {
		assert.Contains(t, names, want)
	}
	assert.Equal(t, "Vector<Probability>", names["Simplex"].Extends)
	assert.Equal(t, []string{"F", "S"}, names["Pair"].TypeParameters)
	assert.Equal(t, "F", names["Pair"].Properties["first"].Type)
	assert.Equal(t, "NonNegativeInteger", names["Vector"].Properties["length"].Type)

	var abs []*Generator
	for _, g := range lib.Generators {
		if g.Name == "abs" {
			abs = append(abs, g)
		}
	}
	assert.Len(t, abs, 2, "abs is overloaded")
}

func TestGeneratorHelpers(t *testing.T) {
	lib := MustCore()
	var log *Generator
	for _, g := range lib.Generators {
		if g.Name == "log" {
			log = g
		}
	}
	require.NotNil(t, log)

	assert.Equal(t, "phylospec.log", log.QualifiedName())
	required := log.RequiredArguments()
	require.Len(t, required, 1)
	assert.Equal(t, "x", required[0].Name)

	base, ok := log.Argument("base")
	require.True(t, ok)
	assert.False(t, base.Required)
	assert.InDelta(t, 2.718281828459045, base.Default, 1e-12)

	_, ok = log.Argument("nope")
	assert.False(t, ok)
}

func TestLoadJSON(t *testing.T) {
	src := `{
  "componentLibrary": {
    "name": "demo",
    "version": "1.0",
    "types": [
      {"name": "Tree", "namespace": "demo.trees", "properties": {"taxa": {"type": "Vector<String>"}}}
    ],
    "generators": [
      {"name": "Yule", "namespace": "demo.trees", "generatorType": "distribution",
       "generatedType": "Distribution<Tree>",
       "arguments": [{"name": "birthRate", "type": "PositiveReal", "required": true}]}
    ]
  }
}`
	lib, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, lib.Generators, 1)
	assert.Equal(t, KindDistribution, lib.Generators[0].Kind)
	assert.Equal(t, "Vector<String>", lib.Types[0].Properties["taxa"].Type)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"empty", "", "empty"},
		{"missing root", "{}\n", "componentLibrary"},
		{"unknown field", "componentLibrary:\n  name: x\n  colour: red\n", "colour"},
		{"no name", "componentLibrary:\n  version: '1'\n", "name"},
		{"duplicate type", `componentLibrary:
  name: x
  types:
    - {name: A, namespace: n}
    - {name: A, namespace: n}
`, "n.A"},
		{"bad kind", `componentLibrary:
  name: x
  generators:
    - {name: f, namespace: n, generatorType: macro, generatedType: Real}
`, "macro"},
		{"bad type string", `componentLibrary:
  name: x
  generators:
    - {name: f, namespace: n, generatorType: function, generatedType: "Vector<Real"}
`, "n.f"},
		{"duplicate argument", `componentLibrary:
  name: x
  generators:
    - name: f
      namespace: n
      generatorType: function
      generatedType: Real
      arguments: [{name: a, type: Real}, {name: a, type: Real}]
`, "a"},
		{"distribution must produce a distribution", `componentLibrary:
  name: x
  types:
    - {name: Real, namespace: n}
  generators:
    - {name: D, namespace: n, generatorType: distribution, generatedType: Real}
`, "Real"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestDistributionSubtypes(t *testing.T) {
	src := `componentLibrary:
  name: trees
  types:
    - {name: TreeDistribution, namespace: t, extends: Distribution<Tree>}
  generators:
    - {name: Yule, namespace: t, generatorType: distribution, generatedType: TreeDistribution}
`
	_, err := Load(strings.NewReader(src))
	assert.NoError(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("b.yaml", "componentLibrary:\n  name: b\n")
	write("a.json", `{"componentLibrary": {"name": "a"}}`)
	write("notes.txt", "ignored")

	libs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, libs, 2)
	assert.Equal(t, "a", libs[0].Name)
	assert.Equal(t, "b", libs[1].Name)

	write("c.yml", "componentLibrary: [")
	_, err = LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c.yml")
}
