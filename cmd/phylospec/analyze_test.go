package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phylospec/phylospec/internal/components"
	"github.com/phylospec/phylospec/internal/config"
	"github.com/phylospec/phylospec/internal/i18n"
	"github.com/phylospec/phylospec/internal/parser"
	"github.com/phylospec/phylospec/internal/symbol"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

func coreProject(t *testing.T) *project {
	t.Helper()
	core, err := components.Core()
	require.NoError(t, err)
	return &project{cfg: config.DefaultConfig(), registry: symbol.NewRegistry(core)}
}

func diagStrings(a *analysis) []string {
	out := make([]string, len(a.diags))
	for i, d := range a.diags {
		out[i] = d.String()
	}
	return out
}

func TestAnalyzeSource(t *testing.T) {
	p := coreProject(t)

	a := p.analyzeSource("ok.phylospec", "Real mu ~ Normal(mean=0, sd=1)\nReal y = mu * 2\n")
	assert.Empty(t, a.diags)
	require.NotNil(t, a.resolver)
	assert.Equal(t, []string{"mu", "y"}, a.resolver.Variables())

	a = p.analyzeSource("bad.phylospec", "Real a = 1\nReal b = a + y\nReal c = z\n")
	require.NotNil(t, a.resolver)
	assert.Equal(t, []string{
		"bad.phylospec:2:14: Variable `y` is not known",
		"bad.phylospec:3:10: Variable `z` is not known",
	}, diagStrings(a))
}

func TestAnalyzeSyntaxError(t *testing.T) {
	p := coreProject(t)

	a := p.analyzeSource("syntax.phylospec", "Real a = 1\nReal b = * 2\nReal c = q\n")
	assert.Nil(t, a.resolver)
	assert.Equal(t, []string{"syntax.phylospec:2:10: Expect expression."}, diagStrings(a))
}

func TestDescribeSymbol(t *testing.T) {
	core, err := components.Core()
	require.NoError(t, err)
	registry := symbol.NewRegistry(core)

	described := map[string]string{}
	for _, sym := range registry.Symbols("phylospec") {
		described[sym.Name] = describeSymbol(sym)
	}
	assert.Equal(t, "type Simplex extends Vector<Probability>", described["Simplex"])
	assert.Equal(t, "distribution Normal(mean: Real, sd: PositiveReal) -> Distribution<Real>", described["Normal"])
	assert.Equal(t, "distribution Dirichlet(alpha: Vector<PositiveReal>) -> Distribution<Simplex>", described["Dirichlet"])
}

func TestCollectScripts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.phylospec", "nested/b.phylospec", "notes.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("Real x = 1\n"), 0644))
	}

	files, err := collectScripts(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.phylospec"),
		filepath.Join(dir, "nested", "b.phylospec"),
	}, files)

	single := filepath.Join(dir, "a.phylospec")
	files, err = collectScripts(single)
	require.NoError(t, err)
	assert.Equal(t, []string{single}, files)
	assert.Equal(t, dir, projectDir(single))
	assert.Equal(t, dir, projectDir(dir))

	empty := t.TempDir()
	_, err = collectScripts(empty)
	require.Error(t, err)
	assert.Equal(t, "no .phylospec files found in "+empty, err.Error())

	_, err = collectScripts(filepath.Join(dir, "missing"))
	assert.IsType(t, &accessError{}, err)
}

func TestLoadProjectUnknownImport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("[libraries]\nimports = [\"nosuch\"]\n"), 0644))

	_, err := loadProject(dir, false)
	require.Error(t, err)
	assert.IsType(t, &importError{}, err)
	assert.Contains(t, err.Error(), "Namespace `nosuch` is not known")
}

const extraLibrary = `componentLibrary:
  name: extra
  types:
    - {name: Alignment, namespace: extra.data}
    - {name: Tree, namespace: extra.trees}
  generators:
    - name: readAlignment
      namespace: extra.data
      generatorType: function
      generatedType: Alignment
      arguments: [{name: file, type: String, required: true}]
`

func writeProject(t *testing.T, imports string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.yaml"), []byte(extraLibrary), 0644))
	cfg := "[libraries]\npaths = [\"extra.yaml\"]\nimports = " + imports + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(cfg), 0644))
	return dir
}

func TestDeepImportFromConfig(t *testing.T) {
	const script = "Alignment a = readAlignment(\"primates.nex\")\n"

	p, err := loadProject(writeProject(t, `["phylospec", "extra.*"]`), false)
	require.NoError(t, err)
	a := p.analyzeSource("deep.phylospec", script)
	assert.Empty(t, diagStrings(a))
	typ, ok := a.resolver.VariableType("a")
	require.True(t, ok)
	assert.Equal(t, "Alignment", typ.String())

	// 不带 .* 时只导入 extra 本身，它没有声明任何内容
	p, err = loadProject(writeProject(t, `["phylospec", "extra"]`), false)
	require.NoError(t, err)
	a = p.analyzeSource("shallow.phylospec", script)
	require.NotEmpty(t, a.diags)
	assert.Contains(t, a.diags[0].msg, "Alignment")
}

func TestParseFileKeepsComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.phylospec")
	src := "// rates\nReal  mu~Normal(mean=0,sd=1) // prior\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	doc, diags, err := parseFile(path)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, "// rates\nReal mu ~ Normal(mean = 0, sd = 1) // prior\n", parser.PrintDocument(doc))
}
