package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phylospec/phylospec/internal/i18n"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), `
[project]
name = "primates"
language = "zh"

[libraries]
paths = ["libs/revbayes.yaml", "/opt/beast.yaml"]
imports = ["phylospec", "revbayes.core", " beast.* "]
`)
	sub := filepath.Join(root, "models", "clock")
	require.NoError(t, os.MkdirAll(sub, 0755))

	cfg, path, err := FindAndLoad(sub)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), path)
	assert.Equal(t, root, GetProjectRoot(path))
	assert.Equal(t, "primates", cfg.Project.Name)

	lang, ok := cfg.Language()
	assert.True(t, ok)
	assert.Equal(t, i18n.LangChinese, lang)

	assert.Equal(t, []string{filepath.Join(root, "libs", "revbayes.yaml"), "/opt/beast.yaml"}, cfg.Libraries.Paths)
	assert.Equal(t, []ImportPath{
		{Path: []string{"phylospec"}},
		{Path: []string{"revbayes", "core"}},
		{Path: []string{"beast"}, Deep: true},
	}, cfg.ImportPaths())
	assert.Equal(t, "revbayes.core", cfg.ImportPaths()[1].Namespace())
}

func TestDefaults(t *testing.T) {
	cfg, path, err := FindAndLoad(t.TempDir())
	require.NoError(t, err)
	// 临时目录上层如果有 phylospec.toml 会被读到
	if path != "" {
		t.Skipf("found %s above the temporary directory", path)
	}
	assert.Equal(t, DefaultConfig(), cfg)
	_, ok := cfg.Language()
	assert.False(t, ok)
	assert.Equal(t, []ImportPath{{Path: []string{"phylospec"}}}, cfg.ImportPaths())
}

func TestImportsDefault(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "a", FileName), "[project]\nname = \"a\"\n")
	cfg, err := Load(filepath.Join(dir, "a", FileName))
	require.NoError(t, err)
	assert.Equal(t, []string{"phylospec"}, cfg.Libraries.Imports)

	writeFile(t, filepath.Join(dir, "b", FileName), "[libraries]\nimports = []\n")
	cfg, err = Load(filepath.Join(dir, "b", FileName))
	require.NoError(t, err)
	assert.Empty(t, cfg.Libraries.Imports)
	assert.Equal(t, "model", cfg.Project.Name)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad", FileName)
	writeFile(t, bad, "[project\nname = 1\n")
	_, err := Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot decode")

	lang := filepath.Join(dir, "lang", FileName)
	writeFile(t, lang, "[project]\nlanguage = \"fr\"\n")
	_, err = Load(lang)
	require.Error(t, err)
	assert.Equal(t, `unsupported language "fr"`, err.Error())

	_, _, err = FindAndLoad(filepath.Join(dir, "lang"))
	require.Error(t, err)
}
