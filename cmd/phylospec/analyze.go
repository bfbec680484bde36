package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/phylospec/phylospec/internal/config"
	"github.com/phylospec/phylospec/internal/i18n"
	"github.com/phylospec/phylospec/internal/parser"
	"github.com/phylospec/phylospec/internal/symbol"
	"github.com/phylospec/phylospec/internal/types"
)

// scriptExt PhyloSpec 脚本文件后缀
const scriptExt = ".phylospec"

// project 一次运行中所有脚本共享的配置和组件库
type project struct {
	cfg        *config.Config
	configPath string
	registry   *symbol.Registry
}

// loadProject 从指定目录向上查找 phylospec.toml，加载配置和组件库
func loadProject(startDir string, verbose bool) (*project, error) {
	cfg, configPath, err := config.FindAndLoad(startDir)
	if err != nil {
		return nil, &configError{err: err}
	}

	// 配置中的语言优先于环境变量
	if lang, ok := cfg.Language(); ok {
		i18n.SetLanguage(lang)
	}

	if verbose {
		if configPath != "" {
			printInfo(i18n.T(i18n.MsgUsingConfig, configPath, cfg.Project.Name))
		} else {
			printInfo(i18n.T(i18n.MsgNoConfig))
		}
	}

	libs, err := loadLibraries(cfg, verbose)
	if err != nil {
		return nil, err
	}
	registry := symbol.NewRegistry(libs...)

	// 提前检查自动导入的命名空间，避免每个脚本重复报错
	for _, imp := range cfg.ImportPaths() {
		if !registry.Known(imp.Namespace()) {
			return nil, &importError{err: &symbol.UnknownNamespaceError{Path: imp.Namespace()}}
		}
	}

	return &project{cfg: cfg, configPath: configPath, registry: registry}, nil
}

// diagnostic 带位置的错误信息
type diagnostic struct {
	path string
	line int
	col  int
	msg  string
}

func (d diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.path, d.line, d.col, d.msg)
}

// analysis 单个脚本的分析结果
type analysis struct {
	path     string
	stmts    []parser.Stmt
	resolver *types.Resolver // 有语法错误时为 nil
	diags    []diagnostic
}

// parseDiagnostics 将语法错误转换为诊断信息
func parseDiagnostics(path string, errs []*parser.Error) []diagnostic {
	diags := make([]diagnostic, 0, len(errs))
	for _, e := range errs {
		r := e.Token.Range
		diags = append(diags, diagnostic{path: path, line: r.StartLine, col: r.StartCol + 1, msg: e.Msg})
	}
	return diags
}

// analyzeSource 解析并检查脚本，有语法错误时不做类型检查
func (p *project) analyzeSource(path, source string) *analysis {
	a := &analysis{path: path}

	stmts, errs := parser.ParseSource(source)
	a.stmts = stmts
	if len(errs) > 0 {
		a.diags = parseDiagnostics(path, errs)
		return a
	}

	a.resolver = types.New(p.newTable())
	for _, e := range a.resolver.ResolveAll(stmts) {
		d := diagnostic{path: path, msg: e.Message()}
		if e.Node != nil {
			r := e.Node.Span()
			d.line, d.col = r.StartLine, r.StartCol+1
		}
		a.diags = append(a.diags, d)
	}
	return a
}

// newTable 创建已导入配置中命名空间的符号表
func (p *project) newTable() *symbol.Table {
	table := symbol.NewTable(p.registry)
	for _, imp := range p.cfg.ImportPaths() {
		// 已在 loadProject 中检查过
		if imp.Deep {
			_ = table.ImportDeep(imp.Path)
		} else {
			_ = table.Import(imp.Path)
		}
	}
	return table
}

// analyzeFile 读取并分析一个脚本文件
func (p *project) analyzeFile(path string, verbose bool) (*analysis, error) {
	if verbose {
		printInfo(i18n.T(i18n.MsgChecking, path))
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, &readFileError{path: path, err: err}
	}
	return p.analyzeSource(path, string(source)), nil
}

// parseFile 读取并解析脚本，保留注释，不需要组件库
func parseFile(path string) (*parser.Document, []diagnostic, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &readFileError{path: path, err: err}
	}
	doc, errs := parser.ParseDocument(string(source))
	return doc, parseDiagnostics(path, errs), nil
}

// collectScripts 收集输入文件或目录中的所有脚本
func collectScripts(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, &accessError{err: err}
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	var files []string
	err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, scriptExt) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, &accessError{err: err}
	}

	if len(files) == 0 {
		return nil, &noFilesError{dir: input}
	}
	return files, nil
}

// projectDir 返回查找配置文件的起始目录
func projectDir(input string) string {
	if info, err := os.Stat(input); err == nil && info.IsDir() {
		return input
	}
	return filepath.Dir(input)
}

// 错误类型定义
type accessError struct {
	err error
}

func (e *accessError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrCannotAccessInput), e.err)
}

type configError struct {
	err error
}

func (e *configError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrCannotLoadConfig), e.err)
}

type libraryError struct {
	path string
	err  error
}

func (e *libraryError) Error() string {
	return fmt.Sprintf("%s %s: %v", i18n.T(i18n.ErrCannotLoadLibrary), e.path, e.err)
}

type importError struct {
	err error
}

func (e *importError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrImportFailed), e.err)
}

type readFileError struct {
	path string
	err  error
}

func (e *readFileError) Error() string {
	return fmt.Sprintf("%s %s: %v", i18n.T(i18n.ErrCannotReadFile), e.path, e.err)
}

type writeFileError struct {
	path string
	err  error
}

func (e *writeFileError) Error() string {
	return fmt.Sprintf("%s %s: %v", i18n.T(i18n.ErrCannotWriteFile), e.path, e.err)
}

type noFilesError struct {
	dir string
}

func (e *noFilesError) Error() string {
	return i18n.T(i18n.ErrNoScriptFiles, e.dir)
}
