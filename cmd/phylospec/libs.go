package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/phylospec/phylospec/internal/components"
	"github.com/phylospec/phylospec/internal/config"
	"github.com/phylospec/phylospec/internal/i18n"
	"github.com/phylospec/phylospec/internal/symbol"
)

// 组件库目录配置
const libsRelDir = "libs" // 组件库相对 phylospec 可执行文件的目录

// getLibsDir 获取组件库目录（可执行文件同级的 libs/ 目录）
func getLibsDir() (string, error) {
	// 获取当前可执行文件路径
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	libsDir := filepath.Join(filepath.Dir(exePath), libsRelDir)

	// 检查目录是否存在
	if _, err := os.Stat(libsDir); os.IsNotExist(err) {
		// 尝试从当前工作目录查找（用于开发环境）
		cwd, err := os.Getwd()
		if err == nil {
			dir := filepath.Join(cwd, libsRelDir)
			if _, err := os.Stat(dir); err == nil {
				return dir, nil
			}
		}
		return "", &libsDirError{path: libsDir}
	}

	return libsDir, nil
}

// libsDirError 组件库目录不存在错误
type libsDirError struct {
	path string
}

func (e *libsDirError) Error() string {
	return i18n.T(i18n.MsgLibsNotFound, e.path)
}

// loadLibraries 加载内置核心库、配置中列出的组件库以及 libs/ 目录中的组件库
func loadLibraries(cfg *config.Config, verbose bool) ([]*components.Library, error) {
	core, err := components.Core()
	if err != nil {
		return nil, &libraryError{path: "core.yaml", err: err}
	}
	libs := []*components.Library{core}

	for _, path := range cfg.Libraries.Paths {
		lib, err := components.LoadFile(path)
		if err != nil {
			return nil, &libraryError{path: path, err: err}
		}
		libs = append(libs, lib)
		if verbose {
			printInfo(i18n.T(i18n.MsgLoadedLibrary, lib.Name, path))
		}
	}

	libsDir, err := getLibsDir()
	if err != nil {
		// libs/ 目录是可选的
		if verbose {
			printWarning(err.Error())
		}
		return libs, nil
	}

	dirLibs, err := components.LoadDir(libsDir)
	if err != nil {
		return nil, &libraryError{path: libsDir, err: err}
	}
	for _, lib := range dirLibs {
		if verbose {
			printInfo(i18n.T(i18n.MsgLoadedLibrary, lib.Name, libsDir))
		}
	}
	return append(libs, dirLibs...), nil
}

// describeSymbol 生成命名空间中一个声明的单行描述
// 类型: type Simplex extends Vector<Probability>
// 生成器: distribution Normal(mean: Real, sd: PositiveReal) -> Distribution<Real>
func describeSymbol(sym *symbol.Symbol) string {
	if sym.Kind == symbol.SymbolType {
		t := sym.Type
		name := t.Name
		if len(t.TypeParameters) > 0 {
			name += "<" + strings.Join(t.TypeParameters, ", ") + ">"
		}
		if t.Extends != "" {
			return fmt.Sprintf("type %s extends %s", name, t.Extends)
		}
		return "type " + name
	}

	g := sym.Generator
	name := g.Name
	if len(g.TypeParameters) > 0 {
		name += "<" + strings.Join(g.TypeParameters, ", ") + ">"
	}
	args := make([]string, len(g.Arguments))
	for i, arg := range g.Arguments {
		args[i] = arg.Name + ": " + arg.Type
		if !arg.Required {
			args[i] += "?"
		}
	}
	return fmt.Sprintf("%s %s(%s) -> %s", sym.Kind, name, strings.Join(args, ", "), g.GeneratedType)
}
