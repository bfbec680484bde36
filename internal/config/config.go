package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/phylospec/phylospec/internal/i18n"
)

// FileName 项目配置文件名
const FileName = "phylospec.toml"

// Config phylospec 项目配置
type Config struct {
	Project   ProjectConfig   `toml:"project"`
	Libraries LibrariesConfig `toml:"libraries"`
}

// ProjectConfig 项目配置
type ProjectConfig struct {
	Name     string `toml:"name"`     // 项目名
	Language string `toml:"language"` // 提示信息语言 (en | zh)，优先于环境变量
}

// LibrariesConfig 组件库配置
type LibrariesConfig struct {
	Paths   []string `toml:"paths"`   // 组件库文件，相对于配置文件所在目录
	Imports []string `toml:"imports"` // 每个脚本之前自动导入的命名空间，以 .* 结尾时包含子命名空间
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Name: "model",
		},
		Libraries: LibrariesConfig{
			Imports: []string{"phylospec"},
		},
	}
}

// FindAndLoad 从指定目录向上查找 phylospec.toml 并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 phylospec.toml
func FindConfigFile(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		dir = startDir
	}

	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// 获取父目录
		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件，组件库路径解析为相对于配置文件的路径
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	config.Libraries.Imports = nil

	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, errors.Wrap(err, i18n.T(i18n.ErrConfigDecode, path))
	}

	// 未配置 imports 时使用默认值，显式写 imports = [] 表示不导入
	if !md.IsDefined("libraries", "imports") {
		config.Libraries.Imports = DefaultConfig().Libraries.Imports
	}

	if config.Project.Language != "" {
		if _, ok := i18n.ParseLanguage(config.Project.Language); !ok {
			return nil, errors.New(i18n.T(i18n.ErrConfigLanguage, config.Project.Language))
		}
	}

	root := GetProjectRoot(path)
	for i, p := range config.Libraries.Paths {
		if !filepath.IsAbs(p) {
			config.Libraries.Paths[i] = filepath.Join(root, p)
		}
	}

	return config, nil
}

// GetProjectRoot 获取项目根目录（phylospec.toml 所在目录）
func GetProjectRoot(configPath string) string {
	if configPath == "" {
		return ""
	}
	return filepath.Dir(configPath)
}

// Language 返回配置的提示信息语言，未配置时 ok 为 false
func (c *Config) Language() (i18n.Language, bool) {
	if c.Project.Language == "" {
		return "", false
	}
	return i18n.ParseLanguage(c.Project.Language)
}

// ImportPath 一个自动导入的命名空间
type ImportPath struct {
	Path []string
	Deep bool // 以 .* 结尾，同时导入所有子命名空间
}

// Namespace 返回点分形式的命名空间名
func (p ImportPath) Namespace() string {
	return strings.Join(p.Path, ".")
}

// ImportPaths 将 imports 中的命名空间拆分为路径
// revbayes.core -> [revbayes core]
// revbayes.* -> [revbayes]，Deep 为 true
func (c *Config) ImportPaths() []ImportPath {
	paths := make([]ImportPath, 0, len(c.Libraries.Imports))
	for _, ns := range c.Libraries.Imports {
		ns = strings.TrimSpace(ns)
		deep := strings.HasSuffix(ns, ".*")
		ns = strings.TrimSuffix(ns, ".*")
		if ns != "" {
			paths = append(paths, ImportPath{Path: strings.Split(ns, "."), Deep: deep})
		}
	}
	return paths
}
