package components

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/phylospec/phylospec/internal/i18n"
)

// libraryFile 组件库文件的顶层文档
type libraryFile struct {
	ComponentLibrary *Library `yaml:"componentLibrary"`
}

// Load 解码并校验组件库，JSON 也是合法的 YAML，因此同样接受
func Load(r io.Reader) (*Library, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file libraryFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, errors.New(i18n.T(i18n.ErrLibraryEmpty))
		}
		return nil, errors.Wrap(err, i18n.T(i18n.ErrLibraryDecode))
	}
	if file.ComponentLibrary == nil {
		return nil, errors.New(i18n.T(i18n.ErrLibraryMissingRoot))
	}
	if err := Validate(file.ComponentLibrary); err != nil {
		return nil, err
	}
	return file.ComponentLibrary, nil
}

// LoadFile 加载 path 处的组件库
func LoadFile(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, i18n.T(i18n.ErrLibraryOpen, path))
	}
	defer f.Close()

	lib, err := Load(f)
	if err != nil {
		return nil, errors.Wrap(err, i18n.T(i18n.ErrLibraryLoad, path))
	}
	return lib, nil
}

// IsLibraryFile 判断 path 是否是组件库文件后缀
func IsLibraryFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// LoadDir 按文件名顺序加载 dir 下（不含子目录）的所有组件库文件
func LoadDir(dir string) ([]*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, i18n.T(i18n.ErrLibraryOpen, dir))
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && IsLibraryFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	libs := make([]*Library, 0, len(names))
	for _, name := range names {
		lib, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		libs = append(libs, lib)
	}
	return libs, nil
}
