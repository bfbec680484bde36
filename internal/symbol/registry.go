// Package symbol 记录脚本通过导入可以看到哪些组件类型和生成器
package symbol

import (
	"sort"
	"strings"

	"github.com/phylospec/phylospec/internal/components"
)

// SymbolKind 命名空间中声明的种类
type SymbolKind int

const (
	SymbolType SymbolKind = iota
	SymbolFunction
	SymbolDistribution
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolType:
		return "type"
	case SymbolFunction:
		return "function"
	case SymbolDistribution:
		return "distribution"
	}
	return "unknown"
}

// Symbol 命名空间中的一个声明
type Symbol struct {
	Name      string
	Namespace string
	Kind      SymbolKind
	Type      *components.Type      // SymbolType 时设置
	Generator *components.Generator // 生成器时设置
}

// QualifiedName 返回 namespace.name
func (s *Symbol) QualifiedName() string {
	return key(s.Namespace, s.Name)
}

// namespace 按声明顺序保存一个命名空间的声明
type namespace struct {
	types      []*components.Type
	generators []*components.Generator
}

// Registry 按命名空间索引已加载的组件库
// 构建后不可修改，可在多次分析之间共享
type Registry struct {
	libraries  []*components.Library
	namespaces map[string]*namespace
}

// NewRegistry 收集 libs 中的声明，后面的组件库会追加到前面已声明的命名空间
func NewRegistry(libs ...*components.Library) *Registry {
	c := NewCollector()
	for _, lib := range libs {
		c.CollectLibrary(lib)
	}
	return c.Registry()
}

// key 生成声明的完整名称
func key(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + "." + name
}

// Libraries 按注册顺序返回组件库
func (r *Registry) Libraries() []*components.Library {
	return r.libraries
}

// Namespaces 返回所有已声明的命名空间（已排序）
func (r *Registry) Namespaces() []string {
	out := make([]string, 0, len(r.namespaces))
	for ns := range r.namespaces {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Known 判断 path 是已声明的命名空间，或是某个命名空间的点分前缀
func (r *Registry) Known(path string) bool {
	if _, ok := r.namespaces[path]; ok {
		return true
	}
	prefix := path + "."
	for ns := range r.namespaces {
		if strings.HasPrefix(ns, prefix) {
			return true
		}
	}
	return false
}

// Symbols 列出 ns 中的声明：先类型后生成器，各自按声明顺序
func (r *Registry) Symbols(ns string) []*Symbol {
	n, ok := r.namespaces[ns]
	if !ok {
		return nil
	}
	var out []*Symbol
	for _, t := range n.types {
		out = append(out, &Symbol{Name: t.Name, Namespace: ns, Kind: SymbolType, Type: t})
	}
	for _, g := range n.generators {
		kind := SymbolFunction
		if g.Kind == components.KindDistribution {
			kind = SymbolDistribution
		}
		out = append(out, &Symbol{Name: g.Name, Namespace: ns, Kind: kind, Generator: g})
	}
	return out
}

// subNamespaces 返回 path 及其下的所有命名空间（已排序）
func (r *Registry) subNamespaces(path string) []string {
	var out []string
	prefix := path + "."
	for ns := range r.namespaces {
		if ns == path || strings.HasPrefix(ns, prefix) {
			out = append(out, ns)
		}
	}
	sort.Strings(out)
	return out
}

// Collector 将组件库的声明收集到 Registry
type Collector struct {
	registry *Registry
}

// NewCollector 创建空的收集器
func NewCollector() *Collector {
	return &Collector{registry: &Registry{namespaces: make(map[string]*namespace)}}
}

// CollectLibrary 添加 lib 的所有声明
func (c *Collector) CollectLibrary(lib *components.Library) {
	c.registry.libraries = append(c.registry.libraries, lib)
	for _, t := range lib.Types {
		n := c.namespace(t.Namespace)
		n.types = append(n.types, t)
	}
	for _, g := range lib.Generators {
		n := c.namespace(g.Namespace)
		n.generators = append(n.generators, g)
	}
}

func (c *Collector) namespace(name string) *namespace {
	n, ok := c.registry.namespaces[name]
	if !ok {
		n = &namespace{}
		c.registry.namespaces[name] = n
	}
	return n
}

// Registry 返回收集结果
func (c *Collector) Registry() *Registry {
	return c.registry
}
