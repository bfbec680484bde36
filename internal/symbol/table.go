package symbol

import (
	"sort"
	"strings"

	"github.com/phylospec/phylospec/internal/components"
	"github.com/phylospec/phylospec/internal/i18n"
)

// UnknownNamespaceError 导入的命名空间没有任何已加载组件库声明
type UnknownNamespaceError struct {
	Path string
}

func (e *UnknownNamespaceError) Error() string {
	return i18n.T(i18n.ErrUnknownNamespace, e.Path)
}

// Table 每次分析对 Registry 的视图：目前为止通过导入可见的类型和生成器重载
// 不能并发使用
type Table struct {
	registry   *Registry
	types      map[string]*components.Type
	generators map[string][]*components.Generator
	imported   []string
}

// NewTable 创建未导入任何命名空间的符号表
func NewTable(r *Registry) *Table {
	return &Table{
		registry:   r,
		types:      make(map[string]*components.Type),
		generators: make(map[string][]*components.Generator),
	}
}

// Registry 返回 t 所基于的 Registry
func (t *Table) Registry() *Registry {
	return t.registry
}

// Import 使命名空间 path 本身的声明可见（不含子命名空间）
// 类型覆盖之前的同名类型；命名空间中声明的每个生成器名称，其重载替换之前可见的重载
func (t *Table) Import(path []string) error {
	ns := strings.Join(path, ".")
	if !t.registry.Known(ns) {
		return &UnknownNamespaceError{Path: ns}
	}
	t.importNamespace(ns)
	return nil
}

// ImportDeep 按排序顺序导入 path 及其下的所有命名空间
func (t *Table) ImportDeep(path []string) error {
	ns := strings.Join(path, ".")
	if !t.registry.Known(ns) {
		return &UnknownNamespaceError{Path: ns}
	}
	for _, sub := range t.registry.subNamespaces(ns) {
		t.importNamespace(sub)
	}
	return nil
}

func (t *Table) importNamespace(ns string) {
	n, ok := t.registry.namespaces[ns]
	if !ok {
		return
	}
	t.imported = append(t.imported, ns)

	for _, typ := range n.types {
		t.types[typ.Name] = typ
	}

	overloads := make(map[string][]*components.Generator)
	var order []string
	for _, g := range n.generators {
		if _, seen := overloads[g.Name]; !seen {
			order = append(order, g.Name)
		}
		overloads[g.Name] = append(overloads[g.Name], g)
	}
	for _, name := range order {
		t.generators[name] = overloads[name]
	}
}

// ResolveType 按不带命名空间的名称查找可见类型
func (t *Table) ResolveType(name string) (*components.Type, bool) {
	typ, ok := t.types[name]
	return typ, ok
}

// ResolveTypeIn 查找命名空间 ns 中写出的类型名，如 extends 子句中的类型
// 依次查找该命名空间及其上级、可见类型、按排序的所有已注册命名空间
func (t *Table) ResolveTypeIn(ns, name string) (*components.Type, bool) {
	for ns != "" {
		if n, ok := t.registry.namespaces[ns]; ok {
			for _, typ := range n.types {
				if typ.Name == name {
					return typ, true
				}
			}
		}
		i := strings.LastIndex(ns, ".")
		if i < 0 {
			break
		}
		ns = ns[:i]
	}
	if typ, ok := t.types[name]; ok {
		return typ, true
	}
	for _, other := range t.registry.Namespaces() {
		for _, typ := range t.registry.namespaces[other].types {
			if typ.Name == name {
				return typ, true
			}
		}
	}
	return nil, false
}

// ResolveGenerators 按声明顺序返回 name 的可见重载
func (t *Table) ResolveGenerators(name string) []*components.Generator {
	return t.generators[name]
}

// Imported 按导入顺序返回已导入的命名空间
func (t *Table) Imported() []string {
	return t.imported
}

// VisibleTypes 返回按名称排序的可见类型
func (t *Table) VisibleTypes() []*components.Type {
	out := make([]*components.Type, 0, len(t.types))
	for _, typ := range t.types {
		out = append(out, typ)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// VisibleGenerators 返回可见生成器的名称（已排序）
func (t *Table) VisibleGenerators() []string {
	out := make([]string, 0, len(t.generators))
	for name := range t.generators {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
