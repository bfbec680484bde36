// Package components 描述组件库：PhyloSpec 脚本可以引用的类型和生成器
package components

import "gopkg.in/yaml.v3"

// GeneratorKind 区分分布和确定性函数
type GeneratorKind string

const (
	KindFunction     GeneratorKind = "function"
	KindDistribution GeneratorKind = "distribution"
)

// Library 具名的类型和生成器集合
type Library struct {
	Name          string       `yaml:"name"`
	Version       string       `yaml:"version"`
	Engine        string       `yaml:"engine,omitempty"`
	EngineVersion string       `yaml:"engineVersion,omitempty"`
	Description   string       `yaml:"description,omitempty"`
	Authors       []string     `yaml:"authors,omitempty"`
	License       string       `yaml:"license,omitempty"`
	Types         []*Type      `yaml:"types,omitempty"`
	Generators    []*Generator `yaml:"generators,omitempty"`
}

// Type 类型声明
// Extends 和属性类型是类型字符串，可以引用类型自身的参数，如 "Vector<Pair<F,S>>"
type Type struct {
	Name           string              `yaml:"name"`
	Namespace      string              `yaml:"namespace"`
	Description    string              `yaml:"description,omitempty"`
	Extends        string              `yaml:"extends,omitempty"`
	TypeParameters []string            `yaml:"typeParameters,omitempty"`
	Properties     map[string]Property `yaml:"properties,omitempty"`
}

// QualifiedName 返回 namespace.name
func (t *Type) QualifiedName() string {
	return qualify(t.Namespace, t.Name)
}

// Property 可以用 `value.name` 读取的具名属性
type Property struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
}

// UnmarshalYAML 同时接受 `name: Type` 和 `name: {type: Type}`
func (p *Property) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		p.Type = node.Value
		return nil
	}
	type plain Property
	var out plain
	if err := node.Decode(&out); err != nil {
		return err
	}
	*p = Property(out)
	return nil
}

// Generator 生成 GeneratedType 类型值的函数或分布
// 同一命名空间中的重载共用一个名称
type Generator struct {
	Name           string        `yaml:"name"`
	Namespace      string        `yaml:"namespace"`
	Description    string        `yaml:"description,omitempty"`
	Kind           GeneratorKind `yaml:"generatorType"`
	GeneratedType  string        `yaml:"generatedType"`
	TypeParameters []string      `yaml:"typeParameters,omitempty"`
	Arguments      []Argument    `yaml:"arguments,omitempty"`
	IoHints        *IoHints      `yaml:"ioHints,omitempty"`
	Examples       []string      `yaml:"examples,omitempty"`
}

// QualifiedName 返回 namespace.name
func (g *Generator) QualifiedName() string {
	return qualify(g.Namespace, g.Name)
}

// Argument 返回名为 name 的参数
func (g *Generator) Argument(name string) (Argument, bool) {
	for _, arg := range g.Arguments {
		if arg.Name == name {
			return arg, true
		}
	}
	return Argument{}, false
}

// RequiredArguments 按声明顺序返回必需参数
func (g *Generator) RequiredArguments() []Argument {
	var out []Argument
	for _, arg := range g.Arguments {
		if arg.Required {
			out = append(out, arg)
		}
	}
	return out
}

// IsTypeParameter 判断 name 是否是 g 的类型参数
func (g *Generator) IsTypeParameter(name string) bool {
	for _, p := range g.TypeParameters {
		if p == name {
			return true
		}
	}
	return false
}

// Argument 生成器参数
type Argument struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Required    bool     `yaml:"required,omitempty"`
	Recommended bool     `yaml:"recommended,omitempty"`
	Default     any      `yaml:"default,omitempty"`
	Dimension   any      `yaml:"dimension,omitempty"`
	Description string   `yaml:"description,omitempty"`
	UiHints     *UiHints `yaml:"uiHints,omitempty"`
}

// IoHints 标记读写数据文件的生成器
type IoHints struct {
	Role         string   `yaml:"role,omitempty"`
	Extensions   []string `yaml:"extensions,omitempty"`
	FileArgument string   `yaml:"fileArgument,omitempty"`
}

// UiHints 编辑器的显示提示
type UiHints struct {
	Widget string `yaml:"widget,omitempty"`
	Order  int    `yaml:"order,omitempty"`
	Group  string `yaml:"group,omitempty"`
}

func qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}
