package components

import (
	"github.com/pkg/errors"

	"github.com/phylospec/phylospec/internal/i18n"
	"github.com/phylospec/phylospec/internal/parser"
)

// Validate 检查组件库结构：必需的名称、声明不重复、类型字符串格式正确
func Validate(lib *Library) error {
	if lib.Name == "" {
		return errors.New(i18n.T(i18n.ErrLibraryNoName))
	}

	declared := make(map[string]*Type)
	for _, t := range lib.Types {
		if t.Name == "" || t.Namespace == "" {
			return errors.New(i18n.T(i18n.ErrTypeIncomplete, lib.Name))
		}
		if _, dup := declared[t.QualifiedName()]; dup {
			return errors.New(i18n.T(i18n.ErrDuplicateType, t.QualifiedName()))
		}
		declared[t.QualifiedName()] = t

		if err := checkUnique(t.TypeParameters); err != nil {
			return errors.Wrap(err, i18n.T(i18n.ErrInType, t.QualifiedName()))
		}
		if t.Extends != "" {
			if _, err := parser.ParseTypeString(t.Extends); err != nil {
				return errors.Wrap(err, i18n.T(i18n.ErrInType, t.QualifiedName()))
			}
		}
		for name, prop := range t.Properties {
			if _, err := parser.ParseTypeString(prop.Type); err != nil {
				return errors.Wrap(err, i18n.T(i18n.ErrInProperty, t.QualifiedName(), name))
			}
		}
	}

	for _, g := range lib.Generators {
		if err := validateGenerator(lib, g); err != nil {
			return errors.Wrap(err, i18n.T(i18n.ErrInGenerator, g.QualifiedName()))
		}
	}
	return nil
}

func validateGenerator(lib *Library, g *Generator) error {
	if g.Name == "" || g.Namespace == "" {
		return errors.New(i18n.T(i18n.ErrGeneratorIncomplete))
	}
	if g.Kind != KindFunction && g.Kind != KindDistribution {
		return errors.New(i18n.T(i18n.ErrGeneratorKind, string(g.Kind)))
	}
	if err := checkUnique(g.TypeParameters); err != nil {
		return err
	}

	generated, err := parser.ParseTypeString(g.GeneratedType)
	if err != nil {
		return err
	}
	if g.Kind == KindDistribution && !isDistributionType(lib, generated.TypeName()) {
		return errors.New(i18n.T(i18n.ErrNotDistributionType, g.GeneratedType))
	}

	names := make([]string, 0, len(g.Arguments))
	for _, arg := range g.Arguments {
		if arg.Name == "" {
			return errors.New(i18n.T(i18n.ErrArgumentNoName))
		}
		if _, err := parser.ParseTypeString(arg.Type); err != nil {
			return errors.Wrap(err, i18n.T(i18n.ErrInArgument, arg.Name))
		}
		names = append(names, arg.Name)
	}
	return checkUnique(names)
}

// isDistributionType 在 lib 内沿 extends 查找
// 其他组件库中声明的类型无法在这里检查，直接接受
func isDistributionType(lib *Library, name string) bool {
	seen := make(map[string]bool)
	for name != "Distribution" {
		if seen[name] {
			return false
		}
		seen[name] = true

		var found *Type
		for _, t := range lib.Types {
			if t.Name == name {
				found = t
				break
			}
		}
		if found == nil {
			return true
		}
		if found.Extends == "" {
			return false
		}
		parent, err := parser.ParseTypeString(found.Extends)
		if err != nil {
			return false
		}
		name = parent.TypeName()
	}
	return true
}

func checkUnique(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return errors.New(i18n.T(i18n.ErrDuplicateName, name))
		}
		seen[name] = true
	}
	return nil
}
