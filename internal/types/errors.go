package types

import (
	"strings"

	"github.com/phylospec/phylospec/internal/i18n"
	"github.com/phylospec/phylospec/internal/parser"
)

// ErrorKind 类型错误的种类
type ErrorKind int

const (
	UnknownVariable ErrorKind = iota
	UnknownType
	UnknownNamespace
	UnknownGenerator
	UnknownProperty
	ArgumentViolation
	ArgumentTypeMismatch
	OperatorTypeMismatch
	NoMatchingOverload
	NotADistribution
	NotIterable
	InferenceFailure
	TypeMismatchOnAssignment
	TypeParameterArityMismatch
)

var kindNames = map[ErrorKind]string{
	UnknownVariable:            "UnknownVariable",
	UnknownType:                "UnknownType",
	UnknownNamespace:           "UnknownNamespace",
	UnknownGenerator:           "UnknownGenerator",
	UnknownProperty:            "UnknownProperty",
	ArgumentViolation:          "ArgumentViolation",
	ArgumentTypeMismatch:       "ArgumentTypeMismatch",
	OperatorTypeMismatch:       "OperatorTypeMismatch",
	NoMatchingOverload:         "NoMatchingOverload",
	NotADistribution:           "NotADistribution",
	NotIterable:                "NotIterable",
	InferenceFailure:           "InferenceFailure",
	TypeMismatchOnAssignment:   "TypeMismatchOnAssignment",
	TypeParameterArityMismatch: "TypeParameterArityMismatch",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "ErrorKind(?)"
}

// TypeError 定位到节点的语义错误
// NoMatchingOverload 错误在 Causes 中带有每个候选重载的失败原因
type TypeError struct {
	Kind   ErrorKind
	Node   parser.Node
	Msg    string
	Causes []*TypeError
}

func newError(kind ErrorKind, node parser.Node, key string, args ...any) *TypeError {
	return &TypeError{Kind: kind, Node: node, Msg: i18n.T(key, args...)}
}

// at 为没有节点的错误（如组件库类型字符串中的错误）补上位置
func (e *TypeError) at(node parser.Node) *TypeError {
	if e.Node == nil {
		e.Node = node
	}
	return e
}

// Message 输出错误信息，每个原因缩进占一行
func (e *TypeError) Message() string {
	if len(e.Causes) == 0 {
		return e.Msg
	}
	var b strings.Builder
	b.WriteString(e.Msg)
	for _, cause := range e.Causes {
		for _, line := range strings.Split(cause.Message(), "\n") {
			b.WriteString("\n\t")
			b.WriteString(line)
		}
	}
	return b.String()
}

func (e *TypeError) Error() string {
	if e.Node == nil {
		return e.Message()
	}
	r := e.Node.Span()
	return i18n.T(i18n.ErrGeneric, r.StartLine, r.StartCol+1, e.Message())
}
