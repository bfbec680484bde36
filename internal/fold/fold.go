// Package fold 计算操作数全为字面量的运算
package fold

import (
	"github.com/phylospec/phylospec/internal/lexer"
	"github.com/phylospec/phylospec/internal/parser"
)

// Fold 返回 expr 的副本，其中字面量上的一元和二元运算替换为计算结果，
// 字面量外的括号被去掉。无法计算的运算（如除以零）保持原样，expr 本身不会被修改
func Fold(expr parser.Expr) parser.Expr {
	switch e := expr.(type) {
	case *parser.Literal:
		c := *e
		return &c

	case *parser.Variable:
		c := *e
		return &c

	case *parser.Grouping:
		inner := Fold(e.Inner)
		if lit, ok := inner.(*parser.Literal); ok {
			lit.Range = e.Range
			return lit
		}
		return &parser.Grouping{Token: e.Token, Range: e.Range, Inner: inner}

	case *parser.Unary:
		operand := Fold(e.Operand)
		if lit, ok := operand.(*parser.Literal); ok {
			if v, ok := evalUnary(e.Op, lit.Value); ok {
				return literal(v, e.Range)
			}
		}
		return &parser.Unary{Token: e.Token, Range: e.Range, Op: e.Op, Operand: operand}

	case *parser.Binary:
		left, right := Fold(e.Left), Fold(e.Right)
		l, lok := left.(*parser.Literal)
		r, rok := right.(*parser.Literal)
		if lok && rok {
			if v, ok := evalBinary(e.Op, l.Value, r.Value); ok {
				return literal(v, e.Range)
			}
		}
		return &parser.Binary{Token: e.Token, Range: e.Range, Op: e.Op, Left: left, Right: right}

	case *parser.Call:
		args := make([]parser.Argument, len(e.Args))
		for i, arg := range e.Args {
			args[i] = Fold(arg).(parser.Argument)
		}
		return &parser.Call{Token: e.Token, Range: e.Range, Name: e.Name, Args: args}

	case *parser.AssignedArgument:
		return &parser.AssignedArgument{Token: e.Token, Range: e.Range, Name: e.Name, Value: Fold(e.Value)}

	case *parser.DrawnArgument:
		return &parser.DrawnArgument{Token: e.Token, Range: e.Range, Name: e.Name, Value: Fold(e.Value)}

	case *parser.ArrayLiteral:
		elements := make([]parser.Expr, len(e.Elements))
		for i, el := range e.Elements {
			elements[i] = Fold(el)
		}
		return &parser.ArrayLiteral{Token: e.Token, Range: e.Range, Elements: elements}

	case *parser.ListComprehension:
		vars := append([]string(nil), e.Vars...)
		return &parser.ListComprehension{Token: e.Token, Range: e.Range, Body: Fold(e.Body), Vars: vars, List: Fold(e.List)}

	case *parser.PropertyGet:
		return &parser.PropertyGet{Token: e.Token, Range: e.Range, Object: Fold(e.Object), Property: e.Property}
	}
	return expr
}

// Stmts 折叠 stmts 中每条语句的值
func Stmts(stmts []parser.Stmt) []parser.Stmt {
	out := make([]parser.Stmt, len(stmts))
	for i, stmt := range stmts {
		out[i] = foldStmt(stmt)
	}
	return out
}

func foldStmt(stmt parser.Stmt) parser.Stmt {
	switch s := stmt.(type) {
	case *parser.AssignmentStmt:
		return &parser.AssignmentStmt{Token: s.Token, Range: s.Range, Type: s.Type, Name: s.Name, Value: Fold(s.Value)}
	case *parser.DrawStmt:
		return &parser.DrawStmt{Token: s.Token, Range: s.Range, Type: s.Type, Name: s.Name, Value: Fold(s.Value)}
	case *parser.DecoratedStmt:
		return &parser.DecoratedStmt{
			Token:     s.Token,
			Range:     s.Range,
			Decorator: Fold(s.Decorator).(*parser.Call),
			Stmt:      foldStmt(s.Stmt),
		}
	}
	return stmt
}

// literal 为计算结果构建字面量节点
func literal(v any, r lexer.Range) *parser.Literal {
	var typ lexer.TokenType
	switch v := v.(type) {
	case int64:
		typ = lexer.TOKEN_INT
	case float64:
		typ = lexer.TOKEN_FLOAT
	case string:
		typ = lexer.TOKEN_STRING
	case bool:
		typ = lexer.TOKEN_FALSE
		if v {
			typ = lexer.TOKEN_TRUE
		}
	}
	return &parser.Literal{
		Token: lexer.Token{Type: typ, Literal: parser.FormatValue(v), Value: v, Range: r},
		Range: r,
		Value: v,
	}
}
