package parser

import (
	"strconv"
	"strings"

	"github.com/phylospec/phylospec/internal/lexer"
)

// Printer 将语法树输出为规范形式的 PhyloSpec 源码
type Printer struct {
	builder strings.Builder
	prevEnd int // 上一个输出项在源码中的结束行
}

// Print 输出整个文档，源码中语句之间的空行保留为一个空行
func Print(stmts []Stmt) string {
	return PrintDocument(&Document{Stmts: stmts})
}

// PrintDocument 输出文档并还原注释
// 独占一行的注释输出在其后的语句之前，行尾注释输出在所在语句的末尾
func PrintDocument(doc *Document) string {
	p := &Printer{}
	comments := doc.Comments
	for _, stmt := range doc.Stmts {
		span := stmt.Span()
		var trailing []string
		for len(comments) > 0 && comments[0].Range.StartLine <= span.EndLine {
			c := comments[0]
			comments = comments[1:]
			if c.Trailing && c.Range.StartLine >= span.StartLine {
				trailing = append(trailing, c.Text)
				continue
			}
			p.blankLine(c.Range.StartLine)
			p.writeLine(c.Text)
			p.prevEnd = c.Range.EndLine
		}

		p.blankLine(span.StartLine)
		p.writeStmt(stmt)
		if len(trailing) > 0 {
			p.write(" " + strings.Join(trailing, " "))
		}
		p.write("\n")
		p.prevEnd = span.EndLine
	}
	for _, c := range comments {
		p.blankLine(c.Range.StartLine)
		p.writeLine(c.Text)
		p.prevEnd = c.Range.EndLine
	}
	return p.builder.String()
}

// blankLine 源码中与上一项之间有空行时输出一个空行
func (p *Printer) blankLine(line int) {
	if p.prevEnd > 0 && line > p.prevEnd+1 {
		p.writeLine("")
	}
}

// PrintStmt 输出一条语句，不带结尾换行
func PrintStmt(stmt Stmt) string {
	p := &Printer{}
	p.writeStmt(stmt)
	return p.builder.String()
}

// PrintExpr 输出一个表达式
func PrintExpr(expr Expr) string {
	p := &Printer{}
	p.writeExpr(expr)
	return p.builder.String()
}

// PrintType 输出类型标注
func PrintType(t TypeExpr) string {
	p := &Printer{}
	p.writeType(t)
	return p.builder.String()
}

func (p *Printer) writeLine(s string) {
	p.builder.WriteString(s)
	p.builder.WriteString("\n")
}

func (p *Printer) write(s string) {
	p.builder.WriteString(s)
}

func (p *Printer) writeStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *ImportStmt:
		p.write("import " + strings.Join(s.Path, "."))
	case *AssignmentStmt:
		p.writeType(s.Type)
		p.write(" " + s.Name + " = ")
		p.writeExpr(s.Value)
	case *DrawStmt:
		p.writeType(s.Type)
		p.write(" " + s.Name + " ~ ")
		p.writeExpr(s.Value)
	case *DecoratedStmt:
		p.write("@")
		p.writeExpr(s.Decorator)
		p.write("\n")
		p.writeStmt(s.Stmt)
	}
}

func (p *Printer) writeType(t TypeExpr) {
	switch t := t.(type) {
	case *AtomicType:
		p.write(t.Name)
	case *GenericType:
		p.write(t.Name + "<")
		for i, arg := range t.Args {
			if i > 0 {
				p.write(", ")
			}
			p.writeType(arg)
		}
		p.write(">")
	}
}

func (p *Printer) writeExpr(expr Expr) {
	switch e := expr.(type) {
	case *Literal:
		p.write(FormatValue(e.Value))
	case *Variable:
		p.write(e.Name)
	case *Unary:
		p.write(lexer.TokenTypeName(e.Op))
		p.writeExpr(e.Operand)
	case *Binary:
		p.writeExpr(e.Left)
		p.write(" " + lexer.TokenTypeName(e.Op) + " ")
		p.writeExpr(e.Right)
	case *Grouping:
		p.write("(")
		p.writeExpr(e.Inner)
		p.write(")")
	case *Call:
		p.write(e.Name + "(")
		for i, arg := range e.Args {
			if i > 0 {
				p.write(", ")
			}
			p.writeExpr(arg)
		}
		p.write(")")
	case *AssignedArgument:
		if e.Name != "" {
			p.write(e.Name + " = ")
		}
		p.writeExpr(e.Value)
	case *DrawnArgument:
		p.write(e.Name + " ~ ")
		p.writeExpr(e.Value)
	case *ArrayLiteral:
		p.write("[")
		for i, el := range e.Elements {
			if i > 0 {
				p.write(", ")
			}
			p.writeExpr(el)
		}
		p.write("]")
	case *ListComprehension:
		p.write("[")
		p.writeExpr(e.Body)
		p.write(" for " + strings.Join(e.Vars, ", ") + " in ")
		p.writeExpr(e.List)
		p.write("]")
	case *PropertyGet:
		p.writeExpr(e.Object)
		p.write("." + e.Property)
	}
}

// FormatValue 按词法分析器能读回的形式输出字面量值
func FormatValue(v any) string {
	switch v := v.(type) {
	case string:
		return `"` + v + `"`
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return "<nil>"
}
