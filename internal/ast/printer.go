package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (f *File) String() string {
	var b strings.Builder
	for i, d := range f.Decls {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(d.String())
	}
	return b.String()
}

func (i Ident) String() string {
	return i.Value
}

func (e *EnumDecl) String() string {
	names := make([]string, len(e.Entries))
	for i, entry := range e.Entries {
		names[i] = entry.Value
	}
	return fmt.Sprintf("enum %s { %s }", e.Name.Value, strings.Join(names, ", "))
}

func (c *ClassDecl) String() string {
	var b strings.Builder
	switch c.Modifier {
	case OpenClass:
		b.WriteString("open ")
	case SealedClass:
		b.WriteString("sealed ")
	}
	b.WriteString("class " + c.Name.Value)
	if c.Super != nil {
		b.WriteString(" : " + c.Super.Value)
	}
	return b.String()
}

func (b *BuilderDecl) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("builder %s<%s> {\n", b.Name.Value, b.TypeParam.Value))
	for _, m := range b.Members {
		sb.WriteString("  " + m.String() + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (f *FunDecl) String() string {
	var b strings.Builder
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	b.WriteString(fmt.Sprintf("fun %s(%s)", f.Name.Value, strings.Join(params, ", ")))
	if f.Return != nil {
		b.WriteString(": " + f.Return.String())
	}
	if f.ExprBody != nil {
		b.WriteString(" = " + f.ExprBody.String())
	} else if f.Body != nil {
		b.WriteString(" " + f.Body.String())
	}
	return b.String()
}

func (p *Param) String() string {
	return fmt.Sprintf("%s: %s", p.Name.Value, p.Type.String())
}

func (p *PropertyDecl) String() string {
	var b strings.Builder
	if p.Mutable {
		b.WriteString("var ")
	} else {
		b.WriteString("val ")
	}
	b.WriteString(p.Name.Value)
	if p.Type != nil {
		b.WriteString(": " + p.Type.String())
	}
	if p.Init != nil {
		b.WriteString(" = " + p.Init.String())
	}
	return b.String()
}

func (t *TypeRef) String() string {
	if t == nil {
		return "<missing>"
	}
	var b strings.Builder
	b.WriteString(t.Name.Value)
	if len(t.Args) > 0 {
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.String()
		}
		b.WriteString("<" + strings.Join(args, ", ") + ">")
	}
	if t.Nullable {
		b.WriteString("?")
	}
	return b.String()
}

func (be *BadExpr) String() string {
	return fmt.Sprintf("BadExpr: %s", be.Message)
}

func (b *Block) String() string {
	return b.StringIndented("")
}

func (b *Block) StringIndented(indent string) string {
	if len(b.Stmts) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Stmts {
		sb.WriteString(indent + "  " + strings.ReplaceAll(s.String(), "\n", "\n"+indent+"  ") + "\n")
	}
	sb.WriteString(indent + "}")
	return sb.String()
}

func (n *NameRef) String() string {
	return n.Name
}

func (l *Literal) String() string {
	if l.Kind == StringLiteral {
		return strconv.Quote(l.Value)
	}
	return l.Value
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op, b.Right.String())
}

func (u *UnaryExpr) String() string {
	return u.Op + u.Operand.String()
}

func (i *IsExpr) String() string {
	op := "is"
	if i.Negated {
		op = "!is"
	}
	return fmt.Sprintf("%s %s %s", i.Operand.String(), op, i.Type.String())
}

func (p *ParenExpr) String() string {
	return "(" + p.Inner.String() + ")"
}

func (d *DotExpr) String() string {
	return d.Receiver.String() + "." + d.Selector.Name
}

func (c *CallExpr) String() string {
	var b strings.Builder
	b.WriteString(c.Callee.String())
	if len(c.Args) > 0 || c.Lambda == nil {
		args := make([]string, len(c.Args))
		for i, a := range c.Args {
			args[i] = a.String()
		}
		b.WriteString("(" + strings.Join(args, ", ") + ")")
	}
	if c.Lambda != nil {
		b.WriteString(" " + c.Lambda.String())
	}
	return b.String()
}

func (l *LambdaExpr) String() string {
	if l.Label != nil {
		return l.Label.Value + "@" + l.Body.String()
	}
	return l.Body.String()
}

func (i *IfExpr) String() string {
	s := fmt.Sprintf("if (%s) %s", i.Cond.String(), i.Then.String())
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}

func (w *WhenExpr) String() string {
	var b strings.Builder
	b.WriteString("when ")
	if w.Subject != nil {
		b.WriteString("(" + w.Subject.String() + ") ")
	}
	b.WriteString("{\n")
	for _, br := range w.Branches {
		b.WriteString("  " + strings.ReplaceAll(br.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (wb *WhenBranch) String() string {
	if wb.Else {
		return "else -> " + wb.Body.String()
	}
	conds := make([]string, len(wb.Conditions))
	for i, c := range wb.Conditions {
		conds[i] = c.String()
	}
	return strings.Join(conds, ", ") + " -> " + wb.Body.String()
}

func (wc *WhenCondition) String() string {
	if wc.IsType != nil {
		if wc.Negated {
			return "!is " + wc.IsType.String()
		}
		return "is " + wc.IsType.String()
	}
	return wc.Value.String()
}

func (t *TryExpr) String() string {
	var b strings.Builder
	b.WriteString("try " + t.Body.String())
	for _, c := range t.Catches {
		b.WriteString(" " + c.String())
	}
	if t.Finally != nil {
		b.WriteString(" finally " + t.Finally.String())
	}
	return b.String()
}

func (c *CatchClause) String() string {
	return fmt.Sprintf("catch (%s) %s", c.Param.String(), c.Body.String())
}

func (w *WhileExpr) String() string {
	return fmt.Sprintf("while (%s) %s", w.Cond.String(), w.Body.String())
}

func (r *ReturnExpr) String() string {
	s := "return"
	if r.Label != nil {
		s += "@" + r.Label.Value
	}
	if r.Value != nil {
		s += " " + r.Value.String()
	}
	return s
}

func (t *ThrowExpr) String() string {
	return "throw " + t.Value.String()
}

func (b *BuildExpr) String() string {
	s := "build " + b.Builder.Value
	if b.TypeArg != nil {
		s += "<" + b.TypeArg.String() + ">"
	}
	return s + " " + b.Lambda.String()
}
