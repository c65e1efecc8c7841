package ast

import (
	"fmt"
	"strings"

	"github.com/oko-lang/oko/internal/token"
)

// Module is the complete parse context: the type table, the function-body
// table, and the item table, plus the module's token buffer and the
// source text (after the four-space to tab rewrite) that token spans point
// back into.
//
// This is the Go stand-in for the original's index-resolving Debug/
// ParseDebug trait pair: Rust could derive a printer that walked indices
// back to names for free, Go can't, so Format below does it by hand.
type Module struct {
	Filename string
	Source   string
	Tokens   []token.Token

	Types    TypeTable
	FnBodies FnBodyTable
	Items    []Item
}

// Format renders the fully baked module in a debug-readable form, the
// text the driver prints on a successful compile.
func (m *Module) Format() string {
	var b strings.Builder
	for _, item := range m.Items {
		switch item.Kind {
		case ItemTy:
			m.formatTy(&b, item.Ty)
		case ItemFn:
			m.formatFn(&b, item.Fn)
		}
	}
	return b.String()
}

func (m *Module) formatTy(b *strings.Builder, idx int) {
	baked := m.Types.Baked[idx]
	fmt.Fprintf(b, "ty %s\n", baked.Name)
	for _, f := range baked.Fields {
		fmt.Fprintf(b, "\t%s: %s\n", f.Name.Data, m.Types.TypeName(f.Type))
	}
}

func (m *Module) formatFn(b *strings.Builder, fn Function) {
	fmt.Fprintf(b, "%s(", fn.Name.Data)
	for i, p := range fn.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s: %s", p.Name.Data, m.Types.TypeName(p.Type))
	}
	fmt.Fprintf(b, ") -> %s\n", m.Types.TypeName(fn.Ret))

	body := m.FnBodies.Baked[fn.Body]
	for _, e := range body.Exprs {
		fmt.Fprintf(b, "\t%s : %s\n", m.formatExpr(e), m.Types.TypeName(e.ResultType()))
	}
}

func (m *Module) formatExpr(e Expr) string {
	switch v := e.(type) {
	case *IdentExpr:
		return v.Name.Data
	case *UnaryExpr:
		return fmt.Sprintf("(%s%s)", v.Op, m.formatExpr(v.Operand))
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", m.formatExpr(v.Left), v.Op, m.formatExpr(v.Right))
	case *TupleExpr:
		parts := make([]string, len(v.Elems))
		for i, el := range v.Elems {
			parts[i] = m.formatExpr(el)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *CallExpr:
		parts := make([]string, len(v.Args))
		for i, a := range v.Args {
			parts[i] = m.formatExpr(a)
		}
		name := m.Items[v.Callee].Fn.Name.Data
		if len(parts) == 0 {
			return name
		}
		return name + " " + strings.Join(parts, " ")
	default:
		return "?"
	}
}
