package ast

import (
	"fmt"
	"strconv"
	"strings"
)

/*** NODES ***/

type Node interface{ node() }

// Program is a flat statement list; the language has no functions.
type Program struct {
	Stmts []Stmt
}

func (Program) node() {}

/*** EXPRESSIONS ***/

type Expr interface {
	Node
	expr()
}

type IntLit struct{ Value int }

func (*IntLit) node() {}
func (*IntLit) expr() {}

type IdentExpr struct {
	Name string
	Line int
}

func (*IdentExpr) node() {}
func (*IdentExpr) expr() {}

// UnaryExpr covers the only unary form, '-'.
type UnaryExpr struct {
	Op string
	X  Expr
}

func (*UnaryExpr) node() {}
func (*UnaryExpr) expr() {}

type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
	Line  int
}

func (*BinaryExpr) node() {}
func (*BinaryExpr) expr() {}

/*** STATEMENTS ***/

type Stmt interface {
	Node
	stmt()
}

// DeclItem is one name in a declaration list; Init is nil for a bare
// declaration, which leaves the variable undefined.
type DeclItem struct {
	Name string
	Init Expr
}

// DeclStmt: TYPE ident ('=' expr)? (',' ident ('=' expr)?)* ';'
// TypeLex keeps the original-case type keyword for dumps; all values are
// integers at runtime regardless of the declared type.
type DeclStmt struct {
	TypeLex string
	Items   []DeclItem
	Line    int
}

func (DeclStmt) node() {}
func (DeclStmt) stmt() {}

// PrintStmt: Imprimir(expr); Imprimir("texto"); and the brace-delimited
// twins Imprimir{...};. Value is nil when a string literal is printed.
type PrintStmt struct {
	Braced bool
	Text   string
	Value  Expr
}

func (PrintStmt) node() {}
func (PrintStmt) stmt() {}

// SumaStmt: Suma expr; prints the value of the expression.
type SumaStmt struct {
	Value Expr
}

func (SumaStmt) node() {}
func (SumaStmt) stmt() {}

// ReadStmt: Leer(ident); blocks on one integer from the input stream.
type ReadStmt struct {
	Name string
	Line int
}

func (ReadStmt) node() {}
func (ReadStmt) stmt() {}

// AssignStmt: ident = expr; assigning an unseen name declares it.
type AssignStmt struct {
	Name  string
	Value Expr
	Line  int
}

func (AssignStmt) node() {}
func (AssignStmt) stmt() {}

type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

func (IfStmt) node() {}
func (IfStmt) stmt() {}

type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (WhileStmt) node() {}
func (WhileStmt) stmt() {}

// Case is one 'Caso NUM:' clause. Brk records a 'Romper;' immediately
// after the clause body, which ends case scanning early.
type Case struct {
	Match int
	Body  Stmt
	Brk   bool
}

type SwitchStmt struct {
	Value   Expr
	Cases   []Case
	Default Stmt // nil if absent
}

func (SwitchStmt) node() {}
func (SwitchStmt) stmt() {}

type BlockStmt struct {
	Stmts []Stmt
}

func (BlockStmt) node() {}
func (BlockStmt) stmt() {}

/*** DUMP (pretty outline for CLI) ***/

// DumpProgram renders an indented outline of the program, one statement
// per line, used by `gama ast`.
func DumpProgram(p *Program) string {
	var b strings.Builder
	for _, s := range p.Stmts {
		writeStmt(&b, s, 0)
	}
	return b.String()
}

func writeStmt(b *strings.Builder, s Stmt, depth int) {
	ind := strings.Repeat("  ", depth)
	switch st := s.(type) {
	case DeclStmt:
		fmt.Fprintf(b, "%s%s ", ind, st.TypeLex)
		for i, it := range st.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(it.Name)
			if it.Init != nil {
				b.WriteString(" = " + ExprString(it.Init))
			}
		}
		b.WriteString("\n")
	case PrintStmt:
		opener, closer := "(", ")"
		if st.Braced {
			opener, closer = "{", "}"
		}
		if st.Value == nil {
			fmt.Fprintf(b, "%sImprimir%s%q%s\n", ind, opener, st.Text, closer)
		} else {
			fmt.Fprintf(b, "%sImprimir%s%s%s\n", ind, opener, ExprString(st.Value), closer)
		}
	case SumaStmt:
		fmt.Fprintf(b, "%sSuma %s\n", ind, ExprString(st.Value))
	case ReadStmt:
		fmt.Fprintf(b, "%sLeer(%s)\n", ind, st.Name)
	case AssignStmt:
		fmt.Fprintf(b, "%s%s = %s\n", ind, st.Name, ExprString(st.Value))
	case IfStmt:
		fmt.Fprintf(b, "%sSi %s:\n", ind, ExprString(st.Cond))
		writeStmt(b, st.Then, depth+1)
		if st.Else != nil {
			fmt.Fprintf(b, "%sSino:\n", ind)
			writeStmt(b, st.Else, depth+1)
		}
	case WhileStmt:
		fmt.Fprintf(b, "%sMientras %s:\n", ind, ExprString(st.Cond))
		writeStmt(b, st.Body, depth+1)
	case SwitchStmt:
		fmt.Fprintf(b, "%sSwitch %s:\n", ind, ExprString(st.Value))
		for _, c := range st.Cases {
			fmt.Fprintf(b, "%s  Caso %d:\n", ind, c.Match)
			writeStmt(b, c.Body, depth+2)
			if c.Brk {
				fmt.Fprintf(b, "%s  Romper\n", ind)
			}
		}
		if st.Default != nil {
			fmt.Fprintf(b, "%s  Predeterminado:\n", ind)
			writeStmt(b, st.Default, depth+2)
		}
	case BlockStmt:
		fmt.Fprintf(b, "%s{\n", ind)
		for _, inner := range st.Stmts {
			writeStmt(b, inner, depth+1)
		}
		fmt.Fprintf(b, "%s}\n", ind)
	default:
		fmt.Fprintf(b, "%s<stmt>\n", ind)
	}
}

// ExprString renders an expression with explicit grouping for binary
// nodes, making associativity visible in dumps.
func ExprString(e Expr) string {
	switch v := e.(type) {
	case *IntLit:
		return strconv.Itoa(v.Value)
	case *IdentExpr:
		return v.Name
	case *UnaryExpr:
		return v.Op + ExprString(v.X)
	case *BinaryExpr:
		return "(" + ExprString(v.Left) + " " + v.Op + " " + ExprString(v.Right) + ")"
	default:
		return "<expr>"
	}
}
