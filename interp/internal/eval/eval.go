package eval

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gamalang/gama/interp/internal/ast"
	"github.com/gamalang/gama/interp/internal/diag"
	"github.com/gamalang/gama/interp/internal/symtab"
)

// Options configures an interpreter's streams. Nil fields default to
// the process streams.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
}

// Interp executes a parsed program against a flat symbol table. Program
// output goes to the configured stdout and is also captured for the
// object dump.
type Interp struct {
	table    *symtab.Table
	in       io.Reader
	out      io.Writer
	captured bytes.Buffer
}

func New(opts Options) *Interp {
	in := opts.Stdin
	if in == nil {
		in = os.Stdin
	}
	var out io.Writer = os.Stdout
	if opts.Stdout != nil {
		out = opts.Stdout
	}
	it := &Interp{table: symtab.New(), in: in}
	it.out = io.MultiWriter(out, &it.captured)
	return it
}

// Run executes prog from the top. The first diagnostic aborts execution
// and is returned; statements already executed keep their effects.
func (it *Interp) Run(prog *ast.Program) error {
	for _, s := range prog.Stmts {
		if err := it.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// Table exposes the symbol table for dumps and tests.
func (it *Interp) Table() *symtab.Table { return it.table }

// Output returns everything the program printed so far.
func (it *Interp) Output() string { return it.captured.String() }

func (it *Interp) execStmt(s ast.Stmt) error {
	switch st := s.(type) {
	case ast.DeclStmt:
		return it.execDecl(st)
	case ast.PrintStmt:
		return it.execPrint(st)
	case ast.SumaStmt:
		v, err := it.evalExpr(st.Value)
		if err != nil {
			return err
		}
		fmt.Fprintf(it.out, "%d\n", v)
		return nil
	case ast.ReadStmt:
		return it.execRead(st)
	case ast.AssignStmt:
		v, err := it.evalExpr(st.Value)
		if err != nil {
			return err
		}
		it.table.Set(st.Name, v)
		return nil
	case ast.IfStmt:
		cond, err := it.evalExpr(st.Cond)
		if err != nil {
			return err
		}
		if cond != 0 {
			return it.execStmt(st.Then)
		}
		if st.Else != nil {
			return it.execStmt(st.Else)
		}
		return nil
	case ast.WhileStmt:
		for {
			cond, err := it.evalExpr(st.Cond)
			if err != nil {
				return err
			}
			if cond == 0 {
				return nil
			}
			if err := it.execStmt(st.Body); err != nil {
				return err
			}
		}
	case ast.SwitchStmt:
		return it.execSwitch(st)
	case ast.BlockStmt:
		for _, inner := range st.Stmts {
			if err := it.execStmt(inner); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("sentencia desconocida %T", s)
	}
}

func (it *Interp) execDecl(st ast.DeclStmt) error {
	for _, item := range st.Items {
		it.table.Declare(item.Name)
		if item.Init == nil {
			continue
		}
		v, err := it.evalExpr(item.Init)
		if err != nil {
			return err
		}
		it.table.Set(item.Name, v)
	}
	return nil
}

func (it *Interp) execPrint(st ast.PrintStmt) error {
	if st.Value == nil {
		fmt.Fprintf(it.out, "%s\n", st.Text)
		return nil
	}
	v, err := it.evalExpr(st.Value)
	if err != nil {
		return err
	}
	fmt.Fprintf(it.out, "%d\n", v)
	return nil
}

func (it *Interp) execRead(st ast.ReadStmt) error {
	var v int
	if _, err := fmt.Fscan(it.in, &v); err != nil {
		return diag.New(diag.InputError, st.Line,
			"no se pudo leer un entero para '%s'", st.Name)
	}
	it.table.Set(st.Name, v)
	return nil
}

// execSwitch evaluates the scrutinee once, then scans cases in order.
// At most one case body runs: the first whose label equals the value.
// A Romper after any clause, matched or not, ends the scan; cases after
// it are never compared. Default runs only when no case matched.
func (it *Interp) execSwitch(st ast.SwitchStmt) error {
	v, err := it.evalExpr(st.Value)
	if err != nil {
		return err
	}
	matched := false
	for _, c := range st.Cases {
		if !matched && c.Match == v {
			matched = true
			if err := it.execStmt(c.Body); err != nil {
				return err
			}
		}
		if c.Brk {
			break
		}
	}
	if !matched && st.Default != nil {
		return it.execStmt(st.Default)
	}
	return nil
}

func (it *Interp) evalExpr(e ast.Expr) (int, error) {
	switch v := e.(type) {
	case *ast.IntLit:
		return v.Value, nil
	case *ast.IdentExpr:
		n, err := it.table.Get(v.Name)
		if err != nil {
			return 0, positioned(err, v.Line)
		}
		return n, nil
	case *ast.UnaryExpr:
		x, err := it.evalExpr(v.X)
		if err != nil {
			return 0, err
		}
		return -x, nil
	case *ast.BinaryExpr:
		return it.evalBinary(v)
	default:
		return 0, fmt.Errorf("expresion desconocida %T", e)
	}
}

func (it *Interp) evalBinary(e *ast.BinaryExpr) (int, error) {
	l, err := it.evalExpr(e.Left)
	if err != nil {
		return 0, err
	}
	r, err := it.evalExpr(e.Right)
	if err != nil {
		return 0, err
	}
	switch e.Op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, diag.New(diag.DivisionByZero, e.Line, "division por cero")
		}
		return l / r, nil
	case "%":
		if r == 0 {
			return 0, diag.New(diag.ModuloByZero, e.Line, "modulo por cero")
		}
		return l % r, nil
	case "^":
		return int(math.Pow(float64(l), float64(r))), nil
	case "==":
		return b2i(l == r), nil
	case "!=":
		return b2i(l != r), nil
	case "<":
		return b2i(l < r), nil
	case "<=":
		return b2i(l <= r), nil
	case ">":
		return b2i(l > r), nil
	case ">=":
		return b2i(l >= r), nil
	default:
		return 0, fmt.Errorf("operador desconocido '%s'", e.Op)
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// positioned attaches a line to a symbol-table diagnostic, which carries
// none of its own.
func positioned(err error, line int) error {
	if d, ok := err.(diag.Diagnostic); ok {
		return d.WithLine(line)
	}
	return err
}
