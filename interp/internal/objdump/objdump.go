package objdump

import (
	"fmt"
	"io"
	"os"

	"github.com/gamalang/gama/interp/internal/ast"
	"github.com/gamalang/gama/interp/internal/lexer"
	"github.com/gamalang/gama/interp/internal/symtab"
)

// WriteObj renders the sectioned run artifact: source, token listing by
// category, statement outline, captured program output, and the final
// symbol table. The layout mirrors what a successful run leaves behind
// in the .obj file.
func WriteObj(w io.Writer, src string, toks []lexer.Token, prog *ast.Program, output string, table *symtab.Table) error {
	fmt.Fprintln(w, "=== Codigo fuente ===")
	fmt.Fprint(w, src)
	if len(src) > 0 && src[len(src)-1] != '\n' {
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\n=== Lexer ===")
	writeCategory(w, "Palabras reservadas", toks, func(k lexer.Kind) bool { return k.IsReserved() })
	writeCategory(w, "Identificadores", toks, func(k lexer.Kind) bool { return k == lexer.TokIdent })
	writeCategory(w, "Numeros", toks, func(k lexer.Kind) bool { return k == lexer.TokNum })
	writeCategory(w, "Cadenas", toks, func(k lexer.Kind) bool { return k == lexer.TokString })
	writeCategory(w, "Operadores", toks, func(k lexer.Kind) bool { return k.IsOperator() })
	writeCategory(w, "Simbolos", toks, func(k lexer.Kind) bool { return k.IsSymbol() })

	fmt.Fprintln(w, "\n=== Parser ===")
	fmt.Fprint(w, ast.DumpProgram(prog))

	fmt.Fprintln(w, "\n=== Ejecucion ===")
	fmt.Fprint(w, output)

	fmt.Fprintln(w, "\n=== Tabla de simbolos ===")
	for _, s := range table.Symbols() {
		if s.Defined {
			fmt.Fprintf(w, "%s\t%d\n", s.Name, s.Value)
		} else {
			fmt.Fprintf(w, "%s\tsin valor\n", s.Name)
		}
	}
	return nil
}

func writeCategory(w io.Writer, title string, toks []lexer.Token, keep func(lexer.Kind) bool) {
	fmt.Fprintf(w, "-- %s --\n", title)
	for _, t := range toks {
		if keep(t.Kind) {
			fmt.Fprintf(w, "%d\t%s\t%s\n", t.Line, t.Kind, t.Lex)
		}
	}
}

// WriteTokenTable renders the flat line/kind/lexeme listing used by
// `gama lex`. The trailing EOF token is included.
func WriteTokenTable(w io.Writer, toks []lexer.Token) {
	for _, t := range toks {
		fmt.Fprintf(w, "%d\t%s\t%s\n", t.Line, t.Kind, t.Lex)
	}
}

// WriteObjFile writes the artifact to path, creating or truncating it.
func WriteObjFile(path, src string, toks []lexer.Token, prog *ast.Program, output string, table *symtab.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteObj(f, src, toks, prog, output, table)
}
