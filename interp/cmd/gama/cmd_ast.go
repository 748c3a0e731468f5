package main

import (
	"github.com/spf13/cobra"

	"github.com/gamalang/gama/interp/internal/ast"
	"github.com/gamalang/gama/interp/internal/lexer"
	"github.com/gamalang/gama/interp/internal/parser"
	"github.com/gamalang/gama/interp/internal/term"
)

var astCmd = &cobra.Command{
	Use:   "ast [archivo.gama]",
	Short: "Muestra el arbol de sentencias de un programa",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args)
		if err != nil {
			return err
		}
		toks, err := lexer.Tokenize(src)
		if err != nil {
			return err
		}
		prog, err := parser.Parse(toks)
		if err != nil {
			return err
		}
		term.Printf("%s", ast.DumpProgram(prog))
		return nil
	},
}
