package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gamalang/gama/interp/internal/config"
	"github.com/gamalang/gama/interp/internal/eval"
	"github.com/gamalang/gama/interp/internal/lexer"
	"github.com/gamalang/gama/interp/internal/objdump"
	"github.com/gamalang/gama/interp/internal/parser"
	"github.com/gamalang/gama/interp/internal/term"
)

var objPath string

var runCmd = &cobra.Command{
	Use:   "run [archivo.gama]",
	Short: "Ejecuta un programa",
	Long:  "Ejecuta un programa Gama desde un archivo o la entrada estandar y escribe el artefacto .obj si la ejecucion termina sin errores.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProgram(args)
	},
}

func init() {
	runCmd.Flags().StringVar(&objPath, "obj", "", "ruta del artefacto .obj (por defecto la de gama.yaml)")
}

// readSource loads the program text: from the named file, or stdin when
// no file is given.
func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runProgram(args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	src, err := readSource(args)
	if err != nil {
		return err
	}

	toks, err := lexer.NewWithLimits(src, lexer.Limits{
		MaxTokens: cfg.Limits.MaxTokens,
		MaxLexeme: cfg.Limits.MaxLexeme,
	}).Tokenize()
	if err != nil {
		return err
	}

	prog, err := parser.Parse(toks)
	if err != nil {
		return err
	}

	it := eval.New(eval.Options{})
	if err := it.Run(prog); err != nil {
		return err
	}
	term.Success()

	// The artifact is only written after a clean run.
	path := objPath
	if path == "" {
		path = cfg.ObjPath
	}
	return objdump.WriteObjFile(path, src, toks, prog, it.Output(), it.Table())
}
