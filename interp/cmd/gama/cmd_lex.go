package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gamalang/gama/interp/internal/config"
	"github.com/gamalang/gama/interp/internal/lexer"
	"github.com/gamalang/gama/interp/internal/objdump"
)

var lexCmd = &cobra.Command{
	Use:   "lex [archivo.gama]",
	Short: "Lista los tokens de un programa",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		objdump.WriteTokenTable(os.Stdout, toks)
		return nil
	},
}
