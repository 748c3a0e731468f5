package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gamalang/gama/interp/internal/term"
	"github.com/gamalang/gama/interp/internal/version"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "gama",
	Short:         "gama ejecuta programas del lenguaje Gama",
	Long:          "gama es el interprete del lenguaje de ensenanza Gama: analiza, ejecuta y vuelca programas .gama.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la version",
	Run: func(cmd *cobra.Command, args []string) {
		term.Printf("%s\n", version.String())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "gama.yaml", "archivo de configuracion")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		term.Diag(err)
		os.Exit(1)
	}
}
