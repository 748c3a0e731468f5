package term

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/gamalang/gama/interp/internal/diag"
)

// Stdout/Stderr print helpers that ignore (n, err) to satisfy linters.
func Printf(format string, a ...any)  { _, _ = fmt.Printf(format, a...) }
func Println(a ...any)                { _, _ = fmt.Println(a...) }
func Eprintf(format string, a ...any) { _, _ = fmt.Fprintf(os.Stderr, format, a...) }
func Eprintln(a ...any)               { _, _ = fmt.Fprintln(os.Stderr, a...) }

var (
	errStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	codeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
)

// Diag renders err to stderr. Diagnostics get the styled code/title
// treatment, with the catalog help line when one exists; anything else
// prints as "error: ...".
func Diag(err error) {
	d, ok := err.(diag.Diagnostic)
	if !ok {
		Eprintf("%s %v\n", errStyle.Render("error:"), err)
		return
	}
	Eprintf("%s %s %s\n",
		errStyle.Render("error"),
		codeStyle.Render("["+string(d.Code)+"]"),
		d.Error())
	if entry, ok := diag.Lookup(d.Code); ok && entry.Help != "" {
		Eprintf("  %s\n", helpStyle.Render("ayuda: "+entry.Help))
	}
}

// Success prints the end-of-run marker to stdout.
func Success() {
	Println(okStyle.Render("OK"))
}
