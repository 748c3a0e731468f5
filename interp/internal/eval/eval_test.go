package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamalang/gama/interp/internal/diag"
	"github.com/gamalang/gama/interp/internal/lexer"
	"github.com/gamalang/gama/interp/internal/parser"
)

// run lexes, parses and executes src, returning the interpreter and the
// run error.
func run(t *testing.T, src, stdin string) (*Interp, error) {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	require.NoError(t, err)
	prog, err := parser.Parse(toks)
	require.NoError(t, err)
	it := New(Options{Stdin: strings.NewReader(stdin), Stdout: &bytes.Buffer{}})
	return it, it.Run(prog)
}

func mustRun(t *testing.T, src, stdin string) *Interp {
	t.Helper()
	it, err := run(t, src, stdin)
	require.NoError(t, err)
	return it
}

func TestArithmeticPrecedence(t *testing.T) {
	it := mustRun(t, "Imprimir(2 + 3 * 4);", "")
	assert.Equal(t, "14\n", it.Output())
}

func TestPowerLeftAssociative(t *testing.T) {
	// 2^3^2 groups as (2^3)^2
	it := mustRun(t, "Imprimir(2 ^ 3 ^ 2);", "")
	assert.Equal(t, "64\n", it.Output())
}

func TestModulo(t *testing.T) {
	it := mustRun(t, "Imprimir(10 % 3);", "")
	assert.Equal(t, "1\n", it.Output())
}

func TestUnaryMinus(t *testing.T) {
	it := mustRun(t, "Imprimir(-5 + 2);", "")
	assert.Equal(t, "-3\n", it.Output())
}

func TestChainedComparisonFoldsPairwise(t *testing.T) {
	// (1 < 2) -> 1, then 1 < 1 -> 0
	it := mustRun(t, "Imprimir(1 < 2 < 1);", "")
	assert.Equal(t, "0\n", it.Output())
}

func TestComparisonsYieldZeroOrOne(t *testing.T) {
	it := mustRun(t, `
Imprimir(3 == 3);
Imprimir(3 != 3);
Imprimir(2 <= 2);
Imprimir(2 >= 3);
`, "")
	assert.Equal(t, "1\n0\n1\n0\n", it.Output())
}

func TestDivisionByZero(t *testing.T) {
	_, err := run(t, "Imprimir(5 / 0);", "")
	require.Error(t, err)
	assert.Equal(t, diag.DivisionByZero, diag.CodeOf(err))
}

func TestModuloByZero(t *testing.T) {
	_, err := run(t, "Imprimir(5 % 0);", "")
	require.Error(t, err)
	assert.Equal(t, diag.ModuloByZero, diag.CodeOf(err))
}

func TestDeclListWithInitializers(t *testing.T) {
	it := mustRun(t, "Entero a, b = 2, c = b + 1;\nImprimir(b);\nImprimir(c);", "")
	assert.Equal(t, "2\n3\n", it.Output())
	assert.Equal(t, 3, it.Table().Len())
}

func TestUseBeforeAssign(t *testing.T) {
	_, err := run(t, "Entero a;\nImprimir(a);", "")
	require.Error(t, err)
	assert.Equal(t, diag.UninitializedVar, diag.CodeOf(err))
}

func TestAssignDeclaresImplicitly(t *testing.T) {
	it := mustRun(t, "x = 1;\nImprimir(x + 1);", "")
	assert.Equal(t, "2\n", it.Output())
}

func TestRuntimeErrorCarriesLine(t *testing.T) {
	_, err := run(t, "Entero a = 1;\nImprimir(b);", "")
	var d diag.Diagnostic
	require.ErrorAs(t, err, &d)
	assert.Equal(t, diag.UndeclaredVariable, d.Code)
	assert.Equal(t, 2, d.Line)
}

func TestPrintStringVerbatim(t *testing.T) {
	it := mustRun(t, `Imprimir("hola  mundo");`, "")
	assert.Equal(t, "hola  mundo\n", it.Output())
}

func TestPrintBracedForm(t *testing.T) {
	it := mustRun(t, "Imprimir{2 * 3};\nImprimir{\"texto\"};", "")
	assert.Equal(t, "6\ntexto\n", it.Output())
}

func TestSuma(t *testing.T) {
	it := mustRun(t, "Entero x = 4;\nSuma x * 2 + 1;", "")
	assert.Equal(t, "9\n", it.Output())
}

func TestLeerReadsInteger(t *testing.T) {
	it := mustRun(t, "Entero n;\nLeer(n);\nImprimir(n + 1);", "41\n")
	assert.Equal(t, "42\n", it.Output())
}

func TestLeerSkipsLeadingWhitespace(t *testing.T) {
	it := mustRun(t, "Entero a, b;\nLeer(a);\nLeer(b);\nImprimir(a + b);", "  3\n 4\n")
	assert.Equal(t, "7\n", it.Output())
}

func TestLeerNonInteger(t *testing.T) {
	_, err := run(t, "Entero n;\nLeer(n);", "hola\n")
	require.Error(t, err)
	assert.Equal(t, diag.InputError, diag.CodeOf(err))
}

func TestIfElseExclusive(t *testing.T) {
	it := mustRun(t, `
Entero x = 1;
Si (x == 1) Imprimir("si"); Sino Imprimir("no");
Si (x == 2) Imprimir("si"); Sino Imprimir("no");
`, "")
	assert.Equal(t, "si\nno\n", it.Output())
}

func TestIfNonZeroIsTrue(t *testing.T) {
	it := mustRun(t, `Si (7) Imprimir("t");`, "")
	assert.Equal(t, "t\n", it.Output())
}

func TestWhileCountsDown(t *testing.T) {
	it := mustRun(t, `
Entero i = 3;
Mientras (i > 0) {
	Imprimir(i);
	i = i - 1;
}
`, "")
	assert.Equal(t, "3\n2\n1\n", it.Output())
}

func TestWhileZeroIterations(t *testing.T) {
	it := mustRun(t, `Mientras (0) Imprimir("nunca");`, "")
	assert.Equal(t, "", it.Output())
}

func TestSwitchFirstMatchWithBreak(t *testing.T) {
	it := mustRun(t, `
Entero x = 2;
Switch (x) {
Caso 1: Imprimir("uno");
Caso 2: Imprimir("dos"); Romper;
Caso 3: Imprimir("tres");
}
`, "")
	assert.Equal(t, "dos\n", it.Output())
}

func TestSwitchOnlyFirstEqualCaseRuns(t *testing.T) {
	// Duplicate labels: only the first equal case executes, with or
	// without Romper.
	it := mustRun(t, `
Entero x = 2;
Switch (x) {
Caso 2: Imprimir("a");
Caso 2: Imprimir("b");
Caso 2: Imprimir("c");
}
`, "")
	assert.Equal(t, "a\n", it.Output())
}

func TestSwitchBreakAfterSkippedCaseEndsScan(t *testing.T) {
	// The Romper after the unmatched Caso 1 stops the scan before
	// Caso 3 is ever compared; with no match, the default runs.
	it := mustRun(t, `
Entero x = 3;
Switch (x) {
Caso 1: Imprimir("uno"); Romper;
Caso 3: Imprimir("tres");
Predeterminado: Imprimir("otro");
}
`, "")
	assert.Equal(t, "otro\n", it.Output())
}

func TestSwitchBreakAfterSkippedCaseBlocksLaterMatch(t *testing.T) {
	it := mustRun(t, `
Entero x = 3;
Switch (x) {
Caso 1: Imprimir("uno"); Romper;
Caso 3: Imprimir("tres");
}
`, "")
	assert.Equal(t, "", it.Output())
}

func TestSwitchDefaultOnlyWhenNoMatch(t *testing.T) {
	src := `
Entero x = %s;
Switch (x) {
Caso 1: Imprimir("uno"); Romper;
Predeterminado: Imprimir("otro");
}
`
	it := mustRun(t, strings.Replace(src, "%s", "1", 1), "")
	assert.Equal(t, "uno\n", it.Output())

	it = mustRun(t, strings.Replace(src, "%s", "9", 1), "")
	assert.Equal(t, "otro\n", it.Output())
}

func TestSwitchEnglishKeywords(t *testing.T) {
	it := mustRun(t,
		"Switch(2){ Case 1: Imprimir(1); Case 2: Imprimir(2); Break; Default: Imprimir(0);}", "")
	assert.Equal(t, "2\n", it.Output())
}

func TestBlocksShareScope(t *testing.T) {
	it := mustRun(t, `
Entero x = 1;
{
	x = 2;
	Entero y = 5;
}
Imprimir(x + y);
`, "")
	assert.Equal(t, "7\n", it.Output())
}

func TestRedeclareResets(t *testing.T) {
	_, err := run(t, "Entero a = 1;\nEntero a;\nImprimir(a);", "")
	require.Error(t, err)
	assert.Equal(t, diag.UninitializedVar, diag.CodeOf(err))
}

func TestEffectsBeforeErrorAreKept(t *testing.T) {
	it, err := run(t, `Imprimir("antes");
Imprimir(1 / 0);`, "")
	require.Error(t, err)
	assert.Equal(t, "antes\n", it.Output())
}

func TestOutputTeesToStdout(t *testing.T) {
	var buf bytes.Buffer
	toks, err := lexer.Tokenize(`Imprimir("eco");`)
	require.NoError(t, err)
	prog, err := parser.Parse(toks)
	require.NoError(t, err)
	it := New(Options{Stdin: strings.NewReader(""), Stdout: &buf})
	require.NoError(t, it.Run(prog))
	assert.Equal(t, "eco\n", buf.String())
	assert.Equal(t, buf.String(), it.Output())
}

func TestNegativeDivisionTruncatesTowardZero(t *testing.T) {
	it := mustRun(t, "Imprimir(-7 / 2);", "")
	assert.Equal(t, "-3\n", it.Output())
}
