package diag

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormat(t *testing.T) {
	d := New(DivisionByZero, 4, "division por cero")
	assert.Equal(t, "linea 4: division por cero", d.Error())

	d = New(TooManyTokens, 0, "demasiados tokens")
	assert.Equal(t, "demasiados tokens", d.Error())
}

func TestWithLineOnlyFillsMissing(t *testing.T) {
	d := New(UndeclaredVariable, 0, "variable 'x' no declarada")
	assert.Equal(t, 7, d.WithLine(7).Line)

	d = New(UndeclaredVariable, 3, "variable 'x' no declarada")
	assert.Equal(t, 3, d.WithLine(7).Line)
}

func TestCodeOf(t *testing.T) {
	err := error(New(InputError, 1, "no se pudo leer"))
	assert.Equal(t, InputError, CodeOf(err))

	wrapped := fmt.Errorf("contexto: %w", New(ModuloByZero, 2, "modulo por cero"))
	assert.Equal(t, ModuloByZero, CodeOf(wrapped))

	assert.Equal(t, Code(""), CodeOf(errors.New("otro")))
}

func TestCatalogCoversAllCodes(t *testing.T) {
	for _, code := range []Code{
		UnterminatedString, TooManyTokens, LexemeTooLong,
		UnexpectedToken, ExpectedIdent, ExpectedNumber,
		UndeclaredVariable, UninitializedVar, DivisionByZero,
		ModuloByZero, InputError,
	} {
		entry, ok := Lookup(code)
		require.True(t, ok, string(code))
		assert.Equal(t, string(code), entry.ID)
		assert.NotEmpty(t, entry.Title)
	}
}

func TestLookupUnknownCode(t *testing.T) {
	_, ok := Lookup(Code("GXX9999"))
	assert.False(t, ok)
}
