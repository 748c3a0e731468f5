package symtab

import (
	"github.com/gamalang/gama/interp/internal/diag"
)

// Symbol is one variable slot. Defined distinguishes "declared but never
// assigned" from a real zero value.
type Symbol struct {
	Name    string
	Value   int
	Defined bool
}

// Table is the flat global symbol table. The language has a single
// scope; blocks share it.
type Table struct {
	syms  map[string]*Symbol
	order []string
}

func New() *Table {
	return &Table{syms: make(map[string]*Symbol)}
}

// Lookup returns the symbol for name, or nil.
func (t *Table) Lookup(name string) *Symbol {
	return t.syms[name]
}

// Declare registers name, creating the slot on first sight. Redeclaring
// an existing name resets it to undefined.
func (t *Table) Declare(name string) *Symbol {
	if s, ok := t.syms[name]; ok {
		s.Defined = false
		return s
	}
	s := &Symbol{Name: name}
	t.syms[name] = s
	t.order = append(t.order, name)
	return s
}

// Set stores value into name, declaring it first when unseen. A name
// therefore exists from its first declaration or its first assignment,
// whichever comes first.
func (t *Table) Set(name string, value int) {
	s := t.syms[name]
	if s == nil {
		s = t.Declare(name)
	}
	s.Value = value
	s.Defined = true
}

// Get reads a declared, initialized name.
func (t *Table) Get(name string) (int, error) {
	s := t.syms[name]
	if s == nil {
		return 0, diag.New(diag.UndeclaredVariable, 0,
			"variable '%s' no declarada", name)
	}
	if !s.Defined {
		return 0, diag.New(diag.UninitializedVar, 0,
			"variable '%s' no inicializada", name)
	}
	return s.Value, nil
}

// Len reports how many names are declared.
func (t *Table) Len() int { return len(t.syms) }

// Symbols returns the symbols in declaration order, the order the
// artifact's table section lists them in.
func (t *Table) Symbols() []*Symbol {
	out := make([]*Symbol, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.syms[name])
	}
	return out
}
