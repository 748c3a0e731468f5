package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "GLE0001"
	Title string `json:"title"` // short human title e.g., "cadena sin cerrar"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the top-level catalog format, one section per stage.
type Registry struct {
	Lexer   map[string]CodeEntry `json:"lexer"`
	Parser  map[string]CodeEntry `json:"parser"`
	Runtime map[string]CodeEntry `json:"runtime"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			regErr = nil // empty catalog is allowed
			return
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns the catalog entry for a code, searching every section.
func Lookup(code Code) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	for _, section := range []map[string]CodeEntry{reg.Lexer, reg.Parser, reg.Runtime} {
		if section == nil {
			continue
		}
		if ce, ok := section[string(code)]; ok {
			return ce, ok
		}
	}
	return CodeEntry{}, false
}
