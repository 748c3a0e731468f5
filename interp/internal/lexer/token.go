package lexer

// Kind enumerates token kinds produced by the lexer.
type Kind int

const (
	// Special
	TokEOF     Kind = iota
	TokUnknown      // unrecognized character; surfaces as a parse error later

	// Type keywords
	TokEntero
	TokCaracter
	TokFlotante
	TokVar
	TokConst
	TokItems
	TokItem

	// Statement keywords
	TokImprimir
	TokLeer
	TokSuma
	TokSi
	TokSino
	TokMientras
	TokSwitch
	TokCaso
	TokPredeterminado
	TokRomper

	// Literals/identifiers
	TokIdent
	TokNum
	TokString

	// Punctuation
	TokComma  // ,
	TokSemi   // ;
	TokLParen // (
	TokRParen // )
	TokLBrace // {
	TokRBrace // }
	TokColon  // :

	// Relational/assignment operators
	TokAssign // =
	TokEq     // ==
	TokNeq    // !=
	TokLt     // <
	TokLe     // <=
	TokGt     // >
	TokGe     // >=

	// Arithmetic operators
	TokPlus    // +
	TokMinus   // -
	TokStar    // *
	TokSlash   // /
	TokPercent // %
	TokCaret   // ^
)

// Token is a single lexeme with its source line. Immutable once produced.
type Token struct {
	Kind Kind
	Lex  string
	Line int
}

var kindNames = map[Kind]string{
	TokEOF:            "EOF",
	TokUnknown:        "DESCONOCIDO",
	TokEntero:         "Entero",
	TokCaracter:       "Caracter",
	TokFlotante:       "Flotante",
	TokVar:            "var",
	TokConst:          "const",
	TokItems:          "items",
	TokItem:           "item",
	TokImprimir:       "Imprimir",
	TokLeer:           "Leer",
	TokSuma:           "Suma",
	TokSi:             "Si",
	TokSino:           "Sino",
	TokMientras:       "Mientras",
	TokSwitch:         "Switch",
	TokCaso:           "Caso",
	TokPredeterminado: "Predeterminado",
	TokRomper:         "Romper",
	TokIdent:          "IDENT",
	TokNum:            "NUM",
	TokString:         "CADENA",
	TokComma:          "','",
	TokSemi:           "';'",
	TokLParen:         "'('",
	TokRParen:         "')'",
	TokLBrace:         "'{'",
	TokRBrace:         "'}'",
	TokColon:          "':'",
	TokAssign:         "'='",
	TokEq:             "'=='",
	TokNeq:            "'!='",
	TokLt:             "'<'",
	TokLe:             "'<='",
	TokGt:             "'>'",
	TokGe:             "'>='",
	TokPlus:           "'+'",
	TokMinus:          "'-'",
	TokStar:           "'*'",
	TokSlash:          "'/'",
	TokPercent:        "'%'",
	TokCaret:          "'^'",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "?"
}

// IsReserved reports whether k is a reserved word.
func (k Kind) IsReserved() bool {
	return k >= TokEntero && k <= TokRomper
}

// IsOperator reports whether k is a relational, assignment or arithmetic
// operator.
func (k Kind) IsOperator() bool {
	return k >= TokAssign && k <= TokCaret
}

// IsSymbol reports whether k is plain punctuation.
func (k Kind) IsSymbol() bool {
	return k >= TokComma && k <= TokColon
}

// keywordKind maps a lowercase-normalized identifier to its keyword kind.
// English and Spanish spellings of the switch keywords map to the same
// kinds so programs from either dialect run unchanged.
func keywordKind(s string) (Kind, bool) {
	switch s {
	case "entero":
		return TokEntero, true
	case "caracter":
		return TokCaracter, true
	case "flotante":
		return TokFlotante, true
	case "var":
		return TokVar, true
	case "const":
		return TokConst, true
	case "items":
		return TokItems, true
	case "item":
		return TokItem, true
	case "imprimir":
		return TokImprimir, true
	case "leer":
		return TokLeer, true
	case "suma":
		return TokSuma, true
	case "si":
		return TokSi, true
	case "sino":
		return TokSino, true
	case "mientras":
		return TokMientras, true
	case "switch":
		return TokSwitch, true
	case "caso", "case":
		return TokCaso, true
	case "predeterminado", "default":
		return TokPredeterminado, true
	case "romper", "break":
		return TokRomper, true
	default:
		return 0, false
	}
}

// IsTypeKeyword reports whether k can begin a declaration.
func IsTypeKeyword(k Kind) bool {
	return k >= TokEntero && k <= TokItem
}
