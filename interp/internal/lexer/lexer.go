package lexer

import (
	"strings"
	"unicode"

	"github.com/gamalang/gama/interp/internal/diag"
)

// Limits caps lexer storage. Zero values mean unbounded; storage is
// growable either way, a configured cap just turns overflow into a
// lexical error instead of silently truncating.
type Limits struct {
	MaxTokens int
	MaxLexeme int
}

// Lexer scans a whole source text into a token sequence. The sequence is
// materialized completely before any parsing happens and always ends
// with exactly one EOF token.
type Lexer struct {
	src    []rune
	i      int
	line   int
	limits Limits
}

func New(src string) *Lexer {
	return NewWithLimits(src, Limits{})
}

func NewWithLimits(src string, lim Limits) *Lexer {
	return &Lexer{src: []rune(src), line: 1, limits: lim}
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.i >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i], true
}

func (lx *Lexer) advance() (rune, bool) {
	ch, ok := lx.peek()
	if !ok {
		return 0, false
	}
	lx.i++
	if ch == '\n' {
		lx.line++
	}
	return ch, true
}

func (lx *Lexer) match(expect rune) bool {
	ch, ok := lx.peek()
	if ok && ch == expect {
		lx.advance()
		return true
	}
	return false
}

func (lx *Lexer) atEOF() bool { return lx.i >= len(lx.src) }

// Tokenize consumes the full input and returns the token sequence.
// Unknown characters become TokUnknown tokens, never errors; the only
// lexical failures are an unterminated string and exceeded limits.
func (lx *Lexer) Tokenize() ([]Token, error) {
	var toks []Token
	for {
		t, err := lx.next()
		if err != nil {
			return nil, err
		}
		if err := lx.checkLimits(len(toks), t); err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.Kind == TokEOF {
			return toks, nil
		}
	}
}

// Tokenize scans src with no limits.
func Tokenize(src string) ([]Token, error) {
	return New(src).Tokenize()
}

func (lx *Lexer) checkLimits(have int, t Token) error {
	if lx.limits.MaxTokens > 0 && have >= lx.limits.MaxTokens {
		return diag.New(diag.TooManyTokens, t.Line,
			"demasiados tokens (>= %d)", lx.limits.MaxTokens)
	}
	if lx.limits.MaxLexeme > 0 && len(t.Lex) > lx.limits.MaxLexeme {
		return diag.New(diag.LexemeTooLong, t.Line,
			"lexema demasiado largo (> %d): %q", lx.limits.MaxLexeme, t.Lex)
	}
	return nil
}

// next scans one token. Rules are checked in the grammar's order:
// keyword/identifier, number, string, two-char relational operators,
// single-char punctuation and operators, then the unknown catch-all.
func (lx *Lexer) next() (Token, error) {
	for {
		ch, ok := lx.peek()
		if !ok {
			break
		}
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			lx.advance()
			continue
		}
		break
	}

	startLine := lx.line
	mk := func(k Kind, lex string) Token { return Token{Kind: k, Lex: lex, Line: startLine} }

	if lx.atEOF() {
		return mk(TokEOF, "EOF"), nil
	}

	if ch, _ := lx.peek(); unicode.IsLetter(ch) {
		lex := lx.scanWord()
		if kind, ok := keywordKind(strings.ToLower(lex)); ok {
			return mk(kind, lex), nil
		}
		return mk(TokIdent, lex), nil
	}

	if ch, _ := lx.peek(); unicode.IsDigit(ch) {
		return mk(TokNum, lx.scanNumber()), nil
	}

	if lx.match('"') {
		lex, ok := lx.scanString()
		if !ok {
			return Token{}, diag.New(diag.UnterminatedString, lx.line,
				"cadena sin cerrar")
		}
		return mk(TokString, lex), nil
	}

	// Two-character lookahead first
	if lx.match('=') {
		if lx.match('=') {
			return mk(TokEq, "=="), nil
		}
		return mk(TokAssign, "="), nil
	}
	if lx.match('!') {
		if lx.match('=') {
			return mk(TokNeq, "!="), nil
		}
		return mk(TokUnknown, "!"), nil
	}
	if lx.match('<') {
		if lx.match('=') {
			return mk(TokLe, "<="), nil
		}
		return mk(TokLt, "<"), nil
	}
	if lx.match('>') {
		if lx.match('=') {
			return mk(TokGe, ">="), nil
		}
		return mk(TokGt, ">"), nil
	}

	ch, _ := lx.advance()
	switch ch {
	case ',':
		return mk(TokComma, ","), nil
	case ';':
		return mk(TokSemi, ";"), nil
	case '(':
		return mk(TokLParen, "("), nil
	case ')':
		return mk(TokRParen, ")"), nil
	case '{':
		return mk(TokLBrace, "{"), nil
	case '}':
		return mk(TokRBrace, "}"), nil
	case ':':
		return mk(TokColon, ":"), nil
	case '+':
		return mk(TokPlus, "+"), nil
	case '-':
		return mk(TokMinus, "-"), nil
	case '*':
		return mk(TokStar, "*"), nil
	case '/':
		return mk(TokSlash, "/"), nil
	case '%':
		return mk(TokPercent, "%"), nil
	case '^':
		return mk(TokCaret, "^"), nil
	}
	return mk(TokUnknown, string(ch)), nil
}

// ----- scanning helpers -----

func (lx *Lexer) scanWord() string {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}

func (lx *Lexer) scanNumber() string {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || !unicode.IsDigit(r) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}

// scanString reads the raw inter-quote text; the opening quote is
// already consumed. A newline or EOF before the closing quote means the
// string is unterminated.
func (lx *Lexer) scanString() (string, bool) {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || r == '\n' {
			return "", false
		}
		if r == '"' {
			lex := string(lx.src[start:lx.i])
			lx.advance()
			return lex, true
		}
		lx.advance()
	}
}
