package parser

import (
	"strconv"

	"github.com/gamalang/gama/interp/internal/ast"
	"github.com/gamalang/gama/interp/internal/diag"
	"github.com/gamalang/gama/interp/internal/lexer"
)

// Parser walks the materialized token array with a single cursor and
// builds the statement tree. Each statement is parsed exactly once;
// control flow is replayed later by walking the tree, never by moving
// the cursor backwards.
type Parser struct {
	toks []lexer.Token
	cur  int
}

func New(toks []lexer.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse consumes the whole token sequence into a program. The sequence
// must end with an EOF token, which Tokenize guarantees.
func Parse(toks []lexer.Token) (*ast.Program, error) {
	return New(toks).ParseProgram()
}

func (p *Parser) tok() lexer.Token {
	if p.cur < len(p.toks) {
		return p.toks[p.cur]
	}
	return lexer.Token{Kind: lexer.TokEOF, Lex: "EOF"}
}

func (p *Parser) next() { p.cur++ }

func (p *Parser) at(k lexer.Kind) bool { return p.tok().Kind == k }

func (p *Parser) accept(k lexer.Kind) bool {
	if p.at(k) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(k lexer.Kind) (lexer.Token, error) {
	if !p.at(k) {
		t := p.tok()
		return t, diag.New(diag.UnexpectedToken, t.Line,
			"se esperaba %s, pero vino %s ('%s')", k, t.Kind, t.Lex)
	}
	t := p.tok()
	p.next()
	return t, nil
}

func (p *Parser) expectIdent() (lexer.Token, error) {
	if !p.at(lexer.TokIdent) {
		t := p.tok()
		return t, diag.New(diag.ExpectedIdent, t.Line,
			"se esperaba IDENT, pero vino '%s'", t.Lex)
	}
	t := p.tok()
	p.next()
	return t, nil
}

func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.at(lexer.TokEOF) {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, s)
	}
	if _, err := p.expect(lexer.TokEOF); err != nil {
		return nil, err
	}
	return prog, nil
}

// parseStmt dispatches on the first token's kind.
func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch t := p.tok(); {
	case lexer.IsTypeKeyword(t.Kind):
		return p.parseDeclStmt()
	case t.Kind == lexer.TokImprimir:
		return p.parsePrintStmt()
	case t.Kind == lexer.TokSuma:
		return p.parseSumaStmt()
	case t.Kind == lexer.TokLeer:
		return p.parseReadStmt()
	case t.Kind == lexer.TokIdent:
		return p.parseAssignStmt()
	case t.Kind == lexer.TokSi:
		return p.parseIfStmt()
	case t.Kind == lexer.TokMientras:
		return p.parseWhileStmt()
	case t.Kind == lexer.TokSwitch:
		return p.parseSwitchStmt()
	case t.Kind == lexer.TokLBrace:
		return p.parseBlockStmt()
	default:
		return nil, diag.New(diag.UnexpectedToken, t.Line,
			"token inesperado '%s' en <stmt>", t.Lex)
	}
}

// declStmt := TYPE ident ('=' expr)? (',' ident ('=' expr)?)* ';'
func (p *Parser) parseDeclStmt() (ast.Stmt, error) {
	typeTok := p.tok()
	p.next()
	decl := ast.DeclStmt{TypeLex: typeTok.Lex, Line: typeTok.Line}
	for {
		id, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		item := ast.DeclItem{Name: id.Lex}
		if p.accept(lexer.TokAssign) {
			item.Init, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		decl.Items = append(decl.Items, item)
		if !p.accept(lexer.TokComma) {
			break
		}
	}
	if _, err := p.expect(lexer.TokSemi); err != nil {
		return nil, err
	}
	return decl, nil
}

// printStmt := 'Imprimir' ('(' | '{') (STRING | expr) (')' | '}') ';'
// Both delimiter forms are part of the grammar; the closer must match
// the opener in kind.
func (p *Parser) parsePrintStmt() (ast.Stmt, error) {
	if _, err := p.expect(lexer.TokImprimir); err != nil {
		return nil, err
	}
	closer := lexer.TokRParen
	braced := false
	switch {
	case p.accept(lexer.TokLParen):
	case p.accept(lexer.TokLBrace):
		closer = lexer.TokRBrace
		braced = true
	default:
		t := p.tok()
		return nil, diag.New(diag.UnexpectedToken, t.Line,
			"se esperaba '(' o '{' en Imprimir, pero vino '%s'", t.Lex)
	}

	stmt := ast.PrintStmt{Braced: braced}
	if p.at(lexer.TokString) {
		stmt.Text = p.tok().Lex
		p.next()
	} else {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Value = value
	}
	if _, err := p.expect(closer); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemi); err != nil {
		return nil, err
	}
	return stmt, nil
}

// sumStmt := 'Suma' expr ';'
func (p *Parser) parseSumaStmt() (ast.Stmt, error) {
	if _, err := p.expect(lexer.TokSuma); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemi); err != nil {
		return nil, err
	}
	return ast.SumaStmt{Value: value}, nil
}

// readStmt := 'Leer' '(' ident ')' ';'
func (p *Parser) parseReadStmt() (ast.Stmt, error) {
	if _, err := p.expect(lexer.TokLeer); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokLParen); err != nil {
		return nil, err
	}
	id, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokRParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemi); err != nil {
		return nil, err
	}
	return ast.ReadStmt{Name: id.Lex, Line: id.Line}, nil
}

// assignStmt := ident '=' expr ';'
func (p *Parser) parseAssignStmt() (ast.Stmt, error) {
	id, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokAssign); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokSemi); err != nil {
		return nil, err
	}
	return ast.AssignStmt{Name: id.Lex, Value: value, Line: id.Line}, nil
}

// ifStmt := 'Si' '(' expr ')' stmt ('Sino' stmt)?
func (p *Parser) parseIfStmt() (ast.Stmt, error) {
	if _, err := p.expect(lexer.TokSi); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokLParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokRParen); err != nil {
		return nil, err
	}
	then, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	stmt := ast.IfStmt{Cond: cond, Then: then}
	if p.accept(lexer.TokSino) {
		stmt.Else, err = p.parseStmt()
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// whileStmt := 'Mientras' '(' expr ')' stmt
// The closing parenthesis is consumed exactly once here; iteration
// re-evaluates the stored condition tree.
func (p *Parser) parseWhileStmt() (ast.Stmt, error) {
	if _, err := p.expect(lexer.TokMientras); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokLParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokRParen); err != nil {
		return nil, err
	}
	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	return ast.WhileStmt{Cond: cond, Body: body}, nil
}

// switchStmt := 'Switch' '(' expr ')' '{' ('Caso' NUM ':' stmt ('Romper' ';')?)*
//               ('Predeterminado' ':' stmt)? '}'
func (p *Parser) parseSwitchStmt() (ast.Stmt, error) {
	if _, err := p.expect(lexer.TokSwitch); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokLParen); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokRParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return nil, err
	}

	stmt := ast.SwitchStmt{Value: value}
	for p.accept(lexer.TokCaso) {
		if !p.at(lexer.TokNum) {
			t := p.tok()
			return nil, diag.New(diag.ExpectedNumber, t.Line,
				"se esperaba numero en Caso, pero vino '%s'", t.Lex)
		}
		match, _ := strconv.Atoi(p.tok().Lex)
		p.next()
		if _, err := p.expect(lexer.TokColon); err != nil {
			return nil, err
		}
		body, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		c := ast.Case{Match: match, Body: body}
		if p.accept(lexer.TokRomper) {
			if _, err := p.expect(lexer.TokSemi); err != nil {
				return nil, err
			}
			c.Brk = true
		}
		stmt.Cases = append(stmt.Cases, c)
	}
	if p.accept(lexer.TokPredeterminado) {
		if _, err := p.expect(lexer.TokColon); err != nil {
			return nil, err
		}
		stmt.Default, err = p.parseStmt()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.TokRBrace); err != nil {
		return nil, err
	}
	return stmt, nil
}

// blockStmt := '{' stmt* '}'
func (p *Parser) parseBlockStmt() (ast.Stmt, error) {
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return nil, err
	}
	block := ast.BlockStmt{}
	for !p.at(lexer.TokRBrace) && !p.at(lexer.TokEOF) {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, s)
	}
	if _, err := p.expect(lexer.TokRBrace); err != nil {
		return nil, err
	}
	return block, nil
}

/*** EXPRESSIONS ***/

// expr := relExpr
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseRelExpr()
}

// relExpr := addExpr (('==' | '!=' | '<' | '>' | '<=' | '>=') addExpr)*
// Chained comparisons fold pairwise left to right: each step yields 0/1
// and becomes the next left operand.
func (p *Parser) parseRelExpr() (ast.Expr, error) {
	left, err := p.parseAddExpr()
	if err != nil {
		return nil, err
	}
	for {
		t := p.tok()
		switch t.Kind {
		case lexer.TokEq, lexer.TokNeq, lexer.TokLt, lexer.TokGt, lexer.TokLe, lexer.TokGe:
			p.next()
			right, err := p.parseAddExpr()
			if err != nil {
				return nil, err
			}
			left = &ast.BinaryExpr{Op: t.Lex, Left: left, Right: right, Line: t.Line}
		default:
			return left, nil
		}
	}
}

// addExpr := mulExpr (('+' | '-') mulExpr)*
func (p *Parser) parseAddExpr() (ast.Expr, error) {
	left, err := p.parseMulExpr()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.TokPlus) || p.at(lexer.TokMinus) {
		t := p.tok()
		p.next()
		right, err := p.parseMulExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: t.Lex, Left: left, Right: right, Line: t.Line}
	}
	return left, nil
}

// mulExpr := powExpr (('*' | '/' | '%') powExpr)*
func (p *Parser) parseMulExpr() (ast.Expr, error) {
	left, err := p.parsePowExpr()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.TokStar) || p.at(lexer.TokSlash) || p.at(lexer.TokPercent) {
		t := p.tok()
		p.next()
		right, err := p.parsePowExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: t.Lex, Left: left, Right: right, Line: t.Line}
	}
	return left, nil
}

// powExpr := unaryExpr ('^' unaryExpr)*   (left-associative)
func (p *Parser) parsePowExpr() (ast.Expr, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.TokCaret) {
		t := p.tok()
		p.next()
		right, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: t.Lex, Left: left, Right: right, Line: t.Line}
	}
	return left, nil
}

// unaryExpr := '-'? primary
func (p *Parser) parseUnaryExpr() (ast.Expr, error) {
	if p.accept(lexer.TokMinus) {
		x, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: "-", X: x}, nil
	}
	return p.parsePrimary()
}

// primary := '(' expr ')' | NUM | IDENT
func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch t := p.tok(); t.Kind {
	case lexer.TokLParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokRParen); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.TokNum:
		p.next()
		v, err := strconv.Atoi(t.Lex)
		if err != nil {
			return nil, diag.New(diag.ExpectedNumber, t.Line,
				"numero invalido '%s'", t.Lex)
		}
		return &ast.IntLit{Value: v}, nil
	case lexer.TokIdent:
		p.next()
		return &ast.IdentExpr{Name: t.Lex, Line: t.Line}, nil
	default:
		return nil, diag.New(diag.UnexpectedToken, t.Line,
			"se esperaba NUM, IDENT o '(' en <primary>, pero vino '%s'", t.Lex)
	}
}
