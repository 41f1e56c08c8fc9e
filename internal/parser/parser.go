// Package parser implements syntax analysis: recursive descent over
// statements and precedence climbing over expressions.
//
// The parser buffers the whole token sequence up front and walks it with a
// monotone cursor, one token of lookahead beyond the current one. The first
// error aborts the parse; no partial tree is returned.
package parser

import (
	"github.com/proxima-lang/proxima/internal/interner"
	"github.com/proxima-lang/proxima/internal/lexer"
	"github.com/proxima-lang/proxima/internal/parser/ast"
	"github.com/proxima-lang/proxima/internal/value"
)

// Parser consumes a buffered token sequence and builds the syntax tree.
type Parser struct {
	path   interner.PathID
	tokens []lexer.Token
	cursor int
}

// New creates a parser for source, lexing it eagerly.
func New(path interner.PathID, source string) *Parser {
	return NewFromTokens(path, lexer.New(path, source).Tokenize())
}

// NewFromTokens creates a parser over an already-lexed token sequence.
func NewFromTokens(path interner.PathID, tokens []lexer.Token) *Parser {
	return &Parser{path: path, tokens: tokens}
}

// Path returns the handle of the file being parsed.
func (p *Parser) Path() interner.PathID {
	return p.path
}

// peek returns the token at cursor+offset without advancing. Past the end
// of the buffer it returns a synthetic EndOfFile token positioned at the
// end of the last real token's span, so lookahead is always safe.
func (p *Parser) peek(offset int) lexer.Token {
	if idx := p.cursor + offset; idx < len(p.tokens) {
		return p.tokens[idx]
	}

	loc := lexer.LocationOfFirstByte()
	if len(p.tokens) > 0 {
		end := p.tokens[len(p.tokens)-1].Loc.End
		loc = lexer.NewLocation(end, end)
	}
	return lexer.Token{Raw: lexer.RawEndOfFile(), Loc: loc}
}

// consume advances past the current token if it matches expected and
// returns it. On a mismatch the cursor stays put and a typed error is
// returned: LexError if the stream carries an embedded lexical error,
// UnexpectedTokenError otherwise.
func (p *Parser) consume(expected lexer.RawToken) (lexer.Token, error) {
	found := p.peek(0)

	if found.Raw.Kind == lexer.KindError {
		return found, &LexError{Kind: found.Raw.Error, Loc: found.Loc}
	}
	if found.Raw != expected {
		return found, &UnexpectedTokenError{Expected: expected, Found: found}
	}

	p.cursor++
	return found, nil
}

// ParseStatements parses a whole program: statements until end of file.
func (p *Parser) ParseStatements() ([]ast.Statement, error) {
	var statements []ast.Statement
	for p.peek(0).Raw.Kind != lexer.KindEndOfFile {
		statement, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}
	return statements, nil
}

// ParseExpression parses a single expression entry point.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	return p.parseExpression()
}

// parseStatement dispatches on the leading token: a `return` keyword starts
// a return statement, anything else an expression statement.
func (p *Parser) parseStatement() (ast.Statement, error) {
	if tok := p.peek(0); tok.Raw == lexer.RawKeyword(lexer.KeywordReturn) {
		p.cursor++
		expression, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStatement{
			Expression: expression,
			Loc:        lexer.NewLocation(tok.Loc.Start, expression.Location().End),
		}, nil
	}

	expression, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{
		Expression: expression,
		Loc:        expression.Location(),
	}, nil
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parsePrecedence(precCoalesce)
}

// parsePrecedence climbs the operator table: it parses a primary
// expression, then folds in binary operators binding at least as tightly
// as min, left-associatively.
func (p *Parser) parsePrecedence(min precedence) (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		operator := p.peek(0)
		if operator.Raw.Kind != lexer.KindPunctuator {
			return left, nil
		}
		prec := precedenceOf(operator.Raw.Punctuator)
		if prec < min {
			return left, nil
		}

		p.cursor++
		right, err := p.parsePrecedence(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{
			Left:     left,
			Operator: operator.Raw.Punctuator,
			Right:    right,
		}
	}
}

// parsePrimary parses the expression forms chosen by their leading token:
// literals, break, while, blocks, array literals and parenthesized
// expressions.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek(0)

	switch tok.Raw.Kind {
	case lexer.KindNumber:
		p.cursor++
		return &ast.Literal{Value: value.Number(tok.Number), Loc: tok.Loc}, nil

	case lexer.KindText:
		p.cursor++
		return &ast.Literal{Value: value.Text(tok.Text), Loc: tok.Loc}, nil

	case lexer.KindIdentifier:
		p.cursor++
		return &ast.Literal{Value: value.Identifier(tok.Identifier), Loc: tok.Loc}, nil

	case lexer.KindKeyword:
		switch tok.Raw.Keyword {
		case lexer.KeywordBreak:
			p.cursor++
			return &ast.BreakExpression{Loc: tok.Loc}, nil
		case lexer.KeywordWhile:
			return p.parseWhile()
		}

	case lexer.KindPunctuator:
		switch tok.Raw.Punctuator {
		case lexer.OpenBrace:
			return p.parseBlock()
		case lexer.OpenBracket:
			return p.parseArray()
		case lexer.OpenParen:
			return p.parseGrouping()
		}
	}

	// Nothing can start an expression here; report against the canonical
	// expression opener so the failure carries both sides.
	_, err := p.consume(lexer.RawNumber())
	return nil, err
}

// parseWhile parses `while condition { body }`. The node stores its own
// span so it covers the keyword, not just condition and body.
func (p *Parser) parseWhile() (ast.Expression, error) {
	keyword, err := p.consume(lexer.RawKeyword(lexer.KeywordWhile))
	if err != nil {
		return nil, err
	}

	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.WhileExpression{
		Condition: condition,
		Body:      body,
		Loc:       lexer.NewLocation(keyword.Loc.Start, body.Location().End),
	}, nil
}

// parseBlock parses `{ statement* }`.
func (p *Parser) parseBlock() (*ast.StatementsBlock, error) {
	open, err := p.consume(lexer.RawPunctuator(lexer.OpenBrace))
	if err != nil {
		return nil, err
	}

	var statements []ast.Statement
	for {
		next := p.peek(0)
		if next.Raw == lexer.RawPunctuator(lexer.CloseBrace) ||
			next.Raw.Kind == lexer.KindEndOfFile {
			break
		}
		statement, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}

	closing, err := p.consume(lexer.RawPunctuator(lexer.CloseBrace))
	if err != nil {
		return nil, err
	}

	return &ast.StatementsBlock{
		Statements: statements,
		Loc:        lexer.NewLocation(open.Loc.Start, closing.Loc.End),
	}, nil
}

// parseArray parses `[ element, element, ... ]` with an optional trailing
// comma.
func (p *Parser) parseArray() (ast.Expression, error) {
	open, err := p.consume(lexer.RawPunctuator(lexer.OpenBracket))
	if err != nil {
		return nil, err
	}

	var elements []ast.Expression
	for p.peek(0).Raw != lexer.RawPunctuator(lexer.CloseBracket) {
		element, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)

		if p.peek(0).Raw != lexer.RawPunctuator(lexer.Comma) {
			break
		}
		p.cursor++
	}

	closing, err := p.consume(lexer.RawPunctuator(lexer.CloseBracket))
	if err != nil {
		return nil, err
	}

	return &ast.ArrayExpression{
		Elements: elements,
		Loc:      lexer.NewLocation(open.Loc.Start, closing.Loc.End),
	}, nil
}

// parseGrouping parses `( expression )`. Grouping leaves no node of its
// own; the inner expression is returned directly.
func (p *Parser) parseGrouping() (ast.Expression, error) {
	if _, err := p.consume(lexer.RawPunctuator(lexer.OpenParen)); err != nil {
		return nil, err
	}

	expression, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.RawPunctuator(lexer.CloseParen)); err != nil {
		return nil, err
	}
	return expression, nil
}
