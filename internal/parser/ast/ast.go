// Package ast defines the syntax tree produced by the parser.
//
// Nodes are constructed once during a single top-to-bottom parse and are
// immutable afterwards; every node's span fully contains the spans of its
// descendants. The parser is the only writer.
package ast

import (
	"github.com/proxima-lang/proxima/internal/lexer"
	"github.com/proxima-lang/proxima/internal/value"
)

// Node is implemented by every syntax tree node.
type Node interface {
	// Location returns the node's source span. Leaf nodes store it
	// explicitly; composite nodes without a stored span derive it as the
	// union of their first and last child's span.
	Location() lexer.Location
}

// Expression is the closed set of expression variants: Literal, Binary,
// Break, Block, While and Array.
type Expression interface {
	Node
	expressionNode()
}

// Statement is the closed set of statement variants: Expression and Return.
type Statement interface {
	Node
	statementNode()
}

// Literal is a literal value with its span. The Value payload is opaque to
// the front end; the literal sub-scanners supply it and later stages
// interpret it.
type Literal struct {
	Value value.Value
	Loc   lexer.Location
}

func (l *Literal) Location() lexer.Location { return l.Loc }
func (l *Literal) expressionNode()          {}

// ArrayExpression is a bracketed, ordered sequence of element expressions.
type ArrayExpression struct {
	Elements []Expression
	Loc      lexer.Location
}

func (a *ArrayExpression) Location() lexer.Location { return a.Loc }
func (a *ArrayExpression) expressionNode()          {}

// BinaryExpression applies an infix operator to two operands. Its span is
// derived from its children, not stored.
type BinaryExpression struct {
	Left     Expression
	Operator lexer.Punctuator
	Right    Expression
}

func (b *BinaryExpression) Location() lexer.Location {
	return lexer.NewLocation(b.Left.Location().Start, b.Right.Location().End)
}
func (b *BinaryExpression) expressionNode() {}

// BreakExpression carries no value, only the keyword's span.
type BreakExpression struct {
	Loc lexer.Location
}

func (b *BreakExpression) Location() lexer.Location { return b.Loc }
func (b *BreakExpression) expressionNode()          {}

// WhileExpression is a loop with a condition and a body expression. It
// stores its own span so it covers the `while` keyword, not just
// condition and body.
type WhileExpression struct {
	Condition Expression
	Body      Expression
	Loc       lexer.Location
}

func (w *WhileExpression) Location() lexer.Location { return w.Loc }
func (w *WhileExpression) expressionNode()          {}

// StatementsBlock is an ordered statement sequence with the span of its
// braces. It serves both as a standalone block and as the Block variant of
// Expression.
type StatementsBlock struct {
	Statements []Statement
	Loc        lexer.Location
}

func (s *StatementsBlock) Location() lexer.Location { return s.Loc }
func (s *StatementsBlock) expressionNode()          {}

// ExpressionStatement is an expression in statement position.
type ExpressionStatement struct {
	Expression Expression
	Loc        lexer.Location
}

func (e *ExpressionStatement) Location() lexer.Location { return e.Loc }
func (e *ExpressionStatement) statementNode()           {}

// ReturnStatement yields an expression to the enclosing function. Its span
// covers the `return` keyword through the expression.
type ReturnStatement struct {
	Expression Expression
	Loc        lexer.Location
}

func (r *ReturnStatement) Location() lexer.Location { return r.Loc }
func (r *ReturnStatement) statementNode()           {}
