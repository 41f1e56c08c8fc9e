package parser

import (
	"github.com/proxima-lang/proxima/internal/lexer"
)

// precedence orders the binary operators from loosest to tightest binding.
// Higher binds tighter. All binary operators are left-associative.
type precedence int

const (
	precNone       precedence = iota
	precCoalesce              // ?? ?:
	precLogicalOr             // ||
	precLogicalXor            // ^^
	precLogicalAnd            // &&
	precBitOr                 // |
	precBitXor                // ^
	precBitAnd                // &
	precEquality              // == !=
	precComparison            // < <= > >=
	precShift                 // << >> >>>
	precTerm                  // + - ..
	precFactor                // * / % @
	precExponent              // **
)

// precedenceOf returns the binding strength of p as a binary operator, or
// precNone when p cannot appear in infix position.
func precedenceOf(p lexer.Punctuator) precedence {
	switch p {
	case lexer.DoubleQuestion, lexer.QuestionColon:
		return precCoalesce

	case lexer.DoubleBar:
		return precLogicalOr

	case lexer.DoubleCaret:
		return precLogicalXor

	case lexer.DoubleAmpersand:
		return precLogicalAnd

	case lexer.Bar:
		return precBitOr

	case lexer.Caret:
		return precBitXor

	case lexer.Ampersand:
		return precBitAnd

	case lexer.DoubleEq, lexer.BangEq:
		return precEquality

	case lexer.Less, lexer.LessEq, lexer.Greater, lexer.GreaterEq:
		return precComparison

	case lexer.DoubleLess, lexer.DoubleGreater, lexer.TripleGreater:
		return precShift

	case lexer.Plus, lexer.Minus, lexer.DoubleDot:
		return precTerm

	case lexer.Star, lexer.Slash, lexer.Percent, lexer.At:
		return precFactor

	case lexer.DoubleStar:
		return precExponent

	default:
		return precNone
	}
}
