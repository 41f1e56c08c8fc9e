package parser

import (
	"fmt"

	"github.com/proxima-lang/proxima/internal/lexer"
)

// LexError reports a lexical error token reached by consumption. The lexer
// never aborts a scan; an error token becomes fatal only once the parser
// tries to consume it.
type LexError struct {
	Kind lexer.ErrorKind
	Loc  lexer.Location
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %s", e.Kind, e.Loc)
}

// UnexpectedTokenError reports a token that does not match what the grammar
// requires at the cursor.
type UnexpectedTokenError struct {
	Expected lexer.RawToken
	Found    lexer.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}
