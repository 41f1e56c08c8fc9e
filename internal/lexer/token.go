package lexer

import "github.com/proxima-lang/proxima/internal/interner"

// Punctuator enumerates the fixed operator and delimiter glyphs.
//
// Comparisons and precedence lookups are O(1) because punctuators are
// enumerated, never stored as text.
type Punctuator int

const (
	Arrow              Punctuator = iota // ->
	Eq                                   // =
	DoubleEq                             // ==
	Bang                                 // !
	BangEq                               // !=
	LessEq                               // <=
	Less                                 // <
	Greater                              // >
	GreaterEq                            // >=
	PlusEq                               // +=
	MinusEq                              // -=
	StarEq                               // *=
	SlashEq                              // /=
	PercentEq                            // %=
	AtEq                                 // @=
	AmpersandEq                          // &=
	CaretEq                              // ^=
	BarEq                                // |=
	DoubleColonEq                        // ::=
	LeftShiftEq                          // <<=
	RightShiftEq                         // >>=
	TripleRightShiftEq                   // >>>=
	DoublePlus                           // ++
	DoubleMinus                          // --
	DoubleLess                           // <<
	DoubleGreater                        // >>
	TripleGreater                        // >>>
	DoubleDot                            // ..
	DoubleStar                           // **
	QuestionColon                        // ?:
	DoubleQuestion                       // ??
	Tilde                                // ~
	Caret                                // ^
	DoubleCaret                          // ^^
	Bar                                  // |
	DoubleBar                            // ||
	Ampersand                            // &
	DoubleAmpersand                      // &&
	Question                             // ?
	Colon                                // :
	DoubleColon                          // ::
	OpenParen                            // (
	CloseParen                           // )
	OpenBracket                          // [
	CloseBracket                         // ]
	OpenBrace                            // {
	CloseBrace                           // }
	Comma                                // ,
	Dot                                  // .
	Plus                                 // +
	Minus                                // -
	Star                                 // *
	Slash                                // /
	Percent                              // %
	At                                   // @
)

// String returns the punctuator's glyph.
func (p Punctuator) String() string {
	switch p {
	case Arrow:
		return "->"
	case Eq:
		return "="
	case DoubleEq:
		return "=="
	case Bang:
		return "!"
	case BangEq:
		return "!="
	case LessEq:
		return "<="
	case Less:
		return "<"
	case Greater:
		return ">"
	case GreaterEq:
		return ">="
	case PlusEq:
		return "+="
	case MinusEq:
		return "-="
	case StarEq:
		return "*="
	case SlashEq:
		return "/="
	case PercentEq:
		return "%="
	case AtEq:
		return "@="
	case AmpersandEq:
		return "&="
	case CaretEq:
		return "^="
	case BarEq:
		return "|="
	case DoubleColonEq:
		return "::="
	case LeftShiftEq:
		return "<<="
	case RightShiftEq:
		return ">>="
	case TripleRightShiftEq:
		return ">>>="
	case DoublePlus:
		return "++"
	case DoubleMinus:
		return "--"
	case DoubleLess:
		return "<<"
	case DoubleGreater:
		return ">>"
	case TripleGreater:
		return ">>>"
	case DoubleDot:
		return ".."
	case DoubleStar:
		return "**"
	case QuestionColon:
		return "?:"
	case DoubleQuestion:
		return "??"
	case Tilde:
		return "~"
	case Caret:
		return "^"
	case DoubleCaret:
		return "^^"
	case Bar:
		return "|"
	case DoubleBar:
		return "||"
	case Ampersand:
		return "&"
	case DoubleAmpersand:
		return "&&"
	case Question:
		return "?"
	case Colon:
		return ":"
	case DoubleColon:
		return "::"
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	case OpenBracket:
		return "["
	case CloseBracket:
		return "]"
	case OpenBrace:
		return "{"
	case CloseBrace:
		return "}"
	case Comma:
		return ","
	case Dot:
		return "."
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case Percent:
		return "%"
	case At:
		return "@"
	default:
		return "unknown punctuator"
	}
}

// Keyword enumerates the reserved lexemes.
type Keyword int

const (
	KeywordStruct Keyword = iota
	KeywordThrow
	KeywordForeach
	KeywordEnum
	KeywordPrint
	KeywordPrintln
	KeywordIf
	KeywordElse
	KeywordWhile
	KeywordFor
	KeywordBreak
	KeywordContinue
	KeywordFunc
	KeywordReturn
	KeywordUsing
	KeywordSwitch
	KeywordCase
	KeywordInclude
	KeywordClass
	KeywordNew
)

// keywords maps each reserved lexeme to its Keyword. Identifier text is
// classified against this table after scanning.
var keywords = map[string]Keyword{
	"struct":   KeywordStruct,
	"throw":    KeywordThrow,
	"foreach":  KeywordForeach,
	"enum":     KeywordEnum,
	"print":    KeywordPrint,
	"println":  KeywordPrintln,
	"if":       KeywordIf,
	"else":     KeywordElse,
	"while":    KeywordWhile,
	"for":      KeywordFor,
	"break":    KeywordBreak,
	"continue": KeywordContinue,
	"func":     KeywordFunc,
	"return":   KeywordReturn,
	"using":    KeywordUsing,
	"switch":   KeywordSwitch,
	"case":     KeywordCase,
	"include":  KeywordInclude,
	"class":    KeywordClass,
	"new":      KeywordNew,
}

// LookupKeyword reports whether text is a reserved lexeme.
func LookupKeyword(text string) (Keyword, bool) {
	kw, ok := keywords[text]
	return kw, ok
}

// String returns the keyword's lexeme.
func (k Keyword) String() string {
	switch k {
	case KeywordStruct:
		return "struct"
	case KeywordThrow:
		return "throw"
	case KeywordForeach:
		return "foreach"
	case KeywordEnum:
		return "enum"
	case KeywordPrint:
		return "print"
	case KeywordPrintln:
		return "println"
	case KeywordIf:
		return "if"
	case KeywordElse:
		return "else"
	case KeywordWhile:
		return "while"
	case KeywordFor:
		return "for"
	case KeywordBreak:
		return "break"
	case KeywordContinue:
		return "continue"
	case KeywordFunc:
		return "func"
	case KeywordReturn:
		return "return"
	case KeywordUsing:
		return "using"
	case KeywordSwitch:
		return "switch"
	case KeywordCase:
		return "case"
	case KeywordInclude:
		return "include"
	case KeywordClass:
		return "class"
	case KeywordNew:
		return "new"
	default:
		return "unknown keyword"
	}
}

// ErrorKind enumerates the lexical error kinds. Lexical errors are data:
// they travel the token stream as Error tokens and never abort a scan.
type ErrorKind int

const (
	DigitDoesNotCorrespondToBase ErrorKind = iota
	EmptyCharacterLiteral
	EmptyEscapeSequence
	EmptyWrappedIdentifier
	ExpectedCloseBracketInByteEscapeSequence
	ExpectedCloseBracketInUnicodeEscapeSequence
	ExpectedDigitInByteEscapeSequence
	ExpectedDigitInUnicodeEscapeSequence
	ExpectedOpenBracketInByteEscapeSequence
	ExpectedOpenBracketInUnicodeEscapeSequence
	ExponentHasNoDigits
	ExponentRequiresDecimalMantissa
	NumberContainsNoDigits
	InvalidByteEscapeSequence
	InvalidDigit
	InvalidRadixPoint
	InvalidUnicodeEscapeSequence
	MoreThanOneCharInCharLiteral
	NumberParseError
	UnderscoreMustSeparateSuccessiveDigits
	UnexpectedChar
	UnknownEscapeSequence
	UnterminatedCharLiteral
	UnterminatedStringLiteral
	UnterminatedWrappedIdentifier
)

// String returns the diagnostic message for the error kind.
func (e ErrorKind) String() string {
	switch e {
	case DigitDoesNotCorrespondToBase:
		return "digit doesn't correspond to base"
	case EmptyCharacterLiteral:
		return "empty character literal"
	case EmptyEscapeSequence:
		return "empty escape sequence"
	case EmptyWrappedIdentifier:
		return "empty wrapped identifier literal"
	case ExpectedCloseBracketInByteEscapeSequence:
		return "expected `}` in byte escape sequence"
	case ExpectedCloseBracketInUnicodeEscapeSequence:
		return "expected `}` in Unicode escape sequence"
	case ExpectedDigitInByteEscapeSequence:
		return "expected digit in byte escape sequence"
	case ExpectedDigitInUnicodeEscapeSequence:
		return "expected digit in Unicode escape sequence"
	case ExpectedOpenBracketInByteEscapeSequence:
		return "expected `{` in byte escape sequence"
	case ExpectedOpenBracketInUnicodeEscapeSequence:
		return "expected `{` in Unicode escape sequence"
	case ExponentHasNoDigits:
		return "exponent has no digits"
	case ExponentRequiresDecimalMantissa:
		return "exponent requires decimal mantissa"
	case NumberContainsNoDigits:
		return "number contains no digits"
	case InvalidByteEscapeSequence:
		return "invalid byte escape sequence"
	case InvalidDigit:
		return "invalid digit"
	case InvalidRadixPoint:
		return "invalid radix point"
	case InvalidUnicodeEscapeSequence:
		return "invalid Unicode escape sequence"
	case MoreThanOneCharInCharLiteral:
		return "more than one character in character literal"
	case NumberParseError:
		return "number cannot be parsed"
	case UnderscoreMustSeparateSuccessiveDigits:
		return "underscore must separate successive digits"
	case UnexpectedChar:
		return "unexpected character"
	case UnknownEscapeSequence:
		return "unknown escape sequence"
	case UnterminatedCharLiteral:
		return "unterminated character literal"
	case UnterminatedStringLiteral:
		return "unterminated string literal"
	case UnterminatedWrappedIdentifier:
		return "unterminated wrapped identifier"
	default:
		return "unknown lexical error"
	}
}

// RawKind discriminates the RawToken union.
type RawKind int

const (
	KindPunctuator RawKind = iota
	KindKeyword
	KindError
	KindIdentifier
	KindNumber
	KindText
	KindEndOfFile
)

// RawToken is the closed token vocabulary: a punctuator, a keyword, a lexical
// error, or one of the payload-bearing kinds (identifier, number, text), plus
// end of file. It is a comparable value so the parser's consume can match an
// expected token in O(1).
type RawToken struct {
	Kind       RawKind
	Punctuator Punctuator
	Keyword    Keyword
	Error      ErrorKind
}

// RawPunctuator returns the RawToken for p.
func RawPunctuator(p Punctuator) RawToken {
	return RawToken{Kind: KindPunctuator, Punctuator: p}
}

// RawKeyword returns the RawToken for k.
func RawKeyword(k Keyword) RawToken {
	return RawToken{Kind: KindKeyword, Keyword: k}
}

// RawError returns the RawToken carrying the lexical error e.
func RawError(e ErrorKind) RawToken {
	return RawToken{Kind: KindError, Error: e}
}

// RawIdentifier is the RawToken for any identifier.
func RawIdentifier() RawToken { return RawToken{Kind: KindIdentifier} }

// RawNumber is the RawToken for any numeric literal.
func RawNumber() RawToken { return RawToken{Kind: KindNumber} }

// RawText is the RawToken for any textual (string or character) literal.
func RawText() RawToken { return RawToken{Kind: KindText} }

// RawEndOfFile is the RawToken marking the end of the token sequence.
func RawEndOfFile() RawToken { return RawToken{Kind: KindEndOfFile} }

// String returns a human-readable name for the token.
func (r RawToken) String() string {
	switch r.Kind {
	case KindPunctuator:
		return "`" + r.Punctuator.String() + "`"
	case KindKeyword:
		return "`" + r.Keyword.String() + "`"
	case KindError:
		return "error: " + r.Error.String()
	case KindIdentifier:
		return "identifier"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindEndOfFile:
		return "end of file"
	default:
		return "unknown token"
	}
}

// Token is a RawToken with its source span and, for payload-bearing kinds,
// the processed literal value. Payload fields are only meaningful for the
// matching Raw.Kind: Identifier for KindIdentifier, Text for KindText and
// Number for KindNumber.
type Token struct {
	Raw        RawToken
	Loc        Location
	Identifier interner.IdentifierID
	Text       interner.StringID
	Number     float64
}

// Location returns the token's source span.
func (t Token) Location() Location {
	return t.Loc
}

// String returns the token as "kind at span".
func (t Token) String() string {
	return t.Raw.String() + " at " + t.Loc.String()
}
