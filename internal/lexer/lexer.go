package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/proxima-lang/proxima/internal/interner"
)

// eofRune marks the end of input in the two-rune scanning window.
const eofRune rune = -1

// Lexer is a single-pass, pull-based scanner. It converts source text into a
// finite, one-shot sequence of tokens ending in a single EndOfFile token.
// Malformed input never stops the scan: errors are emitted as Error tokens
// and scanning continues.
//
// The scanner holds the current codepoint and one codepoint of lookahead;
// it never backtracks, so each codepoint is visited at most twice (once as
// next, once as current).
type Lexer struct {
	path   interner.PathID
	source string

	current rune
	next    rune
	loc     CharLocation // location of current
}

// New creates a lexer for source, identified by its interned path handle.
func New(path interner.PathID, source string) *Lexer {
	l := &Lexer{
		path:    path,
		source:  source,
		loc:     NewCharLocation(1, 0, 0),
		current: eofRune,
		next:    eofRune,
	}
	if len(source) > 0 {
		l.current, _ = utf8.DecodeRuneInString(source)
		if after := utf8.RuneLen(l.current); after < len(source) {
			l.next, _ = utf8.DecodeRuneInString(source[after:])
		}
	}
	return l
}

// Path returns the handle of the file being scanned.
func (l *Lexer) Path() interner.PathID {
	return l.path
}

// Location returns the position of the codepoint about to be consumed.
func (l *Lexer) Location() CharLocation {
	return l.loc
}

// advance consumes the current codepoint, shifting the lookahead window.
func (l *Lexer) advance() {
	if l.current == eofRune {
		return
	}
	l.loc = l.loc.Advanced(l.current)
	l.current = l.next
	l.next = eofRune
	if l.current != eofRune {
		if after := l.loc.Offset + utf8.RuneLen(l.current); after < len(l.source) {
			l.next, _ = utf8.DecodeRuneInString(l.source[after:])
		}
	}
}

// Tokenize scans the remaining input and returns all tokens through the
// final EndOfFile token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		token := l.NextToken()
		tokens = append(tokens, token)
		if token.Raw.Kind == KindEndOfFile {
			return tokens
		}
	}
}

// NextToken returns the next token. The token's span covers exactly the
// codepoints consumed for it; whitespace between tokens is skipped. Once
// EndOfFile has been returned the sequence is over.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.loc

	if l.current == eofRune {
		return Token{Raw: RawEndOfFile(), Loc: NewLocation(start, start)}
	}

	switch {
	case isIDStart(l.current):
		return l.scanIdentifier(start)
	case isDigit(l.current):
		return l.scanNumber(start)
	}

	switch l.current {
	case '"':
		return l.scanString(start)
	case '\'':
		return l.scanChar(start)
	case '`':
		return l.scanWrappedIdentifier(start)
	}

	if token, ok := l.scanPunctuator(start); ok {
		return token
	}

	// Sole recovery policy: skip exactly one offending codepoint.
	l.advance()
	return l.errorToken(UnexpectedChar, start)
}

// skipWhitespace consumes a run of whitespace codepoints. The set is fixed
// rather than queried from a Unicode property table; it is stable across
// Unicode versions.
func (l *Lexer) skipWhitespace() {
	for {
		switch l.current {
		case '\t', '\n', '\v', '\f', '\r', ' ',
			'\u0085', // next line
			'\u200e', // left-to-right mark
			'\u200f', // right-to-left mark
			'\u2028', // line separator
			'\u2029': // paragraph separator
			l.advance()
		default:
			return
		}
	}
}

// makeToken builds a token spanning from start to the scanner's position.
func (l *Lexer) makeToken(raw RawToken, start CharLocation) Token {
	return Token{Raw: raw, Loc: NewLocation(start, l.loc)}
}

func (l *Lexer) errorToken(kind ErrorKind, start CharLocation) Token {
	return l.makeToken(RawError(kind), start)
}

// scanPunctuator matches the punctuator glyphs, longest combination first,
// so no input is ambiguous (`>=` is one token, never `>` then `=`).
func (l *Lexer) scanPunctuator(start CharLocation) (Token, bool) {
	var p Punctuator

	switch l.current {
	case '(':
		p = OpenParen
		l.advance()
	case ')':
		p = CloseParen
		l.advance()
	case '[':
		p = OpenBracket
		l.advance()
	case ']':
		p = CloseBracket
		l.advance()
	case '{':
		p = OpenBrace
		l.advance()
	case '}':
		p = CloseBrace
		l.advance()
	case ',':
		p = Comma
		l.advance()
	case '~':
		p = Tilde
		l.advance()
	case '.':
		l.advance()
		p = Dot
		if l.current == '.' {
			l.advance()
			p = DoubleDot
		}
	case '=':
		l.advance()
		p = Eq
		if l.current == '=' {
			l.advance()
			p = DoubleEq
		}
	case '!':
		l.advance()
		p = Bang
		if l.current == '=' {
			l.advance()
			p = BangEq
		}
	case '+':
		l.advance()
		p = Plus
		switch l.current {
		case '+':
			l.advance()
			p = DoublePlus
		case '=':
			l.advance()
			p = PlusEq
		}
	case '-':
		l.advance()
		p = Minus
		switch l.current {
		case '-':
			l.advance()
			p = DoubleMinus
		case '=':
			l.advance()
			p = MinusEq
		case '>':
			l.advance()
			p = Arrow
		}
	case '*':
		l.advance()
		p = Star
		switch l.current {
		case '*':
			l.advance()
			p = DoubleStar
		case '=':
			l.advance()
			p = StarEq
		}
	case '/':
		l.advance()
		p = Slash
		if l.current == '=' {
			l.advance()
			p = SlashEq
		}
	case '%':
		l.advance()
		p = Percent
		if l.current == '=' {
			l.advance()
			p = PercentEq
		}
	case '@':
		l.advance()
		p = At
		if l.current == '=' {
			l.advance()
			p = AtEq
		}
	case '&':
		l.advance()
		p = Ampersand
		switch l.current {
		case '&':
			l.advance()
			p = DoubleAmpersand
		case '=':
			l.advance()
			p = AmpersandEq
		}
	case '|':
		l.advance()
		p = Bar
		switch l.current {
		case '|':
			l.advance()
			p = DoubleBar
		case '=':
			l.advance()
			p = BarEq
		}
	case '^':
		l.advance()
		p = Caret
		switch l.current {
		case '^':
			l.advance()
			p = DoubleCaret
		case '=':
			l.advance()
			p = CaretEq
		}
	case '<':
		l.advance()
		p = Less
		switch l.current {
		case '=':
			l.advance()
			p = LessEq
		case '<':
			l.advance()
			p = DoubleLess
			if l.current == '=' {
				l.advance()
				p = LeftShiftEq
			}
		}
	case '>':
		l.advance()
		p = Greater
		switch l.current {
		case '=':
			l.advance()
			p = GreaterEq
		case '>':
			l.advance()
			p = DoubleGreater
			switch l.current {
			case '=':
				l.advance()
				p = RightShiftEq
			case '>':
				l.advance()
				p = TripleGreater
				if l.current == '=' {
					l.advance()
					p = TripleRightShiftEq
				}
			}
		}
	case '?':
		l.advance()
		p = Question
		switch l.current {
		case '?':
			l.advance()
			p = DoubleQuestion
		case ':':
			l.advance()
			p = QuestionColon
		}
	case ':':
		l.advance()
		p = Colon
		if l.current == ':' {
			l.advance()
			p = DoubleColon
			if l.current == '=' {
				l.advance()
				p = DoubleColonEq
			}
		}
	default:
		return Token{}, false
	}

	return l.makeToken(RawPunctuator(p), start), true
}

// scanIdentifier consumes a maximal identifier-continue run and classifies
// it against the keyword table.
func (l *Lexer) scanIdentifier(start CharLocation) Token {
	for isIDContinue(l.current) {
		l.advance()
	}

	text := l.source[start.Offset:l.loc.Offset]
	if kw, ok := LookupKeyword(text); ok {
		return l.makeToken(RawKeyword(kw), start)
	}

	token := l.makeToken(RawIdentifier(), start)
	token.Identifier = interner.InternIdentifier(text)
	return token
}

// scanWrappedIdentifier scans `any text` between backticks, which interns as
// an identifier regardless of its content.
func (l *Lexer) scanWrappedIdentifier(start CharLocation) Token {
	l.advance() // opening backtick

	var text strings.Builder
	for {
		switch l.current {
		case '`':
			l.advance()
			if text.Len() == 0 {
				return l.errorToken(EmptyWrappedIdentifier, start)
			}
			token := l.makeToken(RawIdentifier(), start)
			token.Identifier = interner.InternIdentifier(text.String())
			return token
		case eofRune, '\n':
			return l.errorToken(UnterminatedWrappedIdentifier, start)
		default:
			text.WriteRune(l.current)
			l.advance()
		}
	}
}

// scanNumber scans a numeric literal: optional radix prefix (0x, 0o, 0b),
// digits with underscore separators, and for decimal literals an optional
// fraction and exponent. On a malformed construct it consumes through to a
// plausible end of the literal before yielding the error, so a bad literal
// never misaligns the rest of the stream.
func (l *Lexer) scanNumber(start CharLocation) Token {
	base := 10

	if l.current == '0' {
		switch l.next {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 10 {
			l.advance() // 0
			l.advance() // radix letter
		}
	}

	digits, err := l.scanDigits(base)
	if kind, ok := err.take(); ok {
		return l.numberError(kind, start)
	}
	if digits == 0 {
		// Only reachable after a radix prefix: `0x` with nothing behind it.
		return l.numberError(NumberContainsNoDigits, start)
	}

	// A radix point is only meaningful when something numeric follows;
	// `1..2` must lex as number, `..`, number, and `1.foo` as member access.
	if l.current == '.' && l.next != '.' && !isIDStart(l.next) {
		l.advance()
		if base != 10 || !isDigit(l.current) {
			return l.numberError(InvalidRadixPoint, start)
		}
		if _, err := l.scanDigits(10); err.set {
			return l.numberError(err.kind, start)
		}
	}

	if l.current == 'e' || l.current == 'E' {
		if base != 10 {
			return l.numberError(ExponentRequiresDecimalMantissa, start)
		}
		l.advance()
		if l.current == '+' || l.current == '-' {
			l.advance()
		}
		expDigits, err := l.scanDigits(10)
		if kind, ok := err.take(); ok {
			return l.numberError(kind, start)
		}
		if expDigits == 0 {
			return l.numberError(ExponentHasNoDigits, start)
		}
	}

	// A literal must not run straight into identifier characters: `0b12f`
	// is one malformed literal, not a number followed by an identifier.
	if isIDContinue(l.current) {
		return l.numberError(InvalidDigit, start)
	}

	text := strings.ReplaceAll(l.source[start.Offset:l.loc.Offset], "_", "")
	var value float64
	if base == 10 {
		parsed, parseErr := strconv.ParseFloat(text, 64)
		if parseErr != nil {
			return l.errorToken(NumberParseError, start)
		}
		value = parsed
	} else {
		parsed, parseErr := strconv.ParseUint(text[2:], base, 64)
		if parseErr != nil {
			return l.errorToken(NumberParseError, start)
		}
		value = float64(parsed)
	}

	token := l.makeToken(RawNumber(), start)
	token.Number = value
	return token
}

// scanError carries the first lexical error found inside a literal, so
// sub-scanners can keep consuming to the literal's end before reporting.
type scanError struct {
	kind ErrorKind
	set  bool
}

func (s scanError) take() (ErrorKind, bool) {
	return s.kind, s.set
}

func (s *scanError) record(kind ErrorKind) {
	if !s.set {
		*s = scanError{kind: kind, set: true}
	}
}

// scanDigits consumes a run of digits in the given base, enforcing that
// underscores separate successive digits. It returns the number of digits
// consumed and the first error found, if any.
func (l *Lexer) scanDigits(base int) (int, scanError) {
	count := 0
	lastUnderscore := false
	var firstErr scanError

	for {
		switch {
		case l.current == '_':
			if count == 0 || lastUnderscore {
				firstErr.record(UnderscoreMustSeparateSuccessiveDigits)
			}
			lastUnderscore = true
			l.advance()
		case isDigitInBase(l.current, base):
			count++
			lastUnderscore = false
			l.advance()
		case isDigit(l.current) || (base == 16 && isHexDigit(l.current)):
			// A digit the base cannot hold, e.g. 9 in 0o19.
			firstErr.record(DigitDoesNotCorrespondToBase)
			lastUnderscore = false
			l.advance()
		default:
			if lastUnderscore {
				firstErr.record(UnderscoreMustSeparateSuccessiveDigits)
			}
			return count, firstErr
		}
	}
}

// numberError consumes the remainder of a malformed numeric literal so the
// error token's span covers the whole construct, then yields kind.
func (l *Lexer) numberError(kind ErrorKind, start CharLocation) Token {
	for isIDContinue(l.current) || isDigit(l.current) ||
		(l.current == '.' && isDigit(l.next)) {
		l.advance()
	}
	return l.errorToken(kind, start)
}

// scanString scans a double-quoted string literal with escape sequences.
// The first malformed escape is remembered and reported once the literal's
// end has been reached, keeping the stream aligned.
func (l *Lexer) scanString(start CharLocation) Token {
	l.advance() // opening quote

	var text strings.Builder
	var firstErr scanError

	for {
		switch l.current {
		case '"':
			l.advance()
			if kind, ok := firstErr.take(); ok {
				return l.errorToken(kind, start)
			}
			token := l.makeToken(RawText(), start)
			token.Text = interner.InternString(text.String())
			return token
		case eofRune, '\n':
			if kind, ok := firstErr.take(); ok {
				return l.errorToken(kind, start)
			}
			return l.errorToken(UnterminatedStringLiteral, start)
		case '\\':
			r, escErr := l.scanEscape()
			if kind, ok := escErr.take(); ok {
				firstErr.record(kind)
				continue
			}
			text.WriteRune(r)
		default:
			text.WriteRune(l.current)
			l.advance()
		}
	}
}

// scanChar scans a single-quoted character literal. Character literals are
// textual literals: the resulting token is a Text token holding the one
// decoded character.
func (l *Lexer) scanChar(start CharLocation) Token {
	l.advance() // opening quote

	switch l.current {
	case '\'':
		l.advance()
		return l.errorToken(EmptyCharacterLiteral, start)
	case eofRune, '\n':
		return l.errorToken(UnterminatedCharLiteral, start)
	}

	var decoded rune
	var escErr scanError
	if l.current == '\\' {
		decoded, escErr = l.scanEscape()
	} else {
		decoded = l.current
		l.advance()
	}

	// Consume through to the closing quote so a malformed literal stays
	// one token.
	extra := 0
	for l.current != '\'' {
		if l.current == eofRune || l.current == '\n' {
			return l.errorToken(UnterminatedCharLiteral, start)
		}
		extra++
		l.advance()
	}
	l.advance() // closing quote

	if kind, ok := escErr.take(); ok {
		return l.errorToken(kind, start)
	}
	if extra > 0 {
		return l.errorToken(MoreThanOneCharInCharLiteral, start)
	}

	token := l.makeToken(RawText(), start)
	token.Text = interner.InternString(string(decoded))
	return token
}

// scanEscape scans one escape sequence, backslash included. It consumes the
// sequence's codepoints even on error, so callers resume at the character
// after it.
func (l *Lexer) scanEscape() (rune, scanError) {
	l.advance() // backslash

	failed := func(kind ErrorKind) (rune, scanError) {
		return 0, scanError{kind: kind, set: true}
	}

	switch l.current {
	case eofRune, '\n':
		return failed(EmptyEscapeSequence)
	case 'n':
		l.advance()
		return '\n', scanError{}
	case 'r':
		l.advance()
		return '\r', scanError{}
	case 't':
		l.advance()
		return '\t', scanError{}
	case '0':
		l.advance()
		return 0, scanError{}
	case '\\':
		l.advance()
		return '\\', scanError{}
	case '\'':
		l.advance()
		return '\'', scanError{}
	case '"':
		l.advance()
		return '"', scanError{}
	case 'x':
		l.advance()
		value, escErr := l.scanBracketedHex(
			ExpectedOpenBracketInByteEscapeSequence,
			ExpectedDigitInByteEscapeSequence,
			ExpectedCloseBracketInByteEscapeSequence,
		)
		if escErr.set {
			return 0, escErr
		}
		if value > 0xff {
			return failed(InvalidByteEscapeSequence)
		}
		return rune(value), scanError{}
	case 'u':
		l.advance()
		value, escErr := l.scanBracketedHex(
			ExpectedOpenBracketInUnicodeEscapeSequence,
			ExpectedDigitInUnicodeEscapeSequence,
			ExpectedCloseBracketInUnicodeEscapeSequence,
		)
		if escErr.set {
			return 0, escErr
		}
		if value > unicode.MaxRune || (value >= 0xd800 && value <= 0xdfff) {
			return failed(InvalidUnicodeEscapeSequence)
		}
		return rune(value), scanError{}
	default:
		l.advance()
		return failed(UnknownEscapeSequence)
	}
}

// scanBracketedHex scans the `{hexdigits}` tail shared by byte and Unicode
// escapes, reporting the caller's error kinds.
func (l *Lexer) scanBracketedHex(openErr, digitErr, closeErr ErrorKind) (uint32, scanError) {
	if l.current != '{' {
		return 0, scanError{kind: openErr, set: true}
	}
	l.advance()

	var value uint32
	digits := 0
	for isHexDigit(l.current) {
		if digits < 8 {
			value = value<<4 | uint32(hexDigitValue(l.current))
		} else {
			// Too long for any codepoint; the caller's range check rejects it.
			value = uint32(unicode.MaxRune) + 1
		}
		digits++
		l.advance()
	}
	if digits == 0 {
		return 0, scanError{kind: digitErr, set: true}
	}

	if l.current != '}' {
		return 0, scanError{kind: closeErr, set: true}
	}
	l.advance()
	return value, scanError{}
}

// Character classification.
//
// Identifier boundaries follow the XID_Start/XID_Continue properties; the
// standard library has no XID tables, so the usual approximation over the
// general categories is used.

func isIDStart(r rune) bool {
	return r == '_' || unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start)
}

func isIDContinue(r rune) bool {
	return r == '_' || unicode.In(r,
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexDigitValue(r rune) int {
	switch {
	case isDigit(r):
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

func isDigitInBase(r rune, base int) bool {
	switch {
	case base == 16:
		return isHexDigit(r)
	case isDigit(r):
		return int(r-'0') < base
	default:
		return false
	}
}
