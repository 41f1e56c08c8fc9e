package lexer

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		text string
		want Keyword
		ok   bool
	}{
		{"struct", KeywordStruct, true},
		{"throw", KeywordThrow, true},
		{"foreach", KeywordForeach, true},
		{"enum", KeywordEnum, true},
		{"print", KeywordPrint, true},
		{"println", KeywordPrintln, true},
		{"if", KeywordIf, true},
		{"else", KeywordElse, true},
		{"while", KeywordWhile, true},
		{"for", KeywordFor, true},
		{"break", KeywordBreak, true},
		{"continue", KeywordContinue, true},
		{"func", KeywordFunc, true},
		{"return", KeywordReturn, true},
		{"using", KeywordUsing, true},
		{"switch", KeywordSwitch, true},
		{"case", KeywordCase, true},
		{"include", KeywordInclude, true},
		{"class", KeywordClass, true},
		{"new", KeywordNew, true},
		{"While", 0, false},
		{"whilex", 0, false},
		{"", 0, false},
		{"true", 0, false},
	}

	for _, tt := range tests {
		kw, ok := LookupKeyword(tt.text)
		if ok != tt.ok {
			t.Errorf("LookupKeyword(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			continue
		}
		if ok && kw != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.text, kw, tt.want)
		}
	}
}

func TestKeywordStringRoundTrip(t *testing.T) {
	// Every keyword's lexeme must map back to itself through the lookup
	// table, so the table and the String method cannot drift apart.
	for kw := KeywordStruct; kw <= KeywordNew; kw++ {
		text := kw.String()
		back, ok := LookupKeyword(text)
		if !ok {
			t.Errorf("LookupKeyword(%q) failed for keyword %d", text, kw)
			continue
		}
		if back != kw {
			t.Errorf("LookupKeyword(%q) = %v, want %v", text, back, kw)
		}
	}
}

func TestPunctuatorString(t *testing.T) {
	tests := []struct {
		p    Punctuator
		want string
	}{
		{Arrow, "->"},
		{DoubleColonEq, "::="},
		{TripleRightShiftEq, ">>>="},
		{TripleGreater, ">>>"},
		{QuestionColon, "?:"},
		{DoubleQuestion, "??"},
		{DoubleCaret, "^^"},
		{DoubleDot, ".."},
		{OpenBrace, "{"},
		{At, "@"},
	}

	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Punctuator(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestErrorKindString(t *testing.T) {
	// Every kind must render its own message, not the fallback.
	for kind := DigitDoesNotCorrespondToBase; kind <= UnterminatedWrappedIdentifier; kind++ {
		if got := kind.String(); got == "unknown lexical error" {
			t.Errorf("ErrorKind(%d) has no diagnostic message", kind)
		}
	}
}

func TestRawTokenComparable(t *testing.T) {
	if RawPunctuator(Plus) != RawPunctuator(Plus) {
		t.Errorf("identical punctuator tokens compare unequal")
	}
	if RawPunctuator(Plus) == RawPunctuator(Minus) {
		t.Errorf("distinct punctuator tokens compare equal")
	}
	if RawKeyword(KeywordIf) == RawKeyword(KeywordElse) {
		t.Errorf("distinct keyword tokens compare equal")
	}
	if RawIdentifier() == RawNumber() {
		t.Errorf("distinct token kinds compare equal")
	}
	if RawIdentifier() != RawIdentifier() {
		t.Errorf("identifier tokens compare unequal")
	}
}

func TestRawTokenString(t *testing.T) {
	tests := []struct {
		raw  RawToken
		want string
	}{
		{RawPunctuator(Arrow), "`->`"},
		{RawKeyword(KeywordWhile), "`while`"},
		{RawError(UnterminatedStringLiteral), "error: unterminated string literal"},
		{RawIdentifier(), "identifier"},
		{RawNumber(), "number"},
		{RawText(), "text"},
		{RawEndOfFile(), "end of file"},
	}

	for _, tt := range tests {
		if got := tt.raw.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
