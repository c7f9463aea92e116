// Package lexer recognizes scalar literals of the chunk grammar.
//
// Recognition always covers the whole input: surrounding whitespace,
// trailing garbage or a literal that is only a prefix of the input
// makes the chunk ILLEGAL.
package lexer

import "github.com/KimNorgaard/go-luavalues/internal/token"

// Classify reports which scalar literal the entire chunk is.
func Classify(chunk string) token.Token {
	switch {
	case isQuoted(chunk):
		return token.Token{Type: token.STRING, Literal: chunk[1 : len(chunk)-1]}
	case IsNumber(chunk):
		return token.Token{Type: token.NUMBER, Literal: chunk}
	case IsIdentifier(chunk):
		return token.Token{Type: token.LookupIdent(chunk), Literal: chunk}
	default:
		return token.Token{Type: token.ILLEGAL, Literal: chunk}
	}
}

// isQuoted reports whether s opens and closes with the same quote
// character. The content between the quotes is not inspected.
func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	q := s[0]
	return (q == '"' || q == '\'') && s[len(s)-1] == q
}

// IsIdentifier reports whether s is a bare identifier: a letter or
// underscore followed by letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" || isDigit(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentifierChar(s[i]) {
			return false
		}
	}
	return true
}

// IsNumber validates that s is a decimal or scientific-notation number.
// It is a pure function.
//
// Valid examples: "0", "-10", "+1", "007", "1.23", ".5", "5.", "5e-10", "-0.5E+2"
// Invalid examples: "--1", "1.2.3", ".", "5e-", "e10", "inf", "0x10", " 1"
func IsNumber(s string) bool {
	if len(s) == 0 {
		return false
	}
	i := 0

	// Optional sign.
	if s[i] == '-' || s[i] == '+' {
		i++
	}

	// Mantissa.
	var ok bool
	i, ok = parseMantissa(s, i)
	if !ok {
		return false
	}

	// Exponent part.
	i, ok = parseExponentPart(s, i)
	if !ok {
		return false
	}

	// Must consume the whole string.
	return i == len(s)
}

func parseMantissa(s string, i int) (newIndex int, ok bool) {
	integerStart := i
	i = consumeDigits(s, i)
	digits := i - integerStart
	if i < len(s) && s[i] == '.' {
		i++ // Consume '.'.
		fractionStart := i
		i = consumeDigits(s, i)
		digits += i - fractionStart
	}
	return i, digits > 0
}

func parseExponentPart(s string, i int) (newIndex int, ok bool) {
	if i >= len(s) || (s[i] != 'e' && s[i] != 'E') {
		return i, true
	}
	i++ // Consume 'e' or 'E'.
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	exponentStart := i
	i = consumeDigits(s, i)
	if i == exponentStart {
		return i, false // No digits in exponent.
	}
	return i, true
}

func consumeDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentifierChar(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || isDigit(ch) || ch == '_'
}
