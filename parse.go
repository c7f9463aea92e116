package luavalues

import (
	"strconv"

	"github.com/KimNorgaard/go-luavalues/internal/lexer"
	"github.com/KimNorgaard/go-luavalues/internal/token"
)

// The Parse functions recognize a single scalar literal that makes up the
// entire chunk. Surrounding whitespace, nil, arrays and aggregates are
// not recognized. On failure they return false and a zero value, which
// carries no meaning.

// ParseBoolean parses the chunk true or false.
func ParseBoolean(chunk string) (bool, bool) {
	switch lexer.Classify(chunk).Type {
	case token.TRUE:
		return true, true
	case token.FALSE:
		return false, true
	default:
		return false, false
	}
}

// ParseNumber parses a decimal or scientific-notation number such as 42,
// -3.14 or 5.29E-05. Numbers too large for a float64 are rejected.
func ParseNumber(chunk string) (float64, bool) {
	tok := lexer.Classify(chunk)
	if tok.Type != token.NUMBER {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseString parses a string delimited by a matching pair of single or
// double quotes and returns the text between them unmodified.
func ParseString(chunk string) (string, bool) {
	tok := lexer.Classify(chunk)
	if tok.Type != token.STRING {
		return "", false
	}
	return tok.Literal, true
}
