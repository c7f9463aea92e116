package lexer_test

import (
	"testing"

	"github.com/KimNorgaard/go-luavalues/internal/lexer"
	"github.com/KimNorgaard/go-luavalues/internal/token"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input           string
		expectedType    token.Type
		expectedLiteral string
	}{
		{"nil", token.NIL, "nil"},
		{"true", token.TRUE, "true"},
		{"false", token.FALSE, "false"},
		{"hello", token.IDENT, "hello"},
		{"_x1", token.IDENT, "_x1"},
		{"42", token.NUMBER, "42"},
		{"-3.14", token.NUMBER, "-3.14"},
		{"5.29E-05", token.NUMBER, "5.29E-05"},
		{`"Hello"`, token.STRING, "Hello"},
		{`'Hello'`, token.STRING, "Hello"},
		{`''`, token.STRING, ""},
		{`"it's"`, token.STRING, "it's"},
		{`'say "hi"'`, token.STRING, `say "hi"`},
		{`"Привет"`, token.STRING, "Привет"},
		{`'Hello"`, token.ILLEGAL, `'Hello"`},
		{`"`, token.ILLEGAL, `"`},
		{"No quotes", token.ILLEGAL, "No quotes"},
		{"{1, 2}", token.ILLEGAL, "{1, 2}"},
		{" true", token.ILLEGAL, " true"},
		{"true ", token.ILLEGAL, "true "},
		{"", token.ILLEGAL, ""},
		{"1abc", token.ILLEGAL, "1abc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := lexer.Classify(tt.input)
			require.Equal(t, tt.expectedType, tok.Type)
			require.Equal(t, tt.expectedLiteral, tok.Literal)
		})
	}
}

func TestIsNumber(t *testing.T) {
	valid := []string{
		"0", "1", "-10", "+1", "007", "3.14", "-0.5", ".5", "-.5", "5.",
		"1e10", "1E10", "5.29E-05", "1.7E+07", "-0.5e+2", "1.e3", ".5e-3",
	}
	for _, s := range valid {
		t.Run("valid "+s, func(t *testing.T) {
			require.True(t, lexer.IsNumber(s))
		})
	}

	invalid := []string{
		"", "-", "+", ".", "--1", "+-1", "1.2.3", "5e", "5e-", "e10", ".e1",
		"1e5.5", "inf", "-Inf", "NaN", "0x10", "1_000", " 1", "1 ", "'Hello'",
		"true", "{1, 2}", "1,5",
	}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			require.False(t, lexer.IsNumber(s))
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	require.True(t, lexer.IsIdentifier("message"))
	require.True(t, lexer.IsIdentifier("_private"))
	require.True(t, lexer.IsIdentifier("moreData2"))
	require.False(t, lexer.IsIdentifier(""))
	require.False(t, lexer.IsIdentifier("2fast"))
	require.False(t, lexer.IsIdentifier("with-dash"))
	require.False(t, lexer.IsIdentifier("with space"))
}
