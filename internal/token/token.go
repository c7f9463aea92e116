package token

// Type is the literal class of a chunk.
type Type string

// Token is a scalar literal recognized in a chunk.
type Token struct {
	Type Type
	// Literal holds the raw chunk text, except for STRING where it holds
	// the text between the quotes.
	Literal string
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // Not a scalar literal

	// Literals
	IDENT  Type = "IDENT"  // a, key, name
	NUMBER Type = "NUMBER" // 12345, -1.5, 5.29E-05
	STRING Type = "STRING" // "hello" or 'hello'

	// Keywords
	NIL   Type = "NIL"
	TRUE  Type = "TRUE"
	FALSE Type = "FALSE"
)

var keywords = map[string]Type{
	"nil":   NIL,
	"true":  TRUE,
	"false": FALSE,
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword, it returns the keyword's token type.
// Otherwise, it returns IDENT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
