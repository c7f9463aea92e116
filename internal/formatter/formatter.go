// Package formatter renders scalar values as chunk literals.
package formatter

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNonFinite is returned by Number for NaN and infinities, which have
// no literal form in the chunk grammar.
var ErrNonFinite = errors.New("non-finite number")

// Number returns the shortest decimal text that parses back to f.
//
// Values below 1e-4 or at least 1e6 in magnitude use scientific notation
// with an upper-case E, an explicit exponent sign and at least two
// exponent digits, e.g. 5.29E-05 and 1.7E+07. This includes integral
// values: 1234567 is written 1.234567E+06. Integral values below 1e6 in
// magnitude are written without a decimal point or exponent.
func Number(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errors.Wrapf(ErrNonFinite, "%v", f)
	}
	return strconv.FormatFloat(f, 'G', -1, 64), nil
}

// Quote returns s as a double-quoted string literal.
//
// Backslashes and double quotes are escaped, as are control characters,
// which a quoted literal cannot hold raw. All other bytes, including
// non-ASCII text, are copied verbatim.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				// Three digits so that a following digit is not absorbed.
				b.WriteByte('\\')
				b.WriteByte('0' + c/100)
				b.WriteByte('0' + c/10%10)
				b.WriteByte('0' + c%10)
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
