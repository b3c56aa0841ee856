package gridfile

import (
	"strings"
	"unicode"
)

const byteOrderMark = "\ufeff"

// sanitize replaces control characters other than newline, carriage return,
// and tab with a space so that malformed JSON exports still parse.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return ' '
		}
		return r
	}, s)
}
