package percent

import (
	"fmt"
	"strings"
)

// Render substitutes every placeholder in format with its value from table
// and passes literal runes through unchanged. "%%" always renders as "%".
//
// A placeholder whose identifier has no table entry returns
// ErrUndefinedPlaceholder. If the table defines an entry for '%' it must map
// to "%"; violating that is a programming error and panics.
func Render(format string, table map[rune]string) (string, error) {
	checkTable(table)

	tokens, err := Tokens(format)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, tok := range tokens {
		if !tok.Placeholder {
			b.WriteRune(tok.Rune)
			continue
		}
		if tok.Rune == '%' {
			b.WriteByte('%')
			continue
		}
		value, ok := table[tok.Rune]
		if !ok {
			return "", fmt.Errorf("%w: %%%c in %q", ErrUndefinedPlaceholder, tok.Rune, format)
		}
		b.WriteString(value)
	}
	return b.String(), nil
}
