package percent

import (
	"fmt"
	"path/filepath"
	"strings"
)

// globSpecial holds the runes that carry meaning in glob patterns and must be
// escaped when they appear literally in a format string or directory path.
const globSpecial = `*?[]{}\`

// Glob renders format as a glob pattern rooted at directory. Literal runes
// from the format (and every rune of the directory) are escaped so glob
// metacharacters in file names match themselves; placeholder values from
// table are inserted verbatim, so a value of "*" acts as a wildcard.
//
// The result is suitable for doublestar-style glob expansion.
func Glob(directory, format string, table map[rune]string) (string, error) {
	checkTable(table)

	tokens, err := Tokens(format)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(EscapeGlob(directory))
	b.WriteRune(filepath.Separator)
	for _, tok := range tokens {
		if !tok.Placeholder {
			writeGlobRune(&b, tok.Rune)
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

// EscapeGlob escapes every glob metacharacter in s with a backslash so the
// result matches s literally.
func EscapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		writeGlobRune(&b, r)
	}
	return b.String()
}

func writeGlobRune(b *strings.Builder, r rune) {
	if strings.ContainsRune(globSpecial, r) {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}
