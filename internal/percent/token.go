// Package percent implements the printf-style mini-language used to describe
// test-case file names, e.g. "%s.%e" or "test_%s/in.txt".
//
// A format string is a sequence of literal runes interspersed with
// placeholders of the form '%' followed by exactly one rune. "%%" denotes a
// literal percent sign. The same format string is interpreted in three
// consistent modes:
//   - render mode (Render): placeholders are replaced with literal values
//   - match mode (Parse, Match): placeholders become extraction patterns
//   - glob mode (Glob): placeholders become glob wildcards, literals are
//     escaped so they cannot act as glob metacharacters
package percent

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by format operations.
var (
	// ErrTrailingPercent indicates a format string ending with a lone,
	// unescaped '%' that has no identifier rune after it.
	ErrTrailingPercent = errors.New("format string ends with an unescaped %")

	// ErrUndefinedPlaceholder indicates a placeholder whose identifier rune
	// has no entry in the placeholder table.
	ErrUndefinedPlaceholder = errors.New("undefined placeholder")
)

// Token is a single unit of a format string: either one literal rune or a
// two-rune placeholder.
type Token struct {
	// Placeholder is true when the token is a %x placeholder.
	Placeholder bool
	// Rune is the literal rune, or the placeholder identifier rune when
	// Placeholder is true.
	Rune rune
}

// Tokens splits a format string into literal and placeholder tokens in a
// single left-to-right pass. Each literal consumes one rune, each placeholder
// consumes two ('%' plus the identifier).
//
// A trailing lone '%' returns ErrTrailingPercent rather than being silently
// dropped: it almost always indicates a typo in a user-supplied format.
func Tokens(format string) ([]Token, error) {
	runes := []rune(format)
	tokens := make([]Token, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' {
			tokens = append(tokens, Token{Rune: runes[i]})
			continue
		}
		if i+1 >= len(runes) {
			return nil, fmt.Errorf("%w: %q", ErrTrailingPercent, format)
		}
		i++
		tokens = append(tokens, Token{Placeholder: true, Rune: runes[i]})
	}
	return tokens, nil
}

// checkTable panics when the table defines '%' as anything but "%".
// Such a table is a programming error, not a recoverable condition: the '%'
// entry would silently change the meaning of "%%".
func checkTable(table map[rune]string) {
	if v, ok := table['%']; ok && v != "%" {
		panic(fmt.Sprintf("percent: placeholder table maps %% to %q", v))
	}
}
