package percent

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Parse matches s against format, where each table value is a regular
// expression fragment describing what its placeholder may capture. The match
// is anchored at the start of s only, so trailing text in s is permitted.
//
// On success it returns the text captured by each placeholder. When s does
// not conform to the format it returns (nil, nil). Errors are reserved for
// malformed formats and tables (ErrTrailingPercent, ErrUndefinedPlaceholder,
// invalid fragments).
//
// A placeholder that occurs more than once must capture identical text at
// every occurrence; "AB" does not parse as "%a%a" even when the 'a' fragment
// matches both runes individually.
func Parse(s, format string, table map[rune]string) (map[rune]string, error) {
	expr, groups, err := compile(format, table)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile("^" + expr)
	if err != nil {
		return nil, fmt.Errorf("invalid placeholder fragment for %q: %w", format, err)
	}
	return extract(re, groups, s), nil
}

// Match matches path against format joined under directory. Unlike Parse the
// pattern is anchored at both ends: the path must consist of exactly the
// directory, a path separator, and the format. Both directory and path are
// compared as given; callers are expected to resolve them to absolute,
// symlink-free form beforehand so that equivalent spellings compare equal.
func Match(directory, format, path string, table map[rune]string) (map[rune]string, error) {
	expr, groups, err := compile(format, table)
	if err != nil {
		return nil, err
	}
	pattern := "^" + regexp.QuoteMeta(directory+string(filepath.Separator)) + expr + "$"
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid placeholder fragment for %q: %w", format, err)
	}
	return extract(re, groups, path), nil
}

// compile transforms a format string into a regular expression. Literal runes
// are escaped so they match themselves; each placeholder occurrence becomes a
// named capture group wrapping its table fragment. groups records, in order
// of appearance, which placeholder each generated group belongs to.
//
// Group names are generated (g0, g1, ...) rather than derived from the
// placeholder rune: placeholder identifiers are not restricted to runes that
// are legal in regexp group names, and repeated placeholders need one group
// per occurrence.
func compile(format string, table map[rune]string) (expr string, groups []rune, err error) {
	checkTable(table)

	tokens, err := Tokens(format)
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	for _, tok := range tokens {
		if !tok.Placeholder {
			b.WriteString(regexp.QuoteMeta(string(tok.Rune)))
			continue
		}
		if tok.Rune == '%' {
			b.WriteByte('%')
			continue
		}
		fragment, ok := table[tok.Rune]
		if !ok {
			return "", nil, fmt.Errorf("%w: %%%c in %q", ErrUndefinedPlaceholder, tok.Rune, format)
		}
		fmt.Fprintf(&b, "(?P<g%d>%s)", len(groups), fragment)
		groups = append(groups, tok.Rune)
	}
	return b.String(), groups, nil
}

// extract runs re against s and maps captured groups back to their
// placeholder runes. Go's regexp engine has no back-references, so the
// repeated-placeholder rule is enforced here instead: every occurrence of a
// placeholder carries its own capture group, and any disagreement between
// occurrences turns an otherwise successful match into a no-match.
func extract(re *regexp.Regexp, groups []rune, s string) map[rune]string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	result := make(map[rune]string, len(groups))
	for i, c := range groups {
		value := m[re.SubexpIndex(fmt.Sprintf("g%d", i))]
		if prev, seen := result[c]; seen {
			if prev != value {
				return nil
			}
			continue
		}
		result[c] = value
	}
	return result
}
