package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
)

// turkishASCII maps Turkish-specific characters to their closest ASCII
// equivalents. İ is mapped directly to i: strings.ToLower would otherwise
// produce i followed by a combining dot.
var turkishASCII = map[rune]rune{
	'ç': 'c', 'Ç': 'c',
	'ğ': 'g', 'Ğ': 'g',
	'ı': 'i', 'İ': 'i',
	'ö': 'o', 'Ö': 'o',
	'ş': 's', 'Ş': 's',
	'ü': 'u', 'Ü': 'u',
}

// GenerateSlug turns a title into a URL slug: transliterate Turkish
// characters, lowercase, drop everything outside [a-z0-9\s-], collapse
// whitespace runs, trim, then replace spaces with hyphens. Pure and total;
// empty input yields "".
func GenerateSlug(input string) string {
	if input == "" {
		return ""
	}

	runes := make([]rune, 0, len(input))
	for _, r := range input {
		if repl, ok := turkishASCII[r]; ok {
			runes = append(runes, repl)
		} else {
			runes = append(runes, r)
		}
	}

	s := strings.ToLower(string(runes))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, " ", "-")
}
