// Package title normalizes and compares media titles coming from poster
// catalogs and media servers.
package title

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanNumeralRegex matches Roman numerals II-IX preceded by a space.
// Standalone "I" and "X" are left alone ("I Robot", "American History X").
var romanNumeralRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"II": "2", "III": "3", "IV": "4", "V": "5",
	"VI": "6", "VII": "7", "VIII": "8", "IX": "9",
}

// yearSuffixRegex matches a trailing " (2020)" disambiguation.
var yearSuffixRegex = regexp.MustCompile(`\s+\((\d{4})\)$`)

// Clean normalizes a title for comparison: lowercase, no accents, no
// leading articles, punctuation folded to spaces, Roman numerals as digits.
func Clean(s string) string {
	s = strings.ToLower(StripYear(s))
	s = romanNumeralRegex.ReplaceAllStringFunc(s, func(match string) string {
		if arabic, ok := romanToArabic[strings.ToUpper(strings.TrimSpace(match))]; ok {
			return " " + arabic
		}
		return match
	})
	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "’", "")
	s = strings.ReplaceAll(s, ".", " ")

	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(part)
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// StripYear removes a trailing " (YYYY)" that servers append to
// disambiguate remakes, e.g. "Doctor Who (2005)".
func StripYear(s string) string {
	return strings.TrimSpace(yearSuffixRegex.ReplaceAllString(strings.TrimSpace(s), ""))
}

// StripCollectionSuffix removes a trailing " Collection" as catalogs name
// collections that servers list without it.
func StripCollectionSuffix(s string) string {
	s = strings.TrimSpace(s)
	const suffix = " collection"
	if len(s) > len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return strings.TrimSpace(s[:len(s)-len(suffix)])
	}
	return s
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func stripLeadingArticle(s string) string {
	s = strings.TrimSpace(s)
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}
