// Package locale holds the per-language weather description catalogs.
//
// Each supported language keeps its own table keyed by the raw WMO
// integer code. The tables are maintained independently so a missing
// translation never silently borrows from another language; lookups
// that miss fall back to the language's unknown sentinel instead.
package locale

import "golang.org/x/text/language"

// Supported lists the languages the catalogs cover, in priority order.
// The first entry is the fallback for requests we cannot match.
var Supported = []language.Tag{
	language.English,
	language.Czech,
}

var matcher = language.NewMatcher(Supported)

// table is one language's description set.
type table struct {
	descriptions map[int]string
	unknown      string
}

var catalogs = map[language.Tag]table{
	language.English: english,
	language.Czech:   czech,
}

// Resolve matches an arbitrary tag against the supported languages.
// Unsupported tags resolve to English.
func Resolve(tag language.Tag) language.Tag {
	_, i, _ := matcher.Match(tag)
	return Supported[i]
}

// Parse resolves a raw BCP 47 string like "cs", "cs-CZ" or "en-US" to a
// supported language. Unparseable input resolves to English.
func Parse(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return Resolve(tag)
}

// Description returns the display string for a weather code in the
// requested language. Codes without an entry return the language's
// unknown sentinel.
func Description(tag language.Tag, code int) string {
	t := catalogs[Resolve(tag)]
	if desc, ok := t.descriptions[code]; ok {
		return desc
	}
	return t.unknown
}

// Unknown returns the language's sentinel for absent or unrecognized codes.
func Unknown(tag language.Tag) string {
	return catalogs[Resolve(tag)].unknown
}

// Codes returns the set of weather codes the language has entries for.
func Codes(tag language.Tag) []int {
	t := catalogs[Resolve(tag)]
	codes := make([]int, 0, len(t.descriptions))
	for code := range t.descriptions {
		codes = append(codes, code)
	}
	return codes
}
