package shared

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes,
// so that "María" and "Maria" normalize to the same key.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize turns a display name into its comparison key: lowercased,
// diacritics removed, surrounding whitespace trimmed.
//
// Pure and total; the normalized key is the login identity for guests.
func Normalize(name string) string {
	stripped, _, err := transform.String(stripMarks, name)
	if err != nil {
		// transform only fails on malformed UTF-8; fall back to the raw input
		stripped = name
	}
	return strings.TrimSpace(strings.ToLower(stripped))
}

// SongKey builds the case-insensitive deduplication key for a song from
// its title and artist, collapsing internal whitespace.
func SongKey(title, artist string) string {
	collapse := func(s string) string {
		return strings.Join(strings.Fields(strings.ToLower(s)), " ")
	}
	return collapse(title) + "|" + collapse(artist)
}
