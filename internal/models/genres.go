package models

import "github.com/luquetti/mis18/internal/shared"

// GenreVocabulary is the controlled list of genres the edit layer accepts.
// Stored preferences carry the canonical (lowercase, unaccented) form.
var GenreVocabulary = []string{
	"cachengue",
	"cumbia",
	"cuarteto",
	"electronica",
	"folklore",
	"pop",
	"reggaeton",
	"rkt",
	"rock",
	"salsa",
	"techno",
	"trap",
}

// CanonicalGenre normalizes a free-text genre and reports whether it is in
// the vocabulary.
func CanonicalGenre(genre string) (string, bool) {
	g := shared.Normalize(genre)
	for _, known := range GenreVocabulary {
		if g == known {
			return g, true
		}
	}
	return g, false
}
