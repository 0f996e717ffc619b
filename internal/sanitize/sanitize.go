// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sanitize maps user-supplied file names to names that are safe to
// use inside the working directory.
package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// transliterations maps the Turkish diacritic letters to plain ASCII.
var transliterations = map[rune]rune{
	'ı': 'i', 'ğ': 'g', 'ü': 'u', 'ş': 's', 'ö': 'o', 'ç': 'c',
	'İ': 'I', 'Ğ': 'G', 'Ü': 'U', 'Ş': 'S', 'Ö': 'O', 'Ç': 'C',
}

// Filename returns a filesystem-safe form of name. Known diacritics are
// transliterated; any rune that is not a letter, digit, '.', '_', '-' or
// space becomes '_'. Filename is deterministic and idempotent.
func Filename(name string) string {
	// Decomposed input (s + U+0327) must compose first so the map matches.
	name = norm.NFC.String(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if t, ok := transliterations[r]; ok {
			r = t
		}
		if allowed(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func allowed(r rune) bool {
	switch r {
	case '.', '_', '-', ' ':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
