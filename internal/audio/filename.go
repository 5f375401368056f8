package audio

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Everything outside ASCII word characters, whitespace and hyphens is
	// dropped; remaining hyphen/whitespace runs collapse to one underscore.
	invalidChars  = regexp.MustCompile(`[^\w\s-]`)
	separatorRuns = regexp.MustCompile(`[-\s]+`)
)

// SafeFilename derives a filesystem-safe .mp3 filename from query. Accented
// letters fold to their ASCII base first, so "café, mon ami!" becomes
// "cafe_mon_ami.mp3". Letters with no ASCII decomposition are dropped like
// any other non-word character.
func SafeFilename(query string) string {
	stem := foldAccents(strings.TrimSpace(query))
	stem = invalidChars.ReplaceAllString(stem, "")
	stem = separatorRuns.ReplaceAllString(stem, "_")
	return stem + ".mp3"
}

// foldAccents strips combining marks after canonical decomposition.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
