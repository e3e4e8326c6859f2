package mapper

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLength = 100

// Letters that do not decompose into a base letter plus a combining mark.
var slugReplacer = strings.NewReplacer(
	"đ", "dj", "Đ", "dj",
	"ß", "ss",
	"æ", "ae", "Æ", "ae",
	"ø", "o", "Ø", "o",
	"ł", "l", "Ł", "l",
)

// generateSlug builds a URL-safe key from a display name: diacritics are
// stripped, the result is lowercased and runs of other characters become "-".
func generateSlug(name string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(stripper, slugReplacer.Replace(name))
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))

	dash := false
	for _, r := range strings.ToLower(folded) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false

			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}

	return slug
}
