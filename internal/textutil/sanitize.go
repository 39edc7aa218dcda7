package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// phylipNameReplacer removes characters that tree programs treat as Newick
// syntax and maps separators to a pipe.
var phylipNameReplacer = strings.NewReplacer(
	"[", "",
	"]", "",
	"(", "",
	")", "",
	",", "",
	":", "|",
	";", "|",
)

// ASCIIFold strips diacritics and replaces any remaining non-ASCII or
// non-printable rune with an underscore.
func ASCIIFold(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, value)
	if err != nil {
		folded = value
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SanitizePhylipName prepares a sequence identifier for a PHYLIP name column.
// Brackets, parentheses, and commas are dropped; colons and semicolons become
// pipes; the result is folded to ASCII and truncated to width bytes when width
// is positive.
func SanitizePhylipName(name string, width int) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = ASCIIFold(phylipNameReplacer.Replace(name))
	if width > 0 && len(name) > width {
		name = name[:width]
	}
	return name
}
