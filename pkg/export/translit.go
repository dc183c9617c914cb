package export

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Transliterate reduces text to its unaccented ASCII base letters by
// decomposing to NFD and dropping combining marks. The Vietnamese đ/Đ do
// not decompose, so they are mapped explicitly. Runes outside ASCII with no
// decomposition are dropped: the PDF fonts in use cannot render them.
func Transliterate(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch r {
		case 'đ':
			r = 'd'
		case 'Đ':
			r = 'D'
		}
		if r > unicode.MaxASCII {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
