package normalizer

import "strings"

// arabicShapeReplacer folds hamza-carrier and letter-shape variants onto
// one canonical form each.
var arabicShapeReplacer = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ى", "ي",
	"ة", "ه",
	"ؤ", "ء",
	"ئ", "ء",
)

// FoldArabicChars removes Arabic diacritics and folds letter-shape variants
// so dictionary lookups see one spelling per word.
func FoldArabicChars(text string) string {
	text = strings.Map(func(r rune) rune {
		if (r >= 0x064B && r <= 0x065F) || r == 0x0670 {
			return -1
		}
		return r
	}, text)
	return arabicShapeReplacer.Replace(text)
}
