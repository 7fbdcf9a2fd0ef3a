package normalizer

import "strings"

// specialCharReplacer folds the many Unicode apostrophe, quote, dash and
// space variants found in social posts onto plain ASCII forms. Guillemets
// and curly double quotes are dropped entirely.
var specialCharReplacer = strings.NewReplacer(
	// apostrophe variants
	"’", "'", // right single quotation mark
	"‘", "'", // left single quotation mark
	"ʼ", "'", // modifier letter apostrophe
	"ʹ", "'", // modifier letter prime
	"`", "'", // grave accent
	"´", "'", // acute accent
	"′", "'", // prime
	"‵", "'", // reversed prime
	"＇", "'", // fullwidth apostrophe
	"ʻ", "'", // modifier letter turned comma
	"ˊ", "'", // modifier letter acute accent
	"ˋ", "'", // modifier letter grave accent

	// quotation marks
	"«", "",
	"»", "",
	"\"", "",
	"“", "",
	"”", "",
	"„", "",

	// dashes
	"—", "-", // em dash
	"–", "-", // en dash
	"−", "-", // minus sign

	// spaces and invisibles
	" ", " ", // non-breaking space
	"​", "", // zero-width space
	"‌", "", // zero-width non-joiner
	"‍", "", // zero-width joiner
	"\uFEFF", "", // BOM

	"…", "...", // ellipsis
)

// CleanSpecialChars canonicalizes quote, apostrophe, dash and whitespace
// variants so later stages only ever see the ASCII forms.
func CleanSpecialChars(text string) string {
	if text == "" {
		return text
	}
	return specialCharReplacer.Replace(text)
}
