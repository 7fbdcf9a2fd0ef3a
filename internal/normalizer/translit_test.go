package normalizer

import "testing"

func TestTransliterateWholeWordLookup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"الجو", "jaw"},
		{"رائع", "heyel"},
		{"اليوم", "lyoum"},
		{"المنستير", "mestir"},
	}
	for _, tt := range tests {
		if got := TransliterateArabic(tt.in); got != tt.want {
			t.Errorf("TransliterateArabic(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTransliteratePrefixSeparation(t *testing.T) {
	// وحلو = conjunction و + حلو; the prefix contributes "w" joined by a
	// space, the base resolves through the word table.
	got := TransliterateArabic("وحلو")
	want := "w hlou"
	if got != want {
		t.Errorf("TransliterateArabic(وحلو) = %q, want %q", got, want)
	}
}

func TestTransliterateCharFallback(t *testing.T) {
	// A word absent from the dictionary falls back to letter-by-letter
	// mapping.
	got := TransliterateArabic("بنت")
	want := "bnt"
	if got != want {
		t.Errorf("TransliterateArabic(بنت) = %q, want %q", got, want)
	}
}

func TestTransliterateLeavesLatinAlone(t *testing.T) {
	in := "jaw behi 123"
	if got := TransliterateArabic(in); got != in {
		t.Errorf("TransliterateArabic(%q) = %q", in, got)
	}
}

func TestTransliterateKeepsPunctuationResidue(t *testing.T) {
	got := TransliterateArabic("رائع!")
	want := "heyel!"
	if got != want {
		t.Errorf("TransliterateArabic(رائع!) = %q, want %q", got, want)
	}
}

func TestIsArabicText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"pure arabic", "الجو رائع", true},
		{"pure latin", "jaw behi", false},
		{"mixed mostly arabic", "الجو behi رائع اليوم", true},
		{"empty", "", false},
		{"punctuation only", "!!! ...", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsArabicText(tt.in); got != tt.want {
				t.Errorf("IsArabicText(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFoldArabicChars(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"أحمد", "احمد"},
		{"مدرسة", "مدرسه"},
		{"هدى", "هدي"},
		{"مَرحَبا", "مرحبا"},
	}
	for _, tt := range tests {
		if got := FoldArabicChars(tt.in); got != tt.want {
			t.Errorf("FoldArabicChars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
