package normalizer

import (
	"strings"
	"testing"
)

func TestProtectRoundTrip(t *testing.T) {
	// Every recognized pattern must reappear byte-identical in the final
	// output regardless of the lowercasing and rewriting in between.
	tests := []struct {
		name string
		text string
		span string
	}{
		{"time colon", "el hafla tebda 18:30 fi mestir", "18:30"},
		{"time h", "rendez-vous 14h30 behi", "14h30"},
		{"full date", "nhar 25/12/2024 jaw", "25/12/2024"},
		{"short date", "nhar 25/12 jaw", "25/12"},
		{"year", "fi 2024 kenet hafla", "2024"},
		{"percentage", "takhfidh 50% lyoum", "50%"},
		{"price", "el tathkra b 50dt barcha", "50dt"},
		{"arabic month date", "الحفلة نهار 30 أكتوبر 2025", "30 أكتوبر 2025"},
		{"arabic month range", "مهرجان 2 و3 ماي 2025 في المنستير", "2 و3 ماي 2025"},
		{"french month date", "concert le 25 décembre fi sousse", "25 décembre"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.text)
			if !strings.Contains(got, tt.span) {
				t.Errorf("Normalize(%q) = %q, protected span %q mangled", tt.text, got, tt.span)
			}
		})
	}
}

func TestProtectAssignsPlaceholders(t *testing.T) {
	text, spans := Protect("nhar 25/12/2024 fi 18:30")
	if spans.Len() != 2 {
		t.Fatalf("expected 2 protected spans, got %d", spans.Len())
	}
	if strings.Contains(text, "25/12") || strings.Contains(text, "18:30") {
		t.Errorf("spans not replaced: %q", text)
	}
	if !strings.Contains(text, "PROT") {
		t.Errorf("no placeholder in %q", text)
	}
}

func TestProtectSkipsAlreadyProtected(t *testing.T) {
	// 25/12/2024 matches the full-date pattern; the short-date and year
	// patterns must not re-protect pieces of its placeholder neighborhood.
	text, spans := Protect("25/12/2024")
	if spans.Len() != 1 {
		t.Fatalf("expected 1 span, got %d (text %q)", spans.Len(), text)
	}
}

func TestRestoreHandlesLowercasedPlaceholders(t *testing.T) {
	text, spans := Protect("nhar 25/12/2024")
	lowered := strings.ToLower(text)
	restored := Restore(lowered, spans)
	if !strings.Contains(restored, "25/12/2024") {
		t.Errorf("Restore(%q) = %q", lowered, restored)
	}
}

func TestProtectPerCallIsolation(t *testing.T) {
	textA, spansA := Protect("nhar 25/12/2024")
	textB, spansB := Protect("fi 18:30")

	if Restore(textA, spansA) != "nhar 25/12/2024" {
		t.Error("span map A corrupted")
	}
	if Restore(textB, spansB) != "fi 18:30" {
		t.Error("span map B corrupted")
	}
	// Restoring with the wrong map must leave the placeholder alone.
	if got := Restore(textA, spansB); strings.Contains(got, "18:30") {
		t.Errorf("cross-post span leak: %q", got)
	}
}

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"PROT0PROT", true},
		{"prot12prot", true},
		{"PROTPROT", false},
		{"protection", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsPlaceholder(tt.in); got != tt.want {
			t.Errorf("IsPlaceholder(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProtectNoPatterns(t *testing.T) {
	text, spans := Protect("jaw behi barcha")
	if spans.Len() != 0 || text != "jaw behi barcha" {
		t.Errorf("unexpected protection: %q, %d spans", text, spans.Len())
	}
}
