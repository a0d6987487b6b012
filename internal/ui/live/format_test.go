package live

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// TestFormatNameTruncatesByRune verifies long names are cut on character boundaries.
func TestFormatNameTruncatesByRune(t *testing.T) {
	name := strings.Repeat("a", 36) + strings.Repeat("é", 10)
	got := formatName(name)
	if !utf8.ValidString(got) {
		t.Fatalf("expected valid UTF-8, got %q", got)
	}
	want := strings.Repeat("a", 36) + "é..."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

// TestFormatNameCollapsesWhitespace verifies short names are only normalized.
func TestFormatNameCollapsesWhitespace(t *testing.T) {
	if got := formatName("  Colors \n of   the rainbow "); got != "Colors of the rainbow" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := formatName(strings.Repeat("é", 40)); got != strings.Repeat("é", 40) {
		t.Fatalf("expected 40 runes to fit, got %q", got)
	}
}
