package i18n

import "testing"

func TestNormalizeExactMatch(t *testing.T) {
	t.Parallel()

	lang, ok := Normalize("hu")
	if !ok || lang != Hungarian {
		t.Fatalf("Normalize(%q) = %q, %v, want %q, true", "hu", lang, ok, Hungarian)
	}
}

func TestNormalizeTrimsAndLowercases(t *testing.T) {
	t.Parallel()

	lang, ok := Normalize("  EN ")
	if !ok || lang != English {
		t.Fatalf("Normalize(%q) = %q, %v, want %q, true", "  EN ", lang, ok, English)
	}
}

func TestNormalizeBaseSubtagFallback(t *testing.T) {
	t.Parallel()

	lang, ok := Normalize("en-GB")
	if !ok || lang != English {
		t.Fatalf("Normalize(%q) = %q, %v, want %q, true", "en-GB", lang, ok, English)
	}
}

func TestNormalizeRejectsUnsupported(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"fr", "de-DE", "", "   ", "-", "zz-ZZ"} {
		if lang, ok := Normalize(value); ok {
			t.Fatalf("Normalize(%q) = %q, true, want no match", value, lang)
		}
	}
}

func TestIsSupportedIsExact(t *testing.T) {
	t.Parallel()

	if !IsSupported("en") || !IsSupported("hu") {
		t.Fatal("IsSupported rejected a supported code")
	}
	// No normalization here: raw values must match the set exactly.
	for _, value := range []string{"EN", "en-GB", "fr", ""} {
		if IsSupported(value) {
			t.Fatalf("IsSupported(%q) = true, want false", value)
		}
	}
}
