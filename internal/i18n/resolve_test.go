package i18n

import "testing"

func TestResolvePrefersAccountLanguage(t *testing.T) {
	t.Parallel()

	got := Resolve(Sources{Account: "hu", Cookie: "en", Browser: []string{"en-US"}})
	if got != Hungarian {
		t.Fatalf("Resolve() = %q, want %q", got, Hungarian)
	}
}

func TestResolveFallsBackToCookie(t *testing.T) {
	t.Parallel()

	got := Resolve(Sources{Cookie: "hu", Browser: []string{"en-US"}})
	if got != Hungarian {
		t.Fatalf("Resolve() = %q, want %q", got, Hungarian)
	}
}

func TestResolveSkipsUnsupportedCookieAndBrowserEntries(t *testing.T) {
	t.Parallel()

	// Cookie "fr" is unsupported and must fall through; the first browser
	// entry that normalizes is "hu-HU", not the first entry overall.
	got := Resolve(Sources{Cookie: "fr", Browser: []string{"fr-FR", "hu-HU", "en"}})
	if got != Hungarian {
		t.Fatalf("Resolve() = %q, want %q", got, Hungarian)
	}
}

func TestResolveUsesFallbackWhenNothingMatches(t *testing.T) {
	t.Parallel()

	got := Resolve(Sources{Browser: []string{"de-DE", "sk"}})
	if got != English {
		t.Fatalf("Resolve() = %q, want %q", got, English)
	}
}

func TestResolveUnsupportedAccountFallsThroughToCookie(t *testing.T) {
	t.Parallel()

	got := Resolve(Sources{Account: "xx", Cookie: "hu"})
	if got != Hungarian {
		t.Fatalf("Resolve() = %q, want %q", got, Hungarian)
	}
}

func TestResolveTotality(t *testing.T) {
	t.Parallel()

	accounts := []string{"", "en", "hu", "fr", "garbled value"}
	cookies := []string{"", "en", "hu-HU", "de", "; weird ;"}
	browsers := [][]string{nil, {}, {"*"}, {"de-DE", "sk"}, {"fr", "hu"}, {"en-US", "en"}}

	for _, account := range accounts {
		for _, cookie := range cookies {
			for _, browser := range browsers {
				got := Resolve(Sources{Account: account, Cookie: cookie, Browser: browser})
				if !IsSupported(string(got)) {
					t.Fatalf("Resolve(%q, %q, %v) = %q, not in supported set", account, cookie, browser, got)
				}
			}
		}
	}
}
