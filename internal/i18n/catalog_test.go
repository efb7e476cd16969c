package i18n

import "testing"

func TestLoadAllCoversSupportedSet(t *testing.T) {
	t.Parallel()

	catalogs, err := LoadAll(Locales())
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}

	for _, lang := range Supported() {
		catalog, ok := catalogs[lang]
		if !ok {
			t.Fatalf("LoadAll() missing catalog for %q", lang)
		}
		if catalog.Language() != lang {
			t.Fatalf("catalog language = %q, want %q", catalog.Language(), lang)
		}
		if catalog.Len() == 0 {
			t.Fatalf("catalog for %q is empty", lang)
		}
		if _, ok := catalog.Lookup("home.title"); !ok {
			t.Fatalf("catalog for %q is missing %q", lang, "home.title")
		}
	}
}

func TestLoadCatalogFlattensNestedKeys(t *testing.T) {
	t.Parallel()

	catalog, err := LoadCatalog(Locales(), English)
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}

	msg, ok := catalog.Lookup("language.options.hu")
	if !ok {
		t.Fatal("Lookup(\"language.options.hu\") missing")
	}
	if msg != "Magyar" {
		t.Fatalf("Lookup(\"language.options.hu\") = %q, want %q", msg, "Magyar")
	}
}

func TestLoadCatalogUnknownLanguageFails(t *testing.T) {
	t.Parallel()

	if _, err := LoadCatalog(Locales(), Language("xx")); err == nil {
		t.Fatal("LoadCatalog(\"xx\") succeeded, want error")
	}
}

func TestCatalogMessagesReturnsCopy(t *testing.T) {
	t.Parallel()

	catalog, err := LoadCatalog(Locales(), English)
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}

	messages := catalog.Messages()
	messages["home.title"] = "mutated"

	if msg, _ := catalog.Lookup("home.title"); msg == "mutated" {
		t.Fatal("mutating Messages() copy changed the catalog")
	}
}
