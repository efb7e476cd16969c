package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// Catalog is the message table for one language, flattened from the nested
// JSON source into dotted keys ("language.options.en"). Catalogs are
// immutable once loaded; a language switch selects a different catalog.
type Catalog struct {
	lang     Language
	messages map[string]string
}

func (c *Catalog) Language() Language { return c.lang }

func (c *Catalog) Len() int { return len(c.messages) }

// Lookup returns the message for key and whether the key exists.
func (c *Catalog) Lookup(key string) (string, bool) {
	msg, ok := c.messages[key]
	return msg, ok
}

// Messages returns a copy of the flattened message table for serialization.
func (c *Catalog) Messages() map[string]string {
	out := make(map[string]string, len(c.messages))
	for k, v := range c.messages {
		out[k] = v
	}
	return out
}

// LoadCatalog reads the catalog source for lang from fsys. A missing or
// unparseable file for a supported language means the build disagrees with
// its own language list, so the error surfaces instead of being softened.
func LoadCatalog(fsys fs.FS, lang Language) (*Catalog, error) {
	name := string(lang) + ".json"

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}

	var nested map[string]any
	if err := json.Unmarshal(data, &nested); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", name, err)
	}

	messages := make(map[string]string)
	flatten("", nested, messages)

	return &Catalog{lang: lang, messages: messages}, nil
}

// LoadAll loads the catalog for every supported language so a client can
// switch languages without a further round-trip.
func LoadAll(fsys fs.FS) (map[Language]*Catalog, error) {
	catalogs := make(map[Language]*Catalog, len(supported))
	for _, lang := range Supported() {
		catalog, err := LoadCatalog(fsys, lang)
		if err != nil {
			return nil, err
		}
		catalogs[lang] = catalog
	}
	return catalogs, nil
}

// flatten converts nested JSON objects into dotted keys:
// {"language": {"label": "x"}} -> "language.label": "x".
func flatten(prefix string, src map[string]any, dst map[string]string) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			dst[key] = val
		case map[string]any:
			flatten(key, val, dst)
		}
	}
}
