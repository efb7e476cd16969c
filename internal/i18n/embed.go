package i18n

import (
	"embed"
	"io/fs"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Locales exposes the embedded catalog sources, rooted at the JSON files.
func Locales() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}
