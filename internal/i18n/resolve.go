package i18n

// Sources carries the per-request language signals. Account is the stored
// account preference, Cookie the raw lang cookie value, Browser the
// Accept-Language tags in written order. All fields are optional; a source
// is absent when its value is empty.
type Sources struct {
	Account string
	Cookie  string
	Browser []string
}

// Resolve picks the effective language for a request: account preference,
// then cookie, then the first browser tag that normalizes, then Fallback.
// Values that fail to normalize at any tier are skipped, never fatal, so
// the result is always a supported language.
func Resolve(src Sources) Language {
	if lang, ok := Normalize(src.Account); ok {
		return lang
	}
	if lang, ok := Normalize(src.Cookie); ok {
		return lang
	}
	for _, raw := range src.Browser {
		if lang, ok := Normalize(raw); ok {
			return lang
		}
	}
	return Fallback
}
