package i18n

import "strings"

// Language is one of the supported locale codes. Values outside the
// supported set are never stored as a resolved locale.
type Language string

const (
	English   Language = "en"
	Hungarian Language = "hu"
)

// Fallback is served when no preference source yields a supported language.
const Fallback = English

var supported = map[Language]struct{}{
	English:   {},
	Hungarian: {},
}

// Supported lists the supported languages in a stable order.
func Supported() []Language {
	return []Language{English, Hungarian}
}

func IsSupported(value string) bool {
	_, ok := supported[Language(value)]
	return ok
}

// Normalize maps a free-form language tag onto a supported Language.
// Matching is case-insensitive and falls back to the base subtag, so
// "en-GB" matches via "en". The second return is false when the value
// matches nothing; callers supply their own fallback.
func Normalize(value string) (Language, bool) {
	tag := strings.ToLower(strings.TrimSpace(value))
	if tag == "" {
		return "", false
	}
	if IsSupported(tag) {
		return Language(tag), true
	}
	if idx := strings.Index(tag, "-"); idx >= 0 {
		if base := tag[:idx]; IsSupported(base) {
			return Language(base), true
		}
	}
	return "", false
}
