package i18n

import "strings"

// ParseAcceptLanguage splits an Accept-Language header value into raw tags
// in written order. Quality weights are stripped, not re-sorted: the order
// the client wrote is the preference order. Wildcard and empty segments
// are dropped.
func ParseAcceptLanguage(header string) []string {
	if strings.TrimSpace(header) == "" {
		return nil
	}

	var tags []string
	for _, part := range strings.Split(header, ",") {
		if idx := strings.Index(part, ";"); idx >= 0 {
			part = part[:idx]
		}
		tag := strings.TrimSpace(part)
		if tag == "" || tag == "*" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}
