package utils

import (
	"net/url"
	"strings"
)

var separatorReplacer = strings.NewReplacer("-", " ", "_", " ", ".", " ", "/", " ")

// NormalizeSlug reduces a free-text course identifier to a comparable
// form: percent-decoded, lowercased, separators turned into single
// spaces. "Advanced-React_Patterns" and "advanced react patterns"
// normalize to the same string.
func NormalizeSlug(name string) string {
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	name = strings.ToLower(strings.TrimSpace(name))
	name = separatorReplacer.Replace(name)
	return strings.Join(strings.Fields(name), " ")
}

// SlugKey is the underscore form of a normalized slug, used as the key
// into the embedded fallback content table.
func SlugKey(name string) string {
	return strings.ReplaceAll(NormalizeSlug(name), " ", "_")
}
