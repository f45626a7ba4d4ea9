package utils

import (
	"net/url"
	"strings"
)

// NormalizeURL resolves href against base and strips trailing slashes.
// URL identity throughout a run is exact string equality of this normalized
// form; query order, case and scheme are not canonicalized.
func NormalizeURL(base, href string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", err
	}
	resolved := b.ResolveReference(ref).String()
	return strings.TrimRight(resolved, "/"), nil
}

// CleanLabel trims and lowercases a candidate category label or anchor text.
func CleanLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
