// Package url provides URL helpers used when building bang redirects.
package url

import (
	"net/url"
	"strings"
)

// IsAbsolute reports whether raw parses as an absolute URL with a host.
func IsAbsolute(raw string) bool {
	if raw == "" || strings.ContainsAny(raw, " \t\r\n") {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

// Origin returns the scheme and host of rawURL ("https://example.com"),
// dropping path, query and fragment. It works on unexpanded templates too,
// since placeholders only appear after the host.
// Returns "" when rawURL has no scheme separator.
func Origin(rawURL string) string {
	schemeEnd := strings.Index(rawURL, "://")
	if schemeEnd <= 0 {
		return ""
	}
	hostStart := schemeEnd + len("://")
	hostEnd := strings.IndexAny(rawURL[hostStart:], "/?#")
	if hostEnd == -1 {
		return rawURL
	}
	return rawURL[:hostStart+hostEnd]
}

// EncodeComponent percent-encodes s for use inside a URL component. Spaces
// become %20 rather than "+".
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ExtractDomain extracts the normalized domain (host) from a URL string.
// Normalizes by stripping "www." prefix so youtube.com and www.youtube.com
// resolve to the same value.
func ExtractDomain(rawURL string) string {
	host := strings.TrimPrefix(Origin(rawURL), "https://")
	host = strings.TrimPrefix(host, "http://")
	if host == "" || strings.Contains(host, "://") {
		return ""
	}
	return strings.TrimPrefix(host, "www.")
}
