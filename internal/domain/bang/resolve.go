package bang

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	domainurl "github.com/bnema/bangr/internal/domain/url"
)

// FallbackTrigger is used when a query carries no bang and no default bang is
// configured.
const FallbackTrigger = "g"

// Placeholder spellings accepted in URL templates.
const (
	PlaceholderLegacy = "{{{s}}}"
	PlaceholderModern = "{searchTerms}"
)

// ErrInvalidURL is returned when a template produces something that is not an
// absolute URL.
var ErrInvalidURL = errors.New("resolved bang url is not a valid absolute url")

var bangTokenPattern = regexp.MustCompile(`!(\S+)`)

// Resolution is the outcome of resolving a query.
type Resolution struct {
	URL       string `json:"url"`
	BangUsed  string `json:"bang_used"`
	Entry     Entry  `json:"entry"`
	Remainder string `json:"remainder"`
	// Token is the bang token found in the query, without "!". Empty when the
	// query had none.
	Token string `json:"token,omitempty"`
	// Fallback is set when the token was missing or unknown and the default
	// entry was used instead.
	Fallback bool `json:"fallback"`
}

// ExtractToken returns the first "!<token>" in query, without the "!".
func ExtractToken(query string) (string, bool) {
	m := bangTokenPattern.FindStringSubmatch(query)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// StripToken removes the first bang token and any whitespace right after it,
// then trims the result.
func StripToken(query string) string {
	loc := bangTokenPattern.FindStringIndex(query)
	if loc == nil {
		return strings.TrimSpace(query)
	}
	rest := strings.TrimLeft(query[loc[1]:], " \t\r\n")
	return strings.TrimSpace(query[:loc[0]] + rest)
}

// Resolve turns a full user query into a redirect URL. The bang token is looked
// up in idx; a missing or unknown token degrades to defaultEntry. A bare bang
// with nothing else navigates to the service's origin.
func Resolve(query string, idx *TriggerIndex, defaultEntry Entry) (Resolution, error) {
	token, hasToken := ExtractToken(query)
	candidate := token
	if !hasToken {
		candidate = defaultEntry.Primary()
		if candidate == "" {
			candidate = FallbackTrigger
		}
	}

	res := Resolution{Token: token, Remainder: StripToken(query)}

	entry, found := Entry{}, false
	if idx != nil {
		entry, found = idx.Find(candidate)
	}
	if found {
		res.Entry = entry
		res.BangUsed = matchedTrigger(entry, candidate)
		res.Fallback = !hasToken
	} else {
		res.Entry = defaultEntry
		res.BangUsed = defaultEntry.Primary()
		res.Fallback = true
	}

	target, err := BuildURL(res.Entry.URLTemplate, res.Remainder)
	if err != nil {
		return res, err
	}
	res.URL = target
	return res, nil
}

// BuildURL substitutes the percent-encoded term into template. An empty term
// yields the template's origin (scheme and host).
func BuildURL(template, term string) (string, error) {
	var out string
	if term == "" {
		out = domainurl.Origin(template)
	} else {
		out = Substitute(template, term)
	}
	if !domainurl.IsAbsolute(out) {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, out)
	}
	return out, nil
}

// Substitute replaces every placeholder in template with the encoded term.
func Substitute(template, term string) string {
	encoded := domainurl.EncodeComponent(term)
	out := strings.ReplaceAll(template, PlaceholderLegacy, encoded)
	return strings.ReplaceAll(out, PlaceholderModern, encoded)
}

// HasPlaceholder reports whether template carries a known placeholder.
func HasPlaceholder(template string) bool {
	return strings.Contains(template, PlaceholderLegacy) || strings.Contains(template, PlaceholderModern)
}

func matchedTrigger(e Entry, candidate string) string {
	for _, t := range e.Triggers {
		if strings.EqualFold(t, candidate) {
			return t
		}
	}
	return e.Primary()
}
