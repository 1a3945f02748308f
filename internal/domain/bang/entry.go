// Package bang holds the bang catalog model and the pure algorithms over it:
// merging user overrides, indexing triggers, ranking search results and
// resolving a query into a redirect URL.
package bang

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// CustomRelevance is the relevance given to user-defined entries so they
// outrank built-ins on tie-break.
const CustomRelevance = 9999

var (
	ErrEmptyTriggers  = errors.New("bang has no triggers")
	ErrInvalidTrigger = errors.New("invalid bang trigger")
	ErrEmptyTemplate  = errors.New("bang has no url template")
)

// Entry is a single bang definition. It is treated as an immutable value:
// edits replace the whole entry.
type Entry struct {
	Triggers    []string `json:"triggers"`
	ServiceName string   `json:"service_name"`
	Domain      string   `json:"domain"`
	Category    string   `json:"category,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	Relevance   int      `json:"relevance"`
	URLTemplate string   `json:"url_template"`
}

// EntryKey identifies a logical bang for deduplication.
type EntryKey struct {
	Domain      string
	ServiceName string
}

// Primary returns the first trigger, or "" for a malformed entry.
func (e Entry) Primary() string {
	if len(e.Triggers) == 0 {
		return ""
	}
	return e.Triggers[0]
}

// Key returns the (domain, service name) composite key.
func (e Entry) Key() EntryKey {
	return EntryKey{Domain: e.Domain, ServiceName: e.ServiceName}
}

// HasTrigger reports whether the entry declares trigger (case-insensitive).
func (e Entry) HasTrigger(trigger string) bool {
	for _, t := range e.Triggers {
		if strings.EqualFold(t, trigger) {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants of an entry.
func (e Entry) Validate() error {
	if len(e.Triggers) == 0 {
		return ErrEmptyTriggers
	}
	for _, t := range e.Triggers {
		if t == "" || strings.IndexFunc(t, unicode.IsSpace) >= 0 || strings.HasPrefix(t, "!") {
			return fmt.Errorf("%w: %q", ErrInvalidTrigger, t)
		}
	}
	if strings.TrimSpace(e.URLTemplate) == "" {
		return fmt.Errorf("%w: !%s", ErrEmptyTemplate, e.Primary())
	}
	return nil
}

// NormalizeTriggers cleans raw trigger input: whitespace is trimmed, a leading
// "!" is dropped and empty values are skipped. Order is preserved and
// case-insensitive duplicates are removed.
func NormalizeTriggers(raw ...string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		t := strings.TrimPrefix(strings.TrimSpace(r), "!")
		if t == "" {
			continue
		}
		lower := strings.ToLower(t)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SortCatalog sorts entries ascending by lowercase primary trigger in place.
// The sort is stable so equal primaries keep their input order.
func SortCatalog(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Primary()) < strings.ToLower(entries[j].Primary())
	})
}

// IsSorted reports whether entries satisfy the primary-trigger ordering that
// the prefix search relies on.
func IsSorted(entries []Entry) bool {
	return sort.SliceIsSorted(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Primary()) < strings.ToLower(entries[j].Primary())
	})
}
