package bang

import (
	"sort"
	"strings"
)

// DefaultPopularServices is the allow-list used when no policy is configured.
var DefaultPopularServices = []string{
	"google",
	"youtube",
	"wikipedia",
	"amazon",
	"github",
	"reddit",
	"twitter",
	"duckduckgo",
	"stack overflow",
}

// RankPolicy holds the tunable knobs of result ordering.
type RankPolicy struct {
	// PopularServices boosts entries whose service name contains one of these
	// (case-insensitive) above plain relevance ordering.
	PopularServices []string
}

// DefaultRankPolicy returns the policy with the built-in popular services.
func DefaultRankPolicy() RankPolicy {
	popular := make([]string, len(DefaultPopularServices))
	copy(popular, DefaultPopularServices)
	return RankPolicy{PopularServices: popular}
}

// IsPopular reports whether serviceName matches the allow-list.
func (p RankPolicy) IsPopular(serviceName string) bool {
	name := strings.ToLower(serviceName)
	for _, s := range p.PopularServices {
		if s != "" && strings.Contains(name, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

// Result is a ranked entry together with the trigger that best matched the
// query. Entry keeps the full trigger list for alias display.
type Result struct {
	Entry          Entry  `json:"entry"`
	DisplayTrigger string `json:"display_trigger"`
}

// match classes, best first
const (
	matchExact = iota
	matchPrefix
	matchQueryContains
	matchTriggerContains
	matchNone
)

func classify(trigger, query string) int {
	switch {
	case trigger == query:
		return matchExact
	case strings.HasPrefix(trigger, query):
		return matchPrefix
	case strings.Contains(query, trigger):
		return matchQueryContains
	case strings.Contains(trigger, query):
		return matchTriggerContains
	default:
		return matchNone
	}
}

// BestTrigger picks the trigger of e that best matches the lowercased query:
// exact, then prefix, then query-contains-trigger, then
// trigger-contains-query, then smallest length difference. Earlier triggers
// win ties.
func BestTrigger(e Entry, query string) string {
	best := ""
	bestClass, bestDiff := matchNone+1, 0
	for _, t := range e.Triggers {
		lower := strings.ToLower(t)
		class := classify(lower, query)
		diff := len(lower) - len(query)
		if diff < 0 {
			diff = -diff
		}
		if class < bestClass || (class == bestClass && diff < bestDiff) {
			best, bestClass, bestDiff = t, class, diff
		}
	}
	return best
}

// sortRanked orders prefix and substring results: exact display-trigger
// match, prefix match, popular service, relevance, then display trigger.
func sortRanked(results []Result, query string, policy RankPolicy) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		at, bt := strings.ToLower(a.DisplayTrigger), strings.ToLower(b.DisplayTrigger)

		if ae, be := at == query, bt == query; ae != be {
			return ae
		}
		if as, bs := strings.HasPrefix(at, query), strings.HasPrefix(bt, query); as != bs {
			return as
		}
		if ap, bp := policy.IsPopular(a.Entry.ServiceName), policy.IsPopular(b.Entry.ServiceName); ap != bp {
			return ap
		}
		if a.Entry.Relevance != b.Entry.Relevance {
			return a.Entry.Relevance > b.Entry.Relevance
		}
		return at < bt
	})
}
