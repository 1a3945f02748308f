package bang

import (
	"sort"
	"strings"
)

// DefaultMaxItems is the result limit of the standalone search entry point.
const DefaultMaxItems = 35

// DropdownMaxItems is the smaller limit used by interactive suggestion lists.
const DropdownMaxItems = 25

// NormalizeQuery trims and lowercases a query. Cache keys, worker callback
// keys and matching all use this form.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// FilterAndSort ranks the entries of catalog against query. idx must have been
// built from catalog; pass nil to build one on the fly. The prefix pass binary
// searches primary triggers only when the index saw a sorted catalog.
//
// Category matches come first, ordered by relevance. Prefix matches (binary
// search over primary triggers plus every indexed trigger with the prefix)
// and substring matches follow, ordered by sortRanked. Output is deduplicated
// by (domain, service name) and truncated to maxItems.
//
// An empty query only runs the category pass.
func FilterAndSort(catalog []Entry, query string, maxItems int, idx *TriggerIndex, policy RankPolicy) []Result {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	if idx == nil {
		idx = BuildIndex(catalog)
	}
	q := NormalizeQuery(query)

	claimed := make(map[int]struct{})
	category := categoryPass(catalog, q, claimed)
	if q == "" {
		return assemble(category, nil, maxItems)
	}

	categoryKeys := make(map[EntryKey]struct{}, len(category))
	for _, r := range category {
		categoryKeys[r.Entry.Key()] = struct{}{}
	}

	var ranked []Result
	for _, pos := range prefixPass(catalog, idx, q) {
		if _, ok := claimed[pos]; ok {
			continue
		}
		claimed[pos] = struct{}{}
		e := catalog[pos]
		if _, ok := categoryKeys[e.Key()]; ok {
			continue
		}
		ranked = append(ranked, Result{Entry: e, DisplayTrigger: BestTrigger(e, q)})
	}

	for pos, e := range catalog {
		if _, ok := claimed[pos]; ok {
			continue
		}
		if !substringMatch(e, q) {
			continue
		}
		claimed[pos] = struct{}{}
		ranked = append(ranked, Result{Entry: e, DisplayTrigger: BestTrigger(e, q)})
	}

	sortRanked(ranked, q, policy)
	return assemble(category, ranked, maxItems)
}

func categoryPass(catalog []Entry, q string, claimed map[int]struct{}) []Result {
	if q == "" {
		return nil
	}
	var out []Result
	for pos, e := range catalog {
		if e.Category == "" || strings.ToLower(e.Category) != q {
			continue
		}
		claimed[pos] = struct{}{}
		out = append(out, Result{Entry: e, DisplayTrigger: e.Primary()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Entry.Relevance > out[j].Entry.Relevance
	})
	return out
}

// prefixPass returns catalog positions whose primary trigger starts with q,
// followed by positions reachable through any indexed trigger with that
// prefix. Positions may repeat.
func prefixPass(catalog []Entry, idx *TriggerIndex, q string) []int {
	var out []int
	primaryHasPrefix := func(pos int) bool {
		return strings.HasPrefix(strings.ToLower(catalog[pos].Primary()), q)
	}

	if idx.sorted {
		start := sort.Search(len(catalog), func(i int) bool {
			return strings.ToLower(catalog[i].Primary()) >= q
		})
		for pos := start; pos < len(catalog) && primaryHasPrefix(pos); pos++ {
			out = append(out, pos)
		}
	} else {
		for pos := range catalog {
			if primaryHasPrefix(pos) {
				out = append(out, pos)
			}
		}
	}

	return append(out, idx.positionsWithPrefix(q)...)
}

func substringMatch(e Entry, q string) bool {
	for _, t := range e.Triggers {
		lower := strings.ToLower(t)
		if lower == "" {
			continue
		}
		if strings.Contains(q, lower) || strings.Contains(lower, q) {
			return true
		}
	}
	return false
}

func assemble(category, ranked []Result, maxItems int) []Result {
	out := make([]Result, 0, min(maxItems, len(category)+len(ranked)))
	seen := make(map[EntryKey]struct{}, cap(out))
	for _, group := range [][]Result{category, ranked} {
		for _, r := range group {
			if len(out) == maxItems {
				return out
			}
			key := r.Entry.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}
