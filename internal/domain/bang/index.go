package bang

import (
	"sort"
	"strings"
)

// TriggerIndex maps lowercased triggers to the catalog entries declaring them.
// Buckets hold catalog positions in catalog order, so the first position in a
// bucket is the entry that wins a lookup.
type TriggerIndex struct {
	catalog []Entry
	buckets map[string][]int
	keys    []string // sorted bucket keys for prefix scans
	sorted  bool     // catalog ordered by lowercased primary trigger
}

// BuildIndex indexes every trigger of every entry in catalog.
func BuildIndex(catalog []Entry) *TriggerIndex {
	idx := &TriggerIndex{
		catalog: catalog,
		buckets: make(map[string][]int, len(catalog)*2),
		sorted:  IsSorted(catalog),
	}
	for pos, e := range catalog {
		for _, t := range e.Triggers {
			key := strings.ToLower(t)
			if _, ok := idx.buckets[key]; !ok {
				idx.keys = append(idx.keys, key)
			}
			idx.buckets[key] = append(idx.buckets[key], pos)
		}
	}
	sort.Strings(idx.keys)
	return idx
}

// Catalog returns the catalog the index was built from.
func (idx *TriggerIndex) Catalog() []Entry {
	return idx.catalog
}

// Len returns the number of distinct triggers.
func (idx *TriggerIndex) Len() int {
	return len(idx.keys)
}

// Find returns the first entry declaring trigger.
func (idx *TriggerIndex) Find(trigger string) (Entry, bool) {
	bucket := idx.buckets[strings.ToLower(trigger)]
	if len(bucket) == 0 {
		return Entry{}, false
	}
	return idx.catalog[bucket[0]], true
}

// Lookup returns every entry declaring trigger, in catalog order.
func (idx *TriggerIndex) Lookup(trigger string) []Entry {
	bucket := idx.buckets[strings.ToLower(trigger)]
	out := make([]Entry, 0, len(bucket))
	for _, pos := range bucket {
		out = append(out, idx.catalog[pos])
	}
	return out
}

// Sorted reports whether the indexed catalog was in primary-trigger order.
func (idx *TriggerIndex) Sorted() bool {
	return idx.sorted
}

// KeysWithPrefix returns all trigger keys starting with prefix, sorted.
func (idx *TriggerIndex) KeysWithPrefix(prefix string) []string {
	prefix = strings.ToLower(prefix)
	start := sort.SearchStrings(idx.keys, prefix)
	end := start
	for end < len(idx.keys) && strings.HasPrefix(idx.keys[end], prefix) {
		end++
	}
	return idx.keys[start:end]
}

// positionsWithPrefix returns the catalog positions of entries reachable from
// any trigger key starting with prefix.
func (idx *TriggerIndex) positionsWithPrefix(prefix string) []int {
	var out []int
	for _, key := range idx.KeysWithPrefix(prefix) {
		out = append(out, idx.buckets[key]...)
	}
	return out
}
