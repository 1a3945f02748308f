package bang

import "strings"

// Merge combines a base catalog with user overrides. Any base entry that
// declares a trigger also declared by an override is dropped entirely, then
// the overrides are appended. With no overrides base is returned as-is.
func Merge(base, overrides []Entry) []Entry {
	if len(overrides) == 0 {
		return base
	}

	claimed := make(map[string]struct{})
	for _, o := range overrides {
		for _, t := range o.Triggers {
			claimed[strings.ToLower(t)] = struct{}{}
		}
	}

	merged := make([]Entry, 0, len(base)+len(overrides))
	for _, b := range base {
		if declaresAny(b, claimed) {
			continue
		}
		merged = append(merged, b)
	}
	return append(merged, overrides...)
}

func declaresAny(e Entry, triggers map[string]struct{}) bool {
	for _, t := range e.Triggers {
		if _, ok := triggers[strings.ToLower(t)]; ok {
			return true
		}
	}
	return false
}
