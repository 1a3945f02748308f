package bang

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// minSuggestionSimilarity is the Jaro-Winkler score below which a trigger is
// not worth proposing.
const minSuggestionSimilarity = 0.75

// Suggest returns up to limit indexed triggers that look like token, most
// similar first. Used to hint at typos when a bang is unknown.
func Suggest(idx *TriggerIndex, token string, limit int) []string {
	token = strings.ToLower(strings.TrimPrefix(token, "!"))
	if idx == nil || token == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		trigger string
		score   float32
	}
	var candidates []scored
	for _, key := range idx.keys {
		if key == token {
			continue
		}
		score, err := edlib.StringsSimilarity(token, key, edlib.JaroWinkler)
		if err != nil || score < minSuggestionSimilarity {
			continue
		}
		candidates = append(candidates, scored{trigger: key, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].trigger < candidates[j].trigger
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.trigger
	}
	return out
}
