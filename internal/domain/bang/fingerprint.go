package bang

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the content of entries in order. Two slices with equal
// fingerprints are treated as the same catalog composition.
func Fingerprint(entries []Entry) uint64 {
	d := xxhash.New()
	for _, e := range entries {
		_, _ = d.WriteString(strings.ToLower(strings.Join(e.Triggers, "\x1f")))
		_, _ = d.WriteString("\x1e")
		_, _ = d.WriteString(e.ServiceName)
		_, _ = d.WriteString("\x1e")
		_, _ = d.WriteString(e.Domain)
		_, _ = d.WriteString("\x1e")
		_, _ = d.WriteString(e.Category)
		_, _ = d.WriteString("\x1e")
		_, _ = d.WriteString(e.Subcategory)
		_, _ = d.WriteString("\x1e")
		_, _ = d.WriteString(strconv.Itoa(e.Relevance))
		_, _ = d.WriteString("\x1e")
		_, _ = d.WriteString(e.URLTemplate)
		_, _ = d.WriteString("\x1d")
	}
	return d.Sum64()
}
