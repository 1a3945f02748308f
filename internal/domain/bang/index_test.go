package bang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex_FindIsCaseInsensitive(t *testing.T) {
	idx := BuildIndex(testCatalog())

	for _, trigger := range []string{"gh", "GH", "GitHub", "github"} {
		e, ok := idx.Find(trigger)
		require.True(t, ok, "trigger %q", trigger)
		assert.Equal(t, "GitHub", e.ServiceName)
	}

	_, ok := idx.Find("nope")
	assert.False(t, ok)
	assert.Equal(t, 15, idx.Len())
}

func TestBuildIndex_DuplicateTriggerFirstWins(t *testing.T) {
	catalog := []Entry{
		{Triggers: []string{"g"}, ServiceName: "Base Google"},
		{Triggers: []string{"x"}, ServiceName: "Other"},
		{Triggers: []string{"G"}, ServiceName: "Override Google"},
	}
	idx := BuildIndex(catalog)

	e, ok := idx.Find("g")
	require.True(t, ok)
	assert.Equal(t, "Base Google", e.ServiceName)

	bucket := idx.Lookup("g")
	require.Len(t, bucket, 2)
	assert.Equal(t, "Override Google", bucket[1].ServiceName)
}

func TestTriggerIndex_KeysWithPrefix(t *testing.T) {
	idx := BuildIndex(testCatalog())

	assert.Equal(t, []string{"g", "gh", "gi", "github", "google"}, idx.KeysWithPrefix("g"))
	assert.Equal(t, []string{"y", "youtube", "yt", "ytt"}, idx.KeysWithPrefix("Y"))
	assert.Empty(t, idx.KeysWithPrefix("q"))
	assert.Len(t, idx.KeysWithPrefix(""), idx.Len())
}

func TestBuildIndex_Empty(t *testing.T) {
	idx := BuildIndex(nil)

	_, ok := idx.Find("g")
	assert.False(t, ok)
	assert.Empty(t, idx.KeysWithPrefix("g"))
	assert.Empty(t, idx.Lookup("g"))
}

func TestBuildIndex_RecordsSortedness(t *testing.T) {
	assert.True(t, BuildIndex(testCatalog()).Sorted())
	assert.True(t, BuildIndex(nil).Sorted())

	catalog := testCatalog()
	catalog[0], catalog[len(catalog)-1] = catalog[len(catalog)-1], catalog[0]
	idx := BuildIndex(catalog)
	assert.False(t, idx.Sorted())

	results := FilterAndSort(catalog, "y", 0, idx, DefaultRankPolicy())
	assert.Equal(t, []string{"y", "yt"}, primaries(results))
}
