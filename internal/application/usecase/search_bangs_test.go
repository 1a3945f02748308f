package usecase_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bangr/internal/application/usecase"
	"github.com/bnema/bangr/internal/domain/bang"
)

func myTube() bang.Entry {
	return bang.Entry{
		Triggers:    []string{"y"},
		ServiceName: "MyTube",
		Domain:      "mytube.example",
		Relevance:   bang.CustomRelevance,
		URLTemplate: "https://mytube.example/?q={{{s}}}",
	}
}

func TestSearchBangsUseCase_FilterBangs(t *testing.T) {
	ctx := testContext()
	uc, _ := newTestSearch()

	out := uc.FilterBangs(ctx, usecase.FilterBangsInput{Query: "y"})

	require.NotNil(t, out)
	assert.False(t, out.Cached)
	assert.Equal(t, []string{"y", "yt"}, primaries(out.Results))
	assert.Equal(t, "y", out.Results[0].DisplayTrigger)
}

func TestSearchBangsUseCase_FilterBangs_ServesFromCache(t *testing.T) {
	ctx := testContext()
	uc, lru := newTestSearch()

	first := uc.FilterBangs(ctx, usecase.FilterBangsInput{Query: "  G "})
	second := uc.FilterBangs(ctx, usecase.FilterBangsInput{Query: "g"})

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Results, second.Results)
	assert.Equal(t, []string{"g"}, lru.Keys())
}

func TestSearchBangsUseCase_FilterBangs_LargerLimitRecomputes(t *testing.T) {
	ctx := testContext()
	uc, _ := newTestSearch()

	small := uc.FilterBangs(ctx, usecase.FilterBangsInput{Query: "g", MaxItems: 1})
	require.Len(t, small.Results, 1)

	large := uc.FilterBangs(ctx, usecase.FilterBangsInput{Query: "g", MaxItems: 10})
	assert.False(t, large.Cached)
	assert.Equal(t, []string{"g", "gh"}, primaries(large.Results))

	again := uc.FilterBangs(ctx, usecase.FilterBangsInput{Query: "g", MaxItems: 1})
	assert.True(t, again.Cached)
	assert.Equal(t, []string{"g"}, primaries(again.Results))
}

func TestSearchBangsUseCase_Lookup(t *testing.T) {
	ctx := testContext()
	uc, _ := newTestSearch()

	builtin := uc.Lookup(ctx, "!YouTube")
	require.Len(t, builtin, 1)
	assert.Equal(t, "YouTube", builtin[0].ServiceName)
	assert.Empty(t, uc.Lookup(ctx, "nope"))

	uc.SetOverrides(ctx, []bang.Entry{myTube()})
	mine := uc.Lookup(ctx, " y ")
	require.Len(t, mine, 1, "the override drops the whole built-in entry")
	assert.Equal(t, "MyTube", mine[0].ServiceName)
}

func TestSearchBangsUseCase_SetOverrides(t *testing.T) {
	ctx := testContext()
	uc, lru := newTestSearch()

	uc.FilterBangs(ctx, usecase.FilterBangsInput{Query: "y"})
	require.Equal(t, 1, lru.Len())

	changed := uc.SetOverrides(ctx, []bang.Entry{myTube()})
	assert.True(t, changed)
	assert.Equal(t, 0, lru.Len(), "override change must clear cached rankings")

	e, ok := uc.Find(ctx, "y")
	require.True(t, ok)
	assert.Equal(t, "MyTube", e.ServiceName)

	_, ok = uc.Find(ctx, "youtube")
	assert.False(t, ok, "the whole YouTube entry is replaced, secondary triggers included")

	assert.True(t, bang.IsSorted(uc.Catalog(ctx)))

	out := uc.FilterBangs(ctx, usecase.FilterBangsInput{Query: "y"})
	assert.False(t, out.Cached)
	assert.Equal(t, "MyTube", out.Results[0].Entry.ServiceName)
}

func TestSearchBangsUseCase_SetOverrides_UnchangedKeepsCache(t *testing.T) {
	ctx := testContext()
	uc, lru := newTestSearch()

	require.True(t, uc.SetOverrides(ctx, []bang.Entry{myTube()}))
	uc.FilterBangs(ctx, usecase.FilterBangsInput{Query: "y"})

	assert.False(t, uc.SetOverrides(ctx, []bang.Entry{myTube()}))
	assert.Equal(t, 1, lru.Len())

	assert.True(t, uc.SetOverrides(ctx, nil))
	assert.Equal(t, 0, lru.Len(), "clearing overrides is a change")
}

func TestSearchBangsUseCase_SetPolicy_ClearsCache(t *testing.T) {
	ctx := testContext()
	uc, lru := newTestSearch()

	uc.FilterBangs(ctx, usecase.FilterBangsInput{Query: "w"})
	require.Equal(t, 1, lru.Len())

	uc.SetPolicy(ctx, bang.RankPolicy{PopularServices: []string{"wikipedia"}})
	assert.Equal(t, 0, lru.Len())
}

func TestSearchBangsUseCase_SetCatalog(t *testing.T) {
	ctx := testContext()
	uc, _ := newTestSearch()

	require.Equal(t, len(testCatalog()), len(uc.Catalog(ctx)))

	uc.SetCatalog(ctx, testCatalog()[:2])
	assert.Len(t, uc.Catalog(ctx), 2)

	_, ok := uc.Find(ctx, "gh")
	assert.False(t, ok)
}

func TestSearchBangsUseCase_Invalidate(t *testing.T) {
	ctx := testContext()
	uc, lru := newTestSearch()

	before := uc.Index(ctx)
	uc.FilterBangs(ctx, usecase.FilterBangsInput{Query: "g"})

	uc.Invalidate(ctx)

	assert.Equal(t, 0, lru.Len())
	after := uc.Index(ctx)
	assert.NotSame(t, before, after, "index is rebuilt after invalidation")
	assert.Equal(t, before.Len(), after.Len())
}

func TestSearchBangsUseCase_ConcurrentIndex(t *testing.T) {
	ctx := testContext()
	uc, _ := newTestSearch()

	var wg sync.WaitGroup
	lens := make([]int, 32)
	for i := range lens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lens[i] = uc.Index(ctx).Len()
		}(i)
	}
	wg.Wait()

	want := bang.BuildIndex(testCatalog()).Len()
	for _, n := range lens {
		assert.Equal(t, want, n)
	}
}
