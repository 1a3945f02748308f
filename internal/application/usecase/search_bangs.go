package usecase

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/bangr/internal/application/port"
	"github.com/bnema/bangr/internal/domain/bang"
	"github.com/bnema/bangr/internal/logging"
)

// CachedResults is what the result cache stores per normalized query. Limit is
// the maxItems the list was computed with, so a larger request recomputes.
type CachedResults struct {
	Results []bang.Result
	Limit   int
}

// SearchBangsUseCase owns one bang catalog session: the base catalog, the
// current overrides, the lazily built trigger index and the result cache.
// Changing overrides or policy invalidates the index and clears the cache.
type SearchBangsUseCase struct {
	mu          sync.RWMutex
	base        []bang.Entry
	overrides   []bang.Entry
	overridesFP uint64
	policy      bang.RankPolicy
	index       *bang.TriggerIndex
	generation  uint64

	cache   port.Cache[string, CachedResults]
	rebuild singleflight.Group
}

// NewSearchBangsUseCase creates a search session over base. base is expected to
// be sorted by primary trigger.
func NewSearchBangsUseCase(base []bang.Entry, cache port.Cache[string, CachedResults], policy bang.RankPolicy) *SearchBangsUseCase {
	return &SearchBangsUseCase{
		base:        base,
		overridesFP: bang.Fingerprint(nil),
		policy:      policy,
		cache:       cache,
	}
}

// FilterBangsInput contains parameters for ranking bangs against a query.
type FilterBangsInput struct {
	Query    string // e.g. "yt", "gh", "video"
	MaxItems int    // 0 means bang.DefaultMaxItems
}

// FilterBangsOutput contains the ranked results.
type FilterBangsOutput struct {
	Results []bang.Result
	Cached  bool
}

// FilterBangs returns the ranked bangs for a query, served from the result
// cache when the same normalized query was ranked before.
func (uc *SearchBangsUseCase) FilterBangs(ctx context.Context, input FilterBangsInput) *FilterBangsOutput {
	log := logging.FromContext(ctx)

	limit := input.MaxItems
	if limit <= 0 {
		limit = bang.DefaultMaxItems
	}
	key := bang.NormalizeQuery(input.Query)

	if hit, ok := uc.cache.Get(key); ok && hit.Limit >= limit {
		results := hit.Results
		if len(results) > limit {
			results = results[:limit]
		}
		log.Debug().
			Str("query", key).
			Int("matches", len(results)).
			Msg("bang results served from cache")
		return &FilterBangsOutput{Results: results, Cached: true}
	}

	idx := uc.Index(ctx)

	uc.mu.RLock()
	policy := uc.policy
	uc.mu.RUnlock()

	results := bang.FilterAndSort(idx.Catalog(), key, limit, idx, policy)
	uc.cache.Set(key, CachedResults{Results: results, Limit: limit})

	log.Debug().
		Str("query", key).
		Int("matches", len(results)).
		Msg("filtered bang suggestions")

	return &FilterBangsOutput{Results: results}
}

// Index returns the trigger index of the merged catalog, building it if the
// catalog changed since the last build. Concurrent callers share one build.
func (uc *SearchBangsUseCase) Index(ctx context.Context) *bang.TriggerIndex {
	uc.mu.RLock()
	idx, gen := uc.index, uc.generation
	uc.mu.RUnlock()
	if idx != nil {
		return idx
	}

	v, _, _ := uc.rebuild.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		uc.mu.RLock()
		catalog := mergedCatalog(uc.base, uc.overrides)
		uc.mu.RUnlock()

		built := bang.BuildIndex(catalog)

		uc.mu.Lock()
		if uc.generation == gen {
			uc.index = built
		}
		uc.mu.Unlock()

		logging.FromContext(ctx).Debug().
			Int("entries", len(catalog)).
			Int("triggers", built.Len()).
			Msg("trigger index built")
		return built, nil
	})
	return v.(*bang.TriggerIndex)
}

// Catalog returns the merged catalog the engine searches.
func (uc *SearchBangsUseCase) Catalog(ctx context.Context) []bang.Entry {
	return uc.Index(ctx).Catalog()
}

// Find looks up a single trigger in the merged catalog.
func (uc *SearchBangsUseCase) Find(ctx context.Context, trigger string) (bang.Entry, bool) {
	return uc.Index(ctx).Find(trigger)
}

// Lookup returns every merged-catalog entry declaring trigger, in catalog
// order. The first one is what resolution uses.
func (uc *SearchBangsUseCase) Lookup(ctx context.Context, trigger string) []bang.Entry {
	return uc.Index(ctx).Lookup(strings.TrimPrefix(strings.TrimSpace(trigger), "!"))
}

// SetOverrides replaces the user overrides. It reports whether the override
// set actually changed; an unchanged set keeps the index and cache.
func (uc *SearchBangsUseCase) SetOverrides(ctx context.Context, overrides []bang.Entry) bool {
	fp := bang.Fingerprint(overrides)

	uc.mu.Lock()
	if fp == uc.overridesFP {
		uc.mu.Unlock()
		return false
	}
	uc.overrides = overrides
	uc.overridesFP = fp
	uc.invalidateLocked()
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Int("overrides", len(overrides)).
		Msg("bang overrides changed, index and cache invalidated")
	return true
}

// SetCatalog replaces the base catalog.
func (uc *SearchBangsUseCase) SetCatalog(ctx context.Context, base []bang.Entry) {
	uc.mu.Lock()
	uc.base = base
	uc.invalidateLocked()
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().Int("entries", len(base)).Msg("base catalog replaced")
}

// SetPolicy replaces the ranking policy and clears cached rankings.
func (uc *SearchBangsUseCase) SetPolicy(ctx context.Context, policy bang.RankPolicy) {
	uc.mu.Lock()
	uc.policy = policy
	uc.mu.Unlock()
	uc.cache.Clear()

	logging.FromContext(ctx).Debug().
		Strs("popular_services", policy.PopularServices).
		Msg("rank policy replaced")
}

// Invalidate drops the trigger index and the result cache. The next search
// rebuilds from the current catalog.
func (uc *SearchBangsUseCase) Invalidate(ctx context.Context) {
	uc.mu.Lock()
	uc.invalidateLocked()
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().Msg("bang index and cache invalidated")
}

func (uc *SearchBangsUseCase) invalidateLocked() {
	uc.index = nil
	uc.generation++
	uc.cache.Clear()
}

// mergedCatalog applies overrides and restores primary-trigger order, which
// Merge does not keep since overrides are appended.
func mergedCatalog(base, overrides []bang.Entry) []bang.Entry {
	if len(overrides) == 0 {
		return base
	}
	merged := bang.Merge(base, overrides)
	bang.SortCatalog(merged)
	return merged
}
