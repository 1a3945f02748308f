package usecase_test

import (
	"context"

	"github.com/bnema/bangr/internal/application/usecase"
	"github.com/bnema/bangr/internal/domain/bang"
	"github.com/bnema/bangr/internal/infrastructure/cache"
	"github.com/bnema/bangr/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func testCatalog() []bang.Entry {
	return []bang.Entry{
		{Triggers: []string{"a", "amazon"}, ServiceName: "Amazon", Domain: "amazon.com", Category: "Shopping", Relevance: 900, URLTemplate: "https://www.amazon.com/s?k={{{s}}}"},
		{Triggers: []string{"g", "google"}, ServiceName: "Google", Domain: "google.com", Category: "Search", Relevance: 1000, URLTemplate: "https://www.google.com/search?q={{{s}}}"},
		{Triggers: []string{"gh", "github"}, ServiceName: "GitHub", Domain: "github.com", Category: "Tech", Relevance: 850, URLTemplate: "https://github.com/search?q={searchTerms}"},
		{Triggers: []string{"w", "wiki"}, ServiceName: "Wikipedia", Domain: "en.wikipedia.org", Category: "Research", Relevance: 900, URLTemplate: "https://en.wikipedia.org/wiki/Special:Search?search={{{s}}}"},
		{Triggers: []string{"y", "youtube"}, ServiceName: "YouTube", Domain: "youtube.com", Category: "Video", Relevance: 950, URLTemplate: "https://www.youtube.com/results?search_query={{{s}}}"},
		{Triggers: []string{"yt", "ytt"}, ServiceName: "Yandex Translate", Domain: "translate.yandex.com", Relevance: 600, URLTemplate: "https://translate.yandex.com/?text={{{s}}}"},
	}
}

func newTestSearch() (*usecase.SearchBangsUseCase, *cache.LRU[string, usecase.CachedResults]) {
	lru := cache.NewLRU[string, usecase.CachedResults](cache.DefaultCapacity)
	return usecase.NewSearchBangsUseCase(testCatalog(), lru, bang.DefaultRankPolicy()), lru
}

func primaries(results []bang.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Entry.Primary()
	}
	return out
}
