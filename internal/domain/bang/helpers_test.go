package bang

// testCatalog returns a small catalog sorted by primary trigger.
func testCatalog() []Entry {
	return []Entry{
		{Triggers: []string{"a", "amazon"}, ServiceName: "Amazon", Domain: "amazon.com", Category: "Shopping", Relevance: 900, URLTemplate: "https://www.amazon.com/s?k={{{s}}}"},
		{Triggers: []string{"ddg", "duckduckgo"}, ServiceName: "DuckDuckGo", Domain: "duckduckgo.com", Relevance: 800, URLTemplate: "https://duckduckgo.com/?q={{{s}}}"},
		{Triggers: []string{"g", "google"}, ServiceName: "Google", Domain: "google.com", Category: "Search", Relevance: 1000, URLTemplate: "https://www.google.com/search?q={{{s}}}"},
		{Triggers: []string{"gh", "github"}, ServiceName: "GitHub", Domain: "github.com", Category: "Tech", Relevance: 850, URLTemplate: "https://github.com/search?q={searchTerms}"},
		{Triggers: []string{"gi"}, ServiceName: "Google Images", Domain: "images.google.com", Relevance: 700, URLTemplate: "https://www.google.com/search?tbm=isch&q={{{s}}}"},
		{Triggers: []string{"w", "wiki"}, ServiceName: "Wikipedia", Domain: "en.wikipedia.org", Category: "Research", Relevance: 900, URLTemplate: "https://en.wikipedia.org/wiki/Special:Search?search={{{s}}}"},
		{Triggers: []string{"y", "youtube"}, ServiceName: "YouTube", Domain: "youtube.com", Category: "Video", Relevance: 950, URLTemplate: "https://www.youtube.com/results?search_query={{{s}}}"},
		{Triggers: []string{"yt", "ytt"}, ServiceName: "Yandex Translate", Domain: "translate.yandex.com", Relevance: 600, URLTemplate: "https://translate.yandex.com/?text={{{s}}}"},
	}
}

func primaries(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Entry.Primary()
	}
	return out
}

func entryPrimaries(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Primary()
	}
	return out
}
