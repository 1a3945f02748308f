package bang

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		query     string
		wantToken string
		wantFound bool
	}{
		{query: "!g golang", wantToken: "g", wantFound: true},
		{query: "golang !gh", wantToken: "gh", wantFound: true},
		{query: "a !w b !y", wantToken: "w", wantFound: true},
		{query: "plain text", wantToken: "", wantFound: false},
		{query: "! spaced", wantToken: "", wantFound: false},
		{query: "", wantToken: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			token, found := ExtractToken(tt.query)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestStripToken(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{query: "!g hello world", want: "hello world"},
		{query: "hello !g   world", want: "hello world"},
		{query: "hello world !g", want: "hello world"},
		{query: "!g", want: ""},
		{query: "  no bang here ", want: "no bang here"},
		{query: "!w first !y second", want: "first !y second"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, StripToken(tt.query))
		})
	}
}

func TestResolve(t *testing.T) {
	catalog := testCatalog()
	idx := BuildIndex(catalog)
	ddg, _ := idx.Find("ddg")

	tests := []struct {
		name         string
		query        string
		defaultEntry Entry
		wantURL      string
		wantBang     string
		wantFallback bool
	}{
		{
			name:         "bang with search terms",
			query:        "!g hello world",
			defaultEntry: ddg,
			wantURL:      "https://www.google.com/search?q=hello%20world",
			wantBang:     "g",
		},
		{
			name:         "bare bang goes to domain root",
			query:        "!g",
			defaultEntry: ddg,
			wantURL:      "https://www.google.com",
			wantBang:     "g",
		},
		{
			name:         "unknown bang falls back to default",
			query:        "!zzznotreal test",
			defaultEntry: ddg,
			wantURL:      "https://duckduckgo.com/?q=test",
			wantBang:     "ddg",
			wantFallback: true,
		},
		{
			name:         "no bang uses default",
			query:        "golang generics",
			defaultEntry: ddg,
			wantURL:      "https://duckduckgo.com/?q=golang%20generics",
			wantBang:     "ddg",
			wantFallback: true,
		},
		{
			name:         "no bang and no default uses fallback trigger",
			query:        "golang",
			defaultEntry: Entry{},
			wantURL:      "https://www.google.com/search?q=golang",
			wantBang:     "g",
			wantFallback: true,
		},
		{
			name:         "bang in the middle with modern placeholder",
			query:        "search !GH  golang",
			defaultEntry: ddg,
			wantURL:      "https://github.com/search?q=search%20golang",
			wantBang:     "gh",
		},
		{
			name:         "alias reports the alias used",
			query:        "!YouTube lo-fi & chill",
			defaultEntry: ddg,
			wantURL:      "https://www.youtube.com/results?search_query=lo-fi%20%26%20chill",
			wantBang:     "youtube",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(tt.query, idx, tt.defaultEntry)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, res.URL)
			assert.Equal(t, tt.wantBang, res.BangUsed)
			assert.Equal(t, tt.wantFallback, res.Fallback)
		})
	}
}

func TestResolve_InvalidURL(t *testing.T) {
	catalog := []Entry{
		{Triggers: []string{"bad"}, ServiceName: "Bad", URLTemplate: "not a url {{{s}}}"},
	}
	idx := BuildIndex(catalog)

	_, err := Resolve("!bad query", idx, Entry{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidURL))

	_, err = Resolve("!bad", idx, Entry{})
	assert.True(t, errors.Is(err, ErrInvalidURL), "bare bang without origin is invalid too")
}

func TestResolve_NothingResolvable(t *testing.T) {
	_, err := Resolve("!nope hi", BuildIndex(nil), Entry{})
	assert.True(t, errors.Is(err, ErrInvalidURL))

	_, err = Resolve("hi", nil, Entry{})
	assert.True(t, errors.Is(err, ErrInvalidURL))
}

func TestBuildURL_Placeholders(t *testing.T) {
	got, err := BuildURL("https://a.example/{{{s}}}?again={searchTerms}", "x y")
	require.NoError(t, err)
	assert.Equal(t, "https://a.example/x%20y?again=x%20y", got)

	assert.True(t, HasPlaceholder("https://a.example/?q={searchTerms}"))
	assert.True(t, HasPlaceholder("https://a.example/?q={{{s}}}"))
	assert.False(t, HasPlaceholder("https://a.example/?q=%s"))
}
