package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/bangr/internal/application/port/mocks"
	"github.com/bnema/bangr/internal/application/usecase"
	"github.com/bnema/bangr/internal/domain/bang"
	"github.com/bnema/bangr/internal/domain/entity"
	"github.com/bnema/bangr/internal/infrastructure/cache"
)

func TestResolveBangUseCase_Resolve(t *testing.T) {
	tests := []struct {
		name         string
		settings     entity.UserSettings
		query        string
		wantURL      string
		wantBang     string
		wantFallback bool
	}{
		{
			name:     "explicit bang with modern placeholder",
			query:    "!gh bnema/bangr",
			wantURL:  "https://github.com/search?q=bnema%2Fbangr",
			wantBang: "gh",
		},
		{
			name:     "secondary trigger",
			query:    "!youtube lofi beats",
			wantURL:  "https://www.youtube.com/results?search_query=lofi%20beats",
			wantBang: "youtube",
		},
		{
			name:     "bang after the terms",
			query:    "golang generics !w",
			wantURL:  "https://en.wikipedia.org/wiki/Special:Search?search=golang%20generics",
			wantBang: "w",
		},
		{
			name:     "bare bang goes to the site root",
			query:    "!gh",
			wantURL:  "https://github.com",
			wantBang: "gh",
		},
		{
			name:         "no bang uses stored default",
			settings:     entity.UserSettings{DefaultBang: "w"},
			query:        "rust",
			wantURL:      "https://en.wikipedia.org/wiki/Special:Search?search=rust",
			wantBang:     "w",
			wantFallback: true,
		},
		{
			name:         "no bang and no default uses fallback trigger",
			query:        "weather paris",
			wantURL:      "https://www.google.com/search?q=weather%20paris",
			wantBang:     "g",
			wantFallback: true,
		},
		{
			name:         "stale default falls back",
			settings:     entity.UserSettings{DefaultBang: "gone"},
			query:        "x",
			wantURL:      "https://www.google.com/search?q=x",
			wantBang:     "g",
			wantFallback: true,
		},
		{
			name:     "custom bang overrides catalog",
			settings: entity.UserSettings{CustomBangs: []bang.Entry{myTube()}},
			query:    "!y cats",
			wantURL:  "https://mytube.example/?q=cats",
			wantBang: "y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			store := portmocks.NewMockSettingsStore(t)
			store.EXPECT().Load(mock.Anything).Return(tt.settings, nil)

			search, _ := newTestSearch()
			uc := usecase.NewResolveBangUseCase(search, store, "")

			out, err := uc.Resolve(ctx, usecase.ResolveBangInput{Query: tt.query})

			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, out.URL)
			assert.Equal(t, tt.wantBang, out.BangUsed)
			assert.Equal(t, tt.wantFallback, out.Fallback)
			assert.Empty(t, out.Suggestions)
		})
	}
}

func TestResolveBangUseCase_Resolve_UnknownBangSuggests(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockSettingsStore(t)
	store.EXPECT().Load(mock.Anything).Return(entity.UserSettings{}, nil)

	search, _ := newTestSearch()
	uc := usecase.NewResolveBangUseCase(search, store, "")

	out, err := uc.Resolve(ctx, usecase.ResolveBangInput{Query: "!yuotube cats"})

	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.Equal(t, "g", out.BangUsed)
	assert.Equal(t, "yuotube", out.Token)
	assert.Equal(t, "https://www.google.com/search?q=cats", out.URL)
	assert.Contains(t, out.Suggestions, "youtube")
}

func TestResolveBangUseCase_Resolve_StoreErrorDegrades(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockSettingsStore(t)
	store.EXPECT().Load(mock.Anything).Return(entity.UserSettings{}, errors.New("disk on fire"))

	search, _ := newTestSearch()
	uc := usecase.NewResolveBangUseCase(search, store, "")

	out, err := uc.Resolve(ctx, usecase.ResolveBangInput{Query: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/search?q=hello", out.URL)
}

func TestResolveBangUseCase_Resolve_NilStoreAndCustomFallback(t *testing.T) {
	ctx := testContext()
	search, _ := newTestSearch()
	uc := usecase.NewResolveBangUseCase(search, nil, "a")

	out, err := uc.Resolve(ctx, usecase.ResolveBangInput{Query: "keyboard"})

	require.NoError(t, err)
	assert.Equal(t, "a", out.BangUsed)
	assert.Equal(t, "https://www.amazon.com/s?k=keyboard", out.URL)
}

func TestResolveBangUseCase_Resolve_MissingFallback(t *testing.T) {
	ctx := testContext()
	lru := cache.NewLRU[string, usecase.CachedResults](0)
	// catalog without "a" and "g"
	search := usecase.NewSearchBangsUseCase(testCatalog()[2:], lru, bang.DefaultRankPolicy())
	uc := usecase.NewResolveBangUseCase(search, nil, "")

	out, err := uc.Resolve(ctx, usecase.ResolveBangInput{Query: "!gh bangr"})
	require.NoError(t, err, "known bangs resolve without a fallback entry")
	assert.Equal(t, "https://github.com/search?q=bangr", out.URL)
	assert.Equal(t, "gh", out.BangUsed)
	assert.False(t, out.Fallback)

	_, err = uc.Resolve(ctx, usecase.ResolveBangInput{Query: "anything"})
	assert.ErrorIs(t, err, bang.ErrInvalidURL)

	_, err = uc.Resolve(ctx, usecase.ResolveBangInput{Query: "!nope anything"})
	assert.ErrorIs(t, err, bang.ErrInvalidURL)
}

func TestResolveBangUseCase_Resolve_InvalidTemplate(t *testing.T) {
	ctx := testContext()
	broken := bang.Entry{Triggers: []string{"bad"}, ServiceName: "Bad", URLTemplate: "not a url {{{s}}}"}
	store := portmocks.NewMockSettingsStore(t)
	store.EXPECT().Load(mock.Anything).Return(entity.UserSettings{CustomBangs: []bang.Entry{broken}}, nil)

	search, _ := newTestSearch()
	uc := usecase.NewResolveBangUseCase(search, store, "")

	_, err := uc.Resolve(ctx, usecase.ResolveBangInput{Query: "!bad x"})

	assert.ErrorIs(t, err, bang.ErrInvalidURL)
}
