package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bangr/internal/application/usecase"
	"github.com/bnema/bangr/internal/domain/bang"
	"github.com/bnema/bangr/internal/infrastructure/cache"
	"github.com/bnema/bangr/internal/infrastructure/catalog"
	"github.com/bnema/bangr/internal/infrastructure/worker"
	"github.com/bnema/bangr/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func newCompleter(t *testing.T, ctx context.Context) *Completer {
	t.Helper()
	entries, err := catalog.Default()
	require.NoError(t, err)

	search := usecase.NewSearchBangsUseCase(entries, cache.NewLRU[string, usecase.CachedResults](cache.DefaultCapacity), bang.DefaultRankPolicy())
	client := worker.Start(ctx, entries, worker.Options{MaxItems: 5})
	t.Cleanup(client.Close)

	return &Completer{Client: client, Search: search, MaxItems: 5, Timeout: 2 * time.Second}
}

func decodeLines(t *testing.T, out string) []Completion {
	t.Helper()
	var lines []Completion
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var c Completion
		require.NoError(t, dec.Decode(&c))
		lines = append(lines, c)
	}
	return lines
}

func TestCompleter_Stream(t *testing.T) {
	ctx := testContext()
	c := newCompleter(t, ctx)

	var out bytes.Buffer
	require.NoError(t, c.Stream(ctx, strings.NewReader("g\ngh\nzzzzqqq\n"), &out))

	lines := decodeLines(t, out.String())
	require.Len(t, lines, 3)

	assert.Equal(t, "g", lines[0].Query)
	require.NotEmpty(t, lines[0].Results)
	assert.Equal(t, "g", lines[0].Results[0].Entry.Primary())
	assert.LessOrEqual(t, len(lines[0].Results), 5)

	assert.Equal(t, "gh", lines[1].Query)
	require.NotEmpty(t, lines[1].Results)
	assert.Equal(t, "GitHub", lines[1].Results[0].Entry.ServiceName)

	assert.Empty(t, lines[2].Results)
	assert.Contains(t, out.String(), `"results":[]`)
}

func TestCompleter_StreamDegradedRanksInline(t *testing.T) {
	ctx := testContext()
	c := newCompleter(t, ctx)
	c.Client.Close()
	require.True(t, c.Client.Degraded())

	var out bytes.Buffer
	require.NoError(t, c.Stream(ctx, strings.NewReader("gh\n"), &out))

	lines := decodeLines(t, out.String())
	require.Len(t, lines, 1)
	require.NotEmpty(t, lines[0].Results)
	assert.Equal(t, "GitHub", lines[0].Results[0].Entry.ServiceName)
}

func TestCompleter_StreamUsesOverrides(t *testing.T) {
	ctx := testContext()
	c := newCompleter(t, ctx)
	c.Overrides = []bang.Entry{{Triggers: []string{"gh"}, ServiceName: "Gitea", Domain: "gitea.example", Relevance: bang.CustomRelevance, URLTemplate: "https://gitea.example/?q={{{s}}}"}}

	var out bytes.Buffer
	require.NoError(t, c.Stream(ctx, strings.NewReader("gh\n"), &out))

	lines := decodeLines(t, out.String())
	require.Len(t, lines, 1)
	require.NotEmpty(t, lines[0].Results)
	assert.Equal(t, "Gitea", lines[0].Results[0].Entry.ServiceName)
}

func TestCompleter_StreamReloadsOverridesPerQuery(t *testing.T) {
	ctx := testContext()
	c := newCompleter(t, ctx)

	gitea := bang.Entry{Triggers: []string{"gh"}, ServiceName: "Gitea", Domain: "gitea.example", Relevance: bang.CustomRelevance, URLTemplate: "https://gitea.example/?q={{{s}}}"}
	snapshots := []struct {
		entries []bang.Entry
		err     error
	}{
		{entries: nil},
		{entries: []bang.Entry{gitea}},
		{err: errors.New("database is locked")},
		{entries: nil},
	}
	calls := 0
	c.LoadOverrides = func(context.Context) ([]bang.Entry, error) {
		s := snapshots[calls]
		calls++
		return s.entries, s.err
	}

	var out bytes.Buffer
	require.NoError(t, c.Stream(ctx, strings.NewReader("gh\ngh\ngh\ngh\n"), &out))

	lines := decodeLines(t, out.String())
	require.Len(t, lines, 4)
	assert.Equal(t, 4, calls)

	services := make([]string, len(lines))
	for i, line := range lines {
		require.NotEmpty(t, line.Results)
		services[i] = line.Results[0].Entry.ServiceName
	}
	// a failed load keeps the previous snapshot
	assert.Equal(t, []string{"GitHub", "Gitea", "Gitea", "GitHub"}, services)
}

func TestCompleter_StreamCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	c := newCompleter(t, ctx)
	c.Timeout = time.Hour
	cancel()

	// cancellation may race the worker reply; either outcome is valid but
	// the call must return promptly
	done := make(chan error, 1)
	go func() { done <- c.Stream(ctx, strings.NewReader("g\n"), &bytes.Buffer{}) }()

	select {
	case err := <-done:
		if err != nil {
			assert.ErrorIs(t, err, context.Canceled)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not return after cancellation")
	}
}
