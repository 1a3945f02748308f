package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/bnema/bangr/internal/application/usecase"
	"github.com/bnema/bangr/internal/domain/bang"
	"github.com/bnema/bangr/internal/infrastructure/worker"
	"github.com/bnema/bangr/internal/logging"
)

// Completion is one line of `bangr complete` output.
type Completion struct {
	Query   string        `json:"query"`
	Results []bang.Result `json:"results"`
}

// Completer answers a stream of queries, typically one per keystroke from a
// launcher. Ranking runs on the background worker; when the worker is
// degraded or misses the deadline the search session answers inline.
//
// When LoadOverrides is set it is called before every query, so custom bangs
// changed by another bangr process show up mid-stream. A failed load keeps
// the previous Overrides.
type Completer struct {
	Client        *worker.Client
	Search        *usecase.SearchBangsUseCase
	Overrides     []bang.Entry
	LoadOverrides func(context.Context) ([]bang.Entry, error)
	MaxItems      int
	Timeout       time.Duration

	loadFailed bool
}

// Stream reads one query per line from r and writes one JSON object per
// query to w, in input order.
func (c *Completer) Stream(ctx context.Context, r io.Reader, w io.Writer) error {
	log := logging.FromContext(ctx)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		query := scanner.Text()
		c.refreshOverrides(ctx)
		results, err := c.rank(ctx, query)
		if err != nil {
			return err
		}
		if results == nil {
			results = []bang.Result{}
		}
		if err := enc.Encode(Completion{Query: query, Results: results}); err != nil {
			return fmt.Errorf("write completion: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read queries: %w", err)
	}

	log.Debug().Bool("degraded", c.Client.Degraded()).Msg("completion stream finished")
	return nil
}

func (c *Completer) refreshOverrides(ctx context.Context) {
	if c.LoadOverrides == nil {
		return
	}
	overrides, err := c.LoadOverrides(ctx)
	if err != nil {
		if !c.loadFailed {
			logging.FromContext(ctx).Warn().Err(err).Msg("custom bangs unavailable, keeping last known set")
		}
		c.loadFailed = true
		return
	}
	c.loadFailed = false
	c.Overrides = overrides
}

func (c *Completer) rank(ctx context.Context, query string) ([]bang.Result, error) {
	if c.Client.Degraded() {
		return c.inline(ctx, query), nil
	}

	ch := make(chan []bang.Result, 1)
	c.Client.Filter(query, c.Overrides, func(results []bang.Result) {
		select {
		case ch <- results:
		default:
		}
	})

	timer := time.NewTimer(c.Timeout)
	defer timer.Stop()

	select {
	case results := <-ch:
		return results, nil
	case <-timer.C:
		ctx = logging.WithQuery(ctx, query)
		logging.FromContext(ctx).Debug().Dur("timeout", c.Timeout).Msg("bang worker timed out, ranking inline")
		return c.inline(ctx, query), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Completer) inline(ctx context.Context, query string) []bang.Result {
	return c.Search.FilterBangs(ctx, usecase.FilterBangsInput{Query: query, MaxItems: c.MaxItems}).Results
}
