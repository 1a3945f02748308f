package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/bangr/internal/application/usecase"
	"github.com/bnema/bangr/internal/domain/bang"
	"github.com/bnema/bangr/internal/infrastructure/cache"
	"github.com/bnema/bangr/internal/logging"
)

// Options configures the worker's private search session.
type Options struct {
	CacheSize int
	MaxItems  int
	Policy    bang.RankPolicy
}

// worker is the goroutine side. It never shares memory with the client:
// requests and responses cross the boundary as encoded JSON.
type worker struct {
	ctx       context.Context
	log       *zerolog.Logger
	search    *usecase.SearchBangsUseCase
	maxItems  int
	requests  <-chan []byte
	responses chan<- []byte

	// beforeHandle is a test hook.
	beforeHandle func(Request)
}

func newWorker(ctx context.Context, catalog []bang.Entry, opts Options, requests <-chan []byte, responses chan<- []byte) *worker {
	own := make([]bang.Entry, len(catalog))
	copy(own, catalog)

	lru := cache.NewLRU[string, usecase.CachedResults](opts.CacheSize)
	ctx = logging.WithComponent(ctx, "bang-worker")

	return &worker{
		ctx:       ctx,
		log:       logging.FromContext(ctx),
		search:    usecase.NewSearchBangsUseCase(own, lru, opts.Policy),
		maxItems:  opts.MaxItems,
		requests:  requests,
		responses: responses,
	}
}

// run processes requests until the request channel is closed. A panic stops
// the worker; closing responses tells the client it is gone.
func (w *worker) run() {
	defer close(w.responses)
	defer func() {
		if r := recover(); r != nil {
			w.log.Error().Interface("panic", r).Msg("bang worker crashed")
		}
	}()

	for raw := range w.requests {
		w.handle(raw)
	}
	w.log.Debug().Msg("bang worker stopped")
}

func (w *worker) handle(raw []byte) {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		w.reply(Response{Kind: KindError, Message: fmt.Sprintf("malformed request: %v", err)})
		return
	}
	if w.beforeHandle != nil {
		w.beforeHandle(req)
	}

	switch req.Kind {
	case KindFilter:
		w.search.SetOverrides(w.ctx, req.Overrides)
		limit := req.MaxItems
		if limit <= 0 {
			limit = w.maxItems
		}
		out := w.search.FilterBangs(w.ctx, usecase.FilterBangsInput{Query: req.Query, MaxItems: limit})
		w.reply(Response{Kind: KindResults, Query: bang.NormalizeQuery(req.Query), Results: out.Results})
	case KindClearCache:
		w.search.Invalidate(w.ctx)
	case KindSetPolicy:
		w.search.SetPolicy(w.ctx, bang.RankPolicy{PopularServices: req.PopularServices})
	default:
		w.reply(Response{Kind: KindError, Query: bang.NormalizeQuery(req.Query), Message: fmt.Sprintf("unknown request type %q", req.Kind)})
	}
}

func (w *worker) reply(resp Response) {
	raw, err := json.Marshal(resp)
	if err != nil {
		w.log.Error().Err(err).Str("query", resp.Query).Msg("failed to encode worker response")
		return
	}
	w.responses <- raw
}
