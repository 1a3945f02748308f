package worker

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/bnema/bangr/internal/domain/bang"
	"github.com/bnema/bangr/internal/logging"
)

const queueSize = 64

// Callback receives the ranked results of a Filter request. Callbacks run on
// the client's dispatch goroutine and must not block.
type Callback func(results []bang.Result)

// Client is the caller side of the background worker. Filter is fire and
// forget: results arrive later on the registered callback. Only the latest
// callback per normalized query is kept.
//
// If the worker dies the client becomes degraded: requests are dropped and
// callbacks never fire.
type Client struct {
	log *zerolog.Logger

	requests  chan []byte
	responses chan []byte
	stopped   chan struct{} // closed once the worker's responses are drained

	sendMu sync.RWMutex
	closed bool

	mu        sync.Mutex
	callbacks map[string]Callback

	degraded atomic.Bool
	wg       sync.WaitGroup
}

// Start launches a worker over a private copy of catalog and returns its client.
func Start(ctx context.Context, catalog []bang.Entry, opts Options) *Client {
	return start(ctx, newClient(ctx), catalog, opts, nil)
}

func newClient(ctx context.Context) *Client {
	return &Client{
		log:       logging.FromContext(ctx),
		requests:  make(chan []byte, queueSize),
		responses: make(chan []byte, queueSize),
		stopped:   make(chan struct{}),
		callbacks: make(map[string]Callback),
	}
}

func start(ctx context.Context, c *Client, catalog []bang.Entry, opts Options, hook func(Request)) *Client {
	w := newWorker(ctx, catalog, opts, c.requests, c.responses)
	w.beforeHandle = hook

	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		w.run()
	}()
	go func() {
		defer c.wg.Done()
		c.dispatch()
	}()
	return c
}

// Filter asks the worker to rank query against the catalog merged with
// overrides. cb replaces any callback already waiting on the same query.
func (c *Client) Filter(query string, overrides []bang.Entry, cb Callback) {
	key := bang.NormalizeQuery(query)
	if c.degraded.Load() {
		c.log.Warn().Str("query", key).Msg("bang worker unavailable, dropping filter request")
		return
	}

	c.mu.Lock()
	c.callbacks[key] = cb
	c.mu.Unlock()

	c.post(Request{Kind: KindFilter, Query: query, Overrides: overrides})
}

// ClearCache asks the worker to drop its index and cached rankings.
func (c *Client) ClearCache() {
	if c.degraded.Load() {
		c.log.Warn().Msg("bang worker unavailable, dropping clear cache request")
		return
	}
	c.post(Request{Kind: KindClearCache})
}

// SetPolicy replaces the worker's ranking policy. The worker clears its
// cache.
func (c *Client) SetPolicy(policy bang.RankPolicy) {
	if c.degraded.Load() {
		c.log.Warn().Msg("bang worker unavailable, dropping policy update")
		return
	}
	c.post(Request{Kind: KindSetPolicy, PopularServices: policy.PopularServices})
}

// Degraded reports whether the worker has stopped.
func (c *Client) Degraded() bool {
	return c.degraded.Load()
}

// Close stops the worker and waits for both goroutines to exit. Pending
// callbacks are dropped.
func (c *Client) Close() {
	c.sendMu.Lock()
	if !c.closed {
		c.closed = true
		close(c.requests)
	}
	c.sendMu.Unlock()
	c.wg.Wait()
}

func (c *Client) post(req Request) {
	raw, err := json.Marshal(req)
	if err != nil {
		c.log.Error().Err(err).Str("kind", string(req.Kind)).Msg("failed to encode worker request")
		return
	}

	c.sendMu.RLock()
	defer c.sendMu.RUnlock()
	if c.closed {
		c.log.Debug().Str("kind", string(req.Kind)).Msg("bang worker closed, dropping request")
		return
	}
	select {
	case c.requests <- raw:
	case <-c.stopped:
		c.log.Warn().Str("kind", string(req.Kind)).Msg("bang worker stopped, dropping request")
	}
}

func (c *Client) dispatch() {
	defer close(c.stopped)
	defer c.degraded.Store(true)

	for raw := range c.responses {
		var resp Response
		if err := json.Unmarshal(raw, &resp); err != nil {
			c.log.Error().Err(err).Msg("malformed bang worker response")
			continue
		}

		switch resp.Kind {
		case KindResults:
			c.mu.Lock()
			cb, ok := c.callbacks[resp.Query]
			delete(c.callbacks, resp.Query)
			c.mu.Unlock()
			if ok && cb != nil {
				cb(resp.Results)
			}
		case KindError:
			c.mu.Lock()
			delete(c.callbacks, resp.Query)
			c.mu.Unlock()
			c.log.Warn().Str("query", resp.Query).Str("error", resp.Message).Msg("bang worker rejected request")
		default:
			c.log.Warn().Str("kind", string(resp.Kind)).Msg("unexpected bang worker response")
		}
	}

	c.mu.Lock()
	c.callbacks = make(map[string]Callback)
	c.mu.Unlock()
}
