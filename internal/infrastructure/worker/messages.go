// Package worker runs bang ranking on a background goroutine. The goroutine
// owns its own catalog copy, index and result cache and talks to the caller
// only through JSON messages.
package worker

import "github.com/bnema/bangr/internal/domain/bang"

// Kind identifies a message on the worker channels.
type Kind string

const (
	// KindFilter asks the worker to rank a query.
	KindFilter Kind = "FILTER"
	// KindClearCache asks the worker to drop its index and result cache.
	KindClearCache Kind = "CLEAR_CACHE"
	// KindSetPolicy replaces the worker's ranking policy.
	KindSetPolicy Kind = "SET_POLICY"
	// KindResults carries ranked results back to the client.
	KindResults Kind = "RESULTS"
	// KindError reports a request the worker could not handle.
	KindError Kind = "ERROR"
)

// Request is posted by the client.
type Request struct {
	Kind      Kind         `json:"kind"`
	Query     string       `json:"query,omitempty"`
	Overrides []bang.Entry `json:"overrides,omitempty"`
	MaxItems  int          `json:"max_items,omitempty"`

	PopularServices []string `json:"popular_services,omitempty"`
}

// Response is posted by the worker. Query is the normalized query.
type Response struct {
	Kind    Kind          `json:"kind"`
	Query   string        `json:"query,omitempty"`
	Results []bang.Result `json:"results,omitempty"`
	Message string        `json:"message,omitempty"`
}
