package port

// Cache stores ranked results per normalized query. Implementations are safe
// for concurrent use and never store the zero key.
type Cache[K comparable, V any] interface {
	// Get returns the value for key and marks it as recently used.
	Get(key K) (V, bool)

	// Set stores value, evicting another entry when the cache is full.
	Set(key K, value V)

	Remove(key K)

	Len() int

	// Clear drops every entry. Called whenever the catalog, the overrides or
	// the ranking policy change.
	Clear()
}
