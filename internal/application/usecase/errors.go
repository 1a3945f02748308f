package usecase

import "errors"

var (
	// ErrUnknownBang is returned when a trigger is not in the catalog.
	ErrUnknownBang = errors.New("unknown bang")
	// ErrMissingPlaceholder is returned for custom bangs whose URL template
	// has no search-term placeholder.
	ErrMissingPlaceholder = errors.New("url template has no {{{s}}} or {searchTerms} placeholder")
	// ErrNoSettingsStore is returned by operations that need persistence when
	// none is configured.
	ErrNoSettingsStore = errors.New("no settings store configured")
)
