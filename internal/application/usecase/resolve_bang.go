package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/bangr/internal/application/port"
	"github.com/bnema/bangr/internal/domain/bang"
	"github.com/bnema/bangr/internal/domain/entity"
	"github.com/bnema/bangr/internal/logging"
)

// maxSuggestions caps the "did you mean" list returned for unknown bangs.
const maxSuggestions = 3

// ResolveBangUseCase turns a full query into a redirect URL using the current
// catalog and the user's stored default bang.
type ResolveBangUseCase struct {
	search          *SearchBangsUseCase
	settings        port.SettingsStore
	fallbackTrigger string
}

// NewResolveBangUseCase creates a resolver. An empty fallbackTrigger means
// bang.FallbackTrigger. settings may be nil.
func NewResolveBangUseCase(search *SearchBangsUseCase, settings port.SettingsStore, fallbackTrigger string) *ResolveBangUseCase {
	if fallbackTrigger == "" {
		fallbackTrigger = bang.FallbackTrigger
	}
	return &ResolveBangUseCase{
		search:          search,
		settings:        settings,
		fallbackTrigger: fallbackTrigger,
	}
}

// ResolveBangInput contains the raw query typed by the user.
type ResolveBangInput struct {
	Query string // e.g. "!gh bnema/bangr"
}

// ResolveBangOutput contains the resolution and, for unknown bangs, similar
// triggers the user may have meant.
type ResolveBangOutput struct {
	bang.Resolution
	Suggestions []string `json:"suggestions,omitempty"`
}

// Resolve resolves input.Query. Settings are re-read on every call; a store
// failure degrades to the built-in defaults.
func (uc *ResolveBangUseCase) Resolve(ctx context.Context, input ResolveBangInput) (*ResolveBangOutput, error) {
	log := logging.FromContext(ctx)

	settings := uc.loadSettings(ctx)
	uc.search.SetOverrides(ctx, settings.CustomBangs)
	idx := uc.search.Index(ctx)

	defaultEntry, ok := uc.defaultEntry(idx, settings.DefaultBang)
	if !ok {
		log.Warn().Str("fallback", uc.fallbackTrigger).Msg("fallback bang not in catalog, only explicit bangs resolve")
	}

	res, err := bang.Resolve(input.Query, idx, defaultEntry)
	if err != nil {
		log.Warn().Err(err).Str("query", input.Query).Str("bang", res.BangUsed).Msg("bang resolution failed")
		return nil, fmt.Errorf("resolve %q: %w", input.Query, err)
	}

	out := &ResolveBangOutput{Resolution: res}
	if res.Fallback && res.Token != "" {
		out.Suggestions = bang.Suggest(idx, res.Token, maxSuggestions)
	}

	log.Debug().
		Str("query", input.Query).
		Str("bang", res.BangUsed).
		Bool("fallback", res.Fallback).
		Str("url", res.URL).
		Msg("bang resolved")

	return out, nil
}

func (uc *ResolveBangUseCase) loadSettings(ctx context.Context) entity.UserSettings {
	if uc.settings == nil {
		return entity.UserSettings{}
	}
	settings, err := uc.settings.Load(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to load bang settings, using defaults")
		return entity.UserSettings{}
	}
	return settings
}

// defaultEntry finds the configured default bang, falling back to the
// fallback trigger when it is unset or no longer in the catalog. When neither
// is known it returns a zero entry; bang.Resolve then only fails for queries
// that need the default.
func (uc *ResolveBangUseCase) defaultEntry(idx *bang.TriggerIndex, configured string) (bang.Entry, bool) {
	if configured != "" {
		if e, ok := idx.Find(configured); ok {
			return e, true
		}
	}
	return idx.Find(uc.fallbackTrigger)
}
