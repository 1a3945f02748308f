package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/bangr/internal/application/port"
	"github.com/bnema/bangr/internal/domain/bang"
	"github.com/bnema/bangr/internal/domain/entity"
	domainurl "github.com/bnema/bangr/internal/domain/url"
	"github.com/bnema/bangr/internal/logging"
)

// ManageCustomBangsUseCase handles user-defined bangs and the default bang.
// Every mutation writes the settings store and then pushes the new overrides
// into the search session, so the next search sees them.
type ManageCustomBangsUseCase struct {
	store  port.SettingsStore
	search *SearchBangsUseCase
}

// NewManageCustomBangsUseCase creates a new custom bang use case.
func NewManageCustomBangsUseCase(store port.SettingsStore, search *SearchBangsUseCase) *ManageCustomBangsUseCase {
	return &ManageCustomBangsUseCase{store: store, search: search}
}

// AddCustomBangInput describes a bang to create.
type AddCustomBangInput struct {
	Triggers    []string
	ServiceName string // defaults to the primary trigger
	Domain      string // defaults to the template's host
	Category    string
	Subcategory string
	URLTemplate string
}

// AddCustomBangOutput contains the stored entry and the custom entries it
// replaced.
type AddCustomBangOutput struct {
	Entry    bang.Entry
	Replaced []bang.Entry
}

// Sync loads the stored settings and applies their custom bangs to the search
// session.
func (uc *ManageCustomBangsUseCase) Sync(ctx context.Context) (entity.UserSettings, error) {
	settings, err := uc.load(ctx)
	if err != nil {
		return entity.UserSettings{}, err
	}
	uc.search.SetOverrides(ctx, settings.CustomBangs)
	return settings, nil
}

// List returns the user's custom bangs in stored order.
func (uc *ManageCustomBangsUseCase) List(ctx context.Context) ([]bang.Entry, error) {
	settings, err := uc.Sync(ctx)
	if err != nil {
		return nil, err
	}
	return settings.CustomBangs, nil
}

// Add stores a new custom bang. Existing custom bangs sharing any trigger
// with it are replaced as a whole.
func (uc *ManageCustomBangsUseCase) Add(ctx context.Context, input AddCustomBangInput) (*AddCustomBangOutput, error) {
	log := logging.FromContext(ctx)

	entry, err := newCustomEntry(input)
	if err != nil {
		return nil, err
	}

	settings, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	var replaced []bang.Entry
	for _, existing := range settings.CustomBangs {
		if sharesTrigger(existing, entry) {
			replaced = append(replaced, existing)
		}
	}
	updated := bang.Merge(settings.CustomBangs, []bang.Entry{entry})

	if err := uc.writeCustomBangs(ctx, updated); err != nil {
		return nil, err
	}

	log.Info().
		Strs("triggers", entry.Triggers).
		Str("url_template", entry.URLTemplate).
		Int("replaced", len(replaced)).
		Msg("custom bang added")

	return &AddCustomBangOutput{Entry: entry, Replaced: replaced}, nil
}

// Remove deletes the custom bang declaring trigger. It reports whether one
// was found.
func (uc *ManageCustomBangsUseCase) Remove(ctx context.Context, trigger string) (bool, error) {
	log := logging.FromContext(ctx)

	trigger = strings.TrimPrefix(strings.TrimSpace(trigger), "!")
	settings, err := uc.load(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]bang.Entry, 0, len(settings.CustomBangs))
	for _, e := range settings.CustomBangs {
		if !e.HasTrigger(trigger) {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(settings.CustomBangs) {
		log.Debug().Str("trigger", trigger).Msg("no custom bang to remove")
		return false, nil
	}

	if err := uc.writeCustomBangs(ctx, kept); err != nil {
		return false, err
	}

	log.Info().Str("trigger", trigger).Msg("custom bang removed")
	return true, nil
}

// Import adds entries as custom bangs, in order. Each entry is checked like
// Add; one bad entry aborts the import. Later entries replace earlier ones
// that share a trigger. It returns the number of custom bangs
// stored afterwards.
func (uc *ManageCustomBangsUseCase) Import(ctx context.Context, entries []bang.Entry) (int, error) {
	log := logging.FromContext(ctx)

	incoming := make([]bang.Entry, 0, len(entries))
	for i, e := range entries {
		entry, err := newCustomEntry(AddCustomBangInput{
			Triggers:    e.Triggers,
			ServiceName: e.ServiceName,
			Domain:      e.Domain,
			Category:    e.Category,
			Subcategory: e.Subcategory,
			URLTemplate: e.URLTemplate,
		})
		if err != nil {
			return 0, fmt.Errorf("import entry %d: %w", i, err)
		}
		incoming = append(incoming, entry)
	}

	settings, err := uc.load(ctx)
	if err != nil {
		return 0, err
	}

	updated := settings.CustomBangs
	for _, e := range incoming {
		updated = bang.Merge(updated, []bang.Entry{e})
	}

	if err := uc.writeCustomBangs(ctx, updated); err != nil {
		return 0, err
	}

	log.Info().Int("imported", len(incoming)).Int("total", len(updated)).Msg("custom bangs imported")
	return len(updated), nil
}

// SetDefault stores the default bang. The trigger must exist in the merged
// catalog; an empty trigger restores the built-in fallback.
func (uc *ManageCustomBangsUseCase) SetDefault(ctx context.Context, trigger string) error {
	if uc.store == nil {
		return ErrNoSettingsStore
	}

	trigger = strings.TrimPrefix(strings.TrimSpace(trigger), "!")
	if trigger != "" {
		if _, err := uc.Sync(ctx); err != nil {
			return err
		}
		e, ok := uc.search.Find(ctx, trigger)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownBang, trigger)
		}
		trigger = e.Primary()
	}

	if err := uc.store.Update(ctx, entity.SettingDefaultBang, trigger); err != nil {
		return fmt.Errorf("failed to save default bang: %w", err)
	}

	logging.FromContext(ctx).Info().Str("default_bang", trigger).Msg("default bang updated")
	return nil
}

// Reset drops every custom bang and the default bang.
func (uc *ManageCustomBangsUseCase) Reset(ctx context.Context) error {
	if uc.store == nil {
		return ErrNoSettingsStore
	}
	if err := uc.store.Save(ctx, entity.UserSettings{}); err != nil {
		return fmt.Errorf("failed to reset bang settings: %w", err)
	}
	uc.search.SetOverrides(ctx, nil)

	logging.FromContext(ctx).Info().Msg("bang settings reset")
	return nil
}

func (uc *ManageCustomBangsUseCase) load(ctx context.Context) (entity.UserSettings, error) {
	if uc.store == nil {
		return entity.UserSettings{}, ErrNoSettingsStore
	}
	settings, err := uc.store.Load(ctx)
	if err != nil {
		return entity.UserSettings{}, fmt.Errorf("failed to load bang settings: %w", err)
	}
	return settings, nil
}

func (uc *ManageCustomBangsUseCase) writeCustomBangs(ctx context.Context, entries []bang.Entry) error {
	if err := uc.store.Update(ctx, entity.SettingCustomBangs, entries); err != nil {
		return fmt.Errorf("failed to save custom bangs: %w", err)
	}
	uc.search.SetOverrides(ctx, entries)
	return nil
}

func newCustomEntry(input AddCustomBangInput) (bang.Entry, error) {
	entry := bang.Entry{
		Triggers:    bang.NormalizeTriggers(input.Triggers...),
		ServiceName: strings.TrimSpace(input.ServiceName),
		Domain:      strings.TrimSpace(input.Domain),
		Category:    strings.TrimSpace(input.Category),
		Subcategory: strings.TrimSpace(input.Subcategory),
		Relevance:   bang.CustomRelevance,
		URLTemplate: strings.TrimSpace(input.URLTemplate),
	}
	if err := entry.Validate(); err != nil {
		return bang.Entry{}, err
	}
	if !bang.HasPlaceholder(entry.URLTemplate) {
		return bang.Entry{}, ErrMissingPlaceholder
	}
	if !domainurl.IsAbsolute(domainurl.Origin(entry.URLTemplate)) {
		return bang.Entry{}, fmt.Errorf("%w: %q", bang.ErrInvalidURL, entry.URLTemplate)
	}
	if entry.ServiceName == "" {
		entry.ServiceName = entry.Primary()
	}
	if entry.Domain == "" {
		entry.Domain = domainurl.ExtractDomain(entry.URLTemplate)
	}
	return entry, nil
}

func sharesTrigger(a, b bang.Entry) bool {
	for _, t := range b.Triggers {
		if a.HasTrigger(t) {
			return true
		}
	}
	return false
}
