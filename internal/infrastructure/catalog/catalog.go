// Package catalog loads bang catalogs from the embedded defaults or from
// JSON, YAML and TOML files, and writes them back out.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bnema/bangr/internal/domain/bang"
	domainurl "github.com/bnema/bangr/internal/domain/url"
)

//go:embed default_bangs.json
var defaultBangsJSON []byte

// Format is a catalog file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for unknown file extensions or formats.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// File is the on-disk shape of a catalog.
type File struct {
	Bangs []FileEntry `json:"bangs" yaml:"bangs" toml:"bangs" jsonschema:"title=Bangs,description=Bang definitions"`
}

// FileEntry is one bang as written by users. Trigger and Triggers each accept
// a single string or a list; both are merged into bang.Entry.Triggers.
type FileEntry struct {
	Trigger     any    `json:"trigger,omitempty" yaml:"trigger,omitempty" toml:"trigger,omitempty" jsonschema:"oneof_type=string;array,description=Primary trigger or list of triggers"`
	Triggers    any    `json:"triggers,omitempty" yaml:"triggers,omitempty" toml:"triggers,omitempty" jsonschema:"oneof_type=string;array,description=Triggers; the first one is the primary"`
	ServiceName string `json:"service_name,omitempty" yaml:"service_name,omitempty" toml:"service_name,omitempty"`
	Domain      string `json:"domain,omitempty" yaml:"domain,omitempty" toml:"domain,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty" yaml:"subcategory,omitempty" toml:"subcategory,omitempty"`
	Relevance   int    `json:"relevance,omitempty" yaml:"relevance,omitempty" toml:"relevance,omitempty"`
	URLTemplate string `json:"url_template" yaml:"url_template" toml:"url_template" jsonschema:"description=URL with {{{s}}} or {searchTerms} placeholder"`
}

// Default returns the embedded catalog, sorted by primary trigger.
func Default() ([]bang.Entry, error) {
	entries, err := Decode(defaultBangsJSON, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return entries, nil
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads a catalog file. The format follows the extension.
func LoadFile(path string) ([]bang.Entry, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	entries, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Decode parses, validates and sorts a catalog.
func Decode(data []byte, format Format) ([]bang.Entry, error) {
	var file File
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &file)
	case FormatYAML:
		err = yaml.Unmarshal(data, &file)
	case FormatTOML:
		err = toml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s catalog: %w", format, err)
	}

	entries := make([]bang.Entry, 0, len(file.Bangs))
	for i, fe := range file.Bangs {
		e, err := fe.toEntry()
		if err != nil {
			return nil, fmt.Errorf("bang %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	bang.SortCatalog(entries)
	return entries, nil
}

// Export writes entries in the given format. Triggers are always written as
// a list.
func Export(w io.Writer, entries []bang.Entry, format Format) error {
	file := File{Bangs: make([]FileEntry, 0, len(entries))}
	for _, e := range entries {
		file.Bangs = append(file.Bangs, FileEntry{
			Triggers:    e.Triggers,
			ServiceName: e.ServiceName,
			Domain:      e.Domain,
			Category:    e.Category,
			Subcategory: e.Subcategory,
			Relevance:   e.Relevance,
			URLTemplate: e.URLTemplate,
		})
	}

	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(file); err != nil {
			return fmt.Errorf("failed to encode json catalog: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(file); err != nil {
			return fmt.Errorf("failed to encode yaml catalog: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml catalog: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(file); err != nil {
			return fmt.Errorf("failed to encode toml catalog: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func (fe FileEntry) toEntry() (bang.Entry, error) {
	single, err := coerceTriggers(fe.Trigger)
	if err != nil {
		return bang.Entry{}, fmt.Errorf("trigger: %w", err)
	}
	list, err := coerceTriggers(fe.Triggers)
	if err != nil {
		return bang.Entry{}, fmt.Errorf("triggers: %w", err)
	}

	e := bang.Entry{
		Triggers:    bang.NormalizeTriggers(append(single, list...)...),
		ServiceName: strings.TrimSpace(fe.ServiceName),
		Domain:      strings.TrimSpace(fe.Domain),
		Category:    strings.TrimSpace(fe.Category),
		Subcategory: strings.TrimSpace(fe.Subcategory),
		Relevance:   fe.Relevance,
		URLTemplate: strings.TrimSpace(fe.URLTemplate),
	}
	if err := e.Validate(); err != nil {
		return bang.Entry{}, err
	}
	if e.ServiceName == "" {
		e.ServiceName = e.Primary()
	}
	if e.Domain == "" {
		e.Domain = domainurl.ExtractDomain(e.URLTemplate)
	}
	return e, nil
}

// coerceTriggers accepts a string or a list of strings, as decoded by any of
// the supported formats.
func coerceTriggers(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{t}, nil
	case []string:
		return t, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string or list of strings, got %T", v)
	}
}
