package catalog

import (
	"fmt"
	"regexp"
	"slices"
)

var accentPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Entry describes one icon library of the catalog.
type Entry struct {
	Key           string   `yaml:"key" json:"key"`
	DisplayName   string   `yaml:"display_name" json:"display_name"`
	Accent        string   `yaml:"accent,omitempty" json:"accent,omitempty"`
	Namespace     string   `yaml:"namespace" json:"namespace"`
	DefaultSuffix string   `yaml:"default_suffix,omitempty" json:"default_suffix,omitempty"`
	Suffixes      []string `yaml:"suffixes,omitempty" json:"suffixes,omitempty"`
}

// Suffixed reports whether the library has variants.
func (e Entry) Suffixed() bool { return len(e.Suffixes) > 0 }

// normalize fills defaults and validates the entry.
func (e Entry) normalize() (Entry, error) {
	if e.Key == "" {
		return e, fmt.Errorf("%w: library without key", ErrInvalidCatalog)
	}
	if e.Namespace == "" {
		return e, fmt.Errorf("%w: library %q has no namespace", ErrInvalidCatalog, e.Key)
	}
	if e.DisplayName == "" {
		e.DisplayName = e.Key
	}
	if e.Accent != "" && !accentPattern.MatchString(e.Accent) {
		return e, fmt.Errorf("%w: library %q has invalid accent %q", ErrInvalidCatalog, e.Key, e.Accent)
	}

	if !e.Suffixed() {
		if e.DefaultSuffix != "" {
			return e, fmt.Errorf("%w: library %q sets default_suffix without suffixes", ErrInvalidCatalog, e.Key)
		}
		return e, nil
	}

	e.Suffixes = slices.Clone(e.Suffixes)
	if slices.Contains(e.Suffixes, "") {
		return e, fmt.Errorf("%w: library %q has an empty suffix", ErrInvalidCatalog, e.Key)
	}
	if e.DefaultSuffix == "" {
		e.DefaultSuffix = e.Suffixes[0]
	}
	if !slices.Contains(e.Suffixes, e.DefaultSuffix) {
		return e, fmt.Errorf("%w: library %q default_suffix %q is not listed in suffixes",
			ErrInvalidCatalog, e.Key, e.DefaultSuffix)
	}
	return e, nil
}
