package icon

import (
	"maps"
	"slices"
	"strings"
)

// Library is a named, fully materialized collection of icons.
type Library struct {
	name  string
	icons map[string]*Definition
}

// NewLibrary wraps an already resolved name to definition mapping.
// The map is copied so later changes by the caller don't leak in.
func NewLibrary(name string, icons map[string]*Definition) *Library {
	return &Library{
		name:  name,
		icons: maps.Clone(icons),
	}
}

// Name returns the display label of the library.
func (l *Library) Name() string { return l.name }

// Len returns the number of icons in the library.
func (l *Library) Len() int { return len(l.icons) }

// Icons returns a copy of the underlying mapping.
func (l *Library) Icons() map[string]*Definition {
	return maps.Clone(l.icons)
}

// Names returns icon names in lexical order.
func (l *Library) Names() []string {
	return slices.Sorted(maps.Keys(l.icons))
}

// Get looks up an icon by exact name first and falls back to a
// case-insensitive match.
func (l *Library) Get(name string) (*Definition, bool) {
	return Lookup(l.icons, name)
}

// Lookup finds name in icons, trying the exact key before any key that
// matches ignoring case.
func Lookup(icons map[string]*Definition, name string) (*Definition, bool) {
	if def, ok := icons[name]; ok {
		return def, true
	}
	for key, def := range icons {
		if strings.EqualFold(key, name) {
			return def, true
		}
	}
	return nil, false
}
