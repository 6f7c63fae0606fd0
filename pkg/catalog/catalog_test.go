package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/iconkit/assets"
	"github.com/dmitrymomot/iconkit/pkg/catalog"
	"github.com/dmitrymomot/iconkit/pkg/iconset"
	"github.com/dmitrymomot/iconkit/pkg/resource"
)

func openBundled(t *testing.T) *catalog.Catalog {
	t.Helper()
	entries, err := catalog.ParseFile(assets.FS, assets.CatalogFile)
	require.NoError(t, err)
	c, err := catalog.Open(resource.NewFSStore(assets.Icons()), entries)
	require.NoError(t, err)
	return c
}

func TestOpenNormalizesEntries(t *testing.T) {
	t.Parallel()

	c, err := catalog.Open(resource.NewMemoryStore(nil), []catalog.Entry{
		{Key: "plain", Namespace: "plain"},
		{Key: "multi", Namespace: "multi", Suffixes: []string{"outline", "solid"}},
	})
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	plain, ok := c.Entry("plain")
	require.True(t, ok)
	assert.Equal(t, "plain", plain.DisplayName, "display name falls back to key")

	multi, ok := c.Entry("multi")
	require.True(t, ok)
	assert.Equal(t, "outline", multi.DefaultSuffix, "first suffix is the default")

	_, ok = c.Entry("missing")
	assert.False(t, ok)

	p, err := c.Provider("plain")
	require.NoError(t, err)
	assert.IsType(t, &iconset.Set{}, p)

	p, err = c.Provider("multi")
	require.NoError(t, err)
	vp, ok := p.(iconset.VariantProvider)
	require.True(t, ok)
	assert.Equal(t, []string{"outline", "solid"}, vp.Suffixes())
	assert.Equal(t, "outline", vp.DefaultSuffix())
}

func TestOpenRejectsInvalidEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []catalog.Entry
		err     error
	}{
		{"missing key", []catalog.Entry{{Namespace: "a"}}, catalog.ErrInvalidCatalog},
		{"missing namespace", []catalog.Entry{{Key: "a"}}, catalog.ErrInvalidCatalog},
		{"bad accent", []catalog.Entry{{Key: "a", Namespace: "a", Accent: "orange"}}, catalog.ErrInvalidCatalog},
		{"default without suffixes", []catalog.Entry{{Key: "a", Namespace: "a", DefaultSuffix: "solid"}}, catalog.ErrInvalidCatalog},
		{"default not listed", []catalog.Entry{{Key: "a", Namespace: "a", DefaultSuffix: "x", Suffixes: []string{"solid"}}}, catalog.ErrInvalidCatalog},
		{"empty suffix", []catalog.Entry{{Key: "a", Namespace: "a", Suffixes: []string{"solid", ""}}}, catalog.ErrInvalidCatalog},
		{"duplicate key", []catalog.Entry{{Key: "a", Namespace: "a"}, {Key: "a", Namespace: "b"}}, catalog.ErrDuplicateKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := catalog.Open(resource.NewMemoryStore(nil), tt.entries)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestEntriesAreCopies(t *testing.T) {
	t.Parallel()

	c := openBundled(t)
	entries := c.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"core", "feather", "heroicons"}, []string{entries[0].Key, entries[1].Key, entries[2].Key})

	entries[2].Suffixes[0] = "mutated"
	hero, ok := c.Entry("heroicons")
	require.True(t, ok)
	assert.Equal(t, "outline", hero.Suffixes[0])
}

func TestLibrary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := openBundled(t)

	t.Run("suffixed library uses default variant", func(t *testing.T) {
		t.Parallel()
		lib, err := c.Library(ctx, "heroicons")
		require.NoError(t, err)
		assert.Equal(t, "Heroicons", lib.Name())
		assert.Equal(t, 7, lib.Len())

		def, ok := lib.Get("check")
		require.True(t, ok)
		assert.Contains(t, def.SVG(), `stroke="currentColor"`)

		again, err := c.Library(ctx, "heroicons")
		require.NoError(t, err)
		assert.Same(t, lib, again)
	})

	t.Run("case-insensitive resource fallback", func(t *testing.T) {
		t.Parallel()
		lib, err := c.Library(ctx, "core")
		require.NoError(t, err)
		assert.Equal(t, []string{"circle", "minus", "plus", "search", "square"}, lib.Names())

		def, ok := lib.Get("search")
		require.True(t, ok)
		assert.Contains(t, def.SVG(), "<circle")
	})

	t.Run("unknown library", func(t *testing.T) {
		t.Parallel()
		_, err := c.Library(ctx, "nope")
		assert.ErrorIs(t, err, catalog.ErrUnknownLibrary)
	})
}

func TestLibraryErrorIsNotCached(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := resource.NewMemoryStore(map[string]string{
		"broken.Icons.index.json": `["ghost"]`,
	})
	c, err := catalog.Open(store, []catalog.Entry{{Key: "broken", Namespace: "broken"}})
	require.NoError(t, err)

	_, err = c.Library(ctx, "broken")
	assert.ErrorIs(t, err, iconset.ErrIconNotFound)
	_, err = c.Library(ctx, "broken")
	assert.ErrorIs(t, err, iconset.ErrIconNotFound)
}

func TestNamesAndVariant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := openBundled(t)

	names, err := c.Names(ctx, "heroicons", "mini-solid")
	require.NoError(t, err)
	assert.Equal(t, []string{"arrow-up", "arrow-down", "check", "x-mark", "bars-3"}, names)

	names, err = c.Names(ctx, "feather", "")
	require.NoError(t, err)
	assert.Contains(t, names, "zap")

	_, err = c.Names(ctx, "feather", "solid")
	assert.ErrorIs(t, err, iconset.ErrIndexNotFound)

	def, err := c.Variant(ctx, "heroicons", "mini-solid", "x-mark")
	require.NoError(t, err)
	assert.Contains(t, def.SVG(), `viewBox="0 0 20 20"`)

	def, err = c.Variant(ctx, "heroicons", "", "home")
	require.NoError(t, err)
	assert.Contains(t, def.SVG(), `stroke-width="1.5"`)

	_, err = c.Variant(ctx, "core", "solid", "plus")
	assert.ErrorIs(t, err, iconset.ErrIconNotFound)

	_, err = c.Variant(ctx, "nope", "", "plus")
	assert.ErrorIs(t, err, catalog.ErrUnknownLibrary)
}
