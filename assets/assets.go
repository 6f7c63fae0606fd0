// Package assets bundles the demo icon catalog and its icon tree.
package assets

import (
	"embed"
	"io/fs"
)

// CatalogFile is the catalog path inside FS.
const CatalogFile = "catalog.yaml"

//go:embed catalog.yaml icons
var FS embed.FS

// Icons returns the icon tree rooted at the namespace folders, ready for
// resource.NewFSStore.
func Icons() fs.FS {
	sub, err := fs.Sub(FS, "icons")
	if err != nil {
		// Unreachable: "icons" is embedded above.
		panic(err)
	}
	return sub
}
