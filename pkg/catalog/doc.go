// Package catalog groups icon sets into named libraries.
//
// A catalog is a YAML document listing libraries:
//
//	libraries:
//	  - key: heroicons
//	    display_name: Heroicons
//	    accent: "#06b6d4"
//	    namespace: heroicons
//	    default_suffix: outline
//	    suffixes: [outline, solid, mini-solid]
//
// Open binds every entry to one resource.Store. Entries with suffixes are
// served by iconset.SuffixedSet, the rest by iconset.Set. Library
// materializes the default variant of a library into an icon.Library.
package catalog
