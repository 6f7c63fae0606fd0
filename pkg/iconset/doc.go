// Package iconset resolves SVG icons by name from a resource.Store, lazily
// and at most once per name.
//
// Two flavours exist. Set serves a collection without style variants:
//
//	set := iconset.New(store, "lucide")
//	def, err := set.Get(ctx, "arrow-right")
//
// SuffixedSet adds a variant ("suffix") dimension with a default variant:
//
//	hero := iconset.NewSuffixed(store, "heroicons", "outline", []string{"outline", "solid", "mini-solid"})
//	def, err := hero.GetVariant(ctx, "solid", "home")
//
// # Resources
//
// A set with namespace ns reads its index from "ns.Icons.index.json" (or
// "ns.Icons.<suffix>.index.json") and icons from "ns.Icons.<name>.svg" (or
// "ns.Icons.<suffix>.<name>.svg"). Hyphens in the suffix become underscores in
// icon keys but not in index keys, mirroring how asset packaging renames
// variant folders while leaving file names alone.
//
// When an exact icon key is missing, the store's keys are scanned for one
// that matches ignoring case, and the first hit is used.
//
// # Lookups
//
//   - IconNames / GetIconNames return the index, read once per variant.
//   - Get / GetVariant resolve any name that has a resource, indexed or not,
//     and fail with ErrIconNotFound otherwise.
//   - TryGet / TryGetVariant check the index first and report (nil, false, nil)
//     for unlisted names. A listed name without a resource still fails, so
//     the two paths can disagree when the index and the resources drift.
//   - PreloadAll / PreloadVariant resolve everything listed in an index.
//
// # Caching
//
// Resolved icons are kept for the lifetime of the set and the same
// *icon.Definition is returned for repeated lookups. Concurrent first lookups
// of one key share a single store read. Failures are not cached.
//
// # Error Handling
//
// ErrIndexNotFound and ErrIndexDecode report missing or malformed indexes;
// ErrIconNotFound names the icon, suffix and resource key that was tried.
// Other store errors are passed through.
package iconset
