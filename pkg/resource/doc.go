// Package resource provides the read-only stores icon sets load their indexes
// and SVG markup from.
//
// A Store exposes two operations: ReadText returns the content under a key
// and Keys enumerates every key. Icon sets only call Keys after an exact read
// misses, to recover from packaging that changed the letter case of a file.
//
// # Keys
//
// Keys follow the dotted layout of packaged resources. File based stores
// derive them from paths with ManifestKey, which joins path segments with
// dots and replaces hyphens with underscores in directory names only:
//
//	heroicons/Icons/mini-solid.index.json   -> heroicons.Icons.mini-solid.index.json
//	heroicons/Icons/mini-solid/arrow-up.svg -> heroicons.Icons.mini_solid.arrow-up.svg
//
// # Backends
//
//   - MemoryStore: a fixed map, handy for tests and generated bundles.
//   - FSStore: any fs.FS, typically an embed.FS; NewDirStore wraps a local directory.
//   - S3Store: an S3 bucket or S3-compatible service holding the asset tree.
//   - RedisStore: string values in Redis, shared between processes; Seed copies
//     another store into it.
//
// # Error Handling
//
// Missing keys are reported with errors matching ErrNotFound. Backend specific
// failures are classified into the package's sentinel errors and can be
// checked with errors.Is.
package resource
