// Package memo provides never-evicting, at-most-once memoization primitives.
//
// Map memoizes values per string key. The first caller for a key runs the
// loader; callers arriving while that load is in flight wait for it and share
// its result, and callers arriving afterwards read the stored value. A loader
// therefore runs at most once per key for as long as it keeps succeeding.
// Failed loads are not stored, so the next caller retries.
//
//	var m memo.Map[*icon.Definition]
//	def, err := m.GetOrLoad("arrow", func() (*icon.Definition, error) {
//		return readIcon("arrow")
//	})
//
// Value is the single-slot counterpart, useful for lazily computed data such
// as a manifest that is read once and then kept forever.
//
// Both types are safe for concurrent use and usable as zero values. They must
// not be copied after first use.
package memo
