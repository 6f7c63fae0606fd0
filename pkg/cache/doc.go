// Package cache provides a generic, fixed capacity LRU cache.
//
// The gallery uses it for rendered, size-specific SVG markup, which unlike
// icon definitions can grow without bound (one entry per requested size).
//
//	c := cache.New[key, string](1024)
//	markup, err := c.GetOrCompute(k, func() (string, error) {
//		def, err := set.Get(ctx, name)
//		if err != nil {
//			return "", err
//		}
//		return def.WithSize(size), nil
//	})
//
// All operations are O(1) and safe for concurrent use. Stats reports hit, miss
// and eviction counters.
package cache
