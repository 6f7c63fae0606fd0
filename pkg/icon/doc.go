// Package icon defines the immutable values handed out by icon sets.
//
// A Definition pairs an icon name with its raw SVG markup. It is created once,
// when an icon set resolves the name, and never changes afterwards, so the same
// *Definition may be shared freely between goroutines.
//
// A Library is a named, fully materialized mapping of icon names to
// definitions. Libraries are built by callers that have already preloaded a
// set, typically from the result of PreloadAll:
//
//	icons, err := set.PreloadAll(ctx)
//	if err != nil {
//		return err
//	}
//	lib := icon.NewLibrary("Heroicons", icons)
//
// # Sizing
//
// WithSize stamps explicit width and height attributes onto the root <svg>
// element without touching the stored markup:
//
//	def.WithSize(24) // <svg width="24" height="24" xmlns=...
//	def.WithSize(0)  // markup unchanged
//
// # Templ
//
// Component adapts a definition to a templ.Component so icons can be dropped
// into templ views as-is.
package icon
