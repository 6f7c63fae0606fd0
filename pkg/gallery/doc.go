// Package gallery exposes an icon catalog over HTTP.
//
// JSON endpoints list libraries and icon names per variant, /icons serves SVG
// files with optional width and height stamped in, and the HTML pages preview
// a whole variant of a library. Every response carries an X-Request-ID header.
//
//	g := gallery.New(cat, gallery.WithLogger(log))
//	srv := httpserver.New(httpserver.WithAddr(":8080"))
//	err := srv.Run(ctx, g.Handler())
package gallery
