package gallery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/iconkit/pkg/catalog"
	"github.com/dmitrymomot/iconkit/pkg/icon"
	"github.com/dmitrymomot/iconkit/pkg/logger"
)

func (g *Gallery) indexPage(w http.ResponseWriter, r *http.Request) {
	g.renderPage(w, r, page("Icon libraries", libraryList(g.catalog.Entries())))
}

func (g *Gallery) libraryPage(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "library")
	entry, ok := g.catalog.Entry(key)
	if !ok {
		http.Error(w, catalog.ErrUnknownLibrary.Error(), http.StatusNotFound)
		return
	}
	size, err := g.parseSize(r, defaultPreviewSize)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	variant := variantParam(r, entry)
	names, err := g.catalog.Names(r.Context(), key, variant)
	if err != nil {
		g.pageError(w, r, err)
		return
	}

	icons := make([]*icon.Definition, 0, len(names))
	for _, name := range names {
		def, err := g.catalog.Variant(r.Context(), key, variant, name)
		if err != nil {
			g.pageError(w, r, err)
			return
		}
		icons = append(icons, def)
	}

	g.renderPage(w, r, page(entry.DisplayName, libraryPreview(entry, variant, size, icons)))
}

func (g *Gallery) pageError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		g.log.ErrorContext(r.Context(), "gallery page failed", logger.Error(err))
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}

func (g *Gallery) renderPage(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		g.log.ErrorContext(r.Context(), "render page", logger.Error(err))
	}
}

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}

func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<!doctype html><html lang="en"><head><meta charset="utf-8"><title>`,
			templ.EscapeString(title),
			`</title><style>body{font-family:system-ui,sans-serif;margin:2rem}`,
			`.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(7rem,1fr));gap:1rem}`,
			`figure{margin:0;text-align:center}figcaption{font-size:.75rem;word-break:break-all}</style>`,
			`</head><body><h1>`, templ.EscapeString(title), `</h1>`,
		); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</body></html>`)
	})
}

func libraryList(entries []catalog.Entry) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := write(w, `<ul class="libraries">`); err != nil {
			return err
		}
		for _, e := range entries {
			if err := write(w,
				`<li><a href="/libraries/`, url.PathEscape(e.Key), `"`, accentStyle(e.Accent), `>`,
				templ.EscapeString(e.DisplayName), `</a>`,
			); err != nil {
				return err
			}
			if e.Suffixed() {
				if err := write(w, ` <small>`, strconv.Itoa(len(e.Suffixes)), ` variants</small>`); err != nil {
					return err
				}
			}
			if err := write(w, `</li>`); err != nil {
				return err
			}
		}
		return write(w, `</ul>`)
	})
}

func libraryPreview(e catalog.Entry, variant string, size int, icons []*icon.Definition) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if e.Suffixed() {
			if err := write(w, `<nav class="variants">`); err != nil {
				return err
			}
			for _, s := range e.Suffixes {
				href := fmt.Sprintf("/libraries/%s?variant=%s&size=%d", url.PathEscape(e.Key), url.QueryEscape(s), size)
				class := ""
				if s == variant {
					class = ` class="active"`
				}
				if err := write(w, `<a href="`, templ.EscapeString(href), `"`, class, `>`, templ.EscapeString(s), `</a> `); err != nil {
					return err
				}
			}
			if err := write(w, `</nav>`); err != nil {
				return err
			}
		}

		if err := write(w, `<p>`, strconv.Itoa(len(icons)), ` icons</p><div class="grid"`, accentStyle(e.Accent), `>`); err != nil {
			return err
		}
		for _, def := range icons {
			if err := write(w, `<figure>`); err != nil {
				return err
			}
			if err := def.Component(size).Render(ctx, w); err != nil {
				return err
			}
			if err := write(w, `<figcaption>`, templ.EscapeString(def.Name()), `</figcaption></figure>`); err != nil {
				return err
			}
		}
		return write(w, `</div>`)
	})
}

func accentStyle(accent string) string {
	if accent == "" {
		return ""
	}
	return ` style="color:` + templ.EscapeString(accent) + `"`
}
