package icon

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Component renders the icon markup, sized when size > 0, as a templ component.
// The markup is written verbatim; icon sources are trusted bundle assets.
func (d *Definition) Component(size int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, d.WithSize(size))
		return err
	})
}
