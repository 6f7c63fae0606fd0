package icon

import (
	"strconv"
	"strings"
)

// svgOpenTag is the prefix WithSize looks for when stamping dimensions.
const svgOpenTag = "<svg "

// Definition is an SVG icon with the name it was resolved by.
// Definitions are immutable once created.
type Definition struct {
	name string
	svg  string
}

// New creates a definition from a name and raw SVG markup.
func New(name, svg string) *Definition {
	return &Definition{name: name, svg: svg}
}

// Name returns the lookup name the definition was created with.
func (d *Definition) Name() string { return d.name }

// SVG returns the raw markup exactly as it was read.
func (d *Definition) SVG() string { return d.svg }

// WithSize returns the markup with width and height attributes inserted right
// after the first "<svg " token. A size <= 0 means no size and returns the
// markup unchanged, as does markup without the token.
func (d *Definition) WithSize(size int) string {
	if size <= 0 {
		return d.svg
	}
	idx := strings.Index(d.svg, svgOpenTag)
	if idx < 0 {
		return d.svg
	}

	s := strconv.Itoa(size)
	cut := idx + len(svgOpenTag)

	var b strings.Builder
	b.Grow(len(d.svg) + 2*len(s) + len(`width="" height="" `))
	b.WriteString(d.svg[:cut])
	b.WriteString(`width="`)
	b.WriteString(s)
	b.WriteString(`" height="`)
	b.WriteString(s)
	b.WriteString(`" `)
	b.WriteString(d.svg[cut:])
	return b.String()
}
