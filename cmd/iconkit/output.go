package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.Bold, color.FgCyan)
	keyColor     = color.New(color.FgGreen)
	mutedColor   = color.New(color.FgHiBlack)
	successColor = color.New(color.FgGreen, color.Bold)
	failColor    = color.New(color.FgRed, color.Bold)
)

// table renders aligned columns. Cells are padded before coloring so escape
// codes do not skew widths.
type table struct {
	headers []string
	rows    [][]string
}

func (t *table) add(cells ...string) { t.rows = append(t.rows, cells) }

func (t *table) render(w io.Writer) {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], len(cell))
			}
		}
	}

	for i, h := range t.headers {
		headerColor.Fprint(w, pad(h, widths[i], i == len(widths)-1))
	}
	fmt.Fprintln(w)

	for _, row := range t.rows {
		for i, cell := range row {
			last := i == len(row)-1
			if i == 0 {
				keyColor.Fprint(w, pad(cell, widths[i], last))
				continue
			}
			fmt.Fprint(w, pad(cell, widths[i], last))
		}
		fmt.Fprintln(w)
	}
}

func pad(s string, width int, last bool) string {
	if last {
		return s
	}
	return s + strings.Repeat(" ", width-len(s)+2)
}
