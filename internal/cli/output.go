package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/graphlab/shortest"
)

// printer writes headings, warnings and tables to one writer.
type printer struct {
	w       io.Writer
	heading *color.Color
	warn    *color.Color
	header  *color.Color
}

func (a *app) printer(w io.Writer) *printer {
	p := &printer{
		w:       w,
		heading: color.New(color.FgGreen, color.Bold),
		warn:    color.New(color.FgYellow),
		header:  color.New(color.FgCyan, color.Bold),
	}
	if a.noColor {
		p.heading.DisableColor()
		p.warn.DisableColor()
		p.header.DisableColor()
	}
	return p
}

func (p *printer) Heading(format string, args ...any) {
	p.heading.Fprintf(p.w, format, args...)
	fmt.Fprintln(p.w)
}

func (p *printer) Warn(format string, args ...any) {
	p.warn.Fprintf(p.w, "warning: "+format, args...)
	fmt.Fprintln(p.w)
}

func (p *printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
	fmt.Fprintln(p.w)
}

// table is a left-aligned text table with a coloured header row.
type table struct {
	headers []string
	rows    [][]string
	widths  []int
}

func newTable(headers ...string) *table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &table{headers: headers, widths: widths}
}

func (t *table) AddRow(row ...string) {
	for i, cell := range row {
		if i < len(t.widths) && len(cell) > t.widths[i] {
			t.widths[i] = len(cell)
		}
	}
	t.rows = append(t.rows, row)
}

func (t *table) Render(p *printer) {
	var sb strings.Builder
	for i, h := range t.headers {
		sb.WriteString(p.header.Sprintf("%-*s", t.widths[i], h))
		if i < len(t.headers)-1 {
			sb.WriteString("  ")
		}
	}
	fmt.Fprintln(p.w, sb.String())

	for _, row := range t.rows {
		sb.Reset()
		for i, cell := range row {
			if i >= len(t.widths) {
				break
			}
			if i == len(t.widths)-1 {
				sb.WriteString(cell)
				continue
			}
			fmt.Fprintf(&sb, "%-*s  ", t.widths[i], cell)
		}
		fmt.Fprintln(p.w, sb.String())
	}
}

// formatDist renders a distance with its sentinels spelled out.
func formatDist(d int64) string {
	switch d {
	case shortest.Inf:
		return "inf"
	case shortest.NegInf:
		return "-inf"
	}
	return fmt.Sprint(d)
}

// join renders a vertex sequence separated by single spaces.
func join[K any](vs []K) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
