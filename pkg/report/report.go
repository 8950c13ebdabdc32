// Package report renders forecast rows for the terminal or for spreadsheets
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ethpandaops/peerage/pkg/forecast"
)

// Renderer writes a header and rows to w
type Renderer interface {
	Render(w io.Writer, header []string, rows []forecast.Row) error
}

// New returns the CSV renderer when csv is set and the table renderer otherwise
func New(csv bool) Renderer {
	if csv {
		return CSV{}
	}

	return Table{}
}

// Cells returns the row values in header order
func Cells(r forecast.Row) []string {
	cells := make([]string, 0, len(r.Groups)+3)
	cells = append(cells, strconv.Itoa(r.Year), strconv.Itoa(r.Total))

	for _, count := range r.Groups {
		cells = append(cells, strconv.Itoa(count))
	}

	return append(cells, strconv.Itoa(r.Other))
}

// CSV renders comma separated lines
type CSV struct{}

// Render implements Renderer
func (CSV) Render(w io.Writer, header []string, rows []forecast.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		if err := cw.Write(Cells(row)); err != nil {
			return fmt.Errorf("failed to write year %d: %w", row.Year, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Table renders a right aligned table with a rule under the header
type Table struct{}

// Render implements Renderer
func (Table) Render(w io.Writer, header []string, rows []forecast.Row) error {
	cells := make([][]string, 0, len(rows))
	widths := make([]int, len(header))

	for i, h := range header {
		widths[i] = len(h)
	}

	for _, row := range rows {
		c := Cells(row)
		for i := range c {
			if i < len(widths) && len(c[i]) > widths[i] {
				widths[i] = len(c[i])
			}
		}

		cells = append(cells, c)
	}

	rule := make([]string, len(widths))
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	writeLine(tw, header)
	writeLine(tw, rule)

	for _, c := range cells {
		writeLine(tw, c)
	}

	return tw.Flush()
}

// writeLine terminates every cell with a tab so tabwriter aligns the last column too
func writeLine(w io.Writer, cells []string) {
	_, _ = fmt.Fprintln(w, strings.Join(cells, "\t")+"\t")
}
