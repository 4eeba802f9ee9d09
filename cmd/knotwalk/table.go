package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/knotwalk/montecarlo"
)

// writeTable prints one row per walk as a boxed table.
func writeTable(w io.Writer, rep *montecarlo.Report) error {
	header := []string{"WALK", "CROSSINGS", fmt.Sprintf("Δ(%g)", rep.T), "KNOTTED"}
	rows := make([][]string, len(rep.Samples))
	for i, s := range rep.Samples {
		value := "-"
		if s.Err == nil {
			value = fmt.Sprintf("%.6g", s.Value)
		}
		rows[i] = []string{fmt.Sprint(s.Index + 1), fmt.Sprint(s.Crossings), value, knotted(s)}
	}

	widths := make([]int, len(header))
	for _, r := range append([][]string{header}, rows...) {
		for c, cell := range r {
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	rule := func() {
		for _, wd := range widths {
			b.WriteString("+")
			b.WriteString(strings.Repeat("-", wd+2))
		}
		b.WriteString("+\n")
	}
	line := func(cells []string) {
		for c, cell := range cells {
			b.WriteString("| ")
			if c == 0 || c == len(cells)-1 {
				b.WriteString(runewidth.FillRight(cell, widths[c]))
			} else {
				b.WriteString(runewidth.FillLeft(cell, widths[c]))
			}
			b.WriteString(" ")
		}
		b.WriteString("|\n")
	}

	rule()
	line(header)
	rule()
	for _, r := range rows {
		line(r)
	}
	rule()

	_, err := io.WriteString(w, b.String())

	return err
}
