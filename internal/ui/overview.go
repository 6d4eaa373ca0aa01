package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/calef/passview/internal/trace"
)

// StatRow is one before/after comparison in the overview table: the value
// after the first recorded step and after the last one. Strictly first and
// last, not min/max or aggregates.
type StatRow struct {
	Label string
	Init  string
	Final string
}

// Overview holds the summary statistics derived from a frozen sequence.
// It is computed once per sequence and cached; a resize never recomputes
// it.
type Overview struct {
	TotalPasses     int
	Transformations int
	Analyses        int
	Runtime         time.Duration
	Rows            []StatRow

	widths     [3]int
	tableWidth int
}

var overviewHeaders = [3]string{"Property", "Initial", "Final"}

// Summarize derives the overview from the sequence: category totals in a
// single traversal, then the endpoint snapshots for each tracked statistic.
func Summarize(seq *trace.Sequence) Overview {
	o := Overview{
		TotalPasses: seq.Len(),
		Runtime:     seq.Info().Runtime,
	}

	for i := 0; i < seq.Len(); i++ {
		if seq.Step(i).Kind == trace.Transformation {
			o.Transformations++
		} else {
			o.Analyses++
		}
	}

	first := seq.Step(0).Stats
	last := seq.Step(seq.Len() - 1).Stats
	o.Rows = []StatRow{
		{"Depth", strconv.Itoa(first.Depth), strconv.Itoa(last.Depth)},
		{"Size", strconv.Itoa(first.Size), strconv.Itoa(last.Size)},
		{"Width", strconv.Itoa(first.Width), strconv.Itoa(last.Width)},
		{"Ops", strconv.Itoa(first.TotalOps()), strconv.Itoa(last.TotalOps())},
	}

	// Column widths follow the longest cell in each column.
	for col, header := range overviewHeaders {
		o.widths[col] = len([]rune(header))
	}
	for _, row := range o.Rows {
		for col, cell := range [3]string{row.Label, row.Init, row.Final} {
			if n := len([]rune(cell)); n > o.widths[col] {
				o.widths[col] = n
			}
		}
	}

	// Border + padded cells + separators.
	o.tableWidth = 4
	for _, w := range o.widths {
		o.tableWidth += w + 2
	}

	return o
}

// TableWidth reports the total rendered width of the statistics table so
// dependent panels can be positioned to its right.
func (o Overview) TableWidth() int {
	return o.tableWidth
}

// TableLines renders the before/after statistics grid.
func (o Overview) TableLines() []string {
	lines := make([]string, 0, len(o.Rows)+4)
	lines = append(lines, o.rule('┌', '┬', '┐'))
	lines = append(lines, o.gridRow(overviewHeaders[0], overviewHeaders[1], overviewHeaders[2]))
	lines = append(lines, o.rule('├', '┼', '┤'))
	for _, row := range o.Rows {
		lines = append(lines, o.gridRow(row.Label, row.Init, row.Final))
	}
	lines = append(lines, o.rule('└', '┴', '┘'))
	return lines
}

func (o Overview) rule(left, mid, right rune) string {
	var b strings.Builder
	b.WriteRune(left)
	for col, w := range o.widths {
		b.WriteString(strings.Repeat("─", w+2))
		if col < len(o.widths)-1 {
			b.WriteRune(mid)
		}
	}
	b.WriteRune(right)
	return b.String()
}

func (o Overview) gridRow(cells ...string) string {
	var b strings.Builder
	b.WriteRune('│')
	for col, cell := range cells {
		b.WriteString(centerIn(o.widths[col]+2, cell))
		b.WriteRune('│')
	}
	return b.String()
}

// SummaryLines renders the textual summary above the statistics table.
func (o Overview) SummaryLines() []string {
	return []string{
		"Pass Overview",
		fmt.Sprintf("Total Passes: %d", o.TotalPasses),
		fmt.Sprintf("Transformation: %d | Analysis: %d", o.Transformations, o.Analyses),
		"",
		fmt.Sprintf("Runtime: %.2f ms", float64(o.Runtime)/float64(time.Millisecond)),
	}
}

// renderOverviewPanel builds the full overview panel for the given layout.
func (m Model) renderOverviewPanel() string {
	o := m.overview
	styles := m.theme.Styles()
	width := m.layout.Overview.Width
	limit := max(width-1, 0)

	underline := strings.Repeat("_", min(o.tableWidth, limit))
	banner := centerIn(o.tableWidth, "TRANSPILATION OVERVIEW")

	lines := []string{
		underline,
		"",
		styles.Heading.Render(clip(banner, limit)),
		underline,
		"",
	}

	for i, line := range o.SummaryLines() {
		line = clip(line, limit)
		// The section label and the runtime line render bold.
		if i == 0 || strings.HasPrefix(line, "Runtime:") {
			line = styles.Heading.Render(line)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "",
		styles.Heading.Render(clip(centerIn(o.tableWidth, "Circuit Statistics"), limit)))
	for _, line := range o.TableLines() {
		lines = append(lines, clip(line, limit))
	}

	indent := strings.Repeat(" ", overviewMargin)
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}
