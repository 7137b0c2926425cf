package pretty

import (
	"fmt"
	"sort"
	"strings"
)

// Table formatting constants.
const (
	tablePadding     = 2
	kindColumnCount  = 2 // KIND, COUNT
	minKindWidth     = 20
	minCountWidth    = 8
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// KindCountRow is a single row of a node-kind-count table: how many
// times a given AST node kind occurred in a document or run.
type KindCountRow struct {
	Kind  string
	Count int
}

// KindCountFormatter formats node-kind counts as a styled table, in
// the same fixed-width, styled-row layout the teacher uses for its
// diagnostic tables.
type KindCountFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewKindCountFormatter creates a new kind-count formatter.
func NewKindCountFormatter(styles *Styles, colorEnabled bool, termWidth int) *KindCountFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &KindCountFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatCounts renders counts as a sorted table, highest count first,
// ties broken alphabetically by kind name.
func (t *KindCountFormatter) FormatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return ""
	}

	rows := rowsFromCounts(counts)
	widths := t.calculateWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	var total int
	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
		total += row.Count
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableLegend.Render(fmt.Sprintf(" %d node kinds, %d nodes total", len(rows), total)))
	builder.WriteString("\n")

	return builder.String()
}

func rowsFromCounts(counts map[string]int) []KindCountRow {
	rows := make([]KindCountRow, 0, len(counts))
	for kind, count := range counts {
		rows = append(rows, KindCountRow{Kind: kind, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Kind < rows[j].Kind
	})
	return rows
}

type kindTableWidths struct {
	kind  int
	count int
}

func (t *KindCountFormatter) calculateWidths(rows []KindCountRow) kindTableWidths {
	widths := kindTableWidths{kind: minKindWidth, count: minCountWidth}

	for _, row := range rows {
		if len(row.Kind) > widths.kind {
			widths.kind = len(row.Kind)
		}
		if n := len(fmt.Sprintf("%d", row.Count)); n > widths.count {
			widths.count = n
		}
	}

	total := widths.kind + widths.count + tablePadding*kindColumnCount
	if total > t.termWidth {
		excess := total - t.termWidth
		widths.kind = max(minKindWidth, widths.kind-excess)
	}

	return widths
}

func (t *KindCountFormatter) formatHeader(widths kindTableWidths) string {
	header := fmt.Sprintf(" %-*s  %*s ", widths.kind, "KIND", widths.count, "COUNT")
	return t.styles.TableHeader.Render(header)
}

func (t *KindCountFormatter) formatSeparator(widths kindTableWidths, char string) string {
	total := widths.kind + widths.count + tablePadding*kindColumnCount
	return t.styles.TableSeparator.Render(strings.Repeat(char, total))
}

func (t *KindCountFormatter) formatRow(row KindCountRow, widths kindTableWidths) string {
	kind := truncateString(row.Kind, widths.kind)
	content := fmt.Sprintf(" %-*s  %*d ", widths.kind, kind, widths.count, row.Count)
	return t.styles.TableInfoRow.Render(content)
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
