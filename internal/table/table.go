// Package table merges per-host record sets into one column-aligned textual
// table.
package table

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/christoph-blessing/sinzlab-tools/internal/record"
	"github.com/christoph-blessing/sinzlab-tools/internal/ui"
)

// Option configures rendering.
type Option func(*renderer)

// WithColor enables lipgloss styling of the header row.
func WithColor(enabled bool) Option {
	return func(r *renderer) {
		r.color = enabled
	}
}

type renderer struct {
	color bool
}

// Render merges host records into a single aligned table. Hosts appear in
// sorted order, their records in original order; a host with zero records
// contributes zero rows. Column order is the declared field set, with any
// extra record fields appended after; cells for absent fields are empty.
// Every column is padded to max(header length, longest cell).
//
// Given identical inputs the output is byte-identical.
func Render(fields record.FieldSet, hosts record.HostRecords, opts ...Option) string {
	r := &renderer{}
	for _, opt := range opts {
		opt(r)
	}

	headers, rows, widths := build(fields, hosts)

	formatRow := func(values []string) string {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = v + strings.Repeat(" ", widths[i]-len([]rune(v)))
		}
		return strings.Join(parts, "  ")
	}

	var sb strings.Builder

	headerLine := formatRow(headers)
	if r.color {
		style := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorInfo)
		headerLine = style.Render(headerLine)
	}
	sb.WriteString(headerLine)
	sb.WriteString("\n")

	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	sb.WriteString(strings.Join(dashes, "  "))
	sb.WriteString("\n")

	for _, row := range rows {
		sb.WriteString(formatRow(row))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Widths reports the rendered width of each column for the given inputs, in
// header order (HOST first).
func Widths(fields record.FieldSet, hosts record.HostRecords) []int {
	_, _, widths := build(fields, hosts)
	return widths
}

// build flattens host records into header, row, and column-width slices.
func build(fields record.FieldSet, hosts record.HostRecords) (headers []string, rows [][]string, widths []int) {
	hostNames := make([]string, 0, len(hosts))
	for host := range hosts {
		hostNames = append(hostNames, host)
	}
	sort.Strings(hostNames)

	// Declared columns first, then any extra record fields in first-seen
	// order. Extras never reorder declared columns.
	columns := append(record.FieldSet{}, fields...)
	for _, host := range hostNames {
		for _, rec := range hosts[host] {
			for _, field := range rec.Fields() {
				if !columns.Contains(field) {
					columns = append(columns, field)
				}
			}
		}
	}

	headers = append([]string{"HOST"}, columns...)

	for _, host := range hostNames {
		for _, rec := range hosts[host] {
			row := make([]string, 0, len(headers))
			row = append(row, host)
			for _, field := range columns {
				value, _ := rec.Get(field)
				row = append(row, value)
			}
			rows = append(rows, row)
		}
	}

	widths = make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := len([]rune(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return headers, rows, widths
}
