package convert

import (
	"regexp"
	"strings"

	"github.com/MrJamesThe3rd/ledgerconv/internal/extract"
	"github.com/MrJamesThe3rd/ledgerconv/internal/format"
)

// rawRow is one physical row that survived normalization. Line is its
// 0-based index in the source table, kept for error reporting.
type rawRow struct {
	Line  int
	Cells []string
}

// rowFilter matches rows against a definition's filter patterns. Each
// pattern is tried as a regular expression; ones that do not compile fall
// back to plain substring matching.
type rowFilter struct {
	regexps []*regexp.Regexp
	substrs []string
}

func newRowFilter(patterns []string) *rowFilter {
	f := &rowFilter{}

	for _, p := range patterns {
		if p == "" {
			continue
		}

		if re, err := regexp.Compile(p); err == nil {
			f.regexps = append(f.regexps, re)
		} else {
			f.substrs = append(f.substrs, p)
		}
	}

	return f
}

func (f *rowFilter) drops(rendered string) bool {
	for _, re := range f.regexps {
		if re.MatchString(rendered) {
			return true
		}
	}

	for _, s := range f.substrs {
		if strings.Contains(rendered, s) {
			return true
		}
	}

	return false
}

// normalize applies a definition's skip and filter rules to the physical row
// stream, yielding the rows considered real transactions. headerIdx is the
// row the definition's columns were found on; data starts after it, so the
// header row is never part of the output. Order-preserving; an all-filtered
// file yields an empty slice, not an error.
func normalize(tbl *extract.Table, def *format.Definition, headerIdx int) []rawRow {
	rows := tbl.Rows

	start := headerIdx + 1
	if def.SkipRows > start {
		start = def.SkipRows
	}

	if start > len(rows) {
		start = len(rows)
	}

	end := len(rows) - def.TrailingSkipRows
	if end < start {
		end = start
	}

	filter := newRowFilter(def.FilterPatterns)

	var out []rawRow

	for i := start; i < end; i++ {
		cells := tbl.Rows[i]
		if allEmpty(cells) {
			continue
		}

		if filter.drops(renderRow(cells)) {
			continue
		}

		out = append(out, rawRow{Line: i, Cells: cells})
	}

	return out
}

// renderRow joins all cells into the single comparison string filter
// patterns are matched against.
func renderRow(cells []string) string {
	return strings.Join(cells, ",")
}

func allEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}

	return strings.TrimSpace(cells[idx])
}

// columnIndex maps normalized header labels to their positions.
type columnIndex map[string]int

func newColumnIndex(header []string) columnIndex {
	idx := make(columnIndex, len(header))

	for i, label := range header {
		key := format.NormalizeLabel(label)
		if key == "" {
			continue
		}

		// First occurrence wins for duplicated labels.
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}

	return idx
}

// lookup returns the position of a mapped column, or -1 when the column is
// absent or unmapped.
func (c columnIndex) lookup(label string) int {
	if strings.TrimSpace(label) == "" {
		return -1
	}

	if i, ok := c[format.NormalizeLabel(label)]; ok {
		return i
	}

	return -1
}
