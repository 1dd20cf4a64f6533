package extract

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

func extractExcel(path string, data []byte, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &FileFormatError{Path: path, Offset: -1, Err: fmt.Errorf("open workbook: %w", err)}
	}
	defer f.Close()

	name, err := resolveSheet(f, sheet)
	if err != nil {
		return nil, &FileFormatError{Path: path, Sheet: sheet, Offset: -1, Err: err}
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, &FileFormatError{Path: path, Sheet: name, Offset: -1, Err: fmt.Errorf("read rows: %w", err)}
	}

	// Date-typed cells arrive from GetRows as their display format (e.g.
	// "01-15-24"), which no date layout is expected to parse. Replace them
	// with ISO text from the underlying serial value so they flow through
	// the same resolution path as CSV dates.
	for ri := range rows {
		for ci := range rows[ri] {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			if err != nil {
				continue
			}

			if iso, ok := dateCellISO(f, name, cell); ok {
				rows[ri][ci] = iso
			}
		}
	}

	return &Table{Path: path, Sheet: name, Rows: rows}, nil
}

// dateCellISO reports whether the cell holds a date-styled numeric value and,
// if so, returns it as YYYY-MM-DD text.
func dateCellISO(f *excelize.File, sheet, cell string) (string, bool) {
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return "", false
	}

	if !isDateStyle(f, styleID) {
		return "", false
	}

	raw, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil || raw == "" {
		return "", false
	}

	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", false
	}

	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", false
	}

	return t.Format("2006-01-02"), true
}

// builtinDateNumFmts are the built-in number format IDs that render dates
// (14-22 plus the locale-specific date/time ranges).
var builtinDateNumFmts = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true,
	21: true, 22: true, 27: true, 28: true, 29: true, 30: true, 31: true,
	32: true, 33: true, 34: true, 35: true, 36: true, 45: true, 46: true,
	47: true, 50: true, 51: true, 52: true, 53: true, 54: true, 55: true,
	56: true, 57: true, 58: true,
}

// isDateStyle checks whether a style renders its value as a date: a built-in
// date number format, or a custom format carrying date tokens.
func isDateStyle(f *excelize.File, styleID int) bool {
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}

	if builtinDateNumFmts[style.NumFmt] {
		return true
	}

	if style.CustomNumFmt != nil {
		return strings.ContainsAny(stripNumFmtLiterals(*style.CustomNumFmt), "ydh")
	}

	return false
}

// stripNumFmtLiterals drops quoted text and bracketed sections (colors,
// locale prefixes) from a number format so only the format tokens remain.
func stripNumFmtLiterals(numFmt string) string {
	var b strings.Builder

	inQuote, inBracket := false, false

	for _, r := range strings.ToLower(numFmt) {
		switch {
		case inQuote:
			if r == '"' {
				inQuote = false
			}
		case inBracket:
			if r == ']' {
				inBracket = false
			}
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// resolveSheet maps the configured sheet selector to a worksheet name.
// Empty selects the first sheet; a number is treated as a 0-based index;
// anything else must name an existing sheet.
func resolveSheet(f *excelize.File, sheet string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}

	if sheet == "" {
		return sheets[0], nil
	}

	if idx, err := strconv.Atoi(sheet); err == nil {
		if idx < 0 || idx >= len(sheets) {
			return "", fmt.Errorf("sheet index %d out of range (%d sheets)", idx, len(sheets))
		}

		return sheets[idx], nil
	}

	for _, name := range sheets {
		if name == sheet {
			return name, nil
		}
	}

	return "", fmt.Errorf("no sheet named %q", sheet)
}
