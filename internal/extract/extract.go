// Package extract reads CSV and Excel statement files into an in-memory
// table of raw rows, hiding encoding, delimiter and sheet differences from
// the conversion engine.
package extract

import (
	"fmt"
	"os"
	"strings"
)

// Table is the buffered snapshot of one statement file: every physical row,
// plus the detected header. The engine samples and replays the same Table,
// so repeated conversions of one file see identical input.
type Table struct {
	Path  string
	Sheet string // worksheet actually read, empty for CSV

	// Rows holds every physical row, including banner and footer lines.
	Rows [][]string

	// Header is the first row that looks like a column header, as a preview
	// for callers that have no format definition yet (e.g. to report what
	// columns an unmatched file actually carries). Nil when no row qualifies.
	Header []string
}

// FileFormatError reports a container that could not be read: missing or
// empty file, no decodable encoding, unreadable workbook. Fatal for the
// whole file.
type FileFormatError struct {
	Path   string
	Sheet  string // set for workbook errors
	Offset int64  // byte offset of first decode failure, -1 when unknown
	Err    error
}

func (e *FileFormatError) Error() string {
	msg := fmt.Sprintf("unreadable statement file %s", e.Path)
	if e.Sheet != "" {
		msg += fmt.Sprintf(" (sheet %q)", e.Sheet)
	}

	if e.Offset >= 0 {
		msg += fmt.Sprintf(" (byte offset %d)", e.Offset)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *FileFormatError) Unwrap() error { return e.Err }

// Extract reads the file at path into a Table. The container kind is decided
// by magic bytes, not extension. sheet selects an Excel worksheet by name or
// numeric index; empty means the first sheet. It is ignored for CSV.
func Extract(path, sheet string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileFormatError{Path: path, Offset: -1, Err: err}
	}

	if len(data) == 0 {
		return nil, &FileFormatError{Path: path, Offset: -1, Err: fmt.Errorf("file is empty")}
	}

	var tbl *Table

	switch sniffContainer(data) {
	case containerXLSX:
		tbl, err = extractExcel(path, data, sheet)
	case containerXLS:
		return nil, &FileFormatError{Path: path, Offset: -1,
			Err: fmt.Errorf("legacy .xls workbooks are not supported, re-save as .xlsx or CSV")}
	default:
		tbl, err = extractCSV(path, data)
	}

	if err != nil {
		return nil, err
	}

	tbl.Header = detectHeader(tbl.Rows)
	if len(tbl.Rows) == 0 {
		return nil, &FileFormatError{Path: path, Sheet: tbl.Sheet, Offset: -1, Err: fmt.Errorf("file has no rows")}
	}

	return tbl, nil
}

type containerKind int

const (
	containerCSV containerKind = iota
	containerXLSX
	containerXLS
)

// sniffContainer checks magic bytes: xlsx is a ZIP archive, legacy xls is an
// OLE2 compound document. Anything else is treated as delimited text.
func sniffContainer(data []byte) containerKind {
	if len(data) < 4 {
		return containerCSV
	}

	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return containerXLSX
	}

	if data[0] == 0xD0 && data[1] == 0xCF && data[2] == 0x11 && data[3] == 0xE0 {
		return containerXLS
	}

	return containerCSV
}

// detectHeader finds the first row with at least two non-empty cells. Banner
// lines above the real header usually carry a single cell and are skipped.
// Falls back to the first non-empty row.
func detectHeader(rows [][]string) []string {
	var firstNonEmpty []string

	for _, row := range rows {
		filled := 0

		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				filled++
			}
		}

		if filled > 0 && firstNonEmpty == nil {
			firstNonEmpty = row
		}

		if filled >= 2 {
			return trimmedCopy(row)
		}
	}

	if firstNonEmpty != nil {
		return trimmedCopy(firstNonEmpty)
	}

	return nil
}

func trimmedCopy(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.TrimSpace(cell)
	}

	return out
}
