package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/MrJamesThe3rd/ledgerconv/internal/encoding"
)

// delimiterCandidates in preference order; ties go to the earlier entry.
var delimiterCandidates = []rune{',', ';', '\t'}

// sampleLines is how many leading lines are inspected for delimiter
// detection.
const sampleLines = 20

func extractCSV(path string, data []byte) (*Table, error) {
	utf8r, err := enc.NewUTF8Reader(bytes.NewReader(data))
	if err != nil {
		return nil, &FileFormatError{Path: path, Offset: enc.FirstInvalidByte(data), Err: fmt.Errorf("detect encoding: %w", err)}
	}

	decoded, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, &FileFormatError{Path: path, Offset: enc.FirstInvalidByte(data), Err: fmt.Errorf("decode: %w", err)}
	}

	if len(bytes.TrimSpace(decoded)) == 0 {
		return nil, &FileFormatError{Path: path, Offset: -1, Err: fmt.Errorf("file is empty")}
	}

	delim, ok := detectDelimiter(string(decoded))
	if !ok {
		return nil, &FileFormatError{Path: path, Offset: -1, Err: fmt.Errorf("no delimiter among ',' ';' '\\t' yields a usable table")}
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.Comma = delim
	reader.FieldsPerRecord = -1 // banner and footer rows are ragged
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &FileFormatError{Path: path, Offset: -1, Err: fmt.Errorf("read csv: %w", err)}
	}

	return &Table{Path: path, Rows: rows}, nil
}

// detectDelimiter picks the candidate whose modal column count over the
// sampled lines is most consistent. Statement files often carry ragged
// banner lines, so the winner is the delimiter most lines agree on rather
// than one all lines agree on. At least two columns are required.
func detectDelimiter(content string) (rune, bool) {
	lines := sampleNonEmptyLines(content, sampleLines)
	if len(lines) == 0 {
		return 0, false
	}

	var (
		best      rune
		bestScore int
		bestCols  int
		found     bool
	)

	for _, delim := range delimiterCandidates {
		cols, score := modalColumnCount(lines, delim)
		if cols < 2 {
			continue
		}

		// Strictly better score wins. On equal scores the candidate
		// splitting into more columns wins; when column counts also tie,
		// the earlier candidate (comma first) is kept.
		if !found || score > bestScore || (score == bestScore && cols > bestCols) {
			best, bestScore, bestCols, found = delim, score, cols, true
		}
	}

	return best, found
}

// modalColumnCount parses each sampled line alone with the candidate
// delimiter and returns the most common column count and how many lines
// produced it.
func modalColumnCount(lines []string, delim rune) (cols, score int) {
	counts := make(map[int]int)

	for _, line := range lines {
		r := csv.NewReader(strings.NewReader(line))
		r.Comma = delim
		r.LazyQuotes = true

		fields, err := r.Read()
		if err != nil {
			continue
		}

		counts[len(fields)]++
	}

	for c, n := range counts {
		if n > score || (n == score && c > cols) {
			cols, score = c, n
		}
	}

	return cols, score
}

func sampleNonEmptyLines(content string, n int) []string {
	var lines []string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines = append(lines, line)
		if len(lines) == n {
			break
		}
	}

	return lines
}
