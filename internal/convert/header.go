package convert

import (
	"github.com/MrJamesThe3rd/ledgerconv/internal/extract"
	"github.com/MrJamesThe3rd/ledgerconv/internal/format"
)

// maxHeaderScan bounds how many rows past the skip offset are searched for a
// header landmark. Statement banners rarely exceed a couple of dozen lines.
const maxHeaderScan = 25

// findHeader scans for the first row carrying all of the definition's
// required columns, starting at the definition's skip offset. The window is
// relative to that offset, so a large skip_rows still leaves room to find
// the header. Returns -1 when no row qualifies.
func findHeader(tbl *extract.Table, def *format.Definition) int {
	limit := def.SkipRows + maxHeaderScan
	if limit > len(tbl.Rows) {
		limit = len(tbl.Rows)
	}

	for i := def.SkipRows; i < limit; i++ {
		if result := format.Match(tbl.Rows[i], []*format.Definition{def}); result.Kind == format.Matched {
			return i
		}
	}

	return -1
}

// matchTable decides which of the known definitions applies to a table by
// scanning the leading rows for a header landmark, the same way a single
// definition is located. The scan window extends to cover the largest skip
// offset among the known definitions. The first row any definition matches
// settles the outcome; definitions matching that row are the candidates.
func matchTable(tbl *extract.Table, known []*format.Definition) format.MatchResult {
	maxSkip := 0
	for _, def := range known {
		if def.SkipRows > maxSkip {
			maxSkip = def.SkipRows
		}
	}

	limit := maxSkip + maxHeaderScan
	if limit > len(tbl.Rows) {
		limit = len(tbl.Rows)
	}

	for i := 0; i < limit; i++ {
		if result := format.Match(tbl.Rows[i], known); result.Kind != format.NoMatch {
			return result
		}
	}

	return format.MatchResult{Kind: format.NoMatch}
}
