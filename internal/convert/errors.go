package convert

import (
	"fmt"
	"strings"
)

// RowErrorKind classifies per-row conversion failures.
type RowErrorKind string

const (
	RowErrMissingDate        RowErrorKind = "missing_date"
	RowErrUnparseableDate    RowErrorKind = "unparseable_date"
	RowErrInvalidAmount      RowErrorKind = "invalid_amount"
	RowErrMissingPayee       RowErrorKind = "missing_payee"
	RowErrConflictingAmounts RowErrorKind = "conflicting_amounts"
)

// RowError is a non-fatal, per-row conversion failure. It carries enough
// context (row index, column, raw value, row snapshot) to act on without
// reopening the source file.
type RowError struct {
	Row     int // 0-based physical row index in the source file
	Kind    RowErrorKind
	Column  string
	Value   string
	Message string
	Raw     []string
}

func (e *RowError) Error() string {
	msg := fmt.Sprintf("row %d: %s", e.Row+1, e.Kind)
	if e.Column != "" {
		msg += fmt.Sprintf(" (%s=%q)", e.Column, e.Value)
	}

	if e.Message != "" {
		msg += ": " + e.Message
	}

	return msg
}

// MatchError reports that no saved format applies to a file, or that several
// do. Fatal for the whole file. Candidates is empty for no-match and holds
// the ordered candidate format names when ambiguous. Header carries the
// file's detected column row on no-match, so the user sees what the file
// actually looks like.
type MatchError struct {
	Path       string
	Candidates []string
	Header     []string
}

func (e *MatchError) Error() string {
	if len(e.Candidates) == 0 {
		msg := fmt.Sprintf("no saved format matches %s", e.Path)
		if len(e.Header) > 0 {
			msg += fmt.Sprintf(" (detected columns: %s)", strings.Join(e.Header, ", "))
		}

		return msg
	}

	return fmt.Sprintf("ambiguous format match for %s: %s", e.Path, strings.Join(e.Candidates, ", "))
}

// Ambiguous reports whether the error is an ambiguous match rather than a
// plain no-match.
func (e *MatchError) Ambiguous() bool { return len(e.Candidates) > 0 }
