// Package convert implements the format resolution and conversion engine:
// raw statement tables in, validated ledger transactions and per-row errors
// out. The engine holds no shared mutable state; one Converter may run many
// files in parallel as long as each call gets its own table.
package convert

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/MrJamesThe3rd/ledgerconv/internal/extract"
	"github.com/MrJamesThe3rd/ledgerconv/internal/format"
)

// Default field caps, overridable via Options.
const (
	DefaultPayeeMaxLength = 100
	DefaultMemoMaxLength  = 200
)

// Options tunes the engine's output contract knobs.
type Options struct {
	PayeeMaxLength int
	MemoMaxLength  int
	Logger         logrus.FieldLogger
}

// Converter runs the per-file pipeline: extract, match, normalize, resolve,
// validate, report. Fatal errors (unreadable container, no applicable
// format) abort the file; everything after normalization is row-scoped.
type Converter struct {
	payeeMax int
	memoMax  int
	log      logrus.FieldLogger
}

// New builds a Converter, filling unset options with defaults.
func New(opts Options) *Converter {
	if opts.PayeeMaxLength <= 0 {
		opts.PayeeMaxLength = DefaultPayeeMaxLength
	}

	if opts.MemoMaxLength <= 0 {
		opts.MemoMaxLength = DefaultMemoMaxLength
	}

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Converter{
		payeeMax: opts.PayeeMaxLength,
		memoMax:  opts.MemoMaxLength,
		log:      log,
	}
}

// ConvertFile extracts the file at path and converts it under the given
// definition. The definition is an explicit parameter on every call; the
// engine never reads an ambient "selected format".
func (c *Converter) ConvertFile(path string, def *format.Definition) (*Report, error) {
	tbl, err := extract.Extract(path, def.Sheet)
	if err != nil {
		return nil, err
	}

	return c.Convert(tbl, def)
}

// MatchFile extracts just enough of the file to decide which of the known
// definitions applies. Returns a MatchError for no-match and ambiguous
// outcomes; the ambiguous candidate order is deterministic.
func (c *Converter) MatchFile(path string, known []*format.Definition) (*format.Definition, error) {
	tbl, err := extract.Extract(path, "")
	if err != nil {
		return nil, err
	}

	result := matchTable(tbl, known)

	switch result.Kind {
	case format.Matched:
		return result.Definition, nil
	case format.Ambiguous:
		names := make([]string, 0, len(result.Candidates))
		for _, cand := range result.Candidates {
			names = append(names, cand.Definition.Name)
		}

		return nil, &MatchError{Path: path, Candidates: names}
	default:
		return nil, &MatchError{Path: path, Header: tbl.Header}
	}
}

// Convert runs the pipeline on an already extracted table. The definition
// must apply to some leading row of the table; a definition whose required
// columns appear nowhere is a MatchError, not a pile of row errors.
func (c *Converter) Convert(tbl *extract.Table, def *format.Definition) (*Report, error) {
	headerIdx := findHeader(tbl, def)
	if headerIdx < 0 {
		return nil, &MatchError{Path: tbl.Path, Header: tbl.Header}
	}

	rows := normalize(tbl, def, headerIdx)
	resolved := resolve(c.log, rows, tbl.Rows[headerIdx], def, c.memoMax)

	report := &Report{
		ID:             uuid.New(),
		SourcePath:     tbl.Path,
		Format:         def.Name,
		Sheet:          tbl.Sheet,
		NormalizedRows: len(rows),
	}

	for _, it := range resolved {
		tx, rowErr := validate(it, def, c.payeeMax)
		if rowErr != nil {
			report.RowErrors = append(report.RowErrors, *rowErr)
			continue
		}

		report.Transactions = append(report.Transactions, tx)
	}

	c.log.WithFields(logrus.Fields{
		"report_id": report.ID,
		"file":      tbl.Path,
		"format":    def.Name,
		"rows":      report.NormalizedRows,
		"converted": report.Succeeded(),
		"failed":    report.Failed(),
	}).Info("converted statement")

	return report, nil
}
