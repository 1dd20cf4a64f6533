// Package format defines bank statement layouts and matches them against
// file headers. A Definition describes one bank's export once; the engine
// reuses it for every statement from that bank.
package format

import (
	"fmt"
	"strings"
)

// AmountMode determines how amounts are extracted from a row.
type AmountMode string

const (
	// AmountSingleSigned means one signed column (e.g. "Amount" = "-45.67").
	AmountSingleSigned AmountMode = "single_signed"
	// AmountDebitCredit means separate debit and credit columns.
	AmountDebitCredit AmountMode = "debit_credit"
)

// DateAuto selects the majority-parse date format heuristic instead of a
// fixed layout.
const DateAuto = "auto"

// DefaultDecimalPlaces is the input parsing precision when a definition does
// not set one.
const DefaultDecimalPlaces = 2

// ColumnMapping names the source columns a definition reads from. Date is
// always required; exactly one of Amount or Debit+Credit must be set.
type ColumnMapping struct {
	Date        string   `toml:"date"`
	Description string   `toml:"description,omitempty"`
	Amount      string   `toml:"amount,omitempty"`
	Debit       string   `toml:"debit,omitempty"`
	Credit      string   `toml:"credit,omitempty"`
	MemoSource  []string `toml:"memo_source,omitempty"`
}

// Definition describes the layout of one bank's statement export.
type Definition struct {
	Name             string        `toml:"name"`
	FilePatterns     []string      `toml:"file_patterns,omitempty"`
	SkipRows         int           `toml:"skip_rows,omitempty"`
	TrailingSkipRows int           `toml:"trailing_skip_rows,omitempty"`
	FilterPatterns   []string      `toml:"filter_patterns,omitempty"`
	Columns          ColumnMapping `toml:"columns"`
	DateFormat       string        `toml:"date_format"`
	AmountMode       AmountMode    `toml:"amount_mode"`
	InflowPositive   bool          `toml:"inflow_positive"`
	DecimalPlaces    int           `toml:"decimal_places,omitempty"`
	Sheet            string        `toml:"sheet,omitempty"`
}

// Validate checks structural invariants: a date column, exactly one amount
// mode's columns, sane skip counts.
func (d *Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("format name is required")
	}

	if strings.TrimSpace(d.Columns.Date) == "" {
		return fmt.Errorf("format %q: date column mapping is required", d.Name)
	}

	hasSingle := strings.TrimSpace(d.Columns.Amount) != ""
	hasSplit := strings.TrimSpace(d.Columns.Debit) != "" && strings.TrimSpace(d.Columns.Credit) != ""

	switch d.AmountMode {
	case AmountSingleSigned:
		if !hasSingle {
			return fmt.Errorf("format %q: amount_mode %s requires an amount column", d.Name, d.AmountMode)
		}

		if hasSplit {
			return fmt.Errorf("format %q: amount_mode %s must not map debit/credit columns", d.Name, d.AmountMode)
		}
	case AmountDebitCredit:
		if !hasSplit {
			return fmt.Errorf("format %q: amount_mode %s requires debit and credit columns", d.Name, d.AmountMode)
		}

		if hasSingle {
			return fmt.Errorf("format %q: amount_mode %s must not map an amount column", d.Name, d.AmountMode)
		}
	default:
		return fmt.Errorf("format %q: unknown amount_mode %q", d.Name, d.AmountMode)
	}

	if d.SkipRows < 0 || d.TrailingSkipRows < 0 {
		return fmt.Errorf("format %q: skip row counts must not be negative", d.Name)
	}

	if d.DecimalPlaces < 0 {
		return fmt.Errorf("format %q: decimal_places must not be negative", d.Name)
	}

	if d.DateFormat == "" {
		return fmt.Errorf("format %q: date_format is required (a layout or %q)", d.Name, DateAuto)
	}

	return nil
}

// RequiredColumns returns the source column labels that must be present in a
// file's header for this definition to apply.
func (d *Definition) RequiredColumns() []string {
	cols := []string{d.Columns.Date}

	switch d.AmountMode {
	case AmountSingleSigned:
		cols = append(cols, d.Columns.Amount)
	case AmountDebitCredit:
		cols = append(cols, d.Columns.Debit, d.Columns.Credit)
	}

	return cols
}

// EffectiveDecimalPlaces returns the configured input precision, defaulting
// to two.
func (d *Definition) EffectiveDecimalPlaces() int {
	if d.DecimalPlaces <= 0 {
		return DefaultDecimalPlaces
	}

	return d.DecimalPlaces
}

// NormalizeLabel canonicalizes a column label for comparison: lower-cased
// with runs of whitespace collapsed to single spaces.
func NormalizeLabel(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
