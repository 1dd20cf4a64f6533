package convert

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgerconv/internal/format"
	"github.com/MrJamesThe3rd/ledgerconv/internal/ledger"
)

// validate enforces the output contract on one intermediate transaction:
// real date, non-empty payee, non-negative mutually-exclusive inflow and
// outflow. Exactly one of the return values is set.
func validate(it intermediate, def *format.Definition, payeeMax int) (ledger.Transaction, *RowError) {
	fail := func(kind RowErrorKind, column, value, message string) (ledger.Transaction, *RowError) {
		return ledger.Transaction{}, &RowError{
			Row:     it.row.Line,
			Kind:    kind,
			Column:  column,
			Value:   value,
			Message: message,
			Raw:     it.row.Cells,
		}
	}

	if !it.dateOK {
		if it.rawDate == "" {
			return fail(RowErrMissingDate, def.Columns.Date, "", "date cell is empty")
		}

		return fail(RowErrUnparseableDate, def.Columns.Date, it.rawDate, "value does not match the file's date format")
	}

	var inflow, outflow decimal.Decimal

	switch def.AmountMode {
	case format.AmountSingleSigned:
		if !it.signedOK {
			return fail(RowErrInvalidAmount, def.Columns.Amount, it.rawAmount, "cannot parse amount")
		}

		switch {
		case it.signed.IsPositive():
			inflow = it.signed
		case it.signed.IsNegative():
			outflow = it.signed.Neg()
		}
	case format.AmountDebitCredit:
		if !it.amountOK {
			return fail(RowErrInvalidAmount, it.rawAmountCol, it.rawAmount, "cannot parse amount")
		}

		if it.debit.IsNegative() {
			return fail(RowErrInvalidAmount, def.Columns.Debit, it.debit.String(), "debit must be non-negative")
		}

		if it.credit.IsNegative() {
			return fail(RowErrInvalidAmount, def.Columns.Credit, it.credit.String(), "credit must be non-negative")
		}

		if !it.debit.IsZero() && !it.credit.IsZero() {
			return fail(RowErrConflictingAmounts, def.Columns.Debit, it.debit.String(),
				"both debit ("+it.debit.String()+") and credit ("+it.credit.String()+") are populated")
		}

		inflow = it.credit
		outflow = it.debit
	}

	payee := truncate(cleanPayee(it.payee), payeeMax)
	if payee == "" {
		return fail(RowErrMissingPayee, def.Columns.Description, it.payee, "no payee and no memo fallback")
	}

	places := int32(def.EffectiveDecimalPlaces())

	return ledger.Transaction{
		Date:    it.date,
		Payee:   payee,
		Memo:    it.memo,
		Inflow:  inflow.Round(places),
		Outflow: outflow.Round(places),
	}, nil
}

// cleanPayee strips control characters and trims surrounding whitespace.
func cleanPayee(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}

		return r
	}, s)

	return strings.TrimSpace(cleaned)
}
