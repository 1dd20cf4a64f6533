package convert

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/MrJamesThe3rd/ledgerconv/internal/format"
)

// intermediate is one row after field mapping, before strict validation.
// Fields may be absent or malformed; the validator decides the row's fate.
type intermediate struct {
	row rawRow

	rawDate string
	date    time.Time
	dateOK  bool

	// single_signed mode
	signed   decimal.Decimal
	signedOK bool

	// debit_credit mode: both values carried through independently so a row
	// with both populated is caught at validation instead of silently summed.
	debit    decimal.Decimal
	credit   decimal.Decimal
	amountOK bool

	// raw text and column label of the failing amount cell, for errors
	rawAmount    string
	rawAmountCol string

	payee string
	memo  string
}

// resolve maps normalized rows to intermediate transactions: date (with the
// per-file auto-detected layout), amount per the definition's mode, payee
// and memo. Per-row problems are recorded on the intermediate, never raised;
// one malformed row must not abort the batch.
func resolve(log logrus.FieldLogger, rows []rawRow, header []string, def *format.Definition, memoMax int) []intermediate {
	cols := newColumnIndex(header)

	dateIdx := cols.lookup(def.Columns.Date)
	descIdx := cols.lookup(def.Columns.Description)
	amountIdx := cols.lookup(def.Columns.Amount)
	debitIdx := cols.lookup(def.Columns.Debit)
	creditIdx := cols.lookup(def.Columns.Credit)

	memoIdx := make([]int, 0, len(def.Columns.MemoSource))
	for _, label := range def.Columns.MemoSource {
		memoIdx = append(memoIdx, cols.lookup(label))
	}

	layout := def.DateFormat
	if layout == format.DateAuto {
		samples := make([]string, 0, len(rows))
		for _, r := range rows {
			samples = append(samples, cellValue(r.Cells, dateIdx))
		}

		locked, ok := detectDateLayout(samples)
		if !ok {
			log.WithField("format", def.Name).Warn("no date layout parses the sampled values; all rows will fail date resolution")
		}

		layout = locked
	}

	out := make([]intermediate, 0, len(rows))

	for _, r := range rows {
		it := intermediate{row: r}

		it.rawDate = cellValue(r.Cells, dateIdx)
		if it.rawDate != "" && layout != "" {
			if d, err := time.Parse(layout, it.rawDate); err == nil {
				it.date = d
				it.dateOK = true
			}
		}

		switch def.AmountMode {
		case format.AmountSingleSigned:
			resolveSigned(&it, amountIdx, def.InflowPositive)
		case format.AmountDebitCredit:
			resolveSplit(log, &it, debitIdx, creditIdx, def.Columns.Debit, def.Columns.Credit, def.Name)
		}

		it.payee = cellValue(r.Cells, descIdx)
		it.memo = joinMemo(r.Cells, memoIdx, memoMax)

		if it.payee == "" {
			// Fall back to the memo concatenation; an empty result becomes a
			// missing-payee row error at validation.
			it.payee = it.memo
		}

		out = append(out, it)
	}

	return out
}

func resolveSigned(it *intermediate, amountIdx int, inflowPositive bool) {
	raw := cellValue(it.row.Cells, amountIdx)
	it.rawAmount = raw

	d, err := parseAmount(raw)
	if err != nil {
		return
	}

	if !inflowPositive {
		d = d.Neg()
	}

	it.signed = d
	it.signedOK = true
}

func resolveSplit(log logrus.FieldLogger, it *intermediate, debitIdx, creditIdx int, debitCol, creditCol, formatName string) {
	debitRaw := cellValue(it.row.Cells, debitIdx)
	creditRaw := cellValue(it.row.Cells, creditIdx)

	// Blank cells are zero; only populated cells must parse.
	debit := decimal.Zero
	credit := decimal.Zero

	if debitRaw != "" {
		d, err := parseAmount(debitRaw)
		if err != nil {
			it.rawAmount = debitRaw
			it.rawAmountCol = debitCol
			return
		}

		debit = d
	}

	if creditRaw != "" {
		d, err := parseAmount(creditRaw)
		if err != nil {
			it.rawAmount = creditRaw
			it.rawAmountCol = creditCol
			return
		}

		credit = d
	}

	it.debit = debit
	it.credit = credit
	it.amountOK = true

	if !debit.IsZero() && !credit.IsZero() {
		log.WithFields(logrus.Fields{
			"format": formatName,
			"row":    it.row.Line + 1,
			"debit":  debit.String(),
			"credit": credit.String(),
		}).Warn("row has both debit and credit populated")
	}
}

func joinMemo(cells []string, memoIdx []int, maxLen int) string {
	var parts []string

	for _, idx := range memoIdx {
		if v := cellValue(cells, idx); v != "" {
			parts = append(parts, v)
		}
	}

	return truncate(strings.Join(parts, " "), maxLen)
}

// truncate caps a string at max runes, not bytes, so multi-byte payees and
// memos are never cut mid-character.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}

	r := []rune(s)
	if len(r) <= max {
		return s
	}

	return string(r[:max])
}
