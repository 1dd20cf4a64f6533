package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Header is the fixed output header expected by the budgeting application.
var Header = []string{"Date", "Payee", "Memo", "Inflow", "Outflow"}

// WriteCSV serializes transactions in the fixed five-column format. Amounts
// always carry exactly two decimals regardless of input precision.
func WriteCSV(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, tx := range txs {
		record := []string{
			tx.Date.Format(DateLayout),
			tx.Payee,
			tx.Memo,
			tx.Inflow.StringFixed(2),
			tx.Outflow.StringFixed(2),
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
