// Package ledger holds the strictly validated output transaction and its
// five-column CSV serialization.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one validated ledger entry. Inflow and Outflow are never
// negative and never both positive; zero-amount entries carry 0.00 in both.
// Immutable once built by the output validator.
type Transaction struct {
	Date    time.Time
	Payee   string
	Memo    string
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
}

// DateLayout is the output date format.
const DateLayout = "2006-01-02"
