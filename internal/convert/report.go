package convert

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ledgerconv/internal/ledger"
)

// Report is the aggregate result of converting one file: every normalized
// row becomes exactly one transaction or one row error, in original order,
// so len(Transactions)+len(RowErrors) == NormalizedRows always holds.
type Report struct {
	ID         uuid.UUID
	SourcePath string
	Format     string
	Sheet      string

	Transactions []ledger.Transaction
	RowErrors    []RowError

	NormalizedRows int
}

// Succeeded returns how many rows converted cleanly.
func (r *Report) Succeeded() int { return len(r.Transactions) }

// Failed returns how many rows produced row errors.
func (r *Report) Failed() int { return len(r.RowErrors) }
