package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgerconv/internal/format"
)

func TestFindHeader_SkipsBannerRows(t *testing.T) {
	tbl := table(
		[]string{"Account statement", "0000"},
		[]string{"Customer", "JOHN DOE"},
		[]string{"Posting Date", "Details", "Amount", "Balance"},
		[]string{"2024-01-15", "AMAZON", "-45.67", "954.33"},
	)

	def := &format.Definition{
		Name:       "chase",
		Columns:    format.ColumnMapping{Date: "Posting Date", Amount: "Amount"},
		AmountMode: format.AmountSingleSigned,
		DateFormat: format.DateAuto,
	}

	assert.Equal(t, 2, findHeader(tbl, def))
}

func TestFindHeader_RespectsSkipOffset(t *testing.T) {
	// A banner row that happens to contain the required labels is ignored
	// when skip_rows points past it.
	tbl := table(
		[]string{"Posting Date", "Amount"},
		[]string{"Posting Date", "Details", "Amount"},
		[]string{"2024-01-15", "AMAZON", "-45.67"},
	)

	def := &format.Definition{
		Name:       "chase",
		Columns:    format.ColumnMapping{Date: "Posting Date", Amount: "Amount"},
		AmountMode: format.AmountSingleSigned,
		DateFormat: format.DateAuto,
		SkipRows:   1,
	}

	assert.Equal(t, 1, findHeader(tbl, def))
}

func TestFindHeader_WindowIsRelativeToSkipOffset(t *testing.T) {
	var rows [][]string
	for i := 0; i < 26; i++ {
		rows = append(rows, []string{"Some banner line", "notes"})
	}
	rows = append(rows,
		[]string{"Posting Date", "Details", "Amount"},
		[]string{"2024-01-15", "AMAZON", "-45.67"},
	)

	def := &format.Definition{
		Name:       "chase",
		Columns:    format.ColumnMapping{Date: "Posting Date", Amount: "Amount"},
		AmountMode: format.AmountSingleSigned,
		DateFormat: format.DateAuto,
		SkipRows:   26,
	}

	tbl := table(rows...)

	assert.Equal(t, 26, findHeader(tbl, def))

	result := matchTable(tbl, []*format.Definition{def})
	require.Equal(t, format.Matched, result.Kind)
}

func TestFindHeader_NotFound(t *testing.T) {
	tbl := table(
		[]string{"Datum", "Tekst", "Belopp"},
		[]string{"2024-01-15", "Affär", "-45.67"},
	)

	def := &format.Definition{
		Name:       "chase",
		Columns:    format.ColumnMapping{Date: "Posting Date", Amount: "Amount"},
		AmountMode: format.AmountSingleSigned,
		DateFormat: format.DateAuto,
	}

	assert.Equal(t, -1, findHeader(tbl, def))
}

func TestMatchTable_FirstMatchingRowSettlesCandidates(t *testing.T) {
	tbl := table(
		[]string{"Kontoauszug"},
		[]string{"Posting Date", "Details", "Amount"},
	)

	a := &format.Definition{
		Name:       "alpha",
		Columns:    format.ColumnMapping{Date: "Posting Date", Amount: "Amount"},
		AmountMode: format.AmountSingleSigned,
		DateFormat: format.DateAuto,
	}
	b := &format.Definition{
		Name:       "beta",
		Columns:    format.ColumnMapping{Date: "Posting Date", Amount: "Amount"},
		AmountMode: format.AmountSingleSigned,
		DateFormat: format.DateAuto,
	}

	result := matchTable(tbl, []*format.Definition{b, a})
	require.Equal(t, format.Ambiguous, result.Kind)
	assert.Equal(t, "alpha", result.Candidates[0].Definition.Name)
	assert.Equal(t, "beta", result.Candidates[1].Definition.Name)
}
