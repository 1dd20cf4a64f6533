package ledger_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgerconv/internal/ledger"
)

func TestWriteCSV(t *testing.T) {
	txs := []ledger.Transaction{
		{
			Date:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Payee:   "Amazon.com",
			Memo:    "Online purchase",
			Inflow:  decimal.Zero,
			Outflow: decimal.RequireFromString("45.67"),
		},
		{
			Date:    time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			Payee:   "PAYROLL DEPOSIT",
			Inflow:  decimal.RequireFromString("3500"),
			Outflow: decimal.Zero,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ledger.WriteCSV(&buf, txs))

	want := "Date,Payee,Memo,Inflow,Outflow\n" +
		"2024-01-15,Amazon.com,Online purchase,0.00,45.67\n" +
		"2024-01-16,PAYROLL DEPOSIT,,3500.00,0.00\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_QuotesFieldsWithCommas(t *testing.T) {
	txs := []ledger.Transaction{
		{
			Date:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Payee:   "Store, Inc.",
			Inflow:  decimal.Zero,
			Outflow: decimal.RequireFromString("1.5"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ledger.WriteCSV(&buf, txs))

	assert.Contains(t, buf.String(), "\"Store, Inc.\",,0.00,1.50")
}

func TestWriteCSV_EmptyBatchStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ledger.WriteCSV(&buf, nil))
	assert.Equal(t, "Date,Payee,Memo,Inflow,Outflow\n", buf.String())
}
