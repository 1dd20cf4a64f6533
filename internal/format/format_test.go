package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/ledgerconv/internal/format"
)

func singleDef(name string) *format.Definition {
	return &format.Definition{
		Name: name,
		Columns: format.ColumnMapping{
			Date:        "Posting Date",
			Description: "Details",
			Amount:      "Amount",
		},
		DateFormat:     format.DateAuto,
		AmountMode:     format.AmountSingleSigned,
		InflowPositive: true,
	}
}

func TestDefinition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*format.Definition)
		wantErr string
	}{
		{
			name:   "valid single signed",
			mutate: func(*format.Definition) {},
		},
		{
			name: "valid debit credit",
			mutate: func(d *format.Definition) {
				d.AmountMode = format.AmountDebitCredit
				d.Columns.Amount = ""
				d.Columns.Debit = "Debit"
				d.Columns.Credit = "Credit"
			},
		},
		{
			name:    "missing date column",
			mutate:  func(d *format.Definition) { d.Columns.Date = "" },
			wantErr: "date column",
		},
		{
			name:    "missing name",
			mutate:  func(d *format.Definition) { d.Name = " " },
			wantErr: "name",
		},
		{
			name: "single mode without amount column",
			mutate: func(d *format.Definition) {
				d.Columns.Amount = ""
			},
			wantErr: "requires an amount column",
		},
		{
			name: "single mode with debit credit mapped too",
			mutate: func(d *format.Definition) {
				d.Columns.Debit = "Debit"
				d.Columns.Credit = "Credit"
			},
			wantErr: "must not map debit/credit",
		},
		{
			name: "debit credit mode with only debit",
			mutate: func(d *format.Definition) {
				d.AmountMode = format.AmountDebitCredit
				d.Columns.Amount = ""
				d.Columns.Debit = "Debit"
			},
			wantErr: "requires debit and credit",
		},
		{
			name:    "unknown amount mode",
			mutate:  func(d *format.Definition) { d.AmountMode = "net" },
			wantErr: "unknown amount_mode",
		},
		{
			name:    "negative skip rows",
			mutate:  func(d *format.Definition) { d.SkipRows = -1 },
			wantErr: "skip row counts",
		},
		{
			name:    "missing date format",
			mutate:  func(d *format.Definition) { d.DateFormat = "" },
			wantErr: "date_format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := singleDef("chase")
			tt.mutate(def)

			err := def.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDefinition_RequiredColumns(t *testing.T) {
	def := singleDef("chase")
	assert.Equal(t, []string{"Posting Date", "Amount"}, def.RequiredColumns())

	def.AmountMode = format.AmountDebitCredit
	def.Columns.Amount = ""
	def.Columns.Debit = "Débito"
	def.Columns.Credit = "Crédito"
	assert.Equal(t, []string{"Posting Date", "Débito", "Crédito"}, def.RequiredColumns())
}

func TestDefinition_EffectiveDecimalPlaces(t *testing.T) {
	def := singleDef("chase")
	assert.Equal(t, 2, def.EffectiveDecimalPlaces())

	def.DecimalPlaces = 3
	assert.Equal(t, 3, def.EffectiveDecimalPlaces())
}

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, "posting date", format.NormalizeLabel("  Posting   Date "))
	assert.Equal(t, "amount", format.NormalizeLabel("AMOUNT"))
}
