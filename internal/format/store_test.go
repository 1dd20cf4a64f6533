package format_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgerconv/internal/format"
)

func TestStore_SaveAndLoadAll(t *testing.T) {
	dir := t.TempDir()
	store := format.NewStore(dir)

	def := singleDef("chase")
	def.SkipRows = 3
	def.FilterPatterns = []string{"TOTAL"}
	def.Columns.MemoSource = []string{"Details", "Type"}
	require.NoError(t, store.Save(def))

	other := singleDef("amex")
	other.AmountMode = format.AmountDebitCredit
	other.Columns.Amount = ""
	other.Columns.Debit = "Debit"
	other.Columns.Credit = "Credit"
	require.NoError(t, store.Save(other))

	defs, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, defs, 2)

	// Sorted by file name.
	assert.Equal(t, "amex", defs[0].Name)
	assert.Equal(t, "chase", defs[1].Name)

	assert.Equal(t, 3, defs[1].SkipRows)
	assert.Equal(t, []string{"TOTAL"}, defs[1].FilterPatterns)
	assert.Equal(t, []string{"Details", "Type"}, defs[1].Columns.MemoSource)
	assert.Equal(t, format.AmountDebitCredit, defs[0].AmountMode)
}

func TestStore_LoadAll_MissingDirIsEmpty(t *testing.T) {
	store := format.NewStore(filepath.Join(t.TempDir(), "nope"))

	defs, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestStore_LoadAll_RejectsInvalidDefinition(t *testing.T) {
	dir := t.TempDir()
	// Valid TOML, invalid definition: no amount columns at all.
	bad := "name = \"broken\"\ndate_format = \"auto\"\namount_mode = \"single_signed\"\n\n[columns]\ndate = \"Date\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.toml"), []byte(bad), 0o644))

	_, err := format.NewStore(dir).LoadAll()
	assert.ErrorContains(t, err, "invalid format file")
}

func TestStore_SaveRejectsInvalid(t *testing.T) {
	store := format.NewStore(t.TempDir())

	def := singleDef("chase")
	def.Columns.Date = ""
	assert.Error(t, store.Save(def))
}
