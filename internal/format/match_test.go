package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/ledgerconv/internal/format"
)

func TestMatch_SingleCandidate(t *testing.T) {
	chase := singleDef("chase")
	header := []string{"Posting Date", "Details", "Amount", "Balance"}

	got := format.Match(header, []*format.Definition{chase})
	require.Equal(t, format.Matched, got.Kind)
	assert.Same(t, chase, got.Definition)
	require.Len(t, got.Candidates, 1)
	assert.Equal(t, 1.0, got.Candidates[0].Score)
}

func TestMatch_CaseAndWhitespaceInsensitive(t *testing.T) {
	def := singleDef("chase")
	header := []string{" posting   DATE ", "details", "AMOUNT"}

	got := format.Match(header, []*format.Definition{def})
	assert.Equal(t, format.Matched, got.Kind)
}

func TestMatch_NoMatch(t *testing.T) {
	def := singleDef("chase")
	header := []string{"Datum", "Tekst", "Beløp"}

	got := format.Match(header, []*format.Definition{def})
	assert.Equal(t, format.NoMatch, got.Kind)
	assert.Nil(t, got.Definition)
	assert.Empty(t, got.Candidates)
}

func TestMatch_PartialScoreIsNotACandidate(t *testing.T) {
	def := singleDef("chase")
	// Date column present, amount column missing.
	header := []string{"Posting Date", "Details"}

	got := format.Match(header, []*format.Definition{def})
	assert.Equal(t, format.NoMatch, got.Kind)
}

func TestMatch_AmbiguousIsDeterministic(t *testing.T) {
	b := singleDef("bofa")
	a := singleDef("amex")
	header := []string{"Posting Date", "Details", "Amount"}

	for i := 0; i < 10; i++ {
		got := format.Match(header, []*format.Definition{b, a})
		require.Equal(t, format.Ambiguous, got.Kind)
		require.Len(t, got.Candidates, 2)
		// Equal scores: ordered by name.
		assert.Equal(t, "amex", got.Candidates[0].Definition.Name)
		assert.Equal(t, "bofa", got.Candidates[1].Definition.Name)
	}
}
