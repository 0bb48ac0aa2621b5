package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_MatchNoise(t *testing.T) {
	r := NewRules(nil)

	tests := []struct {
		line     string
		wantRule string
	}{
		{"Amount carried forward 1'234.50", "carried-forward"},
		{"amount carried forward", "carried-forward"},
		{"Exchange rate 0.9123", "exchange-rate"},
		{"EXCHANGE RATE 1.0854", "exchange-rate"},
		{"Processing surcharge 1.5%", "processing-surcharge"},
		{"Surcharge in CHF 0.75", "chf-surcharge"},
		{"USD 120.00", "foreign-amount"},
		{"  EUR 33.10", "foreign-amount"},
		{"chf 12.50", "foreign-amount"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			rule, ok := r.MatchNoise(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.wantRule, rule)
		})
	}
}

func TestRules_MatchNoise_NotNoise(t *testing.T) {
	r := NewRules(nil)

	for _, line := range []string{
		"01.03.24  03.03.24  Coop Supermarket  45.90",
		"Groceries",
		"Transactions PostFinance Visa Classic / Jane Doe",
		"",
	} {
		_, ok := r.MatchNoise(line)
		assert.False(t, ok, "line %q should not be noise", line)
	}
}

func TestRules_MatchNoise_CustomCurrencies(t *testing.T) {
	r := NewRules([]string{"JPY", "SEK"})

	_, ok := r.MatchNoise("JPY 15000.00")
	assert.True(t, ok)

	// USD is not in the configured set
	_, ok = r.MatchNoise("USD 120.00")
	assert.False(t, ok)
}

func TestRules_MatchCardHolder(t *testing.T) {
	r := NewRules(nil)

	holder, ok := r.MatchCardHolder("Transactions PostFinance Visa Classic Card CHF / Jane Doe")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", holder)

	holder, ok = r.MatchCardHolder("Transactions PostFinance Visa .../ John Q. Public  ")
	require.True(t, ok)
	assert.Equal(t, "John Q. Public", holder)

	_, ok = r.MatchCardHolder("01.03.24  03.03.24  Coop Supermarket  45.90")
	assert.False(t, ok)
}

func TestRules_MatchTransaction(t *testing.T) {
	r := NewRules(nil)

	m, ok := r.MatchTransaction("01.03.24  03.03.24  Coop Supermarket  45.90")
	require.True(t, ok)
	assert.Equal(t, "01.03.24", m.EntryDate)
	assert.Equal(t, "03.03.24", m.PurchaseDate)
	assert.Equal(t, "Coop Supermarket", m.Merchant)
	assert.Equal(t, "45.90", m.RawAmount)

	m, ok = r.MatchTransaction("05.03.24 05.03.24 Refund Merchant -12.00")
	require.True(t, ok)
	assert.Equal(t, "Refund Merchant", m.Merchant)
	assert.Equal(t, "-12.00", m.RawAmount)

	m, ok = r.MatchTransaction("15.08.24  14.08.24  Hotel Bellevue Zermatt  1'845.00")
	require.True(t, ok)
	assert.Equal(t, "Hotel Bellevue Zermatt", m.Merchant)
	assert.Equal(t, "1'845.00", m.RawAmount)
}

func TestRules_MatchTransaction_Rejections(t *testing.T) {
	r := NewRules(nil)

	for _, line := range []string{
		"01.03.24  Coop Supermarket  45.90",        // single date
		"01.03.24  03.03.24  Coop Supermarket",     // no amount
		"01.03.24  03.03.24  Coop Supermarket  45", // no decimals
		"Coop Supermarket  45.90",
		"Total 1'234.50",
		"",
	} {
		_, ok := r.MatchTransaction(line)
		assert.False(t, ok, "line %q should not match", line)
	}
}

func TestRules_IsCategory(t *testing.T) {
	r := NewRules(nil)

	assert.True(t, r.IsCategory("Groceries"))
	assert.True(t, r.IsCategory("Restaurants, bars"))
	assert.True(t, r.IsCategory("Household insurance"))

	for _, line := range []string{
		"",
		"01.03.24  03.03.24  Coop Supermarket  45.90", // next transaction
		"01.03.24 something dated",                    // starts with a date
		"Transactions PostFinance Visa Classic / Jane Doe",
		"Exchange rate 0.9123",
		"USD 120.00",
		"Total 1'234.50",
		"Transaction total 987.65",
		"Card account 1234 5678",
		"Invoice date 31.03.24",
		"Page 2/4",
	} {
		assert.False(t, r.IsCategory(line), "line %q should not be a category", line)
	}
}
