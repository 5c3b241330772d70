package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeExclusive(t *testing.T) {
	t.Parallel()

	b := Compute(dec("100"), TaxExclusive, dec("15"))
	assert.True(t, b.Net.Equal(dec("100.00")), "net %s", b.Net)
	assert.True(t, b.Tax.Equal(dec("15.00")), "tax %s", b.Tax)
	assert.True(t, b.Total.Equal(dec("115.00")), "total %s", b.Total)
}

func TestComputeInclusive(t *testing.T) {
	t.Parallel()

	b := Compute(dec("115"), TaxInclusive, dec("15"))
	assert.True(t, b.Net.Equal(dec("100.00")), "net %s", b.Net)
	assert.True(t, b.Tax.Equal(dec("15.00")), "tax %s", b.Tax)
	assert.True(t, b.Total.Equal(dec("115.00")), "total %s", b.Total)
}

func TestComputeNetPlusTaxEqualsTotal(t *testing.T) {
	t.Parallel()

	// Awkward rates must still reconcile exactly after rounding.
	for _, tt := range []struct {
		price string
		typ   TaxType
		pct   string
	}{
		{"99.99", TaxExclusive, "7.25"},
		{"99.99", TaxInclusive, "7.25"},
		{"0.01", TaxExclusive, "19"},
		{"0.01", TaxInclusive, "19"},
		{"1234.56", TaxInclusive, "11"},
	} {
		b := Compute(dec(tt.price), tt.typ, dec(tt.pct))
		assert.True(t, b.Net.Add(b.Tax).Equal(b.Total),
			"%s %s %s%%: %s + %s != %s", tt.price, tt.typ, tt.pct, b.Net, b.Tax, b.Total)
	}
}

func TestComputeZeroRate(t *testing.T) {
	t.Parallel()

	b := Compute(dec("50"), TaxExclusive, decimal.Zero)
	assert.True(t, b.Tax.IsZero())
	assert.True(t, b.Total.Equal(dec("50.00")))
}

func TestComputeUnknownTypeTreatedAsExclusive(t *testing.T) {
	t.Parallel()

	b := Compute(dec("100"), TaxType("weird"), dec("10"))
	assert.True(t, b.Total.Equal(dec("110.00")))
}

func TestComputeFloat(t *testing.T) {
	t.Parallel()

	b := ComputeFloat(100, TaxExclusive, 15)
	assert.True(t, b.Total.Equal(dec("115.00")))
}

func TestMargin(t *testing.T) {
	t.Parallel()

	assert.True(t, Margin(dec("150"), dec("100")).Equal(dec("50.00")))
	assert.True(t, Margin(dec("90"), dec("100")).Equal(dec("-10.00")))
	assert.True(t, Margin(dec("10"), decimal.Zero).IsZero())
}

func TestLineTotal(t *testing.T) {
	t.Parallel()

	assert.True(t, LineTotal(dec("19.99"), dec("3")).Equal(dec("59.97")))
	assert.True(t, LineTotal(dec("4.50"), dec("0.5")).Equal(dec("2.25")))
}
