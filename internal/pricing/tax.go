package pricing

import "github.com/shopspring/decimal"

// TaxType selects how a product price relates to its tax.
type TaxType string

const (
	// TaxExclusive means tax is added on top of the listed price.
	TaxExclusive TaxType = "exclusive"
	// TaxInclusive means the listed price already contains the tax.
	TaxInclusive TaxType = "inclusive"
)

// Breakdown is the result of a tax computation, rounded to two decimal
// places. Net + Tax always equals Total.
type Breakdown struct {
	Net   decimal.Decimal `json:"net"`
	Tax   decimal.Decimal `json:"tax"`
	Total decimal.Decimal `json:"total"`
}

var oneHundred = decimal.NewFromInt(100)

// Compute breaks a price down into net, tax and total amounts for the given
// tax type and percentage. An unrecognized tax type is treated as exclusive.
func Compute(price decimal.Decimal, taxType TaxType, percentage decimal.Decimal) Breakdown {
	rate := percentage.Div(oneHundred)

	if taxType == TaxInclusive {
		total := price.Round(2)
		net := price.Div(decimal.NewFromInt(1).Add(rate)).Round(2)
		return Breakdown{Net: net, Tax: total.Sub(net), Total: total}
	}

	net := price.Round(2)
	total := price.Mul(decimal.NewFromInt(1).Add(rate)).Round(2)
	return Breakdown{Net: net, Tax: total.Sub(net), Total: total}
}

// ComputeFloat is a convenience wrapper for callers holding float64 amounts,
// as the product records do.
func ComputeFloat(price float64, taxType TaxType, percentage float64) Breakdown {
	return Compute(decimal.NewFromFloat(price), taxType, decimal.NewFromFloat(percentage))
}

// Margin returns the profit margin between a selling price and a cost price
// as a percentage of the cost, rounded to two decimal places. A zero cost
// yields a zero margin.
func Margin(price, cost decimal.Decimal) decimal.Decimal {
	if cost.IsZero() {
		return decimal.Zero
	}
	return price.Sub(cost).Div(cost).Mul(oneHundred).Round(2)
}

// LineTotal multiplies a unit price by a quantity, rounded to two decimal
// places. Quantities are decimal because weighed items sell in fractions.
func LineTotal(unitPrice, quantity decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(quantity).Round(2)
}
