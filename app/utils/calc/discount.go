package calc

import "github.com/shopspring/decimal"

// DiscountPercent computes the derived discount of a product as a whole
// percentage. It is zero unless the original price is strictly greater than
// the current price, so the result always stays within [0, 100].
func DiscountPercent(price, originalPrice int) int {
	if originalPrice <= 0 || originalPrice <= price {
		return 0
	}

	diff := decimal.NewFromInt(int64(originalPrice - price))
	pct := diff.
		Div(decimal.NewFromInt(int64(originalPrice))).
		Mul(decimal.NewFromInt(100)).
		Round(0)

	return int(pct.IntPart())
}
