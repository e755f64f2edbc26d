package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var money = accounting.Accounting{Symbol: "", Precision: 0, Thousand: ","}

// Price renders an integer price for admin listings, e.g. 1250000 -> "1,250,000".
func Price(amount int) string {
	return money.FormatMoney(decimal.NewFromInt(int64(amount)))
}
