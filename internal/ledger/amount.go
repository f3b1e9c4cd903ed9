package ledger

import "github.com/shopspring/decimal"

// FormatAmount renders an amount with two decimals, the precision every
// comparison in the ledger is made at.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func sameCents(a, b decimal.Decimal) bool {
	return a.Round(2).Equal(b.Round(2))
}

func zeroCents(d decimal.Decimal) bool {
	return d.Round(2).IsZero()
}
