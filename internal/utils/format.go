package utils

import (
	"github.com/dustin/go-humanize"
)

// FormatCurrency renders an amount as a dollar string with thousands
// separators and two decimals, e.g. "$5,418.00". Negative amounts render as
// "-$200.00".
func FormatCurrency(amount float64) string {
	if amount < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -amount)
	}
	return "$" + humanize.FormatFloat("#,###.##", amount)
}

// FormatPercent renders a percentage with two decimals, e.g. "54.18%".
func FormatPercent(percent float64) string {
	return humanize.FormatFloat("#,###.##", percent) + "%"
}
