package calculator

import "github.com/iwvelando/paint-bid/pkg/mathutil"

// Totals applies markup percent to labor plus materials and returns the
// profit and the grand total.
func Totals(labor, materialsCost, markupPercent float64) (profit, total float64) {
	subtotal := labor + materialsCost
	profit = mathutil.ApplyPercentage(subtotal, markupPercent)
	return profit, subtotal + profit
}
