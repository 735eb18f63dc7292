package calculator

import "github.com/iwvelando/paint-bid/internal/pricing"

// rateTable is the line item rate table resolved once per calculation.
type rateTable map[string]float64

func newRateTable(settings *pricing.Settings) rateTable {
	return rateTable(settings.RateTable())
}

// rate returns the configured rate for id, or 0 when it is not configured.
func (r rateTable) rate(id string) float64 {
	return r[id]
}
