package calculator

import (
	"fmt"
	"time"

	"github.com/iwvelando/paint-bid/internal/pricing"
)

// CalculateInteriorSquareFootage prices an interior job at a flat rate per
// house square foot and applies markup. It never includes materials.
func CalculateInteriorSquareFootage(in InteriorSqftInputs, settings *pricing.Settings) BidResult {
	return CalculateInteriorSquareFootageAt(in, settings, time.Now())
}

// CalculateInteriorSquareFootageAt is CalculateInteriorSquareFootage with a
// fixed timestamp.
func CalculateInteriorSquareFootageAt(in InteriorSqftInputs, settings *pricing.Settings, now time.Time) BidResult {
	rate, _ := InteriorSqftRate(in.PricingOption, settings)
	labor := FlatRateLabor(in.HouseSquareFootage, rate)
	materials := MaterialBreakdown{Items: []MaterialItem{}}
	profit, total := Totals(labor, materials.TotalCost, in.Markup)

	return BidResult{
		Labor:     labor,
		Materials: materials,
		Profit:    profit,
		Total:     total,
		Breakdown: &InteriorSqftBreakdown{
			HouseSquareFootage: in.HouseSquareFootage,
			PricingOption:      in.PricingOption,
			RatePerSqft:        rate,
			AutoCalculations:   CalculateInteriorSqftAutoMeasurements(in.HouseSquareFootage, settings),
			Markup:             in.Markup,
		},
		Timestamp: now,
	}
}

// CalculateExteriorSquareFootage prices an exterior job at a flat rate per
// house square foot and applies markup. It never includes materials.
func CalculateExteriorSquareFootage(in ExteriorSqftInputs, settings *pricing.Settings) BidResult {
	return CalculateExteriorSquareFootageAt(in, settings, time.Now())
}

// CalculateExteriorSquareFootageAt is CalculateExteriorSquareFootage with a
// fixed timestamp.
func CalculateExteriorSquareFootageAt(in ExteriorSqftInputs, settings *pricing.Settings, now time.Time) BidResult {
	rate, _ := ExteriorSqftRate(in.PricingOption, settings)
	labor := FlatRateLabor(in.HouseSquareFootage, rate)
	materials := MaterialBreakdown{Items: []MaterialItem{}}
	profit, total := Totals(labor, materials.TotalCost, in.Markup)

	return BidResult{
		Labor:     labor,
		Materials: materials,
		Profit:    profit,
		Total:     total,
		Breakdown: &ExteriorSqftBreakdown{
			HouseSquareFootage: in.HouseSquareFootage,
			PricingOption:      in.PricingOption,
			RatePerSqft:        rate,
			AutoCalculations:   CalculateExteriorSqftAutoMeasurements(in.HouseSquareFootage, settings),
			Markup:             in.Markup,
		},
		Timestamp: now,
	}
}

// CalculateInteriorSquareFootagePlain is the older flat-rate interior
// calculation that reports labor as the total with no profit.
//
// Deprecated: use CalculateInteriorSquareFootage, which applies markup.
func CalculateInteriorSquareFootagePlain(in InteriorSqftInputs, settings *pricing.Settings) BidResult {
	result := CalculateInteriorSquareFootage(in, settings)
	result.Profit = 0
	result.Total = result.Labor
	return result
}

// CalculateExteriorSquareFootagePlain is the older flat-rate exterior
// calculation that reports labor as the total with no profit.
//
// Deprecated: use CalculateExteriorSquareFootage, which applies markup.
func CalculateExteriorSquareFootagePlain(in ExteriorSqftInputs, settings *pricing.Settings) BidResult {
	result := CalculateExteriorSquareFootage(in, settings)
	result.Profit = 0
	result.Total = result.Labor
	return result
}

// CalculateInteriorDetailed prices an itemized interior job: labor per line
// item, modifiers, paint by the gallon, then markup.
func CalculateInteriorDetailed(in InteriorDetailedInputs, settings *pricing.Settings) BidResult {
	return CalculateInteriorDetailedAt(in, settings, time.Now())
}

// CalculateInteriorDetailedAt is CalculateInteriorDetailed with a fixed
// timestamp.
func CalculateInteriorDetailedAt(in InteriorDetailedInputs, settings *pricing.Settings, now time.Time) BidResult {
	labor := AggregateInteriorLabor(in, settings)
	base := labor.BaseLabor()
	adjusted, applied := ApplyModifiers(base, in.Modifiers.Flags(), interiorModifierDefs)
	materials := CalculateInteriorMaterials(in, settings)
	profit, total := Totals(adjusted, materials.TotalCost, in.Markup)

	return BidResult{
		Labor:     adjusted,
		Materials: materials,
		Profit:    profit,
		Total:     total,
		Breakdown: &InteriorDetailedBreakdown{
			Measurements:     labor.Measurements,
			DoorsAndCabinets: labor.DoorsAndCabinets,
			PrepWork:         labor.PrepWork,
			Additional:       labor.Additional,
			BaseLabor:        base,
			ModifiersApplied: applied,
			ModifiedLabor:    adjusted,
		},
		Timestamp: now,
	}
}

// CalculateExteriorDetailed prices an itemized exterior job: labor per line
// item, modifiers, paint by the gallon, then markup.
func CalculateExteriorDetailed(in ExteriorDetailedInputs, settings *pricing.Settings) BidResult {
	return CalculateExteriorDetailedAt(in, settings, time.Now())
}

// CalculateExteriorDetailedAt is CalculateExteriorDetailed with a fixed
// timestamp.
func CalculateExteriorDetailedAt(in ExteriorDetailedInputs, settings *pricing.Settings, now time.Time) BidResult {
	labor := AggregateExteriorLabor(in, settings)
	base := labor.BaseLabor()
	adjusted, applied := ApplyModifiers(base, in.Modifiers.Flags(), exteriorModifierDefs)
	materials := CalculateExteriorMaterials(in, settings)
	profit, total := Totals(adjusted, materials.TotalCost, in.Markup)

	return BidResult{
		Labor:     adjusted,
		Materials: materials,
		Profit:    profit,
		Total:     total,
		Breakdown: &ExteriorDetailedBreakdown{
			Measurements:           labor.Measurements,
			DoorsAndShutters:       labor.DoorsAndShutters,
			PrepWork:               labor.PrepWork,
			ReplacementsAndRepairs: labor.ReplacementsAndRepairs,
			Additional:             labor.Additional,
			BaseLabor:              base,
			ModifiersApplied:       applied,
			ModifiedLabor:          adjusted,
		},
		Timestamp: now,
	}
}

// Calculate dispatches inputs to the calculator for its type.
func Calculate(inputs Inputs, settings *pricing.Settings) (BidResult, error) {
	return CalculateAt(inputs, settings, time.Now())
}

// CalculateAt is Calculate with a fixed timestamp. Both value and pointer
// inputs are accepted.
func CalculateAt(inputs Inputs, settings *pricing.Settings, now time.Time) (BidResult, error) {
	switch in := inputs.(type) {
	case InteriorSqftInputs:
		return CalculateInteriorSquareFootageAt(in, settings, now), nil
	case *InteriorSqftInputs:
		return CalculateInteriorSquareFootageAt(*in, settings, now), nil
	case ExteriorSqftInputs:
		return CalculateExteriorSquareFootageAt(in, settings, now), nil
	case *ExteriorSqftInputs:
		return CalculateExteriorSquareFootageAt(*in, settings, now), nil
	case InteriorDetailedInputs:
		return CalculateInteriorDetailedAt(in, settings, now), nil
	case *InteriorDetailedInputs:
		return CalculateInteriorDetailedAt(*in, settings, now), nil
	case ExteriorDetailedInputs:
		return CalculateExteriorDetailedAt(in, settings, now), nil
	case *ExteriorDetailedInputs:
		return CalculateExteriorDetailedAt(*in, settings, now), nil
	case nil:
		return BidResult{}, fmt.Errorf("no calculator inputs")
	}
	return BidResult{}, fmt.Errorf("unsupported calculator inputs %T", inputs)
}
