package calculator

import "github.com/iwvelando/paint-bid/internal/pricing"

// InteriorLabor is the category-grouped labor of an itemized interior bid.
type InteriorLabor struct {
	Measurements     InteriorMeasurementsLabor
	DoorsAndCabinets DoorsAndCabinetsLabor
	PrepWork         InteriorPrepWorkLabor
	Additional       InteriorAdditionalLabor
}

// BaseLabor is the sum of every category subtotal.
func (l InteriorLabor) BaseLabor() float64 {
	return l.Measurements.Subtotal() + l.DoorsAndCabinets.Subtotal() +
		l.PrepWork.Subtotal() + l.Additional.Subtotal()
}

// ExteriorLabor is the category-grouped labor of an itemized exterior bid.
type ExteriorLabor struct {
	Measurements           ExteriorMeasurementsLabor
	DoorsAndShutters       DoorsAndShuttersLabor
	PrepWork               ExteriorPrepWorkLabor
	ReplacementsAndRepairs ReplacementsAndRepairsLabor
	Additional             ExteriorAdditionalLabor
}

// BaseLabor is the sum of every category subtotal.
func (l ExteriorLabor) BaseLabor() float64 {
	return l.Measurements.Subtotal() + l.DoorsAndShutters.Subtotal() + l.PrepWork.Subtotal() +
		l.ReplacementsAndRepairs.Subtotal() + l.Additional.Subtotal()
}

// AggregateInteriorLabor multiplies each interior quantity by its line item
// rate. Quantities are not clamped.
func AggregateInteriorLabor(in InteriorDetailedInputs, settings *pricing.Settings) InteriorLabor {
	rates := newRateTable(settings)
	return InteriorLabor{
		Measurements: InteriorMeasurementsLabor{
			Walls:    in.WallSqft * rates.rate(pricing.IntWallSqft),
			Ceilings: in.CeilingSqft * rates.rate(pricing.IntCeilingSqft),
			Trim:     in.TrimLF * rates.rate(pricing.IntTrimLF),
		},
		DoorsAndCabinets: DoorsAndCabinetsLabor{
			Doors:             in.Doors * rates.rate(pricing.IntDoor),
			CabinetDoors:      in.CabinetDoors * rates.rate(pricing.IntCabinetDoor),
			CabinetDrawers:    in.CabinetDrawers * rates.rate(pricing.IntCabinetDrawer),
			NewCabinetDoors:   in.NewCabinetDoors * rates.rate(pricing.IntNewCabinetDoor),
			NewCabinetDrawers: in.NewCabinetDrawers * rates.rate(pricing.IntNewCabinetDrawer),
		},
		PrepWork: InteriorPrepWorkLabor{
			WallpaperRemoval: in.WallpaperRemovalSqft * rates.rate(pricing.IntWallpaperRemovalSqft),
			Priming: in.PrimingLF*rates.rate(pricing.IntPrimingLF) +
				in.PrimingSqft*rates.rate(pricing.IntPrimingSqft),
			DrywallReplacement: in.DrywallReplacementSqft * rates.rate(pricing.IntDrywallReplacementSqft),
			PopcornRemoval:     in.PopcornRemovalSqft * rates.rate(pricing.IntPopcornRemovalSqft),
			WallTextureRemoval: in.WallTextureRemovalSqft * rates.rate(pricing.IntWallTextureRemovalSqft),
			TrimReplacement:    in.TrimReplacementLF * rates.rate(pricing.IntTrimReplacementLF),
			DrywallRepairs:     in.DrywallRepairs * rates.rate(pricing.IntDrywallRepair),
		},
		Additional: InteriorAdditionalLabor{
			ColorsAboveThree: in.ColorsAboveThree * rates.rate(pricing.IntColorAboveThree),
			AccentWalls:      in.AccentWalls * rates.rate(pricing.IntAccentWall),
			MiscWork:         in.MiscWorkHours * rates.rate(pricing.IntMiscWorkHour),
			Miscellaneous:    in.MiscellaneousDollars * rates.rate(pricing.IntMiscellaneousDollars),
		},
	}
}

// AggregateExteriorLabor multiplies each exterior quantity by its line item
// rate. Quantities are not clamped.
func AggregateExteriorLabor(in ExteriorDetailedInputs, settings *pricing.Settings) ExteriorLabor {
	rates := newRateTable(settings)
	return ExteriorLabor{
		Measurements: ExteriorMeasurementsLabor{
			Walls:            in.WallSqft * rates.rate(pricing.ExtWallSqft),
			TrimFasciaSoffit: in.TrimFasciaSoffitLF * rates.rate(pricing.ExtTrimFasciaSoffitLF),
		},
		DoorsAndShutters: DoorsAndShuttersLabor{
			Doors:           in.Doors * rates.rate(pricing.ExtDoor),
			Shutters:        in.Shutters * rates.rate(pricing.ExtShutter),
			DoorsToRefinish: in.DoorsToRefinish * rates.rate(pricing.ExtDoorRefinish),
		},
		PrepWork: ExteriorPrepWorkLabor{
			Priming: in.PrimingSqft*rates.rate(pricing.ExtPrimingSqft) +
				in.PrimingLF*rates.rate(pricing.ExtPrimingLF),
		},
		ReplacementsAndRepairs: ReplacementsAndRepairsLabor{
			SidingReplacement:       in.SidingReplacementSqft * rates.rate(pricing.ExtSidingReplacementSqft),
			TrimReplacement:         in.TrimReplacementLF * rates.rate(pricing.ExtTrimReplacementLF),
			SoffitFasciaReplacement: in.SoffitFasciaReplacementLF * rates.rate(pricing.ExtSoffitFasciaReplacementLF),
			BondoRepairs:            in.BondoRepairs * rates.rate(pricing.ExtBondoRepair),
		},
		Additional: ExteriorAdditionalLabor{
			DeckStaining:        in.DeckStainingSqft * rates.rate(pricing.ExtDeckStainingSqft),
			MiscPressureWashing: in.MiscPressureWashingSqft * rates.rate(pricing.ExtMiscPressureWashingSqft),
			MiscWork:            in.MiscWorkHours * rates.rate(pricing.ExtMiscWorkHour),
			Miscellaneous:       in.MiscellaneousDollars * rates.rate(pricing.ExtMiscellaneousDollars),
		},
	}
}

// InteriorSqftRate returns the flat rate configured for option. Unknown
// options report false and price at zero.
func InteriorSqftRate(option InteriorSqftOption, settings *pricing.Settings) (float64, bool) {
	if settings == nil {
		return 0, false
	}
	switch option {
	case WallsOnly:
		return settings.InteriorSqft.WallsOnly, true
	case InteriorTrimOnly:
		return settings.InteriorSqft.TrimOnly, true
	case CeilingsOnly:
		return settings.InteriorSqft.CeilingsOnly, true
	case Complete:
		return settings.InteriorSqft.Complete, true
	}
	return 0, false
}

// ExteriorSqftRate returns the flat rate configured for option. Unknown
// options report false and price at zero.
func ExteriorSqftRate(option ExteriorSqftOption, settings *pricing.Settings) (float64, bool) {
	if settings == nil {
		return 0, false
	}
	switch option {
	case FullExterior:
		return settings.ExteriorSqft.FullExterior, true
	case ExteriorTrimOnly:
		return settings.ExteriorSqft.TrimOnly, true
	}
	return 0, false
}

// FlatRateLabor is house square footage times the selected flat rate.
func FlatRateLabor(houseSquareFootage, ratePerSqft float64) float64 {
	return houseSquareFootage * ratePerSqft
}
