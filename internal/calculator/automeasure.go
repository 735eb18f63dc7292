package calculator

import "github.com/iwvelando/paint-bid/internal/pricing"

// InteriorAutoMeasurements are interior surface estimates derived from house
// square footage.
type InteriorAutoMeasurements struct {
	WallSqft    float64 `json:"wallSqft"`
	CeilingSqft float64 `json:"ceilingSqft"`
	TrimLF      float64 `json:"trimLF"`
}

// ExteriorAutoMeasurements are exterior surface estimates derived from house
// square footage.
type ExteriorAutoMeasurements struct {
	SidingSqft float64 `json:"sidingSqft"`
	TrimLF     float64 `json:"trimLF"`
}

// CalculateInteriorSqftAutoMeasurements scales houseSqft by the interior
// multipliers.
func CalculateInteriorSqftAutoMeasurements(houseSqft float64, settings *pricing.Settings) InteriorAutoMeasurements {
	if settings == nil {
		return InteriorAutoMeasurements{}
	}
	m := settings.InteriorMultipliers
	return InteriorAutoMeasurements{
		WallSqft:    houseSqft * m.Wall,
		CeilingSqft: houseSqft * m.Ceiling,
		TrimLF:      houseSqft * m.Trim,
	}
}

// CalculateExteriorSqftAutoMeasurements scales houseSqft by the exterior
// multipliers.
func CalculateExteriorSqftAutoMeasurements(houseSqft float64, settings *pricing.Settings) ExteriorAutoMeasurements {
	if settings == nil {
		return ExteriorAutoMeasurements{}
	}
	m := settings.ExteriorMultipliers
	return ExteriorAutoMeasurements{
		SidingSqft: houseSqft * m.Siding,
		TrimLF:     houseSqft * m.Trim,
	}
}

// ApplyTo pre-populates detailed inputs after the house square footage
// changes. Wall, ceiling and trim quantities are overwritten; every other
// field is left alone.
func (a InteriorAutoMeasurements) ApplyTo(in *InteriorDetailedInputs, houseSqft float64) {
	in.HouseSquareFootage = houseSqft
	in.WallSqft = a.WallSqft
	in.CeilingSqft = a.CeilingSqft
	in.TrimLF = a.TrimLF
}

// ApplyTo pre-populates detailed inputs after the house square footage
// changes. Wall and trim quantities are overwritten.
func (a ExteriorAutoMeasurements) ApplyTo(in *ExteriorDetailedInputs, houseSqft float64) {
	in.HouseSquareFootage = houseSqft
	in.WallSqft = a.SidingSqft
	in.TrimFasciaSoffitLF = a.TrimLF
}
