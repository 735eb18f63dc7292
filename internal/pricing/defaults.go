package pricing

// Line item ids read by the detailed calculators.
const (
	IntWallSqft               = "int-wall-sqft"
	IntCeilingSqft            = "int-ceiling-sqft"
	IntTrimLF                 = "int-trim-lf"
	IntDoor                   = "int-door"
	IntCabinetDoor            = "int-cabinet-door"
	IntCabinetDrawer          = "int-cabinet-drawer"
	IntNewCabinetDoor         = "int-new-cabinet-door"
	IntNewCabinetDrawer       = "int-new-cabinet-drawer"
	IntWallpaperRemovalSqft   = "int-wallpaper-removal-sqft"
	IntPrimingLF              = "int-priming-lf"
	IntPrimingSqft            = "int-priming-sqft"
	IntDrywallReplacementSqft = "int-drywall-replacement-sqft"
	IntPopcornRemovalSqft     = "int-popcorn-removal-sqft"
	IntWallTextureRemovalSqft = "int-wall-texture-removal-sqft"
	IntTrimReplacementLF      = "int-trim-replacement-lf"
	IntDrywallRepair          = "int-drywall-repair"
	IntColorAboveThree        = "int-color-above-three"
	IntAccentWall             = "int-accent-wall"
	IntMiscWorkHour           = "int-misc-work-hour"
	IntMiscellaneousDollars   = "int-miscellaneous-dollars"

	ExtWallSqft                  = "ext-wall-sqft"
	ExtTrimFasciaSoffitLF        = "ext-trim-fascia-soffit-lf"
	ExtDoor                      = "ext-door"
	ExtShutter                   = "ext-shutter"
	ExtDoorRefinish              = "ext-door-refinish"
	ExtPrimingSqft               = "ext-priming-sqft"
	ExtPrimingLF                 = "ext-priming-lf"
	ExtSidingReplacementSqft     = "ext-siding-replacement-sqft"
	ExtTrimReplacementLF         = "ext-trim-replacement-lf"
	ExtSoffitFasciaReplacementLF = "ext-soffit-fascia-replacement-lf"
	ExtBondoRepair               = "ext-bondo-repair"
	ExtDeckStainingSqft          = "ext-deck-staining-sqft"
	ExtMiscPressureWashingSqft   = "ext-misc-pressure-washing-sqft"
	ExtMiscWorkHour              = "ext-misc-work-hour"
	ExtMiscellaneousDollars      = "ext-miscellaneous-dollars"
)

// Default section ids.
const (
	SectionIntMeasurements        = "int-measurements"
	SectionIntDoorsCabinets       = "int-doors-cabinets"
	SectionIntPrepWork            = "int-prep-work"
	SectionIntAdditional          = "int-additional"
	SectionExtMeasurements        = "ext-measurements"
	SectionExtDoorsShutters       = "ext-doors-shutters"
	SectionExtPrepWork            = "ext-prep-work"
	SectionExtReplacementsRepairs = "ext-replacements-repairs"
	SectionExtAdditional          = "ext-additional"
)

// DefaultSettings returns a fresh copy of the factory pricing.
func DefaultSettings() *Settings {
	return &Settings{
		InteriorSqft: InteriorSqftRates{
			WallsOnly:    1.75,
			TrimOnly:     1.25,
			CeilingsOnly: 1.00,
			Complete:     2.50,
		},
		ExteriorSqft: ExteriorSqftRates{
			FullExterior: 2.00,
			TrimOnly:     1.35,
		},
		InteriorPaint: PaintPrices{ProMar: 25, SuperPaint: 35, Duration: 45, Emerald: 65},
		ExteriorPaint: PaintPrices{SuperPaint: 35, Duration: 45, Emerald: 65},
		InteriorCoverage: InteriorCoverage{
			WallSqftPerGallon:     250,
			CeilingSqftPerGallon:  250,
			TrimLFPerGallon:       100,
			CabinetGallonsPerDoor: 0.10,
		},
		ExteriorCoverage: ExteriorCoverage{
			WallSqftPerGallon:  200,
			TrimLFPerGallon:    100,
			DoorGallonsPerDoor: 0.10,
		},
		InteriorMultipliers: InteriorMultipliers{Wall: 3.2, Ceiling: 1.0, Trim: 0.35},
		ExteriorMultipliers: ExteriorMultipliers{Siding: 1.4, Trim: 0.30},
		MarkupOptions:       []float64{35, 40, 45, 50, 55, 60},
		CrewRates: []CrewRate{
			{CrewSize: 2, DailyRate: 1000, Description: "Default: $1,000/day"},
			{CrewSize: 3, DailyRate: 1500, Description: "Default: $1,500/day"},
			{CrewSize: 4, DailyRate: 2000, Description: "Default: $2,000/day"},
		},
		JobDurationFormulaText: "Estimated Days = Labor Cost ÷ Daily Rate",
		JobDurationExampleText: "For example, if labor cost is $3,000 and you select a 2-person crew ($1,000/day), the estimated duration is 3 days.",
		LineItems:              defaultLineItems(),
		Sections:               defaultSections(),
	}
}

func defaultLineItems() []LineItem {
	type row struct {
		id, name string
		rate     float64
		unit     Unit
	}
	groups := []struct {
		category string
		rows     []row
	}{
		{SectionIntMeasurements, []row{
			{IntWallSqft, "Wall Sq Ft", 1.00, UnitSqft},
			{IntCeilingSqft, "Ceiling Sq Ft", 0.50, UnitSqft},
			{IntTrimLF, "Trim LF", 0.75, UnitLF},
		}},
		{SectionIntDoorsCabinets, []row{
			{IntDoor, "Doors", 40, UnitEach},
			{IntCabinetDoor, "Cabinet Doors", 40, UnitEach},
			{IntCabinetDrawer, "Cabinet Drawers", 40, UnitEach},
			{IntNewCabinetDoor, "New Cabinet Doors", 60, UnitEach},
			{IntNewCabinetDrawer, "New Cabinet Drawers", 60, UnitEach},
		}},
		{SectionIntPrepWork, []row{
			{IntWallpaperRemovalSqft, "Wallpaper Removal", 2.00, UnitSqft},
			{IntPrimingLF, "Priming (Linear Feet)", 0.50, UnitLF},
			{IntPrimingSqft, "Priming (Sq Ft)", 0.50, UnitSqft},
			{IntDrywallReplacementSqft, "Drywall Replacement", 2.00, UnitSqft},
			{IntPopcornRemovalSqft, "Popcorn Removal", 1.25, UnitSqft},
			{IntWallTextureRemovalSqft, "Wall Texture Removal", 1.00, UnitSqft},
			{IntTrimReplacementLF, "Trim Replacement", 4.00, UnitLF},
			{IntDrywallRepair, "Drywall Repairs", 40, UnitEach},
		}},
		{SectionIntAdditional, []row{
			{IntColorAboveThree, "Colors Above Three", 75, UnitEach},
			{IntAccentWall, "Accent Walls", 60, UnitEach},
			{IntMiscWorkHour, "Miscellaneous Work", 50, UnitHour},
			{IntMiscellaneousDollars, "Miscellaneous (Custom)", 1, UnitDollars},
		}},
		{SectionExtMeasurements, []row{
			{ExtWallSqft, "Wall/Siding Sq Ft", 0.70, UnitSqft},
			{ExtTrimFasciaSoffitLF, "Trim/Fascia/Soffit LF", 0.50, UnitLF},
		}},
		{SectionExtDoorsShutters, []row{
			{ExtDoor, "Doors", 40, UnitEach},
			{ExtShutter, "Shutters", 25, UnitEach},
			{ExtDoorRefinish, "Doors to Refinish", 100, UnitEach},
		}},
		{SectionExtPrepWork, []row{
			{ExtPrimingSqft, "Priming (Sq Ft)", 0.50, UnitSqft},
			{ExtPrimingLF, "Priming (Linear Feet)", 0.50, UnitLF},
		}},
		{SectionExtReplacementsRepairs, []row{
			{ExtSidingReplacementSqft, "Siding Replacement", 2.00, UnitSqft},
			{ExtTrimReplacementLF, "Trim Replacement", 4.00, UnitLF},
			{ExtSoffitFasciaReplacementLF, "Soffit/Fascia Replacement", 8.00, UnitLF},
			{ExtBondoRepair, "Bondo Repairs", 30, UnitEach},
		}},
		{SectionExtAdditional, []row{
			{ExtDeckStainingSqft, "Deck Staining", 1.00, UnitSqft},
			{ExtMiscPressureWashingSqft, "Pressure Washing", 0.50, UnitSqft},
			{ExtMiscWorkHour, "Miscellaneous Work", 50, UnitHour},
			{ExtMiscellaneousDollars, "Miscellaneous (Custom)", 1, UnitDollars},
		}},
	}

	var items []LineItem
	for _, group := range groups {
		for i, r := range group.rows {
			items = append(items, LineItem{
				ID:        r.id,
				Name:      r.name,
				Rate:      r.rate,
				Unit:      r.unit,
				Category:  group.category,
				IsDefault: true,
				Order:     i + 1,
			})
		}
	}
	return items
}

func defaultSections() []Section {
	return []Section{
		{ID: SectionIntMeasurements, Name: "Measurements", CalculatorType: InteriorDetailed, IsDefault: true, Order: 1},
		{ID: SectionIntDoorsCabinets, Name: "Doors & Cabinets", CalculatorType: InteriorDetailed, IsDefault: true, Order: 2},
		{ID: SectionIntPrepWork, Name: "Prep Work", CalculatorType: InteriorDetailed, IsDefault: true, Order: 3},
		{ID: SectionIntAdditional, Name: "Additional Work", CalculatorType: InteriorDetailed, IsDefault: true, Order: 4},
		{ID: SectionExtMeasurements, Name: "Measurements", CalculatorType: ExteriorDetailed, IsDefault: true, Order: 1},
		{ID: SectionExtDoorsShutters, Name: "Doors & Shutters", CalculatorType: ExteriorDetailed, IsDefault: true, Order: 2},
		{ID: SectionExtPrepWork, Name: "Prep Work", CalculatorType: ExteriorDetailed, IsDefault: true, Order: 3},
		{ID: SectionExtReplacementsRepairs, Name: "Replacements & Repairs", CalculatorType: ExteriorDetailed, IsDefault: true, Order: 4},
		{ID: SectionExtAdditional, Name: "Additional Work", CalculatorType: ExteriorDetailed, IsDefault: true, Order: 5},
	}
}
