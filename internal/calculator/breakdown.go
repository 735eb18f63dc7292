package calculator

import "github.com/iwvelando/paint-bid/internal/pricing"

// Breakdown is the calculator-specific detail attached to a BidResult. The
// concrete type is one of *InteriorSqftBreakdown, *ExteriorSqftBreakdown,
// *InteriorDetailedBreakdown or *ExteriorDetailedBreakdown.
type Breakdown interface {
	CalculatorType() CalculatorType
}

// InteriorSqftBreakdown details an interior square footage bid.
type InteriorSqftBreakdown struct {
	HouseSquareFootage float64                  `json:"houseSquareFootage"`
	PricingOption      InteriorSqftOption       `json:"pricingOption"`
	RatePerSqft        float64                  `json:"ratePerSqft"`
	AutoCalculations   InteriorAutoMeasurements `json:"autoCalculations"`
	Markup             float64                  `json:"markup"`
}

// ExteriorSqftBreakdown details an exterior square footage bid.
type ExteriorSqftBreakdown struct {
	HouseSquareFootage float64                  `json:"houseSquareFootage"`
	PricingOption      ExteriorSqftOption       `json:"pricingOption"`
	RatePerSqft        float64                  `json:"ratePerSqft"`
	AutoCalculations   ExteriorAutoMeasurements `json:"autoCalculations"`
	Markup             float64                  `json:"markup"`
}

// InteriorMeasurementsLabor is labor for painting the main interior surfaces.
type InteriorMeasurementsLabor struct {
	Walls    float64 `json:"walls"`
	Ceilings float64 `json:"ceilings"`
	Trim     float64 `json:"trim"`
}

func (l InteriorMeasurementsLabor) Subtotal() float64 {
	return l.Walls + l.Ceilings + l.Trim
}

// DoorsAndCabinetsLabor is per-unit labor for doors and cabinetry.
type DoorsAndCabinetsLabor struct {
	Doors             float64 `json:"doors"`
	CabinetDoors      float64 `json:"cabinetDoors"`
	CabinetDrawers    float64 `json:"cabinetDrawers"`
	NewCabinetDoors   float64 `json:"newCabinetDoors"`
	NewCabinetDrawers float64 `json:"newCabinetDrawers"`
}

func (l DoorsAndCabinetsLabor) Subtotal() float64 {
	return l.Doors + l.CabinetDoors + l.CabinetDrawers + l.NewCabinetDoors + l.NewCabinetDrawers
}

// InteriorPrepWorkLabor is surface preparation labor. Priming combines the
// linear-foot and square-foot priming lines.
type InteriorPrepWorkLabor struct {
	WallpaperRemoval   float64 `json:"wallpaperRemoval"`
	Priming            float64 `json:"priming"`
	DrywallReplacement float64 `json:"drywallReplacement"`
	PopcornRemoval     float64 `json:"popcornRemoval"`
	WallTextureRemoval float64 `json:"wallTextureRemoval"`
	TrimReplacement    float64 `json:"trimReplacement"`
	DrywallRepairs     float64 `json:"drywallRepairs"`
}

func (l InteriorPrepWorkLabor) Subtotal() float64 {
	return l.WallpaperRemoval + l.Priming + l.DrywallReplacement + l.PopcornRemoval +
		l.WallTextureRemoval + l.TrimReplacement + l.DrywallRepairs
}

// InteriorAdditionalLabor covers extra colors, accent walls and misc work.
type InteriorAdditionalLabor struct {
	ColorsAboveThree float64 `json:"colorsAboveThree"`
	AccentWalls      float64 `json:"accentWalls"`
	MiscWork         float64 `json:"miscWork"`
	Miscellaneous    float64 `json:"miscellaneous"`
}

func (l InteriorAdditionalLabor) Subtotal() float64 {
	return l.ColorsAboveThree + l.AccentWalls + l.MiscWork + l.Miscellaneous
}

// InteriorDetailedBreakdown details an itemized interior bid.
type InteriorDetailedBreakdown struct {
	Measurements     InteriorMeasurementsLabor `json:"measurements"`
	DoorsAndCabinets DoorsAndCabinetsLabor     `json:"doorsAndCabinets"`
	PrepWork         InteriorPrepWorkLabor     `json:"prepWork"`
	Additional       InteriorAdditionalLabor   `json:"additional"`
	BaseLabor        float64                   `json:"baseLabor"`
	ModifiersApplied []string                  `json:"modifiersApplied"`
	ModifiedLabor    float64                   `json:"modifiedLabor"`
}

// ExteriorMeasurementsLabor is labor for painting the main exterior surfaces.
type ExteriorMeasurementsLabor struct {
	Walls            float64 `json:"walls"`
	TrimFasciaSoffit float64 `json:"trimFasciaSoffit"`
}

func (l ExteriorMeasurementsLabor) Subtotal() float64 {
	return l.Walls + l.TrimFasciaSoffit
}

// DoorsAndShuttersLabor is per-unit labor for doors and shutters.
type DoorsAndShuttersLabor struct {
	Doors           float64 `json:"doors"`
	Shutters        float64 `json:"shutters"`
	DoorsToRefinish float64 `json:"doorsToRefinish"`
}

func (l DoorsAndShuttersLabor) Subtotal() float64 {
	return l.Doors + l.Shutters + l.DoorsToRefinish
}

// ExteriorPrepWorkLabor is exterior priming by area plus by length.
type ExteriorPrepWorkLabor struct {
	Priming float64 `json:"priming"`
}

func (l ExteriorPrepWorkLabor) Subtotal() float64 {
	return l.Priming
}

// ReplacementsAndRepairsLabor covers carpentry and patching on the exterior.
type ReplacementsAndRepairsLabor struct {
	SidingReplacement       float64 `json:"sidingReplacement"`
	TrimReplacement         float64 `json:"trimReplacement"`
	SoffitFasciaReplacement float64 `json:"soffitFasciaReplacement"`
	BondoRepairs            float64 `json:"bondoRepairs"`
}

func (l ReplacementsAndRepairsLabor) Subtotal() float64 {
	return l.SidingReplacement + l.TrimReplacement + l.SoffitFasciaReplacement + l.BondoRepairs
}

// ExteriorAdditionalLabor covers decks, pressure washing and misc work.
type ExteriorAdditionalLabor struct {
	DeckStaining        float64 `json:"deckStaining"`
	MiscPressureWashing float64 `json:"miscPressureWashing"`
	MiscWork            float64 `json:"miscWork"`
	Miscellaneous       float64 `json:"miscellaneous"`
}

func (l ExteriorAdditionalLabor) Subtotal() float64 {
	return l.DeckStaining + l.MiscPressureWashing + l.MiscWork + l.Miscellaneous
}

// ExteriorDetailedBreakdown details an itemized exterior bid.
type ExteriorDetailedBreakdown struct {
	Measurements           ExteriorMeasurementsLabor   `json:"measurements"`
	DoorsAndShutters       DoorsAndShuttersLabor       `json:"doorsAndShutters"`
	PrepWork               ExteriorPrepWorkLabor       `json:"prepWork"`
	ReplacementsAndRepairs ReplacementsAndRepairsLabor `json:"replacementsAndRepairs"`
	Additional             ExteriorAdditionalLabor     `json:"additional"`
	BaseLabor              float64                     `json:"baseLabor"`
	ModifiersApplied       []string                    `json:"modifiersApplied"`
	ModifiedLabor          float64                     `json:"modifiedLabor"`
}

func (*InteriorSqftBreakdown) CalculatorType() CalculatorType     { return pricing.InteriorSqft }
func (*ExteriorSqftBreakdown) CalculatorType() CalculatorType     { return pricing.ExteriorSqft }
func (*InteriorDetailedBreakdown) CalculatorType() CalculatorType { return pricing.InteriorDetailed }
func (*ExteriorDetailedBreakdown) CalculatorType() CalculatorType { return pricing.ExteriorDetailed }

// LaborCategory is a named category subtotal, used by exporters that print
// the breakdown without switching on its concrete type.
type LaborCategory struct {
	Name     string
	Subtotal float64
}

// LaborCategories returns the category subtotals of a detailed breakdown in
// display order. Square footage breakdowns have none.
func LaborCategories(b Breakdown) []LaborCategory {
	switch d := b.(type) {
	case *InteriorDetailedBreakdown:
		return []LaborCategory{
			{Name: "Measurements", Subtotal: d.Measurements.Subtotal()},
			{Name: "Doors & Cabinets", Subtotal: d.DoorsAndCabinets.Subtotal()},
			{Name: "Prep Work", Subtotal: d.PrepWork.Subtotal()},
			{Name: "Additional Work", Subtotal: d.Additional.Subtotal()},
		}
	case *ExteriorDetailedBreakdown:
		return []LaborCategory{
			{Name: "Measurements", Subtotal: d.Measurements.Subtotal()},
			{Name: "Doors & Shutters", Subtotal: d.DoorsAndShutters.Subtotal()},
			{Name: "Prep Work", Subtotal: d.PrepWork.Subtotal()},
			{Name: "Replacements & Repairs", Subtotal: d.ReplacementsAndRepairs.Subtotal()},
			{Name: "Additional Work", Subtotal: d.Additional.Subtotal()},
		}
	}
	return nil
}

// AppliedModifiers returns the fired modifier labels of a detailed breakdown.
func AppliedModifiers(b Breakdown) []string {
	switch d := b.(type) {
	case *InteriorDetailedBreakdown:
		return d.ModifiersApplied
	case *ExteriorDetailedBreakdown:
		return d.ModifiersApplied
	}
	return nil
}
