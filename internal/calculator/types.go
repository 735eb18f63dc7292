// Package calculator implements the bid calculation engine. Each calculator
// takes a typed inputs value plus a pricing snapshot and returns a complete
// BidResult. Nothing here does I/O, keeps state between calls, or returns an
// error for numeric input: missing rates price at zero and unknown options
// select no rate.
package calculator

import (
	"time"

	"github.com/iwvelando/paint-bid/internal/pricing"
)

// CalculatorType identifies one of the four calculator modes.
type CalculatorType = pricing.CalculatorType

// PaintType is a paint product line.
type PaintType = pricing.PaintType

// InteriorSqftOption selects the flat rate of the interior square footage calculator.
type InteriorSqftOption string

const (
	WallsOnly        InteriorSqftOption = "walls-only"
	InteriorTrimOnly InteriorSqftOption = "trim-only"
	CeilingsOnly     InteriorSqftOption = "ceilings-only"
	Complete         InteriorSqftOption = "complete"
)

// InteriorSqftOptions lists the interior flat-rate options.
var InteriorSqftOptions = []InteriorSqftOption{WallsOnly, InteriorTrimOnly, CeilingsOnly, Complete}

// ExteriorSqftOption selects the flat rate of the exterior square footage calculator.
type ExteriorSqftOption string

const (
	FullExterior     ExteriorSqftOption = "full-exterior"
	ExteriorTrimOnly ExteriorSqftOption = "trim-only"
)

// ExteriorSqftOptions lists the exterior flat-rate options.
var ExteriorSqftOptions = []ExteriorSqftOption{FullExterior, ExteriorTrimOnly}

// Inputs is implemented by the four calculator input records.
type Inputs interface {
	CalculatorType() CalculatorType
}

// InteriorSqftInputs are the inputs of the interior square footage calculator.
type InteriorSqftInputs struct {
	HouseSquareFootage float64            `json:"houseSquareFootage" yaml:"houseSquareFootage"`
	PricingOption      InteriorSqftOption `json:"pricingOption" yaml:"pricingOption"`
	Markup             float64            `json:"markup" yaml:"markup"`
}

// ExteriorSqftInputs are the inputs of the exterior square footage calculator.
type ExteriorSqftInputs struct {
	HouseSquareFootage float64            `json:"houseSquareFootage" yaml:"houseSquareFootage"`
	PricingOption      ExteriorSqftOption `json:"pricingOption" yaml:"pricingOption"`
	Markup             float64            `json:"markup" yaml:"markup"`
}

// InteriorModifiers are the labor conditions of an interior job.
type InteriorModifiers struct {
	HeavilyFurnished bool `json:"heavilyFurnished" yaml:"heavilyFurnished"`
	EmptyHouse       bool `json:"emptyHouse" yaml:"emptyHouse"`
	ExtensivePrep    bool `json:"extensivePrep" yaml:"extensivePrep"`
	AdditionalCoat   bool `json:"additionalCoat" yaml:"additionalCoat"`
	OneCoat          bool `json:"oneCoat" yaml:"oneCoat"`
}

// InteriorDetailedInputs are the inputs of the itemized interior calculator.
type InteriorDetailedInputs struct {
	// HouseSquareFootage records the value auto-measurements were derived
	// from. It does not enter the calculation.
	HouseSquareFootage float64 `json:"houseSquareFootage" yaml:"houseSquareFootage"`

	WallSqft    float64 `json:"wallSqft" yaml:"wallSqft"`
	CeilingSqft float64 `json:"ceilingSqft" yaml:"ceilingSqft"`
	TrimLF      float64 `json:"trimLF" yaml:"trimLF"`

	Doors             float64 `json:"doors" yaml:"doors"`
	CabinetDoors      float64 `json:"cabinetDoors" yaml:"cabinetDoors"`
	CabinetDrawers    float64 `json:"cabinetDrawers" yaml:"cabinetDrawers"`
	NewCabinetDoors   float64 `json:"newCabinetDoors" yaml:"newCabinetDoors"`
	NewCabinetDrawers float64 `json:"newCabinetDrawers" yaml:"newCabinetDrawers"`

	ColorsAboveThree float64 `json:"colorsAboveThree" yaml:"colorsAboveThree"`

	WallpaperRemovalSqft   float64 `json:"wallpaperRemovalSqft" yaml:"wallpaperRemovalSqft"`
	PrimingLF              float64 `json:"primingLF" yaml:"primingLF"`
	PrimingSqft            float64 `json:"primingSqft" yaml:"primingSqft"`
	DrywallReplacementSqft float64 `json:"drywallReplacementSqft" yaml:"drywallReplacementSqft"`
	PopcornRemovalSqft     float64 `json:"popcornRemovalSqft" yaml:"popcornRemovalSqft"`
	WallTextureRemovalSqft float64 `json:"wallTextureRemovalSqft" yaml:"wallTextureRemovalSqft"`
	TrimReplacementLF      float64 `json:"trimReplacementLF" yaml:"trimReplacementLF"`
	DrywallRepairs         float64 `json:"drywallRepairs" yaml:"drywallRepairs"`

	AccentWalls          float64 `json:"accentWalls" yaml:"accentWalls"`
	MiscWorkHours        float64 `json:"miscWorkHours" yaml:"miscWorkHours"`
	MiscellaneousDollars float64 `json:"miscellaneousDollars" yaml:"miscellaneousDollars"`

	PaintType PaintType         `json:"paintType" yaml:"paintType"`
	Markup    float64           `json:"markup" yaml:"markup"`
	Modifiers InteriorModifiers `json:"modifiers" yaml:"modifiers"`
}

// ExteriorModifiers are the labor conditions of an exterior job.
type ExteriorModifiers struct {
	ThreeStory     bool `json:"threeStory" yaml:"threeStory"`
	ExtensivePrep  bool `json:"extensivePrep" yaml:"extensivePrep"`
	HardTerrain    bool `json:"hardTerrain" yaml:"hardTerrain"`
	AdditionalCoat bool `json:"additionalCoat" yaml:"additionalCoat"`
	OneCoat        bool `json:"oneCoat" yaml:"oneCoat"`
}

// ExteriorDetailedInputs are the inputs of the itemized exterior calculator.
type ExteriorDetailedInputs struct {
	HouseSquareFootage float64 `json:"houseSquareFootage" yaml:"houseSquareFootage"`

	WallSqft           float64 `json:"wallSqft" yaml:"wallSqft"`
	TrimFasciaSoffitLF float64 `json:"trimFasciaSoffitLF" yaml:"trimFasciaSoffitLF"`

	Doors           float64 `json:"doors" yaml:"doors"`
	Shutters        float64 `json:"shutters" yaml:"shutters"`
	DoorsToRefinish float64 `json:"doorsToRefinish" yaml:"doorsToRefinish"`

	PrimingSqft float64 `json:"primingSqft" yaml:"primingSqft"`
	PrimingLF   float64 `json:"primingLF" yaml:"primingLF"`

	SidingReplacementSqft     float64 `json:"sidingReplacementSqft" yaml:"sidingReplacementSqft"`
	TrimReplacementLF         float64 `json:"trimReplacementLF" yaml:"trimReplacementLF"`
	SoffitFasciaReplacementLF float64 `json:"soffitFasciaReplacementLF" yaml:"soffitFasciaReplacementLF"`
	BondoRepairs              float64 `json:"bondoRepairs" yaml:"bondoRepairs"`

	DeckStainingSqft        float64 `json:"deckStainingSqft" yaml:"deckStainingSqft"`
	MiscPressureWashingSqft float64 `json:"miscPressureWashingSqft" yaml:"miscPressureWashingSqft"`
	MiscWorkHours           float64 `json:"miscWorkHours" yaml:"miscWorkHours"`
	MiscellaneousDollars    float64 `json:"miscellaneousDollars" yaml:"miscellaneousDollars"`

	PaintType PaintType         `json:"paintType" yaml:"paintType"`
	Markup    float64           `json:"markup" yaml:"markup"`
	Modifiers ExteriorModifiers `json:"modifiers" yaml:"modifiers"`
}

func (InteriorSqftInputs) CalculatorType() CalculatorType     { return pricing.InteriorSqft }
func (ExteriorSqftInputs) CalculatorType() CalculatorType     { return pricing.ExteriorSqft }
func (InteriorDetailedInputs) CalculatorType() CalculatorType { return pricing.InteriorDetailed }
func (ExteriorDetailedInputs) CalculatorType() CalculatorType { return pricing.ExteriorDetailed }

// MaterialItem is one paint purchase line.
type MaterialItem struct {
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	PricePerGallon float64 `json:"pricePerGallon"`
	Cost           float64 `json:"cost"`
}

// MaterialBreakdown lists paint purchases. TotalCost is always the sum of
// the item costs.
type MaterialBreakdown struct {
	Items     []MaterialItem `json:"items"`
	TotalCost float64        `json:"totalCost"`
}

// TotalGallons sums the gallons of every item.
func (m MaterialBreakdown) TotalGallons() int {
	total := 0
	for _, item := range m.Items {
		total += item.Quantity
	}
	return total
}

// BidResult is the immutable output of a calculator.
type BidResult struct {
	Labor     float64
	Materials MaterialBreakdown
	Profit    float64
	Total     float64
	Breakdown Breakdown
	Timestamp time.Time
}

// Subtotal is labor plus materials, the amount markup applies to.
func (r BidResult) Subtotal() float64 {
	return r.Labor + r.Materials.TotalCost
}

// CalculatorType reports which calculator produced the result.
func (r BidResult) CalculatorType() CalculatorType {
	if r.Breakdown == nil {
		return ""
	}
	return r.Breakdown.CalculatorType()
}
