// Package pricing defines the user-editable pricing configuration read by the
// bid calculators: flat square-footage rates, paint prices, coverage rates,
// auto-measurement multipliers, markup options, crew rates and the line item
// rate table used by the detailed calculators.
package pricing

import "sort"

// CalculatorType identifies one of the four calculator modes.
type CalculatorType string

const (
	InteriorSqft     CalculatorType = "interior-sqft"
	InteriorDetailed CalculatorType = "interior-detailed"
	ExteriorSqft     CalculatorType = "exterior-sqft"
	ExteriorDetailed CalculatorType = "exterior-detailed"
)

// CalculatorTypes lists every calculator mode in display order.
var CalculatorTypes = []CalculatorType{InteriorSqft, InteriorDetailed, ExteriorSqft, ExteriorDetailed}

// Valid reports whether t is a known calculator mode.
func (t CalculatorType) Valid() bool {
	for _, known := range CalculatorTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsDetailed reports whether t is one of the itemized calculators.
func (t CalculatorType) IsDetailed() bool {
	return t == InteriorDetailed || t == ExteriorDetailed
}

// PaintType is a paint product line. Exterior work does not offer ProMar.
type PaintType string

const (
	ProMar     PaintType = "ProMar"
	SuperPaint PaintType = "SuperPaint"
	Duration   PaintType = "Duration"
	Emerald    PaintType = "Emerald"
)

// InteriorPaintTypes and ExteriorPaintTypes list the selectable products.
var (
	InteriorPaintTypes = []PaintType{ProMar, SuperPaint, Duration, Emerald}
	ExteriorPaintTypes = []PaintType{SuperPaint, Duration, Emerald}
)

// Unit is the display unit of a line item rate.
type Unit string

const (
	UnitSqft    Unit = "sqft"
	UnitLF      Unit = "lf"
	UnitEach    Unit = "each"
	UnitHour    Unit = "hour"
	UnitDollars Unit = "dollars"
)

// InteriorSqftRates holds the flat per-square-foot rate of each interior option.
type InteriorSqftRates struct {
	WallsOnly    float64 `yaml:"wallsOnly" json:"wallsOnly"`
	TrimOnly     float64 `yaml:"trimOnly" json:"trimOnly"`
	CeilingsOnly float64 `yaml:"ceilingsOnly" json:"ceilingsOnly"`
	Complete     float64 `yaml:"complete" json:"complete"`
}

// ExteriorSqftRates holds the flat per-square-foot rate of each exterior option.
type ExteriorSqftRates struct {
	FullExterior float64 `yaml:"fullExterior" json:"fullExterior"`
	TrimOnly     float64 `yaml:"trimOnly" json:"trimOnly"`
}

// PaintPrices holds the per-gallon price of each paint line. A zero price
// on the exterior table means the product is not offered outside.
type PaintPrices struct {
	ProMar     float64 `yaml:"ProMar,omitempty" json:"ProMar,omitempty"`
	SuperPaint float64 `yaml:"SuperPaint" json:"SuperPaint"`
	Duration   float64 `yaml:"Duration" json:"Duration"`
	Emerald    float64 `yaml:"Emerald" json:"Emerald"`
}

// Price returns the per-gallon price of paintType and whether it is known.
func (p PaintPrices) Price(paintType PaintType) (float64, bool) {
	switch paintType {
	case ProMar:
		return p.ProMar, true
	case SuperPaint:
		return p.SuperPaint, true
	case Duration:
		return p.Duration, true
	case Emerald:
		return p.Emerald, true
	}
	return 0, false
}

// InteriorCoverage holds how far one gallon goes on interior surfaces.
type InteriorCoverage struct {
	WallSqftPerGallon     float64 `yaml:"wallSqftPerGallon" json:"wallSqftPerGallon"`
	CeilingSqftPerGallon  float64 `yaml:"ceilingSqftPerGallon" json:"ceilingSqftPerGallon"`
	TrimLFPerGallon       float64 `yaml:"trimLfPerGallon" json:"trimLfPerGallon"`
	CabinetGallonsPerDoor float64 `yaml:"cabinetGallonsPerDoor" json:"cabinetGallonsPerDoor"`
}

// ExteriorCoverage holds how far one gallon goes on exterior surfaces.
type ExteriorCoverage struct {
	WallSqftPerGallon  float64 `yaml:"wallSqftPerGallon" json:"wallSqftPerGallon"`
	TrimLFPerGallon    float64 `yaml:"trimLfPerGallon" json:"trimLfPerGallon"`
	DoorGallonsPerDoor float64 `yaml:"doorGallonsPerDoor" json:"doorGallonsPerDoor"`
}

// InteriorMultipliers scale house square footage into interior measurements.
type InteriorMultipliers struct {
	Wall    float64 `yaml:"wall" json:"wall"`
	Ceiling float64 `yaml:"ceiling" json:"ceiling"`
	Trim    float64 `yaml:"trim" json:"trim"`
}

// ExteriorMultipliers scale house square footage into exterior measurements.
type ExteriorMultipliers struct {
	Siding float64 `yaml:"siding" json:"siding"`
	Trim   float64 `yaml:"trim" json:"trim"`
}

// CrewRate is the daily cost of a crew of a given size.
type CrewRate struct {
	CrewSize    int     `yaml:"crewSize" json:"crewSize"`
	DailyRate   float64 `yaml:"dailyRate" json:"dailyRate"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
}

// LineItem is one priced unit of detailed-mode labor.
type LineItem struct {
	ID        string  `yaml:"id" json:"id"`
	Name      string  `yaml:"name" json:"name"`
	Rate      float64 `yaml:"rate" json:"rate"`
	Unit      Unit    `yaml:"unit" json:"unit"`
	Category  string  `yaml:"category" json:"category"`
	IsDefault bool    `yaml:"isDefault" json:"isDefault"`
	Order     int     `yaml:"order" json:"order"`
}

// Section groups line items under a heading of one detailed calculator.
type Section struct {
	ID             string         `yaml:"id" json:"id"`
	Name           string         `yaml:"name" json:"name"`
	CalculatorType CalculatorType `yaml:"calculatorType" json:"calculatorType"`
	IsDefault      bool           `yaml:"isDefault" json:"isDefault"`
	Order          int            `yaml:"order" json:"order"`
}

// Settings is the complete pricing configuration. The calculators treat it as
// a read-only snapshot for the duration of one call.
type Settings struct {
	InteriorSqft InteriorSqftRates `yaml:"interiorSqft" json:"interiorSqft"`
	ExteriorSqft ExteriorSqftRates `yaml:"exteriorSqft" json:"exteriorSqft"`

	InteriorPaint PaintPrices `yaml:"interiorPaint" json:"interiorPaint"`
	ExteriorPaint PaintPrices `yaml:"exteriorPaint" json:"exteriorPaint"`

	InteriorCoverage InteriorCoverage `yaml:"interiorCoverage" json:"interiorCoverage"`
	ExteriorCoverage ExteriorCoverage `yaml:"exteriorCoverage" json:"exteriorCoverage"`

	InteriorMultipliers InteriorMultipliers `yaml:"interiorMultipliers" json:"interiorMultipliers"`
	ExteriorMultipliers ExteriorMultipliers `yaml:"exteriorMultipliers" json:"exteriorMultipliers"`

	MarkupOptions []float64  `yaml:"markupOptions" json:"markupOptions"`
	CrewRates     []CrewRate `yaml:"crewRates" json:"crewRates"`

	JobDurationFormulaText string `yaml:"jobDurationFormulaText,omitempty" json:"jobDurationFormulaText,omitempty"`
	JobDurationExampleText string `yaml:"jobDurationExampleText,omitempty" json:"jobDurationExampleText,omitempty"`

	LineItems []LineItem `yaml:"lineItems" json:"lineItems"`
	Sections  []Section  `yaml:"sections" json:"sections"`
}

// Rate returns the configured rate of a line item, or 0 when the id is not
// in the table. A missing rate is never an error.
func (s *Settings) Rate(lineItemID string) float64 {
	if s == nil {
		return 0
	}
	for _, item := range s.LineItems {
		if item.ID == lineItemID {
			return item.Rate
		}
	}
	return 0
}

// RateTable returns the line item rates keyed by id. When ids repeat the
// first entry wins, matching Rate.
func (s *Settings) RateTable() map[string]float64 {
	if s == nil {
		return map[string]float64{}
	}
	table := make(map[string]float64, len(s.LineItems))
	for _, item := range s.LineItems {
		if _, seen := table[item.ID]; !seen {
			table[item.ID] = item.Rate
		}
	}
	return table
}

// LineItem returns the line item with the given id.
func (s *Settings) LineItem(id string) (LineItem, bool) {
	for _, item := range s.LineItems {
		if item.ID == id {
			return item, true
		}
	}
	return LineItem{}, false
}

// Section returns the section with the given id.
func (s *Settings) Section(id string) (Section, bool) {
	for _, section := range s.Sections {
		if section.ID == id {
			return section, true
		}
	}
	return Section{}, false
}

// LineItemsIn returns the line items of a category sorted by Order.
func (s *Settings) LineItemsIn(category string) []LineItem {
	var items []LineItem
	for _, item := range s.LineItems {
		if item.Category == category {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items
}

// SectionsFor returns the sections of a calculator sorted by Order.
func (s *Settings) SectionsFor(calculatorType CalculatorType) []Section {
	var sections []Section
	for _, section := range s.Sections {
		if section.CalculatorType == calculatorType {
			sections = append(sections, section)
		}
	}
	sort.SliceStable(sections, func(i, j int) bool { return sections[i].Order < sections[j].Order })
	return sections
}

// CrewRate returns the rate configured for a crew size.
func (s *Settings) CrewRate(crewSize int) (CrewRate, bool) {
	for _, crew := range s.CrewRates {
		if crew.CrewSize == crewSize {
			return crew, true
		}
	}
	return CrewRate{}, false
}

// Clone returns a deep copy so callers can hand out snapshots that later
// mutations of the original cannot reach.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	clone := *s
	clone.MarkupOptions = append([]float64(nil), s.MarkupOptions...)
	clone.CrewRates = append([]CrewRate(nil), s.CrewRates...)
	clone.LineItems = append([]LineItem(nil), s.LineItems...)
	clone.Sections = append([]Section(nil), s.Sections...)
	return &clone
}
