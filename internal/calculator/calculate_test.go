package calculator

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/iwvelando/paint-bid/internal/pricing"
)

const tolerance = 1e-6

var fixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func assertMarkupIdentity(t *testing.T, result BidResult) {
	t.Helper()
	if !nearlyEqual(result.Total, result.Labor+result.Materials.TotalCost+result.Profit) {
		t.Errorf("Total %v != labor %v + materials %v + profit %v",
			result.Total, result.Labor, result.Materials.TotalCost, result.Profit)
	}
	sum := 0.0
	for _, item := range result.Materials.Items {
		sum += item.Cost
	}
	if !nearlyEqual(sum, result.Materials.TotalCost) {
		t.Errorf("material items sum to %v, TotalCost is %v", sum, result.Materials.TotalCost)
	}
}

func TestInteriorDetailedBaseline(t *testing.T) {
	in := InteriorDetailedInputs{
		WallSqft:    1000,
		CeilingSqft: 1000,
		TrimLF:      100,
		PaintType:   pricing.SuperPaint,
		Markup:      40,
	}
	result := CalculateInteriorDetailedAt(in, pricing.DefaultSettings(), fixedTime)

	breakdown, ok := result.Breakdown.(*InteriorDetailedBreakdown)
	if !ok {
		t.Fatalf("Breakdown is %T, expected *InteriorDetailedBreakdown", result.Breakdown)
	}
	if !nearlyEqual(breakdown.BaseLabor, 1575) {
		t.Errorf("BaseLabor = %v, expected 1575", breakdown.BaseLabor)
	}
	if !nearlyEqual(breakdown.Measurements.Subtotal(), 1575) {
		t.Errorf("Measurements subtotal = %v, expected 1575", breakdown.Measurements.Subtotal())
	}
	if len(breakdown.ModifiersApplied) != 0 {
		t.Errorf("ModifiersApplied = %v, expected none", breakdown.ModifiersApplied)
	}
	if !nearlyEqual(result.Labor, 1575) {
		t.Errorf("Labor = %v, expected 1575", result.Labor)
	}
	if !nearlyEqual(result.Materials.TotalCost, 315) {
		t.Errorf("Materials = %v, expected 315", result.Materials.TotalCost)
	}
	if !nearlyEqual(result.Subtotal(), 1890) {
		t.Errorf("Subtotal = %v, expected 1890", result.Subtotal())
	}
	if !nearlyEqual(result.Profit, 756) {
		t.Errorf("Profit = %v, expected 756", result.Profit)
	}
	if !nearlyEqual(result.Total, 2646) {
		t.Errorf("Total = %v, expected 2646", result.Total)
	}
	if !result.Timestamp.Equal(fixedTime) {
		t.Errorf("Timestamp = %v, expected %v", result.Timestamp, fixedTime)
	}

	expectedItems := []MaterialItem{
		{Name: "SuperPaint - Walls", Quantity: 4, PricePerGallon: 35, Cost: 140},
		{Name: "SuperPaint - Ceilings", Quantity: 4, PricePerGallon: 35, Cost: 140},
		{Name: "SuperPaint - Trim", Quantity: 1, PricePerGallon: 35, Cost: 35},
	}
	if !reflect.DeepEqual(result.Materials.Items, expectedItems) {
		t.Errorf("Materials.Items = %+v, expected %+v", result.Materials.Items, expectedItems)
	}
	assertMarkupIdentity(t, result)
}

func TestExteriorSquareFootageFullExterior(t *testing.T) {
	in := ExteriorSqftInputs{HouseSquareFootage: 2000, PricingOption: FullExterior, Markup: 40}
	result := CalculateExteriorSquareFootageAt(in, pricing.DefaultSettings(), fixedTime)

	if !nearlyEqual(result.Labor, 4000) {
		t.Errorf("Labor = %v, expected 4000", result.Labor)
	}
	if result.Materials.Items == nil || len(result.Materials.Items) != 0 {
		t.Errorf("Materials.Items = %#v, expected empty non-nil slice", result.Materials.Items)
	}
	if !nearlyEqual(result.Profit, 1600) {
		t.Errorf("Profit = %v, expected 1600", result.Profit)
	}
	if !nearlyEqual(result.Total, 5600) {
		t.Errorf("Total = %v, expected 5600", result.Total)
	}
	breakdown, ok := result.Breakdown.(*ExteriorSqftBreakdown)
	if !ok {
		t.Fatalf("Breakdown is %T, expected *ExteriorSqftBreakdown", result.Breakdown)
	}
	if !nearlyEqual(breakdown.AutoCalculations.SidingSqft, 2800) || !nearlyEqual(breakdown.AutoCalculations.TrimLF, 600) {
		t.Errorf("AutoCalculations = %+v, expected siding 2800 trim 600", breakdown.AutoCalculations)
	}
	assertMarkupIdentity(t, result)
}

func TestInteriorSquareFootageOptions(t *testing.T) {
	settings := pricing.DefaultSettings()
	tests := []struct {
		option InteriorSqftOption
		labor  float64
	}{
		{WallsOnly, 3500},
		{InteriorTrimOnly, 2500},
		{CeilingsOnly, 2000},
		{Complete, 5000},
		{InteriorSqftOption("garage"), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.option), func(t *testing.T) {
			in := InteriorSqftInputs{HouseSquareFootage: 2000, PricingOption: tt.option, Markup: 50}
			result := CalculateInteriorSquareFootageAt(in, settings, fixedTime)
			if !nearlyEqual(result.Labor, tt.labor) {
				t.Errorf("Labor = %v, expected %v", result.Labor, tt.labor)
			}
			if !nearlyEqual(result.Total, tt.labor*1.5) {
				t.Errorf("Total = %v, expected %v", result.Total, tt.labor*1.5)
			}
			assertMarkupIdentity(t, result)
		})
	}
}

func TestSquareFootagePlainVariants(t *testing.T) {
	settings := pricing.DefaultSettings()

	interior := CalculateInteriorSquareFootagePlain(InteriorSqftInputs{HouseSquareFootage: 1000, PricingOption: Complete, Markup: 40}, settings)
	if interior.Profit != 0 || !nearlyEqual(interior.Total, 2500) {
		t.Errorf("interior plain profit %v total %v, expected 0 and 2500", interior.Profit, interior.Total)
	}

	exterior := CalculateExteriorSquareFootagePlain(ExteriorSqftInputs{HouseSquareFootage: 1000, PricingOption: ExteriorTrimOnly, Markup: 40}, settings)
	if exterior.Profit != 0 || !nearlyEqual(exterior.Total, 1350) {
		t.Errorf("exterior plain profit %v total %v, expected 0 and 1350", exterior.Profit, exterior.Total)
	}
}

func TestZeroInputFloor(t *testing.T) {
	settings := pricing.DefaultSettings()
	results := map[string]BidResult{
		"interior-detailed": CalculateInteriorDetailedAt(InteriorDetailedInputs{PaintType: pricing.Emerald, Markup: 60}, settings, fixedTime),
		"exterior-detailed": CalculateExteriorDetailedAt(ExteriorDetailedInputs{PaintType: pricing.Duration, Markup: 60}, settings, fixedTime),
		"interior-sqft":     CalculateInteriorSquareFootageAt(InteriorSqftInputs{PricingOption: Complete, Markup: 60}, settings, fixedTime),
		"exterior-sqft":     CalculateExteriorSquareFootageAt(ExteriorSqftInputs{PricingOption: FullExterior, Markup: 60}, settings, fixedTime),
	}

	for name, result := range results {
		t.Run(name, func(t *testing.T) {
			if result.Labor != 0 || result.Materials.TotalCost != 0 || result.Profit != 0 || result.Total != 0 {
				t.Errorf("got labor %v materials %v profit %v total %v, expected all zero",
					result.Labor, result.Materials.TotalCost, result.Profit, result.Total)
			}
			if len(result.Materials.Items) != 0 {
				t.Errorf("Materials.Items = %v, expected none", result.Materials.Items)
			}
		})
	}
}

func TestExteriorModifierCompounding(t *testing.T) {
	in := ExteriorDetailedInputs{
		Doors:     25,
		PaintType: pricing.SuperPaint,
		Markup:    40,
		Modifiers: ExteriorModifiers{ThreeStory: true, AdditionalCoat: true},
	}
	result := CalculateExteriorDetailedAt(in, pricing.DefaultSettings(), fixedTime)
	breakdown := result.Breakdown.(*ExteriorDetailedBreakdown)

	if !nearlyEqual(breakdown.BaseLabor, 1000) {
		t.Errorf("BaseLabor = %v, expected 1000", breakdown.BaseLabor)
	}
	if !nearlyEqual(breakdown.ModifiedLabor, 1437.5) {
		t.Errorf("ModifiedLabor = %v, expected 1437.5", breakdown.ModifiedLabor)
	}
	if !nearlyEqual(result.Labor, 1437.5) {
		t.Errorf("Labor = %v, expected 1437.5", result.Labor)
	}
	expected := []string{"3 Story (×1.15)", "Additional Coat (×1.25)"}
	if !reflect.DeepEqual(breakdown.ModifiersApplied, expected) {
		t.Errorf("ModifiersApplied = %v, expected %v", breakdown.ModifiersApplied, expected)
	}
	// 25 doors at 0.10 gal/door is 2.5, bought as 3 gallons.
	if len(result.Materials.Items) != 1 || result.Materials.Items[0].Quantity != 3 {
		t.Errorf("Materials.Items = %+v, expected one 3 gallon door line", result.Materials.Items)
	}
	assertMarkupIdentity(t, result)
}

func TestInteriorModifiersOrder(t *testing.T) {
	in := InteriorDetailedInputs{
		Doors:     10,
		PaintType: pricing.ProMar,
		Modifiers: InteriorModifiers{OneCoat: true, HeavilyFurnished: true, ExtensivePrep: true},
	}
	result := CalculateInteriorDetailedAt(in, pricing.DefaultSettings(), fixedTime)
	breakdown := result.Breakdown.(*InteriorDetailedBreakdown)

	expected := []string{"Heavily Furnished (×1.25)", "Extensive Prep (×1.15)", "Reduce to 1 Coat (×0.85)"}
	if !reflect.DeepEqual(breakdown.ModifiersApplied, expected) {
		t.Errorf("ModifiersApplied = %v, expected %v", breakdown.ModifiersApplied, expected)
	}
	if want := 400 * 1.25 * 1.15 * 0.85; !nearlyEqual(result.Labor, want) {
		t.Errorf("Labor = %v, expected %v", result.Labor, want)
	}
}

func TestInteriorDetailedAllCategories(t *testing.T) {
	in := InteriorDetailedInputs{
		Doors:                  2,
		CabinetDoors:           10,
		CabinetDrawers:         4,
		NewCabinetDoors:        5,
		NewCabinetDrawers:      1,
		WallpaperRemovalSqft:   100,
		PrimingLF:              10,
		PrimingSqft:            20,
		DrywallReplacementSqft: 5,
		PopcornRemovalSqft:     8,
		WallTextureRemovalSqft: 10,
		TrimReplacementLF:      3,
		DrywallRepairs:         2,
		ColorsAboveThree:       1,
		AccentWalls:            2,
		MiscWorkHours:          3,
		MiscellaneousDollars:   125,
		PaintType:              pricing.Duration,
	}
	result := CalculateInteriorDetailedAt(in, pricing.DefaultSettings(), fixedTime)
	b := result.Breakdown.(*InteriorDetailedBreakdown)

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"doors and cabinets", b.DoorsAndCabinets.Subtotal(), 80 + 400 + 160 + 300 + 60},
		{"priming", b.PrepWork.Priming, 5 + 10},
		{"prep work", b.PrepWork.Subtotal(), 200 + 15 + 10 + 10 + 10 + 12 + 80},
		{"additional", b.Additional.Subtotal(), 75 + 120 + 150 + 125},
		{"base labor", b.BaseLabor, 1000 + 337 + 470},
	}
	for _, tt := range tests {
		if !nearlyEqual(tt.got, tt.expected) {
			t.Errorf("%s = %v, expected %v", tt.name, tt.got, tt.expected)
		}
	}

	// Cabinets count existing and new doors: 15 x 0.10 = 1.5, bought as 2.
	expected := []MaterialItem{{Name: "Duration - Cabinets", Quantity: 2, PricePerGallon: 45, Cost: 90}}
	if !reflect.DeepEqual(result.Materials.Items, expected) {
		t.Errorf("Materials.Items = %+v, expected %+v", result.Materials.Items, expected)
	}
}

func TestExteriorDetailedAllCategories(t *testing.T) {
	in := ExteriorDetailedInputs{
		WallSqft:                  1000,
		TrimFasciaSoffitLF:        150,
		Shutters:                  4,
		DoorsToRefinish:           1,
		PrimingSqft:               100,
		PrimingLF:                 20,
		SidingReplacementSqft:     10,
		TrimReplacementLF:         5,
		SoffitFasciaReplacementLF: 2,
		BondoRepairs:              3,
		DeckStainingSqft:          200,
		MiscPressureWashingSqft:   100,
		MiscWorkHours:             1,
		MiscellaneousDollars:      40,
		PaintType:                 pricing.Emerald,
		Markup:                    50,
	}
	result := CalculateExteriorDetailedAt(in, pricing.DefaultSettings(), fixedTime)
	b := result.Breakdown.(*ExteriorDetailedBreakdown)

	if !nearlyEqual(b.Measurements.Subtotal(), 775) {
		t.Errorf("Measurements = %v, expected 775", b.Measurements.Subtotal())
	}
	if !nearlyEqual(b.DoorsAndShutters.Subtotal(), 200) {
		t.Errorf("DoorsAndShutters = %v, expected 200", b.DoorsAndShutters.Subtotal())
	}
	if !nearlyEqual(b.PrepWork.Priming, 60) {
		t.Errorf("Priming = %v, expected 60", b.PrepWork.Priming)
	}
	if !nearlyEqual(b.ReplacementsAndRepairs.Subtotal(), 146) {
		t.Errorf("ReplacementsAndRepairs = %v, expected 146", b.ReplacementsAndRepairs.Subtotal())
	}
	if !nearlyEqual(b.Additional.Subtotal(), 340) {
		t.Errorf("Additional = %v, expected 340", b.Additional.Subtotal())
	}

	expected := []MaterialItem{
		{Name: "Emerald - Siding", Quantity: 5, PricePerGallon: 65, Cost: 325},
		{Name: "Emerald - Trim/Fascia/Soffit", Quantity: 2, PricePerGallon: 65, Cost: 130},
	}
	if !reflect.DeepEqual(result.Materials.Items, expected) {
		t.Errorf("Materials.Items = %+v, expected %+v", result.Materials.Items, expected)
	}
	if !nearlyEqual(result.Total, (1521+455)*1.5) {
		t.Errorf("Total = %v, expected %v", result.Total, (1521+455)*1.5)
	}
}

func TestMissingRateTolerance(t *testing.T) {
	settings := pricing.DefaultSettings()
	var kept []pricing.LineItem
	for _, item := range settings.LineItems {
		if item.ID != pricing.IntCeilingSqft {
			kept = append(kept, item)
		}
	}
	settings.LineItems = kept

	in := InteriorDetailedInputs{WallSqft: 1000, CeilingSqft: 1000, PaintType: pricing.SuperPaint}
	result := CalculateInteriorDetailedAt(in, settings, fixedTime)
	b := result.Breakdown.(*InteriorDetailedBreakdown)
	if b.Measurements.Ceilings != 0 {
		t.Errorf("Ceilings labor = %v, expected 0 for a missing rate", b.Measurements.Ceilings)
	}
	if !nearlyEqual(result.Labor, 1000) {
		t.Errorf("Labor = %v, expected 1000", result.Labor)
	}
}

func TestNilSettings(t *testing.T) {
	result := CalculateInteriorDetailedAt(InteriorDetailedInputs{WallSqft: 500}, nil, fixedTime)
	if result.Total != 0 || result.Materials.Items == nil {
		t.Errorf("nil settings gave total %v items %#v, expected 0 and empty", result.Total, result.Materials.Items)
	}
}

func TestIdempotence(t *testing.T) {
	settings := pricing.DefaultSettings()
	in := ExteriorDetailedInputs{WallSqft: 1234, TrimFasciaSoffitLF: 321, Doors: 3, PaintType: pricing.Duration, Markup: 45,
		Modifiers: ExteriorModifiers{HardTerrain: true, OneCoat: true}}

	first := CalculateExteriorDetailedAt(in, settings, fixedTime)
	second := CalculateExteriorDetailedAt(in, settings, fixedTime)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calculation differs:\n%+v\n%+v", first, second)
	}
}

func TestCalculateDispatch(t *testing.T) {
	settings := pricing.DefaultSettings()
	tests := []struct {
		name   string
		inputs Inputs
		kind   CalculatorType
	}{
		{"interior sqft value", InteriorSqftInputs{HouseSquareFootage: 100, PricingOption: Complete}, pricing.InteriorSqft},
		{"exterior sqft pointer", &ExteriorSqftInputs{HouseSquareFootage: 100, PricingOption: FullExterior}, pricing.ExteriorSqft},
		{"interior detailed pointer", &InteriorDetailedInputs{WallSqft: 10}, pricing.InteriorDetailed},
		{"exterior detailed value", ExteriorDetailedInputs{WallSqft: 10}, pricing.ExteriorDetailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CalculateAt(tt.inputs, settings, fixedTime)
			if err != nil {
				t.Fatalf("CalculateAt() error = %v", err)
			}
			if result.CalculatorType() != tt.kind {
				t.Errorf("CalculatorType() = %v, expected %v", result.CalculatorType(), tt.kind)
			}
		})
	}

	if _, err := Calculate(nil, settings); err == nil {
		t.Error("Calculate(nil) expected an error")
	}
}

func TestBidResultJSONRoundTrip(t *testing.T) {
	in := InteriorDetailedInputs{WallSqft: 1000, TrimLF: 50, PaintType: pricing.SuperPaint, Markup: 35,
		Modifiers: InteriorModifiers{EmptyHouse: true}}
	result := CalculateInteriorDetailedAt(in, pricing.DefaultSettings(), fixedTime)

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal() into map error = %v", err)
	}
	if fields["breakdownType"] != string(pricing.InteriorDetailed) {
		t.Errorf("breakdownType = %v, expected %v", fields["breakdownType"], pricing.InteriorDetailed)
	}

	var decoded BidResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(decoded.Breakdown, result.Breakdown) {
		t.Errorf("Breakdown = %+v, expected %+v", decoded.Breakdown, result.Breakdown)
	}
	if !decoded.Timestamp.Equal(result.Timestamp) || decoded.Total != result.Total {
		t.Errorf("decoded %+v, expected %+v", decoded, result)
	}
}

func TestDecodeInputs(t *testing.T) {
	inputs, err := DecodeInputs(pricing.ExteriorSqft, []byte(`{"houseSquareFootage":1800,"pricingOption":"trim-only","markup":45}`))
	if err != nil {
		t.Fatalf("DecodeInputs() error = %v", err)
	}
	got, ok := inputs.(*ExteriorSqftInputs)
	if !ok {
		t.Fatalf("DecodeInputs() returned %T", inputs)
	}
	expected := ExteriorSqftInputs{HouseSquareFootage: 1800, PricingOption: ExteriorTrimOnly, Markup: 45}
	if *got != expected {
		t.Errorf("DecodeInputs() = %+v, expected %+v", *got, expected)
	}

	if _, err := DecodeInputs("kitchen", nil); err == nil {
		t.Error("DecodeInputs() with unknown type expected an error")
	}
}
