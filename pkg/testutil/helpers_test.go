package testutil

import (
	"testing"

	"github.com/iwvelando/paint-bid/internal/calculator"
)

func TestFindMaterial(t *testing.T) {
	materials := calculator.MaterialBreakdown{
		Items: []calculator.MaterialItem{
			{Name: "Emerald - Walls", Quantity: 4, Cost: 260},
			{Name: "Emerald - Trim", Quantity: 1, Cost: 65},
		},
		TotalCost: 325,
	}

	tests := []struct {
		name         string
		searchName   string
		expectFound  bool
		expectedCost float64
	}{
		{"Find walls", "Emerald - Walls", true, 260},
		{"Find trim", "Emerald - Trim", true, 65},
		{"Search for missing item", "Emerald - Ceilings", false, 0},
		{"Empty name", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindMaterial(materials, tt.searchName)
			if tt.expectFound {
				if result == nil {
					t.Fatalf("Expected to find %q, got nil", tt.searchName)
				}
				if result.Cost != tt.expectedCost {
					t.Errorf("Expected cost %v, got %v", tt.expectedCost, result.Cost)
				}
			} else if result != nil {
				t.Errorf("Expected nil for %q, got %+v", tt.searchName, result)
			}
		})
	}
}

func TestFindMaterialReturnsPointerIntoSlice(t *testing.T) {
	materials := calculator.MaterialBreakdown{Items: []calculator.MaterialItem{{Name: "ProMar - Walls", Quantity: 2}}}
	item := FindMaterial(materials, "ProMar - Walls")
	if item == nil {
		t.Fatal("Expected to find item")
	}
	item.Quantity = 5
	if materials.Items[0].Quantity != 5 {
		t.Error("Expected pointer to reference the original item")
	}
}

func TestFindDuration(t *testing.T) {
	estimates := []calculator.DurationEstimate{{CrewSize: 2, Days: 4}, {CrewSize: 3, Days: 3}}
	if d := FindDuration(estimates, 3); d == nil || d.Days != 3 {
		t.Errorf("FindDuration(3) = %+v, expected 3 days", d)
	}
	if d := FindDuration(estimates, 5); d != nil {
		t.Errorf("FindDuration(5) = %+v, expected nil", d)
	}
	if d := FindDuration(nil, 2); d != nil {
		t.Errorf("FindDuration on nil = %+v, expected nil", d)
	}
}
