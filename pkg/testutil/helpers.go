// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/paint-bid/internal/calculator"
)

// FindMaterial finds a material line by name in a breakdown.
// Returns a pointer to the item if found, nil otherwise.
func FindMaterial(materials calculator.MaterialBreakdown, name string) *calculator.MaterialItem {
	for i := range materials.Items {
		if materials.Items[i].Name == name {
			return &materials.Items[i]
		}
	}
	return nil
}

// FindDuration finds the estimate for a crew size.
func FindDuration(estimates []calculator.DurationEstimate, crewSize int) *calculator.DurationEstimate {
	for i := range estimates {
		if estimates[i].CrewSize == crewSize {
			return &estimates[i]
		}
	}
	return nil
}
