package pricing

import "fmt"

// Validate checks the settings for values that would silently distort bids
// and returns them as warnings. Calculation still works with any of these.
func (s *Settings) Validate() []string {
	var warnings []string

	warnings = append(warnings, positive("interiorCoverage.wallSqftPerGallon", s.InteriorCoverage.WallSqftPerGallon)...)
	warnings = append(warnings, positive("interiorCoverage.ceilingSqftPerGallon", s.InteriorCoverage.CeilingSqftPerGallon)...)
	warnings = append(warnings, positive("interiorCoverage.trimLfPerGallon", s.InteriorCoverage.TrimLFPerGallon)...)
	warnings = append(warnings, positive("interiorCoverage.cabinetGallonsPerDoor", s.InteriorCoverage.CabinetGallonsPerDoor)...)
	warnings = append(warnings, positive("exteriorCoverage.wallSqftPerGallon", s.ExteriorCoverage.WallSqftPerGallon)...)
	warnings = append(warnings, positive("exteriorCoverage.trimLfPerGallon", s.ExteriorCoverage.TrimLFPerGallon)...)
	warnings = append(warnings, positive("exteriorCoverage.doorGallonsPerDoor", s.ExteriorCoverage.DoorGallonsPerDoor)...)

	if len(s.MarkupOptions) == 0 {
		warnings = append(warnings, "No markup options configured")
	}
	for _, option := range s.MarkupOptions {
		if option < 0 {
			warnings = append(warnings, fmt.Sprintf("Markup option %g%% is negative", option))
		}
	}

	for _, crew := range s.CrewRates {
		if crew.DailyRate <= 0 {
			warnings = append(warnings, fmt.Sprintf("Crew of %d has non-positive daily rate %g - job duration will show 0 days", crew.CrewSize, crew.DailyRate))
		}
	}

	seen := make(map[string]bool, len(s.LineItems))
	for _, item := range s.LineItems {
		if seen[item.ID] {
			warnings = append(warnings, fmt.Sprintf("Line item id '%s' is duplicated - only the first rate is used", item.ID))
		}
		seen[item.ID] = true
		if item.Rate < 0 {
			warnings = append(warnings, fmt.Sprintf("Line item '%s' has negative rate %g", item.ID, item.Rate))
		}
		if _, ok := s.Section(item.Category); !ok {
			warnings = append(warnings, fmt.Sprintf("Line item '%s' belongs to unknown section '%s'", item.ID, item.Category))
		}
	}

	return warnings
}

func positive(field string, value float64) []string {
	if value <= 0 {
		return []string{fmt.Sprintf("Coverage rate '%s' is %g - no paint will be estimated for it", field, value)}
	}
	return nil
}
