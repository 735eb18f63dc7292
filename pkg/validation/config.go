// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"sort"
)

// ValidateNonNegative returns a warning when a quantity is negative.
func ValidateNonNegative(field string, value float64) string {
	if value < 0 {
		return fmt.Sprintf("Field '%s' is negative (%g) - labor and materials for it will be wrong", field, value)
	}
	return ""
}

// ValidateQuantities checks every named quantity and returns warnings in
// field-name order so output is stable.
func ValidateQuantities(quantities map[string]float64) []string {
	fields := make([]string, 0, len(quantities))
	for field := range quantities {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var warnings []string
	for _, field := range fields {
		if warning := ValidateNonNegative(field, quantities[field]); warning != "" {
			warnings = append(warnings, warning)
		}
	}
	return warnings
}

// ValidateMarkup checks that markup is one of the configured options.
func ValidateMarkup(markup float64, options []float64) string {
	for _, option := range options {
		if option == markup {
			return ""
		}
	}
	return fmt.Sprintf("Markup %g%% is not one of the configured options %v", markup, options)
}

// ValidateChoice checks that value is a member of allowed.
func ValidateChoice(field, value string, allowed []string) string {
	for _, candidate := range allowed {
		if candidate == value {
			return ""
		}
	}
	return fmt.Sprintf("Field '%s' has unknown value %q (expected one of %v)", field, value, allowed)
}
