package config

import (
	"encoding/json"
	"fmt"

	"github.com/iwvelando/paint-bid/internal/calculator"
	"github.com/iwvelando/paint-bid/internal/pricing"
	"github.com/iwvelando/paint-bid/pkg/constants"
	"github.com/iwvelando/paint-bid/pkg/datetime"
	"github.com/iwvelando/paint-bid/pkg/validation"
)

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. None of them stop a bid from being calculated.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	add := func(warning string) {
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		add(err.Error())
	}
	if c.Pricing != nil {
		warnings = append(warnings, c.Pricing.Validate()...)
	}
	if c.Bid.Customer.JobDate != "" {
		if _, err := datetime.ParseJobDate(c.Bid.Customer.JobDate); err != nil {
			add(fmt.Sprintf("Field 'bid.customer.jobDate' %q is not a %s date", c.Bid.Customer.JobDate, constants.DateLayout))
		}
	}
	if c.Inputs == nil {
		return warnings
	}

	warnings = append(warnings, validation.ValidateQuantities(quantities(c.Inputs))...)

	var markupOptions []float64
	if c.Pricing != nil {
		markupOptions = c.Pricing.MarkupOptions
	}
	switch in := c.Inputs.(type) {
	case *calculator.InteriorSqftInputs:
		add(validation.ValidateChoice("pricingOption", string(in.PricingOption), choices(calculator.InteriorSqftOptions)))
		add(validation.ValidateMarkup(in.Markup, markupOptions))
	case *calculator.ExteriorSqftInputs:
		add(validation.ValidateChoice("pricingOption", string(in.PricingOption), choices(calculator.ExteriorSqftOptions)))
		add(validation.ValidateMarkup(in.Markup, markupOptions))
	case *calculator.InteriorDetailedInputs:
		add(validation.ValidateChoice("paintType", string(in.PaintType), choices(pricing.InteriorPaintTypes)))
		add(validation.ValidateMarkup(in.Markup, markupOptions))
	case *calculator.ExteriorDetailedInputs:
		add(validation.ValidateChoice("paintType", string(in.PaintType), choices(pricing.ExteriorPaintTypes)))
		add(validation.ValidateMarkup(in.Markup, markupOptions))
	}
	return warnings
}

// quantities collects the numeric inputs keyed by their field name, leaving
// out markup, which is a percentage rather than a quantity.
func quantities(inputs calculator.Inputs) map[string]float64 {
	data, err := json.Marshal(inputs)
	if err != nil {
		return nil
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	result := make(map[string]float64)
	for field, value := range fields {
		if number, ok := value.(float64); ok && field != "markup" {
			result[field] = number
		}
	}
	return result
}

func choices[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = string(value)
	}
	return out
}
