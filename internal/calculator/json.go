package calculator

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iwvelando/paint-bid/internal/pricing"
)

type bidResultJSON struct {
	Labor         float64           `json:"labor"`
	Materials     MaterialBreakdown `json:"materials"`
	Profit        float64           `json:"profit"`
	Total         float64           `json:"total"`
	BreakdownType CalculatorType    `json:"breakdownType"`
	Breakdown     json.RawMessage   `json:"breakdown"`
	Timestamp     time.Time         `json:"timestamp"`
}

// MarshalJSON encodes the result with a breakdownType discriminator so the
// breakdown can be decoded back into its concrete type.
func (r BidResult) MarshalJSON() ([]byte, error) {
	breakdown, err := json.Marshal(r.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("encoding breakdown: %w", err)
	}
	return json.Marshal(bidResultJSON{
		Labor:         r.Labor,
		Materials:     r.Materials,
		Profit:        r.Profit,
		Total:         r.Total,
		BreakdownType: r.CalculatorType(),
		Breakdown:     breakdown,
		Timestamp:     r.Timestamp,
	})
}

// UnmarshalJSON decodes a result written by MarshalJSON.
func (r *BidResult) UnmarshalJSON(data []byte) error {
	var raw bidResultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	breakdown, err := DecodeBreakdown(raw.BreakdownType, raw.Breakdown)
	if err != nil {
		return err
	}
	if raw.Materials.Items == nil {
		raw.Materials.Items = []MaterialItem{}
	}
	*r = BidResult{
		Labor:     raw.Labor,
		Materials: raw.Materials,
		Profit:    raw.Profit,
		Total:     raw.Total,
		Breakdown: breakdown,
		Timestamp: raw.Timestamp,
	}
	return nil
}

// DecodeBreakdown decodes the breakdown of the given calculator type. An
// empty or null payload decodes to nil.
func DecodeBreakdown(calculatorType CalculatorType, data []byte) (Breakdown, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var breakdown Breakdown
	switch calculatorType {
	case pricing.InteriorSqft:
		breakdown = &InteriorSqftBreakdown{}
	case pricing.ExteriorSqft:
		breakdown = &ExteriorSqftBreakdown{}
	case pricing.InteriorDetailed:
		breakdown = &InteriorDetailedBreakdown{}
	case pricing.ExteriorDetailed:
		breakdown = &ExteriorDetailedBreakdown{}
	default:
		return nil, fmt.Errorf("unknown breakdown type %q", calculatorType)
	}
	if err := json.Unmarshal(data, breakdown); err != nil {
		return nil, fmt.Errorf("decoding %s breakdown: %w", calculatorType, err)
	}
	return breakdown, nil
}

// NewInputs returns a pointer to the zero inputs of a calculator type.
func NewInputs(calculatorType CalculatorType) (Inputs, error) {
	switch calculatorType {
	case pricing.InteriorSqft:
		return &InteriorSqftInputs{}, nil
	case pricing.ExteriorSqft:
		return &ExteriorSqftInputs{}, nil
	case pricing.InteriorDetailed:
		return &InteriorDetailedInputs{}, nil
	case pricing.ExteriorDetailed:
		return &ExteriorDetailedInputs{}, nil
	}
	return nil, fmt.Errorf("unknown calculator type %q", calculatorType)
}

// DecodeInputs decodes JSON inputs for a calculator type.
func DecodeInputs(calculatorType CalculatorType, data []byte) (Inputs, error) {
	inputs, err := NewInputs(calculatorType)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return inputs, nil
	}
	if err := json.Unmarshal(data, inputs); err != nil {
		return nil, fmt.Errorf("decoding %s inputs: %w", calculatorType, err)
	}
	return inputs, nil
}
