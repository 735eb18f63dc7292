// Package bid defines saved bids: a calculation result together with the
// customer it was prepared for and the inputs that produced it.
package bid

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/iwvelando/paint-bid/internal/calculator"
	"github.com/iwvelando/paint-bid/internal/pricing"
)

// CustomerInfo identifies who the bid is for. JobDate uses the 2006-01-02
// layout.
type CustomerInfo struct {
	Name    string `json:"name" yaml:"name" mapstructure:"name"`
	Address string `json:"address" yaml:"address" mapstructure:"address"`
	Phone   string `json:"phone" yaml:"phone" mapstructure:"phone"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email"`
	JobDate string `json:"jobDate,omitempty" yaml:"jobDate,omitempty" mapstructure:"jobDate"`
	Notes   string `json:"notes,omitempty" yaml:"notes,omitempty" mapstructure:"notes"`
}

// Bid is a saved estimate.
type Bid struct {
	ID             string
	CalculatorType pricing.CalculatorType
	Customer       CustomerInfo
	Inputs         calculator.Inputs
	Result         calculator.BidResult
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ListItem is the summary shown in a list of saved bids.
type ListItem struct {
	ID             string                 `json:"id"`
	CustomerName   string                 `json:"customerName"`
	Total          float64                `json:"total"`
	CreatedAt      time.Time              `json:"createdAt"`
	CalculatorType pricing.CalculatorType `json:"calculatorType"`
}

// New creates a bid with a fresh id. The calculator type must match the
// inputs.
func New(calculatorType pricing.CalculatorType, customer CustomerInfo, inputs calculator.Inputs, result calculator.BidResult, now time.Time) (Bid, error) {
	if inputs == nil {
		return Bid{}, fmt.Errorf("bid inputs are required")
	}
	if inputs.CalculatorType() != calculatorType {
		return Bid{}, fmt.Errorf("inputs are for %s, not %s", inputs.CalculatorType(), calculatorType)
	}
	return Bid{
		ID:             uuid.New().String(),
		CalculatorType: calculatorType,
		Customer:       customer,
		Inputs:         normalizeInputs(inputs),
		Result:         result,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Revise replaces the customer, inputs and result of an existing bid,
// keeping its id, calculator type and creation time.
func (b *Bid) Revise(customer CustomerInfo, inputs calculator.Inputs, result calculator.BidResult, now time.Time) error {
	if inputs == nil || inputs.CalculatorType() != b.CalculatorType {
		return fmt.Errorf("revised inputs must be for %s", b.CalculatorType)
	}
	b.Customer = customer
	b.Inputs = normalizeInputs(inputs)
	b.Result = result
	b.UpdatedAt = now
	return nil
}

// ListItem summarizes the bid.
func (b Bid) ListItem() ListItem {
	return ListItem{
		ID:             b.ID,
		CustomerName:   b.Customer.Name,
		Total:          b.Result.Total,
		CreatedAt:      b.CreatedAt,
		CalculatorType: b.CalculatorType,
	}
}

// SortNewestFirst orders items by creation time, most recent first.
func SortNewestFirst(items []ListItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

// HouseSquareFootage returns the house size recorded in the inputs.
func (b Bid) HouseSquareFootage() float64 {
	switch in := b.Inputs.(type) {
	case calculator.InteriorSqftInputs:
		return in.HouseSquareFootage
	case calculator.ExteriorSqftInputs:
		return in.HouseSquareFootage
	case calculator.InteriorDetailedInputs:
		return in.HouseSquareFootage
	case calculator.ExteriorDetailedInputs:
		return in.HouseSquareFootage
	}
	return 0
}

// normalizeInputs stores inputs by value so callers can type switch on a
// single form.
func normalizeInputs(inputs calculator.Inputs) calculator.Inputs {
	switch in := inputs.(type) {
	case *calculator.InteriorSqftInputs:
		return *in
	case *calculator.ExteriorSqftInputs:
		return *in
	case *calculator.InteriorDetailedInputs:
		return *in
	case *calculator.ExteriorDetailedInputs:
		return *in
	}
	return inputs
}

type bidJSON struct {
	ID             string                 `json:"id"`
	CalculatorType pricing.CalculatorType `json:"calculatorType"`
	Customer       CustomerInfo           `json:"customer"`
	Inputs         json.RawMessage        `json:"inputs"`
	Result         calculator.BidResult   `json:"result"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// MarshalJSON encodes the bid with its calculator type, which also tells a
// decoder how to read the inputs.
func (b Bid) MarshalJSON() ([]byte, error) {
	inputs, err := json.Marshal(b.Inputs)
	if err != nil {
		return nil, fmt.Errorf("encoding inputs: %w", err)
	}
	return json.Marshal(bidJSON{
		ID:             b.ID,
		CalculatorType: b.CalculatorType,
		Customer:       b.Customer,
		Inputs:         inputs,
		Result:         b.Result,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	})
}

// UnmarshalJSON decodes a bid written by MarshalJSON.
func (b *Bid) UnmarshalJSON(data []byte) error {
	var raw bidJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	inputs, err := calculator.DecodeInputs(raw.CalculatorType, raw.Inputs)
	if err != nil {
		return err
	}
	*b = Bid{
		ID:             raw.ID,
		CalculatorType: raw.CalculatorType,
		Customer:       raw.Customer,
		Inputs:         normalizeInputs(inputs),
		Result:         raw.Result,
		CreatedAt:      raw.CreatedAt,
		UpdatedAt:      raw.UpdatedAt,
	}
	return nil
}
