package bid

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwvelando/paint-bid/internal/calculator"
	"github.com/iwvelando/paint-bid/internal/pricing"
)

var created = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func interiorBid(t *testing.T) Bid {
	t.Helper()
	in := &calculator.InteriorDetailedInputs{WallSqft: 1000, CeilingSqft: 1000, TrimLF: 100, PaintType: pricing.SuperPaint, Markup: 40}
	result := calculator.CalculateInteriorDetailedAt(*in, pricing.DefaultSettings(), created)
	b, err := New(pricing.InteriorDetailed, CustomerInfo{Name: "Jane Homeowner", Phone: "555-0100"}, in, result, created)
	require.NoError(t, err)
	return b
}

func TestNew(t *testing.T) {
	b := interiorBid(t)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, created, b.CreatedAt)
	assert.Equal(t, created, b.UpdatedAt)
	_, isValue := b.Inputs.(calculator.InteriorDetailedInputs)
	assert.True(t, isValue, "inputs are stored by value, got %T", b.Inputs)

	other := interiorBid(t)
	assert.NotEqual(t, b.ID, other.ID)

	_, err := New(pricing.ExteriorSqft, CustomerInfo{}, calculator.InteriorSqftInputs{}, calculator.BidResult{}, created)
	assert.Error(t, err)
	_, err = New(pricing.ExteriorSqft, CustomerInfo{}, nil, calculator.BidResult{}, created)
	assert.Error(t, err)
}

func TestRevise(t *testing.T) {
	b := interiorBid(t)
	later := created.Add(48 * time.Hour)
	in := calculator.InteriorDetailedInputs{WallSqft: 500, PaintType: pricing.Emerald, Markup: 50}
	result := calculator.CalculateInteriorDetailedAt(in, pricing.DefaultSettings(), later)

	require.NoError(t, b.Revise(CustomerInfo{Name: "Jane H."}, in, result, later))
	assert.Equal(t, created, b.CreatedAt)
	assert.Equal(t, later, b.UpdatedAt)
	assert.Equal(t, "Jane H.", b.Customer.Name)
	assert.Equal(t, result.Total, b.Result.Total)

	assert.Error(t, b.Revise(CustomerInfo{}, calculator.ExteriorSqftInputs{}, result, later))
}

func TestListItemsNewestFirst(t *testing.T) {
	items := []ListItem{
		{ID: "old", CreatedAt: created},
		{ID: "new", CreatedAt: created.Add(2 * time.Hour)},
		{ID: "mid", CreatedAt: created.Add(time.Hour)},
	}
	SortNewestFirst(items)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{items[0].ID, items[1].ID, items[2].ID})

	b := interiorBid(t)
	item := b.ListItem()
	assert.Equal(t, "Jane Homeowner", item.CustomerName)
	assert.InDelta(t, 2646, item.Total, 1e-9)
	assert.Equal(t, pricing.InteriorDetailed, item.CalculatorType)
}

func TestJSONRoundTrip(t *testing.T) {
	b := interiorBid(t)
	data, err := json.Marshal(b)
	require.NoError(t, err)

	var decoded Bid
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, b.ID, decoded.ID)
	assert.Equal(t, b.Inputs, decoded.Inputs)
	assert.Equal(t, b.Result.Breakdown, decoded.Result.Breakdown)
	assert.True(t, b.CreatedAt.Equal(decoded.CreatedAt))
}

func TestMigrate(t *testing.T) {
	legacy := []byte(`{
		"id": "abc",
		"calculatorType": "exterior-detailed",
		"customer": {"name": "Old Record"},
		"inputs": {"wallSqft": 1200, "paintType": "Duration", "markup": 45},
		"result": {"labor": 840, "materials": {"items": [], "totalCost": 0}, "profit": 378, "total": 1218,
			"breakdown": {"baseLabor": 840, "modifiersApplied": [], "modifiedLabor": 840}},
		"createdAt": "2024-01-02T03:04:05Z",
		"updatedAt": "2024-01-02T03:04:05Z"
	}`)

	migrated, changed, err := Migrate(legacy)
	require.NoError(t, err)
	assert.True(t, changed)

	var doc struct {
		Inputs map[string]any `json:"inputs"`
		Result map[string]any `json:"result"`
	}
	require.NoError(t, json.Unmarshal(migrated, &doc))
	assert.Equal(t, 0.0, doc.Inputs["houseSquareFootage"])
	assert.Equal(t, 1200.0, doc.Inputs["wallSqft"])
	assert.Equal(t, "exterior-detailed", doc.Result["breakdownType"])

	again, changedAgain, err := Migrate(migrated)
	require.NoError(t, err)
	assert.False(t, changedAgain)
	assert.JSONEq(t, string(migrated), string(again))

	b, _, err := Decode(legacy)
	require.NoError(t, err)
	in, ok := b.Inputs.(calculator.ExteriorDetailedInputs)
	require.True(t, ok)
	assert.Equal(t, 1200.0, in.WallSqft)
	breakdown, ok := b.Result.Breakdown.(*calculator.ExteriorDetailedBreakdown)
	require.True(t, ok)
	assert.Equal(t, 840.0, breakdown.BaseLabor)
}

func TestMigrate_LeavesSquareFootageBids(t *testing.T) {
	raw := []byte(`{"calculatorType":"interior-sqft","inputs":{"houseSquareFootage":1800,"pricingOption":"complete","markup":40},"result":{"breakdownType":"interior-sqft"}}`)
	migrated, changed, err := Migrate(raw)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, raw, migrated)
}

func TestMigrate_KeepsRecordedHouseSize(t *testing.T) {
	raw := []byte(`{"calculatorType":"interior-detailed","inputs":{"houseSquareFootage":2200},"result":{"breakdownType":"interior-detailed"}}`)
	_, changed, err := Migrate(raw)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestMigrate_Errors(t *testing.T) {
	_, _, err := Migrate([]byte(`not json`))
	assert.Error(t, err)
	_, _, err = Migrate([]byte(`{"calculatorType":"kitchen"}`))
	assert.Error(t, err)
}
