package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwvelando/paint-bid/internal/bid"
	"github.com/iwvelando/paint-bid/internal/calculator"
	"github.com/iwvelando/paint-bid/internal/pricing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "bids.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newBid(t *testing.T, name string, created time.Time) bid.Bid {
	t.Helper()
	in := calculator.ExteriorSqftInputs{HouseSquareFootage: 2000, PricingOption: calculator.FullExterior, Markup: 40}
	result := calculator.CalculateExteriorSquareFootageAt(in, pricing.DefaultSettings(), created)
	b, err := bid.New(pricing.ExteriorSqft, bid.CustomerInfo{Name: name}, in, result, created)
	require.NoError(t, err)
	return b
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	b := newBid(t, "Pat Customer", created)

	require.NoError(t, s.Save(ctx, b))
	loaded, err := s.Load(ctx, b.ID)
	require.NoError(t, err)

	assert.Equal(t, b.ID, loaded.ID)
	assert.Equal(t, b.Customer, loaded.Customer)
	assert.Equal(t, b.Inputs, loaded.Inputs)
	assert.InDelta(t, 5600, loaded.Result.Total, 1e-9)
	assert.IsType(t, &calculator.ExteriorSqftBreakdown{}, loaded.Result.Breakdown)
	assert.True(t, created.Equal(loaded.CreatedAt))
}

func TestLoadMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveDuplicateID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	b := newBid(t, "Once", time.Now())
	require.NoError(t, s.Save(ctx, b))
	assert.Error(t, s.Save(ctx, b))
}

func TestUpdateAndDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	b := newBid(t, "Before", time.Now())
	require.NoError(t, s.Save(ctx, b))

	b.Customer.Name = "After"
	b.UpdatedAt = b.UpdatedAt.Add(time.Minute)
	require.NoError(t, s.Update(ctx, b))

	loaded, err := s.Load(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", loaded.Customer.Name)

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "After", items[0].CustomerName)

	require.NoError(t, s.Delete(ctx, b.ID))
	assert.ErrorIs(t, s.Delete(ctx, b.ID), ErrNotFound)
	assert.ErrorIs(t, s.Update(ctx, b), ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	empty, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	offsets := map[string]time.Duration{"first": 0, "second": time.Hour, "third": 2 * time.Hour}
	for _, name := range []string{"first", "third", "second"} {
		require.NoError(t, s.Save(ctx, newBid(t, name, base.Add(offsets[name]))))
	}

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "third", items[0].CustomerName)
	assert.Equal(t, "second", items[1].CustomerName)
	assert.Equal(t, "first", items[2].CustomerName)
	assert.Equal(t, pricing.ExteriorSqft, items[0].CalculatorType)
	assert.True(t, base.Add(2*time.Hour).Equal(items[0].CreatedAt))
}

func TestLoadMigratesLegacyRecord(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	legacy := `{"id":"legacy-1","calculatorType":"interior-detailed","customer":{"name":"Old"},
		"inputs":{"wallSqft":250,"paintType":"ProMar","markup":35},
		"result":{"labor":250,"materials":{"items":[],"totalCost":0},"profit":87.5,"total":337.5,
			"breakdown":{"baseLabor":250,"modifiersApplied":[],"modifiedLabor":250}},
		"createdAt":"2024-02-03T04:05:06Z","updatedAt":"2024-02-03T04:05:06Z"}`
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bids (id, calculator_type, customer_name, total, document, created_at, updated_at)
		VALUES ('legacy-1', 'interior-detailed', 'Old', 337.5, ?, 0, 0)
	`, legacy)
	require.NoError(t, err)

	loaded, err := s.Load(ctx, "legacy-1")
	require.NoError(t, err)
	in, ok := loaded.Inputs.(calculator.InteriorDetailedInputs)
	require.True(t, ok)
	assert.Equal(t, 250.0, in.WallSqft)
	assert.Equal(t, 0.0, in.HouseSquareFootage)

	var stored string
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT document FROM bids WHERE id = 'legacy-1'`).Scan(&stored))
	assert.Contains(t, stored, `"houseSquareFootage":0`)
	assert.Contains(t, stored, `"breakdownType":"interior-detailed"`)
}

func TestOpenInMemory(t *testing.T) {
	s, err := Open(":memory:", nil)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	b := newBid(t, "Ephemeral", time.Now())
	require.NoError(t, s.Save(ctx, b))
	items, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bids.db")
	ctx := context.Background()

	s, err := Open(path, nil)
	require.NoError(t, err)
	b := newBid(t, "Persistent", time.Now())
	require.NoError(t, s.Save(ctx, b))
	require.NoError(t, s.Close())

	reopened, err := Open(path, nil)
	require.NoError(t, err)
	defer reopened.Close()
	_, err = reopened.Load(ctx, b.ID)
	assert.NoError(t, err)
}
