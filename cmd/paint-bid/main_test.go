package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/iwvelando/paint-bid/internal/bid"
	"github.com/iwvelando/paint-bid/internal/calculator"
	"github.com/iwvelando/paint-bid/internal/pricing"
	"github.com/iwvelando/paint-bid/internal/store"
)

func testBid(t *testing.T) bid.Bid {
	t.Helper()
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	inputs := &calculator.InteriorSqftInputs{HouseSquareFootage: 2000, PricingOption: calculator.Complete, Markup: 40}
	result, err := calculator.CalculateAt(inputs, pricing.DefaultSettings(), now)
	if err != nil {
		t.Fatalf("CalculateAt() error = %v", err)
	}
	b, err := bid.New(pricing.InteriorSqft, bid.CustomerInfo{Name: "Jane Homeowner"}, inputs, result, now)
	if err != nil {
		t.Fatalf("bid.New() error = %v", err)
	}
	return b
}

func TestSaveBid(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bids.db")
	b := testBid(t)

	if err := saveBid(context.Background(), zap.NewNop(), dbPath, b); err != nil {
		t.Fatalf("saveBid() error = %v", err)
	}

	bids, err := store.Open(dbPath, nil)
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	defer bids.Close()
	loaded, err := bids.Load(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Customer.Name != "Jane Homeowner" {
		t.Errorf("Customer.Name = %q, expected Jane Homeowner", loaded.Customer.Name)
	}
}

func TestSaveBidClosesDatabaseOnFailure(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bids.db")
	b := testBid(t)

	if err := saveBid(context.Background(), zap.NewNop(), dbPath, b); err != nil {
		t.Fatalf("saveBid() error = %v", err)
	}
	if err := saveBid(context.Background(), zap.NewNop(), dbPath, b); err == nil {
		t.Fatal("saveBid() of a duplicate id expected error but got none")
	}

	// The last connection to close checkpoints and removes the WAL file.
	if _, err := os.Stat(dbPath + "-wal"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("WAL file still present after failed save, database left open: %v", err)
	}
}

func TestSaveBidOpenError(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing", "dir", "bids.db")
	if err := saveBid(context.Background(), zap.NewNop(), dbPath, testBid(t)); err == nil {
		t.Error("saveBid() expected error for an unreachable path but got none")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	errExport := errors.New("export failed")

	tests := []struct {
		name    string
		path    string
		write   func(*os.File) error
		wantErr error
		content string
	}{
		{
			name:    "writes content",
			path:    filepath.Join(dir, "bid.txt"),
			write:   func(f *os.File) error { _, err := f.WriteString("estimate"); return err },
			content: "estimate",
		},
		{
			name:    "export error is returned",
			path:    filepath.Join(dir, "broken.txt"),
			write:   func(*os.File) error { return errExport },
			wantErr: errExport,
		},
		{
			name:  "missing directory",
			path:  filepath.Join(dir, "missing", "bid.txt"),
			write: func(*os.File) error { return nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := writeFile(tt.path, tt.write)
			if tt.content == "" {
				if err == nil {
					t.Fatal("writeFile() expected error but got none")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("writeFile() error = %v, expected %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("writeFile() error = %v", err)
			}
			data, err := os.ReadFile(tt.path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if string(data) != tt.content {
				t.Errorf("content = %q, expected %q", data, tt.content)
			}
		})
	}
}
