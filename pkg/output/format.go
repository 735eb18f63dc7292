// Package output provides utilities for formatting and displaying bid results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/paint-bid/internal/bid"
	"github.com/iwvelando/paint-bid/internal/calculator"
)

// PrettyFormat writes a human-readable rather than machine-readable summary.
func PrettyFormat(w io.Writer, b bid.Bid, durations []calculator.DurationEstimate) error {
	p := message.NewPrinter(language.English)
	result := b.Result

	lines := []string{fmt.Sprintf("--- Bid for %s (%s) ---", customerLabel(b), b.CalculatorType)}
	lines = append(lines, p.Sprintf("Labor        | $%.2f", result.Labor))
	for _, category := range calculator.LaborCategories(result.Breakdown) {
		lines = append(lines, p.Sprintf("  %-22s $%.2f", category.Name, category.Subtotal))
	}
	if applied := calculator.AppliedModifiers(result.Breakdown); len(applied) > 0 {
		lines = append(lines, "  Adjustments: "+strings.Join(applied, ", "))
	}
	lines = append(lines, p.Sprintf("Materials    | $%.2f", result.Materials.TotalCost))
	for _, item := range result.Materials.Items {
		lines = append(lines, p.Sprintf("  %-30s %3d gal x $%.2f = $%.2f", item.Name, item.Quantity, item.PricePerGallon, item.Cost))
	}
	lines = append(lines,
		p.Sprintf("Subtotal     | $%.2f", result.Subtotal()),
		p.Sprintf("Profit       | $%.2f", result.Profit),
		p.Sprintf("Total        | $%.2f", result.Total),
	)
	if len(durations) > 0 {
		lines = append(lines, "Duration")
		for _, d := range durations {
			lines = append(lines, p.Sprintf("  %d-person crew at $%.0f/day: %d days", d.CrewSize, d.DailyRate, d.Days))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat writes one row per priced component in comma-separated value format.
func CsvFormat(w io.Writer, b bid.Bid, durations []calculator.DurationEstimate) error {
	cw := csv.NewWriter(w)
	result := b.Result
	money := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

	rows := [][]string{{"section", "item", "quantity", "amount"}}
	for _, category := range calculator.LaborCategories(result.Breakdown) {
		rows = append(rows, []string{"labor", category.Name, "", money(category.Subtotal)})
	}
	rows = append(rows, []string{"labor", "total", "", money(result.Labor)})
	for _, item := range result.Materials.Items {
		rows = append(rows, []string{"materials", item.Name, strconv.Itoa(item.Quantity), money(item.Cost)})
	}
	rows = append(rows,
		[]string{"materials", "total", strconv.Itoa(result.Materials.TotalGallons()), money(result.Materials.TotalCost)},
		[]string{"totals", "subtotal", "", money(result.Subtotal())},
		[]string{"totals", "profit", "", money(result.Profit)},
		[]string{"totals", "total", "", money(result.Total)},
	)
	for _, d := range durations {
		rows = append(rows, []string{"duration", fmt.Sprintf("%d-person crew", d.CrewSize), strconv.Itoa(d.Days), money(d.DailyRate)})
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// jsonDocument is the JSON output layout.
type jsonDocument struct {
	Bid       bid.Bid                       `json:"bid"`
	Durations []calculator.DurationEstimate `json:"durations,omitempty"`
}

// JSONFormat writes the bid and duration estimates as indented JSON.
func JSONFormat(w io.Writer, b bid.Bid, durations []calculator.DurationEstimate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonDocument{Bid: b, Durations: durations})
}

func customerLabel(b bid.Bid) string {
	if b.Customer.Name == "" {
		return "unnamed customer"
	}
	return b.Customer.Name
}
