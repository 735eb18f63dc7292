package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/iwvelando/paint-bid/internal/bid"
	"github.com/iwvelando/paint-bid/internal/calculator"
)

// Sheet names of the bid workbook.
const (
	SummarySheet   = "Summary"
	MaterialsSheet = "Materials"
	LaborSheet     = "Labor"
)

const currencyFormat = `"$"#,##0.00`

// BidWorkbook writes b as an XLSX workbook with summary, materials and
// labor sheets.
func BidWorkbook(w io.Writer, b bid.Bid) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("naming summary sheet: %w", err)
	}
	for _, name := range []string{MaterialsSheet, LaborSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating %s sheet: %w", name, err)
		}
	}

	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: stringPtr(currencyFormat)})
	if err != nil {
		return fmt.Errorf("creating currency style: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	result := b.Result
	summary := [][]any{
		{"Customer", b.Customer.Name},
		{"Address", b.Customer.Address},
		{"Calculator", string(b.CalculatorType)},
		{"Created", b.CreatedAt.Format("2006-01-02 15:04")},
		{"Labor", result.Labor},
		{"Materials", result.Materials.TotalCost},
		{"Subtotal", result.Subtotal()},
		{"Profit", result.Profit},
		{"Total", result.Total},
	}
	if err := writeRows(f, SummarySheet, summary); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "B5", fmt.Sprintf("B%d", len(summary)), money); err != nil {
		return fmt.Errorf("styling summary: %w", err)
	}
	if err := f.SetCellStyle(SummarySheet, "A1", fmt.Sprintf("A%d", len(summary)), bold); err != nil {
		return fmt.Errorf("styling summary: %w", err)
	}

	materials := [][]any{{"Item", "Gallons", "Price per Gallon", "Cost"}}
	for _, item := range result.Materials.Items {
		materials = append(materials, []any{item.Name, item.Quantity, item.PricePerGallon, item.Cost})
	}
	materials = append(materials, []any{"Total", result.Materials.TotalGallons(), nil, result.Materials.TotalCost})
	if err := writeRows(f, MaterialsSheet, materials); err != nil {
		return err
	}
	if err := f.SetCellStyle(MaterialsSheet, "C2", fmt.Sprintf("D%d", len(materials)), money); err != nil {
		return fmt.Errorf("styling materials: %w", err)
	}
	if err := f.SetCellStyle(MaterialsSheet, "A1", "D1", bold); err != nil {
		return fmt.Errorf("styling materials: %w", err)
	}

	labor := [][]any{{"Category", "Amount"}}
	for _, category := range calculator.LaborCategories(result.Breakdown) {
		labor = append(labor, []any{category.Name, category.Subtotal})
	}
	for _, label := range calculator.AppliedModifiers(result.Breakdown) {
		labor = append(labor, []any{"Adjustment", label})
	}
	labor = append(labor, []any{"Total Labor", result.Labor})
	if err := writeRows(f, LaborSheet, labor); err != nil {
		return err
	}
	if err := f.SetCellStyle(LaborSheet, "A1", "B1", bold); err != nil {
		return fmt.Errorf("styling labor: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func stringPtr(s string) *string {
	return &s
}
