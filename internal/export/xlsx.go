package export

import (
	"fmt"

	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names used in the XLSX workbook.
const (
	SheetCutList = "Cut List"
	SheetSummary = "Summary"
)

// CutListHeaders are the column headings of the cut list sheet.
var CutListHeaders = []string{"Panel", "Kind", "Width (mm)", "Height (mm)", "Quantity", "Area (mm²)"}

// ExportXLSX writes the cut list and the design summary to an Excel workbook.
func ExportXLSX(path string, record model.DesignRecord) error {
	if len(record.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetCutList); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}

	for i, h := range CutListHeaders {
		if err := setCell(f, SheetCutList, i+1, 1, h); err != nil {
			return err
		}
	}
	for r, p := range record.Panels {
		row := []any{p.Name, string(p.Kind), p.Width, p.Height, p.Quantity, p.TotalArea()}
		for c, v := range row {
			if err := setCell(f, SheetCutList, c+1, r+2, v); err != nil {
				return err
			}
		}
	}

	params := record.Params
	summary := [][]any{
		{"Width (mm)", params.Width},
		{"Depth (mm)", params.Depth},
		{"Height (mm)", params.Height},
		{"Thickness (mm)", params.Thickness},
		{"Kerf (mm)", params.Kerf},
		{"Material", params.Material},
		{"Style", string(params.Style)},
		{"Material area (mm²)", record.MaterialArea},
		{"Reference sheet", record.Layout.Sheet.Label},
		{"Waste (%)", record.WastePercent},
		{"Price (EUR/m²)", record.PricePerM2},
		{"Fallback price", record.PriceFallback},
		{"Total cost (EUR)", record.TotalCost},
	}
	for r, kv := range summary {
		for c, v := range kv {
			if err := setCell(f, SheetSummary, c+1, r+1, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
	}
	return nil
}
