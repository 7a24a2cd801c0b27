package model

import "math"

// PurchaseEstimate holds the results of a sheet purchasing calculation.
type PurchaseEstimate struct {
	TotalPanelArea    float64 `json:"total_panel_area"`    // Total area of all panels incl. kerf allowance (sq mm)
	SheetArea         float64 `json:"sheet_area"`          // Area of one sheet (sq mm)
	SheetsNeededExact float64 `json:"sheets_needed_exact"` // Exact fractional number of sheets
	SheetsNeededMin   int     `json:"sheets_needed_min"`   // Minimum sheets (ceiling of exact)
	SheetsWithWaste   int     `json:"sheets_with_waste"`   // Recommended sheets including waste factor
	WastePercent      float64 `json:"waste_percent"`       // Waste factor applied (e.g., 20 for 20%)
	SheetCost         float64 `json:"sheet_cost"`          // Cost of buying SheetsWithWaste whole sheets
	KerfWidth         float64 `json:"kerf_width"`          // Kerf width used in calculation
}

// CalculatePurchaseEstimate computes how many whole sheets to buy for a cut list.
// Unlike the single-sheet waste figure on a design, it accounts for kerf around
// every piece and rounds up to whole sheets.
func CalculatePurchaseEstimate(panels []PanelSpec, sheet SheetSize, kerfWidth, wastePercent, pricePerM2 float64) PurchaseEstimate {
	var totalArea float64
	for _, p := range panels {
		w := p.Width + kerfWidth
		h := p.Height + kerfWidth
		totalArea += w * h * float64(p.Quantity)
	}

	sheetArea := sheet.Area()
	if sheetArea <= 0 {
		return PurchaseEstimate{
			TotalPanelArea: totalArea,
			WastePercent:   wastePercent,
			KerfWidth:      kerfWidth,
		}
	}

	exactSheets := totalArea / sheetArea
	minSheets := int(math.Ceil(exactSheets))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	sheetsWithWaste := int(math.Ceil(exactSheets * wasteFactor))
	if sheetsWithWaste < minSheets {
		sheetsWithWaste = minSheets
	}

	return PurchaseEstimate{
		TotalPanelArea:    totalArea,
		SheetArea:         sheetArea,
		SheetsNeededExact: exactSheets,
		SheetsNeededMin:   minSheets,
		SheetsWithWaste:   sheetsWithWaste,
		WastePercent:      wastePercent,
		SheetCost:         float64(sheetsWithWaste) * sheetArea / 1e6 * pricePerM2,
		KerfWidth:         kerfWidth,
	}
}
