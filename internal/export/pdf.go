// Package export writes design records to files for the workshop: DXF
// vector outlines, PDF reports, QR-coded labels and XLSX cut lists.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/BoxCut/internal/model"
)

// panelColor represents an RGB color for a drawn panel.
type panelColor struct {
	R, G, B int
}

var panelColors = []panelColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	rowHeight    = 6.0
)

// ExportPDF generates a PDF report for a design: a summary page with the
// cost and waste figures plus the cut list, and a page with the reference
// sheet showing every structural panel to scale.
func ExportPDF(path string, record model.DesignRecord) error {
	if !record.ProductionReady || len(record.Panels) == 0 {
		return fmt.Errorf("design is not production ready")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderSummaryPage(pdf, record)

	pdf.AddPage()
	renderSheetPage(pdf, record)

	return pdf.OutputFileAndClose(path)
}

func renderSummaryPage(pdf *fpdf.Fpdf, record model.DesignRecord) {
	p := record.Params

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Box %.0f x %.0f x %.0f mm (%s)", p.Width, p.Depth, p.Height, p.Style)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, title, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	purchase := model.CalculatePurchaseEstimate(record.Panels, record.Layout.Sheet, p.Kerf, 0, record.PricePerM2)

	summaryItems := []struct {
		label string
		value string
	}{
		{"Material", p.Material},
		{"Thickness / Kerf", fmt.Sprintf("%.1f mm / %.1f mm", p.Thickness, p.Kerf)},
		{"Price", fmt.Sprintf("%.2f EUR/m2", record.PricePerM2)},
		{"Material Area", fmt.Sprintf("%.3f m2", record.MaterialArea/1e6)},
		{"Reference Sheet", fmt.Sprintf("%s (%.0f x %.0f mm)", record.Layout.Sheet.Label, record.Layout.Sheet.Width, record.Layout.Sheet.Height)},
		{"Waste", fmt.Sprintf("%.1f%%", record.WastePercent)},
		{"Pieces Fitting One Row", fmt.Sprintf("%d of %d", record.Layout.FittedCount, record.Layout.TotalPanelCount)},
		{"Sheets To Buy", fmt.Sprintf("%d", purchase.SheetsNeededMin)},
		{"Estimated Cost", fmt.Sprintf("%.2f EUR", record.TotalCost)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(120, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	if record.PriceFallback {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(200, 6, fmt.Sprintf("NOTE: material %q is not in the catalog, fallback price used", p.Material), "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		y += 7
	}
	if record.WastePercent < 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(200, 6, "WARNING: panels exceed one reference sheet", "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		y += 7
	}

	y += 5
	renderCutList(pdf, record.Panels, y)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by BoxCut - box panel cut lists", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderCutList draws the itemised cut list table starting at y.
func renderCutList(pdf *fpdf.Fpdf, panels []model.PanelSpec, y float64) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Cut List", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{50, 25, 50, 20, 45}
	headers := []string{"Panel", "Kind", "Size", "Qty", "Area"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], rowHeight, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += rowHeight

	pdf.SetFont("Helvetica", "", 9)
	for i, panel := range panels {
		xPos = marginLeft
		rowData := []string{
			panel.Name,
			string(panel.Kind),
			fmt.Sprintf("%.1f x %.1f mm", panel.Width, panel.Height),
			fmt.Sprintf("%d", panel.Quantity),
			fmt.Sprintf("%.0f mm2", panel.TotalArea()),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], rowHeight, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += rowHeight
	}
}

// renderSheetPage draws the reference sheet with the structural panels laid
// side by side along its bottom edge, in the same largest-first order the
// estimator uses. Pieces that run past the sheet edge are clipped to show
// the overflow.
func renderSheetPage(pdf *fpdf.Fpdf, record model.DesignRecord) {
	sheet := record.Layout.Sheet

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Reference sheet: %s (%.0f x %.0f mm)", sheet.Label, sheet.Width, sheet.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	drawTop := marginTop + headerHeight + 5
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawTop - marginBottom - 20

	scale := math.Min(drawWidth/sheet.Width, drawHeight/sheet.Height)
	canvasW := sheet.Width * scale
	canvasH := sheet.Height * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawTop

	// Stock sheet background (wood color)
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	x := 0.0
	for i, r := range model.PreviewLayout(record.PanelsOfKind(model.KindPanel)) {
		if x >= sheet.Width {
			break
		}
		col := panelColors[i%len(panelColors)]
		w := math.Min(r.Width, sheet.Width-x)
		h := math.Min(r.Height, sheet.Height)

		pw := w * scale
		ph := h * scale
		px := offsetX + x*scale
		py := offsetY + canvasH - ph

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			label := r.Panel
			if lw := pdf.GetStringWidth(label); lw < pw-2 {
				pdf.SetXY(px+(pw-lw)/2, py+ph/2-2)
				pdf.CellFormat(lw, 4, label, "", 0, "C", false, 0, "")
			}
		}
		x += r.Width
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(marginLeft, offsetY+canvasH+5)
	note := fmt.Sprintf("Structural panels only. Finger pieces: %d. Waste against this sheet: %.1f%%.",
		countInstances(record.PanelsOfKind(model.KindFinger)), record.WastePercent)
	pdf.CellFormat(drawWidth, 5, note, "", 0, "L", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}

func countInstances(panels []model.PanelSpec) int {
	total := 0
	for _, p := range panels {
		total += p.Quantity
	}
	return total
}
