package formatter

import (
	"fmt"
	"strings"

	"github.com/piwi3910/BoxCut/internal/model"
)

// FormatDesign renders a design record as a report card: the box
// dimensions in centimetres, the cost and waste figures and the cut list.
func FormatDesign(record model.DesignRecord) string {
	p := record.Params

	var b strings.Builder
	b.WriteString(Bold(fmt.Sprintf("%s x %s x %s cm", CM(p.Width), CM(p.Depth), CM(p.Height))))
	b.WriteString("  ")
	b.WriteString(StylePurple.Render(string(p.Style)))
	b.WriteString("\n\n")

	purchase := model.CalculatePurchaseEstimate(record.Panels, record.Layout.Sheet, p.Kerf, 0, record.PricePerM2)

	pairs := [][2]string{
		{"Material", p.Material},
		{"Thickness", fmt.Sprintf("%s cm", CM(p.Thickness))},
		{"Kerf", fmt.Sprintf("%.1f mm", p.Kerf)},
		{"Material area", fmt.Sprintf("%.3f m2", record.MaterialArea/1e6)},
		{"Reference sheet", record.Layout.Sheet.Label},
		{"Waste", WasteColor(record.WastePercent).Render(Percent(record.WastePercent))},
		{"Fits one row", fmt.Sprintf("%d of %d pieces", record.Layout.FittedCount, record.Layout.TotalPanelCount)},
		{"Sheets to buy", fmt.Sprintf("%d", purchase.SheetsNeededMin)},
		{"Price", fmt.Sprintf("%.2f EUR/m2", record.PricePerM2)},
		{"Estimated cost", StyleGreen.Render(Money(record.TotalCost))},
	}
	b.WriteString(kvLines(pairs))
	b.WriteString("\n")

	if record.PriceFallback {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("! Material %q is not in the catalog; fallback price used.", p.Material)))
		b.WriteString("\n")
	}
	if record.WastePercent < 0 {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render("! Panels exceed one reference sheet."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Header("Cut list"))
	b.WriteString("\n")
	b.WriteString(FormatCutList(record.Panels))

	return RenderBox("Box design", strings.TrimRight(b.String(), "\n"))
}

// FormatCutList renders the itemised cut list with sizes in centimetres.
func FormatCutList(panels []model.PanelSpec) string {
	headers := []string{"PANEL", "SIZE", "QTY", "KIND"}
	rows := make([][]string, 0, len(panels))
	for _, p := range panels {
		kind := string(p.Kind)
		if p.Kind == model.KindFinger {
			kind = Dim(kind)
		}
		rows = append(rows, []string{
			Bold(p.Name),
			SizeCM(p.Width, p.Height),
			fmt.Sprintf("%d", p.Quantity),
			kind,
		})
	}
	return RenderTable(headers, rows)
}
