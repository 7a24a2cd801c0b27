package formatter

import (
	"fmt"
	"strings"

	"github.com/piwi3910/BoxCut/internal/importer"
	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/piwi3910/BoxCut/internal/store"
)

// BatchResult is the outcome of one batch row.
type BatchResult struct {
	Name   string
	Line   int
	ID     string // History ID when the design was saved
	Record model.DesignRecord
	Err    error
}

// FormatHistory renders saved designs, newest first.
func FormatHistory(entries []store.Summary) string {
	if len(entries) == 0 {
		return Dim("No saved designs.")
	}

	headers := []string{"ID", "NAME", "SIZE (cm)", "MATERIAL", "WASTE", "COST", "SAVED"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		material := e.Material
		if e.PriceFallback {
			material += StyleYellow.Render(" *")
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			Bold(e.Name),
			fmt.Sprintf("%s x %s x %s", CM(e.Width), CM(e.Depth), CM(e.Height)),
			material,
			WasteColor(e.WastePercent).Render(Percent(e.WastePercent)),
			Money(e.TotalCost),
			Dim(Timestamp(e.CreatedAt)),
		})
	}
	return RenderBox("History", RenderTable(headers, rows))
}

// FormatCatalog renders the sheet sizes and material prices.
func FormatCatalog(catalog model.Catalog) string {
	var b strings.Builder

	b.WriteString(Header("Sheets"))
	b.WriteString("\n")
	sheetRows := make([][]string, 0, len(catalog.Sheets))
	for i, s := range catalog.Sheets {
		label := s.Label
		if i == 0 {
			label = Bold(label) + StyleGreen.Render(" (reference)")
		}
		sheetRows = append(sheetRows, []string{label, fmt.Sprintf("%.0f x %.0f mm", s.Width, s.Height)})
	}
	b.WriteString(RenderTable([]string{"SHEET", "SIZE"}, sheetRows))

	b.WriteString("\n")
	b.WriteString(Header("Materials"))
	b.WriteString("\n")
	matRows := make([][]string, 0, len(catalog.Materials))
	for _, m := range catalog.Materials {
		matRows = append(matRows, []string{m.Key, m.Name, fmt.Sprintf("%.2f", m.PricePerM2)})
	}
	b.WriteString(RenderTable([]string{"KEY", "NAME", "EUR/m2"}, matRows))

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Unknown materials: %.2f EUR/m2. Waste margin: x%.2f.", catalog.FallbackPrice, catalog.WasteMargin)))

	return RenderBox("Catalog", b.String())
}

// FormatPresets renders the saved box presets.
func FormatPresets(presets []model.BoxPreset) string {
	if len(presets) == 0 {
		return Dim("No presets saved.")
	}

	headers := []string{"ID", "NAME", "PARAMETERS", "DESCRIPTION"}
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			describeParams(p.Params),
			p.Description,
		})
	}
	return RenderBox("Presets", RenderTable(headers, rows))
}

// describeParams lists only the fields a preset sets.
func describeParams(r model.RawParams) string {
	var parts []string
	dims := []struct {
		label string
		v     *float64
	}{
		{"w", r.Width}, {"d", r.Depth}, {"h", r.Height}, {"t", r.Thickness}, {"kerf", r.Kerf},
	}
	for _, d := range dims {
		if d.v != nil {
			parts = append(parts, fmt.Sprintf("%s=%g", d.label, *d.v))
		}
	}
	if r.Material != "" {
		parts = append(parts, r.Material)
	}
	if r.Style != "" {
		parts = append(parts, r.Style)
	}
	if len(parts) == 0 {
		return Dim("defaults")
	}
	return strings.Join(parts, " ")
}

// FormatBatch renders the per-row results of a batch run followed by the
// total cost of the successful rows.
func FormatBatch(results []BatchResult) string {
	headers := []string{"ROW", "NAME", "SIZE (cm)", "MATERIAL", "WASTE", "COST", "ID"}
	rows := make([][]string, 0, len(results))

	var total float64
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			rows = append(rows, []string{fmt.Sprintf("%d", r.Line), Bold(r.Name), StyleRed.Render(r.Err.Error())})
			continue
		}
		p := r.Record.Params
		total += r.Record.TotalCost
		id := Dim("--")
		if r.ID != "" {
			id = TruncID(r.ID)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Line),
			Bold(r.Name),
			fmt.Sprintf("%s x %s x %s", CM(p.Width), CM(p.Depth), CM(p.Height)),
			p.Material,
			WasteColor(r.Record.WastePercent).Render(Percent(r.Record.WastePercent)),
			Money(r.Record.TotalCost),
			id,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d designs, %d failed. Total cost %s", len(results)-failed, failed, StyleGreen.Render(Money(total))))
	return RenderBox("Batch", b.String())
}

// FormatShapes renders the outlines read back from a DXF file.
func FormatShapes(result importer.DXFResult) string {
	var b strings.Builder

	if len(result.Shapes) > 0 {
		headers := []string{"#", "SIZE", "VERTICES", "ORIGIN (mm)"}
		rows := make([][]string, 0, len(result.Shapes))
		for i, s := range result.Shapes {
			w, h := s.Size()
			min, _ := s.Bounds()
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%.1f x %.1f mm", w, h),
				fmt.Sprintf("%d", len(s.Points)),
				fmt.Sprintf("%.1f, %.1f", min.X, min.Y),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	} else {
		b.WriteString(Dim("No closed outlines found."))
		b.WriteString("\n")
	}

	for _, w := range result.Warnings {
		b.WriteString(StyleYellow.Render("warning: " + w))
		b.WriteString("\n")
	}
	for _, e := range result.Errors {
		b.WriteString(StyleRed.Render("error: " + e))
		b.WriteString("\n")
	}

	return RenderBox(fmt.Sprintf("%d outlines", len(result.Shapes)), strings.TrimRight(b.String(), "\n"))
}
