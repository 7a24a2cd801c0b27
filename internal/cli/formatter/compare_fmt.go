package formatter

import (
	"fmt"

	"github.com/piwi3910/BoxCut/internal/engine"
)

// FormatComparison renders one row per what-if scenario. Failed scenarios
// show their error in place of the figures.
func FormatComparison(results []engine.ComparisonResult) string {
	headers := []string{"SCENARIO", "MATERIAL", "THICKNESS", "AREA (m2)", "WASTE", "FITS", "COST"}
	rows := make([][]string, 0, len(results))

	cheapest := -1
	for i, r := range results {
		if r.Err != nil {
			continue
		}
		if cheapest < 0 || r.Record.TotalCost < results[cheapest].Record.TotalCost {
			cheapest = i
		}
	}

	for i, r := range results {
		if r.Err != nil {
			rows = append(rows, []string{Bold(r.Scenario.Name), StyleRed.Render(r.Err.Error())})
			continue
		}
		rec := r.Record
		cost := Money(rec.TotalCost)
		if i == cheapest {
			cost = StyleGreen.Render(cost)
		}
		material := rec.Params.Material
		if rec.PriceFallback {
			material += StyleYellow.Render(" *")
		}
		rows = append(rows, []string{
			Bold(r.Scenario.Name),
			material,
			fmt.Sprintf("%.1f mm", rec.Params.Thickness),
			fmt.Sprintf("%.3f", rec.MaterialArea/1e6),
			WasteColor(rec.WastePercent).Render(Percent(rec.WastePercent)),
			fmt.Sprintf("%d/%d", rec.Layout.FittedCount, rec.Layout.TotalPanelCount),
			cost,
		})
	}

	return RenderBox("Comparison", RenderTable(headers, rows))
}
