package engine

import (
	"sort"

	"github.com/piwi3910/BoxCut/internal/model"
)

// EstimatorOptions tunes the sheet fit heuristic.
type EstimatorOptions struct {
	// StrictFit decrements the remaining row width after every fitted
	// instance. The default (false) checks each instance against the full
	// sheet width, which overstates FittedCount on crowded rows.
	StrictFit bool `json:"strict_fit"`
}

// Estimator computes material usage, waste and cost against a catalog.
type Estimator struct {
	Catalog model.Catalog
	Options EstimatorOptions
}

func NewEstimator(catalog model.Catalog, opts EstimatorOptions) *Estimator {
	return &Estimator{Catalog: catalog, Options: opts}
}

// instance is a single unit of a panel awaiting placement.
type instance struct {
	width  float64
	height float64
}

func (in instance) area() float64 {
	return in.width * in.height
}

// expandInstances turns each panel's quantity into that many unit instances,
// preserving list order.
func expandInstances(panels []model.PanelSpec) []instance {
	var out []instance
	for _, p := range panels {
		for i := 0; i < p.Quantity; i++ {
			out = append(out, instance{width: p.Width, height: p.Height})
		}
	}
	return out
}

// FitLayout runs the greedy single-row first-fit heuristic on the first
// (preferred) sheet. Instances are sorted by area, largest first, with ties
// kept in list order. It does not stack rows or rotate pieces.
func FitLayout(panels []model.PanelSpec, sheets []model.SheetSize, strict bool) (model.LayoutResult, error) {
	if len(panels) == 0 {
		return model.LayoutResult{}, ErrEmptyPanelList
	}
	if len(sheets) == 0 {
		return model.LayoutResult{}, ErrNoSheetAvailable
	}
	sheet := sheets[0]

	instances := expandInstances(panels)
	sort.SliceStable(instances, func(i, j int) bool {
		return instances[i].area() > instances[j].area()
	})

	remaining := sheet.Width
	fitted := 0
	for _, in := range instances {
		if in.width <= remaining && in.height <= sheet.Height {
			fitted++
			if strict {
				remaining -= in.width
			}
		}
	}

	return model.LayoutResult{
		Sheet:           sheet,
		SheetArea:       sheet.Area(),
		FittedCount:     fitted,
		TotalPanelCount: len(instances),
	}, nil
}

// MaterialArea returns the ideal, zero-kerf area consumed by panels.
func MaterialArea(panels []model.PanelSpec) float64 {
	var total float64
	for _, p := range panels {
		total += p.Width * p.Height * float64(p.Quantity)
	}
	return total
}

// WastePercent measures how much of one reference sheet the material leaves
// unused. The result is negative when the material exceeds the sheet.
func WastePercent(materialArea, sheetArea float64) float64 {
	return (1 - materialArea/sheetArea) * 100
}

// Layout runs FitLayout against the estimator's catalog.
func (e *Estimator) Layout(panels []model.PanelSpec) (model.LayoutResult, error) {
	return FitLayout(panels, e.Catalog.Sheets, e.Options.StrictFit)
}

// Estimate computes the layout, material area, waste and cost for panels cut
// from material. Unknown materials are priced at the catalog fallback and
// flagged with PriceFallback.
func (e *Estimator) Estimate(panels []model.PanelSpec, material string) (model.Estimate, error) {
	layout, err := e.Layout(panels)
	if err != nil {
		return model.Estimate{}, err
	}

	area := MaterialArea(panels)
	price, known := e.Catalog.Price(material)

	return model.Estimate{
		Layout:        layout,
		MaterialArea:  area,
		WastePercent:  WastePercent(area, layout.SheetArea),
		TotalCost:     (area / 1e6) * price * e.Catalog.WasteMargin,
		PricePerM2:    price,
		PriceFallback: !known,
	}, nil
}
