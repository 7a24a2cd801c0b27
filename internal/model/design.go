package model

// LayoutResult is the outcome of the single-sheet fit heuristic.
type LayoutResult struct {
	Sheet           SheetSize `json:"sheet"`
	SheetArea       float64   `json:"sheet_area"`        // sq mm
	FittedCount     int       `json:"fitted_count"`      // Instances judged to fit
	TotalPanelCount int       `json:"total_panel_count"` // Sum of all quantities
}

// Estimate holds the layout plus the derived area, waste and cost figures.
type Estimate struct {
	Layout        LayoutResult `json:"layout"`
	MaterialArea  float64      `json:"material_area"` // sq mm, zero-kerf
	WastePercent  float64      `json:"waste_percent"` // Negative when the design exceeds one sheet
	TotalCost     float64      `json:"total_cost"`    // EUR
	PricePerM2    float64      `json:"price_per_m2"`
	PriceFallback bool         `json:"price_fallback"` // Material unknown; fallback price used
}

// DesignRecord is the complete output of one pipeline run.
type DesignRecord struct {
	Params          NormalizedParams `json:"params"`
	Panels          []PanelSpec      `json:"panels"`
	Layout          LayoutResult     `json:"layout"`
	MaterialArea    float64          `json:"material_area"`
	WastePercent    float64          `json:"waste_percent"`
	TotalCost       float64          `json:"total_cost"`
	PricePerM2      float64          `json:"price_per_m2"`
	PriceFallback   bool             `json:"price_fallback"`
	ProductionReady bool             `json:"production_ready"`
}

// InstanceCount returns the number of individual pieces to cut.
func (d DesignRecord) InstanceCount() int {
	total := 0
	for _, p := range d.Panels {
		total += p.Quantity
	}
	return total
}

// PanelsOfKind returns the panels with the given kind, in order.
func (d DesignRecord) PanelsOfKind(kind PanelKind) []PanelSpec {
	var out []PanelSpec
	for _, p := range d.Panels {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// FindPanel returns a pointer to the first panel with the given name, or nil.
func (d DesignRecord) FindPanel(name string) *PanelSpec {
	for i := range d.Panels {
		if d.Panels[i].Name == name {
			return &d.Panels[i]
		}
	}
	return nil
}
