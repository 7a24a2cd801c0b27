package model

// AppConfig holds application-wide preferences and default box parameters.
type AppConfig struct {
	// Defaults applied to fields missing from a box description
	DefaultWidth     float64 `json:"default_width"`
	DefaultDepth     float64 `json:"default_depth"`
	DefaultHeight    float64 `json:"default_height"`
	DefaultThickness float64 `json:"default_thickness"`
	DefaultKerf      float64 `json:"default_kerf"`
	DefaultMaterial  string  `json:"default_material"`
	DefaultStyle     string  `json:"default_style"`

	// Estimator
	StrictFit bool `json:"strict_fit"` // Decrement row capacity between fit checks

	// Files
	CatalogPath string `json:"catalog_path"` // YAML catalog; empty = built-in tables
	HistoryPath string `json:"history_path"` // SQLite design history; empty = default
	OutputDir   string `json:"output_dir"`   // Where exports are written

	// CNC export
	GCodeProfile string  `json:"gcode_profile"`
	ToolDiameter float64 `json:"tool_diameter"`
	FeedRate     float64 `json:"feed_rate"`
	PlungeRate   float64 `json:"plunge_rate"`
	SpindleSpeed int     `json:"spindle_speed"`
	SafeZ        float64 `json:"safe_z"`
	PassDepth    float64 `json:"pass_depth"`

	// Holding tabs, cut on the final pass only
	PartTabsPerSide int     `json:"part_tabs_per_side"`
	PartTabWidth    float64 `json:"part_tab_width"`
	PartTabHeight   float64 `json:"part_tab_height"`

	RecentDesigns []string `json:"recent_designs"`
}

// DefaultAppConfig returns an AppConfig populated with the generic
// demonstration box and common CNC settings.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultWidth:     400,
		DefaultDepth:     300,
		DefaultHeight:    150,
		DefaultThickness: 18.0,
		DefaultKerf:      2.0,
		DefaultMaterial:  DefaultMaterialKey,
		DefaultStyle:     string(StyleHingedLid),
		StrictFit:        false,
		OutputDir:        ".",
		GCodeProfile:     "Generic",
		ToolDiameter:     6.0,
		FeedRate:         1500.0,
		PlungeRate:       500.0,
		SpindleSpeed:     18000,
		SafeZ:            5.0,
		PassDepth:        6.0,
		PartTabsPerSide:  0,
		PartTabWidth:     8.0,
		PartTabHeight:    2.0,
		RecentDesigns:    []string{},
	}
}

// Defaults returns the configured defaults as a fully populated RawParams,
// suitable as the base for RawParams.Merge.
func (c AppConfig) Defaults() RawParams {
	return RawParams{
		Width:     Float(c.DefaultWidth),
		Depth:     Float(c.DefaultDepth),
		Height:    Float(c.DefaultHeight),
		Thickness: Float(c.DefaultThickness),
		Kerf:      Float(c.DefaultKerf),
		Material:  c.DefaultMaterial,
		Style:     c.DefaultStyle,
	}
}

// AddRecentDesign records a design ID at the front of the recent list,
// keeping at most limit entries and no duplicates.
func (c *AppConfig) AddRecentDesign(id string, limit int) {
	out := []string{id}
	for _, existing := range c.RecentDesigns {
		if existing == id {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, existing)
	}
	c.RecentDesigns = out
}
