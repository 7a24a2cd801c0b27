package model

// Style selects the geometric template used to derive panels from box dimensions.
type Style string

const (
	StyleHingedLid Style = "hinged_lid" // Open box with an overhanging hinged lid
)

func (s Style) String() string {
	return string(s)
}

// PanelKind distinguishes structural panels from small joint pieces.
type PanelKind string

const (
	KindPanel  PanelKind = "panel"  // Structural panel (bottom, sides, lid)
	KindFinger PanelKind = "finger" // Finger joint or hinge tab
)

// PanelSpec is a single rectangular cut piece with its required quantity.
// Names are descriptive and need not be unique.
type PanelSpec struct {
	Name     string    `json:"name"`
	Width    float64   `json:"width"`  // mm
	Height   float64   `json:"height"` // mm
	Quantity int       `json:"quantity"`
	Kind     PanelKind `json:"kind"`
}

// Area returns the area of one instance of the panel in sq mm.
func (p PanelSpec) Area() float64 {
	return p.Width * p.Height
}

// TotalArea returns the area of all instances of the panel in sq mm.
func (p PanelSpec) TotalArea() float64 {
	return p.Area() * float64(p.Quantity)
}

// RawParams is the unvalidated box description handed to the pipeline.
// Nil numeric fields and empty strings mean "not given" and receive defaults.
type RawParams struct {
	Width     *float64 `json:"width,omitempty" yaml:"width,omitempty"`         // Outer width, mm
	Depth     *float64 `json:"depth,omitempty" yaml:"depth,omitempty"`         // Outer depth, mm
	Height    *float64 `json:"height,omitempty" yaml:"height,omitempty"`       // Outer height, mm
	Thickness *float64 `json:"thickness,omitempty" yaml:"thickness,omitempty"` // Material thickness, mm
	Kerf      *float64 `json:"kerf,omitempty" yaml:"kerf,omitempty"`           // Tool kerf, mm
	Material  string   `json:"material,omitempty" yaml:"material,omitempty"`
	Style     string   `json:"style,omitempty" yaml:"style,omitempty"`
}

// Float returns a pointer to v, for filling optional RawParams fields.
func Float(v float64) *float64 {
	return &v
}

// Merge returns a copy of r where every field left unset is taken from base.
func (r RawParams) Merge(base RawParams) RawParams {
	out := r
	if out.Width == nil {
		out.Width = base.Width
	}
	if out.Depth == nil {
		out.Depth = base.Depth
	}
	if out.Height == nil {
		out.Height = base.Height
	}
	if out.Thickness == nil {
		out.Thickness = base.Thickness
	}
	if out.Kerf == nil {
		out.Kerf = base.Kerf
	}
	if out.Material == "" {
		out.Material = base.Material
	}
	if out.Style == "" {
		out.Style = base.Style
	}
	return out
}

// NormalizedParams is a validated, fully defaulted box description.
// Width > 2*Thickness, Depth > 2*Thickness and Height > Thickness always hold.
type NormalizedParams struct {
	Width     float64 `json:"width"`
	Depth     float64 `json:"depth"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`
	Kerf      float64 `json:"kerf"`
	Material  string  `json:"material"`
	Style     Style   `json:"style"`
}

// InnerWidth returns the width of the cavity between the front and back walls.
func (p NormalizedParams) InnerWidth() float64 {
	return p.Width - 2*p.Thickness
}

// InnerDepth returns the depth of the cavity between the side walls.
func (p NormalizedParams) InnerDepth() float64 {
	return p.Depth - 2*p.Thickness
}

// WallHeight returns the height of the side walls standing on the bottom.
func (p NormalizedParams) WallHeight() float64 {
	return p.Height - p.Thickness
}

// Raw converts the normalized record back into explicit raw parameters.
func (p NormalizedParams) Raw() RawParams {
	return RawParams{
		Width:     Float(p.Width),
		Depth:     Float(p.Depth),
		Height:    Float(p.Height),
		Thickness: Float(p.Thickness),
		Kerf:      Float(p.Kerf),
		Material:  p.Material,
		Style:     string(p.Style),
	}
}
