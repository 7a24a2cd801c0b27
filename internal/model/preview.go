package model

// Preview row geometry, in mm.
const (
	PreviewPitch    = 500.0 // Horizontal distance between slot origins
	PreviewBaseline = 0.0   // Y of every rectangle's lower edge
)

// Point2D represents a 2D coordinate in mm.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PreviewRect is one panel instance placed on the preview row.
type PreviewRect struct {
	Panel    string    `json:"panel"`
	Kind     PanelKind `json:"kind"`
	Instance int       `json:"instance"` // 1-based index within its panel's quantity
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
}

// Corners returns the four corners counter-clockwise from the origin corner.
func (r PreviewRect) Corners() [4]Point2D {
	return [4]Point2D{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

// PreviewLayout places every panel instance left to right in a single row,
// one slot per instance at a fixed pitch. It is a debug rendering: pieces
// wider than the pitch overlap their neighbour and the row ignores sheet
// bounds.
func PreviewLayout(panels []PanelSpec) []PreviewRect {
	var rects []PreviewRect
	slot := 0
	for _, p := range panels {
		for i := 1; i <= p.Quantity; i++ {
			rects = append(rects, PreviewRect{
				Panel:    p.Name,
				Kind:     p.Kind,
				Instance: i,
				X:        float64(slot) * PreviewPitch,
				Y:        PreviewBaseline,
				Width:    p.Width,
				Height:   p.Height,
			})
			slot++
		}
	}
	return rects
}
