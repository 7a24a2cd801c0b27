package engine

import (
	"math"

	"github.com/piwi3910/BoxCut/internal/model"
)

// Fixed template constants, in mm unless noted.
const (
	LidOverhang        = 10.0 // Lid clearance over the walls
	HingeFingerWidth   = 20.0
	HingeFingerHeight  = 40.0
	HingeFingerCount   = 4
	FingerWidth        = 8.0
	FingerHeightFactor = 3.0 // Finger height in multiples of the thickness
	FingerEdges        = 8   // Joint edges sharing the finger row count
)

// panelTemplate turns normalized parameters into an ordered panel list.
type panelTemplate func(p model.NormalizedParams) []model.PanelSpec

// templates maps each supported style to its panel rule. Adding a style
// means adding an entry here.
var templates = map[model.Style]panelTemplate{
	model.StyleHingedLid: hingedLidPanels,
}

// SupportedStyles returns the styles that have a panel template.
func SupportedStyles() []model.Style {
	return []model.Style{model.StyleHingedLid}
}

// Derive applies the style's geometric template to p. Dimensions are
// recomputed from p on every call.
func Derive(p model.NormalizedParams) ([]model.PanelSpec, error) {
	tmpl, ok := templates[p.Style]
	if !ok {
		return nil, &UnsupportedStyleError{Style: string(p.Style)}
	}
	return tmpl(p), nil
}

// FingerJointCount returns how many finger tabs fit along the inner width,
// times the number of jointed edges.
func FingerJointCount(innerWidth float64) int {
	if innerWidth <= 0 {
		return 0
	}
	return int(math.Floor(innerWidth/FingerWidth)) * FingerEdges
}

func hingedLidPanels(p model.NormalizedParams) []model.PanelSpec {
	t := p.Thickness
	innerW := p.InnerWidth()
	innerD := p.InnerDepth()
	wallH := p.WallHeight()

	panels := []model.PanelSpec{
		{Name: "bottom", Width: innerW, Height: innerD, Quantity: 1, Kind: model.KindPanel},
		{Name: "side_short", Width: innerW, Height: wallH, Quantity: 2, Kind: model.KindPanel},
		{Name: "side_long", Width: innerD, Height: wallH, Quantity: 2, Kind: model.KindPanel},
		{Name: "lid", Width: innerW + LidOverhang, Height: innerD + LidOverhang, Quantity: 1, Kind: model.KindPanel},
		{Name: "hinge_finger", Width: HingeFingerWidth, Height: HingeFingerHeight, Quantity: HingeFingerCount, Kind: model.KindFinger},
	}

	// A cavity narrower than one finger gets no finger joints at all.
	if n := FingerJointCount(innerW); n > 0 {
		panels = append(panels, model.PanelSpec{
			Name:     "finger_joints",
			Width:    FingerWidth,
			Height:   FingerHeightFactor * t,
			Quantity: n,
			Kind:     model.KindFinger,
		})
	}

	return panels
}
